// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import "fmt"

const spanResponseSchema = `{
  "type": "object",
  "properties": {
    "noun_phrases": {"type": "array", "items": {"type": "string"}},
    "entities": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["noun_phrases", "entities"],
  "additionalProperties": false
}`

const spanPromptTemplate = `Identify the base noun phrases and the named entities in the given text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Copy every phrase exactly as it appears in the text. Do not paraphrase, singularize, or translate.
- A noun phrase is a noun together with its determiners and modifiers, e.g. "a large language model".
- An entity is a proper name of an organization, product, person, place, or work, e.g. "OpenAI".
- A phrase may appear in both lists.
- If nothing is found, return empty arrays.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "We fine-tuned BERT from Google on a small corpus."
Output:
{
  "noun_phrases": ["We", "BERT", "Google", "a small corpus"],
  "entities": ["BERT", "Google"]
}`

const summaryPromptTemplate = `Summarize the following research abstract in plain prose.
The summary must be between %d and %d words long. Output only the summary text, without a title,
preamble, bullet points, or quotation marks.`

// buildSpanPrompt creates the system prompt for span extraction.
func buildSpanPrompt() string {
	return fmt.Sprintf(spanPromptTemplate, spanResponseSchema)
}

func buildSummaryPrompt(minWords, maxWords int) string {
	return fmt.Sprintf(summaryPromptTemplate, minWords, maxWords)
}
