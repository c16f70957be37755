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

import "strings"

// repairJSON fixes the formatting slips small models make most often:
// keys missing their opening quote (`, entities":`) and trailing commas
// before a closing bracket or brace. Text inside string literals is left alone.
func repairJSON(s string) string {
	src := []rune(s)
	var out strings.Builder
	out.Grow(len(s) + 8)

	inString := false
	escaped := false
	for i := 0; i < len(src); i++ {
		ch := src[i]

		if inString {
			out.WriteRune(ch)
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
			out.WriteRune(ch)
		case ',':
			next := skipSpace(src, i+1)
			if next < len(src) && (src[next] == ']' || src[next] == '}') {
				continue
			}
			out.WriteRune(ch)
			i = copyUnquotedKey(src, i+1, &out) - 1
		case '{':
			out.WriteRune(ch)
			i = copyUnquotedKey(src, i+1, &out) - 1
		default:
			out.WriteRune(ch)
		}
	}
	return out.String()
}

// copyUnquotedKey writes the whitespace after position start and, when it
// is followed by a bare key ending in `":`, the quoted key. It returns
// the position to resume scanning from.
func copyUnquotedKey(src []rune, start int, out *strings.Builder) int {
	i := skipSpace(src, start)
	out.WriteString(string(src[start:i]))
	if i >= len(src) || !isLetter(src[i]) {
		return i
	}

	end := i
	for end < len(src) && (isLetter(src[end]) || src[end] == '_') {
		end++
	}
	if end+1 < len(src) && src[end] == '"' && src[end+1] == ':' {
		out.WriteByte('"')
		out.WriteString(string(src[i : end+1]))
		return end + 1
	}
	return i
}

func skipSpace(src []rune, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\n' || src[i] == '\t' || src[i] == '\r') {
		i++
	}
	return i
}
