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


package extract

import "github.com/poiesic/topicscout/core"

// defaultEntries lists topics common in NLP, LLM and machine learning work.
var defaultEntries = []string{
	"machine learning", "deep learning", "neural network", "transformer", "attention",
	"nlp", "natural language processing", "llm", "large language model", "bert", "gpt",
	"roberta", "xlnet", "t5", "text generation", "sequence modeling", "prompt engineering",
	"zero-shot", "few-shot", "reinforcement learning", "data science", "python",
	"scikit-learn", "tensorflow", "pytorch", "feature engineering", "data preprocessing",
	"classification", "regression", "clustering", "dimensionality reduction", "autoencoder",
	"gan", "transfer learning", "explainable ai", "sentiment analysis", "entity recognition",
	"named entity recognition", "question answering", "summarization", "topic modeling", "lstm",
	"rnn", "cnn", "graph neural network", "self-supervised learning", "contrastive learning",
	"embedding", "vectorization", "api integration", "big data", "cloud computing", "scalable",
	"distributed computing",
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() core.Vocabulary {
	return core.MustVocabulary(defaultEntries...)
}
