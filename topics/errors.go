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


package topics

import "errors"

var (
	// ErrNoDocuments is returned when there is nothing to model.
	ErrNoDocuments = errors.New("no documents to model")

	// ErrNoTerms is returned when every document is empty after stop word removal.
	ErrNoTerms = errors.New("no terms left after stop word removal")

	// ErrInvalidOption wraps every rejected Modeler option.
	ErrInvalidOption = errors.New("invalid topic model option")
)
