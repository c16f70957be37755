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


// Package collect gathers text documents from directory trees.
//
// A Walker visits each directory in turn, descending recursively in lexical
// order, and hands every file with a recognized extension to a callback.
// Problems with individual directories or files never stop the walk; each
// visited unit is recorded in a Report as an Outcome the caller can inspect.
//
// An Aggregator builds on a Walker to concatenate everything it reads and
// extract the interests of the whole corpus in one pass.
package collect
