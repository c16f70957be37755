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


// Package fetch queries GitHub and arXiv for material related to a set of
// interests and downloads paper PDFs.
//
// Every request is tried once. FetchAll runs interests one after another;
// an interest whose request fails is logged, recorded as a Failure and
// skipped so the remaining interests still run.
//
// PDF downloads run on an ants worker pool. The default pool holds a single
// worker, so downloads happen one at a time in submission order.
package fetch
