// Copyright 2016 The ksched Authors
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

// Package netsimplex implements the primal network simplex method for the
// uncapacitated minimum-cost flow problem: nodes carry signed supply,
// arcs carry a per-unit cost and no capacity bound, and the engine finds an
// integral or real flow satisfying every supply/demand balance at minimum
// total cost, together with dual node potentials certifying optimality.
//
// The basis is a rooted spanning tree over the N real nodes plus one
// artificial root, kept as parallel arrays indexed by node id (parent,
// pred, predDir, thread, revThread, succNum, lastSucc) rather than as a
// graph of pointer-linked node objects. A pivot touches O(tree depth)
// entries of these arrays; no per-pivot allocation occurs.
//
// Solver is generic over the numeric type used for supplies, costs, flows
// and potentials (int64 for exact arithmetic, float64 otherwise). A fresh
// Solver is built with New, populated with AddNode/AddArc, and solved with
// Run. ReRun resumes an already-optimal or timed-out basis without
// rebuilding it, and UpdateArcs lets a caller replace non-improving arcs in
// place for column-generation style incremental solving.
package netsimplex
