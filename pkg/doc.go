// Package pkg provides the core libraries for kinship family-tree management.
//
// # Overview
//
// Kinship maintains an in-memory graph of individuals and parent→child
// relations, keeps it free of ancestry cycles, and derives a rooted
// hierarchy view from it on demand. The pkg directory is organized into
// these areas:
//
//  1. [family] - The relationship graph store (individuals, relations,
//     invariants, snapshots)
//  2. [family/transform] - Cycle detection over the graph
//  3. [hierarchy] - Derived rooted tree views
//  4. [formats] - CSV and GEDCOM import/export adapters
//  5. [session] - The mutation boundary tying the above together
//  6. [config], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through kinship:
//
//	CSV / GEDCOM input
//	         ↓
//	    [formats] package (parse into candidates)
//	         ↓
//	    [family/transform] package (drop cycle-closing candidates)
//	         ↓
//	    [family] package (validated graph state)
//	         ↓
//	    [hierarchy] package (derived rooted tree)
//	         ↓
//	    CSV / GEDCOM / JSON output
//
// # Quick Start
//
// Build a graph and read back its hierarchy:
//
//	import "github.com/kinship-dev/kinship/pkg/session"
//
//	s := session.New(session.Options{})
//	_ = s.AddIndividual("Margaret")
//	_ = s.AddIndividual("Edith")
//	_ = s.AddRelation("Margaret", "Edith")
//	root := s.Hierarchy()
//
// # Main Packages
//
// [family] - The store. Individuals are identified by case-insensitive
// display name backed by stable internal IDs, so renames are a single field
// update and relations follow automatically. Enforces name uniqueness, the
// single-parent rule, and no self-relations; acyclicity is enforced one
// layer up.
//
// [family/transform] - Depth-bounded ancestry traversal: a single-edge
// would-cycle check for interactive mutations and a bulk first-wins filter
// for imports.
//
// [hierarchy] - Pure derivation of a rooted tree from a snapshot. Multiple
// roots are wrapped in a virtual "Family" node; the result is deterministic
// for a given graph.
//
// [session] - The only write path. Every mutation is all-or-nothing and
// every rejection carries a structured error code from [errors].
//
// [family]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/family
// [family/transform]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/family/transform
// [hierarchy]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/hierarchy
// [formats]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/formats
// [session]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/session
// [config]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/config
// [errors]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/kinship-dev/kinship/pkg/buildinfo
package pkg
