// Package session provides the mutation API for a kinship graph: a
// [Session] owns one in-memory relationship graph and is the single entry
// point the CLI and HTTP surfaces call for add, rename, remove, import, and
// export operations.
//
// # Architecture
//
// The session composes the lower layers and enforces their sequencing:
//
//	formats (adapters) → transform (cycle filter) → family (commit)
//
// Manual mutations run validation, then the single-relation cycle check,
// then commit - all-or-nothing, so a rejected operation is invisible.
// Imports build the replacement graph aside and swap it in only when fully
// constructed; candidates that collide with invariants or would close
// cycles are dropped and counted in an [ImportReport] instead of failing
// the import. Only structurally unparsable input aborts.
//
// Every failure is surfaced as a structured error from the errors package
// (code + human-readable message); nothing propagates as an unhandled
// fault.
//
// # Usage
//
//	sess := session.New(session.Options{Logger: logger})
//	if err := sess.AddIndividual("Margaret"); err != nil { ... }
//	if err := sess.AddIndividual("Edith"); err != nil { ... }
//	if err := sess.AddRelation("Margaret", "Edith"); err != nil { ... }
//	tree := sess.Hierarchy()
package session
