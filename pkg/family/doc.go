// Package family provides the in-memory relationship graph at the core of
// kinship: a set of named individuals plus directed parent→child relations.
//
// # Overview
//
// The display name IS the identity in this domain - there is no user-visible
// numeric key. Internally each individual is assigned a stable [ID] so that
// renaming is a single field update; relations are stored against IDs and
// never need rewriting.
//
// After every committed mutation the following invariants hold:
//
//  1. Every relation's endpoints exist in the individual set.
//  2. No two relations share the same child (single parent per child).
//  3. No self-relation (parent == child).
//  4. Names are unique case-insensitively.
//
// Acyclicity (no individual is their own ancestor) is the one invariant this
// package does not enforce on its own: cycle detection needs a trial
// structure, so it lives in the transform subpackage and is sequenced by the
// session package before any relation is committed.
//
// # Basic Usage
//
// Create a tree with [New], add individuals with [Tree.AddPerson], and link
// them with [Tree.AddRelation]:
//
//	t := family.New()
//	t.AddPerson("Margaret")
//	t.AddPerson("Edith")
//	t.AddRelation("Margaret", "Edith")
//
// Readers take an immutable [Snapshot] and never observe a half-applied
// mutation:
//
//	s := t.Snapshot()
//
// All operations return sentinel errors ([ErrDuplicateName],
// [ErrMultipleParents], ...) suitable for errors.Is checks; the session
// package translates them into structured API errors.
package family
