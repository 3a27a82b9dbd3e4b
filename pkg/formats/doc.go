// Package formats translates between the relationship graph and its
// external textual representations: a two-column CSV table and a
// GEDCOM-style genealogical file.
//
// Adapters never touch store state. Imports produce plain [Candidates]
// (individual names plus relation candidates) that the session layer feeds
// through validation and batch commit; exports consume an immutable
// [family.Snapshot]. The nested-hierarchy JSON export lives with the
// session layer since it is a straight encoding of the hierarchy package's
// node type.
//
// Import error policy: only structurally unparsable input (or a CSV header
// missing a required column) is an error. Rows or references that are
// merely incomplete are skipped, and relation candidates that would close
// an ancestry cycle are filtered out and counted rather than failing the
// import.
package formats
