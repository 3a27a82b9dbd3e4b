package session

import (
	"io"

	"github.com/kinship-dev/kinship/pkg/family"
	"github.com/kinship-dev/kinship/pkg/family/transform"
	"github.com/kinship-dev/kinship/pkg/formats"
)

// ImportReport summarizes what a bulk import did. Dropped candidates are
// not failures: cycle-closing and invariant-colliding relations are
// excluded so the rest of the import can succeed, and the counts here make
// the exclusions observable to the caller.
type ImportReport struct {
	Individuals      int  `json:"individuals"`       // individuals in the resulting graph
	Relations        int  `json:"relations"`         // relations in the resulting graph
	CyclesDropped    int  `json:"cycles_dropped"`    // candidates excluded for closing a cycle
	ConflictsSkipped int  `json:"conflicts_skipped"` // candidates excluded by invariants (extra parents, duplicates, self-relations)
	Merged           bool `json:"merged"`            // whether the import merged into the existing graph
}

// ImportCSV imports a two-column relationship table. With merge false the
// imported graph replaces the current one; with merge true the candidates
// are layered onto a copy of the current graph. Either way the import is
// all-or-nothing: a parse failure leaves the session untouched, and the new
// graph becomes visible only once fully built.
func (s *Session) ImportCSV(r io.Reader, merge bool) (ImportReport, error) {
	cands, err := formats.ParseCSV(r)
	if err != nil {
		return ImportReport{}, err
	}
	kept, cycles := transform.DropCycles(cands.Relations, s.maxDepth)
	cands.Relations = kept
	return s.apply(cands, cycles, merge), nil
}

// ImportGEDCOM imports a genealogical file. The adapter has already run the
// bulk cycle filter; merge semantics match [Session.ImportCSV].
func (s *Session) ImportGEDCOM(r io.Reader, merge bool) (ImportReport, error) {
	cands, cycles, err := formats.ParseGEDCOM(r, s.maxDepth)
	if err != nil {
		return ImportReport{}, err
	}
	return s.apply(cands, cycles, merge), nil
}

// apply builds the post-import graph aside and swaps it in atomically.
// Candidates are committed tolerantly: the first accepted parent per child
// wins, duplicate and self relations are skipped, and when merging, a
// candidate that would close a cycle against the existing graph is dropped.
// Every exclusion is counted and logged.
func (s *Session) apply(cands formats.Candidates, cyclesDropped int, merge bool) ImportReport {
	target := family.New()
	if merge {
		target = family.FromSnapshot(s.tree.Snapshot())
	}

	report := ImportReport{CyclesDropped: cyclesDropped, Merged: merge}
	for _, name := range cands.People {
		// Duplicates against an existing merge target are expected; bad
		// names are dropped like any other unusable candidate.
		_, _ = target.AddPerson(name)
	}
	for _, r := range cands.Relations {
		if err := target.CheckRelation(r.Parent, r.Child); err != nil {
			report.ConflictsSkipped++
			continue
		}
		if transform.WouldCycle(target, r.Parent, r.Child, s.maxDepth) {
			report.CyclesDropped++
			continue
		}
		_ = target.AddRelation(r.Parent, r.Child)
	}

	s.tree = target
	report.Individuals = target.PersonCount()
	report.Relations = target.RelationCount()

	if report.CyclesDropped > 0 || report.ConflictsSkipped > 0 {
		s.logger.Warn("import dropped candidates",
			"cycles", report.CyclesDropped, "conflicts", report.ConflictsSkipped)
	}
	s.logger.Debug("import applied",
		"individuals", report.Individuals, "relations", report.Relations, "merged", merge)
	return report
}
