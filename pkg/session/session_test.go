package session

import (
	"strings"
	"testing"

	"github.com/kinship-dev/kinship/pkg/errors"
	"github.com/kinship-dev/kinship/pkg/family"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return New(Options{})
}

func mustAdd(t *testing.T, s *Session, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := s.AddIndividual(name); err != nil {
			t.Fatalf("AddIndividual(%q) = %v", name, err)
		}
	}
}

func mustRelate(t *testing.T, s *Session, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		if err := s.AddRelation(p[0], p[1]); err != nil {
			t.Fatalf("AddRelation(%q, %q) = %v", p[0], p[1], err)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	s := newSession(t)
	if s.ID == "" {
		t.Errorf("ID is empty")
	}
	if s.CreatedAt.IsZero() {
		t.Errorf("CreatedAt is zero")
	}
	if s.IndividualCount() != 0 || s.RelationCount() != 0 {
		t.Errorf("new session is not empty: %d individuals, %d relations",
			s.IndividualCount(), s.RelationCount())
	}
}

func TestAddIndividual_Errors(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "Margaret")

	cases := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"Duplicate", "margaret", errors.ErrCodeDuplicateName},
		{"Empty", "", errors.ErrCodeInvalidName},
		{"Whitespace", "   ", errors.ErrCodeInvalidName},
		{"ControlChars", "Ann\x00e", errors.ErrCodeInvalidName},
		{"TooLong", strings.Repeat("x", errors.MaxNameLength+1), errors.ErrCodeInvalidName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.AddIndividual(tc.input)
			if errors.GetCode(err) != tc.code {
				t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), tc.code)
			}
		})
	}
	if s.IndividualCount() != 1 {
		t.Errorf("IndividualCount() = %d, want 1 (rejections must not mutate)", s.IndividualCount())
	}
}

func TestAddRelation_ErrorCodes(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B", "C")
	mustRelate(t, s, [2]string{"A", "B"})

	cases := []struct {
		name          string
		parent, child string
		code          errors.Code
	}{
		{"UnknownParent", "Ghost", "B", errors.ErrCodeUnknownIndividual},
		{"UnknownChild", "A", "Ghost", errors.ErrCodeUnknownIndividual},
		{"Self", "A", "a", errors.ErrCodeSelfRelation},
		{"Duplicate", "a", "B", errors.ErrCodeDuplicateRelation},
		{"SecondParent", "C", "B", errors.ErrCodeMultipleParents},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.AddRelation(tc.parent, tc.child)
			if errors.GetCode(err) != tc.code {
				t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), tc.code)
			}
		})
	}
	if s.RelationCount() != 1 {
		t.Errorf("RelationCount() = %d, want 1", s.RelationCount())
	}
}

func TestAddRelation_CycleRejected(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B", "C")
	mustRelate(t, s, [2]string{"A", "B"}, [2]string{"B", "C"})

	before := s.Snapshot()
	err := s.AddRelation("C", "A")
	if errors.GetCode(err) != errors.ErrCodeCycleRejected {
		t.Fatalf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeCycleRejected)
	}
	after := s.Snapshot()
	if len(after.Relations) != len(before.Relations) {
		t.Errorf("rejected relation mutated the graph: %d relations, want %d",
			len(after.Relations), len(before.Relations))
	}
}

func TestRenameIndividual(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "Bob", "Carol")
	mustRelate(t, s, [2]string{"Bob", "Carol"})

	if err := s.RenameIndividual("bob", "Robert"); err != nil {
		t.Fatalf("RenameIndividual() = %v", err)
	}
	snap := s.Snapshot()
	if snap.Relations[0].Parent != "Robert" {
		t.Errorf("Relations[0].Parent = %q, want Robert", snap.Relations[0].Parent)
	}
	if err := s.AddRelation("Bob", "Carol"); errors.GetCode(err) != errors.ErrCodeUnknownIndividual {
		t.Errorf("old name still resolves after rename: %v", err)
	}

	if err := s.RenameIndividual("Robert", "Carol"); errors.GetCode(err) != errors.ErrCodeDuplicateName {
		t.Errorf("rename onto existing name: GetCode() = %v, want %v",
			errors.GetCode(err), errors.ErrCodeDuplicateName)
	}
	if err := s.RenameIndividual("Ghost", "X"); errors.GetCode(err) != errors.ErrCodeUnknownIndividual {
		t.Errorf("rename of unknown: GetCode() = %v, want %v",
			errors.GetCode(err), errors.ErrCodeUnknownIndividual)
	}
}

func TestRemoveIndividual_Cascades(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B", "C")
	mustRelate(t, s, [2]string{"A", "B"}, [2]string{"B", "C"})

	if err := s.RemoveIndividual("B"); err != nil {
		t.Fatalf("RemoveIndividual() = %v", err)
	}
	if s.IndividualCount() != 2 {
		t.Errorf("IndividualCount() = %d, want 2", s.IndividualCount())
	}
	if s.RelationCount() != 0 {
		t.Errorf("RelationCount() = %d, want 0 (both touching relations removed)", s.RelationCount())
	}
}

func TestRemoveRelation(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B")
	mustRelate(t, s, [2]string{"A", "B"})

	if err := s.RemoveRelation("B", "A"); errors.GetCode(err) != errors.ErrCodeUnknownRelation {
		t.Errorf("reversed direction: GetCode() = %v, want %v",
			errors.GetCode(err), errors.ErrCodeUnknownRelation)
	}
	if err := s.RemoveRelation("A", "B"); err != nil {
		t.Fatalf("RemoveRelation() = %v", err)
	}
	if s.RelationCount() != 0 {
		t.Errorf("RelationCount() = %d, want 0", s.RelationCount())
	}
}

func TestHierarchy_VirtualRoot(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B", "C", "D")
	mustRelate(t, s, [2]string{"A", "B"}, [2]string{"C", "D"})

	root := s.Hierarchy()
	if root == nil || !root.Virtual {
		t.Fatalf("root = %+v, want virtual", root)
	}
	if len(root.Children) != 2 {
		t.Errorf("len(children) = %d, want 2", len(root.Children))
	}
}

func TestSnapshot_Isolated(t *testing.T) {
	s := newSession(t)
	mustAdd(t, s, "A", "B")
	mustRelate(t, s, [2]string{"A", "B"})

	snap := s.Snapshot()
	snap.People[0] = "mangled"
	snap.Relations[0] = family.Relation{Parent: "x", Child: "y"}

	fresh := s.Snapshot()
	if fresh.People[0] != "A" || fresh.Relations[0].Parent != "A" {
		t.Errorf("mutating a snapshot leaked into the session: %+v", fresh)
	}
}
