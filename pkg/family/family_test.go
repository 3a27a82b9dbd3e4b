package family

import (
	"errors"
	"testing"
)

func TestAddPerson_Basic(t *testing.T) {
	tr := New()
	if _, err := tr.AddPerson("Ada"); err != nil {
		t.Fatalf("AddPerson(Ada) = %v, want nil", err)
	}
	if tr.PersonCount() != 1 {
		t.Errorf("PersonCount() = %d, want 1", tr.PersonCount())
	}
	if _, ok := tr.Lookup("Ada"); !ok {
		t.Errorf("Lookup(Ada) not found after AddPerson")
	}
}

func TestAddPerson_TrimsDisplayName(t *testing.T) {
	tr := New()
	id, err := tr.AddPerson("  Ada  ")
	if err != nil {
		t.Fatalf("AddPerson() = %v, want nil", err)
	}
	if name, _ := tr.Name(id); name != "Ada" {
		t.Errorf("Name() = %q, want %q", name, "Ada")
	}
}

func TestAddPerson_DuplicateCaseInsensitive(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	if _, err := tr.AddPerson("ADA"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("AddPerson(ADA) = %v, want ErrDuplicateName", err)
	}
	if tr.PersonCount() != 1 {
		t.Errorf("PersonCount() = %d, want 1", tr.PersonCount())
	}
}

func TestAddPerson_EmptyName(t *testing.T) {
	tr := New()
	for _, name := range []string{"", "   ", "\t"} {
		if _, err := tr.AddPerson(name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("AddPerson(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestAddRelation_Basic(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	if err := tr.AddRelation("Byron", "Ada"); err != nil {
		t.Fatalf("AddRelation() = %v, want nil", err)
	}
	if tr.RelationCount() != 1 {
		t.Errorf("RelationCount() = %d, want 1", tr.RelationCount())
	}
	if parent, ok := tr.Parent("Ada"); !ok || parent != "Byron" {
		t.Errorf("Parent(Ada) = %q, %v, want Byron, true", parent, ok)
	}
}

func TestAddRelation_UnknownEndpoint(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	if err := tr.AddRelation("Ghost", "Ada"); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("AddRelation(Ghost, Ada) = %v, want ErrUnknownPerson", err)
	}
	if err := tr.AddRelation("Ada", "Ghost"); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("AddRelation(Ada, Ghost) = %v, want ErrUnknownPerson", err)
	}
}

func TestAddRelation_Self(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	if err := tr.AddRelation("Ada", "ada"); !errors.Is(err, ErrSelfRelation) {
		t.Errorf("AddRelation(Ada, ada) = %v, want ErrSelfRelation", err)
	}
}

func TestAddRelation_Duplicate(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	tr.AddRelation("Byron", "Ada")
	if err := tr.AddRelation("Byron", "Ada"); !errors.Is(err, ErrDuplicateRelation) {
		t.Errorf("second AddRelation() = %v, want ErrDuplicateRelation", err)
	}
	if tr.RelationCount() != 1 {
		t.Errorf("RelationCount() = %d, want 1 after rejected duplicate", tr.RelationCount())
	}
}

func TestAddRelation_SecondParentRejected(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	tr.AddPerson("Annabella")
	tr.AddRelation("Byron", "Ada")
	if err := tr.AddRelation("Annabella", "Ada"); !errors.Is(err, ErrMultipleParents) {
		t.Errorf("AddRelation(Annabella, Ada) = %v, want ErrMultipleParents", err)
	}
	if parent, _ := tr.Parent("Ada"); parent != "Byron" {
		t.Errorf("Parent(Ada) = %q, want Byron unchanged", parent)
	}
}

func TestRename_RelationsFollow(t *testing.T) {
	tr := New()
	tr.AddPerson("Bob")
	tr.AddPerson("Carol")
	tr.AddPerson("Dave")
	tr.AddRelation("Bob", "Carol")
	tr.AddRelation("Carol", "Dave")

	if err := tr.Rename("Bob", "Robert"); err != nil {
		t.Fatalf("Rename() = %v, want nil", err)
	}

	if _, ok := tr.Lookup("Bob"); ok {
		t.Errorf("Lookup(Bob) found after rename")
	}
	if parent, _ := tr.Parent("Carol"); parent != "Robert" {
		t.Errorf("Parent(Carol) = %q, want Robert", parent)
	}
	rels := tr.Relations()
	if rels[0].Parent != "Robert" {
		t.Errorf("Relations()[0].Parent = %q, want Robert", rels[0].Parent)
	}
}

func TestRename_Collision(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	if err := tr.Rename("Ada", "BYRON"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Rename(Ada, BYRON) = %v, want ErrDuplicateName", err)
	}
}

func TestRename_OwnCasing(t *testing.T) {
	tr := New()
	tr.AddPerson("ada")
	if err := tr.Rename("ada", "Ada"); err != nil {
		t.Fatalf("Rename(ada, Ada) = %v, want nil", err)
	}
	id, _ := tr.Lookup("ada")
	if name, _ := tr.Name(id); name != "Ada" {
		t.Errorf("Name() = %q, want Ada", name)
	}
}

func TestRename_Invalid(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	if err := tr.Rename("Ada", "  "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Rename(Ada, blank) = %v, want ErrInvalidName", err)
	}
	if err := tr.Rename("Ghost", "Ada"); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("Rename(Ghost, ...) = %v, want ErrUnknownPerson", err)
	}
}

func TestRemovePerson_Cascades(t *testing.T) {
	// Byron → Ada → Annabella: removing Ada removes both relations and
	// orphans Annabella.
	tr := New()
	tr.AddPerson("Byron")
	tr.AddPerson("Ada")
	tr.AddPerson("Annabella")
	tr.AddRelation("Byron", "Ada")
	tr.AddRelation("Ada", "Annabella")

	if err := tr.RemovePerson("Ada"); err != nil {
		t.Fatalf("RemovePerson() = %v, want nil", err)
	}
	if tr.PersonCount() != 2 {
		t.Errorf("PersonCount() = %d, want 2", tr.PersonCount())
	}
	if tr.RelationCount() != 0 {
		t.Errorf("RelationCount() = %d, want 0", tr.RelationCount())
	}
	if _, ok := tr.Parent("Annabella"); ok {
		t.Errorf("Parent(Annabella) still set after cascade")
	}
	if got := tr.Children("Byron"); len(got) != 0 {
		t.Errorf("Children(Byron) = %v, want empty", got)
	}
}

func TestRemoveRelation(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	tr.AddRelation("Byron", "Ada")

	if err := tr.RemoveRelation("Ada", "Byron"); !errors.Is(err, ErrUnknownRelation) {
		t.Errorf("RemoveRelation(reversed) = %v, want ErrUnknownRelation", err)
	}
	if err := tr.RemoveRelation("Byron", "Ada"); err != nil {
		t.Fatalf("RemoveRelation() = %v, want nil", err)
	}
	if tr.RelationCount() != 0 {
		t.Errorf("RelationCount() = %d, want 0", tr.RelationCount())
	}
}

func TestSnapshot_Isolated(t *testing.T) {
	tr := New()
	tr.AddPerson("Ada")
	tr.AddPerson("Byron")
	tr.AddRelation("Byron", "Ada")

	snap := tr.Snapshot()
	tr.AddPerson("Annabella")
	tr.Rename("Ada", "Augusta")

	if len(snap.People) != 2 {
		t.Errorf("snapshot People = %d, want 2", len(snap.People))
	}
	if snap.Relations[0].Child != "Ada" {
		t.Errorf("snapshot relation child = %q, want Ada (pre-rename)", snap.Relations[0].Child)
	}
}

func TestSnapshot_Order(t *testing.T) {
	tr := New()
	for _, n := range []string{"C", "A", "B"} {
		tr.AddPerson(n)
	}
	snap := tr.Snapshot()
	want := []string{"C", "A", "B"}
	for i, n := range want {
		if snap.People[i] != n {
			t.Errorf("People[%d] = %q, want %q (insertion order)", i, snap.People[i], n)
		}
	}
}

func TestFromSnapshot_RoundTrip(t *testing.T) {
	tr := New()
	tr.AddPerson("Byron")
	tr.AddPerson("Ada")
	tr.AddRelation("Byron", "Ada")

	clone := FromSnapshot(tr.Snapshot())
	if clone.PersonCount() != 2 || clone.RelationCount() != 1 {
		t.Errorf("clone = %d people, %d relations, want 2, 1",
			clone.PersonCount(), clone.RelationCount())
	}
	// And the clone is independent.
	clone.AddPerson("Annabella")
	if tr.PersonCount() != 2 {
		t.Errorf("original PersonCount() = %d, want 2", tr.PersonCount())
	}
}

func TestFold(t *testing.T) {
	if Fold("  Ada Lovelace ") != "ada lovelace" {
		t.Errorf("Fold() = %q, want %q", Fold("  Ada Lovelace "), "ada lovelace")
	}
}
