package family

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidName is returned by [Tree.AddPerson] and [Tree.Rename] when
	// the name is empty or whitespace-only. All individuals must have a
	// non-empty display name.
	ErrInvalidName = errors.New("name must not be empty")

	// ErrDuplicateName is returned by [Tree.AddPerson] and [Tree.Rename] when
	// an individual with the same name already exists. Names are compared
	// case-insensitively.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnknownPerson is returned when an operation references an individual
	// that does not exist in the tree.
	ErrUnknownPerson = errors.New("unknown individual")

	// ErrSelfRelation is returned by [Tree.AddRelation] when parent and child
	// resolve to the same individual.
	ErrSelfRelation = errors.New("individual cannot be their own parent")

	// ErrMultipleParents is returned by [Tree.AddRelation] when the child
	// already has a parent relation pointing to it. The tree models
	// single-lineage descent: at most one parent per child.
	ErrMultipleParents = errors.New("individual already has a parent")

	// ErrDuplicateRelation is returned by [Tree.AddRelation] when the exact
	// parent→child relation already exists.
	ErrDuplicateRelation = errors.New("duplicate relation")

	// ErrUnknownRelation is returned by [Tree.RemoveRelation] when the
	// parent→child relation does not exist.
	ErrUnknownRelation = errors.New("unknown relation")
)

// ID is a stable internal identifier for an individual. IDs survive renames,
// so a rename is a single field update rather than an edge-rewriting scan.
// IDs are only meaningful within the Tree that issued them.
type ID int

// Relation is a directed parent→child link between two individuals,
// expressed by display name. It is the exchange currency between the store,
// the format adapters, and the cycle detector.
type Relation struct {
	Parent string
	Child  string
}

// Snapshot is an immutable copy of a tree's individuals and relations,
// decoupled from the live store. People preserves insertion order and
// Relations preserves relation insertion order, which is what makes derived
// views (hierarchy, exports) deterministic.
type Snapshot struct {
	People    []string
	Relations []Relation
}

// Fold canonicalizes a name for identity comparison: surrounding whitespace
// is trimmed and the result is lowercased. Two names are the same individual
// iff their folded forms are equal.
func Fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Tree is the authoritative in-memory holder of individuals and parent→child
// relations. It enforces name uniqueness (case-insensitive), relation
// endpoint existence, the single-parent rule, and self-relation rejection.
// It does NOT run cycle detection — that requires a trial structure and is
// the caller's responsibility before committing a relation (see the
// transform and session packages).
//
// The zero value is not usable - use New to create a valid Tree instance.
// Tree is not safe for concurrent use without external synchronization.
type Tree struct {
	people   map[ID]string // id -> display name
	lookup   map[string]ID // folded name -> id
	parent   map[ID]ID     // child -> its single parent
	children map[ID][]ID   // parent -> children in relation insertion order
	order    []ID          // individual insertion order
	edges    [][2]ID       // relation insertion order: {parent, child}
	nextID   ID
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{
		people:   make(map[ID]string),
		lookup:   make(map[string]ID),
		parent:   make(map[ID]ID),
		children: make(map[ID][]ID),
	}
}

// AddPerson inserts a new individual and returns its stable identity.
// Returns ErrInvalidName if the trimmed name is empty, or ErrDuplicateName
// if an individual with the same folded name already exists. The stored
// display name is the trimmed input.
func (t *Tree) AddPerson(name string) (ID, error) {
	display := strings.TrimSpace(name)
	if display == "" {
		return 0, ErrInvalidName
	}
	key := Fold(display)
	if _, exists := t.lookup[key]; exists {
		return 0, ErrDuplicateName
	}
	id := t.nextID
	t.nextID++
	t.people[id] = display
	t.lookup[key] = id
	t.order = append(t.order, id)
	return id, nil
}

// Lookup resolves a name (case-insensitively) to an individual's ID.
func (t *Tree) Lookup(name string) (ID, bool) {
	id, ok := t.lookup[Fold(name)]
	return id, ok
}

// Name returns the display name for an ID.
func (t *Tree) Name(id ID) (string, bool) {
	name, ok := t.people[id]
	return name, ok
}

// CheckRelation validates that the relation parent→child could be added
// without mutating the tree. It returns ErrUnknownPerson if either endpoint
// is absent, ErrSelfRelation if both names resolve to the same individual,
// ErrDuplicateRelation if the exact relation exists, or ErrMultipleParents
// if the child already has a different parent.
func (t *Tree) CheckRelation(parent, child string) error {
	pid, ok := t.lookup[Fold(parent)]
	if !ok {
		return ErrUnknownPerson
	}
	cid, ok := t.lookup[Fold(child)]
	if !ok {
		return ErrUnknownPerson
	}
	if pid == cid {
		return ErrSelfRelation
	}
	if existing, has := t.parent[cid]; has {
		if existing == pid {
			return ErrDuplicateRelation
		}
		return ErrMultipleParents
	}
	return nil
}

// AddRelation inserts the relation parent→child. It performs the same
// validation as [Tree.CheckRelation]; on success the relation is committed
// atomically. Cycle checking is deliberately not performed here.
func (t *Tree) AddRelation(parent, child string) error {
	if err := t.CheckRelation(parent, child); err != nil {
		return err
	}
	pid := t.lookup[Fold(parent)]
	cid := t.lookup[Fold(child)]
	t.parent[cid] = pid
	t.children[pid] = append(t.children[pid], cid)
	t.edges = append(t.edges, [2]ID{pid, cid})
	return nil
}

// Rename changes an individual's display name. All relations keep referring
// to the same individual because they are stored against the stable ID; no
// edge rewrite takes place. Returns ErrUnknownPerson if oldName is absent,
// ErrInvalidName if the trimmed new name is empty, or ErrDuplicateName if
// newName collides with a different individual (case-insensitive).
//
// Renaming an individual to a different casing of its own name is allowed.
func (t *Tree) Rename(oldName, newName string) error {
	id, ok := t.lookup[Fold(oldName)]
	if !ok {
		return ErrUnknownPerson
	}
	display := strings.TrimSpace(newName)
	if display == "" {
		return ErrInvalidName
	}
	newKey := Fold(display)
	if other, exists := t.lookup[newKey]; exists && other != id {
		return ErrDuplicateName
	}
	delete(t.lookup, Fold(oldName))
	t.lookup[newKey] = id
	t.people[id] = display
	return nil
}

// RemovePerson deletes an individual and cascades to every relation touching
// it: the relation from its parent is removed, and all of its children
// become parentless roots. Returns ErrUnknownPerson if the name is absent.
func (t *Tree) RemovePerson(name string) error {
	id, ok := t.lookup[Fold(name)]
	if !ok {
		return ErrUnknownPerson
	}
	if pid, has := t.parent[id]; has {
		t.children[pid] = slices.DeleteFunc(t.children[pid], func(c ID) bool { return c == id })
		delete(t.parent, id)
	}
	for _, cid := range t.children[id] {
		delete(t.parent, cid)
	}
	delete(t.children, id)
	t.edges = slices.DeleteFunc(t.edges, func(e [2]ID) bool { return e[0] == id || e[1] == id })
	t.order = slices.DeleteFunc(t.order, func(o ID) bool { return o == id })
	delete(t.lookup, Fold(name))
	delete(t.people, id)
	return nil
}

// RemoveRelation deletes the relation parent→child. Returns ErrUnknownPerson
// if either endpoint is absent, or ErrUnknownRelation if the relation does
// not exist.
func (t *Tree) RemoveRelation(parent, child string) error {
	pid, ok := t.lookup[Fold(parent)]
	if !ok {
		return ErrUnknownPerson
	}
	cid, ok := t.lookup[Fold(child)]
	if !ok {
		return ErrUnknownPerson
	}
	if existing, has := t.parent[cid]; !has || existing != pid {
		return ErrUnknownRelation
	}
	delete(t.parent, cid)
	t.children[pid] = slices.DeleteFunc(t.children[pid], func(c ID) bool { return c == cid })
	t.edges = slices.DeleteFunc(t.edges, func(e [2]ID) bool { return e[0] == pid && e[1] == cid })
	return nil
}

// Parent returns the display name of the individual's parent, if any.
// The second return is false when the individual is unknown or has no parent.
func (t *Tree) Parent(name string) (string, bool) {
	id, ok := t.lookup[Fold(name)]
	if !ok {
		return "", false
	}
	pid, has := t.parent[id]
	if !has {
		return "", false
	}
	return t.people[pid], true
}

// Children returns the display names of the individual's children in
// relation insertion order. Returns nil if the individual is unknown or
// has no children.
func (t *Tree) Children(name string) []string {
	id, ok := t.lookup[Fold(name)]
	if !ok {
		return nil
	}
	ids := t.children[id]
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, cid := range ids {
		names[i] = t.people[cid]
	}
	return names
}

// PersonCount returns the number of individuals in the tree.
func (t *Tree) PersonCount() int { return len(t.people) }

// RelationCount returns the number of relations in the tree.
func (t *Tree) RelationCount() int { return len(t.edges) }

// People returns display names of all individuals in insertion order.
func (t *Tree) People() []string {
	names := make([]string, len(t.order))
	for i, id := range t.order {
		names[i] = t.people[id]
	}
	return names
}

// Relations returns all relations in insertion order, expressed by display
// name. The returned slice is a copy.
func (t *Tree) Relations() []Relation {
	rels := make([]Relation, len(t.edges))
	for i, e := range t.edges {
		rels[i] = Relation{Parent: t.people[e[0]], Child: t.people[e[1]]}
	}
	return rels
}

// Snapshot returns an immutable copy of the current individuals and
// relations. Readers (hierarchy builder, exporters) operate on snapshots so
// a later mutation can never be observed mid-read.
func (t *Tree) Snapshot() Snapshot {
	return Snapshot{People: t.People(), Relations: t.Relations()}
}

// FromSnapshot rebuilds a Tree from a snapshot. Snapshots produced by
// [Tree.Snapshot] always replay cleanly; entries that would violate an
// invariant (hand-built snapshots) are skipped.
func FromSnapshot(s Snapshot) *Tree {
	t := New()
	for _, name := range s.People {
		_, _ = t.AddPerson(name)
	}
	for _, r := range s.Relations {
		_ = t.AddRelation(r.Parent, r.Child)
	}
	return t
}
