package session

import (
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kinship-dev/kinship/pkg/errors"
	"github.com/kinship-dev/kinship/pkg/family"
	"github.com/kinship-dev/kinship/pkg/family/transform"
	"github.com/kinship-dev/kinship/pkg/hierarchy"
)

// Options configures a new session.
type Options struct {
	// Logger receives diagnostic output (import drop counts and the
	// like). Defaults to a discarding logger.
	Logger *log.Logger

	// MaxDepth bounds ancestry traversals in cycle detection.
	// Defaults to [transform.DefaultMaxDepth].
	MaxDepth int
}

// Session owns one in-memory relationship graph and is the sole entry point
// for changing it. Every mutation sequences validation → cycle check →
// commit, so a rejected operation leaves the graph exactly as it was; there
// is never a partially applied state visible to readers.
//
// A session lives only as long as the process (or the server registry entry)
// that holds it. Session is not safe for concurrent use without external
// synchronization.
type Session struct {
	ID        string
	CreatedAt time.Time

	tree     *family.Tree
	logger   *log.Logger
	maxDepth int
}

// New creates an empty session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = transform.DefaultMaxDepth
	}
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		tree:      family.New(),
		logger:    logger,
		maxDepth:  maxDepth,
	}
}

// AddIndividual adds a named individual to the graph.
func (s *Session) AddIndividual(name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	_, err := s.tree.AddPerson(name)
	return structured(err)
}

// AddRelation adds a parent→child relation. The relation is validated
// against the store invariants first, then checked for ancestry cycles, and
// only committed when both pass.
func (s *Session) AddRelation(parent, child string) error {
	if err := s.tree.CheckRelation(parent, child); err != nil {
		return structured(err)
	}
	if transform.WouldCycle(s.tree, parent, child, s.maxDepth) {
		return errors.New(errors.ErrCodeCycleRejected,
			"%s is an ancestor of %s; adding this relation would create a cycle", child, parent)
	}
	return structured(s.tree.AddRelation(parent, child))
}

// RenameIndividual changes an individual's display name. Relations follow
// automatically because they are stored against stable internal IDs.
func (s *Session) RenameIndividual(oldName, newName string) error {
	if err := errors.ValidateName(newName); err != nil {
		return err
	}
	return structured(s.tree.Rename(oldName, newName))
}

// RemoveIndividual deletes an individual and every relation touching them.
func (s *Session) RemoveIndividual(name string) error {
	return structured(s.tree.RemovePerson(name))
}

// RemoveRelation deletes the parent→child relation.
func (s *Session) RemoveRelation(parent, child string) error {
	return structured(s.tree.RemoveRelation(parent, child))
}

// Snapshot returns an immutable copy of the current graph.
func (s *Session) Snapshot() family.Snapshot { return s.tree.Snapshot() }

// Hierarchy derives the rooted tree view of the current graph. It is
// recomputed fresh on every call.
func (s *Session) Hierarchy() *hierarchy.Node {
	return hierarchy.Build(s.tree.Snapshot())
}

// IndividualCount returns the number of individuals in the graph.
func (s *Session) IndividualCount() int { return s.tree.PersonCount() }

// RelationCount returns the number of relations in the graph.
func (s *Session) RelationCount() int { return s.tree.RelationCount() }

// structured translates the store's sentinel errors into the structured
// errors surfaced at the mutation boundary. Unknown errors become
// INTERNAL_ERROR rather than propagating as unhandled faults.
func structured(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, family.ErrInvalidName):
		return errors.Wrap(errors.ErrCodeInvalidName, err, "name cannot be empty")
	case stderrors.Is(err, family.ErrDuplicateName):
		return errors.Wrap(errors.ErrCodeDuplicateName, err, "an individual with that name already exists")
	case stderrors.Is(err, family.ErrUnknownPerson):
		return errors.Wrap(errors.ErrCodeUnknownIndividual, err, "no such individual")
	case stderrors.Is(err, family.ErrSelfRelation):
		return errors.Wrap(errors.ErrCodeSelfRelation, err, "an individual cannot be their own parent")
	case stderrors.Is(err, family.ErrMultipleParents):
		return errors.Wrap(errors.ErrCodeMultipleParents, err, "that individual already has a parent")
	case stderrors.Is(err, family.ErrDuplicateRelation):
		return errors.Wrap(errors.ErrCodeDuplicateRelation, err, "that relation already exists")
	case stderrors.Is(err, family.ErrUnknownRelation):
		return errors.Wrap(errors.ErrCodeUnknownRelation, err, "no such relation")
	default:
		return errors.Wrap(errors.ErrCodeInternal, err, "unexpected failure")
	}
}
