package transform

import "github.com/kinship-dev/kinship/pkg/family"

// DefaultMaxDepth bounds ancestor/descendant traversals. Lineages deeper
// than this are not fully checked for cycles; the bound trades completeness
// on pathological input for guaranteed termination.
const DefaultMaxDepth = 100

// WouldCycle reports whether adding parent→child to the tree would make an
// individual their own ancestor. It walks the ancestor chain of parent (a
// chain, not a set - every individual has at most one parent) for at most
// maxDepth steps and looks for child.
//
// A maxDepth of zero or less falls back to [DefaultMaxDepth]. The tree is
// not mutated.
func WouldCycle(t *family.Tree, parent, child string, maxDepth int) bool {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	target := family.Fold(child)
	if family.Fold(parent) == target {
		return true
	}
	cur := parent
	for depth := 0; depth < maxDepth; depth++ {
		next, ok := t.Parent(cur)
		if !ok {
			return false
		}
		if family.Fold(next) == target {
			return true
		}
		cur = next
	}
	return false
}

// DropCycles filters a candidate relation list down to an acyclic one.
// Candidates are considered in order; a relation is dropped when its child
// already reaches its parent through previously accepted relations (so the
// new relation would close a cycle). Everything else is kept, which makes
// the result deterministic: the first relations seen win.
//
// Self-relations are one-step cycles and are always dropped.
//
// Reachability is computed by breadth-first search bounded to maxDepth
// generations (zero or less means [DefaultMaxDepth]). The returned count is
// the number of dropped relations; the kept set is acyclic by construction.
func DropCycles(candidates []family.Relation, maxDepth int) ([]family.Relation, int) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	descendants := make(map[string][]string) // folded parent -> folded children
	kept := make([]family.Relation, 0, len(candidates))
	dropped := 0

	for _, r := range candidates {
		from := family.Fold(r.Parent)
		to := family.Fold(r.Child)
		if reaches(descendants, to, from, maxDepth) {
			dropped++
			continue
		}
		descendants[from] = append(descendants[from], to)
		kept = append(kept, r)
	}
	return kept, dropped
}

// reaches reports whether target is reachable from start over the adjacency
// within maxDepth steps. A node trivially reaches itself.
func reaches(adj map[string][]string, start, target string, maxDepth int) bool {
	if start == target {
		return true
	}
	seen := map[string]bool{start: true}
	frontier := []string{start}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, n := range frontier {
			for _, c := range adj[n] {
				if c == target {
					return true
				}
				if !seen[c] {
					seen[c] = true
					next = append(next, c)
				}
			}
		}
		frontier = next
	}
	return false
}
