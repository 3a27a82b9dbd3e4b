package hierarchy

import "github.com/kinship-dev/kinship/pkg/family"

// VirtualRootName is the display name of the synthesized root used when the
// graph has more than one root. The virtual root is a presentation
// convenience, not an individual: it is never selectable, editable, or
// exported as one, and its Virtual flag distinguishes it from a real person
// who happens to be called "Family".
const VirtualRootName = "Family"

// Node is a derived, read-only tree view of the relationship graph.
// Children is omitted from JSON entirely for leaves, which is the shape the
// rendering and AI-prompt collaborators consume.
type Node struct {
	Name     string  `json:"name"`
	Children []*Node `json:"children,omitempty"`

	// Virtual marks the synthesized multi-root container. It is not part
	// of the serialized form.
	Virtual bool `json:"-"`
}

// Build derives a rooted tree from a snapshot. It is pure, deterministic,
// and idempotent: the same snapshot always yields a structurally identical
// tree, and no state is held between calls.
//
// Roots are the individuals that appear as no relation's child, in
// first-seen (insertion) order; children appear in relation insertion
// order. A single root is returned directly; multiple roots are wrapped in
// a virtual [VirtualRootName] node. An empty snapshot yields nil.
//
// If every individual has a parent (possible only when invariants were
// violated upstream, e.g. a residual cycle in hand-built input), the
// first-seen individual is used as a fallback root. Relations that would
// revisit an already placed individual are skipped during construction, so
// even that degenerate input produces a finite tree.
func Build(s family.Snapshot) *Node {
	if len(s.People) == 0 {
		return nil
	}

	childrenOf := make(map[string][]string, len(s.People))
	hasParent := make(map[string]bool, len(s.People))
	display := make(map[string]string, len(s.People))
	for _, name := range s.People {
		display[family.Fold(name)] = name
	}
	for _, r := range s.Relations {
		pk, ck := family.Fold(r.Parent), family.Fold(r.Child)
		if _, ok := display[pk]; !ok {
			continue
		}
		if _, ok := display[ck]; !ok {
			continue
		}
		childrenOf[pk] = append(childrenOf[pk], ck)
		hasParent[ck] = true
	}

	var roots []string
	for _, name := range s.People {
		if !hasParent[family.Fold(name)] {
			roots = append(roots, family.Fold(name))
		}
	}
	if len(roots) == 0 {
		// Degenerate fallback: pick the first-seen individual rather than
		// returning nothing. See the package documentation.
		roots = []string{family.Fold(s.People[0])}
	}

	placed := make(map[string]bool, len(s.People))
	subtrees := make([]*Node, 0, len(roots))
	for _, rk := range roots {
		if n := grow(rk, childrenOf, display, placed); n != nil {
			subtrees = append(subtrees, n)
		}
	}

	if len(subtrees) == 1 {
		return subtrees[0]
	}
	return &Node{Name: VirtualRootName, Children: subtrees, Virtual: true}
}

// grow builds the subtree rooted at key. Individuals already placed
// elsewhere are skipped, which both keeps the result a tree and terminates
// construction on cyclic degenerate input.
func grow(key string, childrenOf map[string][]string, display map[string]string, placed map[string]bool) *Node {
	if placed[key] {
		return nil
	}
	placed[key] = true
	n := &Node{Name: display[key]}
	for _, ck := range childrenOf[key] {
		if c := grow(ck, childrenOf, display, placed); c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Count returns the number of real individuals in the tree, excluding any
// virtual root.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 0
	if !n.Virtual {
		total++
	}
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}

// Depth returns the number of generations in the tree. A single individual
// has depth 1; the virtual root does not count as a generation.
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	if n.Virtual {
		return deepest
	}
	return deepest + 1
}
