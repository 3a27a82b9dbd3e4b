// Package hierarchy converts a relationship-graph snapshot into a rooted
// tree suitable for display and structured export.
//
// The transform is recompute-on-read: [Build] holds no state between calls
// and is called fresh on every query, which keeps the derived view trivially
// consistent with the underlying graph no matter what mutations preceded it.
//
// Disconnected lineages are joined under a synthetic [VirtualRootName] node
// that is flagged Virtual and never treated as a real individual. The
// degenerate case where every individual has a parent (only possible with
// invariant-violating hand-built snapshots) falls back to the first-seen
// individual as root rather than failing the read.
package hierarchy
