// Package transform provides cycle detection over relationship graphs.
//
// Two modes cover the two mutation paths:
//
//   - [WouldCycle] answers the single-relation question asked before a
//     manual add commits: would parent→child make someone their own
//     ancestor? Because every individual has at most one parent, this is a
//     bounded walk up a single ancestor chain.
//
//   - [DropCycles] handles bulk import, where a candidate list may contain
//     arbitrary junk. Instead of aborting the import, every relation that
//     would close a cycle is excluded and counted, and the surviving set is
//     acyclic by construction.
//
// Both traversals are depth-bounded (see [DefaultMaxDepth]) so that already
// cyclic or pathologically deep input can never hang a traversal. Cycles
// longer than the bound go undetected - a documented trade of completeness
// for guaranteed termination.
package transform
