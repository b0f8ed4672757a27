// Package node defines the vertices of the dataflow graph: a common Node
// record carrying identity, adjacency, and per-pass evaluation state,
// plus a Spec interface hiding each kind's parameters behind one pointer
// struct per kind.
package node

import "github.com/vk/patchbay/internal/value"

// State is the per-evaluation-pass lifecycle of a node. It exists solely
// so the evaluator can detect cycles and memoize; the graph resets every
// node to Unprocessed at the start of each top-level evaluation.
type State int

const (
	Unprocessed State = iota
	Processing
	Processed
)

// Node is a single computation unit owned by exactly one Graph. The
// common fields live here; kind-specific parameters live behind Spec.
//
// Inputs is positional: input 0 and input 1 are the two operands of a
// binary math node. Outputs mirrors the reverse edges and exists purely
// for disconnect bookkeeping; evaluation never reads it. The two lists
// must always be updated as a pair (the graph's Connect and Disconnect
// are the only writers).
type Node struct {
	ID     int
	Spec   Spec
	Domain value.Domain

	State   State
	Inputs  []*Node
	Outputs []*Node

	// Cached holds the memoized result of this pass; it is only
	// meaningful while State == Processed.
	Cached value.Value
}

// Kind returns the node's kind tag, delegating to its spec.
func (n *Node) Kind() Kind {
	return n.Spec.Kind()
}

// Input returns the i-th input node, or nil when no such connection
// exists. A missing input is the documented "not connected" default, not
// an error.
func (n *Node) Input(i int) *Node {
	if i < 0 || i >= len(n.Inputs) {
		return nil
	}
	return n.Inputs[i]
}
