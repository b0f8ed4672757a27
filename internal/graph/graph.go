package graph

import (
	"log/slog"

	"github.com/vk/patchbay/internal/node"
	"github.com/vk/patchbay/internal/value"
)

// Graph owns all of its nodes and is the sole authority for their
// lifetime: node lifetime equals graph lifetime, and two graphs never
// reference each other's nodes. All mutation goes through AddNode,
// Connect, Disconnect, and DisconnectAll so the bidirectional adjacency
// invariant can never be half-updated.
//
// A Graph is not safe for concurrent use. The evaluator is a plain
// recursive call stack invoked from one goroutine.
type Graph struct {
	nodes   []*node.Node
	outputs []*node.Node
	nextID  int

	// ctx is the last context a top-level Evaluate ran against, retained
	// for the pixel and audio entry points to clone.
	ctx Context

	// evalCount counts top-level Evaluate calls; diagnostics only.
	evalCount uint64

	// results is reused across Evaluate calls so the pixel and audio hot
	// paths do not allocate per call.
	results []value.Value

	logger *slog.Logger
}

// New creates an empty graph with the default context.
func New() *Graph {
	return &Graph{
		ctx:    DefaultContext(),
		logger: slog.Default(),
	}
}

// SetLogger replaces the logger used for evaluation diagnostics.
func (g *Graph) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// AddNode creates a node with the given spec and output domain, assigns
// it the next unique id, and registers it with the graph. Output-kind
// nodes are additionally tracked in the graph's output list. AddNode
// always succeeds.
func (g *Graph) AddNode(spec node.Spec, domain value.Domain) *node.Node {
	n := &node.Node{
		ID:     g.nextID,
		Spec:   spec,
		Domain: domain,
		State:  node.Unprocessed,
		Cached: value.Zero(domain),
	}
	g.nextID++
	g.nodes = append(g.nodes, n)
	if spec.Kind().IsOutput() {
		g.outputs = append(g.outputs, n)
	}
	return n
}

// Nodes returns the graph's nodes in creation order.
func (g *Graph) Nodes() []*node.Node {
	return g.nodes
}

// OutputNodes returns the terminal nodes evaluated by Evaluate, in the
// order they were added.
func (g *Graph) OutputNodes() []*node.Node {
	return g.outputs
}

// Connect wires src's output into the next free input slot of dst,
// updating both adjacency lists as a pair. Connecting an already
// connected pair is a no-op, so the call is idempotent. Input order is
// significant: it is the positional argument order the evaluator
// consumes.
func (g *Graph) Connect(src, dst *node.Node) {
	if src == nil || dst == nil {
		return
	}
	if containsNode(src.Outputs, dst) || containsNode(dst.Inputs, src) {
		return
	}
	src.Outputs = append(src.Outputs, dst)
	dst.Inputs = append(dst.Inputs, src)
}

// Disconnect removes the src→dst connection from both sides; it is a
// no-op when the pair is not connected.
func (g *Graph) Disconnect(src, dst *node.Node) {
	if src == nil || dst == nil {
		return
	}
	src.Outputs = removeNode(src.Outputs, dst)
	dst.Inputs = removeNode(dst.Inputs, src)
}

// DisconnectAll removes n from every neighbor's opposite list and clears
// both of n's own lists. The node itself stays in the graph; callers
// decide whether to stop using it.
func (g *Graph) DisconnectAll(n *node.Node) {
	if n == nil {
		return
	}
	for _, in := range n.Inputs {
		in.Outputs = removeNode(in.Outputs, n)
	}
	for _, out := range n.Outputs {
		out.Inputs = removeNode(out.Inputs, n)
	}
	n.Inputs = n.Inputs[:0]
	n.Outputs = n.Outputs[:0]
}

// ResetNodeStates marks every node Unprocessed so the next pass never
// reuses a stale memoized value. Node-owned mutable parameters (the
// oscillator phase) are left untouched.
func (g *Graph) ResetNodeStates() {
	for _, n := range g.nodes {
		n.State = node.Unprocessed
	}
}

// Context returns the last context a top-level Evaluate stored.
func (g *Graph) Context() Context {
	return g.ctx
}

// SetContext replaces the stored context without evaluating. Hosts use
// this to configure buffer dimensions and sample rate up front.
func (g *Graph) SetContext(ctx Context) {
	g.ctx = ctx
}

// EvaluationCount reports how many top-level Evaluate calls have run.
func (g *Graph) EvaluationCount() uint64 {
	return g.evalCount
}

// Evaluate runs one full pass: it stores ctx, resets all node states,
// evaluates every output node in registration order, and returns one
// value per output node. The returned slice is reused by the next
// Evaluate call; callers that need to retain it must copy.
func (g *Graph) Evaluate(ctx Context) []value.Value {
	g.ctx = ctx
	g.ResetNodeStates()
	g.results = g.results[:0]
	for _, out := range g.outputs {
		g.results = append(g.results, g.evaluateNode(out, ctx))
	}
	g.evalCount++
	return g.results
}

// EvaluateForPixel clones the stored context, overrides the pixel
// coordinate, and returns the first output's value. A graph with no
// output nodes yields Visual{0}.
func (g *Graph) EvaluateForPixel(x, y int) value.Value {
	ctx := g.ctx
	ctx.X, ctx.Y = x, y
	results := g.Evaluate(ctx)
	if len(results) == 0 {
		return value.Visual(0)
	}
	return results[0]
}

// EvaluateForAudioSample clones the stored context, overrides the audio
// clock, and returns the first output's PCM sample. Non-audio first
// outputs (and graphs with no outputs) yield silence.
func (g *Graph) EvaluateForAudioSample(sampleIndex int, t float64) float32 {
	ctx := g.ctx
	ctx.SampleIndex = sampleIndex
	ctx.Time = t
	results := g.Evaluate(ctx)
	if len(results) == 0 || results[0].Domain != value.DomainAudio {
		return 0
	}
	return results[0].Sample
}

func containsNode(list []*node.Node, n *node.Node) bool {
	for _, e := range list {
		if e == n {
			return true
		}
	}
	return false
}

func removeNode(list []*node.Node, n *node.Node) []*node.Node {
	for i, e := range list {
		if e == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
