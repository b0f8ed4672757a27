package patch

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/patchbay/internal/ctxlog"
	"github.com/vk/patchbay/internal/fsutil"
	"github.com/vk/patchbay/internal/graph"
	"github.com/vk/patchbay/internal/node"
)

// Patch is a loaded patch: the built graph plus the host-facing settings
// the patch block declared.
type Patch struct {
	Graph *graph.Graph

	Width      int
	Height     int
	SampleRate int
	Frames     int
	Custom     map[string]float64

	names map[string]*node.Node
}

// Node looks up a node by its patch-file name.
func (p *Patch) Node(name string) (*node.Node, bool) {
	n, ok := p.names[name]
	return n, ok
}

// Load reads a single .hcl file or every .hcl file under a directory and
// builds the graph they describe. Files merge into one patch; node names
// are global across files.
func Load(ctx context.Context, path string) (*Patch, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("finding patch files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl patch files found at %s", path)
	}
	logger.Debug("patch files discovered", "count", len(files))

	parser := hclparse.NewParser()
	var merged patchFile
	for _, file := range files {
		parsed, err := parseOne(parser, file)
		if err != nil {
			return nil, err
		}
		if parsed.Settings != nil {
			if merged.Settings != nil {
				return nil, fmt.Errorf("%s: duplicate patch block (already declared in another file)", file)
			}
			merged.Settings = parsed.Settings
		}
		merged.Nodes = append(merged.Nodes, parsed.Nodes...)
		merged.Connects = append(merged.Connects, parsed.Connects...)
	}

	return build(ctx, &merged)
}

// LoadSource builds a patch from in-memory HCL source; tests and
// embedding hosts use this instead of the file loader.
func LoadSource(ctx context.Context, filename string, src []byte) (*Patch, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}
	var parsed patchFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}
	return build(ctx, &parsed)
}

func parseOne(parser *hclparse.Parser, path string) (*patchFile, error) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", path, diags)
	}
	var parsed patchFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", path, diags)
	}
	return &parsed, nil
}

// build assembles a graph from a decoded patch file: settings first,
// then nodes, then connections in declaration order.
func build(ctx context.Context, file *patchFile) (*Patch, error) {
	logger := ctxlog.FromContext(ctx)

	p := &Patch{
		Graph:  graph.New(),
		Custom: map[string]float64{},
		names:  make(map[string]*node.Node, len(file.Nodes)),
	}
	p.Graph.SetLogger(logger)

	gctx := graph.DefaultContext()
	p.Width, p.Height = gctx.Width, gctx.Height
	p.SampleRate = gctx.SampleRate
	p.Frames = 1
	if s := file.Settings; s != nil {
		if s.Width > 0 {
			p.Width = s.Width
		}
		if s.Height > 0 {
			p.Height = s.Height
		}
		if s.SampleRate > 0 {
			p.SampleRate = s.SampleRate
		}
		if s.Frames > 0 {
			p.Frames = s.Frames
		}
		for k, v := range s.Custom {
			p.Custom[k] = v
		}
	}
	gctx.Width, gctx.Height = p.Width, p.Height
	gctx.SampleRate = p.SampleRate
	for k, v := range p.Custom {
		gctx.Custom[k] = v
	}
	p.Graph.SetContext(gctx)

	for _, nb := range file.Nodes {
		if _, exists := p.names[nb.Name]; exists {
			return nil, fmt.Errorf("duplicate node name %q", nb.Name)
		}
		a, err := extractAttrs(nb.Body)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nb.Name, err)
		}
		spec, domain, err := buildNode(nb.Kind, a)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", nb.Name, err)
		}
		p.names[nb.Name] = p.Graph.AddNode(spec, domain)
		logger.Debug("node added", "name", nb.Name, "kind", nb.Kind, "domain", domain.String())
	}

	for _, cb := range file.Connects {
		from, ok := p.names[cb.From]
		if !ok {
			return nil, fmt.Errorf("connect: unknown source node %q", cb.From)
		}
		to, ok := p.names[cb.To]
		if !ok {
			return nil, fmt.Errorf("connect: unknown destination node %q", cb.To)
		}
		p.Graph.Connect(from, to)
	}

	if len(p.Graph.OutputNodes()) == 0 {
		logger.Warn("patch has no output nodes; evaluation will produce nothing")
	}
	return p, nil
}
