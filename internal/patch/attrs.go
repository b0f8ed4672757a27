package patch

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// attrs is the evaluated attribute set of one node body, keyed by
// attribute name.
type attrs map[string]cty.Value

// extractAttrs evaluates every attribute of a node body into a cty value
// map. Patch files are static, so expressions evaluate against a nil
// context.
func extractAttrs(body hcl.Body) (attrs, error) {
	if body == nil {
		return attrs{}, nil
	}
	hclAttrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(attrs, len(hclAttrs))
	for name, attr := range hclAttrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("evaluating attribute %q: %w", name, valDiags)
		}
		out[name] = val
	}
	return out, nil
}

// str reads a string attribute, returning def when absent.
func (a attrs) str(name, def string) (string, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	var s string
	if err := decodeCty(v, &s); err != nil {
		return "", fmt.Errorf("attribute %q: %w", name, err)
	}
	return s, nil
}

// num reads a float attribute, returning def when absent.
func (a attrs) num(name string, def float64) (float64, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	var f float64
	if err := decodeCty(v, &f); err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return f, nil
}

// intval reads an integer attribute, returning def when absent.
func (a attrs) intval(name string, def int) (int, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	var i int
	if err := decodeCty(v, &i); err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return i, nil
}

// floats reads a list-of-numbers attribute, returning nil when absent.
func (a attrs) floats(name string) ([]float64, error) {
	v, ok := a[name]
	if !ok {
		return nil, nil
	}
	var fs []float64
	if err := decodeCty(v, &fs); err != nil {
		return nil, fmt.Errorf("attribute %q: %w", name, err)
	}
	return fs, nil
}

// decodeCty converts a cty value into the Go value behind target,
// applying cty's implicit conversions first. target must be a non-nil
// pointer.
func decodeCty(val cty.Value, target any) error {
	elem := reflect.ValueOf(target).Elem().Interface()
	ty, err := gocty.ImpliedType(elem)
	if err != nil {
		return fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), ty.FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}
