package expr

import (
	"fmt"
	"strings"

	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/probe"
	"github.com/zclconf/go-cty/cty"
)

// RenderError reports a variable that no scope defines. It is fatal for
// the run unless the design unit guarded the lookup with When or a
// fallback construct.
type RenderError struct {
	// Name is the variable that failed to resolve.
	Name string
	// DeviceLabel identifies the active device when the lookup happened
	// inside a per-device scope. Empty otherwise.
	DeviceLabel string
}

func (e *RenderError) Error() string {
	if e.DeviceLabel != "" {
		return fmt.Sprintf("variable %q is not defined for device %q", e.Name, e.DeviceLabel)
	}
	return fmt.Sprintf("variable %q is not defined", e.Name)
}

// Render turns a node tree into final text. It is a pure depth-first
// traversal: the tree is never mutated, and the same tree against the same
// Environment and resolver cache state renders to identical text.
func Render(node Node, env *model.Environment, resolver *probe.Resolver) (string, error) {
	r := renderer{env: env, resolver: resolver}
	var b strings.Builder
	if err := r.render(&b, node, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderFor renders a node tree with device as the active variable scope,
// as if the tree sat inside a per-device sequence iterating only that
// device.
func RenderFor(node Node, device model.Device, env *model.Environment, resolver *probe.Resolver) (string, error) {
	r := renderer{env: env, resolver: resolver}
	var b strings.Builder
	if err := r.render(&b, node, &device); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	env      *model.Environment
	resolver *probe.Resolver
}

func (r renderer) render(b *strings.Builder, node Node, device *model.Device) error {
	switch n := node.(type) {
	case nil:
		return nil

	case litNode:
		b.WriteString(n.text)
		return nil

	case varNode:
		value, ok := r.lookup(n.name, device)
		if !ok {
			renderErr := &RenderError{Name: n.name}
			if device != nil {
				renderErr.DeviceLabel = device.Label()
			}
			return renderErr
		}
		b.WriteString(formatValue(value, n.format))
		return nil

	case whenNode:
		taken, err := r.truthy(n.pred, device)
		if err != nil {
			return err
		}
		if taken {
			return r.render(b, n.then, device)
		}
		return r.render(b, n.els, device)

	case seqNode:
		if n.perDevice {
			for _, d := range r.env.Devices() {
				for _, item := range n.items {
					if err := r.render(b, item, &d); err != nil {
						return err
					}
				}
			}
			return nil
		}
		for _, item := range n.items {
			if err := r.render(b, item, device); err != nil {
				return err
			}
		}
		return nil

	case externalNode:
		resolved := r.resolver.Resolve(n.identity)
		if resolved.OK {
			b.WriteString(resolved.Value)
			return nil
		}
		return r.render(b, n.fallback, device)
	}

	return fmt.Errorf("unknown expression node %T", node)
}

// truthy evaluates a node in predicate position. Absent variables are
// false here instead of failing; everything else follows the data model's
// truthiness rules, with composite nodes judged by whether they render to
// non-empty text.
func (r renderer) truthy(pred Node, device *model.Device) (bool, error) {
	switch n := pred.(type) {
	case nil:
		return false, nil

	case litNode:
		return n.text != "", nil

	case varNode:
		value, ok := r.lookup(n.name, device)
		if !ok {
			return false, nil
		}
		return model.Truthy(value), nil

	case whenNode:
		taken, err := r.truthy(n.pred, device)
		if err != nil {
			return false, err
		}
		if taken {
			return r.truthy(n.then, device)
		}
		return r.truthy(n.els, device)

	case externalNode:
		resolved := r.resolver.Resolve(n.identity)
		if resolved.OK {
			return resolved.Value != "", nil
		}
		return r.truthy(n.fallback, device)
	}

	var b strings.Builder
	if err := r.render(&b, pred, device); err != nil {
		return false, err
	}
	return b.String() != "", nil
}

func (r renderer) lookup(name string, device *model.Device) (cty.Value, bool) {
	if device != nil {
		if value, ok := device.Attr(name); ok {
			return value, true
		}
	}
	return r.env.Attr(name)
}

func formatValue(v cty.Value, f Format) string {
	text := model.Text(v)
	if f.Precision > 0 && v.Type() == cty.Number {
		text = v.AsBigFloat().Text('f', f.Precision)
	}
	if f.Upper {
		text = strings.ToUpper(text)
	}
	if f.Width > 0 && len(text) < f.Width {
		text = strings.Repeat(" ", f.Width-len(text)) + text
	}
	return text
}
