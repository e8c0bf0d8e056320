package expr

import (
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/probe"
)

// Factory is the expression handle a design unit receives: the node
// constructors bound to one validated Environment and one fresh per-run
// Resolver. Bind a new Factory per run; sharing one across runs would
// leak cached probe outcomes between them.
type Factory struct {
	env      *model.Environment
	resolver *probe.Resolver
}

// NewFactory binds env and resolver into a Factory.
func NewFactory(env *model.Environment, resolver *probe.Resolver) *Factory {
	return &Factory{env: env, resolver: resolver}
}

// Env returns the bound Environment.
func (f *Factory) Env() *model.Environment {
	return f.env
}

// Resolver returns the bound per-run resolver.
func (f *Factory) Resolver() *probe.Resolver {
	return f.resolver
}

// Lit wraps literal text verbatim.
func (f *Factory) Lit(text string) Node {
	return Lit(text)
}

// Var looks up a device or Environment attribute.
func (f *Factory) Var(name string) Node {
	return Var(name)
}

// VarF is Var with formatting.
func (f *Factory) VarF(name string, format Format) Node {
	return VarF(name, format)
}

// When renders exactly one branch based on the predicate's truthiness.
func (f *Factory) When(pred, then, els Node) Node {
	return When(pred, then, els)
}

// Seq concatenates children in order with no separator.
func (f *Factory) Seq(items ...Node) Node {
	return Seq(items...)
}

// PerDevice renders its children once per device in declared order.
func (f *Factory) PerDevice(items ...Node) Node {
	return PerDevice(items...)
}

// External renders a probe's value, or the fallback when the probe failed.
func (f *Factory) External(identity probe.Identity, fallback Node) Node {
	return External(identity, fallback)
}

// Render renders one node tree against the bound Environment.
func (f *Factory) Render(node Node) (string, error) {
	return Render(node, f.env, f.resolver)
}

// RenderFor renders one node tree with device as the active scope. Design
// units use this to build a block for a single device outside a PerDevice
// sequence, for example one section per disk.
func (f *Factory) RenderFor(device model.Device, node Node) (string, error) {
	return RenderFor(node, device, f.env, f.resolver)
}

// RenderLines renders each node as one output line.
func (f *Factory) RenderLines(nodes ...Node) ([]string, error) {
	lines := make([]string, 0, len(nodes))
	for _, node := range nodes {
		line, err := f.Render(node)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
