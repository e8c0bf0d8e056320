package expr

import "github.com/conkygen/conkygen/internal/probe"

// Node is one immutable unit of templated output. The concrete variants
// are private; build trees through the constructors so their invariants
// hold (notably sequence flattening).
type Node interface {
	node()
}

// Format controls how a variable's value is rendered. The zero value
// renders verbatim. Width right-aligns by space padding, Precision fixes
// the number of decimals for numeric values, Upper uppercases the text.
type Format struct {
	Width     int
	Precision int
	Upper     bool
}

type litNode struct {
	text string
}

type varNode struct {
	name   string
	format Format
}

type whenNode struct {
	pred Node
	then Node
	els  Node
}

type seqNode struct {
	items     []Node
	perDevice bool
}

type externalNode struct {
	identity probe.Identity
	fallback Node
}

func (litNode) node()      {}
func (varNode) node()      {}
func (whenNode) node()     {}
func (seqNode) node()      {}
func (externalNode) node() {}

// Lit wraps literal text verbatim. No escaping is performed; keeping
// literals safe for the target syntax is the design unit's job.
func Lit(text string) Node {
	return litNode{text: text}
}

// Var looks up name against the active device's attributes, then the
// Environment's. Rendering fails if the name is absent from both.
func Var(name string) Node {
	return varNode{name: name}
}

// VarF is Var with formatting applied to the value.
func VarF(name string, format Format) Node {
	return varNode{name: name, format: format}
}

// When renders exactly one branch. The predicate is evaluated to a boolean
// by the data model's truthiness rules, with one softening: a variable
// absent from every scope counts as false rather than failing. The untaken
// branch is never evaluated. Either branch may be nil, rendering nothing.
func When(pred, then, els Node) Node {
	return whenNode{pred: pred, then: then, els: els}
}

// Seq concatenates its children in order with no separator. Nested Seq
// values flatten into a single level at construction, so inspecting a tree
// shows branching only where it is semantically distinct. Per-device
// sequences are kept intact. Nil children are dropped.
func Seq(items ...Node) Node {
	return seqNode{items: flatten(items)}
}

// PerDevice is a Seq that renders once per device: the Environment's
// devices are iterated in declared order, the subtree rendered with each
// device as the active variable scope, results concatenated in device
// order with no separator.
func PerDevice(items ...Node) Node {
	return seqNode{items: flatten(items), perDevice: true}
}

// External renders the resolved probe value when the probe succeeded, and
// the fallback node otherwise. A nil fallback renders nothing on failure.
func External(identity probe.Identity, fallback Node) Node {
	return externalNode{identity: identity, fallback: fallback}
}

func flatten(items []Node) []Node {
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if nested, ok := item.(seqNode); ok && !nested.perDevice {
			out = append(out, nested.items...)
			continue
		}
		out = append(out, item)
	}
	return out
}
