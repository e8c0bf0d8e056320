package design

import (
	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/model"
)

// Unit is the contract a design implements: render the widget text lines
// for one environment. The environment is already validated and the
// factory is bound to a fresh resolver for this run.
type Unit interface {
	Render(env *model.Environment, f *expr.Factory) ([]string, error)
}

// Func adapts a plain function to the Unit contract.
type Func func(env *model.Environment, f *expr.Factory) ([]string, error)

// Render calls the function.
func (fn Func) Render(env *model.Environment, f *expr.Factory) ([]string, error) {
	return fn(env, f)
}
