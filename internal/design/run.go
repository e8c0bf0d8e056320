package design

import (
	"github.com/conkygen/conkygen/internal/conky"
	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/model"
)

// Run drives one generation: the unit renders its lines against the
// environment, and the result is wrapped in the complete widget document
// using the environment's geometry. A unit error aborts the run with no
// partial output.
func Run(env *model.Environment, unit Unit, f *expr.Factory, opts conky.DocumentOpts) ([]string, error) {
	lines, err := unit.Render(env, f)
	if err != nil {
		return nil, err
	}
	return conky.Document(env.Geometry(), opts, lines), nil
}

// Builtin returns a registry preloaded with the shipped designs.
func Builtin() *Registry {
	r := NewRegistry()
	r.MustRegister("clean-stack", Info{
		Description: "Themed vertical stack: clock, system, network, CPU, memory, filesystems, top processes",
		Document: conky.DocumentOpts{
			Color:        "404040",
			ColorOutline: "808080",
			Font:         "Montserrat:size=10",
		},
	}, Func(CleanStack))
	r.MustRegister("plain", Info{
		Description: "Unstyled single block: host, clock, device labels",
	}, Func(Plain))
	return r
}
