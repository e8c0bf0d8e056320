package design

import (
	"fmt"
	"sort"

	"github.com/conkygen/conkygen/internal/conky"
	"github.com/conkygen/conkygen/internal/errors"
	"github.com/conkygen/conkygen/internal/util"
)

// Info describes a registered design: the text shown in listings and the
// document defaults the design looks best with.
type Info struct {
	Description string
	Document    conky.DocumentOpts
}

// Registry maps design names to units.
type Registry struct {
	units map[string]Unit
	infos map[string]Info
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units: make(map[string]Unit),
		infos: make(map[string]Info),
	}
}

// Register adds a unit under name. Names must be unique within a registry.
func (r *Registry) Register(name string, info Info, unit Unit) error {
	if name == "" {
		return errors.New(errors.ErrDesign,
			"Design name is empty",
			"Register designs under a non-empty name")
	}
	if unit == nil {
		return errors.New(errors.ErrDesign,
			fmt.Sprintf("Design '%s' has no unit", name),
			"Pass a Unit, or wrap a plain function in design.Func")
	}
	if _, exists := r.units[name]; exists {
		return errors.New(errors.ErrDesign,
			fmt.Sprintf("Design '%s' is already registered", name),
			"Each design needs its own name within a registry")
	}
	r.units[name] = unit
	r.infos[name] = info
	return nil
}

// MustRegister is Register for static design sets, panicking on error.
func (r *Registry) MustRegister(name string, info Info, unit Unit) {
	if err := r.Register(name, info, unit); err != nil {
		panic(err)
	}
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (Unit, error) {
	unit, ok := r.units[name]
	if !ok {
		suggestion := "Run 'conkygen designs' to see what's available"
		if similar := util.SuggestSimilar(name, r.Names(), 3); len(similar) > 0 {
			suggestion = fmt.Sprintf("Did you mean one of these? %s", util.JoinOrNone(similar))
		}
		return nil, errors.New(errors.ErrDesign,
			fmt.Sprintf("Design '%s' doesn't exist", name),
			suggestion)
	}
	return unit, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the info registered under name.
func (r *Registry) Describe(name string) (Info, bool) {
	info, ok := r.infos[name]
	return info, ok
}
