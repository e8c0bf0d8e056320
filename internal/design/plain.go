package design

import (
	"strings"

	"github.com/conkygen/conkygen/internal/conky"
	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/model"
)

// Plain renders the unstyled starter design: the host name, a clock, and
// one "kind: label" line per declared device. It is the smallest working
// example of composing a design from the expression factory.
func Plain(env *model.Environment, f *expr.Factory) ([]string, error) {
	listing, err := f.Render(f.Seq(
		f.Lit(conky.HostName()),
		f.Lit("\n"),
		f.Lit(conky.TimeDate("%H:%M")),
		f.Lit("\n\n"),
		f.PerDevice(f.Var("kind"), f.Lit(": "), f.Var("label"), f.Lit("\n")),
	))
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(listing, "\n"), "\n"), nil
}
