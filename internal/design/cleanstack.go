package design

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/conkygen/conkygen/internal/conky"
	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/probe"
)

// Clock formats and the stock top-list length for the clean-stack design.
const (
	cleanStackTimeFormat = "%H:%M"
	cleanStackDateFormat = "%a %d %b %Y"
	defaultTopProcesses  = 5
)

// cleanStackTheme is the clean-stack palette: muted grays for chrome, one
// accent color per section, a condensed sans for labels and a monospace
// for data.
func cleanStackTheme() *conky.Theme {
	return conky.NewTheme().
		SetColors(map[string]string{
			conky.SlotHeading: "80c0c0",
			conky.SlotLabel:   "b0b080",
			conky.SlotData:    "f0f0a0",
			conky.SlotTime:    "a00000",
			conky.SlotDate:    "a07000",
			"graph_border":    "404040",
			"cpu":             "a0a000",
			"memory":          "008000",
			"filesystem":      "006060",
		}).
		SetFonts(map[string]string{
			conky.SlotHeading: "Montserrat:size=11",
			conky.SlotLabel:   "Montserrat:size=9",
			conky.SlotData:    "MesloLGS NF-Bold:size=9",
			conky.SlotTime:    "MesloLGS NF-Bold:size=44",
			conky.SlotDate:    "Montserrat:size=14",
		})
}

// stack accumulates blank-line-separated blocks of widget text.
type stack struct {
	theme *conky.Theme
	lines []string
}

// block appends one section: an optional themed heading, then its lines.
func (s *stack) block(heading string, lines ...string) {
	if len(s.lines) > 0 {
		s.lines = append(s.lines, "")
	}
	if heading != "" {
		s.lines = append(s.lines, s.theme.HeadingLine(heading))
	}
	s.lines = append(s.lines, lines...)
}

// CleanStack renders the themed vertical stack: a large clock, a system
// summary, one block per network interface, one CPU block per sensor, the
// memory block, one block per disk, and the top process lists. The
// external IP resolves at generation time; when the probe fails, the line
// falls back to a self-caching lookup the widget runs itself.
func CleanStack(env *model.Environment, f *expr.Factory) ([]string, error) {
	theme := cleanStackTheme()
	s := &stack{theme: theme}

	s.block("",
		theme.TimeLine(cleanStackTimeFormat),
		"",
		theme.DateLine(cleanStackDateFormat),
	)

	externalIP, err := f.Render(f.External(probe.IdentityExternalIP, f.Lit(conky.ExternalIP(0))))
	if err != nil {
		return nil, err
	}
	s.block("SYSTEM",
		theme.NameValueLine("Host:", conky.HostName()),
		theme.NameValueLine("Kernel:", conky.Kernel()),
		theme.NameValueLine("Uptime:", conky.Uptime(true)),
		theme.NameValueLine("External IP:", externalIP),
	)

	for _, dev := range env.DevicesByKind(model.KindNetworkInterface) {
		iface, err := f.RenderFor(dev, f.Var("name"))
		if err != nil {
			return nil, err
		}
		interval := deviceInt(dev, "address_check_interval", 0)
		s.block("NET: "+iface,
			theme.NameValueLine(conky.MACAddress(iface, interval), conky.IPAddr(iface)),
		)
	}

	for _, dev := range env.DevicesByKind(model.KindSensor) {
		cpu := deviceInt(dev, "index", 0)
		s.block("CPU: "+dev.Label(),
			theme.CenteredLine(conky.CPUMeter(cpu, conky.MeterOpts{
				Color1:      theme.ColorSpec("cpu"),
				BorderColor: theme.ColorSpec("graph_border"),
			})),
			theme.TripletLine(
				conky.CPUPercent(cpu),
				conky.CPUFrequency(),
				conky.CPUTemperature(cpu, 0),
			),
		)
	}

	s.block("MEMORY",
		theme.CenteredLine(conky.MemBar(conky.BarOpts{Color: theme.ColorSpec("memory")})),
		theme.NameValueLine("Usage:", conky.MemoryTriplet()),
		theme.NameValueLine("Swap:", conky.SwapTriplet()),
	)

	for _, dev := range env.DevicesByKind(model.KindDisk) {
		mount, err := f.RenderFor(dev, f.Var("mount_path"))
		if err != nil {
			return nil, err
		}
		blockDevice, err := f.RenderFor(dev, f.When(f.Var("device"), f.Var("device"), nil))
		if err != nil {
			return nil, err
		}

		lines := []string{
			theme.CenteredLine(conky.FSBar(mount, conky.BarOpts{Color: theme.ColorSpec("filesystem")})),
			theme.NameValueLine("Usage:", conky.FSTriplet(mount)),
		}
		if blockDevice != "" {
			lines = append(lines,
				theme.CenteredLine(conky.DiskIOMeter(blockDevice, conky.MeterOpts{
					Color1:      theme.ColorSpec("filesystem"),
					BorderColor: theme.ColorSpec("graph_border"),
				})),
				theme.NameValueLine("I/O:", conky.DiskIO(mount)),
			)
		}
		s.block("FS: "+mount, lines...)
	}

	var cpuTop []string
	for n := 1; n <= envInt(env, "cpu_top_processes", defaultTopProcesses); n++ {
		cpuTop = append(cpuTop, theme.NameValueLine(conky.TopName(n), conky.TopCPU(n)))
	}
	s.block("TOP: CPU", cpuTop...)

	var memTop []string
	for n := 1; n <= envInt(env, "memory_top_processes", defaultTopProcesses); n++ {
		memTop = append(memTop, theme.NameValueLine(conky.TopMemName(n), conky.TopMemPercent(n)))
	}
	s.block("TOP: MEMORY", memTop...)

	return s.lines, nil
}

// envInt reads a numeric environment attribute, falling back when absent
// or not a number.
func envInt(env *model.Environment, name string, fallback int) int {
	v, ok := env.Attr(name)
	return attrInt(v, ok, fallback)
}

// deviceInt reads a numeric device attribute.
func deviceInt(dev model.Device, name string, fallback int) int {
	v, ok := dev.Attr(name)
	return attrInt(v, ok, fallback)
}

func attrInt(v cty.Value, ok bool, fallback int) int {
	if !ok || !v.Type().Equals(cty.Number) {
		return fallback
	}
	n, _ := v.AsBigFloat().Int64()
	return int(n)
}
