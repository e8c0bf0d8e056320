package conky

import (
	"fmt"
	"strings"
)

// Stock dimensions and defaults for generated widget objects.
const (
	DefaultExecInterval = 3600
	DefaultColor        = "ffffff"
	DefaultColorOutline = "808080"
	DefaultFont         = "FreeSans:size=12"
	DefaultMeterWidth   = 100
	DefaultMeterHeight  = 25
	DefaultBarWidth     = 100
	DefaultBarHeight    = 10
)

// externalIPRefreshSeconds is how long the widget trusts the external IP
// cache file before re-querying the lookup service.
const externalIPRefreshSeconds = 14400

// Text renders any value as literal text.
func Text(value any) string {
	return fmt.Sprint(value)
}

// ColorIndex sets a color by index number (${colorN}).
func ColorIndex(index int) string {
	return fmt.Sprintf("${color%d}", index)
}

// ColorClear restores the default color (${color}).
func ColorClear() string {
	return "${color}"
}

// FontClear restores the default font (${font}).
func FontClear() string {
	return "${font}"
}

// Center centers the rest of the current line (${alignc}).
func Center() string {
	return "${alignc}"
}

// Right right-justifies the rest of the current line (${alignr}).
func Right() string {
	return "${alignr}"
}

// TimeDate injects a strftime-formatted time or date (${time ...}).
func TimeDate(format string) string {
	return fmt.Sprintf("${time %s}", format)
}

// HorizontalRule injects a horizontal rule (${hr}).
func HorizontalRule() string {
	return "${hr}"
}

// Offset injects a horizontal and or vertical offset. Zero values emit
// nothing.
func Offset(x, y int) string {
	var b strings.Builder
	if x != 0 {
		fmt.Fprintf(&b, "${offset %d}", x)
	}
	if y != 0 {
		fmt.Fprintf(&b, "${voffset %d}", y)
	}
	return b.String()
}

// Exec injects an external command's output refreshed on every widget
// cycle (${exec ...}). Use ExecEvery for anything expensive.
func Exec(command string) string {
	return fmt.Sprintf("${exec %s}", command)
}

// ExecEvery injects an external command's output throttled to run every
// interval seconds (${execi ...}). A non-positive interval falls back to
// DefaultExecInterval.
func ExecEvery(command string, interval int) string {
	if interval <= 0 {
		interval = DefaultExecInterval
	}
	return fmt.Sprintf("${execi %d %s}", interval, command)
}

// HostName injects the host name (${nodename}).
func HostName() string {
	return "${nodename}"
}

// Kernel injects the kernel release (${kernel}).
func Kernel() string {
	return "${kernel}"
}

// Uptime injects the uptime, in short form when short is true.
func Uptime(short bool) string {
	if short {
		return "${uptime_short}"
	}
	return "${uptime}"
}

// IPAddr injects a network interface's IP address (${addr ...}).
func IPAddr(iface string) string {
	return fmt.Sprintf("${addr %s}", iface)
}

// MACAddress injects a network interface's MAC address via an ip/awk
// pipeline, throttled to interval seconds.
func MACAddress(iface string, interval int) string {
	command := fmt.Sprintf("ip addr show dev %s | awk '/link\\/ether/{print $2}'", iface)
	return ExecEvery(command, interval)
}

// ExternalIP injects the machine's public IP via a self-caching shell
// pipeline: the cache file refreshes when older than four hours, otherwise
// the cached value prints without a network round trip.
func ExternalIP(interval int) string {
	command := fmt.Sprintf(
		"[ $(( $(date +%%s) - $(test -f %[1]s && date -r %[1]s +%%s || echo 0) )) -gt %[2]d ]"+
			" && { curl -s %[3]s | tee %[1]s; } || cat %[1]s",
		"$HOME/.external_ip", externalIPRefreshSeconds, "https://ifconfig.me/")
	return ExecEvery(`bash -c "`+command+`"`, interval)
}

// CPUPercent injects one CPU's usage percent.
func CPUPercent(cpu int) string {
	return fmt.Sprintf("${cpu cpu %d}%%", cpu)
}

// CPUFrequency injects the CPU frequency in GHz.
func CPUFrequency() string {
	return "${freq_g} GHz"
}

// CPUTemperature injects one CPU's temperature in Celsius via a
// sensors/awk pipeline, throttled to interval seconds. CPU 0 reads the
// package sensor; other numbers read their core sensor.
func CPUTemperature(cpu, interval int) string {
	searchText := fmt.Sprintf("Core %d:", cpu)
	fieldNumber := 3
	if cpu == 0 {
		searchText = "Package id 0:"
		fieldNumber = 4
	}
	command := fmt.Sprintf("sensors | awk '/%s/{print int($%d)}'", searchText, fieldNumber)
	return ExecEvery(command, interval) + " C"
}

// TopName injects the name of the n-th top CPU consumer.
func TopName(n int) string {
	return fmt.Sprintf("${top name %d}", n)
}

// TopCPU injects the CPU percent of the n-th top CPU consumer.
func TopCPU(n int) string {
	return fmt.Sprintf("${top cpu %d}%%", n)
}

// TopMemName injects the name of the n-th top memory consumer.
func TopMemName(n int) string {
	return fmt.Sprintf("${top_mem name %d}", n)
}

// TopMemPercent injects the memory percent of the n-th top memory
// consumer.
func TopMemPercent(n int) string {
	return fmt.Sprintf("${top_mem mem %d}%%", n)
}

// MemoryUsed injects memory in use (${mem}).
func MemoryUsed() string {
	return "${mem}"
}

// MemoryMax injects total memory (${memmax}).
func MemoryMax() string {
	return "${memmax}"
}

// MemoryPercent injects the memory percent used.
func MemoryPercent() string {
	return "${memperc}%"
}

// MemoryTriplet injects the slash-separated used / total / percent memory
// summary.
func MemoryTriplet() string {
	return "${mem} / ${memmax} / ${memperc}%"
}

// SwapUsed injects swap in use (${swap}).
func SwapUsed() string {
	return "${swap}"
}

// SwapMax injects total swap (${swapmax}).
func SwapMax() string {
	return "${swapmax}"
}

// SwapPercent injects the swap percent used.
func SwapPercent() string {
	return "${swapperc}%"
}

// SwapTriplet injects the slash-separated used / total / percent swap
// summary.
func SwapTriplet() string {
	return "${swap} / ${swapmax} / ${swapperc}%"
}

// FSUsed injects the space used on the filesystem at mount.
func FSUsed(mount string) string {
	return fmt.Sprintf("${fs_used %s}", mount)
}

// FSSize injects the size of the filesystem at mount.
func FSSize(mount string) string {
	return fmt.Sprintf("${fs_size %s}", mount)
}

// FSUsedPercent injects the percent used of the filesystem at mount.
func FSUsedPercent(mount string) string {
	return fmt.Sprintf("${fs_used_perc %s}%%", mount)
}

// FSTriplet injects the slash-separated used / size / percent summary for
// the filesystem at mount.
func FSTriplet(mount string) string {
	return fmt.Sprintf("${fs_used %[1]s} / ${fs_size %[1]s} / ${fs_used_perc %[1]s}%%", mount)
}

// DiskIO injects the I/O rate for the filesystem at mount.
func DiskIO(mount string) string {
	return fmt.Sprintf("${diskio %s}", mount)
}

// MeterOpts configures a graph meter. Zero Width and Height take the stock
// meter dimensions. Color1 and Color2 are raw hex gradient colors;
// BorderColor prefixes a color change for the graph border.
type MeterOpts struct {
	Width       int
	Height      int
	Param       string
	Color1      string
	Color2      string
	BorderColor string
}

// Meter injects a graph object (${cpugraph ...}, ${diskiograph ...} and
// friends). The widget expects height before width.
func Meter(graphType string, opts MeterOpts) string {
	width := opts.Width
	if width == 0 {
		width = DefaultMeterWidth
	}
	height := opts.Height
	if height == 0 {
		height = DefaultMeterHeight
	}

	param := ""
	if opts.Param != "" {
		param = " " + opts.Param
	}

	colors := ""
	switch {
	case opts.Color1 != "" && opts.Color2 != "":
		colors = " " + opts.Color1 + " " + opts.Color2
	case opts.Color1 != "":
		colors = " " + opts.Color1
	case opts.Color2 != "":
		colors = " " + opts.Color2
	}

	border := ""
	if opts.BorderColor != "" {
		border = fmt.Sprintf("${color #%s}", opts.BorderColor)
	}

	return fmt.Sprintf("%s${%s%s %d,%d%s}", border, graphType, param, height, width, colors)
}

// BarOpts configures a horizontal bar. Zero Width and Height take the
// stock bar dimensions. Color is a raw hex spec applied before the bar.
type BarOpts struct {
	Width  int
	Height int
	Color  string
	Param  string
}

// Bar injects a horizontal bar object (${membar ...}, ${fs_bar ...} and
// friends). The widget expects height before width.
func Bar(barType string, opts BarOpts) string {
	width := opts.Width
	if width == 0 {
		width = DefaultBarWidth
	}
	height := opts.Height
	if height == 0 {
		height = DefaultBarHeight
	}

	param := ""
	if opts.Param != "" {
		param = " " + opts.Param
	}

	color := ""
	if opts.Color != "" {
		color = fmt.Sprintf("${color #%s}", opts.Color)
	}

	return fmt.Sprintf("%s${%s %d,%d%s}", color, barType, height, width, param)
}

// CPUMeter injects a usage graph for one CPU.
func CPUMeter(cpu int, opts MeterOpts) string {
	opts.Param = fmt.Sprintf("cpu%d", cpu)
	return Meter("cpugraph", opts)
}

// MemBar injects a memory usage bar.
func MemBar(opts BarOpts) string {
	return Bar("membar", opts)
}

// FSBar injects a usage bar for the filesystem at mount.
func FSBar(mount string, opts BarOpts) string {
	opts.Param = mount
	return Bar("fs_bar", opts)
}

// DiskIOMeter injects an I/O graph for a block device.
func DiskIOMeter(device string, opts MeterOpts) string {
	opts.Param = device
	return Meter("diskiograph", opts)
}
