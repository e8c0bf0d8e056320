package design

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conkygen/conkygen/internal/expr"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/probe"
	probetesting "github.com/conkygen/conkygen/internal/probe/testing"
)

func parseEnv(t *testing.T, raw map[string]any) *model.Environment {
	t.Helper()
	env, err := model.Parse(raw)
	require.NoError(t, err)
	return env
}

func newFactory(env *model.Environment) (*expr.Factory, *probetesting.FakeProber) {
	prober := probetesting.NewFakeProber()
	resolver := probe.NewResolver(prober, time.Second)
	return expr.NewFactory(env, resolver), prober
}

func fullEnv(t *testing.T) *model.Environment {
	t.Helper()
	return parseEnv(t, map[string]any{
		"name": "workstation",
		"attrs": map[string]any{
			"cpu_top_processes":    2,
			"memory_top_processes": 2,
		},
		"devices": []any{
			map[string]any{"label": "wired", "kind": "network-interface", "name": "enp5s0"},
			map[string]any{"label": "cpu0", "kind": "sensor", "source": "coretemp", "index": 0},
			map[string]any{"label": "cpu1", "kind": "sensor", "source": "coretemp", "index": 1},
			map[string]any{"label": "root", "kind": "disk", "mount_path": "/", "device": "sda"},
		},
	})
}

func renderCleanStack(t *testing.T, env *model.Environment) ([]string, *probetesting.FakeProber) {
	t.Helper()
	f, prober := newFactory(env)
	prober.Respond(probe.IdentityExternalIP, "203.0.113.7")
	lines, err := CleanStack(env, f)
	require.NoError(t, err)
	return lines, prober
}

func TestCleanStack_ClockBlockComesFirst(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))

	require.Greater(t, len(lines), 4)
	assert.Equal(t, "${font MesloLGS NF-Bold:size=44}${color #a00000}${alignc}${time %H:%M}${color}${font}", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "${font Montserrat:size=14}${color #a07000}${alignc}${time %a %d %b %Y}${color}${font}", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "${font Montserrat:size=11}${color #80c0c0}SYSTEM ${hr}${color}${font}", lines[4])
}

func TestCleanStack_BlockOrder(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	headings := []string{
		"SYSTEM ${hr}",
		"NET: enp5s0 ${hr}",
		"CPU: cpu0 ${hr}",
		"CPU: cpu1 ${hr}",
		"MEMORY ${hr}",
		"FS: / ${hr}",
		"TOP: CPU ${hr}",
		"TOP: MEMORY ${hr}",
	}
	last := -1
	for _, h := range headings {
		idx := strings.Index(joined, h)
		require.NotEqual(t, -1, idx, "missing heading %q", h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestCleanStack_SystemBlock(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined,
		"${font Montserrat:size=9}${color #b0b080}Host:${alignr}${font MesloLGS NF-Bold:size=9}${color #f0f0a0}${nodename}${color}${font}")
	assert.Contains(t, joined, "Kernel:${alignr}")
	assert.Contains(t, joined, "${kernel}")
	assert.Contains(t, joined, "Uptime:${alignr}")
	assert.Contains(t, joined, "${uptime_short}")
	assert.Contains(t, joined, "External IP:${alignr}")
	assert.Contains(t, joined, "203.0.113.7")
}

func TestCleanStack_ExternalIPFallsBackToWidgetLookup(t *testing.T) {
	env := fullEnv(t)
	f, prober := newFactory(env)
	prober.Fail(probe.IdentityExternalIP, errors.New("no route to host"))

	lines, err := CleanStack(env, f)
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "203.0.113.7")
	assert.Contains(t, joined, `${execi 3600 bash -c "`)
	assert.Contains(t, joined, "https://ifconfig.me/")
	assert.Contains(t, joined, "$HOME/.external_ip")
}

func TestCleanStack_ProbesExternalIPOnce(t *testing.T) {
	_, prober := renderCleanStack(t, fullEnv(t))
	assert.Equal(t, 1, prober.CallCounts[probe.IdentityExternalIP])
	assert.Len(t, prober.Calls, 1)
}

func TestCleanStack_NetworkBlock(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined,
		`${execi 3600 ip addr show dev enp5s0 | awk '/link\/ether/{print $2}'}${alignr}`)
	assert.Contains(t, joined, "${addr enp5s0}")
}

func TestCleanStack_AddressCheckIntervalThrottlesMACLookup(t *testing.T) {
	env := parseEnv(t, map[string]any{
		"name": "router",
		"devices": []any{
			map[string]any{
				"label": "uplink", "kind": "network-interface",
				"name": "wan0", "address_check_interval": 600,
			},
		},
	})
	lines, _ := renderCleanStack(t, env)

	assert.Contains(t, strings.Join(lines, "\n"), "${execi 600 ip addr show dev wan0")
}

func TestCleanStack_CPUBlocks(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${alignc}${color #404040}${cpugraph cpu0 25,100 a0a000}${color}")
	assert.Contains(t, joined, "${alignc}${color #404040}${cpugraph cpu1 25,100 a0a000}${color}")
	assert.Contains(t, joined, "${cpu cpu 0}% / ${freq_g} GHz / ${execi 3600 sensors | awk '/Package id 0:/{print int($4)}'} C")
	assert.Contains(t, joined, "${cpu cpu 1}% / ${freq_g} GHz / ${execi 3600 sensors | awk '/Core 1:/{print int($3)}'} C")
}

func TestCleanStack_SensorWithoutIndexReadsPackageSensor(t *testing.T) {
	env := parseEnv(t, map[string]any{
		"name": "mini",
		"devices": []any{
			map[string]any{"label": "cpu", "kind": "sensor", "source": "coretemp"},
		},
	})
	lines, _ := renderCleanStack(t, env)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${cpugraph cpu0 25,100")
	assert.Contains(t, joined, "Package id 0:")
}

func TestCleanStack_MemoryBlock(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${alignc}${color #008000}${membar 10,100}${color}")
	assert.Contains(t, joined, "Usage:${alignr}")
	assert.Contains(t, joined, "${mem} / ${memmax} / ${memperc}%")
	assert.Contains(t, joined, "Swap:${alignr}")
	assert.Contains(t, joined, "${swap} / ${swapmax} / ${swapperc}%")
}

func TestCleanStack_DiskBlock(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${alignc}${color #006060}${fs_bar 10,100 /}${color}")
	assert.Contains(t, joined, "${fs_used /} / ${fs_size /} / ${fs_used_perc /}%")
	assert.Contains(t, joined, "${alignc}${color #404040}${diskiograph sda 25,100 006060}${color}")
	assert.Contains(t, joined, "${diskio /}")
}

func TestCleanStack_DiskWithoutDeviceSkipsIOGraph(t *testing.T) {
	env := parseEnv(t, map[string]any{
		"name": "nas",
		"devices": []any{
			map[string]any{"label": "pool", "kind": "disk", "mount_path": "/pool"},
		},
	})
	lines, _ := renderCleanStack(t, env)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${fs_bar 10,100 /pool}")
	assert.NotContains(t, joined, "diskiograph")
	assert.NotContains(t, joined, "I/O:")
}

func TestCleanStack_TopListsHonorAttrs(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${top name 1}")
	assert.Contains(t, joined, "${top cpu 2}%")
	assert.NotContains(t, joined, "${top name 3}")
	assert.Contains(t, joined, "${top_mem name 2}")
	assert.Contains(t, joined, "${top_mem mem 1}%")
	assert.NotContains(t, joined, "${top_mem name 3}")
}

func TestCleanStack_TopListsDefaultToFive(t *testing.T) {
	env := parseEnv(t, map[string]any{"name": "bare"})
	lines, _ := renderCleanStack(t, env)
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "${top name 5}")
	assert.NotContains(t, joined, "${top name 6}")
	assert.Contains(t, joined, "${top_mem name 5}")
	assert.NotContains(t, joined, "${top_mem name 6}")
}

func TestCleanStack_NoDevices(t *testing.T) {
	env := parseEnv(t, map[string]any{"name": "bare"})
	lines, _ := renderCleanStack(t, env)
	joined := strings.Join(lines, "\n")

	assert.NotContains(t, joined, "NET: ")
	assert.NotContains(t, joined, "CPU: ")
	assert.NotContains(t, joined, "FS: ")
	assert.Contains(t, joined, "SYSTEM ${hr}")
	assert.Contains(t, joined, "MEMORY ${hr}")
	assert.Contains(t, joined, "TOP: CPU ${hr}")
}

func TestCleanStack_DevicesKeepDeclaredOrder(t *testing.T) {
	env := parseEnv(t, map[string]any{
		"name": "multi",
		"devices": []any{
			map[string]any{"label": "second", "kind": "network-interface", "name": "eth1"},
			map[string]any{"label": "first", "kind": "network-interface", "name": "eth0"},
		},
	})
	lines, _ := renderCleanStack(t, env)
	joined := strings.Join(lines, "\n")

	assert.Less(t, strings.Index(joined, "NET: eth1"), strings.Index(joined, "NET: eth0"))
}

func TestCleanStack_BlocksSeparatedBySingleBlankLine(t *testing.T) {
	lines, _ := renderCleanStack(t, fullEnv(t))

	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			assert.NotEqual(t, "", lines[i-1], "blank lines doubled at %d", i)
		}
	}
	assert.NotEqual(t, "", lines[len(lines)-1])
}

func TestCleanStack_Deterministic(t *testing.T) {
	env := fullEnv(t)

	first, _ := renderCleanStack(t, env)
	second, _ := renderCleanStack(t, env)

	assert.Equal(t, first, second)
}
