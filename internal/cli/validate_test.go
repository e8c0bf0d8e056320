package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conkygen/conkygen/internal/errors"
	"github.com/conkygen/conkygen/internal/model"
	"github.com/conkygen/conkygen/internal/ui"
)

const richMachine = `name: lab
devices:
  - kind: disk
    label: root
    mount_path: /
    device: sda
  - kind: network-interface
    label: wired
    name: eth0
`

func TestValidate_ValidFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "machine.yaml", richMachine)
	resetFlags()
	ui.DisableColors()

	output, err := captureStdout(t, func() error {
		return validateDataFile(path)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "is valid")
	assert.Contains(t, output, "Machine: lab")
	assert.Contains(t, output, "Geometry: top_left, 200x500 minimum, refresh every 1s")
	assert.Contains(t, output, "2 devices declared")
	assert.Contains(t, output, "root (disk)")
	assert.Contains(t, output, "mount_path=/, device=sda")
	assert.Contains(t, output, "wired (network-interface)")
	assert.Contains(t, output, "name=eth0")
}

func TestValidate_NoDevices(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "machine.yaml", "name: bare\n")
	resetFlags()
	ui.DisableColors()

	output, err := captureStdout(t, func() error {
		return validateDataFile(path)
	})
	require.NoError(t, err)

	assert.Contains(t, output, "is valid")
	assert.Contains(t, output, "No devices declared")
}

func TestValidate_InvalidFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "machine.yaml", "name: lab\ndevices:\n  - kind: disk\n    label: root\n")
	resetFlags()

	err := validateDataFile(path)
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrValidation))
	assert.Contains(t, err.Error(), "doesn't describe a valid machine")
	assert.Contains(t, err.Error(), "devices[0].mount_path")
}

func TestValidate_FileMissing(t *testing.T) {
	isolate(t)
	resetFlags()

	err := validateDataFile("nowhere.yaml")
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "Data file not found")
}

func TestValidateCommand_ThroughRoot(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, "machine.yaml", richMachine)
	ui.DisableColors()

	output, err := captureStdout(t, func() error {
		return runRoot(t, "validate", "machine.yaml", "--color", "never")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "machine.yaml is valid")
}

func TestDescribeDevice(t *testing.T) {
	env, err := model.Parse(map[string]any{
		"name": "lab",
		"devices": []any{
			map[string]any{"kind": "disk", "label": "root", "mount_path": "/", "device": "sda"},
			map[string]any{"kind": "custom", "label": "widget"},
		},
	})
	require.NoError(t, err)

	devices := env.Devices()
	assert.Equal(t, "mount_path=/, device=sda", describeDevice(devices[0]))
	assert.Equal(t, "no declared attributes", describeDevice(devices[1]))
}
