package model

import "github.com/zclconf/go-cty/cty"

// Environment is the validated, immutable description of one monitored
// machine: its name, its devices in declared order, free-form top-level
// attributes, and the window geometry. Construct via Parse.
type Environment struct {
	name     string
	devices  []Device
	attrs    map[string]cty.Value
	geometry Geometry
}

// Name returns the machine's display name.
func (e *Environment) Name() string {
	return e.name
}

// Devices returns the devices in declared order.
func (e *Environment) Devices() []Device {
	out := make([]Device, len(e.devices))
	copy(out, e.devices)
	return out
}

// DevicesByKind returns the devices of one kind, declared order preserved.
func (e *Environment) DevicesByKind(k Kind) []Device {
	var out []Device
	for _, d := range e.devices {
		if d.kind == k {
			out = append(out, d)
		}
	}
	return out
}

// Attr looks up a top-level attribute. The declared attrs mapping is
// consulted first; the environment name is also reachable under "name".
func (e *Environment) Attr(name string) (cty.Value, bool) {
	if v, ok := e.attrs[name]; ok {
		return v, true
	}
	if name == "name" {
		return cty.StringVal(e.name), true
	}
	return cty.NilVal, false
}

// Geometry returns the window geometry block.
func (e *Environment) Geometry() Geometry {
	return e.geometry
}

// Device is one monitorable device: a disk, network interface, sensor, or
// free-form custom entry. Devices are plain values; copying one is safe.
type Device struct {
	kind  Kind
	label string
	attrs map[string]cty.Value
}

// Kind returns the device kind.
func (d Device) Kind() Kind {
	return d.kind
}

// Label returns the display label.
func (d Device) Label() string {
	return d.label
}

// Attr looks up a device attribute. The attribute mapping is consulted
// first; "label" and "kind" resolve as built-ins (Parse consumes those keys,
// so the mapping never shadows them).
func (d Device) Attr(name string) (cty.Value, bool) {
	if v, ok := d.attrs[name]; ok {
		return v, true
	}
	switch name {
	case "label":
		return cty.StringVal(d.label), true
	case "kind":
		return cty.StringVal(string(d.kind)), true
	}
	return cty.NilVal, false
}

// Geometry describes window placement and sizing for the generated widget.
type Geometry struct {
	Placement       string
	WidthMin        int
	HeightMin       int
	OuterMargin     int
	Gap             int
	RefreshInterval int
}

// DefaultGeometry returns the geometry used when the data file has no
// geometry block.
func DefaultGeometry() Geometry {
	return Geometry{
		Placement:       "top_left",
		WidthMin:        200,
		HeightMin:       500,
		OuterMargin:     20,
		Gap:             10,
		RefreshInterval: 1,
	}
}
