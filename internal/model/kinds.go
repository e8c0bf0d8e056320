package model

import "github.com/zclconf/go-cty/cty"

// Kind identifies what a device is, which determines the attributes it must
// and may declare.
type Kind string

// Device kinds understood by the data model.
const (
	KindDisk             Kind = "disk"
	KindNetworkInterface Kind = "network-interface"
	KindSensor           Kind = "sensor"
	KindCustom           Kind = "custom"
)

// Kinds returns all known kinds in stable order.
func Kinds() []Kind {
	return []Kind{KindDisk, KindNetworkInterface, KindSensor, KindCustom}
}

// KindNames returns the string form of all known kinds, for error messages.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind maps a raw string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindDisk, KindNetworkInterface, KindSensor, KindCustom:
		return Kind(s), true
	}
	return "", false
}

func (k Kind) String() string {
	return string(k)
}

// AttrSpec declares a typed attribute a device kind understands.
type AttrSpec struct {
	Name     string
	Type     cty.Type
	Required bool
}

// attrSpecs is the per-kind attribute registry. Declared attributes get
// required-presence and type enforcement in Parse; anything else on a device
// is accepted as a free-form primitive. Extending a kind means adding a row
// here, not touching validation code.
var attrSpecs = map[Kind][]AttrSpec{
	KindDisk: {
		{Name: "mount_path", Type: cty.String, Required: true},
		{Name: "device", Type: cty.String, Required: false},
	},
	KindNetworkInterface: {
		{Name: "name", Type: cty.String, Required: true},
		{Name: "address_check_interval", Type: cty.Number, Required: false},
	},
	KindSensor: {
		{Name: "source", Type: cty.String, Required: true},
		{Name: "index", Type: cty.Number, Required: false},
	},
	KindCustom: {},
}

// Specs returns the declared attribute specs for the kind.
func (k Kind) Specs() []AttrSpec {
	specs := attrSpecs[k]
	out := make([]AttrSpec, len(specs))
	copy(out, specs)
	return out
}

// spec returns the declared spec for a single attribute name.
func (k Kind) spec(name string) (AttrSpec, bool) {
	for _, s := range attrSpecs[k] {
		if s.Name == name {
			return s, true
		}
	}
	return AttrSpec{}, false
}
