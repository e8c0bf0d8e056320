package model

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/conkygen/conkygen/internal/util"
)

// Rules cited by ValidationError.
const (
	RuleMissing     = "missing"
	RuleWrongType   = "wrong type"
	RuleUnknownKind = "unknown kind"
)

// ValidationError pinpoints the first problem found in a raw data mapping.
// Path is the offending location in the input ("devices[2].mount_path"),
// Rule is one of the Rule constants, and Detail says what was expected.
type ValidationError struct {
	Path   string
	Rule   string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Rule)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Path, e.Rule, e.Detail)
}

// Parse validates a raw nested mapping as decoded from YAML or JSON and
// builds the Environment. It returns *ValidationError for the first problem
// found and never returns a partially populated Environment. Unknown keys at
// the top level and inside geometry are ignored so data files can carry
// annotations without breaking.
func Parse(raw map[string]any) (*Environment, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Path: "name", Rule: RuleMissing,
			Detail: "data file is empty - it needs at least a name"}
	}

	nameRaw, ok := raw["name"]
	if !ok {
		return nil, &ValidationError{Path: "name", Rule: RuleMissing,
			Detail: "every environment needs a name"}
	}
	name, ok := nameRaw.(string)
	if !ok {
		return nil, &ValidationError{Path: "name", Rule: RuleWrongType,
			Detail: fmt.Sprintf("expected a string, got %s", typeName(nameRaw))}
	}
	if name == "" {
		return nil, &ValidationError{Path: "name", Rule: RuleMissing,
			Detail: "name must not be empty"}
	}

	env := &Environment{
		name:     name,
		attrs:    make(map[string]cty.Value),
		geometry: DefaultGeometry(),
	}

	if devicesRaw, ok := raw["devices"]; ok {
		list, ok := devicesRaw.([]any)
		if !ok {
			return nil, &ValidationError{Path: "devices", Rule: RuleWrongType,
				Detail: fmt.Sprintf("expected a list, got %s", typeName(devicesRaw))}
		}
		for i, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, &ValidationError{Path: fmt.Sprintf("devices[%d]", i), Rule: RuleWrongType,
					Detail: fmt.Sprintf("each device must be a mapping, got %s", typeName(item))}
			}
			device, verr := parseDevice(i, m)
			if verr != nil {
				return nil, verr
			}
			env.devices = append(env.devices, device)
		}
	}

	if attrsRaw, ok := raw["attrs"]; ok {
		m, ok := attrsRaw.(map[string]any)
		if !ok {
			return nil, &ValidationError{Path: "attrs", Rule: RuleWrongType,
				Detail: fmt.Sprintf("expected a mapping, got %s", typeName(attrsRaw))}
		}
		for _, key := range sortedKeys(m) {
			val, ok := FromGo(m[key])
			if !ok {
				return nil, &ValidationError{Path: "attrs." + key, Rule: RuleWrongType,
					Detail: fmt.Sprintf("attribute values must be strings, numbers, or booleans, got %s", typeName(m[key]))}
			}
			env.attrs[key] = val
		}
	}

	if geometryRaw, ok := raw["geometry"]; ok {
		m, ok := geometryRaw.(map[string]any)
		if !ok {
			return nil, &ValidationError{Path: "geometry", Rule: RuleWrongType,
				Detail: fmt.Sprintf("expected a mapping, got %s", typeName(geometryRaw))}
		}
		if verr := parseGeometry(m, &env.geometry); verr != nil {
			return nil, verr
		}
	}

	return env, nil
}

// parseDevice validates one device mapping. Every key besides kind and label
// is an attribute; declared attributes are coerced to their registered type.
func parseDevice(index int, raw map[string]any) (Device, *ValidationError) {
	path := fmt.Sprintf("devices[%d]", index)

	kindRaw, ok := raw["kind"]
	if !ok {
		return Device{}, &ValidationError{Path: path + ".kind", Rule: RuleMissing,
			Detail: "every device needs a kind"}
	}
	kindStr, ok := kindRaw.(string)
	if !ok {
		return Device{}, &ValidationError{Path: path + ".kind", Rule: RuleWrongType,
			Detail: fmt.Sprintf("expected a string, got %s", typeName(kindRaw))}
	}
	kind, ok := ParseKind(kindStr)
	if !ok {
		detail := fmt.Sprintf("known kinds: %s", util.JoinOrNone(KindNames()))
		if matches := util.SuggestSimilar(kindStr, KindNames(), 3); len(matches) > 0 {
			detail = fmt.Sprintf("did you mean '%s'? %s", matches[0], detail)
		}
		return Device{}, &ValidationError{Path: path + ".kind", Rule: RuleUnknownKind, Detail: detail}
	}

	labelRaw, ok := raw["label"]
	if !ok {
		return Device{}, &ValidationError{Path: path + ".label", Rule: RuleMissing,
			Detail: "every device needs a label"}
	}
	label, ok := labelRaw.(string)
	if !ok {
		return Device{}, &ValidationError{Path: path + ".label", Rule: RuleWrongType,
			Detail: fmt.Sprintf("expected a string, got %s", typeName(labelRaw))}
	}
	if label == "" {
		return Device{}, &ValidationError{Path: path + ".label", Rule: RuleMissing,
			Detail: "label must not be empty"}
	}

	attrs := make(map[string]cty.Value)
	for _, key := range sortedKeys(raw) {
		if key == "kind" || key == "label" {
			continue
		}
		val, ok := FromGo(raw[key])
		if !ok {
			return Device{}, &ValidationError{Path: path + "." + key, Rule: RuleWrongType,
				Detail: fmt.Sprintf("attribute values must be strings, numbers, or booleans, got %s", typeName(raw[key]))}
		}
		if spec, declared := kind.spec(key); declared {
			converted, err := convert.Convert(val, spec.Type)
			if err != nil {
				return Device{}, &ValidationError{Path: path + "." + key, Rule: RuleWrongType,
					Detail: fmt.Sprintf("%s expects a %s, got %s", key, spec.Type.FriendlyName(), typeName(raw[key]))}
			}
			val = converted
		}
		attrs[key] = val
	}

	for _, spec := range kind.Specs() {
		if !spec.Required {
			continue
		}
		if _, ok := attrs[spec.Name]; !ok {
			return Device{}, &ValidationError{Path: path + "." + spec.Name, Rule: RuleMissing,
				Detail: fmt.Sprintf("%s devices need a %s", kind, spec.Name)}
		}
	}

	return Device{kind: kind, label: label, attrs: attrs}, nil
}

// parseGeometry overlays explicit geometry fields onto the defaults.
func parseGeometry(raw map[string]any, g *Geometry) *ValidationError {
	if v, ok := raw["placement"]; ok {
		s, ok := v.(string)
		if !ok {
			return &ValidationError{Path: "geometry.placement", Rule: RuleWrongType,
				Detail: fmt.Sprintf("expected a string, got %s", typeName(v))}
		}
		g.Placement = s
	}

	intFields := []struct {
		key string
		dst *int
	}{
		{"width_min", &g.WidthMin},
		{"height_min", &g.HeightMin},
		{"outer_margin", &g.OuterMargin},
		{"gap", &g.Gap},
		{"refresh_interval", &g.RefreshInterval},
	}
	for _, f := range intFields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		n, ok := coerceInt(v)
		if !ok {
			return &ValidationError{Path: "geometry." + f.key, Rule: RuleWrongType,
				Detail: fmt.Sprintf("expected a whole number, got %s", typeName(v))}
		}
		*f.dst = n
	}
	return nil
}

// typeName names a decoded value's shape the way a data file author sees it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	}
	return fmt.Sprintf("%T", v)
}

// coerceInt accepts the integer shapes YAML and JSON decoders produce.
// JSON decodes all numbers as float64, so integral floats count.
func coerceInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
