package model

import "github.com/zclconf/go-cty/cty"

// FromGo converts a decoded YAML/JSON scalar into a typed attribute value.
// Only primitive shapes are accepted; lists, mappings, and nulls report
// ok=false so callers can raise a wrong-type error with the exact path.
func FromGo(v any) (cty.Value, bool) {
	switch t := v.(type) {
	case string:
		return cty.StringVal(t), true
	case bool:
		return cty.BoolVal(t), true
	case int:
		return cty.NumberIntVal(int64(t)), true
	case int64:
		return cty.NumberIntVal(t), true
	case uint64:
		return cty.NumberUIntVal(t), true
	case float64:
		return cty.NumberFloatVal(t), true
	}
	return cty.NilVal, false
}

// Truthy reports whether a value counts as true in predicate position:
// booleans as-is, numbers when non-zero, strings when non-empty. Absent
// values (the cty zero value) are false.
func Truthy(v cty.Value) bool {
	if v.IsNull() {
		return false
	}
	switch v.Type() {
	case cty.Bool:
		return v.True()
	case cty.Number:
		return v.AsBigFloat().Sign() != 0
	case cty.String:
		return v.AsString() != ""
	}
	return false
}

// Text renders a primitive value as plain text: strings verbatim, booleans
// as true/false, numbers in their shortest decimal form (no trailing zeros,
// no decimal point for whole numbers).
func Text(v cty.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	}
	return ""
}
