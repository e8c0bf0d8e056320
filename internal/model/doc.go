// Package model defines the validated data model: an Environment describing
// one machine and the ordered devices (disks, network interfaces, sensors)
// a design renders widgets for.
//
// # Shape
//
// The raw input is a plain nested mapping as decoded from YAML or JSON:
//
//	name: workstation
//	devices:
//	  - kind: disk
//	    label: root
//	    mount_path: /
//	attrs:
//	  show_swap: true
//	geometry:
//	  placement: top_right
//
// Parse validates the mapping and returns an immutable Environment; all
// fields are unexported and reachable only through accessor methods, so a
// validated Environment can be shared freely.
//
// # Attributes
//
// Attribute values are typed (go-cty) and limited to the primitive types
// string, number, and bool. Each device kind declares its attributes up
// front in an AttrSpec registry; required attributes are enforced during
// Parse and declared attributes are coerced to their registered type.
// Undeclared attributes are accepted as free-form primitives so designs can
// carry extra data without touching the registry.
//
// # Errors
//
// Parse reports the first problem as a *ValidationError carrying the exact
// input path ("devices[2].mount_path"), the violated rule (missing, wrong
// type, unknown kind), and a human detail. It never returns a partially
// populated Environment.
package model
