// Package design defines the plugin contract for widget designs and ships
// the built-in ones.
//
// # Units
//
// A Unit takes a validated environment and an expression factory bound to
// the current run, and returns the widget text lines in final order. Func
// adapts a plain function to the contract. The package never inspects the
// returned lines; layout is entirely the unit's business.
//
// # Registries
//
// A Registry maps design names to units. Registries are explicit values
// handed around by callers; there is no package-global registration, so
// two runs in one process can hold different design sets without seeing
// each other. Builtin returns a registry preloaded with the shipped
// designs.
//
// # Runs
//
// Run drives one generation end to end: the unit renders its lines, and
// Document wraps them into the complete output file. A unit error aborts
// the run with no partial output.
package design
