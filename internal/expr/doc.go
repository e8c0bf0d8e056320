// Package expr is the expression library design units compose their output
// from. Nodes are immutable and tree-shaped: literals, variable lookups,
// conditionals, sequences, per-device sequences, and external probe values.
// A node never references its parent, so a subtree can be shared read-only
// across larger expressions.
//
// # Building
//
// Free constructors (Lit, Var, When, Seq, PerDevice, External) build bare
// trees. A Factory carries the same constructors bound to one Environment
// and one per-run probe Resolver, which is the handle design units receive.
// Seq flattens nested sequences at construction; a per-device sequence is a
// semantic boundary and never flattens into its parent.
//
// # Rendering
//
// Render walks the tree depth-first and produces the final text. Rendering
// is pure: it never mutates the tree, and the same tree rendered twice
// against the same Environment and resolver state yields identical text.
// Variable lookups consult the active device's attributes first, then the
// Environment's. A variable absent from both is a RenderError; missing data
// never becomes silent empty text. In predicate position the rules soften:
// an absent variable is simply false, which is how a design guards an
// optional attribute with When before using it.
package expr
