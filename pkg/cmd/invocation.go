// Package cmd provides a transport-agnostic command core: a command is
// something with a name, aliases, a description, and Run(ctx, invocation).
// How it is parsed and dispatched (prefix message, CLI, HTTP) is defined by
// the adapter that wraps it.
package cmd

import "context"

// Invocation carries the minimal input any command runner can pass: the
// argument tokens and an opaque payload. Adapters set Data to their own
// context type.
type Invocation struct {
	Args []string
	Data interface{}
}

// Command is the universal contract: identity plus execution. Permission
// requirements and transport-specific registration stay in adapters.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}
