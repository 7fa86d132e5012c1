package cmd

import "sort"

// Registry stores commands by name and alias. It does not dispatch; each
// adapter looks commands up and invokes them with its own context.
type Registry struct {
	commands map[string]Command
	names    map[string]Command // canonical name only, for listing
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		names:    make(map[string]Command),
	}
}

// Register adds a command under its name and every alias. Lookup is
// case-sensitive; a later registration with the same token wins.
func (r *Registry) Register(c Command) {
	r.commands[c.Name()] = c
	r.names[c.Name()] = c
	for _, alias := range c.Aliases() {
		r.commands[alias] = c
	}
}

// Get returns the command registered under token, or nil.
func (r *Registry) Get(token string) Command {
	return r.commands[token]
}

// All returns every registered command once, sorted by canonical name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.names))
	for _, c := range r.names {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
