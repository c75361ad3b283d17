package action

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAction is returned by Run for a name nobody registered.
var ErrUnknownAction = errors.New("unknown action")

// Entry is a registered action.
type Entry struct {
	Name    string
	Summary string
	New     Factory
}

// Registry maps action names to factories.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds a factory under name. Names must be non-empty and unique.
func (r *Registry) Register(name, summary string, f Factory) error {
	if name == "" {
		return fmt.Errorf("registering action: empty name")
	}
	if f == nil {
		return fmt.Errorf("registering action %q: nil factory", name)
	}
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("registering action %q: already registered", name)
	}
	r.entries[name] = Entry{Name: name, Summary: summary, New: f}
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Entries returns all entries sorted by name.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Run constructs the named action and executes it with args. The only error
// is ErrUnknownAction; action failures never surface here.
func (r *Registry) Run(name string, args []string) error {
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	e.New().Execute(args)
	return nil
}

// Help constructs the named action and prints its usage.
func (r *Registry) Help(name string) error {
	e, ok := r.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	e.New().Help()
	return nil
}
