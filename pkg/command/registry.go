package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-logr/logr"

	"go.minekit.dev/minekit/pkg/world"
)

// Handler executes a terminal command for actor with the tokens left over
// after the matched command path. actor may be nil.
type Handler func(ctx context.Context, actor world.Actor, args []string) error

// Module is a named command implementation for batch registration.
type Module struct {
	// Name must equal the terminal command node it implements.
	Name    string
	Handler Handler
}

// Registry maps terminal command names to their handlers.
// It replaces loading handler modules by file path at dispatch time:
// commands are bound to Go funcs once, at startup.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register binds a handler to a terminal command name.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if h == nil {
		return fmt.Errorf("handler for command %q must not be nil", name)
	}
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("command %q is already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// RegisterAll registers modules in order. A failing module is logged and
// skipped; it does not abort the remaining registrations.
func (r *Registry) RegisterAll(log logr.Logger, modules ...Module) {
	for _, m := range modules {
		if err := r.Register(m.Name, m.Handler); err != nil {
			log.Error(err, "skipping command module", "module", m.Name)
			continue
		}
		log.V(1).Info("registered command module", "module", m.Name)
	}
}

// Lookup returns the handler bound to name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
