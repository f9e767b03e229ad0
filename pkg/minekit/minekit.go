// Package minekit wires the chest use event and the command router onto a
// host event manager.
package minekit

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"

	"go.minekit.dev/minekit/pkg/chest"
	"go.minekit.dev/minekit/pkg/command"
	"go.minekit.dev/minekit/pkg/minekit/config"
)

// ErrMissingConfig is returned by New when no config was given.
var ErrMissingConfig = errors.New("config must not be nil")

// Options are minekit options.
type Options struct {
	// Config requires a valid minekit configuration.
	Config *config.Config
	// Logger is the logger used for minekit and its components.
	// Defaults to a discarding logger.
	Logger logr.Logger
	// Event is the manager the host fires its notifications on.
	// If nil a new manager is created.
	Event event.Manager
	// Handlers binds terminal command names to Go handlers.
	// May be nil when command routing is disabled.
	Handlers *command.Registry
}

// Minekit subscribes the chest handler and the command router to a host
// event manager and fires chest.UseEvents on the same manager.
type Minekit struct {
	log    logr.Logger
	events event.Manager
	router *command.Router

	unsubscribe []func()
}

// New returns a new Minekit instance with both components subscribed
// according to the given config.
func New(options Options) (*Minekit, error) {
	if options.Config == nil {
		return nil, ErrMissingConfig
	}
	log := options.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	events := options.Event
	if events == nil {
		events = event.New()
	}

	m := &Minekit{log: log, events: events}
	c := options.Config

	if c.Chest.Enabled {
		chests := chest.NewHandler(log.WithName("chest"), events)
		m.unsubscribe = append(m.unsubscribe, event.Subscribe(events, 0, chests.HandleInteract))
	}

	if c.Command.Enabled {
		router, err := command.NewRouter(log.WithName("command"), c.Command.Setting(), c.Command.Tree, options.Handlers)
		if err != nil {
			return nil, fmt.Errorf("error creating command router: %w", err)
		}
		m.router = router
		m.unsubscribe = append(m.unsubscribe,
			event.Subscribe(events, 0, router.HandleChat),
			event.Subscribe(events, 0, router.HandleScript),
		)
	}

	return m, nil
}

// Event returns the event manager host notifications and
// chest.UseEvents are fired on.
func (m *Minekit) Event() event.Manager { return m.events }

// Router returns the command router, or nil if command routing is disabled.
func (m *Minekit) Router() *command.Router { return m.router }

// Close unsubscribes all components from the event manager and releases the
// router's registration. A closed Minekit ignores further notifications.
func (m *Minekit) Close() error {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
	if m.router != nil {
		return m.router.Close()
	}
	return nil
}
