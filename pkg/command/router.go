package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"go.minekit.dev/minekit/pkg/world"
)

// Messages sent back to player actors. Non-player actors get no feedback.
const (
	unknownCommandMessage = "§cUnknown command. Check your spelling and try again."
	noPermissionMessage   = "§cYou don't have permission to run this command."
)

// ErrNoHandler is logged when a matched terminal command has no registered
// handler. It signals a registration gap, not bad input, so the actor is
// deliberately not messaged.
var ErrNoHandler = errors.New("no handler registered for command")

// Router maps prefixed chat and script-event messages onto a command tree.
//
// Once a chat message is recognized as addressed to the router, the original
// send is cancelled even when routing fails, so that command-looking text
// never leaks into chat.
type Router struct {
	log      logr.Logger
	setting  Setting
	tree     []Sub
	handlers *Registry
	reg      Registration
}

// NewRouter returns a Router and records its Setting process-wide.
// A Setting equal to one of an existing open Router is rejected.
func NewRouter(log logr.Logger, setting Setting, tree []Sub, handlers *Registry) (*Router, error) {
	if setting.Prefix == "" && setting.ID == "" {
		return nil, errors.New("at least one of prefix and id must be set")
	}
	if handlers == nil {
		handlers = NewRegistry()
	}
	reg, err := register(setting, tree)
	if err != nil {
		return nil, err
	}
	return &Router{
		log:      log,
		setting:  setting,
		tree:     tree,
		handlers: handlers,
		reg:      reg,
	}, nil
}

// Setting returns the router's prefix/id setting.
func (r *Router) Setting() Setting { return r.setting }

// Tree returns the router's command tree.
func (r *Router) Tree() []Sub { return r.tree }

// Close releases the router's process-wide registration.
func (r *Router) Close() error {
	unregister(r.reg.ID)
	return nil
}

// HandleChat inspects a pre-send chat message and routes it when it carries
// the command prefix or id. Unrecognized messages are left untouched.
func (r *Router) HandleChat(e *world.ChatEvent) {
	tokens, ok := Parse(e.Message(), r.setting)
	if !ok {
		return
	}
	e.SetAllowed(false)
	r.dispatch(context.Background(), e.Actor(), tokens)
}

// HandleScript routes a script-event command message. The host delivers id
// and payload separately; they are resolved through the same parser as chat
// by re-synthesizing "<id> <message>".
func (r *Router) HandleScript(e *world.ScriptEvent) {
	tokens, ok := Parse(e.ID()+" "+e.Message(), r.setting)
	if !ok {
		return
	}
	r.dispatch(context.Background(), e.Actor(), tokens)
}

func (r *Router) dispatch(ctx context.Context, actor world.Actor, tokens []string) {
	res := Match(r.tree, tokens, actor)
	switch {
	case res.Terminal == "":
		r.tell(actor, unknownCommandMessage)
	case !res.Matched:
		r.tell(actor, noPermissionMessage)
	default:
		h, ok := r.handlers.Lookup(res.Terminal)
		if !ok {
			r.log.Error(ErrNoHandler, "cannot dispatch command", "command", res.Terminal)
			return
		}
		go r.run(ctx, res.Terminal, h, actor, res.Args)
	}
}

// run executes a handler off the event-processing thread.
// Failures are logged, never surfaced to the actor.
func (r *Router) run(ctx context.Context, name string, h Handler, actor world.Actor, args []string) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error(fmt.Errorf("panic: %v", p), "command handler panicked", "command", name)
		}
	}()
	if err := h(ctx, actor, args); err != nil {
		r.log.Error(err, "command failed", "command", name, "args", args)
	}
}

func (r *Router) tell(actor world.Actor, msg string) {
	player, ok := actor.(world.Player)
	if !ok {
		return
	}
	if err := player.SendMessage(msg); err != nil {
		r.log.V(1).Info("could not message player", "player", player.Name(), "error", err)
	}
}
