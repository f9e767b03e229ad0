package chest

import (
	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"

	"go.minekit.dev/minekit/pkg/world"
)

// Handler turns host interact notifications into UseEvents.
type Handler struct {
	log      logr.Logger
	events   event.Manager
	detector *Detector
}

// NewHandler returns a Handler firing UseEvents on events.
func NewHandler(log logr.Logger, events event.Manager) *Handler {
	return &Handler{
		log:      log,
		events:   events,
		detector: NewDetector(log),
	}
}

// HandleInteract consumes a pre-interact notification, fires a UseEvent to all
// subscribers and propagates a denial back to the host notification.
func (h *Handler) HandleInteract(e *world.PlayerInteractEvent) {
	evt := &UseEvent{
		player: e.Player(),
		block:  e.Block(),
		first:  e.FirstEvent(),
	}
	evt.pair, _ = h.detector.PairOf(e.Block())

	h.events.Fire(evt)

	if !evt.Allowed() {
		e.SetAllowed(false)
	}
}
