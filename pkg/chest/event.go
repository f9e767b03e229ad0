package chest

import "go.minekit.dev/minekit/pkg/world"

// UseEvent is fired before a player opens a chest.
// Denying it cancels the underlying block interaction.
//
// Subscribers run synchronously on the firing goroutine; subscription order is
// not guaranteed.
type UseEvent struct {
	player world.Player
	block  world.Block
	first  bool
	pair   *Pair

	denied bool
}

// Player returns the player opening the chest.
func (e *UseEvent) Player() world.Player { return e.player }

// Block returns the interacted block.
func (e *UseEvent) Block() world.Block { return e.block }

// FirstEvent reports whether this is the first event of the interaction.
func (e *UseEvent) FirstEvent() bool { return e.first }

// Large reports whether the interacted block is half of a large chest.
func (e *UseEvent) Large() bool { return e.pair != nil }

// Pair returns the large chest pair, or false for a single chest.
func (e *UseEvent) Pair() (*Pair, bool) { return e.pair, e.pair != nil }

// SetAllowed sets whether the interaction is allowed to commit.
func (e *UseEvent) SetAllowed(allowed bool) { e.denied = !allowed }

// Allowed returns true when the interaction is allowed to commit.
func (e *UseEvent) Allowed() bool { return !e.denied }
