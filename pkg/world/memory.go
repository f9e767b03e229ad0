package world

import (
	"go.minekit.dev/minekit/pkg/util/sets"
)

// Pos is a block position.
type Pos struct{ X, Y, Z int }

// Offset returns the position one block towards d.
func (p Pos) Offset(d Direction) Pos {
	switch d {
	case West:
		p.X--
	case East:
		p.X++
	case North:
		p.Z--
	case South:
		p.Z++
	}
	return p
}

// World is an in-memory block grid standing in for the host engine.
// It is used by tests and the simulator and is not safe for concurrent use,
// matching the host's single event-processing thread.
type World struct {
	blocks map[Pos]*SimpleBlock
}

// NewWorld returns an empty in-memory world.
func NewWorld() *World {
	return &World{blocks: map[Pos]*SimpleBlock{}}
}

// SetBlock places b at pos, overwriting any previous block there.
func (w *World) SetBlock(pos Pos, b *SimpleBlock) {
	b.world, b.pos = w, pos
	w.blocks[pos] = b
}

// BlockAt returns the block at pos, or false if none was placed.
func (w *World) BlockAt(pos Pos) (Block, bool) {
	b, ok := w.blocks[pos]
	return b, ok
}

// SimpleBlock is an in-memory Block.
type SimpleBlock struct {
	BlockType   string
	BlockStates map[string]any
	Inventory   *SimpleContainer

	world *World
	pos   Pos
}

var _ Block = (*SimpleBlock)(nil)

// Type implements Block.
func (b *SimpleBlock) Type() string { return b.BlockType }

// States implements Block.
func (b *SimpleBlock) States() map[string]any { return b.BlockStates }

// Container implements Block.
func (b *SimpleBlock) Container() (Container, bool) {
	if b.Inventory == nil {
		return nil, false
	}
	return b.Inventory, true
}

// Neighbor implements Block. It returns false until the block
// was placed into a World via SetBlock.
func (b *SimpleBlock) Neighbor(d Direction) (Block, bool) {
	if b.world == nil {
		return nil, false
	}
	return b.world.BlockAt(b.pos.Offset(d))
}

// SimpleContainer is an in-memory Container.
type SimpleContainer struct {
	Slots int
	Props map[string]any
}

var _ Container = (*SimpleContainer)(nil)

// Size implements Container.
func (c *SimpleContainer) Size() int { return c.Slots }

// Properties implements Container.
func (c *SimpleContainer) Properties() map[string]any { return c.Props }

// SimplePlayer is an in-memory Player that records sent messages.
type SimplePlayer struct {
	name string
	tags sets.String

	// Messages holds every message sent to the player, in order.
	Messages []string
}

var _ Player = (*SimplePlayer)(nil)

// NewSimplePlayer returns a player holding the given tags.
func NewSimplePlayer(name string, tags ...string) *SimplePlayer {
	return &SimplePlayer{name: name, tags: sets.NewString(tags...)}
}

// Name implements Actor.
func (p *SimplePlayer) Name() string { return p.name }

// HasTag implements Actor.
func (p *SimplePlayer) HasTag(tag string) bool { return p.tags.Has(tag) }

// AddTag adds a tag to the player.
func (p *SimplePlayer) AddTag(tag string) { p.tags.Insert(tag) }

// RemoveTag removes a tag from the player.
func (p *SimplePlayer) RemoveTag(tag string) { p.tags.Delete(tag) }

// Tags implements Player.
func (p *SimplePlayer) Tags() []string { return p.tags.UnsortedList() }

// SendMessage implements Player by recording the message.
func (p *SimplePlayer) SendMessage(msg string) error {
	p.Messages = append(p.Messages, msg)
	return nil
}
