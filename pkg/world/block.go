// Package world models the host engine's scripting surface consumed by
// minekit: blocks, containers, actors and the cancellable notifications the
// host fires into an event manager. The host engine owns all behavior behind
// these interfaces.
package world

// Direction is a cardinal horizontal direction.
type Direction uint8

const (
	West Direction = iota
	East
	North
	South
)

// HorizontalDirections lists all four horizontal directions.
// The order is significant: neighbor scans resolve ties in this order.
var HorizontalDirections = []Direction{West, East, North, South}

func (d Direction) String() string {
	switch d {
	case West:
		return "west"
	case East:
		return "east"
	case North:
		return "north"
	case South:
		return "south"
	}
	return "unknown"
}

// Block is a block in a loaded chunk of the world.
type Block interface {
	// Type returns the block type identifier, e.g. "minecraft:chest".
	Type() string
	// States returns the block permutation's state properties.
	States() map[string]any
	// Container returns the container attached to the block, if any.
	Container() (Container, bool)
	// Neighbor returns the adjacent block in the given direction,
	// or false if that position is not loaded.
	Neighbor(d Direction) (Block, bool)
}

// Container is a block-attached item container such as a chest inventory.
type Container interface {
	// Size returns the container's slot capacity.
	Size() int
	// Properties returns the container's observable properties.
	Properties() map[string]any
}
