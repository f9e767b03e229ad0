// Package chest detects large (double) chest pairs and fires a synthetic,
// cancellable UseEvent whenever a player is about to open a chest.
package chest

import (
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"
	"golang.org/x/exp/maps"

	"go.minekit.dev/minekit/pkg/world"
)

const (
	// BlockTypeChest is the block type identifier of a chest.
	BlockTypeChest = "minecraft:chest"
	// DoubleChestSize is the slot capacity a chest container reports
	// while it is merged with an adjacent chest.
	DoubleChestSize = 54
)

// Pair is the two halves of a large chest.
// First is always the block the pairing was queried for.
type Pair struct {
	First  world.Block
	Second world.Block
}

// Detector finds the second half of a large chest.
type Detector struct {
	log logr.Logger
}

// NewDetector returns a new Detector logging debug detail to log.
func NewDetector(log logr.Logger) *Detector {
	return &Detector{log: log}
}

// PairOf returns the large chest pair block is half of, or false if block is
// not a chest, has no merged container or no qualifying neighbor.
//
// A neighbor qualifies when it has a container of the same merged capacity and
// both its block states and its container properties are structurally equal to
// block's. Neighbors are scanned in world.HorizontalDirections order and the
// first match wins.
func (d *Detector) PairOf(block world.Block) (*Pair, bool) {
	if block.Type() != BlockTypeChest {
		return nil, false
	}
	if d.log.V(1).Enabled() {
		d.log.V(1).Info("interacted chest permutation", "states", spew.Sdump(block.States()))
	}
	container, ok := block.Container()
	if !ok || container.Size() != DoubleChestSize {
		return nil, false
	}
	for _, dir := range world.HorizontalDirections {
		neighbor, ok := block.Neighbor(dir)
		if !ok {
			continue
		}
		nc, ok := neighbor.Container()
		if !ok || nc.Size() != DoubleChestSize {
			continue
		}
		if !propsEqual(block.States(), neighbor.States()) {
			continue
		}
		if !propsEqual(container.Properties(), nc.Properties()) {
			continue
		}
		d.log.V(1).Info("found large chest pair", "direction", dir.String())
		return &Pair{First: block, Second: neighbor}, true
	}
	return nil, false
}

// propsEqual reports structural equality of two property sets:
// same key set, recursively equal values, type-sensitive.
func propsEqual(a, b map[string]any) bool {
	return maps.EqualFunc(a, b, func(x, y any) bool {
		return reflect.DeepEqual(x, y)
	})
}
