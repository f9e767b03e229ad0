package chest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minekit.dev/minekit/pkg/world"
)

func mergedChest(states map[string]any) *world.SimpleBlock {
	return &world.SimpleBlock{
		BlockType:   BlockTypeChest,
		BlockStates: states,
		Inventory:   &world.SimpleContainer{Slots: DoubleChestSize},
	}
}

func place(t *testing.T, center *world.SimpleBlock, neighbors map[world.Direction]*world.SimpleBlock) *world.World {
	t.Helper()
	w := world.NewWorld()
	origin := world.Pos{}
	w.SetBlock(origin, center)
	for dir, b := range neighbors {
		w.SetBlock(origin.Offset(dir), b)
	}
	return w
}

func TestPairOf_NotAChest(t *testing.T) {
	d := NewDetector(logr.Discard())

	block := &world.SimpleBlock{
		BlockType: "minecraft:barrel",
		Inventory: &world.SimpleContainer{Slots: DoubleChestSize},
	}
	place(t, block, map[world.Direction]*world.SimpleBlock{world.West: mergedChest(nil)})

	_, ok := d.PairOf(block)
	assert.False(t, ok)
}

func TestPairOf_SingleChest(t *testing.T) {
	d := NewDetector(logr.Discard())

	block := &world.SimpleBlock{
		BlockType: BlockTypeChest,
		Inventory: &world.SimpleContainer{Slots: 27},
	}
	place(t, block, nil)

	_, ok := d.PairOf(block)
	assert.False(t, ok)
}

func TestPairOf_NoContainer(t *testing.T) {
	d := NewDetector(logr.Discard())

	block := &world.SimpleBlock{BlockType: BlockTypeChest}
	place(t, block, nil)

	_, ok := d.PairOf(block)
	assert.False(t, ok)
}

func TestPairOf_FindsNeighbor(t *testing.T) {
	d := NewDetector(logr.Discard())

	states := map[string]any{"minecraft:cardinal_direction": "north"}
	for _, dir := range world.HorizontalDirections {
		t.Run(dir.String(), func(t *testing.T) {
			center := mergedChest(states)
			neighbor := mergedChest(states)
			place(t, center, map[world.Direction]*world.SimpleBlock{dir: neighbor})

			pair, ok := d.PairOf(center)
			require.True(t, ok)
			assert.Same(t, center, pair.First.(*world.SimpleBlock))
			assert.Same(t, neighbor, pair.Second.(*world.SimpleBlock))
		})
	}
}

func TestPairOf_DirectionOrderBreaksTies(t *testing.T) {
	d := NewDetector(logr.Discard())

	center := mergedChest(nil)
	west := mergedChest(nil)
	east := mergedChest(nil)
	place(t, center, map[world.Direction]*world.SimpleBlock{
		world.East: east,
		world.West: west,
	})

	pair, ok := d.PairOf(center)
	require.True(t, ok)
	assert.Same(t, west, pair.Second.(*world.SimpleBlock), "west is scanned before east")
}

func TestPairOf_SkipsNonMatchingNeighbors(t *testing.T) {
	d := NewDetector(logr.Discard())

	tests := []struct {
		name     string
		neighbor *world.SimpleBlock
	}{
		{
			name:     "no_container",
			neighbor: &world.SimpleBlock{BlockType: BlockTypeChest},
		},
		{
			name: "single_capacity",
			neighbor: &world.SimpleBlock{
				BlockType: BlockTypeChest,
				Inventory: &world.SimpleContainer{Slots: 27},
			},
		},
		{
			name:     "different_states",
			neighbor: mergedChest(map[string]any{"minecraft:cardinal_direction": "east"}),
		},
		{
			// Type sensitivity: 1 (int) != "1" (string).
			name:     "state_value_type_differs",
			neighbor: mergedChest(map[string]any{"minecraft:cardinal_direction": 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := mergedChest(map[string]any{"minecraft:cardinal_direction": "north"})
			place(t, center, map[world.Direction]*world.SimpleBlock{world.West: tt.neighbor})

			_, ok := d.PairOf(center)
			assert.False(t, ok)
		})
	}
}

func TestPairOf_ComparesContainerProperties(t *testing.T) {
	d := NewDetector(logr.Discard())

	center := mergedChest(nil)
	center.Inventory.Props = map[string]any{"loot": "empty"}
	neighbor := mergedChest(nil)
	neighbor.Inventory.Props = map[string]any{"loot": "village"}
	place(t, center, map[world.Direction]*world.SimpleBlock{world.West: neighbor})

	_, ok := d.PairOf(center)
	assert.False(t, ok)

	neighbor.Inventory.Props["loot"] = "empty"
	pair, ok := d.PairOf(center)
	require.True(t, ok)
	assert.Same(t, neighbor, pair.Second.(*world.SimpleBlock))
}

func TestPropsEqual(t *testing.T) {
	assert.True(t, propsEqual(nil, nil))
	assert.True(t, propsEqual(map[string]any{}, nil))
	assert.True(t, propsEqual(
		map[string]any{"a": []any{1, "two"}},
		map[string]any{"a": []any{1, "two"}},
	))
	assert.False(t, propsEqual(
		map[string]any{"a": 1},
		map[string]any{"a": 1, "b": 2},
	), "key sets must be equal")
	assert.False(t, propsEqual(
		map[string]any{"a": 1},
		map[string]any{"a": int64(1)},
	), "comparison is type-sensitive")
}
