package command

import (
	"fmt"

	"github.com/google/uuid"
)

// Registration records a router's setting and tree under a generated id.
// It exists only so that registering the same Setting twice in one process can
// be rejected.
type Registration struct {
	ID      uuid.UUID
	Setting Setting
	Tree    []Sub
}

// registrations is process-wide. Access is confined to the single
// event-processing thread, like all router state.
var registrations = map[uuid.UUID]Registration{}

func register(s Setting, tree []Sub) (Registration, error) {
	for _, r := range registrations {
		if r.Setting == s {
			return Registration{}, fmt.Errorf("a router for prefix %q and id %q is already registered", s.Prefix, s.ID)
		}
	}
	reg := Registration{ID: uuid.New(), Setting: s, Tree: tree}
	registrations[reg.ID] = reg
	return reg, nil
}

func unregister(id uuid.UUID) {
	delete(registrations, id)
}
