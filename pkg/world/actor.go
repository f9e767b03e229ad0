package world

// Actor is an entity that can trigger notifications, such as a player or a
// command block. May be absent on script-triggered notifications.
type Actor interface {
	// Name returns the actor's display name.
	Name() string
	// HasTag indicates whether the actor currently holds the given tag.
	HasTag(tag string) bool
}

// Player is a connected player actor.
type Player interface {
	Actor
	// SendMessage sends a chat message to the player.
	SendMessage(msg string) error
	// Tags returns the tags the player currently holds.
	Tags() []string
}
