package world

// PlayerInteractEvent is fired by the host before a player interacts with a
// block. Denying it prevents the interaction from committing.
type PlayerInteractEvent struct {
	player Player
	block  Block
	first  bool

	denied bool
}

// NewPlayerInteractEvent returns a new pre-interact notification.
// first reports whether this is the first event of the interaction gesture.
func NewPlayerInteractEvent(player Player, block Block, first bool) *PlayerInteractEvent {
	return &PlayerInteractEvent{player: player, block: block, first: first}
}

// Player returns the interacting player.
func (e *PlayerInteractEvent) Player() Player { return e.player }

// Block returns the block being interacted with.
func (e *PlayerInteractEvent) Block() Block { return e.block }

// FirstEvent reports whether this is the first event of the interaction.
func (e *PlayerInteractEvent) FirstEvent() bool { return e.first }

// SetAllowed sets whether the interaction is allowed to commit.
func (e *PlayerInteractEvent) SetAllowed(allowed bool) { e.denied = !allowed }

// Allowed returns true when the interaction is allowed to commit.
func (e *PlayerInteractEvent) Allowed() bool { return !e.denied }

//
//
//

// ChatEvent is fired by the host before a chat message is sent.
// Denying it drops the message before other players see it.
type ChatEvent struct {
	actor   Actor
	message string

	denied bool
}

// NewChatEvent returns a new pre-send chat notification.
func NewChatEvent(actor Actor, message string) *ChatEvent {
	return &ChatEvent{actor: actor, message: message}
}

// Actor returns the actor sending the message, or nil.
func (e *ChatEvent) Actor() Actor { return e.actor }

// Message returns the message about to be sent.
func (e *ChatEvent) Message() string { return e.message }

// SetAllowed sets whether the chat message is allowed to be sent.
func (e *ChatEvent) SetAllowed(allowed bool) { e.denied = !allowed }

// Allowed returns true when the chat message is allowed to be sent.
func (e *ChatEvent) Allowed() bool { return !e.denied }

//
//
//

// ScriptEvent is fired by the host after a script-event command
// (e.g. "/scriptevent <id> <message>") was executed. It is post-commit and
// cannot be cancelled.
type ScriptEvent struct {
	actor   Actor
	id      string
	message string
}

// NewScriptEvent returns a new script-event notification.
func NewScriptEvent(actor Actor, id, message string) *ScriptEvent {
	return &ScriptEvent{actor: actor, id: id, message: message}
}

// Actor returns the actor that ran the script event, or nil.
func (e *ScriptEvent) Actor() Actor { return e.actor }

// ID returns the script-event message id.
func (e *ScriptEvent) ID() string { return e.id }

// Message returns the script-event message payload.
func (e *ScriptEvent) Message() string { return e.message }
