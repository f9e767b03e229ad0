// Package command routes prefixed chat and script-event messages onto a
// nested, tag-gated command tree and dispatches matched commands to
// registered handlers.
package command

import (
	"strings"

	"go.minekit.dev/minekit/pkg/world"
)

// Setting configures how messages are recognized as commands.
// A message is a command when it starts with Prefix or with ID.
type Setting struct {
	// Prefix is the leading chat token, e.g. "!".
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// ID is the script-event message id, e.g. "minekit:cmd".
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Sub is a node in a nested command tree.
// A node without Subs is a terminal command bound to a registered Handler of
// the same name.
type Sub struct {
	// Name is the token that selects this node.
	Name string `json:"name" yaml:"name"`
	// Description is an optional help text.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Subs are the node's sub-commands, in match order.
	Subs []Sub `json:"subs,omitempty" yaml:"subs,omitempty"`
	// Tags gate the node: an actor must hold at least one of them.
	// A nil or empty list leaves the node open to everyone.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Terminal reports whether s is a leaf command.
func (s Sub) Terminal() bool { return len(s.Subs) == 0 }

// Parse strips the command prefix or script-event id from a raw message and
// splits the remainder into tokens. It returns ok=false when the message
// starts with neither.
//
// Only the token that actually matched is stripped; the prefix wins when both
// match. Empty Prefix or ID strings never match.
func Parse(msg string, s Setting) (tokens []string, ok bool) {
	switch {
	case s.Prefix != "" && strings.HasPrefix(msg, s.Prefix):
		msg = strings.Replace(msg, s.Prefix, "", 1)
	case s.ID != "" && strings.HasPrefix(msg, s.ID):
		msg = strings.Replace(msg, s.ID, "", 1)
	default:
		return nil, false
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return nil, true
	}
	return strings.Split(msg, " "), true
}

// MatchResult is the outcome of resolving tokens against a command tree.
// It distinguishes three cases:
//
//   - Matched: a permitted terminal command was reached (Terminal names it,
//     except for the empty invocation which matches with no Terminal).
//   - not Matched, Terminal set: the command is known but the actor lacks a
//     required tag.
//   - not Matched, no Terminal: the tokens name no known command.
type MatchResult struct {
	Matched  bool
	Terminal string
	// Args are the tokens left over after the matched path.
	Args []string
}

// Match resolves tokens against tree.
//
// The first token selects a node by name among the given siblings. A selected
// node with sub-commands recurses with the remaining tokens; a terminal node
// ends the walk. A nil actor is granted everything.
func Match(tree []Sub, tokens []string, actor world.Actor) MatchResult {
	if len(tokens) == 0 {
		return MatchResult{Matched: true}
	}
	name, rest := tokens[0], tokens[1:]
	for _, sub := range tree {
		if sub.Name != name {
			continue
		}
		if !permitted(sub, actor) {
			return MatchResult{Terminal: sub.Name, Args: rest}
		}
		if !sub.Terminal() {
			return Match(sub.Subs, rest, actor)
		}
		return MatchResult{Matched: true, Terminal: sub.Name, Args: rest}
	}
	return MatchResult{Args: tokens}
}

func permitted(sub Sub, actor world.Actor) bool {
	if actor == nil || len(sub.Tags) == 0 {
		return true
	}
	for _, tag := range sub.Tags {
		if actor.HasTag(tag) {
			return true
		}
	}
	return false
}
