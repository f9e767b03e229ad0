package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.minekit.dev/minekit/pkg/world"
)

func newTestRouter(t *testing.T, handlers *Registry) *Router {
	t.Helper()
	r, err := NewRouter(logr.Discard(), Setting{Prefix: "!", ID: "minekit:cmd"}, testTree, handlers)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRouterHandleChat_Dispatch(t *testing.T) {
	handlers := NewRegistry()
	got := make(chan []string, 1)
	require.NoError(t, handlers.Register("set", func(_ context.Context, actor world.Actor, args []string) error {
		got <- args
		return nil
	}))
	r := newTestRouter(t, handlers)

	player := world.NewSimplePlayer("steve")
	evt := world.NewChatEvent(player, "!home set base")
	r.HandleChat(evt)

	assert.False(t, evt.Allowed(), "recognized command must cancel the chat send")
	select {
	case args := <-got:
		assert.Equal(t, []string{"base"}, args)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	assert.Empty(t, player.Messages)
}

func TestRouterHandleChat_Unrecognized(t *testing.T) {
	r := newTestRouter(t, nil)

	player := world.NewSimplePlayer("steve")
	evt := world.NewChatEvent(player, "hello everyone")
	r.HandleChat(evt)

	assert.True(t, evt.Allowed(), "plain chat must not be cancelled")
	assert.Empty(t, player.Messages)
}

func TestRouterHandleChat_UnknownCommand(t *testing.T) {
	r := newTestRouter(t, nil)

	player := world.NewSimplePlayer("steve")
	evt := world.NewChatEvent(player, "!fly")
	r.HandleChat(evt)

	assert.False(t, evt.Allowed(), "recognized prefix cancels the send even on failure")
	require.Len(t, player.Messages, 1)
	assert.Equal(t, unknownCommandMessage, player.Messages[0])
}

func TestRouterHandleChat_NoPermission(t *testing.T) {
	handlers := NewRegistry()
	ran := make(chan struct{}, 1)
	require.NoError(t, handlers.Register("reload", func(context.Context, world.Actor, []string) error {
		ran <- struct{}{}
		return nil
	}))
	r := newTestRouter(t, handlers)

	player := world.NewSimplePlayer("guest")
	evt := world.NewChatEvent(player, "!admin reload")
	r.HandleChat(evt)

	assert.False(t, evt.Allowed())
	require.Len(t, player.Messages, 1, "exactly one denial message")
	assert.Equal(t, noPermissionMessage, player.Messages[0])
	select {
	case <-ran:
		t.Fatal("handler must not run for a denied command")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRouterHandleChat_NonPlayerActorGetsNoMessage(t *testing.T) {
	r := newTestRouter(t, nil)

	// A nil actor is not a player; routing must not panic or message anyone.
	evt := world.NewChatEvent(nil, "!fly")
	r.HandleChat(evt)
	assert.False(t, evt.Allowed())
}

func TestRouterHandleScript(t *testing.T) {
	handlers := NewRegistry()
	got := make(chan []string, 1)
	require.NoError(t, handlers.Register("help", func(_ context.Context, _ world.Actor, args []string) error {
		got <- args
		return nil
	}))
	r := newTestRouter(t, handlers)

	r.HandleScript(world.NewScriptEvent(nil, "minekit:cmd", "help topics"))

	select {
	case args := <-got:
		assert.Equal(t, []string{"topics"}, args)
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
}

func TestRouterHandleScript_ForeignID(t *testing.T) {
	handlers := NewRegistry()
	ran := make(chan struct{}, 1)
	require.NoError(t, handlers.Register("help", func(context.Context, world.Actor, []string) error {
		ran <- struct{}{}
		return nil
	}))
	r := newTestRouter(t, handlers)

	r.HandleScript(world.NewScriptEvent(nil, "other:addon", "help"))

	select {
	case <-ran:
		t.Fatal("foreign script event must not be routed")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRouterSwallowsHandlerErrors(t *testing.T) {
	handlers := NewRegistry()
	ran := make(chan struct{}, 1)
	require.NoError(t, handlers.Register("help", func(context.Context, world.Actor, []string) error {
		ran <- struct{}{}
		return errors.New("boom")
	}))
	r := newTestRouter(t, handlers)

	player := world.NewSimplePlayer("steve")
	r.HandleChat(world.NewChatEvent(player, "!help"))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}
	// The actor gets no feedback for broken handlers.
	assert.Empty(t, player.Messages)
}

func TestNewRouter_RejectsDuplicateSetting(t *testing.T) {
	setting := Setting{Prefix: "."}
	r1, err := NewRouter(logr.Discard(), setting, nil, nil)
	require.NoError(t, err)

	_, err = NewRouter(logr.Discard(), setting, nil, nil)
	require.Error(t, err)

	// A different setting is fine.
	r2, err := NewRouter(logr.Discard(), Setting{Prefix: "#"}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, r2.Close())

	// Closing releases the registration.
	require.NoError(t, r1.Close())
	r3, err := NewRouter(logr.Discard(), setting, nil, nil)
	require.NoError(t, err)
	require.NoError(t, r3.Close())
}

func TestNewRouter_RequiresPrefixOrID(t *testing.T) {
	_, err := NewRouter(logr.Discard(), Setting{}, nil, nil)
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	nop := func(context.Context, world.Actor, []string) error { return nil }

	require.NoError(t, reg.Register("help", nop))
	require.Error(t, reg.Register("help", nop), "duplicate name")
	require.Error(t, reg.Register("", nop), "empty name")
	require.Error(t, reg.Register("x", nil), "nil handler")

	reg.RegisterAll(logr.Discard(),
		Module{Name: "ping", Handler: nop},
		Module{Name: "help", Handler: nop}, // duplicate, skipped but not fatal
		Module{Name: "pong", Handler: nop},
	)
	assert.Equal(t, []string{"help", "ping", "pong"}, reg.Names())

	_, ok := reg.Lookup("ping")
	assert.True(t, ok)
	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}
