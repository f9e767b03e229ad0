package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/robinbraemer/event"
	"github.com/urfave/cli/v2"

	"go.minekit.dev/minekit/pkg/chest"
	"go.minekit.dev/minekit/pkg/command"
	"go.minekit.dev/minekit/pkg/minekit"
	"go.minekit.dev/minekit/pkg/world"
)

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "Run chat lines and chest interactions against an in-memory world",
		Description: `Reads lines from stdin and feeds them into minekit as if a player wrote
them in chat. Special lines:

	open large    interact with a double chest
	open single   interact with a single chest
	guard         toggle a subscriber that cancels large chest opens
	exit          quit the simulator`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "tag",
				Usage: "Tags held by the simulated player",
			},
		},
		Action: simulate,
	}
}

func simulate(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if len(cfg.Command.Tree) == 0 {
		cfg.Command.Tree = demoTree()
	}
	if _, errs := cfg.Validate(); len(errs) != 0 {
		return cli.Exit(fmt.Sprintf("config is invalid: %v", errs), 1)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return cli.Exit(err, 1)
	}

	handlers := command.NewRegistry()
	handlers.RegisterAll(log, demoModules(cfg.Command.Tree)...)
	for _, name := range cfg.MissingHandlers(handlers) {
		log.Info("terminal command has no handler", "command", name)
	}

	mk, err := minekit.New(minekit.Options{
		Config:   cfg,
		Logger:   log,
		Handlers: handlers,
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = mk.Close() }()

	w := world.NewWorld()
	large := &world.SimpleBlock{
		BlockType:   chest.BlockTypeChest,
		BlockStates: map[string]any{"minecraft:cardinal_direction": "north"},
		Inventory:   &world.SimpleContainer{Slots: chest.DoubleChestSize},
	}
	w.SetBlock(world.Pos{}, large)
	w.SetBlock(world.Pos{X: 1}, &world.SimpleBlock{
		BlockType:   chest.BlockTypeChest,
		BlockStates: map[string]any{"minecraft:cardinal_direction": "north"},
		Inventory:   &world.SimpleContainer{Slots: chest.DoubleChestSize},
	})
	single := &world.SimpleBlock{
		BlockType:   chest.BlockTypeChest,
		BlockStates: map[string]any{"minecraft:cardinal_direction": "north"},
		Inventory:   &world.SimpleContainer{Slots: 27},
	}
	w.SetBlock(world.Pos{X: 3}, single)

	player := world.NewSimplePlayer("dev", c.StringSlice("tag")...)
	sent := 0
	flush := func() {
		// Handlers run off-thread; give them a moment to message the player.
		time.Sleep(50 * time.Millisecond)
		for ; sent < len(player.Messages); sent++ {
			color.Cyan.Println(player.Messages[sent])
		}
	}

	event.Subscribe(mk.Event(), 0, func(e *chest.UseEvent) {
		if pair, ok := e.Pair(); ok {
			color.Magenta.Printf("%s opens a large chest (pair second half: %v)\n",
				e.Player().Name(), pair.Second.States())
			return
		}
		color.Magenta.Printf("%s opens %s\n", e.Player().Name(), e.Block().Type())
	})

	var unguard func()
	interact := func(block world.Block) {
		evt := world.NewPlayerInteractEvent(player, block, true)
		mk.Event().Fire(evt)
		if !evt.Allowed() {
			color.Red.Println("interaction was cancelled")
		}
	}

	color.Green.Printf("simulating as %q (tags %v), prefix %q\n", player.Name(), player.Tags(), cfg.Command.Prefix)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch line := scanner.Text(); line {
		case "exit", "quit":
			return nil
		case "open large":
			interact(large)
		case "open single":
			interact(single)
		case "guard":
			if unguard != nil {
				unguard()
				unguard = nil
				color.Yellow.Println("guard off")
				continue
			}
			unguard = event.Subscribe(mk.Event(), 0, func(e *chest.UseEvent) {
				if e.Large() {
					e.SetAllowed(false)
				}
			})
			color.Yellow.Println("guard on: large chest opens are cancelled")
		default:
			evt := world.NewChatEvent(player, line)
			mk.Event().Fire(evt)
			if evt.Allowed() {
				color.Gray.Printf("<%s> %s\n", player.Name(), line)
			}
			flush()
		}
	}
	return scanner.Err()
}

func demoTree() []command.Sub {
	return []command.Sub{
		{Name: "help", Description: "Show all commands"},
		{Name: "ping", Description: "Measure responsiveness"},
		{Name: "admin", Description: "Admin commands", Tags: []string{"op"}, Subs: []command.Sub{
			{Name: "reload", Description: "Reload the configuration"},
		}},
	}
}

func demoModules(tree []command.Sub) []command.Module {
	tell := func(actor world.Actor, msg string) {
		if p, ok := actor.(world.Player); ok {
			_ = p.SendMessage(msg)
		}
	}
	return []command.Module{
		{Name: "help", Handler: func(_ context.Context, actor world.Actor, _ []string) error {
			tell(actor, command.Usage(tree))
			return nil
		}},
		{Name: "ping", Handler: func(_ context.Context, actor world.Actor, _ []string) error {
			tell(actor, "§aPong!")
			return nil
		}},
		{Name: "reload", Handler: func(_ context.Context, actor world.Actor, _ []string) error {
			tell(actor, "§aConfiguration reloaded.")
			return nil
		}},
	}
}
