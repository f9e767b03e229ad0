// Package config provides the minekit configuration for reading in files and
// environment variables with Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"go.minekit.dev/minekit/pkg/command"
	"go.minekit.dev/minekit/pkg/util/sets"
)

// DefaultConfig is a default Config.
var DefaultConfig = Config{
	Chest: Chest{
		Enabled: true,
	},
	Command: Command{
		Enabled: true,
		Prefix:  "!",
		ID:      "minekit:cmd",
	},
}

// Config is the root configuration of minekit.
type Config struct {
	// Debug enables debug logging and diagnostic state dumps.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// See Chest struct.
	Chest Chest `json:"chest,omitempty" yaml:"chest,omitempty"`
	// See Command struct.
	Command Command `json:"command,omitempty" yaml:"command,omitempty"`
}

// Chest configures the synthetic chest use event.
type Chest struct {
	// Enabled fires chest.UseEvents on block interactions.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// Command configures the chat/script-event command router.
type Command struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	// Tree is the nested command tree matched against incoming messages.
	Tree []command.Sub `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// Setting returns the router setting declared by the config.
func (c Command) Setting() command.Setting {
	return command.Setting{Prefix: c.Prefix, ID: c.ID}
}

// SetDefaults sets Config defaults to use with Viper.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("chest.enabled", DefaultConfig.Chest.Enabled)
	v.SetDefault("command.enabled", DefaultConfig.Command.Enabled)
	v.SetDefault("command.prefix", DefaultConfig.Command.Prefix)
	v.SetDefault("command.id", DefaultConfig.Command.ID)
}

// Load reads the config from the given file, layered over defaults and
// MINEKIT_* environment variables. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("MINEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &c, nil
}

// Validate validates the config and returns
// a list of warnings and errors.
func (c *Config) Validate() (warns []error, errs []error) {
	e := func(m string, args ...any) { errs = append(errs, fmt.Errorf(m, args...)) }
	w := func(m string, args ...any) { warns = append(warns, fmt.Errorf(m, args...)) }
	if c == nil {
		e("config must not be nil")
		return
	}

	if c.Command.Enabled {
		if c.Command.Prefix == "" && c.Command.ID == "" {
			e("command routing is enabled but both prefix and id are empty")
		}
		if len(c.Command.Tree) == 0 {
			w("command routing is enabled but the command tree is empty")
		}
		validateTree(c.Command.Tree, nil, e)
	}

	return
}

func validateTree(tree []command.Sub, path []string, e func(m string, args ...any)) {
	seen := sets.NewString()
	for _, sub := range tree {
		at := strings.Join(append(path, sub.Name), " ")
		if sub.Name == "" {
			e("command node at %q has an empty name", strings.Join(path, " "))
			continue
		}
		if strings.Contains(sub.Name, " ") {
			e("command %q: name must be a single token", at)
		}
		if seen.Has(sub.Name) {
			e("command %q: duplicate sibling name", at)
		}
		seen.Insert(sub.Name)
		validateTree(sub.Subs, append(path, sub.Name), e)
	}
}

// MissingHandlers returns the terminal command names of the tree that have no
// handler registered in reg, in tree order.
func (c *Config) MissingHandlers(reg *command.Registry) (missing []string) {
	var walk func(tree []command.Sub)
	walk = func(tree []command.Sub) {
		for _, sub := range tree {
			if sub.Terminal() {
				if _, ok := reg.Lookup(sub.Name); !ok {
					missing = append(missing, sub.Name)
				}
				continue
			}
			walk(sub.Subs)
		}
	}
	walk(c.Command.Tree)
	return missing
}
