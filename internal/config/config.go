// Package config loads tool options from an optional tokmark.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Dialect carries grammar-version switches consulted by the marker's
// refinement table.
type Dialect struct {
	// LegacyComprehensions selects grammars whose set/dict comprehension
	// nodes do not carry their own start position, so their ranges must be
	// back-extended to the opening brace the same way list comprehensions
	// are. Modern grammars report the brace position themselves.
	LegacyComprehensions bool `toml:"legacy_comprehensions"`
}

// Output carries default output settings; CLI flags override them.
type Output struct {
	Format string `toml:"format"` // pretty|json
	Color  string `toml:"color"`  // auto|on|off
}

// Config is the root of tokmark.toml.
type Config struct {
	Dialect Dialect `toml:"dialect"`
	Output  Output  `toml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: Output{
			Format: "pretty",
			Color:  "auto",
		},
	}
}

// Load reads path as TOML over the defaults. A missing file is not an
// error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
