// Package prelude loads the initial environment a program is checked in.
//
// The prelude lives in ende.yaml next to the program (or in any parent
// directory) and declares enum types and externally provided functions:
//
//	enums:
//	  - name: Bool
//	    variants: ["true", "false"]
//	externs:
//	  - name: print
//	    type: "(I32) -> Unit"
package prelude

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/AndyShiue/Ende/internal/config"
	"github.com/AndyShiue/Ende/internal/symbols"
	"github.com/AndyShiue/Ende/internal/typesystem"
)

// Config represents the top-level ende.yaml configuration.
type Config struct {
	// Enums declares nominal enum types usable in extern signatures.
	Enums []EnumSpec `yaml:"enums"`

	// Externs declares names bound in the initial environment.
	Externs []ExternSpec `yaml:"externs"`

	enums  map[string]typesystem.Enum
	types  []typesystem.Type // parsed Externs[i].Type
	source string
}

// EnumSpec declares one enum type.
type EnumSpec struct {
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

// ExternSpec declares one extern binding. Type uses the type expression
// syntax of typesystem.Parse.
type ExternSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadConfig reads and parses an ende.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses ende.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.source = path
	return &cfg, nil
}

// Empty returns a prelude with no declarations.
func Empty() *Config {
	return &Config{enums: map[string]typesystem.Enum{}}
}

// FindConfig searches for ende.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range config.ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks names and parses every extern type. Enums are visible to
// all externs regardless of order.
func (c *Config) validate(path string) error {
	c.enums = make(map[string]typesystem.Enum, len(c.Enums))
	for i, e := range c.Enums {
		if err := ValidateEnum(e, c.enums); err != nil {
			return fmt.Errorf("%s: enums[%d]: %w", path, i, err)
		}
		c.enums[e.Name] = e.Enum()
	}

	c.types = make([]typesystem.Type, len(c.Externs))
	for i, x := range c.Externs {
		if x.Name == "" {
			return fmt.Errorf("%s: externs[%d]: name is required", path, i)
		}
		if !typesystem.IsIdent(x.Name) {
			return fmt.Errorf("%s: externs[%d]: %q is not a valid identifier", path, i, x.Name)
		}
		if x.Type == "" {
			return fmt.Errorf("%s: externs[%d] (%s): type is required", path, i, x.Name)
		}
		ty, err := typesystem.Parse(x.Type, c.enums)
		if err != nil {
			return fmt.Errorf("%s: externs[%d] (%s): %w", path, i, x.Name, err)
		}
		c.types[i] = ty
	}
	return nil
}

// ValidateEnum checks one enum declaration against the enums declared
// before it.
func ValidateEnum(e EnumSpec, declared map[string]typesystem.Enum) error {
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !typesystem.IsIdent(e.Name) {
		return fmt.Errorf("%q is not a valid type name", e.Name)
	}
	if e.Name == config.IntTypeName || e.Name == config.UnitTypeName {
		return fmt.Errorf("%s is a built-in type", e.Name)
	}
	if _, dup := declared[e.Name]; dup {
		return fmt.Errorf("duplicate enum %s", e.Name)
	}
	if len(e.Variants) == 0 {
		return fmt.Errorf("%s: at least one variant is required", e.Name)
	}
	built := typesystem.Enum{Name: e.Name}
	for _, v := range e.Variants {
		if built.HasVariant(v) {
			return fmt.Errorf("%s: duplicate variant %s", e.Name, v)
		}
		built.Variants = append(built.Variants, v)
	}
	return nil
}

// Enum returns the declared type.
func (e EnumSpec) Enum() typesystem.Enum {
	return typesystem.Enum{Name: e.Name, Variants: e.Variants}
}

// Source returns the path the prelude was parsed from, or "" for Empty.
func (c *Config) Source() string {
	return c.source
}

// EnumTable returns the declared enums by name.
func (c *Config) EnumTable() map[string]typesystem.Enum {
	return c.enums
}

// Environment builds a fresh environment holding every extern. A later
// extern with the same name shadows an earlier one.
func (c *Config) Environment() *symbols.Environment[typesystem.Type] {
	env := symbols.NewEnvironment[typesystem.Type]()
	for i, x := range c.Externs {
		env.Define(x.Name, c.types[i])
	}
	return env
}
