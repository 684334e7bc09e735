package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jo-hoe/aiexplorer/internal/backend/commandstructure"
	"github.com/jo-hoe/aiexplorer/internal/backend/database"
	"github.com/jo-hoe/aiexplorer/internal/intent"
)

// Duration reads Go duration strings such as "2s" or "1500ms" from YAML and TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Log struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
}

type Database struct {
	Type             string `yaml:"type" toml:"type" validate:"oneof=static sqlite"`
	ConnectionString string `yaml:"connectionString" toml:"connectionString"`
}

type Simulation struct {
	SearchDelay   Duration `yaml:"searchDelay" toml:"searchDelay" validate:"gte=0"`
	GenerateDelay Duration `yaml:"generateDelay" toml:"generateDelay" validate:"gte=0"`
}

type Intents struct {
	Type    string `yaml:"type" toml:"type" validate:"oneof=log redis"`
	Address string `yaml:"address" toml:"address"`
	Channel string `yaml:"channel" toml:"channel"`
}

type Session struct {
	CookieName    string   `yaml:"cookieName" toml:"cookieName" validate:"required"`
	IdleTimeout   Duration `yaml:"idleTimeout" toml:"idleTimeout" validate:"gt=0"`
	SweepInterval Duration `yaml:"sweepInterval" toml:"sweepInterval" validate:"gt=0"`
}

type Preview struct {
	ThumbnailWidth    int    `yaml:"thumbnailWidth" toml:"thumbnailWidth" validate:"gt=0"`
	SVGFallbackWidth  int    `yaml:"svgFallbackWidth" toml:"svgFallbackWidth" validate:"gte=0"`
	SVGFallbackHeight int    `yaml:"svgFallbackHeight" toml:"svgFallbackHeight" validate:"gte=0"`
	Background        string `yaml:"background" toml:"background"`
	// Commands run between PNG conversion and the final thumbnail scale.
	Commands []commandstructure.CommandConfig `yaml:"commands" toml:"commands"`
}

type ServiceConfig struct {
	Port       int        `yaml:"port" toml:"port" validate:"gte=1,lte=65535"`
	Log        Log        `yaml:"log" toml:"log"`
	Database   Database   `yaml:"database" toml:"database"`
	Simulation Simulation `yaml:"simulation" toml:"simulation"`
	Intents    Intents    `yaml:"intents" toml:"intents"`
	Session    Session    `yaml:"session" toml:"session"`
	Preview    Preview    `yaml:"preview" toml:"preview"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *ServiceConfig {
	return &ServiceConfig{
		Port: 8080,
		Log:  Log{Level: "info", Format: "text"},
		Database: Database{
			Type:             database.TypeStatic,
			ConnectionString: ":memory:",
		},
		Simulation: Simulation{
			SearchDelay:   Duration(2 * time.Second),
			GenerateDelay: Duration(3 * time.Second),
		},
		Intents: Intents{
			Type:    intent.TypeLog,
			Channel: intent.DefaultChannel,
		},
		Session: Session{
			CookieName:    "aiexplorer_session",
			IdleTimeout:   Duration(30 * time.Minute),
			SweepInterval: Duration(time.Minute),
		},
		Preview: Preview{
			ThumbnailWidth:    320,
			SVGFallbackWidth:  512,
			SVGFallbackHeight: 512,
			Background:        "#ffffff",
		},
	}
}

// LoadConfig reads the file at configPath over the defaults. Files ending in
// .toml are parsed as TOML, everything else as YAML. A missing file is not an
// error. PORT in the environment overrides the configured port.
func LoadConfig(configPath string) (*ServiceConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("config file not found, using defaults", "path", configPath)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	default:
		if err := decode(configPath, data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.Port = p
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func decode(configPath string, data []byte, config *ServiceConfig) error {
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		return toml.Unmarshal(data, config)
	}
	return yaml.Unmarshal(data, config)
}

// Validate checks field constraints and cross-field rules.
func (c *ServiceConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Database.Type == database.TypeSQLite && c.Database.ConnectionString == "" {
		return errors.New("sqlite database requires a connectionString")
	}
	if c.Intents.Type == intent.TypeRedis && c.Intents.Address == "" {
		return errors.New("redis intent recorder requires an address")
	}
	return validateCommands(c.Preview.Commands)
}

func validateCommands(commands []commandstructure.CommandConfig) error {
	for i, cmd := range commands {
		if cmd.Name == "" {
			return fmt.Errorf("command at index %d has empty name", i)
		}
		if !commandstructure.DefaultRegistry.IsRegistered(cmd.Name) {
			return fmt.Errorf("unknown command %q at index %d, registered: %s",
				cmd.Name, i, strings.Join(commandstructure.DefaultRegistry.GetRegisteredNames(), ", "))
		}
	}
	return nil
}
