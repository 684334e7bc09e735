package commandstructure

// Command is one step of the preview pipeline.
type Command interface {
	Name() string
	Execute(imageData []byte) ([]byte, error)
}

// CommandFactory creates a command from configuration parameters.
type CommandFactory func(params map[string]any) (Command, error)

// CommandConfig names a registered command and the parameters to build it with.
type CommandConfig struct {
	Name   string         `yaml:"name" toml:"name"`
	Params map[string]any `yaml:"params" toml:"params"`
}
