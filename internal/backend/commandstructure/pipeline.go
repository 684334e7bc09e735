package commandstructure

import (
	"fmt"
	"log/slog"
	"time"
)

// Pipeline applies a fixed sequence of commands to image data.
type Pipeline struct {
	commands []Command
}

func NewPipeline(commands ...Command) *Pipeline {
	return &Pipeline{commands: commands}
}

// BuildPipeline creates every configured command up front so that
// configuration errors surface at startup rather than on the first request.
func BuildPipeline(registry *CommandRegistry, configs []CommandConfig) (*Pipeline, error) {
	commands := make([]Command, 0, len(configs))
	for i, config := range configs {
		command, err := registry.Create(config.Name, config.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to create command at index %d (%s): %w", i, config.Name, err)
		}
		commands = append(commands, command)
	}
	return NewPipeline(commands...), nil
}

// Names lists the command names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.commands))
	for i, c := range p.commands {
		names[i] = c.Name()
	}
	return names
}

// Execute runs the commands in order, feeding each output into the next.
func (p *Pipeline) Execute(imageData []byte) ([]byte, error) {
	start := time.Now()
	if len(p.commands) == 0 {
		slog.Debug("no commands to execute, returning original image")
		return imageData, nil
	}

	currentData := imageData
	for idx, command := range p.commands {
		commandStart := time.Now()

		processedData, err := command.Execute(currentData)
		if err != nil {
			slog.Error("command execution failed",
				"index", idx,
				"command_name", command.Name(),
				"error", err,
				"input_size_bytes", len(currentData))
			return nil, fmt.Errorf("command %s (index %d) failed: %w", command.Name(), idx, err)
		}

		slog.Debug("command completed",
			"index", idx,
			"command_name", command.Name(),
			"duration_ms", time.Since(commandStart).Milliseconds(),
			"input_size_bytes", len(currentData),
			"output_size_bytes", len(processedData))

		currentData = processedData
	}

	slog.Debug("preview pipeline completed",
		"total_duration_ms", time.Since(start).Milliseconds(),
		"command_count", len(p.commands),
		"final_size_bytes", len(currentData))
	return currentData, nil
}
