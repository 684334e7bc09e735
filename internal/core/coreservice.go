package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jo-hoe/aiexplorer/internal/backend/commands"
	"github.com/jo-hoe/aiexplorer/internal/backend/commandstructure"
	"github.com/jo-hoe/aiexplorer/internal/backend/database"
	"github.com/jo-hoe/aiexplorer/internal/dashboard"
	"github.com/jo-hoe/aiexplorer/internal/intent"
	"github.com/jo-hoe/aiexplorer/internal/provider"
	"github.com/jo-hoe/aiexplorer/internal/session"
)

// CoreService wires providers, storage, intent recording, sessions and the
// preview pipeline together for the HTTP layers.
type CoreService struct {
	config          *ServiceConfig
	databaseService database.DatabaseService
	searcher        provider.Searcher
	generator       provider.Generator
	recorder        intent.Recorder
	sessions        *session.Registry
	preview         *commandstructure.Pipeline
}

func NewCoreService(ctx context.Context, config *ServiceConfig) (*CoreService, error) {
	databaseService, err := getDatabaseService(ctx, config)
	if err != nil {
		return nil, err
	}

	recorder, err := intent.NewRecorder(ctx, config.Intents.Type, config.Intents.Address, config.Intents.Channel)
	if err != nil {
		_ = databaseService.Close()
		return nil, fmt.Errorf("failed to initialize intent recorder: %w", err)
	}

	preview, err := buildPreviewPipeline(config.Preview)
	if err != nil {
		_ = recorder.Close()
		_ = databaseService.Close()
		return nil, fmt.Errorf("failed to build preview pipeline: %w", err)
	}
	slog.Info("preview pipeline ready", "commands", preview.Names())

	searcher := provider.NewSimulatedSearcher(config.Simulation.SearchDelay.Std())
	generator := provider.NewSimulatedGenerator(config.Simulation.GenerateDelay.Std())

	return &CoreService{
		config:          config,
		databaseService: databaseService,
		searcher:        searcher,
		generator:       generator,
		recorder:        recorder,
		sessions: session.NewRegistry(session.Dependencies{
			Searcher:   searcher,
			Generator:  generator,
			Repository: databaseService,
		}, config.Session.IdleTimeout.Std()),
		preview: preview,
	}, nil
}

func getDatabaseService(ctx context.Context, config *ServiceConfig) (database.DatabaseService, error) {
	databaseService, err := database.NewDatabase(ctx, config.Database.Type, config.Database.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("database initialized successfully", "type", config.Database.Type)
	return databaseService, nil
}

// buildPreviewPipeline converts to PNG first, runs the configured commands,
// and scales to the thumbnail width last.
func buildPreviewPipeline(cfg Preview) (*commandstructure.Pipeline, error) {
	configs := make([]commandstructure.CommandConfig, 0, len(cfg.Commands)+2)
	configs = append(configs, commandstructure.CommandConfig{
		Name: commands.PngConverterCommandName,
		Params: map[string]any{
			"background":        cfg.Background,
			"svgFallbackWidth":  cfg.SVGFallbackWidth,
			"svgFallbackHeight": cfg.SVGFallbackHeight,
		},
	})
	configs = append(configs, cfg.Commands...)
	configs = append(configs, commandstructure.CommandConfig{
		Name:   commands.PixelScaleCommandName,
		Params: map[string]any{"width": cfg.ThumbnailWidth},
	})
	return commandstructure.BuildPipeline(commandstructure.DefaultRegistry, configs)
}

func (service *CoreService) Config() *ServiceConfig {
	return service.config
}

func (service *CoreService) Searcher() provider.Searcher {
	return service.searcher
}

func (service *CoreService) Generator() provider.Generator {
	return service.generator
}

func (service *CoreService) Repository() dashboard.Repository {
	return service.databaseService
}

func (service *CoreService) Sessions() *session.Registry {
	return service.sessions
}

// RecordIntent notes a save or download request.
func (service *CoreService) RecordIntent(ctx context.Context, action intent.Action, kind intent.Kind, sessionID string, record any) error {
	return service.recorder.Record(ctx, intent.Intent{
		Action:    action,
		Kind:      kind,
		SessionID: sessionID,
		Record:    record,
		At:        time.Now(),
	})
}

// Thumbnail renders image data through the preview pipeline.
func (service *CoreService) Thumbnail(image []byte) ([]byte, error) {
	thumbnail, err := service.preview.Execute(image)
	if err != nil {
		return nil, fmt.Errorf("failed to generate thumbnail: %w", err)
	}
	return thumbnail, nil
}

// RunSessionSweeper expires idle sessions until ctx is done. It blocks.
func (service *CoreService) RunSessionSweeper(ctx context.Context) {
	service.sessions.Run(ctx, service.config.Session.SweepInterval.Std())
}

// Close cancels all pending view work and releases storage and the recorder.
func (service *CoreService) Close() error {
	service.sessions.Close()
	return errors.Join(service.recorder.Close(), service.databaseService.Close())
}
