package app

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/habits/internal/application/doctor"
	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/infrastructure/chart"
	"github.com/doeshing/habits/internal/infrastructure/clock"
	"github.com/doeshing/habits/internal/infrastructure/config"
	"github.com/doeshing/habits/internal/infrastructure/store"
	"github.com/doeshing/habits/internal/pkg/logger"
	"github.com/doeshing/habits/internal/ports"
)

// Options carries CLI-level settings into the dependency graph.
type Options struct {
	Verbose      bool
	ConfigPath   string
	StoreKind    string
	RendererKind string
	In           io.Reader
	Out          io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Tracker        *tracker.Service
	Renderer       ports.ChartRenderer
	DoctorService  *doctor.Service
	Logger         *logger.ZapLogger
	Repository     ports.HabitRepository
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(opts.StoreKind, opts.RendererKind)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(opts.Verbose, cfg.Logging.Level)
	systemClock := clock.NewSystem()
	factory := store.NewFactory()

	repo, err := factory.Open(ctx, cfg.Store.Kind)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Kind, err)
	}

	renderer, err := chart.New(cfg.Renderer, opts.In, opts.Out)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	trackerService := &tracker.Service{
		Repository: repo,
		Clock:      systemClock,
		Logger:     log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		StoreFactory:   factory,
		ResolveRenderer: func(kind string) (string, error) {
			return chart.Resolve(kind, opts.In, opts.Out)
		},
		Clock:            systemClock,
		Logger:           log,
		StoreOverride:    opts.StoreKind,
		RendererOverride: opts.RendererKind,
	}

	log.Debug("container ready", map[string]interface{}{
		"config":   cfgLoader.Path(),
		"store":    cfg.Store.Kind,
		"renderer": cfg.Renderer.Kind,
	})

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Tracker:        trackerService,
		Renderer:       renderer,
		DoctorService:  doctorService,
		Logger:         log,
		Repository:     repo,
	}, nil
}

// Close releases the repository and flushes the logger.
func (c *Container) Close() error {
	err := c.Repository.Close()
	_ = c.Logger.Sync()
	return err
}
