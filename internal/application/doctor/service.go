package doctor

import (
	"context"
	"fmt"

	"github.com/doeshing/habits/internal/application/tracker"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/ports"
)

const probeHabit = "doctor probe"

// RendererResolver maps a configured renderer kind to the concrete one that would be used.
type RendererResolver func(kind string) (string, error)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider   ports.ConfigProvider
	StoreFactory     ports.RepositoryFactory
	ResolveRenderer  RendererResolver
	Clock            ports.Clock
	Logger           ports.Logger
	StoreOverride    string
	RendererOverride string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	cfg.ApplyOverrides(s.StoreOverride, s.RendererOverride)
	if err := cfg.Validate(); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	if s.StoreFactory != nil {
		checks = append(checks, s.storeCheck(ctx, cfg.Store.Kind))
	} else {
		checks = append(checks, warn("Habit store", "store factory not initialized"))
	}

	if s.ResolveRenderer != nil {
		checks = append(checks, s.rendererCheck(cfg.Renderer.Kind))
	} else {
		checks = append(checks, warn("Renderer", "renderer resolver not initialized"))
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, fmt.Errorf("one or more checks failed")
	}
	return report, nil
}

// storeCheck exercises a throwaway repository through the tracker service.
func (s *Service) storeCheck(ctx context.Context, kind string) domain.HealthCheck {
	repo, err := s.StoreFactory.Open(ctx, kind)
	if err != nil {
		return fail("Habit store", fmt.Sprintf("%s: %v", kind, err))
	}
	defer repo.Close()

	svc := &tracker.Service{Repository: repo, Clock: s.Clock, Logger: s.Logger}
	if _, err := svc.AddHabit(ctx, probeHabit); err != nil {
		return fail("Habit store", fmt.Sprintf("%s: add failed: %v", kind, err))
	}
	if _, err := svc.LogCompletion(ctx, probeHabit); err != nil {
		return fail("Habit store", fmt.Sprintf("%s: log failed: %v", kind, err))
	}
	snapshot, err := svc.Snapshot(ctx)
	if err != nil {
		return fail("Habit store", fmt.Sprintf("%s: snapshot failed: %v", kind, err))
	}
	if len(snapshot) != 1 || snapshot[0].Count != 1 {
		return fail("Habit store", fmt.Sprintf("%s: unexpected snapshot %+v", kind, snapshot))
	}
	return ok("Habit store", fmt.Sprintf("%s round-trip succeeded", kind))
}

func (s *Service) rendererCheck(kind string) domain.HealthCheck {
	resolved, err := s.ResolveRenderer(kind)
	if err != nil {
		return fail("Renderer", err.Error())
	}
	if kind == domain.RendererAuto && resolved == domain.RendererText {
		return warn("Renderer", "stdin or stdout is not a terminal; charts will be printed as text")
	}
	return ok("Renderer", fmt.Sprintf("%s (configured %s)", resolved, kind))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
