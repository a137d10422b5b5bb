package commands

import (
	"context"

	"github.com/doeshing/habits/internal/app"
)

// ContainerLoader builds the dependency graph once flags have been parsed.
type ContainerLoader func(ctx context.Context) (*app.Container, error)

// Error messages
const (
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
)
