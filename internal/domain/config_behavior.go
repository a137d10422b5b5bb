package domain

import (
	"fmt"
	"strings"
)

// Store kinds.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Renderer kinds.
const (
	RendererAuto = "auto"
	RendererTUI  = "tui"
	RendererText = "text"
)

// Log levels accepted in logging.level.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values the program cannot act on.
func (c *Config) Validate() error {
	if !IsValidStoreKind(c.Store.Kind) {
		return fmt.Errorf("unknown store kind %q (want %s or %s)", c.Store.Kind, StoreMemory, StoreSQLite)
	}
	if !IsValidRendererKind(c.Renderer.Kind) {
		return fmt.Errorf("unknown renderer kind %q (want %s, %s or %s)",
			c.Renderer.Kind, RendererAuto, RendererTUI, RendererText)
	}
	if c.Renderer.MaxBarHeight < MinBarHeight {
		return fmt.Errorf("renderer.max_bar_height must be >= %d", MinBarHeight)
	}
	if c.Renderer.BarWidth < 1 {
		return fmt.Errorf("renderer.bar_width must be >= 1")
	}
	if c.Logging.Level != "" && !containsFold(validLogLevels, c.Logging.Level) {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// ApplyOverrides replaces store and renderer kinds when non-empty values are given,
// typically from command-line flags.
func (c *Config) ApplyOverrides(storeKind, rendererKind string) {
	if storeKind != "" {
		c.Store.Kind = strings.ToLower(storeKind)
	}
	if rendererKind != "" {
		c.Renderer.Kind = strings.ToLower(rendererKind)
	}
}

// IsValidStoreKind reports whether kind names a known repository.
func IsValidStoreKind(kind string) bool {
	return kind == StoreMemory || kind == StoreSQLite
}

// IsValidRendererKind reports whether kind names a known renderer.
func IsValidRendererKind(kind string) bool {
	switch kind {
	case RendererAuto, RendererTUI, RendererText:
		return true
	default:
		return false
	}
}

func containsFold(values []string, v string) bool {
	for _, candidate := range values {
		if strings.EqualFold(candidate, v) {
			return true
		}
	}
	return false
}
