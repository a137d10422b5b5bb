package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/habits/assets"
	"github.com/doeshing/habits/internal/domain"
	"github.com/doeshing/habits/internal/pkg/filesystem"
	"github.com/doeshing/habits/internal/ports"
)

// FileLoader loads YAML configuration from ~/.habits/config.yaml (overridable via
// HABITS_CONFIG or an explicit path). A missing file means built-in defaults.
type FileLoader struct {
	overridePath string
	getenv       func(string) string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, getenv: os.Getenv}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return domain.Config{}, err
	}

	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := decodeStrict(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return hydrateDefaults(cfg), nil
}

// Path returns the file the loader reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := l.getenv(domain.ConfigEnvVar); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// Defaults returns the embedded default configuration.
func Defaults() (domain.Config, error) {
	var cfg domain.Config
	if err := decodeStrict(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

func decodeStrict(data []byte, cfg *domain.Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = domain.ConfigFormatVersion
	}
	if cfg.Store.Kind == "" {
		cfg.Store.Kind = domain.StoreMemory
	}
	if cfg.Renderer.Kind == "" {
		cfg.Renderer.Kind = domain.RendererAuto
	}
	if cfg.Renderer.BarColor == "" {
		cfg.Renderer.BarColor = domain.DefaultBarColor
	}
	if cfg.Renderer.MaxBarHeight == 0 {
		cfg.Renderer.MaxBarHeight = domain.DefaultMaxBarHeight
	}
	if cfg.Renderer.BarWidth == 0 {
		cfg.Renderer.BarWidth = domain.DefaultBarWidth
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
