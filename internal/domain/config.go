package domain

// Config mirrors ~/.habits/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Store               StoreSettings    `yaml:"store"`
	Renderer            RendererSettings `yaml:"renderer"`
	Logging             LoggingSettings  `yaml:"logging"`
}

// StoreSettings selects the in-process habit repository.
type StoreSettings struct {
	Kind string `yaml:"kind"`
}

// RendererSettings configures the progress chart.
type RendererSettings struct {
	Kind         string `yaml:"kind"`
	BarColor     string `yaml:"bar_color"`
	MaxBarHeight int    `yaml:"max_bar_height"`
	BarWidth     int    `yaml:"bar_width"`
}

// LoggingSettings controls diagnostic output.
type LoggingSettings struct {
	Level string `yaml:"level"`
}
