package domain

// Time formats
const (
	// DateFormat is the ISO calendar date layout used for completion dates
	DateFormat = "2006-01-02"
)

// Chart constants
const (
	// DefaultBarColor is the fill color of chart bars (matplotlib's skyblue)
	DefaultBarColor = "#87CEEB"
	// DefaultMaxBarHeight is the number of rows used by the tallest bar
	DefaultMaxBarHeight = 10
	// MinBarHeight is the smallest accepted max_bar_height
	MinBarHeight = 1
	// DefaultBarWidth is the number of columns a bar occupies
	DefaultBarWidth = 3
)

// Config constants
const (
	// ConfigFormatVersion is written into freshly generated configs
	ConfigFormatVersion = "1"
	// ConfigEnvVar overrides the config file location
	ConfigEnvVar = "HABITS_CONFIG"
	// DebugEnvVar enables verbose logging when set to 1 or true
	DebugEnvVar = "HABITS_DEBUG"
)
