package config

import (
	"time"

	"github.com/weftlang/weft/pattern"
)

// GetEngineConfig returns the current configuration
func GetEngineConfig() EngineConfig {
	val, _ := NewEngineConfig()
	return val
}

// EngineConfig represents options that configure the global behavior of the program
type EngineConfig struct {
	// Tempo is the playback rate in cycles per second.
	Tempo pattern.Time

	// TickInterval is how often the player samples the timeline.
	TickInterval time.Duration

	// Palette holds the default show colors as hex strings.
	Palette []string
}

// Create a new EngineConfig object with reasonable defaults for real usage
func NewEngineConfig() (EngineConfig, error) {
	// TODO - support passing in a config file one day

	return EngineConfig{
		Tempo:        pattern.NewTime(1, 2),
		TickInterval: 25 * time.Millisecond,
		Palette:      []string{"#FF0000", "#0000FF", "#FFFFFF"},
	}, nil
}
