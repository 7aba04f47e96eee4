package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the hard-coded configuration used when even
// the embedded YAML cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FromParams(engine.DefaultParams())
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
