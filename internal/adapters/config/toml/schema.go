package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int              `toml:"version"`
	API        apiSchema        `toml:"api"`
	Thresholds thresholdsSchema `toml:"thresholds"`
	Output     outputSchema     `toml:"output"`
	Display    displaySchema    `toml:"display"`
	Log        logSchema        `toml:"log"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type apiSchema struct {
	URL   string `toml:"url,omitempty"`
	Shape string `toml:"shape,omitempty"`
}

type thresholdsSchema struct {
	Warning  *int `toml:"warning,omitempty"`
	Critical *int `toml:"critical,omitempty"`
}

type outputSchema struct {
	PerfData *bool `toml:"perfdata,omitempty"`
}

type displaySchema struct {
	Timezone string `toml:"timezone,omitempty"`
}

type logSchema struct {
	Level string `toml:"level,omitempty"`
}
