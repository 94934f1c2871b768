package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	KeyConfigPath         = "config.path"
	KeyAPIURL             = "api.url"
	KeyAPIShape           = "api.shape"
	KeyThresholdsWarning  = "thresholds.warning"
	KeyThresholdsCritical = "thresholds.critical"
	KeyOutputPerfData     = "output.perfdata"
	KeyDisplayTimezone    = "display.timezone"
	KeyLogLevel           = "log.level"

	configDir  = "check_mullvad_account"
	configFile = "config.toml"
)

// Loader layers the TOML config file under whatever flags and environment
// already put into the viper instance.
type Loader struct {
	path     string
	explicit bool
}

func NewLoader(cfg *viper.Viper) (*Loader, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if path := cfg.GetString(KeyConfigPath); path != "" {
		path, err := normalizeConfigPath(path)
		if err != nil {
			return nil, err
		}
		return &Loader{path: path, explicit: true}, nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config directory: %w", err)
	}

	return &Loader{path: filepath.Join(userConfigDir, configDir, configFile)}, nil
}

func (l *Loader) Path() string {
	return l.path
}

// Apply reads the file and registers its values as viper defaults, so flags
// and environment variables keep precedence. A missing default file is not
// an error; a missing file that was asked for explicitly is.
func (l *Loader) Apply(cfg *viper.Viper) error {
	file, err := l.readSchema()
	if err != nil {
		return err
	}

	if file.API.URL != "" {
		cfg.SetDefault(KeyAPIURL, file.API.URL)
	}
	if file.API.Shape != "" {
		cfg.SetDefault(KeyAPIShape, file.API.Shape)
	}
	if file.Thresholds.Warning != nil {
		cfg.SetDefault(KeyThresholdsWarning, *file.Thresholds.Warning)
	}
	if file.Thresholds.Critical != nil {
		cfg.SetDefault(KeyThresholdsCritical, *file.Thresholds.Critical)
	}
	if file.Output.PerfData != nil {
		cfg.SetDefault(KeyOutputPerfData, *file.Output.PerfData)
	}
	if file.Display.Timezone != "" {
		cfg.SetDefault(KeyDisplayTimezone, file.Display.Timezone)
	}
	if file.Log.Level != "" {
		cfg.SetDefault(KeyLogLevel, file.Log.Level)
	}

	return nil
}

func (l *Loader) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !l.explicit {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file %s: %w", l.path, err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeConfigPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
