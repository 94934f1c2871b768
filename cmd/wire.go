package cmd

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tomlconfig "github.com/bnema/check-mullvad-account/internal/adapters/config/toml"
	"github.com/bnema/check-mullvad-account/internal/adapters/mullvad"
	"github.com/bnema/check-mullvad-account/internal/application"
	"github.com/bnema/check-mullvad-account/internal/domain"
	"github.com/bnema/check-mullvad-account/internal/logs"
	"github.com/bnema/check-mullvad-account/internal/ports"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	service *application.CheckService
	check   domain.CheckConfig
}

func wireApp(cmd *cobra.Command, settings *viper.Viper, opts checkOptions) (*app, error) {
	loader, err := tomlconfig.NewLoader(settings)
	if err != nil {
		return nil, fmt.Errorf("wire config loader: %w", err)
	}
	if err := loader.Apply(settings); err != nil {
		return nil, err
	}

	logger := logs.New(cmd.ErrOrStderr(), logs.Level(settings.GetString(tomlconfig.KeyLogLevel), opts.verbose))

	shape := mullvad.Shape(strings.ToLower(strings.TrimSpace(settings.GetString(tomlconfig.KeyAPIShape))))
	if !shape.Valid() {
		return nil, fmt.Errorf("unsupported api shape %q (legacy|current)", shape)
	}

	baseURL := strings.TrimSpace(settings.GetString(tomlconfig.KeyAPIURL))
	if baseURL == "" {
		baseURL = shape.DefaultBaseURL()
	}

	location, err := resolveLocation(settings.GetString(tomlconfig.KeyDisplayTimezone))
	if err != nil {
		return nil, err
	}

	decoder, err := mullvad.NewDecoder(shape, location)
	if err != nil {
		return nil, fmt.Errorf("wire expiry decoder: %w", err)
	}

	logger.Debug("check configured",
		"config", loader.Path(),
		"api_url", baseURL,
		"api_shape", shape,
		"timezone", location.String(),
	)

	check, err := checkConfig(settings, opts)
	if err != nil {
		return nil, err
	}

	client := mullvad.NewClient(baseURL, http.DefaultClient, logger)

	return &app{
		service: application.NewCheckService(client, decoder, ports.SystemClock{}, logger),
		check:   check,
	}, nil
}

// checkConfig reads the typed settings strictly; viper's Get* helpers would
// turn a malformed env or file value into zero.
func checkConfig(settings *viper.Viper, opts checkOptions) (domain.CheckConfig, error) {
	warning, err := cast.ToIntE(settings.Get(tomlconfig.KeyThresholdsWarning))
	if err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: %w", tomlconfig.KeyThresholdsWarning, err)
	}

	critical, err := cast.ToIntE(settings.Get(tomlconfig.KeyThresholdsCritical))
	if err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: %w", tomlconfig.KeyThresholdsCritical, err)
	}

	perfData, err := cast.ToBoolE(settings.Get(tomlconfig.KeyOutputPerfData))
	if err != nil {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: %w", tomlconfig.KeyOutputPerfData, err)
	}

	return domain.CheckConfig{
		Account:  domain.AccountID(strconv.FormatInt(opts.account, 10)),
		Warning:  warning,
		Critical: critical,
		Verbose:  opts.verbose,
		PerfData: perfData,
	}, nil
}

func resolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load display timezone %q: %w", name, err)
	}

	return location, nil
}
