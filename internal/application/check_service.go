package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bnema/check-mullvad-account/internal/domain"
	"github.com/bnema/check-mullvad-account/internal/ports"
)

type CheckService struct {
	client  ports.AccountStatusClient
	decoder ports.ExpiryDecoder
	clock   ports.Clock
	logger  *slog.Logger
}

func NewCheckService(client ports.AccountStatusClient, decoder ports.ExpiryDecoder, clock ports.Clock, logger *slog.Logger) *CheckService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &CheckService{
		client:  client,
		decoder: decoder,
		clock:   clock,
		logger:  logger,
	}
}

// Check runs one fetch/decode/classify pass. It always yields a report:
// failures that were not classified along the way end up as UNKNOWN.
func (s *CheckService) Check(ctx context.Context, cfg domain.CheckConfig) domain.Report {
	report, err := s.check(ctx, cfg)
	if err != nil {
		s.logger.DebugContext(ctx, "account check failed",
			"account", cfg.Account,
			"error", err,
			"error_type", errorType(err),
		)
		return domain.ErrorReport(err)
	}

	return report
}

func (s *CheckService) check(ctx context.Context, cfg domain.CheckConfig) (domain.Report, error) {
	response, err := s.client.FetchAccount(ctx, cfg.Account)
	if err != nil {
		return domain.Report{}, err
	}

	// An undecodable body wins over the status code.
	if !json.Valid(response.Body) {
		return domain.NewReport(domain.SeverityUnknown,
			"Mullvad API did not respond with valid JSON (Returned code HTTP %d)", response.StatusCode), nil
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.NewReport(domain.SeverityCritical, "Code 404: Mullvad account not found"), nil
	default:
		return domain.NewReport(domain.SeverityUnknown, "Mullvad API HTTP ERROR %d", response.StatusCode), nil
	}

	expiry, err := s.decoder.DecodeExpiry(response.Body)
	if err != nil {
		return domain.Report{}, err
	}

	now := s.clock.Now()
	s.logger.DebugContext(ctx, "account expiry decoded",
		"account", cfg.Account,
		"expiry", expiry.At,
		"now", now,
	)

	return domain.ExpirationReport(expiry, now, cfg), nil
}

func errorType(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return fmt.Sprintf("%T", err)
		}
		err = unwrapped
	}
}
