package mullvad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bnema/check-mullvad-account/internal/domain"
	"github.com/bnema/check-mullvad-account/internal/ports"
	"github.com/bnema/check-mullvad-account/internal/version"
)

const maxBodyBytes = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.AccountStatusClient = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchAccount performs a single GET against <base>/<account>/. Non-2xx
// answers are not errors here; the caller classifies the status code.
func (c *Client) FetchAccount(ctx context.Context, id domain.AccountID) (ports.APIResponse, error) {
	endpoint := c.baseURL + "/" + string(id) + "/"
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.APIResponse{}, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "check_mullvad_account/"+version.Version)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return ports.APIResponse{}, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes+1))
	if err != nil {
		return ports.APIResponse{}, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxBodyBytes {
		return ports.APIResponse{}, fmt.Errorf("read response: response too large (HTTP %d, over %d bytes)", response.StatusCode, maxBodyBytes)
	}

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		c.logger.DebugContext(ctx, "mullvad api response",
			"url", endpoint,
			"status", response.StatusCode,
			"body", prettyBody(body),
		)
	}

	return ports.APIResponse{StatusCode: response.StatusCode, Body: body}, nil
}

func prettyBody(body []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "    "); err != nil {
		return string(body)
	}

	return out.String()
}
