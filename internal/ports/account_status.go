package ports

import (
	"context"

	"github.com/bnema/check-mullvad-account/internal/domain"
)

// APIResponse is the undecoded answer of the account status endpoint.
type APIResponse struct {
	StatusCode int
	Body       []byte
}

type AccountStatusClient interface {
	FetchAccount(ctx context.Context, id domain.AccountID) (APIResponse, error)
}

// ExpiryDecoder extracts the expiry from a successful response body. Each
// implementation understands exactly one payload shape.
type ExpiryDecoder interface {
	DecodeExpiry(body []byte) (domain.Expiry, error)
}
