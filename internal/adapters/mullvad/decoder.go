package mullvad

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/check-mullvad-account/internal/domain"
	"github.com/bnema/check-mullvad-account/internal/ports"
)

type Shape string

const (
	ShapeLegacy  Shape = "legacy"
	ShapeCurrent Shape = "current"

	LegacyBaseURL  = "https://api.mullvad.net/www/accounts"
	CurrentBaseURL = "https://api.mullvad.net/public/accounts/v1"
)

func (s Shape) Valid() bool {
	switch s {
	case ShapeLegacy, ShapeCurrent:
		return true
	default:
		return false
	}
}

// DefaultBaseURL is the endpoint serving the given shape.
func (s Shape) DefaultBaseURL() string {
	if s == ShapeCurrent {
		return CurrentBaseURL
	}

	return LegacyBaseURL
}

// NewDecoder picks the decoder for one payload shape. Legacy epoch values
// are shown in loc, and current timestamps without an offset are read in it.
func NewDecoder(shape Shape, loc *time.Location) (ports.ExpiryDecoder, error) {
	switch shape {
	case ShapeLegacy:
		return LegacyDecoder{Location: loc}, nil
	case ShapeCurrent:
		return CurrentDecoder{Location: loc}, nil
	default:
		return nil, fmt.Errorf("unsupported api shape %q", shape)
	}
}

// Epoch bounds of years 1 through 9999, the range the expiry can be shown in.
const (
	minExpiryUnix = -62135596800
	maxExpiryUnix = 253402300799
)

type legacyPayload struct {
	Account *legacyAccount `json:"account"`
}

type legacyAccount struct {
	ExpiryUnix *json.Number `json:"expiry_unix"`
}

// LegacyDecoder reads {"account": {"expiry_unix": <epoch seconds>}}.
type LegacyDecoder struct {
	Location *time.Location
}

func (d LegacyDecoder) DecodeExpiry(body []byte) (domain.Expiry, error) {
	var payload legacyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Expiry{}, fmt.Errorf("decode account payload: %w", err)
	}
	if payload.Account == nil {
		return domain.Expiry{}, domain.ErrAccountDataMissing
	}
	if payload.Account.ExpiryUnix == nil {
		return domain.Expiry{}, domain.ErrExpiryMissing
	}

	seconds, err := payload.Account.ExpiryUnix.Float64()
	if err != nil {
		return domain.Expiry{}, fmt.Errorf("parse expiry_unix %q: %w", payload.Account.ExpiryUnix.String(), err)
	}
	if math.IsNaN(seconds) || seconds < minExpiryUnix || seconds > maxExpiryUnix {
		return domain.Expiry{}, fmt.Errorf("parse expiry_unix %q: value out of range", payload.Account.ExpiryUnix.String())
	}

	whole, frac := math.Modf(seconds)
	at := time.Unix(int64(whole), int64(frac*float64(time.Second)))

	return domain.Expiry{At: at.In(locationOrLocal(d.Location))}, nil
}

type currentPayload struct {
	Expiry *string `json:"expiry"`
}

// CurrentDecoder reads {"expiry": "<ISO-8601 timestamp>"}.
type CurrentDecoder struct {
	Location *time.Location
}

var currentLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
}

func (d CurrentDecoder) DecodeExpiry(body []byte) (domain.Expiry, error) {
	var payload currentPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Expiry{}, fmt.Errorf("decode account payload: %w", err)
	}
	if payload.Expiry == nil || strings.TrimSpace(*payload.Expiry) == "" {
		return domain.Expiry{}, domain.ErrExpiryMissing
	}

	raw := strings.TrimSpace(*payload.Expiry)
	for _, layout := range currentLayouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return domain.Expiry{At: at, ShowZone: true}, nil
		}
	}

	// Timestamps without an offset are taken in the display location.
	at, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", raw, locationOrLocal(d.Location))
	if err != nil {
		return domain.Expiry{}, fmt.Errorf("parse expiry %q: %w", raw, err)
	}

	return domain.Expiry{At: at}, nil
}

func locationOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}

	return loc
}
