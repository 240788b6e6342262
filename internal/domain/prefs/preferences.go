// internal/domain/prefs/preferences.go
package prefs

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jewelbellery/storefront-backend/internal/storage"
)

// MaxPincodeLength is the longest delivery pincode we accept
const MaxPincodeLength = 6

// Preferences holds one session's delivery preference. The stored pincode
// is always digits only and at most MaxPincodeLength characters; the empty
// string means unset.
type Preferences struct {
	store   storage.Store
	logger  *logrus.Logger
	key     string
	pincode string
}

// NewPreferences creates session preferences, loading any previously
// persisted pincode. Unreadable values degrade to unset. A persisted value
// is sanitized again on load so a corrupted store cannot break the
// digits-only invariant.
func NewPreferences(ctx context.Context, store storage.Store, sessionID string, logger *logrus.Logger) *Preferences {
	p := &Preferences{
		store:  store,
		logger: logger,
		key:    pincodeKey(sessionID),
	}

	value, ok, err := store.Get(ctx, p.key)
	if err != nil {
		logger.WithError(err).WithField("key", p.key).Warn("Failed to load persisted pincode, starting unset")
		return p
	}
	if ok {
		p.pincode = SanitizePincode(value)
	}

	return p
}

// SetDeliveryPincode sanitizes raw and stores the result, which may be
// empty. It never fails: invalid characters are stripped and the remainder
// truncated rather than rejected.
func (p *Preferences) SetDeliveryPincode(ctx context.Context, raw string) string {
	p.pincode = SanitizePincode(raw)

	if err := p.store.Set(ctx, p.key, p.pincode); err != nil {
		p.logger.WithError(err).WithField("key", p.key).Warn("Failed to persist pincode")
	}

	return p.pincode
}

// DeliveryPincode returns the stored pincode, or "" when unset
func (p *Preferences) DeliveryPincode() string {
	return p.pincode
}

// SanitizePincode strips every non-digit character from raw and truncates
// the result to MaxPincodeLength digits.
func SanitizePincode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == MaxPincodeLength {
				break
			}
		}
	}
	return b.String()
}

func pincodeKey(sessionID string) string {
	return fmt.Sprintf("pincode:session:%s", sessionID)
}
