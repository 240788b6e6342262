package prefs_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelbellery/storefront-backend/internal/domain/prefs"
	"github.com/jewelbellery/storefront-backend/internal/storage"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSanitizePincode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits pass through", raw: "560001", want: "560001"},
		{name: "separators are stripped", raw: "56-0001", want: "560001"},
		{name: "letters and trailing text are stripped", raw: "ab56-001 extra", want: "56001"},
		{name: "seventh and later digits are dropped", raw: "5600011", want: "560001"},
		{name: "empty input stays empty", raw: "", want: ""},
		{name: "no digits at all yields empty", raw: "abc-xyz", want: ""},
		{name: "unicode digits are not accepted", raw: "١٢٣456", want: "456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, prefs.SanitizePincode(tt.raw))
		})
	}
}

func TestSetDeliveryPincode(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the sanitized value and persists it", func(t *testing.T) {
		store := storage.NewMemoryStore()
		p := prefs.NewPreferences(ctx, store, "test-session", testLogger())

		stored := p.SetDeliveryPincode(ctx, "ab56-001 extra")
		assert.Equal(t, "56001", stored)
		assert.Equal(t, "56001", p.DeliveryPincode())

		value, ok, err := store.Get(ctx, "pincode:session:test-session")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "56001", value)
	})

	t.Run("setting an empty value clears the pincode", func(t *testing.T) {
		store := storage.NewMemoryStore()
		p := prefs.NewPreferences(ctx, store, "test-session", testLogger())

		p.SetDeliveryPincode(ctx, "560001")
		stored := p.SetDeliveryPincode(ctx, "")
		assert.Equal(t, "", stored)
		assert.Equal(t, "", p.DeliveryPincode())
	})
}

func TestPreferencesRehydration(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh preferences see the persisted pincode", func(t *testing.T) {
		store := storage.NewMemoryStore()
		logger := testLogger()

		first := prefs.NewPreferences(ctx, store, "restart-session", logger)
		first.SetDeliveryPincode(ctx, "560001")

		second := prefs.NewPreferences(ctx, store, "restart-session", logger)
		assert.Equal(t, "560001", second.DeliveryPincode())
	})

	t.Run("a corrupt stored value is sanitized on load", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, "pincode:session:corrupt-session", "ab12cd34ef99zz"))

		p := prefs.NewPreferences(ctx, store, "corrupt-session", testLogger())
		assert.Equal(t, "123499", p.DeliveryPincode())
	})

	t.Run("missing value means unset", func(t *testing.T) {
		p := prefs.NewPreferences(ctx, storage.NewMemoryStore(), "new-session", testLogger())
		assert.Equal(t, "", p.DeliveryPincode())
	})
}

// failingStore errors on every operation
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("store unavailable")
}

func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("store unavailable")
}

func (failingStore) Ping(ctx context.Context) error {
	return errors.New("store unavailable")
}

func TestPreferencesStoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()

	p := prefs.NewPreferences(ctx, failingStore{}, "doomed-session", testLogger())
	assert.Equal(t, "", p.DeliveryPincode())

	stored := p.SetDeliveryPincode(ctx, "560001")
	assert.Equal(t, "560001", stored)
	assert.Equal(t, "560001", p.DeliveryPincode())
}
