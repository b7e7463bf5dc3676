package vault

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"calsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/secrets/localsecrets"
)

// testKey pads or cuts s to a localsecrets key.
func testKey(s string) [32]byte {
	var key [32]byte
	copy(key[:], s)

	return key
}

func TestKeeperVault_SealAndOpen(t *testing.T) {
	keeper := localsecrets.NewKeeper(testKey("0123456789abcdef0123456789abcdef"))
	defer keeper.Close()

	v := NewKeeperVault(keeper)
	ctx := context.Background()

	sealed, err := v.Seal(ctx, "refresh-token-value")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, sealedPrefix))
	assert.NotContains(t, sealed, "refresh-token-value")

	opened, err := v.Open(ctx, sealed)
	require.NoError(t, err)
	assert.Equal(t, "refresh-token-value", opened)
}

func TestKeeperVault_EmptyAndUnsealedValues(t *testing.T) {
	keeper := localsecrets.NewKeeper(testKey("0123456789abcdef0123456789abcdef"))
	defer keeper.Close()

	v := NewKeeperVault(keeper)
	ctx := context.Background()

	sealed, err := v.Seal(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := v.Open(ctx, "legacy-plaintext")
	require.NoError(t, err)
	assert.Equal(t, "legacy-plaintext", opened)
}

func TestKeeperVault_WrongKey(t *testing.T) {
	ctx := context.Background()

	writer := localsecrets.NewKeeper(testKey("0123456789abcdef0123456789abcdef"))
	defer writer.Close()
	reader := localsecrets.NewKeeper(testKey("fedcba9876543210fedcba9876543210"))
	defer reader.Close()

	sealed, err := NewKeeperVault(writer).Seal(ctx, "secret")
	require.NoError(t, err)

	_, err = NewKeeperVault(reader).Open(ctx, sealed)
	assert.Error(t, err)
}

func TestNew_FromKeeperURL(t *testing.T) {
	key, err := localsecrets.NewRandomKey()
	require.NoError(t, err)

	cfg := &config.Config{Vault: &config.VaultConfig{
		KeeperURL: "base64key://" + base64.URLEncoding.EncodeToString(key[:]),
	}}
	lc := fxtest.NewLifecycle(t)

	v, err := New(Params{Lc: lc, Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.NoError(t, err)

	sealed, err := v.Seal(context.Background(), "t1")
	require.NoError(t, err)
	opened, err := v.Open(context.Background(), sealed)
	require.NoError(t, err)
	assert.Equal(t, "t1", opened)

	lc.RequireStart().RequireStop()
}

func TestNew_EmptyURLIsPlaintext(t *testing.T) {
	v, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Vault: &config.VaultConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	sealed, err := v.Seal(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", sealed)
}
