// Package vault seals provider tokens at rest with a gocloud.dev secrets keeper.
package vault

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"calsync/config"
	"calsync/internal/domain/service"
	"calsync/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/localsecrets" // base64key:// keepers
)

// sealedPrefix marks values written by a keeper. Values without it are read back unchanged.
const sealedPrefix = "sealed:v1:"

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the keeper named by vault.keeperUrl. An empty URL stores tokens unsealed.
func New(params Params) (service.TokenVault, error) {
	keeperURL := ""
	if params.Config.Vault != nil {
		keeperURL = strings.TrimSpace(params.Config.Vault.KeeperURL)
	}

	if keeperURL == "" {
		params.Logger.Warn("No token vault keeper configured, provider tokens are stored unsealed")

		return Plaintext(), nil
	}

	keeper, err := secrets.OpenKeeper(context.Background(), keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "open secrets keeper")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(keeper.Close())
		},
	})

	return NewKeeperVault(keeper), nil
}

type keeperVault struct {
	keeper *secrets.Keeper
}

// NewKeeperVault wraps an opened keeper. The caller owns closing it.
func NewKeeperVault(keeper *secrets.Keeper) service.TokenVault {
	return &keeperVault{keeper: keeper}
}

func (v *keeperVault) Seal(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	ciphertext, err := v.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", errors.Wrap(err, "seal token")
	}

	return sealedPrefix + base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (v *keeperVault) Open(ctx context.Context, sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return sealed, nil
	}

	ciphertext, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(err, "decode sealed token")
	}

	plaintext, err := v.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "open sealed token")
	}

	return string(plaintext), nil
}

type plaintextVault struct{}

// Plaintext returns a vault that stores values unchanged.
func Plaintext() service.TokenVault {
	return plaintextVault{}
}

func (plaintextVault) Seal(_ context.Context, plaintext string) (string, error) {
	return plaintext, nil
}

func (plaintextVault) Open(_ context.Context, sealed string) (string, error) {
	return sealed, nil
}
