package service

import "context"

// TokenVault seals provider tokens before they are written to storage.
type TokenVault interface {
	Seal(ctx context.Context, plaintext string) (string, error)
	Open(ctx context.Context, sealed string) (string, error)
}
