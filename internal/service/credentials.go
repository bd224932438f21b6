package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/pkg/config"
)

// CredentialScheme seals secrets before they reach the roster and checks login attempts.
type CredentialScheme interface {
	Name() string
	Seal(secret string) (string, error)
	Verify(stored, secret string) bool
	// Sealed reports whether stored is already in the form this scheme writes.
	Sealed(stored string) bool
}

// NewCredentialScheme returns the scheme registered under name, defaulting to plaintext.
func NewCredentialScheme(name string) CredentialScheme {
	if name == config.CredentialBcrypt {
		return BcryptCredentials{Cost: bcrypt.DefaultCost}
	}
	return PlaintextCredentials{}
}

// PlaintextCredentials stores and compares secrets verbatim. Hashes left by an earlier bcrypt
// deployment cannot be reversed, so they are still checked with bcrypt.
type PlaintextCredentials struct{}

func (PlaintextCredentials) Name() string { return config.CredentialPlaintext }

func (PlaintextCredentials) Seal(secret string) (string, error) { return secret, nil }

func (PlaintextCredentials) Verify(stored, secret string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
	}
	return stored == secret
}

func (PlaintextCredentials) Sealed(string) bool { return true }

// BcryptCredentials stores salted bcrypt hashes.
type BcryptCredentials struct {
	Cost int
}

func (BcryptCredentials) Name() string { return config.CredentialBcrypt }

func (b BcryptCredentials) Seal(secret string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptCredentials) Verify(stored, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
}

func (BcryptCredentials) Sealed(stored string) bool { return isBcryptHash(stored) }

func isBcryptHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// SealAccounts returns copies of accounts with their secrets sealed by scheme.
func SealAccounts(scheme CredentialScheme, accounts []models.Account) ([]models.Account, error) {
	out := make([]models.Account, len(accounts))
	for i, a := range accounts {
		sealed, err := scheme.Seal(a.Password)
		if err != nil {
			return nil, err
		}
		out[i] = a.Clone()
		out[i].Password = sealed
	}
	return out, nil
}

type secretRewriter interface {
	RewriteSecrets(ctx context.Context, rewrite func(stored string) (string, bool, error)) (int, error)
}

// MigrateCredentials seals every stored secret the scheme did not produce, so a roster written
// under another scheme keeps working after CREDENTIAL_SCHEME changes.
func MigrateCredentials(ctx context.Context, roster secretRewriter, scheme CredentialScheme) (int, error) {
	return roster.RewriteSecrets(ctx, func(stored string) (string, bool, error) {
		if scheme.Sealed(stored) {
			return stored, false, nil
		}
		sealed, err := scheme.Seal(stored)
		if err != nil {
			return "", false, err
		}
		return sealed, true, nil
	})
}
