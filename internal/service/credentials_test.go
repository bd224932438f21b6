package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/alpstech-academy-api/internal/repository"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	"github.com/noah-isme/alpstech-academy-api/pkg/config"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
)

func TestNewCredentialSchemeDefaultsToPlaintext(t *testing.T) {
	assert.Equal(t, config.CredentialPlaintext, NewCredentialScheme("").Name())
	assert.Equal(t, config.CredentialPlaintext, NewCredentialScheme("argon2").Name())
	assert.Equal(t, config.CredentialBcrypt, NewCredentialScheme(config.CredentialBcrypt).Name())
}

func TestBcryptCredentialsSealAndVerify(t *testing.T) {
	scheme := BcryptCredentials{Cost: bcrypt.MinCost}
	sealed, err := scheme.Seal("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", sealed)
	assert.True(t, scheme.Verify(sealed, "password123"))
	assert.False(t, scheme.Verify(sealed, "password124"))
	assert.False(t, scheme.Verify("not-a-hash", "password123"))
}

func TestSealAccountsLeavesInputUntouched(t *testing.T) {
	accounts := seed.Accounts()
	sealed, err := SealAccounts(BcryptCredentials{Cost: bcrypt.MinCost}, accounts)
	require.NoError(t, err)

	require.Len(t, sealed, len(accounts))
	assert.Equal(t, "password123", accounts[0].Password)
	assert.True(t, BcryptCredentials{}.Verify(sealed[0].Password, "password123"))
	assert.Equal(t, accounts[0].EnrolledCourses, sealed[0].EnrolledCourses)
}

func TestSealedRecognisesOwnFormat(t *testing.T) {
	hash, err := BcryptCredentials{Cost: bcrypt.MinCost}.Seal("password123")
	require.NoError(t, err)

	assert.True(t, BcryptCredentials{}.Sealed(hash))
	assert.False(t, BcryptCredentials{}.Sealed("password123"))
	assert.True(t, PlaintextCredentials{}.Sealed("password123"))
	assert.True(t, PlaintextCredentials{}.Sealed(hash))
}

func TestPlaintextVerifiesLeftoverHashes(t *testing.T) {
	hash, err := BcryptCredentials{Cost: bcrypt.MinCost}.Seal("admin123")
	require.NoError(t, err)

	assert.True(t, PlaintextCredentials{}.Verify(hash, "admin123"))
	assert.False(t, PlaintextCredentials{}.Verify(hash, hash))
	assert.True(t, PlaintextCredentials{}.Verify("admin123", "admin123"))
}

func TestMigrateCredentialsSealsPlaintextRoster(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	accounts := repository.NewAccountRepository(store, seed.Accounts(), nil)
	require.NoError(t, accounts.Load(ctx))

	scheme := BcryptCredentials{Cost: bcrypt.MinCost}
	migrated, err := MigrateCredentials(ctx, accounts, scheme)
	require.NoError(t, err)
	assert.Equal(t, 2, migrated)

	student, err := accounts.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.True(t, scheme.Verify(student.Password, "password123"))

	again, err := MigrateCredentials(ctx, accounts, scheme)
	require.NoError(t, err)
	assert.Zero(t, again)
}
