package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
)

// UsersKey is the storage key holding the whole roster, secrets included.
const UsersKey = "users"

var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when creating an account with a registered email.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// AccountRepository owns the account roster and mirrors it to durable storage as one blob.
type AccountRepository struct {
	store  kvstore.Store
	seed   []models.Account
	logger *zap.Logger
	newID  func() string

	mu       sync.RWMutex
	accounts []models.Account
}

// NewAccountRepository creates a repository that falls back to seed when storage holds no roster.
func NewAccountRepository(store kvstore.Store, seed []models.Account, logger *zap.Logger) *AccountRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountRepository{
		store:  store,
		seed:   seed,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
}

// Load reads the roster from storage. A missing or corrupt blob restores the seed roster
// and writes it back.
func (r *AccountRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stored []models.Account
	err := kvstore.GetJSON(ctx, r.store, UsersKey, &stored)
	if err == nil && stored != nil {
		r.accounts = stored
		return nil
	}
	if err != nil && !kvstore.IsNotFound(err) {
		r.logger.Warn("stored roster unreadable, restoring seed accounts", zap.Error(err))
	}

	r.accounts = make([]models.Account, len(r.seed))
	for i, a := range r.seed {
		r.accounts[i] = a.Clone()
	}
	return r.persistLocked(ctx)
}

// FindByEmail returns a copy of the account registered under email. Matching is exact.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if idx := r.indexByEmail(email); idx >= 0 {
		account := r.accounts[idx].Clone()
		return &account, nil
	}
	return nil, ErrAccountNotFound
}

// Create registers a student account and persists the roster before returning.
func (r *AccountRepository) Create(ctx context.Context, name, email, secret string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexByEmail(email) >= 0 {
		return nil, ErrDuplicateEmail
	}

	account := models.Account{
		ID:              r.uniqueID(),
		Name:            name,
		Email:           email,
		Password:        secret,
		Role:            models.RoleStudent,
		EnrolledCourses: []string{},
		Results:         []string{},
	}
	r.accounts = append(r.accounts, account)
	if err := r.persistLocked(ctx); err != nil {
		r.accounts = r.accounts[:len(r.accounts)-1]
		return nil, err
	}

	created := account.Clone()
	return &created, nil
}

// SetEnrolledCourses replaces the enrolled course ids of an account. Unknown ids are ignored.
func (r *AccountRepository) SetEnrolledCourses(ctx context.Context, accountID string, courseIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID != accountID {
			continue
		}
		previous := r.accounts[i].EnrolledCourses
		r.accounts[i].EnrolledCourses = append([]string{}, courseIDs...)
		if err := r.persistLocked(ctx); err != nil {
			r.accounts[i].EnrolledCourses = previous
			return err
		}
		return nil
	}
	return nil
}

// RewriteSecrets passes every stored secret through rewrite and persists the roster once when
// any secret changed. It returns how many secrets were replaced.
func (r *AccountRepository) RewriteSecrets(ctx context.Context, rewrite func(stored string) (string, bool, error)) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous := make([]string, len(r.accounts))
	changed := 0
	for i := range r.accounts {
		previous[i] = r.accounts[i].Password
		next, ok, err := rewrite(r.accounts[i].Password)
		if err != nil {
			r.restoreSecretsLocked(previous[:i])
			return 0, err
		}
		if ok {
			r.accounts[i].Password = next
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := r.persistLocked(ctx); err != nil {
		r.restoreSecretsLocked(previous)
		return 0, err
	}
	return changed, nil
}

// ListPublic returns the roster without secrets, in insertion order.
func (r *AccountRepository) ListPublic(ctx context.Context) []models.PublicAccount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.PublicAccount, len(r.accounts))
	for i, a := range r.accounts {
		out[i] = a.Public()
	}
	return out
}

func (r *AccountRepository) indexByEmail(email string) int {
	for i, a := range r.accounts {
		if a.Email == email {
			return i
		}
	}
	return -1
}

func (r *AccountRepository) restoreSecretsLocked(secrets []string) {
	for i, secret := range secrets {
		r.accounts[i].Password = secret
	}
}

func (r *AccountRepository) uniqueID() string {
	for {
		id := r.newID()
		taken := false
		for _, a := range r.accounts {
			if a.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func (r *AccountRepository) persistLocked(ctx context.Context) error {
	if err := kvstore.SetJSON(ctx, r.store, UsersKey, r.accounts); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}
	return nil
}
