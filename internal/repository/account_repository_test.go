package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
)

func loadedAccounts(t *testing.T, store kvstore.Store) *AccountRepository {
	repo := NewAccountRepository(store, seed.Accounts(), nil)
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func TestLoadSeedsEmptyStorage(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := loadedAccounts(t, store)

	student, err := repo.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, student.Role)
	assert.Equal(t, []string{"1", "2", "5"}, student.EnrolledCourses)
	assert.Equal(t, []string{"1", "2", "3"}, student.Results)

	var persisted []models.Account
	require.NoError(t, kvstore.GetJSON(ctx, store, UsersKey, &persisted))
	assert.Len(t, persisted, 2)
	assert.Equal(t, "admin123", persisted[1].Password)
}

func TestLoadRecoversFromCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Set(ctx, UsersKey, []byte("{broken")))

	repo := loadedAccounts(t, store)
	assert.Len(t, repo.ListPublic(ctx), 2)

	var persisted []models.Account
	require.NoError(t, kvstore.GetJSON(ctx, store, UsersKey, &persisted))
	assert.Len(t, persisted, 2)
}

func TestFindByEmailIsCaseSensitive(t *testing.T) {
	repo := loadedAccounts(t, kvstore.NewMemory())
	_, err := repo.FindByEmail(context.Background(), "Student@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreateRejectsDuplicateWithoutMutation(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := loadedAccounts(t, store)
	before, err := store.Get(ctx, UsersKey)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "Again", "student@example.com", "x")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	after, err := store.Get(ctx, UsersKey)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, repo.ListPublic(ctx), 2)
}

func TestCreateAssignsFreshStudentAndPersists(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := loadedAccounts(t, store)

	created, err := repo.Create(ctx, "New Student", "new@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.Empty(t, created.EnrolledCourses)
	assert.NotNil(t, created.EnrolledCourses)

	reloaded := loadedAccounts(t, store)
	found, err := reloaded.FindByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCreateRedrawsCollidingIDs(t *testing.T) {
	repo := loadedAccounts(t, kvstore.NewMemory())
	draws := []string{"1", "2", "fresh"}
	repo.newID = func() string {
		id := draws[0]
		draws = draws[1:]
		return id
	}

	created, err := repo.Create(context.Background(), "N", "n@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "fresh", created.ID)
}

func TestSetEnrolledCourses(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := loadedAccounts(t, store)

	require.NoError(t, repo.SetEnrolledCourses(ctx, "1", []string{"1", "2", "5", "3"}))
	require.NoError(t, repo.SetEnrolledCourses(ctx, "missing", []string{"9"}))

	reloaded := loadedAccounts(t, store)
	student, err := reloaded.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "5", "3"}, student.EnrolledCourses)
}

func TestRosterRoundTripThroughFileStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	repo := loadedAccounts(t, store)
	_, err = repo.Create(ctx, "Round Trip", "rt@example.com", "pw1234")
	require.NoError(t, err)
	require.NoError(t, repo.SetEnrolledCourses(ctx, "1", []string{"1", "2", "5", "4"}))
	before := repo.ListPublic(ctx)

	restarted, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)
	after := loadedAccounts(t, restarted).ListPublic(ctx)

	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].Email, after[i].Email)
		assert.Equal(t, before[i].Role, after[i].Role)
		assert.Equal(t, before[i].EnrolledCourses, after[i].EnrolledCourses)
	}
}

func TestListPublicReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := loadedAccounts(t, kvstore.NewMemory())
	list := repo.ListPublic(ctx)
	list[0].EnrolledCourses[0] = "mutated"

	student, err := repo.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1", student.EnrolledCourses[0])
}

func TestRewriteSecretsPersistsOnlyChanges(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := loadedAccounts(t, store)

	changed, err := repo.RewriteSecrets(ctx, func(stored string) (string, bool, error) {
		if stored == "admin123" {
			return "sealed:" + stored, true, nil
		}
		return stored, false, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	var persisted []models.Account
	require.NoError(t, kvstore.GetJSON(ctx, store, UsersKey, &persisted))
	assert.Equal(t, "password123", persisted[0].Password)
	assert.Equal(t, "sealed:admin123", persisted[1].Password)
}

func TestRewriteSecretsRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := loadedAccounts(t, kvstore.NewMemory())

	calls := 0
	_, err := repo.RewriteSecrets(ctx, func(stored string) (string, bool, error) {
		calls++
		if calls == 2 {
			return "", false, errors.New("seal failed")
		}
		return "changed", true, nil
	})
	require.Error(t, err)

	student, err := repo.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.Equal(t, "password123", student.Password)
}
