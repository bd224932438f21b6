package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alpstech-academy-api/internal/repository"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	"github.com/noah-isme/alpstech-academy-api/pkg/kvstore"
	"github.com/noah-isme/alpstech-academy-api/pkg/notice"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice.Notice
}

func (r *recordingNotifier) Notify(_ context.Context, n notice.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) last() notice.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notice.Notice{}
	}
	return r.notices[len(r.notices)-1]
}

type harness struct {
	store      kvstore.Store
	accounts   *repository.AccountRepository
	sessions   *SessionService
	enrollment *EnrollmentService
	catalog    *CatalogService
	notifier   *recordingNotifier
	metrics    *MetricsService
}

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }

// newHarness boots the services over store the way the process entrypoint does.
func newHarness(t *testing.T, store kvstore.Store, scheme CredentialScheme) *harness {
	t.Helper()
	ctx := context.Background()
	if scheme == nil {
		scheme = PlaintextCredentials{}
	}
	seedAccounts, err := SealAccounts(scheme, seed.Accounts())
	require.NoError(t, err)

	accounts := repository.NewAccountRepository(store, seedAccounts, nil)
	require.NoError(t, accounts.Load(ctx))
	_, err = MigrateCredentials(ctx, accounts, scheme)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	metrics := NewMetricsService()
	sessions := NewSessionService(accounts, repository.NewSessionRepository(store, nil), scheme, nil, notifier, metrics, nil, SessionConfig{})
	data := SeedDatasets()
	enrollment := NewEnrollmentService(sessions, accounts, data.Courses, notifier, metrics, nil)
	enrollment.now = fixedNow
	catalogSvc := NewCatalogService(data, sessions, enrollment, nil, nil)
	catalogSvc.now = fixedNow
	sessions.Observe(catalogSvc.ResetOverlay)

	_, err = sessions.Restore(ctx)
	require.NoError(t, err)

	return &harness{
		store:      store,
		accounts:   accounts,
		sessions:   sessions,
		enrollment: enrollment,
		catalog:    catalogSvc,
		notifier:   notifier,
		metrics:    metrics,
	}
}
