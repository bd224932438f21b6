package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/repository"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
)

// Auth event labels.
const (
	EventLogin   = "login"
	EventSignup  = "signup"
	EventLogout  = "logout"
	EventRestore = "restore"
)

type accountRoster interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Create(ctx context.Context, name, email, secret string) (*models.Account, error)
	SetEnrolledCourses(ctx context.Context, accountID string, courseIDs []string) error
	ListPublic(ctx context.Context) []models.PublicAccount
}

type sessionStore interface {
	Load(ctx context.Context) (*models.PublicAccount, error)
	Save(ctx context.Context, account models.PublicAccount) error
	Clear(ctx context.Context) error
}

// SessionObserver is told about every session transition. Either side may be nil.
type SessionObserver func(previous, next *models.PublicAccount)

// SessionConfig tunes the session manager.
type SessionConfig struct {
	SimulatedLatency time.Duration
}

// SessionService owns the single active session of the process.
type SessionService struct {
	accounts  accountRoster
	sessions  sessionStore
	scheme    CredentialScheme
	validator *validator.Validate
	notifier  Notifier
	metrics   *MetricsService
	logger    *zap.Logger
	config    SessionConfig

	mu        sync.RWMutex
	current   *models.PublicAccount
	observers []SessionObserver
}

// NewSessionService constructs a SessionService. The session starts anonymous until Restore.
func NewSessionService(accounts accountRoster, sessions sessionStore, scheme CredentialScheme, validate *validator.Validate, notifier Notifier, metrics *MetricsService, logger *zap.Logger, cfg SessionConfig) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if scheme == nil {
		scheme = PlaintextCredentials{}
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &SessionService{
		accounts:  accounts,
		sessions:  sessions,
		scheme:    scheme,
		validator: validate,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		config:    cfg,
	}
}

// Observe registers fn for future session transitions.
func (s *SessionService) Observe(fn SessionObserver) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Login opens a session for the account matching both email and secret, replacing any
// existing session.
func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (*models.PublicAccount, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch account")
	}
	if account == nil || !s.scheme.Verify(account.Password, req.Password) {
		s.metrics.RecordAuthEvent(EventLogin, OutcomeFailure)
		s.notifier.Notify(ctx, failure("Invalid email or password"))
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	public := account.Public()
	s.establishLocked(ctx, &public)
	s.metrics.RecordAuthEvent(EventLogin, OutcomeSuccess)
	s.notifier.Notify(ctx, success(fmt.Sprintf("Welcome back, %s!", public.Name)))
	s.logger.Info("session opened", zap.String("account_id", public.ID), zap.String("role", string(public.Role)))

	out := public.Clone()
	return &out, nil
}

// Signup registers a student account and logs it in.
func (s *SessionService) Signup(ctx context.Context, req models.SignupRequest) (*models.PublicAccount, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	sealed, err := s.scheme.Seal(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seal credentials")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Create(ctx, req.Name, req.Email, sealed)
	if err != nil {
		s.metrics.RecordAuthEvent(EventSignup, OutcomeFailure)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.notifier.Notify(ctx, failure("Email already registered. Please use a different email."))
			return nil, appErrors.Wrap(err, appErrors.ErrEmailTaken.Code, appErrors.ErrEmailTaken.Status, appErrors.ErrEmailTaken.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create account")
	}

	public := account.Public()
	s.establishLocked(ctx, &public)
	s.metrics.RecordAuthEvent(EventSignup, OutcomeSuccess)
	s.notifier.Notify(ctx, success(fmt.Sprintf("Welcome to AlpsTech, %s!", public.Name)))
	s.logger.Info("account registered", zap.String("account_id", public.ID))

	out := public.Clone()
	return &out, nil
}

// Logout clears the session. Calling it while anonymous is a no-op apart from the notice.
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.current
	s.current = nil
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear stored session", zap.Error(err))
	}
	if previous != nil {
		s.notifyObserversLocked(previous, nil)
	}
	s.metrics.SetSessionActive(false)
	s.metrics.RecordAuthEvent(EventLogout, OutcomeSuccess)
	s.notifier.Notify(ctx, info("You have been logged out"))
}

// Restore adopts the stored session blob as is. A missing or unreadable blob leaves the
// session anonymous.
func (s *SessionService) Restore(ctx context.Context) (*models.PublicAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	previous := s.current
	s.current = stored
	s.notifyObserversLocked(previous, stored)
	s.metrics.SetSessionActive(stored != nil)
	if stored == nil {
		return nil, nil
	}
	s.metrics.RecordAuthEvent(EventRestore, OutcomeSuccess)
	s.logger.Info("session restored", zap.String("account_id", stored.ID))
	out := stored.Clone()
	return &out, nil
}

// Current returns a copy of the active session or nil.
func (s *SessionService) Current() *models.PublicAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	out := s.current.Clone()
	return &out
}

// State reports whether a session is active.
func (s *SessionService) State() models.SessionState {
	if s.Current() == nil {
		return models.SessionAnonymous
	}
	return models.SessionAuthenticated
}

// View returns the session state together with the account.
func (s *SessionService) View() models.SessionView {
	current := s.Current()
	if current == nil {
		return models.SessionView{State: models.SessionAnonymous}
	}
	return models.SessionView{State: models.SessionAuthenticated, User: current}
}

// Accounts exposes the redacted roster.
func (s *SessionService) Accounts(ctx context.Context) []models.PublicAccount {
	return s.accounts.ListPublic(ctx)
}

// UpdateCurrent applies fn to a copy of the active session while holding the session lock.
// When fn reports a change the copy replaces the session and is persisted. Without a session
// fn is not called and nil is returned.
func (s *SessionService) UpdateCurrent(ctx context.Context, fn func(account *models.PublicAccount) (bool, error)) (*models.PublicAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	next := s.current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return nil, err
	}
	if changed {
		s.current = &next
		if err := s.sessions.Save(ctx, next); err != nil {
			s.logger.Warn("failed to persist session", zap.Error(err))
		}
	}
	out := s.current.Clone()
	return &out, nil
}

func (s *SessionService) establishLocked(ctx context.Context, account *models.PublicAccount) {
	previous := s.current
	s.current = account
	if err := s.sessions.Save(ctx, *account); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	s.metrics.SetSessionActive(true)
	s.notifyObserversLocked(previous, account)
}

func (s *SessionService) notifyObserversLocked(previous, next *models.PublicAccount) {
	for _, fn := range s.observers {
		fn(previous, next)
	}
}

func (s *SessionService) simulateLatency(ctx context.Context) error {
	if s.config.SimulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.config.SimulatedLatency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
