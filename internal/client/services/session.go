// Package services contains application services for the JobHub client.
// This file defines the session store: the single owner of the logged-in
// user, its persisted copy and the login / register / logout flows.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/jobhub/internal/client/client"
	"github.com/dmitrijs2005/jobhub/internal/client/metrics"
	"github.com/dmitrijs2005/jobhub/internal/client/models"
	"github.com/dmitrijs2005/jobhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobhub/internal/dbx"
	"github.com/dmitrijs2005/jobhub/internal/logging"
)

// Storage keys owned by the session store.
const (
	CurrentUserKey  = "currentUser"
	LastUsernameKey = "lastUsername"
)

// ErrNoSessionStore is the panic value when a nil store is used.
var ErrNoSessionStore = errors.New("session store used before it was established")

// RegistrationData is the part of a profile sent when signing up.
type RegistrationData struct {
	Name  string
	Email string
}

// SessionStore holds the current session and keeps it in sync with local
// storage.
//
// Contract:
//   - Init restores a persisted session; call it once after construction.
//   - Login, Register and Logout run one at a time; overlapping calls queue.
//   - Login and Register report failure as false and only log the reason.
//   - User and IsLoading may be called at any time from any goroutine.
//
// A nil *SessionStore panics with ErrNoSessionStore.
type SessionStore struct {
	client  client.Client
	db      *sql.DB
	log     logging.Logger
	metrics metrics.Recorder
	now     func() time.Time

	guard    *semaphore.Weighted
	initOnce sync.Once

	mu      sync.RWMutex
	user    *models.Session
	pending int
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithMetrics reports operation outcomes to r.
func WithMetrics(r metrics.Recorder) Option {
	return func(s *SessionStore) { s.metrics = r }
}

// WithClock overrides the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *SessionStore) { s.now = now }
}

// NewSessionStore constructs a store bound to the API client and the local
// database. The store starts out loading with no user until Init runs.
func NewSessionStore(api client.Client, db *sql.DB, log logging.Logger, opts ...Option) *SessionStore {
	s := &SessionStore{
		client:  api,
		db:      db,
		log:     log.With("component", "session"),
		metrics: metrics.Nop{},
		now:     time.Now,
		guard:   semaphore.NewWeighted(1),
		pending: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SessionStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Init loads the persisted session, if any. A record that cannot be decoded
// is deleted and the store stays logged out. Init never fails; problems are
// logged. Only the first call has an effect.
func (s *SessionStore) Init(ctx context.Context) {
	s.mustExist()
	s.initOnce.Do(func() {
		defer s.end()

		if err := s.guard.Acquire(context.WithoutCancel(ctx), 1); err != nil {
			return
		}
		defer s.guard.Release(1)

		s.restore(ctx)
	})
}

func (s *SessionStore) restore(ctx context.Context) {
	start := time.Now()
	repo := s.repo()

	raw, err := repo.Get(ctx, CurrentUserKey)
	if err != nil {
		s.log.Error(ctx, "failed to read stored session", "error", err)
		s.record(metrics.OpRestore, metrics.OutcomeError, start)
		return
	}
	if raw == nil {
		s.record(metrics.OpRestore, metrics.OutcomeSuccess, start)
		return
	}

	var stored *models.Session
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Error(ctx, "failed to parse stored session", "error", err)
		if err := repo.Delete(ctx, CurrentUserKey); err != nil {
			s.log.Error(ctx, "failed to discard stored session", "error", err)
		}
		s.record(metrics.OpRestore, metrics.OutcomeError, start)
		return
	}

	s.setUser(stored)
	s.record(metrics.OpRestore, metrics.OutcomeSuccess, start)
}

// Login authenticates with the service. On success a new session replaces
// the current one, is persisted and true is returned. A rejected login or a
// transport failure returns false and leaves the current session as it was.
func (s *SessionStore) Login(ctx context.Context, usernameOrEmail, password string) bool {
	s.mustExist()
	s.begin()
	defer s.end()

	if !s.acquire(ctx, metrics.OpLogin) {
		return false
	}
	defer s.guard.Release(1)

	return s.login(ctx, usernameOrEmail, password)
}

func (s *SessionStore) login(ctx context.Context, usernameOrEmail, password string) bool {
	start := time.Now()

	remote, err := s.client.Login(ctx, usernameOrEmail, password)
	if err != nil {
		if se, ok := client.IsStatusError(err); ok {
			s.log.Info(ctx, "login rejected", "status", se.StatusCode)
			s.record(metrics.OpLogin, metrics.OutcomeRejected, start)
			return false
		}
		s.log.Error(ctx, "login error", "error", err)
		s.record(metrics.OpLogin, metrics.OutcomeError, start)
		return false
	}

	session := models.NewSession(remote.ID.String(), remote.Username, s.now())
	s.setUser(session)

	if err := s.save(ctx, session, usernameOrEmail); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}

	s.record(metrics.OpLogin, metrics.OutcomeSuccess, start)
	return true
}

// save writes the session and the name used to log in within a single
// transaction.
func (s *SessionStore) save(ctx context.Context, session *models.Session, usernameOrEmail string) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, CurrentUserKey, data); err != nil {
			return err
		}
		return repo.Set(ctx, LastUsernameKey, []byte(usernameOrEmail))
	})
}

// Register creates an account and then logs in with data.Email and the
// same password; the result of that login is returned. Signing up alone
// does not establish a session.
func (s *SessionStore) Register(ctx context.Context, data RegistrationData, password string) bool {
	s.mustExist()
	s.begin()
	defer s.end()

	if !s.acquire(ctx, metrics.OpRegister) {
		return false
	}
	defer s.guard.Release(1)

	start := time.Now()

	if err := s.client.Signup(ctx, data.Name, data.Email, password); err != nil {
		if se, ok := client.IsStatusError(err); ok {
			s.log.Error(ctx, "registration failed", "status", se.StatusCode, "message", se.Message)
			s.record(metrics.OpRegister, metrics.OutcomeRejected, start)
			return false
		}
		s.log.Error(ctx, "registration error", "error", err)
		s.record(metrics.OpRegister, metrics.OutcomeError, start)
		return false
	}
	s.record(metrics.OpRegister, metrics.OutcomeSuccess, start)

	return s.login(ctx, data.Email, password)
}

// Logout drops the session and its persisted copy. It waits for any
// operation in flight and ignores cancellation of ctx so that it always
// completes.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mustExist()
	ctx = context.WithoutCancel(ctx)

	if !s.acquire(ctx, metrics.OpLogout) {
		return
	}
	defer s.guard.Release(1)

	start := time.Now()
	s.setUser(nil)

	if err := s.repo().Delete(ctx, CurrentUserKey); err != nil {
		s.log.Error(ctx, "failed to delete stored session", "error", err)
		s.record(metrics.OpLogout, metrics.OutcomeError, start)
		return
	}
	s.record(metrics.OpLogout, metrics.OutcomeSuccess, start)
}

// User returns a copy of the current session, or nil when logged out.
func (s *SessionStore) User() *models.Session {
	s.mustExist()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// IsAuthenticated reports whether a session is active.
func (s *SessionStore) IsAuthenticated() bool {
	s.mustExist()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading is true until Init completes and while Login or Register is
// running or queued.
func (s *SessionStore) IsLoading() bool {
	s.mustExist()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

// LastUsername returns the name used for the last successful login, or ""
// if there is none.
func (s *SessionStore) LastUsername(ctx context.Context) string {
	s.mustExist()
	v, err := s.repo().Get(ctx, LastUsernameKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read last username", "error", err)
		return ""
	}
	return string(v)
}

func (s *SessionStore) acquire(ctx context.Context, op string) bool {
	// Acquire may succeed on an already cancelled context; check first.
	err := ctx.Err()
	if err == nil {
		err = s.guard.Acquire(ctx, 1)
	}
	if err != nil {
		s.log.Warn(ctx, "session operation abandoned while waiting", "operation", op, "error", err)
		s.metrics.RecordOperation(op, metrics.OutcomeAborted, 0)
		return false
	}
	return true
}

func (s *SessionStore) setUser(u *models.Session) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
	s.metrics.SetAuthenticated(u != nil)
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

func (s *SessionStore) record(op, outcome string, start time.Time) {
	s.metrics.RecordOperation(op, outcome, time.Since(start))
}

func (s *SessionStore) mustExist() {
	if s == nil {
		panic(ErrNoSessionStore)
	}
}
