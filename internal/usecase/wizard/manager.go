package wizard

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	domain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/pkg/id"
)

var (
	ErrSessionNotFound    = errors.New("wizard session not found")
	ErrNotAtSummary       = &ValidationError{"submission is only possible from the summary step"}
	ErrSubmissionInFlight = errors.New("a submission is already in progress for this session")
)

// Submitter is the submission adapter contract: assemble and persist a
// LoanApplication from the draft. Implemented by the application usecase.
type Submitter interface {
	SubmitApplication(ctx context.Context, d Draft) (*domain.LoanApplication, error)
}

// Notifier shows a transient success/error message to the user. The wizard
// fires it and never inspects it afterward.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Manager owns the active wizard sessions. Each session is single-owner and
// purely in-memory: abandoning it (or restarting the process) discards the
// draft, by design.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]Session
	inFlight map[string]bool

	repo      domain.Repository
	submitter Submitter
	notifier  Notifier
	logger    *zap.Logger
}

func NewManager(repo domain.Repository, submitter Submitter, notifier Notifier, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions:  make(map[string]Session),
		inFlight:  make(map[string]bool),
		repo:      repo,
		submitter: submitter,
		notifier:  notifier,
		logger:    logger,
	}
}

// Start opens a session for a user. hasPriorApplication is resolved here,
// once, from the persisted application history.
func (m *Manager) Start(ctx context.Context, userID, currency string) (string, Session, error) {
	n, err := m.repo.CountByUserID(ctx, userID)
	if err != nil {
		return "", Session{}, err
	}
	s := NewSession(userID, currency, n > 0)
	sid := id.NewID32()

	m.mu.Lock()
	m.sessions[sid] = s
	m.mu.Unlock()
	return sid, s, nil
}

func (m *Manager) Get(sessionID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

// Apply routes one event through the pure transition function and stores the
// resulting session. On a validation error the stored session is untouched.
func (m *Manager) Apply(sessionID string, ev Event) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	next, err := Apply(s, ev)
	if err != nil {
		return s, err
	}
	m.sessions[sessionID] = next
	return next, nil
}

// Submit is the 5 -> 6 transition. The session only advances on adapter
// success; on failure the draft stays intact at the summary step so the user
// can retry without re-entering anything. One in-flight submission per
// session: the second concurrent attempt is turned away, which is what the
// disabled submit button does in the UI.
func (m *Manager) Submit(ctx context.Context, sessionID string) (*domain.LoanApplication, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if s.Step != StepSummaryConfirmation {
		m.mu.Unlock()
		return nil, ErrNotAtSummary
	}
	if m.inFlight[sessionID] {
		m.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	m.inFlight[sessionID] = true
	m.mu.Unlock()

	created, err := m.submitter.SubmitApplication(ctx, s.Draft)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, sessionID)

	if err != nil {
		m.logger.Warn("submission failed, draft preserved",
			zap.String("session_id", sessionID), zap.Error(err))
		m.notifier.Error("your application could not be submitted, please try again")
		return nil, err
	}

	// Re-read before storing: events applied while the adapter call was in
	// flight must not be overwritten by the pre-submission snapshot.
	cur, ok := m.sessions[sessionID]
	if !ok {
		cur = s
	}
	cur.Step = StepSuccess
	cur.HasPriorApplication = true
	m.sessions[sessionID] = cur
	m.logger.Info("application submitted",
		zap.String("session_id", sessionID),
		zap.String("application_id", created.ApplicationID))
	m.notifier.Success("your loan application was submitted for review")
	return created, nil
}
