package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/repositories"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
	"github.com/sorawit/coursereg/internal/pkg/metrics"
	"github.com/sorawit/coursereg/internal/workflow"
)

// Notice is a buffered user notification, drained together with the session
// state so the client can render toasts.
type Notice struct {
	Message string
	Kind    workflow.NotifyKind
}

// queueNotifier collects workflow notifications until the client polls.
type queueNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *queueNotifier) Notify(message string, kind workflow.NotifyKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, Notice{Message: message, Kind: kind})
}

func (n *queueNotifier) Drain() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.notices
	n.notices = nil
	return out
}

// Session pairs a workflow instance with its notification queue.
type Session struct {
	Token    string
	Workflow *workflow.Workflow
	notifier *queueNotifier
}

// DrainNotices returns and clears the buffered notifications.
func (s *Session) DrainNotices() []Notice {
	return s.notifier.Drain()
}

// SessionService manages registration workflow sessions, one per applicant.
type SessionService interface {
	OpenSession(ctx context.Context, courseID string) (*Session, error)
	GetSession(token string) (*Session, error)
	CloseSession(token string) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	courseRepo     *repositories.CourseRepository
	store          workflow.RegistrationStore
	renderer       workflow.DocumentRenderer
	mailer         workflow.Mailer
	now            func() time.Time
	autoCloseDelay time.Duration
	logger         zerolog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	courseRepo *repositories.CourseRepository,
	store workflow.RegistrationStore,
	renderer workflow.DocumentRenderer,
	mailer workflow.Mailer,
	now func() time.Time,
	autoCloseDelay time.Duration,
	logger zerolog.Logger,
) SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionServiceImpl{
		sessions:       make(map[string]*Session),
		courseRepo:     courseRepo,
		store:          store,
		renderer:       renderer,
		mailer:         mailer,
		now:            now,
		autoCloseDelay: autoCloseDelay,
		logger:         logger,
	}
}

// OpenSession starts a registration workflow for the course. A session opens
// only while the course's derived state accepts registrations; capacity is
// not checked here, the store clamps the counter on commit.
func (s *sessionServiceImpl) OpenSession(ctx context.Context, courseID string) (*Session, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.DerivedStatus(s.now()).CanRegister() {
		return nil, apperrors.ErrRegistrationClosed
	}

	token := uuid.New().String()
	notifier := &queueNotifier{}

	deps := workflow.Deps{
		Store:    s.store,
		Renderer: s.renderer,
		Mailer:   s.mailer,
		Notifier: notifier,
		Logger:   s.logger.With().Str("sessionToken", token).Logger(),
	}
	wf := workflow.New(*course, deps,
		workflow.WithAutoCloseDelay(s.autoCloseDelay),
		workflow.WithOnClose(func() { s.remove(token) }),
	)

	session := &Session{Token: token, Workflow: wf, notifier: notifier}
	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	metrics.SessionsOpenedTotal.Inc()
	metrics.SessionsActive.Inc()
	s.logger.Info().Str("sessionToken", token).Str("courseId", courseID).Msg("Registration session opened")
	return session, nil
}

// GetSession returns an open session by its token
func (s *sessionServiceImpl) GetSession(token string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

// CloseSession ends a session. Refused while a submission is in flight.
func (s *sessionServiceImpl) CloseSession(token string) error {
	session, err := s.GetSession(token)
	if err != nil {
		return err
	}
	if !session.Workflow.Close() {
		return apperrors.ErrSubmitInProgress
	}
	return nil
}

// remove drops a closed session from the registry. Invoked by the workflow's
// close hook, covering both manual close and auto-close.
func (s *sessionServiceImpl) remove(token string) {
	s.mu.Lock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if ok {
		metrics.SessionsActive.Dec()
		s.logger.Info().Str("sessionToken", token).Msg("Registration session closed")
	}
}
