package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
)

type fakeStore struct {
	mu      sync.Mutex
	fail    error
	delay   time.Duration
	calls   int
	created *models.Registration
}

func (s *fakeStore) CreateRegistration(ctx context.Context, draft Draft, courseID string) (*models.Registration, error) {
	s.mu.Lock()
	s.calls++
	fail, delay := s.fail, s.delay
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if fail != nil {
		return nil, fail
	}
	reg := &models.Registration{
		RegistrationID:   "R-test",
		CourseID:         courseID,
		FirstName:        draft.FirstName,
		LastName:         draft.LastName,
		Email:            draft.Email,
		RegistrationDate: "2025-02-01",
		Status:           models.RegistrationConfirmed,
	}
	s.mu.Lock()
	s.created = reg
	s.mu.Unlock()
	return reg, nil
}

type fakeRenderer struct{ fail error }

func (r *fakeRenderer) RenderConfirmation(reg *models.Registration, course *models.Course) ([]byte, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return []byte("<html>doc</html>"), nil
}

type fakeMailer struct {
	mu   sync.Mutex
	fail error
	sent int
	to   string
}

func (m *fakeMailer) SendConfirmation(to string, reg *models.Registration, course *models.Course, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent++
	m.to = to
	return nil
}

type notice struct {
	message string
	kind    NotifyKind
}

type fakeNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *fakeNotifier) Notify(message string, kind NotifyKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{message, kind})
}

func (n *fakeNotifier) count(kind NotifyKind) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, x := range n.notices {
		if x.kind == kind {
			c++
		}
	}
	return c
}

func testCourse() models.Course {
	return models.Course{
		CourseID:            "C001",
		CourseName:          "การบริหารจัดการโรงพยาบาล",
		MaxParticipants:     50,
		CurrentParticipants: 35,
	}
}

func newTestWorkflow(store *fakeStore, notifier *fakeNotifier, opts ...Option) *Workflow {
	deps := Deps{
		Store:    store,
		Renderer: &fakeRenderer{},
		Mailer:   &fakeMailer{},
		Notifier: notifier,
		Logger:   zerolog.Nop(),
	}
	return New(testCourse(), deps, opts...)
}

func str(s string) *string { return &s }

func fillPersonal(w *Workflow) {
	w.UpdateDraft(FieldPatch{
		FirstName: str("สมหญิง"),
		LastName:  str("ใจดี"),
		IDCard:    str("1234567890123"),
		BirthDate: str("1995-08-15"),
		StudentID: str("60123456789"),
	})
}

func fillContact(w *Workflow) {
	w.UpdateDraft(FieldPatch{
		Phone:        str("0819998888"),
		Email:        str("somying.test@example.com"),
		Organization: str("โรงพยาบาลตัวอย่าง"),
		Position:     str("พยาบาลวิชาชีพ"),
		Address:      str("99/9 หมู่ 9"),
	})
}

func attachDocument(t *testing.T, w *Workflow) {
	t.Helper()
	res, err := w.IngestFiles([]FileUpload{{Name: "idcard.pdf", ContentType: "application/pdf", Data: []byte("pdf")}})
	if err != nil || res.Accepted != 1 {
		t.Fatalf("attach: %+v %v", res, err)
	}
}

func TestAdvanceBlockedByIncompletePersonal(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	w.UpdateDraft(FieldPatch{FirstName: str("สมหญิง")}) // rest missing
	err := w.Advance()
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}

	s := w.State()
	if s.Step != StepPersonal {
		t.Errorf("step advanced to %d", s.Step)
	}
	if s.ValidationError != "กรุณากรอกข้อมูลส่วนตัวให้ครบถ้วน" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}
	if s.Draft.FirstName != "สมหญิง" {
		t.Error("draft mutated on failed advance")
	}
}

func TestAdvanceThroughSteps(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})

	fillPersonal(w)
	if err := w.Advance(); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if s := w.State(); s.Step != StepContact || s.ValidationError != "" {
		t.Fatalf("after advance 1: %+v", s)
	}

	// Contact step distinguishes missing fields from a malformed email.
	if err := w.Advance(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("empty contact advance: %v", err)
	}
	if s := w.State(); s.ValidationError != "กรุณากรอกข้อมูลติดต่อให้ครบถ้วน" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}

	fillContact(w)
	w.UpdateDraft(FieldPatch{Email: str("not-an-email")})
	if err := w.Advance(); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatal("bad email accepted")
	}
	if s := w.State(); s.ValidationError != "รูปแบบอีเมลไม่ถูกต้อง" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}

	w.UpdateDraft(FieldPatch{Email: str("somying.test@example.com")})
	if err := w.Advance(); err != nil {
		t.Fatalf("advance 2: %v", err)
	}
	if s := w.State(); s.Step != StepDocuments {
		t.Fatalf("step = %d, want documents", s.Step)
	}
}

func TestBackClearsErrorWithoutRevalidating(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})
	fillPersonal(w)
	w.Advance()

	w.Advance() // fails, sets contact error
	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	s := w.State()
	if s.Step != StepPersonal || s.ValidationError != "" {
		t.Fatalf("after back: step=%d err=%q", s.Step, s.ValidationError)
	}

	// Back on the first step stays put.
	w.Back()
	if s := w.State(); s.Step != StepPersonal {
		t.Errorf("back on first step moved to %d", s.Step)
	}
}

func TestSubmitHappyPath(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	deps := Deps{Store: store, Renderer: &fakeRenderer{}, Mailer: mailer, Notifier: notifier, Logger: zerolog.Nop()}
	w := New(testCourse(), deps, WithAutoCloseDelay(0))

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	reg, err := w.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reg.RegistrationID == "" || reg.Status != models.RegistrationConfirmed {
		t.Fatalf("bad registration %+v", reg)
	}

	s := w.State()
	if s.Phase != PhaseSucceeded || s.InFlight {
		t.Fatalf("after submit: %+v", s)
	}
	if notifier.count(NotifySuccess) != 1 {
		t.Errorf("success notifications = %d", notifier.count(NotifySuccess))
	}
	if mailer.sent != 1 || mailer.to != "somying.test@example.com" {
		t.Errorf("mailer: sent=%d to=%q", mailer.sent, mailer.to)
	}
}

func TestSubmitWithoutDocumentsRefused(t *testing.T) {
	store := &fakeStore{}
	w := newTestWorkflow(store, &fakeNotifier{})
	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()

	_, err := w.Submit(context.Background())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.calls != 0 {
		t.Error("store called despite failed validation")
	}
}

func TestSubmitRefusedBeforeEarlierStepsPass(t *testing.T) {
	store := &fakeStore{}
	w := newTestWorkflow(store, &fakeNotifier{})

	// One accepted document but the personal and contact steps were never
	// completed; submitting straight from step 1 must not reach the store.
	attachDocument(t, w)
	_, err := w.Submit(context.Background())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.calls != 0 {
		t.Error("store called with an incomplete draft")
	}
	s := w.State()
	if s.Step != StepPersonal || s.Phase != PhaseCollecting {
		t.Errorf("state after refused submit: %+v", s)
	}
	if s.ValidationError != "กรุณากรอกข้อมูลส่วนตัวให้ครบถ้วน" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}
}

func TestSubmitRevalidatesFieldsBlankedAfterAdvance(t *testing.T) {
	store := &fakeStore{}
	w := newTestWorkflow(store, &fakeNotifier{})

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	// Field updates stay allowed on step 3, so a draft can regress after
	// the contact step already passed its gate.
	w.UpdateDraft(FieldPatch{Email: str("broken@@")})
	_, err := w.Submit(context.Background())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.calls != 0 {
		t.Error("store called with an invalid email")
	}
	if s := w.State(); s.ValidationError != "รูปแบบอีเมลไม่ถูกต้อง" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}

	w.UpdateDraft(FieldPatch{Email: str("somying.test@example.com")})
	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit after correcting email: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("store calls = %d, want 1", store.calls)
	}
}

func TestSubmitFailureKeepsDraftForRetry(t *testing.T) {
	store := &fakeStore{fail: errors.New("store down")}
	notifier := &fakeNotifier{}
	w := newTestWorkflow(store, notifier, WithAutoCloseDelay(0))

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	_, err := w.Submit(context.Background())
	if !errors.Is(err, apperrors.ErrSubmissionFailed) {
		t.Fatalf("expected submission failure, got %v", err)
	}

	s := w.State()
	if s.Phase != PhaseCollecting || s.Step != StepDocuments || s.InFlight {
		t.Fatalf("after failure: %+v", s)
	}
	if s.Draft.FirstName != "สมหญิง" || len(s.Draft.Attachments) != 1 {
		t.Fatal("draft lost after failed submit")
	}
	if s.ValidationError != "เกิดข้อผิดพลาดในการลงทะเบียน กรุณาลองใหม่อีกครั้ง" {
		t.Errorf("unexpected message %q", s.ValidationError)
	}
	if notifier.count(NotifyError) != 1 {
		t.Errorf("error notifications = %d", notifier.count(NotifyError))
	}

	// Identical retry succeeds once the store recovers.
	store.mu.Lock()
	store.fail = nil
	store.mu.Unlock()
	reg, err := w.Submit(context.Background())
	if err != nil || reg == nil {
		t.Fatalf("retry: %v", err)
	}
	if store.calls != 2 {
		t.Errorf("store calls = %d, want 2", store.calls)
	}
}

func TestSubmitGuardAgainstDoubleSubmit(t *testing.T) {
	store := &fakeStore{delay: 50 * time.Millisecond}
	w := newTestWorkflow(store, &fakeNotifier{}, WithAutoCloseDelay(0))

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background())
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)

	// Second submit while the first is outstanding is refused.
	if _, err := w.Submit(context.Background()); !errors.Is(err, apperrors.ErrSubmitInProgress) {
		t.Fatalf("second submit: %v", err)
	}
	// Closing is ignored while in flight.
	if w.Close() {
		t.Error("close succeeded while submission in flight")
	}

	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("store calls = %d, want 1", store.calls)
	}
}

func TestDownstreamFailuresDoNotRevertSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	deps := Deps{
		Store:    store,
		Renderer: &fakeRenderer{fail: errors.New("render broken")},
		Mailer:   &fakeMailer{},
		Notifier: notifier,
		Logger:   zerolog.Nop(),
	}
	w := New(testCourse(), deps, WithAutoCloseDelay(0))

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	reg, err := w.Submit(context.Background())
	if err != nil || reg == nil {
		t.Fatalf("submit: %v", err)
	}
	if s := w.State(); s.Phase != PhaseSucceeded {
		t.Fatalf("phase = %s after renderer failure", s.Phase)
	}
	if notifier.count(NotifyError) == 0 {
		t.Error("renderer failure produced no notification")
	}
}

func TestAutoCloseAfterSuccess(t *testing.T) {
	store := &fakeStore{}
	w := newTestWorkflow(store, &fakeNotifier{}, WithAutoCloseDelay(30*time.Millisecond))

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if w.Closed() {
		t.Fatal("closed immediately")
	}
	time.Sleep(80 * time.Millisecond)
	if !w.Closed() {
		t.Fatal("auto-close never fired")
	}
}

func TestManualCloseCancelsAutoClose(t *testing.T) {
	store := &fakeStore{}
	closes := 0
	var mu sync.Mutex
	w := newTestWorkflow(store, &fakeNotifier{},
		WithAutoCloseDelay(40*time.Millisecond),
		WithOnClose(func() {
			mu.Lock()
			closes++
			mu.Unlock()
		}),
	)

	fillPersonal(w)
	w.Advance()
	fillContact(w)
	w.Advance()
	attachDocument(t, w)

	if _, err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Close manually well before the auto-close delay elapses.
	time.Sleep(5 * time.Millisecond)
	if !w.Close() {
		t.Fatal("manual close refused")
	}
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if closes != 1 {
		t.Fatalf("close hook fired %d times, want exactly 1", closes)
	}
}

func TestCloseDiscardsDraftAndBlocksFurtherUse(t *testing.T) {
	w := newTestWorkflow(&fakeStore{}, &fakeNotifier{})
	fillPersonal(w)

	if !w.Close() {
		t.Fatal("close refused")
	}
	if !w.Close() {
		t.Fatal("close not idempotent")
	}

	if err := w.UpdateDraft(FieldPatch{FirstName: str("x")}); !errors.Is(err, apperrors.ErrSessionClosed) {
		t.Errorf("update after close: %v", err)
	}
	if err := w.Advance(); !errors.Is(err, apperrors.ErrSessionClosed) {
		t.Errorf("advance after close: %v", err)
	}
	if _, err := w.Submit(context.Background()); !errors.Is(err, apperrors.ErrSessionClosed) {
		t.Errorf("submit after close: %v", err)
	}
}
