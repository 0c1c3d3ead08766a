// Package workflow implements the three-step registration flow: collect
// personal data, contact data and documents, then submit the composed
// registration to the store. One Workflow instance serves one applicant and
// shares no state with any other instance.
package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sorawit/coursereg/internal/app/models"
	"github.com/sorawit/coursereg/internal/pkg/apperrors"
	"github.com/sorawit/coursereg/internal/pkg/validation"
)

// Step is the current form step, 1-based.
type Step int

const (
	StepPersonal Step = iota + 1
	StepContact
	StepDocuments
)

// Phase is the coarse lifecycle state of the workflow.
type Phase string

const (
	PhaseCollecting Phase = "collecting"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseClosed     Phase = "closed"
)

// NotifyKind classifies a user notification.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// User-facing messages, kept in Thai as the portal displays them.
const (
	msgPersonalIncomplete = "กรุณากรอกข้อมูลส่วนตัวให้ครบถ้วน"
	msgContactIncomplete  = "กรุณากรอกข้อมูลติดต่อให้ครบถ้วน"
	msgEmailInvalid       = "รูปแบบอีเมลไม่ถูกต้อง"
	msgDocumentsMissing   = "กรุณาแนบเอกสารที่จำเป็น"
	msgAllFilesRejected   = "เอกสารแนบทั้งหมดถูกปฏิเสธ กรุณาเลือกไฟล์ใหม่"
	msgSubmitFailed       = "เกิดข้อผิดพลาดในการลงทะเบียน กรุณาลองใหม่อีกครั้ง"
)

// RegistrationStore commits a finished draft. The store owns ID generation,
// the registration date, the confirmed status and the participant-counter
// increment; the workflow treats the course counter as stale afterwards.
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, draft Draft, courseID string) (*models.Registration, error)
}

// DocumentRenderer produces the confirmation document for a committed
// registration. Best effort: a failure never reverts the registration.
type DocumentRenderer interface {
	RenderConfirmation(reg *models.Registration, course *models.Course) ([]byte, error)
}

// Mailer delivers the confirmation document to the applicant. Best effort.
type Mailer interface {
	SendConfirmation(to string, reg *models.Registration, course *models.Course, doc []byte) error
}

// Notifier is the fire-and-forget notification sink.
type Notifier interface {
	Notify(message string, kind NotifyKind)
}

// Deps are the collaborators a workflow needs.
type Deps struct {
	Store    RegistrationStore
	Renderer DocumentRenderer
	Mailer   Mailer
	Notifier Notifier
	Logger   zerolog.Logger
}

// Workflow is one applicant's registration session for one course.
type Workflow struct {
	mu sync.Mutex

	course models.Course
	deps   Deps

	phase           Phase
	step            Step
	draft           Draft
	validationError string
	lastRejected    int
	inFlight        bool
	result          *models.Registration

	autoCloseDelay time.Duration
	closeTimer     *time.Timer
	onClose        func()
}

// Option tunes a workflow instance.
type Option func(*Workflow)

// WithAutoCloseDelay overrides the delay before a succeeded workflow closes
// itself. Zero disables auto-close.
func WithAutoCloseDelay(d time.Duration) Option {
	return func(w *Workflow) { w.autoCloseDelay = d }
}

// WithOnClose registers a hook invoked once when the workflow closes.
func WithOnClose(fn func()) Option {
	return func(w *Workflow) { w.onClose = fn }
}

// New opens a workflow for the given course with an empty draft.
func New(course models.Course, deps Deps, opts ...Option) *Workflow {
	w := &Workflow{
		course:         course,
		deps:           deps,
		phase:          PhaseCollecting,
		step:           StepPersonal,
		autoCloseDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Snapshot is a copy of the externally visible workflow state.
type Snapshot struct {
	Phase           Phase
	Step            Step
	Draft           Draft
	ValidationError string
	InFlight        bool
	Result          *models.Registration
	Course          models.Course
}

// State returns a snapshot of the current state.
func (w *Workflow) State() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Phase:           w.phase,
		Step:            w.step,
		Draft:           w.draft.clone(),
		ValidationError: w.validationError,
		InFlight:        w.inFlight,
		Course:          w.course,
	}
	if w.result != nil {
		r := *w.result
		snap.Result = &r
	}
	return snap
}

// UpdateDraft applies a partial field update. Allowed only while collecting.
func (w *Workflow) UpdateDraft(patch FieldPatch) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseCollecting {
		return apperrors.ErrSessionClosed
	}
	w.draft.apply(patch)
	return nil
}

// Advance validates the current step and moves to the next one. On a
// validation failure the step does not change, the draft is untouched and
// the step-scoped message is recorded.
func (w *Workflow) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseCollecting {
		return apperrors.ErrSessionClosed
	}
	if msg := w.validateStep(w.step); msg != "" {
		w.validationError = msg
		return apperrors.NewValidationError(msg)
	}
	w.validationError = ""
	if w.step < StepDocuments {
		w.step++
	}
	return nil
}

// Back moves to the previous step without revalidating and clears any
// pending error. A no-op on the first step.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseCollecting {
		return apperrors.ErrSessionClosed
	}
	w.validationError = ""
	if w.step > StepPersonal {
		w.step--
	}
	return nil
}

// validateStep returns the user-facing message for the first failing rule of
// the step, or "" when the step passes. Caller holds the lock.
func (w *Workflow) validateStep(step Step) string {
	switch step {
	case StepPersonal:
		if !validation.AllFilled(w.draft.FirstName, w.draft.LastName, w.draft.IDCard, w.draft.BirthDate, w.draft.StudentID) {
			return msgPersonalIncomplete
		}
	case StepContact:
		if !validation.AllFilled(w.draft.Phone, w.draft.Email, w.draft.Organization, w.draft.Position, w.draft.Address) {
			return msgContactIncomplete
		}
		if !validation.IsBasicEmail(w.draft.Email) {
			return msgEmailInvalid
		}
	case StepDocuments:
		if len(w.draft.Attachments) == 0 {
			if w.lastRejected > 0 {
				return msgAllFilesRejected
			}
			return msgDocumentsMissing
		}
	}
	return ""
}

// Submit re-validates every step in order and commits the draft through the
// store. Submission is reachable only through the documents step: a draft
// that would not pass steps 1 and 2 is refused with that step's message,
// whatever step the caller is on. A second Submit while one is outstanding
// is refused. On store failure the workflow keeps the draft intact so the
// applicant can retry.
func (w *Workflow) Submit(ctx context.Context) (*models.Registration, error) {
	w.mu.Lock()
	if w.phase == PhaseClosed {
		w.mu.Unlock()
		return nil, apperrors.ErrSessionClosed
	}
	if w.phase == PhaseSucceeded {
		r := *w.result
		w.mu.Unlock()
		return &r, nil
	}
	if w.inFlight {
		w.mu.Unlock()
		return nil, apperrors.ErrSubmitInProgress
	}
	for step := StepPersonal; step <= StepDocuments; step++ {
		if msg := w.validateStep(step); msg != "" {
			w.validationError = msg
			w.mu.Unlock()
			return nil, apperrors.NewValidationError(msg)
		}
	}
	w.inFlight = true
	w.phase = PhaseSubmitting
	w.step = StepDocuments
	draft := w.draft.clone()
	courseID := w.course.CourseID
	w.mu.Unlock()

	reg, err := w.deps.Store.CreateRegistration(ctx, draft, courseID)

	w.mu.Lock()
	w.inFlight = false
	if err != nil {
		w.phase = PhaseCollecting
		w.validationError = msgSubmitFailed
		w.mu.Unlock()

		w.deps.Logger.Error().Err(err).Str("courseId", courseID).Msg("Registration submission failed")
		w.deps.Notifier.Notify(msgSubmitFailed, NotifyError)
		return nil, apperrors.NewSubmissionError(err, msgSubmitFailed)
	}

	w.result = reg
	w.phase = PhaseSucceeded
	w.validationError = ""
	course := w.course
	if w.autoCloseDelay > 0 {
		w.closeTimer = time.AfterFunc(w.autoCloseDelay, func() { w.Close() })
	}
	w.mu.Unlock()

	w.deps.Logger.Info().
		Str("registrationId", reg.RegistrationID).
		Str("courseId", courseID).
		Msg("Registration committed")
	w.deps.Notifier.Notify(fmt.Sprintf("ลงทะเบียนหลักสูตร \"%s\" สำเร็จ!", course.CourseName), NotifySuccess)

	w.dispatchConfirmation(reg, &course)
	return reg, nil
}

// dispatchConfirmation renders and emails the confirmation document. Both
// calls are post-commit best effort: failures surface as notifications only.
func (w *Workflow) dispatchConfirmation(reg *models.Registration, course *models.Course) {
	doc, err := w.deps.Renderer.RenderConfirmation(reg, course)
	if err != nil {
		w.deps.Logger.Warn().Err(err).Str("registrationId", reg.RegistrationID).Msg("Confirmation document rendering failed")
		w.deps.Notifier.Notify("ไม่สามารถสร้างเอกสารยืนยันการลงทะเบียนได้", NotifyError)
		return
	}
	if err := w.deps.Mailer.SendConfirmation(reg.Email, reg, course, doc); err != nil {
		w.deps.Logger.Warn().Err(err).Str("registrationId", reg.RegistrationID).Msg("Confirmation email failed")
		w.deps.Notifier.Notify("ไม่สามารถส่งอีเมลยืนยันการลงทะเบียนได้", NotifyError)
	}
}

// Close ends the workflow and discards the draft. It is idempotent, stops a
// pending auto-close so the timer can never fire on a closed instance, and
// is ignored while a submission is in flight.
func (w *Workflow) Close() bool {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return false
	}
	if w.phase == PhaseClosed {
		w.mu.Unlock()
		return true
	}
	w.phase = PhaseClosed
	w.draft = Draft{}
	timer := w.closeTimer
	w.closeTimer = nil
	onClose := w.onClose
	w.onClose = nil
	w.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if onClose != nil {
		onClose()
	}
	return true
}

// Closed reports whether the workflow has ended.
func (w *Workflow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase == PhaseClosed
}
