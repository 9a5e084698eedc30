package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/FlorianRuen/portfolio-backend/model"
)

// ErrBusy is returned when a submit or an edit happens while a submission is in flight
var ErrBusy = errors.New("a submission is already in progress")

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

type ContactSubmitter interface {
	Validate(form model.ContactFormState) error
	Deliver(ctx context.Context, form model.ContactFormState) (model.Ack, error)
}

// FormView is a read-only snapshot of the contact form
type FormView struct {
	Fields model.ContactFormState
	Status model.SubmissionStatus
	Phase  Phase
	Busy   bool
}

// ContactForm is the state machine of one contact form instance
// busy is derived from the phase so it is true exactly while submitting
type ContactForm struct {
	submitter ContactSubmitter

	mu     sync.Mutex
	fields model.ContactFormState
	status model.SubmissionStatus
	phase  Phase
}

func NewContactForm(submitter ContactSubmitter) *ContactForm {
	return &ContactForm{submitter: submitter}
}

// SetFields replace the user input, inputs are disabled while busy
func (f *ContactForm) SetFields(fields model.ContactFormState) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == PhaseSubmitting {
		return ErrBusy
	}

	f.fields = fields
	return nil
}

// Submit run validation then a single delivery attempt
// the previous status is cleared first, fields are cleared only on success
func (f *ContactForm) Submit(ctx context.Context) (model.Ack, error) {
	f.mu.Lock()

	if f.phase == PhaseSubmitting {
		f.mu.Unlock()
		return model.Ack{}, ErrBusy
	}

	f.status = model.SubmissionStatus{}
	f.phase = PhaseValidating

	if err := f.submitter.Validate(f.fields); err != nil {
		var validationErr *model.ValidationError
		message := model.MsgSendFailed
		if errors.As(err, &validationErr) {
			message = validationErr.Message
		}

		f.fail(message)
		f.mu.Unlock()
		return model.Ack{}, err
	}

	f.phase = PhaseSubmitting
	fields := f.fields
	f.mu.Unlock()

	ack, err := f.submitter.Deliver(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.fail(model.MsgSendFailed)
		return model.Ack{}, err
	}

	f.fields = model.ContactFormState{}
	f.status = model.SubmissionStatus{Type: model.StatusSuccess, Message: model.MsgMessageSent}
	f.phase = PhaseSucceeded

	return ack, nil
}

// fail must be called with the lock held
func (f *ContactForm) fail(message string) {
	f.status = model.SubmissionStatus{Type: model.StatusError, Message: message}
	f.phase = PhaseFailed
}

func (f *ContactForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.phase == PhaseSubmitting
}

func (f *ContactForm) View() FormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FormView{
		Fields: f.fields,
		Status: f.status,
		Phase:  f.phase,
		Busy:   f.phase == PhaseSubmitting,
	}
}
