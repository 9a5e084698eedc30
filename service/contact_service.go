package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/mailer"
	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService interface {
	Validate(form model.ContactFormState) error
	Deliver(ctx context.Context, form model.ContactFormState) (model.Ack, error)
	SubmitContact(ctx context.Context, form model.ContactFormState) (model.Ack, error)
}

type contactService struct {
	mailer             mailer.Mailer
	submissionsLimiter *rate.Limiter
}

// NewContactService limit the number of messages sent per hour across all visitors
// a limit lower or equal to zero disable the limiter
func NewContactService(config config.Config, mailer mailer.Mailer) ContactService {
	limit := rate.Inf
	burst := 0

	if perHour := config.Contact.MaxSubmissionsPerHour; perHour > 0 {
		limit = rate.Every(time.Hour / time.Duration(perHour))
		burst = perHour
	}

	return contactService{
		mailer:             mailer,
		submissionsLimiter: rate.NewLimiter(limit, burst),
	}
}

// Validate is synchronous and never reaches the network
func (s contactService) Validate(form model.ContactFormState) error {
	if form.Name == "" || form.Email == "" || form.Message == "" {
		return &model.ValidationError{Message: model.MsgFillAllFields}
	}

	if !emailPattern.MatchString(form.Email) {
		return &model.ValidationError{Message: model.MsgInvalidEmail}
	}

	return nil
}

// Deliver make exactly one delivery attempt, the form is expected to be valid
func (s contactService) Deliver(ctx context.Context, form model.ContactFormState) (model.Ack, error) {
	submissionID := uuid.NewString()
	logger := log.WithField("submissionID", submissionID)

	if !s.submissionsLimiter.Allow() {
		logger.Warning("contact submissions limit reached, message not sent")
		return model.Ack{}, &model.DeliveryError{Code: model.CodeRateLimitReached}
	}

	logger.WithField("replyTo", form.Email).Info("sending contact message")

	if err := s.mailer.Send(ctx, form.ToEmailMessage()); err != nil {
		logger.WithError(err).Error("contact message delivery failed")

		var deliveryErr *model.DeliveryError
		if !errors.As(err, &deliveryErr) {
			err = &model.DeliveryError{Code: model.CodeDeliveryError, Err: err}
		}

		return model.Ack{}, err
	}

	logger.Info("contact message sent")

	return model.Ack{
		ID:      submissionID,
		Message: model.MsgEmailSent,
	}, nil
}

// SubmitContact validate then deliver the form
func (s contactService) SubmitContact(ctx context.Context, form model.ContactFormState) (model.Ack, error) {
	if err := s.Validate(form); err != nil {
		return model.Ack{}, err
	}

	return s.Deliver(ctx, form)
}
