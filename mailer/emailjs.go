package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/model"
	log "github.com/sirupsen/logrus"
)

const sendPath = "/api/v1.0/email/send"

// Mailer deliver a single message, no retry
type Mailer interface {
	Send(ctx context.Context, message model.EmailMessage) error
}

type emailJS struct {
	httpClient *http.Client
	config     config.EmailConfig
}

type sendRequest struct {
	ServiceID      string             `json:"service_id"`
	TemplateID     string             `json:"template_id"`
	UserID         string             `json:"user_id"`
	AccessToken    string             `json:"accessToken,omitempty"`
	TemplateParams model.EmailMessage `json:"template_params"`
}

// NewEmailJS returns a Mailer sending through the EmailJS REST API
// a nil http client means http.DefaultClient
func NewEmailJS(cfg config.EmailConfig, httpClient *http.Client) Mailer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return emailJS{
		httpClient: httpClient,
		config:     cfg,
	}
}

func (m emailJS) Send(ctx context.Context, message model.EmailMessage) error {
	if !m.config.Configured() {
		log.Warning("email service, template or public key identifier missing, message not sent")
		return &model.DeliveryError{Code: model.CodeEmailNotConfigured}
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      m.config.ServiceID,
		TemplateID:     m.config.TemplateID,
		UserID:         m.config.PublicKey,
		AccessToken:    m.config.PrivateKey,
		TemplateParams: message,
	})

	if err != nil {
		return &model.DeliveryError{Code: model.CodeDeliveryError, Err: err}
	}

	endpoint := strings.TrimSuffix(m.config.Endpoint, "/") + sendPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return &model.DeliveryError{Code: model.CodeDeliveryError, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := m.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("unable to reach the email service")
		return &model.DeliveryError{Code: model.CodeDeliveryError, Err: err}
	}

	defer res.Body.Close()

	// the provider answers 200 "OK", anything else is a failed delivery
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))

	if res.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"status": res.StatusCode,
			"body":   string(body),
		}).Error("email service rejected the message")

		return &model.DeliveryError{
			Code:       model.CodeDeliveryError,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	log.WithField("status", res.StatusCode).Debug("email service accepted the message")
	return nil
}
