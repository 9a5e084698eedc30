package model

import (
	"errors"
	"fmt"
)

const (
	CodeFetchError         = "FETCH_ERROR"
	CodeRateLimitReached   = "RATE_LIMIT_REACHED"
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeDeliveryError      = "DELIVERY_ERROR"
	CodeEmailNotConfigured = "EMAIL_NOT_CONFIGURED"
)

const (
	MsgFillAllFields   = "Please fill in all fields."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgMessageSent     = "Message sent successfully!"
	MsgSendFailed      = "Failed to send message. Please try again."
	MsgEmailSent       = "Email sent successfully!"
	MsgNoProjects      = "No projects found. They might be private or not available."
	MsgProjectsFailed  = "Failed to load projects. Please try again later."
	msgInternalFailure = "internal server error. contact our support with the reason code for assistance"
)

// FetchError is returned when the repository listing could not be fetched
// StatusCode is 0 for transport failures
type FetchError struct {
	Code       string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return fmt.Sprintf("github API error: %v", e.Err)
	}

	return fmt.Sprintf("github API error: %d - %s", e.StatusCode, e.Body)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FormatError is returned when github answered with something that is not a list of repositories
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid response format from github API: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ValidationError never reaches the network, Message is shown next to the form
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DeliveryError is returned when the email provider rejected or failed the request
type DeliveryError struct {
	Code       string
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %d - %s", e.Code, e.StatusCode, e.Body)
	default:
		return e.Code
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	var (
		fetchErr      *FetchError
		formatErr     *FormatError
		validationErr *ValidationError
		deliveryErr   *DeliveryError
	)

	switch {
	case errors.As(errReason, &validationErr):
		return APIError{
			Code:    CodeValidationError,
			Message: validationErr.Message,
		}

	case errors.As(errReason, &fetchErr):
		if fetchErr.Code == CodeRateLimitReached {
			return APIError{
				Code:    CodeRateLimitReached,
				Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
			}
		}

		return APIError{
			Code:    CodeFetchError,
			Message: MsgProjectsFailed,
		}

	case errors.As(errReason, &formatErr):
		return APIError{
			Code:    CodeInvalidFormat,
			Message: MsgProjectsFailed,
		}

	case errors.As(errReason, &deliveryErr):
		return APIError{
			Code:    deliveryErr.Code,
			Message: MsgSendFailed,
		}

	default:
		return APIError{
			Code:    "GENERIC_ERROR",
			Message: msgInternalFailure,
		}
	}
}
