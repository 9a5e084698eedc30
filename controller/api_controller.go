package controller

import (
	"errors"
	"net/http"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/FlorianRuen/portfolio-backend/service"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIController interface {
	GetProjects(ctx *gin.Context)
	SubmitContact(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type apiController struct {
	projectService service.ProjectService
	contactService service.ContactService
	config         config.Config
}

func NewAPIController(config config.Config, projectService service.ProjectService, contactService service.ContactService) APIController {
	return apiController{
		projectService: projectService,
		contactService: contactService,
		config:         config,
	}
}

func (s apiController) GetProjects(c *gin.Context) {
	projects, err := s.projectService.LoadProjects(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), model.NewAPIError(err))
		return
	}

	response := model.ProjectFeedResponse{
		Projects: projects,
		Empty:    len(projects) == 0,
	}

	if response.Empty {
		response.Message = model.MsgNoProjects
	}

	c.JSON(http.StatusOK, response)
}

func (s apiController) SubmitContact(c *gin.Context) {
	var form model.ContactFormState
	if err := c.ShouldBindJSON(&form); err != nil {
		log.WithError(err).Debug("invalid contact request body")
		c.JSON(http.StatusBadRequest, model.APIError{
			Code:    "INVALID_REQUEST",
			Message: "request body must be a json object with name, email and message",
		})
		return
	}

	ack, err := s.contactService.SubmitContact(c.Request.Context(), form)
	if err != nil {
		c.JSON(statusForError(err), model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, ack)
}

func (s apiController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError map the error taxonomy to an http status
func statusForError(err error) int {
	var (
		validationErr *model.ValidationError
		deliveryErr   *model.DeliveryError
		fetchErr      *model.FetchError
		formatErr     *model.FormatError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &deliveryErr):
		if deliveryErr.Code == model.CodeRateLimitReached {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	case errors.As(err, &fetchErr), errors.As(err, &formatErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
