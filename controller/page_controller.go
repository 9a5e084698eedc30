package controller

import (
	"net/http"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/FlorianRuen/portfolio-backend/service"
	"github.com/FlorianRuen/portfolio-backend/shell"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const pageTemplate = "index.html"

type PageController interface {
	Index(ctx *gin.Context)
	Contact(ctx *gin.Context)
}

type pageController struct {
	feed           *shell.ProjectFeed
	contactService service.ContactService
	config         config.Config
}

type pageData struct {
	Owner string
	Feed  shell.FeedView
	Form  shell.FormView
}

func NewPageController(config config.Config, feed *shell.ProjectFeed, contactService service.ContactService) PageController {
	return pageController{
		feed:           feed,
		contactService: contactService,
		config:         config,
	}
}

// Index fetch the projects on every page load, failures are rendered on the page
func (s pageController) Index(c *gin.Context) {
	feed, _ := s.feed.Refresh(c.Request.Context())

	c.HTML(http.StatusOK, pageTemplate, pageData{
		Owner: s.config.Github.Account,
		Feed:  feed,
		Form:  shell.NewContactForm(s.contactService).View(),
	})
}

// Contact handle the form post, the page is rendered with the last project list known
// before the first completed fetch the projects section shows the loading text
func (s pageController) Contact(c *gin.Context) {
	var fields model.ContactFormState
	if err := c.ShouldBind(&fields); err != nil {
		log.WithError(err).Debug("unable to bind contact form")
	}

	// a fresh form is never busy
	form := shell.NewContactForm(s.contactService)
	_ = form.SetFields(fields)

	status := http.StatusOK
	if _, err := form.Submit(c.Request.Context()); err != nil {
		status = statusForError(err)
	}

	c.HTML(status, pageTemplate, pageData{
		Owner: s.config.Github.Account,
		Feed:  s.feed.View(),
		Form:  form.View(),
	})
}
