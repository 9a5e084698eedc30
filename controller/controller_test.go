package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/FlorianRuen/portfolio-backend/service"
	"github.com/FlorianRuen/portfolio-backend/shell"
	"github.com/FlorianRuen/portfolio-backend/web"
	"github.com/gin-gonic/gin"
)

type fakeProjectService struct {
	projects []model.DisplayProject
	err      error
	calls    int
}

func (s *fakeProjectService) LoadProjects(_ context.Context) ([]model.DisplayProject, error) {
	s.calls++
	return s.projects, s.err
}

func (s *fakeProjectService) HandleRequestErrors(err error) error {
	return err
}

type fakeMailer struct {
	err   error
	calls int
}

func (m *fakeMailer) Send(_ context.Context, _ model.EmailMessage) error {
	m.calls++
	return m.err
}

// newTestRouter wire the controllers the same way main does
func newTestRouter(projects *fakeProjectService, mailer *fakeMailer, conf *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	contactService := service.NewContactService(*conf, mailer)
	apiController := NewAPIController(*conf, projects, contactService)
	pageController := NewPageController(*conf, shell.NewProjectFeed(projects), contactService)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	Register(router, apiController, pageController)

	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

