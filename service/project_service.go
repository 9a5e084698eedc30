package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/FlorianRuen/portfolio-backend/config"
	"github.com/FlorianRuen/portfolio-backend/model"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
)

var errNotAList = errors.New("response body is not a list")

type ProjectService interface {
	LoadProjects(ctx context.Context) ([]model.DisplayProject, error)
	HandleRequestErrors(err error) error
}

type projectService struct {
	githubClient *github.Client
	config       config.Config
}

// NewProjectService use the github client passed as parameter so tests can plug a mocked transport
func NewProjectService(config config.Config, githubClient *github.Client) ProjectService {
	return projectService{
		githubClient: githubClient,
		config:       config,
	}
}

// NewGithubClient build the github client used to list repositories
// the token is optional, without it github applies the unauthenticated rate limit
func NewGithubClient(cfg config.GithubConfig) (*github.Client, error) {
	httpClient := &http.Client{
		Transport: headerTransport{token: cfg.Token, base: http.DefaultTransport},
	}

	githubClient := github.NewClient(httpClient)

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, err
		}

		githubClient.BaseURL = baseURL
	}

	return githubClient, nil
}

const acceptGithubV3 = "application/vnd.github.v3+json"

// headerTransport pins the v3 media type and sets the "token" authorization scheme when a token is configured
type headerTransport struct {
	token string
	base  http.RoundTripper
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Accept", acceptGithubV3)

	if t.token != "" {
		out.Header.Set("Authorization", "token "+t.token)
	}

	return t.base.RoundTrip(out)
}

// LoadProjects execute a single request to list the repositories of the configured account
// forks and private repositories are removed before mapping, most recently updated first
func (s projectService) LoadProjects(ctx context.Context) ([]model.DisplayProject, error) {
	log.WithField("account", s.config.Github.Account).Info("fetch repositories from github")

	// no options: only the first page github returns by default
	repos, _, err := s.githubClient.Repositories.ListByUser(ctx, s.config.Github.Account, nil)
	if err != nil {
		return nil, s.HandleRequestErrors(err)
	}

	// "[]" decodes to an empty slice, a null or empty body leaves it nil
	if repos == nil {
		log.Error("invalid response format from github API, expected a list of repositories")
		return nil, &model.FormatError{Err: errNotAList}
	}

	listable := make([]*github.Repository, 0, len(repos))

	for _, r := range repos {
		if !model.IsListable(r) {
			log.WithField("repositoryID", r.GetID()).Debug("fork or private repository skipped")
			continue
		}

		listable = append(listable, r)
	}

	// identical update timestamps are ordered by identifier so the output does not depend on github ordering
	sort.SliceStable(listable, func(i, j int) bool {
		left, right := listable[i].GetUpdatedAt().Time, listable[j].GetUpdatedAt().Time

		if left.Equal(right) {
			return listable[i].GetID() > listable[j].GetID()
		}

		return left.After(right)
	})

	projects := make([]model.DisplayProject, 0, len(listable))
	for _, r := range listable {
		projects = append(projects, model.NewDisplayProject(r))
	}

	log.WithFields(log.Fields{
		"received": len(repos),
		"listed":   len(projects),
	}).Debug("repositories fetched from github")

	return projects, nil
}

// HandleRequestErrors convert the errors returned by the github client into FetchError or FormatError
func (s projectService) HandleRequestErrors(err error) error {
	var (
		rateLimitErr *github.RateLimitError
		abuseErr     *github.AbuseRateLimitError
		responseErr  *github.ErrorResponse
		typeErr      *json.UnmarshalTypeError
		syntaxErr    *json.SyntaxError
	)

	switch {
	case errors.As(err, &rateLimitErr):
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return &model.FetchError{
			Code:       model.CodeRateLimitReached,
			StatusCode: statusCode(rateLimitErr.Response),
			Body:       rateLimitErr.Message,
			Err:        err,
		}

	case errors.As(err, &abuseErr):
		log.Warning("the Github secondary rate limit has been reached")
		return &model.FetchError{
			Code:       model.CodeRateLimitReached,
			StatusCode: statusCode(abuseErr.Response),
			Body:       abuseErr.Message,
			Err:        err,
		}

	case errors.As(err, &responseErr):
		fetchErr := &model.FetchError{
			Code:       model.CodeFetchError,
			StatusCode: statusCode(responseErr.Response),
			Body:       responseBody(responseErr),
			Err:        err,
		}

		log.WithFields(log.Fields{
			"status": fetchErr.StatusCode,
			"body":   fetchErr.Body,
		}).Error("github API error response")

		return fetchErr

	case errors.As(err, &typeErr), errors.As(err, &syntaxErr):
		log.WithError(err).Error("invalid response format from github API, expected a list of repositories")
		return &model.FormatError{Err: err}

	default:
		log.WithError(err).Error("error catched when fetching data from github")
		return &model.FetchError{Code: model.CodeFetchError, Err: err}
	}
}

func statusCode(r *http.Response) int {
	if r == nil {
		return 0
	}

	return r.StatusCode
}

// responseBody returns the raw body kept by the github client, or the decoded message
func responseBody(errResponse *github.ErrorResponse) string {
	if errResponse.Response != nil && errResponse.Response.Body != nil {
		body, err := io.ReadAll(errResponse.Response.Body)
		if err == nil && len(body) > 0 {
			return strings.TrimSpace(string(body))
		}
	}

	return errResponse.Message
}
