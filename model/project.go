package model

import (
	"time"

	"github.com/google/go-github/v66/github"
)

const (
	DefaultDescription = "No description available"
	DefaultLanguage    = "Not specified"
)

// DisplayProject is the shape rendered on the portfolio page
// it is rebuilt on every fetch and never shared between fetches
type DisplayProject struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	Language    string    `json:"language"`
	URL         string    `json:"url"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewDisplayProject maps a repository received from github to its display shape
// description and language fallback to placeholders, topics are never nil
func NewDisplayProject(r *github.Repository) DisplayProject {
	project := DisplayProject{
		ID:          r.GetID(),
		Title:       r.GetName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Language:    r.GetLanguage(),
		URL:         r.GetHTMLURL(),
		Topics:      make([]string, 0, len(r.Topics)),
		UpdatedAt:   r.GetUpdatedAt().Time,
	}

	if project.Description == "" {
		project.Description = DefaultDescription
	}

	if project.Language == "" {
		project.Language = DefaultLanguage
	}

	project.Topics = append(project.Topics, r.Topics...)

	return project
}

// IsListable returns false for forks and private repositories
// they must never reach the display list
func IsListable(r *github.Repository) bool {
	return r != nil && !r.GetFork() && !r.GetPrivate()
}

type ProjectFeedResponse struct {
	Projects []DisplayProject `json:"projects"`
	Empty    bool             `json:"empty"`
	Message  string           `json:"message,omitempty"`
}
