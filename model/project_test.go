package model

import (
	"testing"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
)

func TestNewDisplayProject(t *testing.T) {
	updated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		repo     *github.Repository
		expected DisplayProject
	}{
		{
			name: "All fields present",
			repo: &github.Repository{
				ID:              github.Int64(1),
				Name:            github.String("portfolio"),
				Description:     github.String("my site"),
				StargazersCount: github.Int(4),
				Language:        github.String("Go"),
				HTMLURL:         github.String("https://github.com/someone/portfolio"),
				Topics:          []string{"web", "go"},
				UpdatedAt:       &github.Timestamp{Time: updated},
			},
			expected: DisplayProject{
				ID:          1,
				Title:       "portfolio",
				Description: "my site",
				Stars:       4,
				Language:    "Go",
				URL:         "https://github.com/someone/portfolio",
				Topics:      []string{"web", "go"},
				UpdatedAt:   updated,
			},
		},
		{
			name: "Missing optional fields use placeholders",
			repo: &github.Repository{
				ID:        github.Int64(2),
				Name:      github.String("dotfiles"),
				HTMLURL:   github.String("https://github.com/someone/dotfiles"),
				UpdatedAt: &github.Timestamp{Time: updated},
			},
			expected: DisplayProject{
				ID:          2,
				Title:       "dotfiles",
				Description: DefaultDescription,
				Language:    DefaultLanguage,
				URL:         "https://github.com/someone/dotfiles",
				Topics:      []string{},
				UpdatedAt:   updated,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := NewDisplayProject(tt.repo)
			assert.Equal(t, tt.expected, project)
			assert.NotNil(t, project.Topics)
		})
	}
}

func TestIsListable(t *testing.T) {
	assert.True(t, IsListable(&github.Repository{}))
	assert.False(t, IsListable(&github.Repository{Fork: github.Bool(true)}))
	assert.False(t, IsListable(&github.Repository{Private: github.Bool(true)}))
	assert.False(t, IsListable(nil))
}

func TestToEmailMessage(t *testing.T) {
	form := ContactFormState{Name: "Ada", Email: "ada@example.com", Message: "hello"}

	assert.Equal(t, EmailMessage{FromName: "Ada", ReplyTo: "ada@example.com", Message: "hello"}, form.ToEmailMessage())
	assert.False(t, form.IsEmpty())
	assert.True(t, ContactFormState{}.IsEmpty())
}
