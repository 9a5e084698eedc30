// Package shell holds the transient presentation state of the portfolio page
// state is mutated only through the transition methods of each container
package shell

import (
	"context"
	"errors"
	"sync"

	"github.com/FlorianRuen/portfolio-backend/model"
	log "github.com/sirupsen/logrus"
)

type ProjectLoader interface {
	LoadProjects(ctx context.Context) ([]model.DisplayProject, error)
}

// FeedView is a read-only snapshot of the project feed
type FeedView struct {
	Loading  bool
	Projects []model.DisplayProject
	Error    string
	Empty    bool
}

// ProjectFeed keeps the result of the last completed fetch
// a fetch in flight is never visible to other callers, only its completion is
type ProjectFeed struct {
	loader ProjectLoader

	mu       sync.RWMutex
	inFlight int
	loaded   bool
	projects []model.DisplayProject
	errText  string
	empty    bool
}

func NewProjectFeed(loader ProjectLoader) *ProjectFeed {
	return &ProjectFeed{loader: loader}
}

// Refresh run one fetch and returns the view built from its own result
// the lock is never held across the network call
// on failure the previous projects are kept and only the error text changes
func (f *ProjectFeed) Refresh(ctx context.Context) (FeedView, error) {
	f.mu.Lock()
	f.inFlight++
	f.mu.Unlock()

	projects, err := f.loader.LoadProjects(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.inFlight--
	f.loaded = true

	if err != nil {
		var formatErr *model.FormatError
		if errors.As(err, &formatErr) {
			log.WithError(err).Error("project feed received an invalid format")
		} else {
			log.WithError(err).Error("project feed fetch failed")
		}

		f.errText = model.MsgProjectsFailed
		return f.snapshot(), err
	}

	f.projects = projects
	f.empty = len(projects) == 0
	f.errText = ""

	if f.empty {
		f.errText = model.MsgNoProjects
	}

	return f.snapshot(), nil
}

// Loading is true while at least one fetch is in flight
func (f *ProjectFeed) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.inFlight > 0
}

// View returns the last completed result, Loading only until a first fetch completes
func (f *ProjectFeed) View() FeedView {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.loaded {
		return FeedView{Loading: true, Projects: []model.DisplayProject{}}
	}

	return f.snapshot()
}

// snapshot must be called with the lock held
func (f *ProjectFeed) snapshot() FeedView {
	projects := make([]model.DisplayProject, len(f.projects))
	copy(projects, f.projects)

	return FeedView{
		Projects: projects,
		Error:    f.errText,
		Empty:    f.empty,
	}
}
