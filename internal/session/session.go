package session

import (
	"sync"
	"time"

	"github.com/jo-hoe/aiexplorer/internal/dashboard"
	"github.com/jo-hoe/aiexplorer/internal/provider"
	"github.com/jo-hoe/aiexplorer/internal/workflow"
)

// Dependencies are handed to every view a session mounts.
type Dependencies struct {
	Searcher   provider.Searcher
	Generator  provider.Generator
	Repository dashboard.Repository
}

// Session is one browser's set of mounted views. Each kind of view is
// mounted at most once; mounting again replaces and closes the old one.
type Session struct {
	ID string

	deps Dependencies

	mu        sync.Mutex
	lastSeen  time.Time
	search    *workflow.SearchView
	images    *workflow.ImageGenView
	dashboard *dashboard.View
}

func newSession(id string, deps Dependencies, now time.Time) *Session {
	return &Session{ID: id, deps: deps, lastSeen: now}
}

// MountSearch starts a fresh search page.
func (s *Session) MountSearch() *workflow.SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.search != nil {
		s.search.Close()
	}
	s.search = workflow.NewSearchView(s.deps.Searcher)
	return s.search
}

// Search returns the mounted search page, mounting one if needed.
func (s *Session) Search() *workflow.SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.search == nil {
		s.search = workflow.NewSearchView(s.deps.Searcher)
	}
	return s.search
}

// MountImages starts a fresh image generation page.
func (s *Session) MountImages() *workflow.ImageGenView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.images != nil {
		s.images.Close()
	}
	s.images = workflow.NewImageGenView(s.deps.Generator)
	return s.images
}

// Images returns the mounted image generation page, mounting one if needed.
func (s *Session) Images() *workflow.ImageGenView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.images == nil {
		s.images = workflow.NewImageGenView(s.deps.Generator)
	}
	return s.images
}

// MountDashboard starts a fresh dashboard with an empty filter.
func (s *Session) MountDashboard() *dashboard.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dashboard = dashboard.NewView(s.deps.Repository)
	return s.dashboard
}

// Dashboard returns the mounted dashboard, mounting one if needed.
func (s *Session) Dashboard() *dashboard.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dashboard == nil {
		s.dashboard = dashboard.NewView(s.deps.Repository)
	}
	return s.dashboard
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// close cancels whatever the views still have in flight.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.search != nil {
		s.search.Close()
		s.search = nil
	}
	if s.images != nil {
		s.images.Close()
		s.images = nil
	}
	s.dashboard = nil
}
