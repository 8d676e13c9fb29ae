// Package router tracks the current route of the shell.
package router

import "sync"

// Well-known destinations.
const (
	PathHome     = "/"
	PathChat     = "/chat"
	PathProfile  = "/profile"
	PathSettings = "/settings"
	PathAuth     = "/auth"
)

// NavigatedMsg is emitted after the displayed route changes.
type NavigatedMsg struct {
	From string
	To   string
}

// Router holds the current path and the navigation history.
// The zero value starts at PathHome.
type Router struct {
	mu      sync.RWMutex
	history []string
}

// New returns a router positioned at start, or PathHome when start is empty.
func New(start string) *Router {
	if start == "" {
		start = PathHome
	}
	return &Router{history: []string{start}}
}

// Path returns the current path.
func (r *Router) Path() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.history) == 0 {
		return PathHome
	}
	return r.history[len(r.history)-1]
}

// Navigate makes path the current route. Paths are stored verbatim.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		r.history = []string{PathHome}
	}
	r.history = append(r.history, path)
}

// Back pops the current route. It reports false when there is nothing to pop.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) <= 1 {
		return false
	}
	r.history = r.history[:len(r.history)-1]
	return true
}

// History returns a copy of the visited paths, oldest first.
func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.history) == 0 {
		return []string{PathHome}
	}
	dup := make([]string, len(r.history))
	copy(dup, r.history)
	return dup
}
