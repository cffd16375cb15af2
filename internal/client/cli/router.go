package cli

import (
	"sync"

	"github.com/dmitrijs2005/resumeportal/internal/client/services"
)

// router holds the client-side location. Session events may move it from
// another goroutine, hence the lock.
type router struct {
	mu      sync.RWMutex
	current services.Route
}

func newRouter() *router {
	return &router{current: services.RouteRoot}
}

func (r *router) Navigate(to services.Route) {
	if to == "" {
		return
	}
	r.mu.Lock()
	r.current = to
	r.mu.Unlock()
}

func (r *router) Current() services.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
