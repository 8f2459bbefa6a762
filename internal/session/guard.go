package session

import (
	"errors"
	"sync"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
)

// ErrUnauthenticated is returned when no usable identity is present.
// Callers are expected to send the user to the login view.
var ErrUnauthenticated = errors.New("not authenticated")

type identitySource interface {
	Current() *models.Identity
}

// Guard gates data loading on the presence of a persisted identity. The
// check is synchronous and must pass before any network call fires, so
// no request leaks for an unauthenticated actor.
type Guard struct {
	session identitySource

	mu         sync.Mutex
	authorized bool
}

func NewGuard(session identitySource) *Guard {
	return &Guard{session: session}
}

// Require returns ErrUnauthenticated when the session has no identity
// with a valid id. On first success it marks the guard authorized.
func (g *Guard) Require() error {
	identity := g.session.Current()
	if identity == nil || identity.ID == 0 {
		return ErrUnauthenticated
	}

	g.mu.Lock()
	g.authorized = true
	g.mu.Unlock()

	return nil
}

// Authorized reports whether Require has succeeded at least once.
func (g *Guard) Authorized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.authorized
}
