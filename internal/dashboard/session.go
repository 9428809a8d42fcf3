package dashboard

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const sessionCookie = "dashboard_sid"

// session owns the view instances of one browser. mu serializes state transitions.
type session struct {
	mu      sync.Mutex
	views   map[string]any
	mounted map[string]bool
}

// sessionStore keeps sessions until they expire; expiry unmounts every view.
type sessionStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *session]
	ttl   time.Duration
}

func newSessionStore(size int, ttl time.Duration) *sessionStore {
	return &sessionStore{
		cache: expirable.NewLRU[string, *session](size, nil, ttl),
		ttl:   ttl,
	}
}

// get returns the caller's session, creating one and setting the cookie when needed.
func (s *sessionStore) get(c *gin.Context) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sid, err := c.Cookie(sessionCookie); err == nil {
		if sess, ok := s.cache.Get(sid); ok {
			return sess
		}
	}

	sid := uuid.NewString()
	sess := &session{views: map[string]any{}, mounted: map[string]bool{}}
	s.cache.Add(sid, sess)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sid, int(s.ttl.Seconds()), "/", "", false, true)
	return sess
}
