package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"promptcorrector/internal/core/tagger"
	perr "promptcorrector/internal/platform/errors"
	records "promptcorrector/internal/services/records/domain"
)

// session is the per reviewer state; mu serializes requests on one handle
type session struct {
	mu sync.Mutex

	id       string
	reviewer string
	started  time.Time

	record     *records.Record
	tags       []tagger.TaggedWord
	editedText string

	released atomic.Bool // set before an explicit delete so eviction can tell it from expiry
}

// clear drops the loaded record after it was submitted
func (s *session) clear() {
	s.record, s.tags, s.editedText = nil, nil, ""
}

// sessionStore keeps sessions in a TTL cache keyed by uuid handle
type sessionStore struct {
	c   *cache.Cache
	ttl time.Duration
}

func newSessionStore(ttl, cleanup time.Duration, onEvict func(*session)) *sessionStore {
	c := cache.New(ttl, cleanup)
	if onEvict != nil {
		c.OnEvicted(func(_ string, v any) {
			if s, ok := v.(*session); ok {
				onEvict(s)
			}
		})
	}
	return &sessionStore{c: c, ttl: ttl}
}

func (st *sessionStore) create(reviewer string, now time.Time) *session {
	s := &session{id: uuid.NewString(), reviewer: reviewer, started: now}
	st.c.Set(s.id, s, cache.DefaultExpiration)
	return s
}

// get returns the session and slides its expiry
func (st *sessionStore) get(id string) (*session, error) {
	v, ok := st.c.Get(id)
	if !ok {
		return nil, perr.NotFoundf("session %s not found or expired", id)
	}
	s := v.(*session)
	if s.released.Load() {
		return nil, perr.NotFoundf("session %s not found or expired", id)
	}
	st.c.Set(id, s, cache.DefaultExpiration)
	return s, nil
}

func (st *sessionStore) delete(s *session) {
	s.released.Store(true)
	st.c.Delete(s.id)
}

func (st *sessionStore) count() int { return st.c.ItemCount() }

// sweep evicts expired sessions now instead of waiting for the janitor
func (st *sessionStore) sweep() { st.c.DeleteExpired() }
