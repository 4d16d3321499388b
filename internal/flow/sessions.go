package flow

import "sync"

// session is one user's booking progression plus the lock serializing
// event application for that user. Different users never contend.
type session struct {
	mu    sync.Mutex
	state State
}

// sessionStore holds per-user sessions, created lazily on first touch.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	city     string
}

func newSessionStore(defaultCity string) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		city:     defaultCity,
	}
}

// get returns the user's session, creating a fresh one at the default
// city when the user has none yet.
func (st *sessionStore) get(userID string) *session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[userID]
	if !ok {
		s = &session{state: NewState(st.city)}
		st.sessions[userID] = s
	}
	return s
}
