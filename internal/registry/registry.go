// Package registry binds identities to live sessions: at most one session per
// identity at any instant. Like the store, it is unlocked; the router owns
// the write discipline.
package registry

// Pusher is the transport half of a session. Push queues one framed payload
// best-effort and must never block; Close tears the connection down.
// Implementations must be safe for concurrent use.
type Pusher interface {
	Push(frame []byte)
	Close()
}

// Session is the live binding of one identity to one connection. ID is zero
// until the session completes a connect.
type Session struct {
	ID   int
	Name string

	conn Pusher
}

func NewSession(conn Pusher) *Session {
	return &Session{conn: conn}
}

// Push queues a frame on the session's connection, best-effort.
func (s *Session) Push(frame []byte) {
	s.conn.Push(frame)
}

// CloseConn closes the underlying connection.
func (s *Session) CloseConn() {
	s.conn.Close()
}

// Registry is the identity -> session-of-record table.
type Registry struct {
	sessions map[int]*Session
}

func New() *Registry {
	return &Registry{sessions: make(map[int]*Session)}
}

// Bind installs sess as the session-of-record for id and returns the session
// it displaced, if any. Rebinding the same session to the same id is not a
// takeover.
func (r *Registry) Bind(id int, name string, sess *Session) *Session {
	prev := r.sessions[id]
	if prev == sess {
		prev = nil
	}
	sess.ID = id
	sess.Name = name
	r.sessions[id] = sess
	return prev
}

// Lookup resolves a currently connected identity. Identities that never
// connected, or that disconnected, do not resolve.
func (r *Registry) Lookup(id int) (*Session, bool) {
	sess, ok := r.sessions[id]
	return sess, ok
}

// Remove drops the entry for sess's identity only while sess is still the
// session-of-record. A close event from a session already displaced by
// takeover must not evict its replacement.
func (r *Registry) Remove(sess *Session) bool {
	if sess.ID == 0 {
		return false
	}
	if r.sessions[sess.ID] != sess {
		return false
	}
	delete(r.sessions, sess.ID)
	return true
}
