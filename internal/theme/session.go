package theme

import "github.com/gorilla/sessions"

// SessionKey is the session value holding the preference.
const SessionKey = "theme"

// SessionStore keeps the preference in a cookie session. The caller is
// responsible for saving the session to the response.
type SessionStore struct {
	Session *sessions.Session
}

func (s SessionStore) Load() (Theme, bool) {
	v, _ := s.Session.Values[SessionKey].(string)
	return Parse(v)
}

func (s SessionStore) Save(t Theme) error {
	s.Session.Values[SessionKey] = string(t)
	return nil
}
