// internal/auth/actions.go
package auth

import "maps"

// state is the full store state: the reader-facing snapshot plus the
// credential mapping keyed by email.
type state struct {
	snap        Snapshot
	credentials map[string]Credential
}

// action is the closed set of auth transitions.
type action interface{ isAuthAction() }

type loginStart struct{}
type loginSuccess struct{ user *Session }
type loginFailed struct{ message string }
type loggedOut struct{}
type registerStart struct{}
type registerSuccess struct{ cred Credential }
type registerFailed struct{ message string }
type clearError struct{}

func (loginStart) isAuthAction()      {}
func (loginSuccess) isAuthAction()    {}
func (loginFailed) isAuthAction()     {}
func (loggedOut) isAuthAction()       {}
func (registerStart) isAuthAction()   {}
func (registerSuccess) isAuthAction() {}
func (registerFailed) isAuthAction()  {}
func (clearError) isAuthAction()      {}

// reduce is the pure transition function. It is total: unknown inputs
// cannot occur because the action set is closed within the package.
func reduce(s state, a action) state {
	switch a := a.(type) {
	case loginStart:
		s.snap.Loading = true
		s.snap.Err = ""
	case loginSuccess:
		s.snap = Snapshot{Authenticated: true, User: a.user}
	case loginFailed:
		s.snap = Snapshot{Err: a.message}
	case loggedOut:
		s.snap = Snapshot{}
	case registerStart:
		s.snap.Loading = true
		s.snap.Err = ""
	case registerSuccess:
		next := maps.Clone(s.credentials)
		next[a.cred.Email] = a.cred
		s.credentials = next
		s.snap.Loading = false
		s.snap.Err = ""
	case registerFailed:
		s.snap.Loading = false
		s.snap.Err = a.message
	case clearError:
		s.snap.Err = ""
	}
	return s
}
