// Package guard decides whether the current view may render given the
// session state, and navigates away when the access rules are violated.
//
// A guard is a pure decision over (state, requirement); the Watcher makes
// it reactive by re-running the decision on every session change.
package guard

import (
	"github.com/portaldevagas/vagas-cli/internal/auth"
	"github.com/portaldevagas/vagas-cli/internal/session"
)

// Decision is the outcome of an access check.
type Decision int

const (
	// Wait means hydration is still pending: render nothing, navigate
	// nowhere.
	Wait Decision = iota
	// Allow means the view may render.
	Allow
	// Deny means access is refused and a navigation was requested.
	Deny
)

// String returns a readable form for logs and tests.
func (d Decision) String() string {
	switch d {
	case Wait:
		return "wait"
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Requirement declares what a view demands from the session.
type Requirement struct {
	// RequireAuth demands an authenticated session. Anonymous-only views
	// (the login screen) set it to false.
	RequireAuth bool

	// RedirectTarget is where denied visitors are sent. Zero value means
	// the login route.
	RedirectTarget auth.Route
}

// Protected is the default requirement: authenticated visitors only,
// denials go to the login route.
func Protected() Requirement {
	return Requirement{RequireAuth: true, RedirectTarget: auth.RouteLogin}
}

// AnonymousOnly is the requirement for views like the login screen:
// authenticated visitors are bounced to their role's landing route.
func AnonymousOnly() Requirement {
	return Requirement{RequireAuth: false, RedirectTarget: auth.RouteRoot}
}

func (r Requirement) redirect() auth.Route {
	if r.RedirectTarget == "" {
		return auth.RouteLogin
	}
	return r.RedirectTarget
}

// Check runs the access decision and performs the navigation a denial
// calls for. nav may be nil for a dry-run decision.
func Check(state session.State, req Requirement, nav auth.Navigator) Decision {
	if state.Loading {
		return Wait
	}

	if req.RequireAuth && !state.Authenticated() {
		if nav != nil {
			nav.Navigate(req.redirect())
		}
		return Deny
	}

	// An authenticated user on an anonymous-only view is sent to the
	// landing route for their role instead.
	if !req.RequireAuth && state.Authenticated() && req.redirect() != auth.RouteLogin {
		if nav != nil {
			nav.Navigate(state.Role().Landing())
		}
		return Deny
	}

	return Allow
}

// Watcher keeps a requirement enforced against a live session: it runs the
// check immediately and again on every session change until stopped.
type Watcher struct {
	req         Requirement
	nav         auth.Navigator
	onDecision  func(Decision)
	unsubscribe func()
}

// Watch starts enforcing req against the controller's session. onDecision,
// if non-nil, observes every decision; views use it to switch between
// spinner, content, and nothing.
func Watch(ctrl *session.Controller, req Requirement, nav auth.Navigator, onDecision func(Decision)) *Watcher {
	w := &Watcher{req: req, nav: nav, onDecision: onDecision}

	run := func(state session.State) {
		decision := Check(state, w.req, w.nav)
		if w.onDecision != nil {
			w.onDecision(decision)
		}
	}

	w.unsubscribe = ctrl.Subscribe(run)
	run(ctrl.State())
	return w
}

// Stop detaches the watcher from the session.
func (w *Watcher) Stop() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}
