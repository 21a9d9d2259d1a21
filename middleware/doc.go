// Package middleware provides net/http middleware for the two-factor
// authentication flow: session loading and persistence, and an
// authentication gate that redirects browsers to the login page while
// answering machine clients with 401.
//
// Middleware are standard func(http.Handler) http.Handler wrappers and
// compose with any router that accepts them.
//
// Usage:
//
//	transport := sessiontransport.NewCookie(manager, cookies, "sid")
//
//	mux := http.NewServeMux()
//	mux.Handle("/dashboard", dashboardHandler)
//
//	protected := middleware.Session[SessionData](transport)(
//		middleware.Gate[SessionData](middleware.GateConfig{LoginPath: "/login"})(mux),
//	)
//
// Handlers read and mutate the request session through GetSession and
// SetSession; the session middleware persists the final state after the
// handler returns.
package middleware
