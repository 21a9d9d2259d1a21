// Package session provides server-side sessions for two-factor login flows.
//
// A session moves through three states: anonymous, password-authenticated
// with two-factor pending, and fully authenticated once the TOTP code has
// been verified. The generic Data parameter carries application-specific
// state on top of that lifecycle.
//
// Basic flow:
//
//	mgr := session.NewManager(session.NewMemoryStore[AppData]())
//
//	sess, _ := mgr.New(ctx, session.NewSessionParams{IP: ip, UserAgent: ua})
//
//	// After password check:
//	sess, _ = mgr.Authenticate(ctx, sess, userID)
//
//	// After totp.Verify reports a match:
//	sess, _ = mgr.ConfirmTwoFactor(ctx, sess)
//
// Stores: NewMemoryStore for single-process deployments and tests,
// NewRedisStore for shared deployments.
package session
