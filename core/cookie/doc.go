// Package cookie provides tamper-proof HTTP cookies signed with HMAC-SHA256.
//
// The session transport stores session tokens in signed cookies so a client
// cannot forge or swap values between cookie names. Secrets support
// rotation: the first secret signs new cookies, all secrets verify.
//
//	manager, err := cookie.New([]string{secret})
//	...
//	err = manager.SetSigned(w, "session", token,
//		cookie.WithMaxAge(3600),
//		cookie.WithSecure(true),
//	)
//	token, err := manager.GetSigned(r, "session")
package cookie
