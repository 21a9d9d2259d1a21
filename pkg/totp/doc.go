// Package totp implements RFC 4226 (HOTP) and RFC 6238 (TOTP) one-time
// passwords for two-factor authentication, together with the base32 secret
// codec and the otpauth:// provisioning URI understood by authenticator apps.
//
// All operations are pure functions over their inputs: the current time is
// always an explicit parameter, so code generation and verification are
// deterministic and safe for concurrent use without locking.
//
// # Basic Usage
//
// Enroll a user and render the provisioning URI:
//
//	secret, err := totp.GenerateSecretKey()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	uri := totp.ProvisioningURI(secret, "user@example.com", "MyApp")
//	// Render uri as a QR code, e.g. with pkg/qrcode.
//
// Verify a submitted code:
//
//	res := totp.Verify(submittedCode, secret, totp.VerifyOpts{}, time.Now())
//	if !res.Matched {
//		// wrong or expired code
//	}
//
// # Drift Policy
//
// Verify searches a symmetric window of counter steps around the current one
// and reports the offset of the first match in Result.Delta. The engine
// accepts any offset inside the window; callers that want to reject all
// clock drift must additionally check Result.Delta == 0. Keeping the two
// checks separate lets each call site choose its own strictness.
//
// # Secret Storage
//
// Secrets are raw keying material and should be encrypted at rest:
//
//	encrypted, err := totp.EncryptSecret(secret, encryptionKey)
//	...
//	secret, err = totp.DecryptSecret(encrypted, encryptionKey)
//
// # Recovery Codes
//
// Generate single-use backup codes for account recovery:
//
//	codes, err := totp.GenerateRecoveryCodes(10)
//	for _, code := range codes {
//		hash, _ := totp.HashRecoveryCode(code)
//		// store hash, show code to the user once
//	}
package totp
