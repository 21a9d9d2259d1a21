// Package lockit is a toolkit for adding TOTP two-factor authentication to
// Go web applications.
//
// The packages compose but do not depend on each other more than needed:
//
//   - pkg/totp: RFC 4226 / RFC 6238 one-time code generation and windowed
//     verification, secret encoding, provisioning URIs, secret encryption
//     and recovery codes.
//   - pkg/qrcode: QR code rendering for provisioning URIs.
//   - core/session: generic session lifecycle with two-factor state, with
//     in-memory and Redis stores.
//   - core/sessiontransport: signed-cookie session transport.
//   - core/cookie: HMAC-signed cookie manager.
//   - middleware: net/http session loading and the authentication gate.
//   - core/config, core/logger, core/health: configuration, slog helpers
//     and health probes.
//   - integration/database: connection URI resolver plus pg, redis and
//     mongo adapters.
package lockit
