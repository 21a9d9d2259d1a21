package totp

import (
	"net/url"
	"strings"
)

// DefaultIssuer is used when ProvisioningURI is called with an empty issuer.
const DefaultIssuer = "Lockit"

// ProvisioningURI formats the Key URI consumed by authenticator apps:
//
//	otpauth://totp/<issuer>:<account>?secret=<base32>&issuer=<issuer>
//
// The label and every parameter value are percent-encoded as single URI
// components. Pure formatting; render the result as a QR code for scanning
// (see pkg/qrcode).
func ProvisioningURI(secret []byte, account, issuer string) string {
	if issuer == "" {
		issuer = DefaultIssuer
	}

	var b strings.Builder
	b.WriteString("otpauth://totp/")
	b.WriteString(escapeComponent(issuer + ":" + account))
	b.WriteString("?secret=")
	b.WriteString(escapeComponent(EncodeSecret(secret)))
	b.WriteString("&issuer=")
	b.WriteString(escapeComponent(issuer))
	return b.String()
}

// escapeComponent percent-encodes s as a single URI component. QueryEscape
// covers the reserved set but renders spaces as '+', which authenticator
// apps do not decode in labels.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
