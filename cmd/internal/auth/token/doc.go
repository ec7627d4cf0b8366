// Package token verifies the bearer credential presented when a realtime
// connection is established.
//
// Tokens are PASETO v4.local: encrypted and authenticated with a shared
// symmetric key. Verification enforces issuer, expiry and the presence of a
// uid claim; issuance lives here only so verification is testable — the REST
// layer owns real issuance.
package token
