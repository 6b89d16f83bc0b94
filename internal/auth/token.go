package auth

// TokenCodec issues bearer tokens at login time and resolves presented
// tokens back to a username.
type TokenCodec interface {
	Issue(username string) (string, error)
	ResolveUsername(token string) (string, error)
}

// LegacyCodec reproduces the original scheme: the token issued at login IS
// the plaintext username, with no signature, expiry, or secret material.
// Anyone who knows a registered username can present it as a valid token;
// the password is only checked once, at issuance. Kept for compatibility,
// selectable via AUTH_MODE=legacy. Use JWTService for signed tokens.
type LegacyCodec struct{}

// NewLegacyCodec creates the plaintext-username codec.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

// Issue returns the username itself as the token.
func (*LegacyCodec) Issue(username string) (string, error) {
	return username, nil
}

// ResolveUsername treats the token as a literal username.
func (*LegacyCodec) ResolveUsername(token string) (string, error) {
	return token, nil
}
