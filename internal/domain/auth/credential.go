package auth

// CredentialScheme owns how a password is stored and compared. Swapping the
// scheme changes nothing for callers of AuthService.
type CredentialScheme interface {
	Name() string
	Encode(password string) (string, error)
	Verify(stored, supplied string) bool
}
