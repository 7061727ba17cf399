package auth

// Admin is a stored operator credential. Password holds whatever the active
// CredentialScheme produced: the verbatim password for the plain scheme.
type Admin struct {
	ID       int64
	Username string
	Password string
}
