package models

// Identity is the locally persisted user record returned by the auth
// endpoints. Its presence gates every protected view and its ID scopes
// every non-auth request.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Credentials is the payload for login and register requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Valid reports whether both fields are present. Empty credentials are
// rejected locally, before any network call.
func (c Credentials) Valid() bool {
	return c.Username != "" && c.Password != ""
}
