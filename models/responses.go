package models

// RegisterResponse is returned by the registration endpoint: the created
// account together with a freshly issued token pair, so clients can start
// making authenticated calls without a separate login round-trip.
type RegisterResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// AccessResponse is returned by the refresh endpoint.
type AccessResponse struct {
	Access string `json:"access"`
}

// ErrorResponse is the uniform JSON error body returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
