package models

// ErrorResponse is the body of every failed API call. Kind is a stable,
// machine-readable tag and Message is meant for humans.
type ErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MessageResponse is the body of confirmations such as deletes and logout.
type MessageResponse struct {
	Message string `json:"message"`
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
