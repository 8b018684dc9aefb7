package model

// LoginResult is the tagged outcome of a login attempt. Failures are
// result-coded rather than surfaced as errors.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// TokenValidation is the tagged outcome of decoding a login token.
type TokenValidation struct {
	Valid  bool      `json:"valid"`
	Reason string    `json:"reason,omitempty"`
	User   *UserInfo `json:"user,omitempty"`
}
