package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest is the registration payload. The wire field for the
// password is literally "hashed_password" even though the value submitted is
// the plaintext password; hashing happens server-side.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"hashed_password" validate:"required"`
}

// tokenRequest is the login form. The username field carries the email.
type tokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
