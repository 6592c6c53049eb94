package models

// APIResponse is the envelope every Nutri Guide endpoint wraps its payload
// in. Success mirrors the server's boolean flag; Message carries the
// human-readable error text on failure (and an informational note on some
// successes, e.g. "Login successful").
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned by POST /api/register and POST /api/login.
// Token is optional on the wire; the session service rejects logins whose
// response omits it.
type AuthResponse struct {
	APIResponse
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// ProfileResponse is returned by PUT /api/user/profile.
type ProfileResponse struct {
	APIResponse
	User *User `json:"user,omitempty"`
}

// UploadResponse is returned by the multipart upload endpoints.
type UploadResponse struct {
	APIResponse
	ImageURL string `json:"image_url,omitempty"`
}
