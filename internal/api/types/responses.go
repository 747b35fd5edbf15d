package types

// APIResponse is the envelope every endpoint speaks: {success, data} on
// reads and creates, {success, message} on deletes, {success, error} on
// failures. Count carries the unpaginated total on list responses.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int64 `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
