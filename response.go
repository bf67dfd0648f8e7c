package recipes_api

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	Success     bool      `json:"success"`
	Data        LoginUser `json:"data"`
}

// LoginUser is the public part of the authenticated user.
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// OK wraps data into a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds an error envelope with a client-facing message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
