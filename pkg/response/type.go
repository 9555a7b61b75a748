package response

// ErrorResp is the error body clients read the message from.
// Detail is a string for most errors and a list of field errors for
// validation failures.
type ErrorResp struct {
	Detail any `json:"detail"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

const (
	DefaultErrorMessage = "Internal Server Error"
	UnauthorizedMessage = "Unauthorized"
)
