package httpdto

// ErrorResponse is the body of every error reply. Detail is a
// human-readable string; clients switch on the status code, not on it.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// DetailResponse is the body of success replies that only carry a message,
// such as the authenticated delete.
type DetailResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
