package response

// Business status codes carried in the envelope alongside the HTTP status.
const (
	CodeSuccess         = 0
	CodeBadRequest      = 40000
	CodeNotFound        = 40400
	CodeConflict        = 40900
	CodeTooManyRequests = 42900
	CodeInternal        = 50000
)
