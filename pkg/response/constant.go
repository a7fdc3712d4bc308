package response

const (
	MessageSuccess      = "Success"
	MessageUnauthorized = "Unauthorized"
	MessageInternal     = "Something went wrong"
	MessageBadRequest   = "Bad request"

	codeInternal     = 500
	codeUnauthorized = 401
	codeBadRequest   = 400
)
