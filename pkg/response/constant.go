package response

const (
	MessageSuccess = "Success"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"

	DateFormat     = "02/01/2006"
	DateTimeFormat = "02/01/2006 15:04:05"
)
