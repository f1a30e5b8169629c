package response

const (
	MessageSuccess      = "Success"
	TooManyRequestsCode = 429

	DateTimeFormat = "2006-01-02 15:04:05"
)
