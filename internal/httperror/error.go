package httperror

// Error is the response body for requests that failed without
// a resource specific response.
type Error struct {
	Message string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}
