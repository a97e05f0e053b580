package handler

// response is the uniform success envelope: every 2xx body is {"data": ...}.
// Errors render as {"error": ...} via the central HTTP error handler.
type response struct {
	Data any `json:"data"`
}
