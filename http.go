package whynoterrors

import (
	"encoding/json"
	"net/http"
)

// Write renders an error as an HTTP response: the error's status on
// the status line and its message as the body, byte for byte, with
// no envelope or escaping. Errors that are not an *AppError go
// through From first. A nil error writes 204 No Content.
//
// The Content-Type is left to the transport layer; a request ID
// derived from the request is stamped on the response when present.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// From passes a typed-nil *AppError through unchanged, and a
	// typed nil makes the interface check above miss.
	e := From(err)
	if e == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if id := RequestIDFromRequest(r); id != "" {
		w.Header().Set(HeaderRequestID, id)
	}

	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	w.WriteHeader(status)
	_, _ = w.Write([]byte(e.Message))
}

// WriteJSON renders a JSONResult: the success payload is JSON-encoded
// with Content-Type application/json, the failure case goes to Write.
func WriteJSON[T any](w http.ResponseWriter, r *http.Request, res JSONResult[T]) {
	if res.Err != nil {
		Write(w, r, res.Err)
		return
	}

	if id := RequestIDFromRequest(r); id != "" {
		w.Header().Set(HeaderRequestID, id)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res.Value)
}

// WriteHTML renders an HTMLResult: the success body is written verbatim
// with Content-Type text/html, the failure case goes to Write.
func WriteHTML(w http.ResponseWriter, r *http.Request, res HTMLResult) {
	if res.Err != nil {
		Write(w, r, res.Err)
		return
	}

	if id := RequestIDFromRequest(r); id != "" {
		w.Header().Set(HeaderRequestID, id)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(res.Body))
}
