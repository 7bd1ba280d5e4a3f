package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"promohub/pkg/domainerrors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope is the JSON error shape every handler returns. Validation
// errors additionally carry per-field reasons so forms can surface them next
// to the offending field.
type errorEnvelope struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteError centralizes domain error translation to HTTP responses. Keeping
// it here ensures consistent JSON error envelopes across handlers. Internal
// errors deliberately omit the message so store failures never leak detail.
func WriteError(w http.ResponseWriter, err error) {
	code := domainerrors.CodeOf(err)
	env := errorEnvelope{
		Error:  string(code),
		Fields: domainerrors.FieldsOf(err),
	}
	var de *domainerrors.Error
	if code != domainerrors.CodeInternal && errors.As(err, &de) {
		env.Message = de.Message
	}
	WriteJSON(w, domainerrors.ToHTTPStatus(code), env)
}

// Decode parses the request body into T. On malformed JSON it writes a
// bad request response and returns false; the handler should just return.
func Decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return req, false
	}
	return req, true
}
