package server

import (
	"encoding/json"
	"net/http"

	"github.com/kinship-dev/kinship/pkg/errors"
)

// errorBody is the JSON shape of every error response: one structured
// result per rejected operation, code plus human-readable message.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, statusFor(code), body)
}

// statusFor maps error codes to HTTP statuses. Conflicts with existing
// state are 409, absent resources 404, everything else the caller got
// wrong 400.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeDuplicateName,
		errors.ErrCodeDuplicateRelation,
		errors.ErrCodeMultipleParents,
		errors.ErrCodeCycleRejected:
		return http.StatusConflict
	case errors.ErrCodeUnknownIndividual,
		errors.ErrCodeUnknownRelation,
		errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidName,
		errors.ErrCodeSelfRelation,
		errors.ErrCodeMalformedInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into v, writing a 400 and
// returning false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeMalformedInput, err, "invalid request body"))
		return false
	}
	return true
}
