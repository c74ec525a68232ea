package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeNotFound      = "not_found"
	codeForbidden     = "forbidden"
	codeUnavailable   = "unavailable"
	codeInternalError = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"` + codeInternalError + `"}`))
		return
	}
	_, _ = w.Write(payload)
}
