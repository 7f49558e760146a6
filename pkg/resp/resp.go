package resp

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error envelope for all API endpoints.
type ErrorBody struct {
	Error string `json:"error"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteErrorResponse(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, ErrorBody{Error: msg})
}
