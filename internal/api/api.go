package api

import (
	"errors"
	"net/http"

	"slot_backend/internal/model"
	"slot_backend/pkg/resp"
)

// WriteError maps a domain error to a status code and writes the uniform
// error envelope. Storage details are never leaked to the client.
func WriteError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		resp.WriteErrorResponse(w, http.StatusBadRequest, ve.Error())
		return
	}
	if errors.Is(err, model.ErrNotFound) {
		resp.WriteErrorResponse(w, http.StatusNotFound, "not found")
		return
	}
	resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
}
