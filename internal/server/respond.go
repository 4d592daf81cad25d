package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps err onto its status and error code. Unclassified
// errors are reported with the generic message only.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := errors.StatusOf(err)
	body := errorBody{Error: errors.UserMessage(err), Code: errors.CodeOf(err)}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Int("status", status), zap.String("code", body.Code), zap.Error(err))
		if body.Code == errors.CodeAppError {
			body.Error = errors.DefaultUserMessage
		}
	}
	respondJSON(w, status, body)
}
