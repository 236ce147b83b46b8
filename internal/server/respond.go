package server

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/repolens/repolens/pkg/errors"
)

// errorResponse is the JSON body for all failed requests.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps structured error codes to HTTP statuses. Errors from
// primary upstream fetches carry the upstream status, which passes through
// unchanged; everything else falls back to a generic internal error.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidRepo:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeForbidden:
		status = http.StatusForbidden
	case apperrors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case apperrors.ErrCodeUpstream:
		status = http.StatusBadGateway
	}
	if upstream := apperrors.UpstreamStatus(err); upstream != 0 {
		status = upstream
	}

	s.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"code", code,
		"err", err,
	)
	s.writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}

// recoverPanics converts panics during request handling into a generic
// internal-error response carrying the panic text.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.writeError(w, r, apperrors.New(apperrors.ErrCodeInternal, "analysis failed: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
