package handlers

import (
	"encoding/json"
	"errors"
	"freight-dispatch-service/internal/api/dto"
	"freight-dispatch-service/internal/domain"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeDispatchError maps a planning failure to a status code. Input errors
// are the client's fault, infeasible plans are unprocessable, and anything
// else is logged and hidden.
func writeDispatchError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrScenarioNotFound) {
		writeError(w, r, http.StatusNotFound, "scenario not found")
		return
	}

	kind := domain.KindOf(err)
	switch {
	case kind.IsValidation():
		writeJSON(w, r, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Kind: string(kind)})
	case kind == domain.KindUnreachable || kind == domain.KindNoCapableVehicle:
		writeJSON(w, r, http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Kind: string(kind)})
	default:
		log.Printf("%s failed: %v", op, err)
		writeJSON(w, r, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Kind: string(kind)})
	}
}
