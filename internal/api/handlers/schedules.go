package handlers

import (
	"encoding/json"
	"freight-dispatch-service/internal/api/dto"
	"freight-dispatch-service/internal/ports"
	"freight-dispatch-service/internal/services"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxScenarioBytes bounds the size of an inline scenario body.
const maxScenarioBytes = 1 << 20

type ScheduleHandler struct {
	Repo  ports.ScenarioRepository
	Cache ports.ScheduleCache
}

// Scenario plans the stored scenario named in the URL.
func (h *ScheduleHandler) Scenario(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "scenario name is required")
		return
	}

	res, err := services.PlanSchedule(r.Context(), services.PlanScheduleRequest{Scenario: name}, h.Repo, h.Cache)
	if err != nil {
		writeDispatchError(w, r, "plan scenario schedule", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toScheduleResponse(res))
}

// Plan normalizes an inline scenario and plans it.
func (h *ScheduleHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var raw services.RawInput

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScenarioBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	in, err := services.NormalizeInput(raw)
	if err != nil {
		writeDispatchError(w, r, "normalize scenario", err)
		return
	}

	res, err := services.PlanSchedule(r.Context(), services.PlanScheduleRequest{Input: &in}, h.Repo, h.Cache)
	if err != nil {
		writeDispatchError(w, r, "plan inline schedule", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toScheduleResponse(res))
}

func toScheduleResponse(res *services.ScheduleResult) dto.ScheduleResponse {
	out := dto.ScheduleResponse{
		Key:     res.Key,
		Cached:  res.Cached,
		Entries: make([]dto.LogEntryResponse, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		out.Entries = append(out.Entries, dto.LogEntryResponse{
			Time:            e.Time,
			Vehicle:         e.Vehicle,
			Station:         e.Station,
			LoadedPackages:  e.LoadedPackages,
			DroppedPackages: e.DroppedPackages,
			NextStation:     e.NextStation,
			NextRoute:       e.NextRoute,
			NextDuration:    e.NextDuration,
		})
	}
	return out
}
