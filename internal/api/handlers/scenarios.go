package handlers

import (
	"freight-dispatch-service/internal/api/dto"
	"freight-dispatch-service/internal/ports"
	"log"
	"net/http"
)

// ScenarioHandler exposes read-only endpoints over stored scenarios.
type ScenarioHandler struct {
	Repo ports.ScenarioRepository
}

func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.Repo.ListScenarios(r.Context())
	if err != nil {
		log.Printf("list scenarios failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListScenariosResponse{
		Scenarios: make([]dto.ScenarioResponse, 0, len(scenarios)),
	}
	for _, s := range scenarios {
		res.Scenarios = append(res.Scenarios, dto.ScenarioResponse{
			Name:       s.Name,
			Stations:   s.Stations,
			Routes:     s.Routes,
			Deliveries: s.Deliveries,
			Vehicles:   s.Vehicles,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
