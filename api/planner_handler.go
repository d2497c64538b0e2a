package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/utils"
)

// SavePlannerRequest is the payload for scheduling outfits on a date. An
// empty outfit list clears the date.
type SavePlannerRequest struct {
	Date      string   `json:"date"`
	OutfitIDs []string `json:"outfitIds"`
}

// PlannerHandler serves the outfit planner: list on GET, upsert on POST.
func (s *Server) PlannerHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Planner API]")

	userID := GetUserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		entries, err := s.svc.PlannerEntries(r.Context(), userID)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to list planner entries: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Listed %d planner entries", len(entries)))
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})

	case http.MethodPost:
		var req SavePlannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.svc.SavePlannerEntry(r.Context(), userID, req.Date, req.OutfitIDs); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to save planner entry: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved planner entry for %s", req.Date))
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Planner updated successfully"})

	default:
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
