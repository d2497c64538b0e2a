package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/closet"
	"github.com/stylgpt/closet/utils"
)

// DeleteOutfitRequest is the payload for deleting an outfit.
type DeleteOutfitRequest struct {
	OutfitID string `json:"outfitId"`
}

// GenerateOutfitsRequest is the payload for AI outfit generation.
type GenerateOutfitsRequest struct {
	StylePreferences string `json:"stylePreferences"`
	Requirements     string `json:"requirements"`
}

// OutfitsHandler serves the outfit collection: list on GET, create on
// POST, edit on PUT, delete on DELETE.
func (s *Server) OutfitsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Outfits API]")

	userID := GetUserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		outfits, err := s.svc.Outfits(r.Context(), userID)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to list outfits: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Listed %d outfits", len(outfits)))
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})

	case http.MethodPost:
		var req closet.OutfitDraft
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		outfit, err := s.svc.CreateOutfit(r.Context(), userID, req)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to create outfit: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Created outfit %s", outfit.ID))
		utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"outfit": outfit})

	case http.MethodPut:
		var req closet.OutfitUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.svc.UpdateOutfit(r.Context(), userID, req); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to update outfit: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Updated outfit %s", req.ID))
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Outfit updated successfully"})

	case http.MethodDelete:
		var req DeleteOutfitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.svc.DeleteOutfit(r.Context(), userID, req.OutfitID); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to delete outfit: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted outfit %s", req.OutfitID))
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Outfit deleted successfully"})

	default:
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GenerateOutfitsHandler runs AI outfit generation over the caller's
// wardrobe and returns three candidates without persisting anything.
func (s *Server) GenerateOutfitsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Generate Outfits API]")

	if r.Method != http.MethodPost {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateOutfitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	outfits, err := s.svc.GenerateOutfits(r.Context(), userID, req.StylePreferences, req.Requirements)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to generate outfits: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Generated %d outfit candidates", len(outfits)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})
}
