package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/utils"
)

// PhotoRequest carries a base64 data URI photo payload.
type PhotoRequest struct {
	PhotoDataURI string `json:"photoDataUri"`
}

// AnalyzeItemHandler classifies a clothing photo into structured
// attributes via the AI model.
func (s *Server) AnalyzeItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Analyze Item API]")

	if r.Method != http.MethodPost {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	attrs, err := s.svc.AnalyzePhoto(r.Context(), req.PhotoDataURI)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to analyze photo: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Photo analyzed successfully")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"attributes": attrs})
}

// RemoveBackgroundHandler strips the background from a clothing photo and
// stores the processed copy.
func (s *Server) RemoveBackgroundHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Remove Background API]")

	if r.Method != http.MethodPost {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	processed, err := s.svc.RemoveBackground(r.Context(), userID, req.PhotoDataURI)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to remove background: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Background removed successfully")
	utils.RespondJSON(w, http.StatusOK, processed)
}
