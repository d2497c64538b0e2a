package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/closet"
	"github.com/stylgpt/closet/models"
	"github.com/stylgpt/closet/utils"
)

// ProfileHandler serves the user profile: fetch (creating defaults on
// first access) on GET, merge preference edits on PUT.
func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Profile API]")

	userID := GetUserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		profile, err := s.svc.Profile(r.Context(), userID)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to fetch profile: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, "Fetched profile")
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})

	case http.MethodPut:
		var req closet.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		profile, err := s.svc.UpdateProfile(r.Context(), userID, req)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to update profile: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, "Profile updated successfully")
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})

	default:
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// NotificationsHandler replaces the caller's notification settings.
func (s *Server) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Notifications API]")

	if r.Method != http.MethodPut {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	if err := s.svc.UpdateNotifications(r.Context(), userID, req); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to update notifications: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Notification settings updated")
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Notification settings updated successfully"})
}

// DeleteAccountHandler removes the caller's account and every owned
// document.
func (s *Server) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Delete Account API]")

	if r.Method != http.MethodDelete {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	if err := s.svc.DeleteAccount(r.Context(), userID); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to delete account: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted account %s", userID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
