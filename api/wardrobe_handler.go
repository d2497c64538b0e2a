package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylgpt/closet/closet"
	"github.com/stylgpt/closet/utils"
)

// AddItemsRequest is the payload for adding wardrobe items in bulk.
type AddItemsRequest struct {
	Items []closet.NewItem `json:"items"`
}

// DeleteItemsRequest is the payload for deleting one or more items.
type DeleteItemsRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// ReplacePhotoRequest is the payload for swapping an item's photo.
type ReplacePhotoRequest struct {
	ItemID       string `json:"itemId"`
	PhotoDataURI string `json:"photoDataUri"`
}

// WardrobeHandler serves the wardrobe collection: list on GET, bulk add
// on POST, delete on DELETE.
func (s *Server) WardrobeHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Wardrobe API]")

	userID := GetUserIDFromContext(r.Context())

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.VisibleItems(r.Context(), userID)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to list items: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Listed %d items", len(items)))
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})

	case http.MethodPost:
		var req AddItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		items, err := s.svc.AddItems(r.Context(), userID, req.Items)
		if err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to add items: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Added %d items", len(items)))
		utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"items": items})

	case http.MethodDelete:
		var req DeleteItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := s.svc.DeleteItems(r.Context(), userID, req.ItemIDs); err != nil {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to delete items: %v", err))
			respondServiceError(w, &logMessageBuilder, err)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted %d items", len(req.ItemIDs)))
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Items deleted successfully"})

	default:
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// UpdateItemHandler edits a single item's attributes.
func (s *Server) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Item API]")

	if r.Method != http.MethodPut {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req closet.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	if err := s.svc.UpdateItem(r.Context(), userID, req); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to update item: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Updated item %s", req.ID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item updated successfully"})
}

// ReplaceItemPhotoHandler swaps an item's stored photo for a new upload.
func (s *Server) ReplaceItemPhotoHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Replace Item Photo API]")

	if r.Method != http.MethodPost {
		utils.AddToLogMessage(&logMessageBuilder, "Method not allowed")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ReplacePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	userID := GetUserIDFromContext(r.Context())
	photoURL, err := s.svc.ReplaceItemPhoto(r.Context(), userID, req.ItemID, req.PhotoDataURI)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to replace photo: %v", err))
		respondServiceError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Replaced photo for item %s", req.ItemID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"photoUrl": photoURL})
}
