package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/stylgpt/closet/ai"
	"github.com/stylgpt/closet/api"
	"github.com/stylgpt/closet/blob"
	"github.com/stylgpt/closet/closet"
	"github.com/stylgpt/closet/config"
	"github.com/stylgpt/closet/rembg"
	"github.com/stylgpt/closet/store"
	"github.com/stylgpt/closet/utils"
)

func main() {
	config.LoadConfig()
	ctx := context.Background()

	// Initialize MongoDB
	client, err := store.Connect(config.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(config.DatabaseName)

	// Initialize S3
	photos, err := blob.NewStore(ctx, config.AWSRegion, config.AWSBucketName)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	// Initialize Gemini
	aiClient, err := ai.NewClient(ctx, config.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer aiClient.Close()

	users := store.NewUserStore(db)
	svc := closet.New(closet.Deps{
		Items:    store.NewItemStore(db),
		Outfits:  store.NewOutfitStore(db),
		Planner:  store.NewPlannerStore(db),
		Profiles: store.NewProfileStore(db),
		Accounts: users,
		Photos:   photos,
		Suggest:  aiClient,
		Analyze:  aiClient,
		Rembg:    rembg.NewClient(config.RembgURL),
	})

	server := api.NewServer(svc, users)

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	// Auth Routes
	http.HandleFunc("/auth/google/login", corsMiddleware(server.GoogleLoginHandler))
	http.HandleFunc("/auth/google/callback", corsMiddleware(server.GoogleCallbackHandler))
	http.HandleFunc("/auth/signup", corsMiddleware(server.SignupHandler))
	http.HandleFunc("/auth/verify-otp", corsMiddleware(server.VerifyOTPHandler))
	http.HandleFunc("/auth/login", corsMiddleware(server.LoginHandler))
	http.HandleFunc("/auth/forgot-password", corsMiddleware(server.ForgotPasswordHandler))
	http.HandleFunc("/auth/reset-password", corsMiddleware(server.ResetPasswordHandler))

	// Wardrobe Routes
	http.HandleFunc("/wardrobe", corsMiddleware(api.AuthMiddleware(server.WardrobeHandler)))
	http.HandleFunc("/wardrobe/item", corsMiddleware(api.AuthMiddleware(server.UpdateItemHandler)))
	http.HandleFunc("/wardrobe/item/photo", corsMiddleware(api.AuthMiddleware(server.ReplaceItemPhotoHandler)))
	http.HandleFunc("/wardrobe/analyze", corsMiddleware(api.AuthMiddleware(server.AnalyzeItemHandler)))
	http.HandleFunc("/wardrobe/remove-background", corsMiddleware(api.AuthMiddleware(server.RemoveBackgroundHandler)))

	// Outfit Routes
	http.HandleFunc("/outfits", corsMiddleware(api.AuthMiddleware(server.OutfitsHandler)))
	http.HandleFunc("/outfits/generate", corsMiddleware(api.AuthMiddleware(server.GenerateOutfitsHandler)))

	// Planner Routes
	http.HandleFunc("/planner", corsMiddleware(api.AuthMiddleware(server.PlannerHandler)))

	// Profile Routes
	http.HandleFunc("/profile", corsMiddleware(api.AuthMiddleware(server.ProfileHandler)))
	http.HandleFunc("/profile/notifications", corsMiddleware(api.AuthMiddleware(server.NotificationsHandler)))
	http.HandleFunc("/account", corsMiddleware(api.AuthMiddleware(server.DeleteAccountHandler)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
