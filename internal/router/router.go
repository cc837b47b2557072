package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"plantstore/internal/config"
	"plantstore/internal/db"
	"plantstore/internal/handlers"
	"plantstore/internal/middleware"
	"plantstore/internal/services"
)

// SetupRouter wires the Mongo-backed stores into the HTTP surface.
func SetupRouter(database *mongo.Database, cfg config.Config, logger zerolog.Logger) *mux.Router {
	return New(db.NewUsers(database), db.NewPlants(database), cfg, logger)
}

// New builds the router on top of any store implementations. Tests drive it
// with the in-memory stores.
func New(users services.UserStore, plants services.PlantStore, cfg config.Config, logger zerolog.Logger) *mux.Router {
	hasher := services.NewHasher(cfg.BcryptCost)
	userService := services.NewUserService(users, hasher, logger)
	authService := services.NewAuthService(cfg.JWTSecret, cfg.TokenTTL, logger)
	cartService := services.NewCartService(users, logger)
	plantService := services.NewPlantService(plants, logger)

	authHandler := handlers.NewAuthHandler(userService, authService, logger)
	userHandler := handlers.NewUserHandler(userService, cartService, logger)
	plantHandler := handlers.NewPlantHandler(plantService, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(50), 100)

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")

	authenticate := middleware.Authentication(authService, logger)

	account := api.PathPrefix("/user").Subrouter()
	account.Use(authenticate)
	account.HandleFunc("/{userId}", userHandler.GetUser).Methods("GET")
	account.HandleFunc("/{userId}/cart", userHandler.AddCartItem).Methods("PUT")
	account.HandleFunc("/{userId}/cart", userHandler.GetCart).Methods("GET")
	account.HandleFunc("/{userId}/cart/{plantId}", userHandler.RemoveCartItem).Methods("DELETE")

	catalog := api.PathPrefix("/plants").Subrouter()
	catalog.HandleFunc("", plantHandler.List).Methods("GET")
	catalog.HandleFunc("/featured", plantHandler.Featured).Methods("GET")
	catalog.HandleFunc("/indoor", plantHandler.Indoor).Methods("GET")
	catalog.HandleFunc("/edible", plantHandler.Edible).Methods("GET")
	catalog.HandleFunc("/search/{plantName}", plantHandler.SearchByName).Methods("GET")
	catalog.HandleFunc("/difficulty/{plantDifficulty}", plantHandler.ByDifficulty).Methods("GET")
	catalog.HandleFunc("/family/{familyName}", plantHandler.ByFamily).Methods("GET")
	catalog.HandleFunc("/scientific/{scientificName}", plantHandler.ByScientificName).Methods("GET")
	catalog.HandleFunc("/{id}", plantHandler.Get).Methods("GET")

	// catalog mutations require an admin token
	admin := api.PathPrefix("/plants").Subrouter()
	admin.Use(authenticate)
	admin.Use(middleware.RequireAdmin())
	admin.HandleFunc("", plantHandler.Create).Methods("POST")
	admin.HandleFunc("/{id}", plantHandler.Update).Methods("PUT")
	admin.HandleFunc("/{id}", plantHandler.Delete).Methods("DELETE")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
