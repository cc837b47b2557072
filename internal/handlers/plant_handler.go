package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"plantstore/internal/models"
	"plantstore/internal/services"
)

type PlantHandler struct {
	plantService *services.PlantService
	logger       zerolog.Logger
}

func NewPlantHandler(plantService *services.PlantService, logger zerolog.Logger) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
		logger:       logger,
	}
}

func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, func(ctx context.Context) ([]models.Plant, error) {
		return h.plantService.All(ctx)
	})
}

func (h *PlantHandler) Featured(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.plantService.Featured)
}

func (h *PlantHandler) Indoor(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.plantService.Indoor)
}

func (h *PlantHandler) Edible(w http.ResponseWriter, r *http.Request) {
	h.respondList(w, r, h.plantService.Edible)
}

func (h *PlantHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["plantName"]
	h.respondList(w, r, func(ctx context.Context) ([]models.Plant, error) {
		return h.plantService.SearchByName(ctx, name)
	})
}

func (h *PlantHandler) ByDifficulty(w http.ResponseWriter, r *http.Request) {
	difficulty := mux.Vars(r)["plantDifficulty"]
	h.respondList(w, r, func(ctx context.Context) ([]models.Plant, error) {
		return h.plantService.ByDifficulty(ctx, difficulty)
	})
}

func (h *PlantHandler) ByFamily(w http.ResponseWriter, r *http.Request) {
	family := mux.Vars(r)["familyName"]
	h.respondList(w, r, func(ctx context.Context) ([]models.Plant, error) {
		return h.plantService.ByFamily(ctx, family)
	})
}

func (h *PlantHandler) ByScientificName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["scientificName"]
	h.respondList(w, r, func(ctx context.Context) ([]models.Plant, error) {
		return h.plantService.ByScientificName(ctx, name)
	})
}

func (h *PlantHandler) respondList(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]models.Plant, error)) {
	plants, err := fetch(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plants)
}

func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	plant, err := h.plantService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, plant)
}

func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var plant models.Plant
	if err := json.NewDecoder(r.Body).Decode(&plant); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.plantService.Create(r.Context(), &plant)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *PlantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.plantService.UpdateFields(r.Context(), mux.Vars(r)["id"], fields)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

func (h *PlantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.plantService.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.AckResponse{Message: "plant deleted successfully"})
}
