package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"plantstore/internal/models"
	"plantstore/internal/services"
)

type UserHandler struct {
	userService *services.UserService
	cartService *services.CartService
	logger      zerolog.Logger
}

func NewUserHandler(userService *services.UserService, cartService *services.CartService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		cartService: cartService,
		logger:      logger,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.userService.GetByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cartService.Add(r.Context(), userID, item); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.AckResponse{Message: "plant added to cart"})
}

func (h *UserHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	cart, err := h.cartService.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, cart)
}

func (h *UserHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.cartService.Remove(r.Context(), vars["userId"], vars["plantId"]); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondWithJSON(w, http.StatusOK, models.AckResponse{Message: "item removed from cart"})
}
