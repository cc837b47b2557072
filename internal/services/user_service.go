package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/apperr"
	"plantstore/internal/models"
)

type UserService struct {
	store  UserStore
	hasher Hasher
	logger zerolog.Logger
}

func NewUserService(store UserStore, hasher Hasher, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a user with an empty cart. The username lookup is a fast
// path; the unique index on username is what actually prevents duplicates
// when two registrations race.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.PublicUser, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.ErrValidation
	}

	_, err := s.store.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperr.ErrAlreadyExists
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		s.logger.Error().Err(err).Msg("Error checking existing user")
		return nil, fmt.Errorf("checking existing user: %w", err)
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: digest,
		Admin:        req.Admin,
		Cart:         []models.CartItem{},
	}
	id, err := s.store.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return nil, apperr.ErrAlreadyExists
		}
		s.logger.Error().Err(err).Msg("Error creating user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info().Str("user_id", id.Hex()).Str("username", user.Username).Msg("User registered")
	return &models.PublicUser{Username: user.Username, Admin: user.Admin}, nil
}

// Authenticate verifies credentials. Unknown username and wrong password
// collapse into the same error so responses cannot enumerate usernames.
func (s *UserService) Authenticate(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.ErrInvalidCredentials
	}

	user, err := s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Error querying user")
		return nil, fmt.Errorf("querying user: %w", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.logger.Warn().Str("username", req.Username).Msg("Failed authentication attempt")
		return nil, apperr.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID returns the user without password material.
func (s *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.ErrInvalidID
	}
	return s.store.FindByID(ctx, id)
}
