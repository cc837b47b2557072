package db

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"plantstore/internal/apperr"
	"plantstore/internal/models"
)

// MemoryUsers is an in-memory user store with the same semantics as the Mongo
// one. Used by tests and useful for local runs without a database.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[primitive.ObjectID]*models.User)}
}

func (s *MemoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *MemoryUsers) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return primitive.NilObjectID, apperr.ErrAlreadyExists
		}
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	if stored.Cart == nil {
		stored.Cart = []models.CartItem{}
	}
	s.users[stored.ID] = &stored
	return stored.ID, nil
}

func (s *MemoryUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *u
	out.PasswordHash = ""
	return &out, nil
}

func (s *MemoryUsers) PushCartItem(_ context.Context, id primitive.ObjectID, item models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperr.ErrNotFound
	}
	u.Cart = append(u.Cart, item)
	return nil
}

func (s *MemoryUsers) PullCartItem(_ context.Context, id primitive.ObjectID, plantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return apperr.ErrNotFound
	}
	kept := u.Cart[:0]
	for _, item := range u.Cart {
		if pid, ok := item.PlantID(); ok && pid == plantID {
			continue
		}
		kept = append(kept, item)
	}
	u.Cart = kept
	return nil
}

func (s *MemoryUsers) GetCart(_ context.Context, id primitive.ObjectID) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := make([]models.CartItem, len(u.Cart))
	copy(out, u.Cart)
	return out, nil
}

// MemoryPlants is the in-memory counterpart of the Mongo catalog store.
type MemoryPlants struct {
	mu     sync.RWMutex
	plants map[primitive.ObjectID]*models.Plant
}

func NewMemoryPlants() *MemoryPlants {
	return &MemoryPlants{plants: make(map[primitive.ObjectID]*models.Plant)}
}

func (s *MemoryPlants) All(_ context.Context) ([]models.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Plant{}
	for _, p := range s.plants {
		out = append(out, *p)
	}
	return out, nil
}

func (s *MemoryPlants) FindByField(_ context.Context, field string, value interface{}) ([]models.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Plant{}
	for _, p := range s.plants {
		if plantField(p, field) == value {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *MemoryPlants) SearchByName(_ context.Context, name string) ([]models.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Plant{}
	for _, p := range s.plants {
		if strings.Contains(strings.ToLower(p.PlantName), strings.ToLower(name)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *MemoryPlants) FindByID(_ context.Context, id primitive.ObjectID) (*models.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plants[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (s *MemoryPlants) Insert(_ context.Context, plant *models.Plant) (*models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *plant
	stored.ID = primitive.NewObjectID()
	s.plants[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *MemoryPlants) Update(_ context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Plant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.plants[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	for k, v := range fields {
		setPlantField(p, k, v)
	}
	out := *p
	return &out, nil
}

func (s *MemoryPlants) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.plants[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(s.plants, id)
	return nil
}

func plantField(p *models.Plant, field string) interface{} {
	switch field {
	case "featured":
		return p.Featured
	case "indoor":
		return p.Indoor
	case "edible":
		return p.Edible
	case "difficulty":
		return p.Difficulty
	case "family_name":
		return p.FamilyName
	case "scientific_name":
		return p.ScientificName
	case "plant_name":
		return p.PlantName
	default:
		return nil
	}
}

func setPlantField(p *models.Plant, field string, value interface{}) {
	switch field {
	case "plant_name":
		if v, ok := value.(string); ok {
			p.PlantName = v
		}
	case "scientific_name":
		if v, ok := value.(string); ok {
			p.ScientificName = v
		}
	case "family_name":
		if v, ok := value.(string); ok {
			p.FamilyName = v
		}
	case "difficulty":
		if v, ok := value.(string); ok {
			p.Difficulty = v
		}
	case "description":
		if v, ok := value.(string); ok {
			p.Description = v
		}
	case "image_url":
		if v, ok := value.(string); ok {
			p.ImageURL = v
		}
	case "featured":
		if v, ok := value.(bool); ok {
			p.Featured = v
		}
	case "indoor":
		if v, ok := value.(bool); ok {
			p.Indoor = v
		}
	case "edible":
		if v, ok := value.(bool); ok {
			p.Edible = v
		}
	}
}
