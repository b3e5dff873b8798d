package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/models"
	"github.com/allersafe/backend/internal/state"
)

// ProfileService is the per-user ledger: allergen profile, dietary
// preferences, favorites and ratings. Each user's state lives under one
// storage key and is loaded lazily the first time that user is touched.
type ProfileService struct {
	store kvstore.Store

	mu     sync.Mutex
	states map[string]*state.Value[models.UserState]
}

// NewProfileService creates the ledger over the given backing store.
func NewProfileService(store kvstore.Store) *ProfileService {
	return &ProfileService{
		store:  store,
		states: make(map[string]*state.Value[models.UserState]),
	}
}

func (s *ProfileService) stateFor(userID string) *state.Value[models.UserState] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.states[userID]; ok {
		return v
	}
	key := fmt.Sprintf("allersafe:user:%s", userID)
	v := state.NewWithDefault(s.store, key, models.UserState{})
	s.states[userID] = v
	return v
}

// State returns the user's current ledger state.
func (s *ProfileService) State(userID string) models.UserState {
	return s.stateFor(userID).Get()
}

// SetAllergenSeverity upserts the user's severity for one allergen; a nil
// severity removes the entry. Severity validity is a caller precondition,
// checked at the HTTP boundary.
func (s *ProfileService) SetAllergenSeverity(userID, allergenID string, severity *models.Severity) models.UserState {
	return s.stateFor(userID).Update(func(st models.UserState) models.UserState {
		entries := st.AllergenProfile[:0:0]
		for _, e := range st.AllergenProfile {
			if e.AllergenID != allergenID {
				entries = append(entries, e)
			}
		}
		if severity != nil {
			entries = append(entries, models.AllergenProfileEntry{AllergenID: allergenID, Severity: *severity})
		}
		st.AllergenProfile = entries
		return st
	})
}

// ToggleDietaryPreference flips membership of one preference tag.
func (s *ProfileService) ToggleDietaryPreference(userID, preference string) models.UserState {
	return s.stateFor(userID).Update(func(st models.UserState) models.UserState {
		st.DietaryPreferences = toggle(st.DietaryPreferences, preference)
		return st
	})
}

// ToggleFavorite flips membership of one meal id in the user's favorite set.
// The meal need not exist in the catalog; a favorite that later disappears is
// simply unrenderable, not an error.
func (s *ProfileService) ToggleFavorite(userID, mealID string) models.UserState {
	return s.stateFor(userID).Update(func(st models.UserState) models.UserState {
		st.Favorites = toggle(st.Favorites, mealID)
		return st
	})
}

// IsFavorite reports whether the meal is in the user's favorite set.
func (s *ProfileService) IsFavorite(userID, mealID string) bool {
	for _, id := range s.State(userID).Favorites {
		if id == mealID {
			return true
		}
	}
	return false
}

// SubmitRating records the user's rating for one meal, replacing any prior
// entry for that meal and stamping the current time. Value must be in 1..5;
// the HTTP boundary enforces this precondition.
func (s *ProfileService) SubmitRating(userID, mealID string, value int, review string) models.Rating {
	rating := models.Rating{
		MealID:    mealID,
		Value:     value,
		Review:    review,
		CreatedAt: time.Now(),
	}
	s.stateFor(userID).Update(func(st models.UserState) models.UserState {
		kept := st.Ratings[:0:0]
		for _, r := range st.Ratings {
			if r.MealID != mealID {
				kept = append(kept, r)
			}
		}
		st.Ratings = append(kept, rating)
		return st
	})
	return rating
}

// GetRating returns the user's rating for one meal, if any. At most one
// exists by construction.
func (s *ProfileService) GetRating(userID, mealID string) (models.Rating, bool) {
	for _, r := range s.State(userID).Ratings {
		if r.MealID == mealID {
			return r, true
		}
	}
	return models.Rating{}, false
}

func toggle(set []string, member string) []string {
	for i, v := range set {
		if v == member {
			return append(append([]string(nil), set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]string(nil), set...), member)
}
