package models

import "time"

// AllergenProfileEntry links one allergen id to the user's severity for it.
// A user holds at most one entry per allergen id (upsert semantics).
type AllergenProfileEntry struct {
	AllergenID string   `json:"allergenId"`
	Severity   Severity `json:"severity"`
}

// Rating is a user's review of one meal. At most one per (user, meal);
// resubmission replaces the prior entry.
type Rating struct {
	MealID    string    `json:"mealId"`
	Value     int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"date"`
}

// UserState is everything persisted per user: allergen profile, dietary
// preference tags, favorite meal ids and meal ratings. It lives under a
// single storage key so a session loads it in one read.
type UserState struct {
	AllergenProfile    []AllergenProfileEntry `json:"allergenProfile"`
	DietaryPreferences []string               `json:"dietaryPreferences"`
	Favorites          []string               `json:"favorites"`
	Ratings            []Rating               `json:"ratings"`
}
