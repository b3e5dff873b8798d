// Package matching computes allergen warnings for a meal against a user's
// allergen profile. Everything here is a total function over plain data: no
// storage, no I/O, no error paths.
package matching

import "github.com/allersafe/backend/internal/models"

// Warning flags one allergen a meal shares with the user's profile.
type Warning struct {
	Allergen models.Allergen `json:"allergen"`
	Severity models.Severity `json:"severity"`
}

// Result is the full outcome for one meal. Overall is the maximum severity
// among the warnings, or SeverityNone when the meal triggers nothing.
type Result struct {
	Warnings []Warning       `json:"warnings"`
	Overall  models.Severity `json:"overall"`
}

// MatchMeal crosses the meal's embedded ingredient snapshot with the user's
// allergen profile. The allergen catalog supplies name and category for
// display only; ids the catalog cannot resolve are silently skipped, as are
// ids absent from the profile. Warning order follows the first occurrence of
// each allergen id across the ingredient list.
//
// The ingredient snapshot is taken as-is and never re-resolved against a live
// ingredient catalog.
func MatchMeal(meal models.Meal, profile []models.AllergenProfileEntry, catalog []models.Allergen) Result {
	severityByID := make(map[string]models.Severity, len(profile))
	for _, entry := range profile {
		severityByID[entry.AllergenID] = entry.Severity
	}

	allergenByID := make(map[string]models.Allergen, len(catalog))
	for _, a := range catalog {
		allergenByID[a.ID] = a
	}

	result := Result{Overall: models.SeverityNone}
	seen := make(map[string]bool)
	for _, ingredient := range meal.Ingredients {
		for _, id := range ingredient.AllergenIDs {
			if seen[id] {
				continue
			}
			seen[id] = true

			severity, inProfile := severityByID[id]
			if !inProfile {
				continue
			}
			allergen, known := allergenByID[id]
			if !known {
				continue
			}

			result.Warnings = append(result.Warnings, Warning{Allergen: allergen, Severity: severity})
			result.Overall = models.MaxSeverity(result.Overall, severity)
		}
	}
	return result
}
