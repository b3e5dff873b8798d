package matching

// substitutionHints maps allergen names to canned substitution advice.
// Keyed by name, not id, so admin-created duplicates of well-known allergens
// pick up the same hint. Extending the table never touches MatchMeal.
var substitutionHints = map[string]string{
	"Milk":    "Try almond or oat milk as substitute",
	"Wheat":   "Look for gluten-free alternatives",
	"Gluten":  "Look for gluten-free alternatives",
	"Peanuts": "Sunflower seed butter works as substitute",
	"Eggs":    "Consider flax eggs or egg replacer",
}

// SuggestSubstitutions returns one hint per triggered allergen that has a
// table entry, in warning order. Unmapped allergen names contribute nothing.
func SuggestSubstitutions(result Result) []string {
	var suggestions []string
	for _, w := range result.Warnings {
		if hint, ok := substitutionHints[w.Allergen.Name]; ok {
			suggestions = append(suggestions, hint)
		}
	}
	return suggestions
}
