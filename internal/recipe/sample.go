package recipe

// Sample returns the fixed recipe served in mock mode, when no AI
// provider credential is configured.
func Sample() *Recipe {
	return &Recipe{
		Title:     "Simple Garlic Pasta",
		Servings:  2,
		TotalTime: "20 mins",
		Tags:      []string{"vegetarian", "quick"},
		Ingredients: []Ingredient{
			{Name: "spaghetti", Quantity: "200g", Icon: "pasta"},
			{Name: "garlic cloves", Quantity: "3", Icon: "garlic"},
			{Name: "olive oil", Quantity: "2 tbsp", Icon: "oil"},
			{Name: "parmesan", Quantity: "to taste", Icon: "cheese"},
			{Name: "salt", Quantity: "to taste", Icon: "salt"},
		},
		Steps: []Step{
			{
				ID:          1,
				Title:       "Boil pasta",
				Description: "Cook spaghetti in salted boiling water until al dente (8-10 mins).",
			},
			{
				ID:          2,
				Title:       "Prep garlic",
				Description: "Thinly slice garlic cloves.",
				Ingredients: []string{"garlic cloves"},
			},
			{
				ID:          3,
				Title:       "Sizzle garlic",
				Description: "Heat olive oil in a pan, add garlic and cook until fragrant and lightly golden.",
				Ingredients: []string{"olive oil", "garlic cloves"},
			},
			{
				ID:          4,
				Title:       "Combine",
				Description: "Toss drained pasta with oil and garlic, top with parmesan and serve.",
				Ingredients: []string{"spaghetti", "parmesan"},
			},
		},
		Notes: "A super-fast, tasty dish. Add chili flakes for heat.",
	}
}

// SampleSuggestions returns the fixed suggestion list served in mock mode.
func SampleSuggestions() []string {
	return []string{
		"Classic Pasta Carbonara",
		"Creamy Mushroom Pasta",
		"Spicy Arrabbiata Pasta",
		"Pesto Pasta with Cherry Tomatoes",
		"Garlic Butter Pasta with Shrimp",
	}
}
