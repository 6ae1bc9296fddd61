package recipe

import "strings"

// IconVocabulary is the closed set of icon tokens the system prompt
// allows the model to use for ingredients.
var IconVocabulary = []string{
	"pasta", "garlic", "oil", "cheese", "salt", "pepper",
	"tomato", "onion", "carrot", "potato", "chicken", "beef",
	"fish", "egg", "milk", "butter", "flour", "sugar",
	"water", "lemon", "herbs", "spices",
}

var iconSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(IconVocabulary))
	for _, icon := range IconVocabulary {
		set[icon] = struct{}{}
	}
	return set
}()

// KnownIcon reports whether the token is part of the vocabulary.
// Callers render unknown tokens with a generic fallback.
func KnownIcon(name string) bool {
	_, ok := iconSet[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// IconList returns the vocabulary as a comma-separated string for
// embedding into the system prompt.
func IconList() string {
	return strings.Join(IconVocabulary, ", ")
}
