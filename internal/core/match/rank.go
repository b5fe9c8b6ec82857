package match

import (
	"sort"

	"recipe-chat/internal/storage"
)

// StrongMatchMinScore is the canonical threshold above which a recipe counts
// as a strong match for a prompt.
const StrongMatchMinScore = 36

type scoredRecipe struct {
	recipe storage.Recipe
	score  int
}

func rankBy(recipes []storage.Recipe, excluded map[int]struct{}, limit, minScore int,
	scoreFn func(storage.Recipe) int) []storage.Recipe {

	var scored []scoredRecipe
	for _, recipe := range recipes {
		if _, skip := excluded[recipe.ID]; skip {
			continue
		}
		score := scoreFn(recipe)
		if score < minScore {
			continue
		}
		scored = append(scored, scoredRecipe{recipe: recipe, score: score})
	}

	// Ties break toward the higher id: newer recipes win. Arbitrary but
	// deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].recipe.ID > scored[j].recipe.ID
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	out := make([]storage.Recipe, 0, len(scored))
	for _, item := range scored {
		out = append(out, item.recipe)
	}
	return out
}

// RankMatches scores every non-excluded recipe against the prompt with the
// combined scorer and returns the top entries at or above minScore.
func RankMatches(prompt string, recipes []storage.Recipe, excluded map[int]struct{}, limit, minScore int) []storage.Recipe {
	if NormalizePhrase(prompt) == "" {
		return nil
	}
	return rankBy(recipes, excluded, limit, minScore, func(r storage.Recipe) int {
		return Score(prompt, r)
	})
}

// FindRequiredNameMatch returns the single recipe whose name most closely
// matches the prompt, if any scores at least StrongMatchMinScore by name
// similarity alone. The synthesizer treats this result as mandatory.
func FindRequiredNameMatch(prompt string, recipes []storage.Recipe, excluded map[int]struct{}) *storage.Recipe {
	matches := rankBy(recipes, excluded, 1, StrongMatchMinScore, func(r storage.Recipe) int {
		return ScoreName(prompt, r.Name)
	})
	if len(matches) == 0 {
		return nil
	}
	out := matches[0]
	return &out
}
