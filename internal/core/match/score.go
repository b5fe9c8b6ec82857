package match

import (
	"strings"

	"recipe-chat/internal/storage"
)

// Scoring weights. Cumulative within a strategy; the two strategies are
// combined by max, never summed.
const (
	nameExactBonus     = 140
	nameSubstringBonus = 90
	nameTokenWeight    = 18
	nameCoverageBonus  = 24

	fieldTokenWeight    = 40
	fieldFullMatchBonus = 20
	fieldMostMatchBonus = 10

	coverageThreshold = 0.6
)

// ScoreName scores how closely a prompt matches a recipe name. Name matching
// intentionally uses raw (unstemmed) tokens for precision: a user typing a
// dish title tends to type it exactly.
func ScoreName(prompt, recipeName string) int {
	normalizedPrompt := NormalizePhrase(prompt)
	normalizedName := NormalizePhrase(recipeName)
	if normalizedPrompt == "" || normalizedName == "" {
		return 0
	}

	score := 0
	if normalizedPrompt == normalizedName {
		score += nameExactBonus
	}
	if (len(normalizedPrompt) >= 4 && strings.Contains(normalizedName, normalizedPrompt)) ||
		(len(normalizedName) >= 4 && strings.Contains(normalizedPrompt, normalizedName)) {
		score += nameSubstringBonus
	}

	promptTokens := filterRawTokens(normalizedPrompt)
	nameTokens := filterRawTokens(normalizedName)
	if len(promptTokens) == 0 || len(nameTokens) == 0 {
		return score
	}

	promptSet := make(map[string]struct{}, len(promptTokens))
	for _, token := range promptTokens {
		promptSet[token] = struct{}{}
	}

	overlap := 0
	for _, token := range nameTokens {
		if _, ok := promptSet[token]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return score
	}

	score += overlap * nameTokenWeight
	if float64(overlap)/float64(len(nameTokens)) >= coverageThreshold {
		score += nameCoverageBonus
	}
	return score
}

func filterRawTokens(normalized string) []string {
	var tokens []string
	for _, token := range strings.Split(normalized, " ") {
		if keepToken(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ScoreFields scores tokenized field overlap between a prompt and a recipe.
func ScoreFields(prompt string, recipe storage.Recipe) int {
	promptTokens := TokenizePrompt(prompt)
	if len(promptTokens) == 0 {
		return 0
	}

	recipeTokens := TokenizeRecipeFields(recipe)
	if len(recipeTokens) == 0 {
		return 0
	}

	matched := 0
	for _, promptToken := range promptTokens {
		for _, recipeToken := range recipeTokens {
			if LooselyMatch(promptToken, recipeToken) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}

	score := matched * fieldTokenWeight
	switch {
	case matched == len(promptTokens):
		score += fieldFullMatchBonus
	case float64(matched)/float64(len(promptTokens)) >= coverageThreshold:
		score += fieldMostMatchBonus
	}
	return score
}

// Score combines both strategies by taking the maximum. Name similarity
// rewards prompts that name a dish; field similarity rewards prompts that
// describe ingredients or mood. Max avoids double-counting when both agree.
func Score(prompt string, recipe storage.Recipe) int {
	nameScore := ScoreName(prompt, recipe.Name)
	fieldScore := ScoreFields(prompt, recipe)
	if nameScore > fieldScore {
		return nameScore
	}
	return fieldScore
}
