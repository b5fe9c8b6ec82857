package catalog

import (
	"sort"

	"recipe-chat/internal/core/match"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

// HashSeed folds the normalized prompt into a rolling polynomial hash
// (hash*31 + char, wrapping at 32 bits). Pure and deterministic: the same
// prompt always yields the same seed, giving reproducible "random" catalog
// ordering without any RNG state.
func HashSeed(prompt string) uint32 {
	text := match.NormalizePhrase(prompt)
	var hash uint32
	for _, r := range text {
		hash = hash*31 + uint32(r)
	}
	return hash
}

func scoreEntry(prompt string, entry Entry) int {
	return match.Score(prompt, storage.Recipe{
		Name:        entry.Title,
		Ingredients: entry.Ingredients,
		Tags:        entry.Tags,
	})
}

// Option maps a catalog entry to the Option shape (never database-backed).
func (e Entry) Option() common.Option {
	return common.Option{
		RecipeID:     nil,
		Title:        e.Title,
		Why:          e.Why,
		Ingredients:  e.Ingredients,
		Instructions: e.Instructions,
		Time:         e.Time,
	}.Normalized()
}

// PickFallback selects up to limit catalog entries for the prompt: scored by
// the combined matcher, ties broken by (seed+index) mod catalog size, with
// entries whose normalized title is already chosen skipped.
func PickFallback(prompt string, limit int, alreadyChosenTitles []string) []common.Option {
	seed := HashSeed(prompt)
	size := uint32(len(entries))

	used := make(map[string]struct{}, len(alreadyChosenTitles))
	for _, title := range alreadyChosenTitles {
		if key := match.NormalizePhrase(title); key != "" {
			used[key] = struct{}{}
		}
	}

	type ranked struct {
		entry      Entry
		score      int
		tieBreaker uint32
	}
	rankedEntries := make([]ranked, 0, len(entries))
	for index, entry := range entries {
		rankedEntries = append(rankedEntries, ranked{
			entry:      entry,
			score:      scoreEntry(prompt, entry),
			tieBreaker: (seed + uint32(index)) % size,
		})
	}
	sort.SliceStable(rankedEntries, func(i, j int) bool {
		if rankedEntries[i].score != rankedEntries[j].score {
			return rankedEntries[i].score > rankedEntries[j].score
		}
		return rankedEntries[i].tieBreaker < rankedEntries[j].tieBreaker
	})

	var options []common.Option
	for _, row := range rankedEntries {
		if len(options) >= limit {
			break
		}
		key := match.NormalizePhrase(row.entry.Title)
		if _, skip := used[key]; skip {
			continue
		}
		used[key] = struct{}{}
		options = append(options, row.entry.Option())
	}
	return options
}
