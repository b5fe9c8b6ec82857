package catalog

import (
	"reflect"
	"strings"
	"testing"

	"recipe-chat/internal/core/match"
)

func TestHashSeedDeterministic(t *testing.T) {
	if HashSeed("kurczak z ryzem") != HashSeed("kurczak z ryzem") {
		t.Fatal("same prompt produced different seeds")
	}
	// Normalization happens before hashing.
	if HashSeed("  KURCZAK!  ") != HashSeed("kurczak") {
		t.Error("normalized-equal prompts produced different seeds")
	}
}

func TestPickFallbackDeterministic(t *testing.T) {
	first := PickFallback("cos na szybko", 2, nil)
	second := PickFallback("cos na szybko", 2, nil)
	if !reflect.DeepEqual(first, second) {
		t.Error("same prompt produced different fallback options")
	}
}

func TestPickFallbackCount(t *testing.T) {
	options := PickFallback("dowolne danie", 2, nil)
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].Title == options[1].Title {
		t.Error("duplicate titles in one pick")
	}
	for _, option := range options {
		if option.RecipeID != nil {
			t.Errorf("catalog option %q carries a recipe id", option.Title)
		}
	}
}

func TestPickFallbackPrefersScoredEntries(t *testing.T) {
	options := PickFallback("kurczak", 2, nil)
	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	for _, option := range options {
		if !strings.Contains(match.NormalizePhrase(option.Title), "kurczak") {
			t.Errorf("expected kurczak dishes first, got %q", option.Title)
		}
	}
}

func TestPickFallbackSkipsUsedTitles(t *testing.T) {
	first := PickFallback("zupa", 1, nil)
	if len(first) != 1 {
		t.Fatalf("expected 1 option, got %d", len(first))
	}

	second := PickFallback("zupa", 1, []string{first[0].Title})
	if len(second) != 1 {
		t.Fatalf("expected 1 option, got %d", len(second))
	}
	if second[0].Title == first[0].Title {
		t.Error("used title was picked again")
	}
}

func TestPickFallbackExhaustion(t *testing.T) {
	var used []string
	for _, entry := range Entries() {
		used = append(used, entry.Title)
	}
	if options := PickFallback("cokolwiek", 2, used); len(options) != 0 {
		t.Errorf("expected no options when every title is used, got %d", len(options))
	}
}
