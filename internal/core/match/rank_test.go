package match

import (
	"testing"

	"recipe-chat/internal/storage"
)

func testRecipes() []storage.Recipe {
	return []storage.Recipe{
		{ID: 1, Name: "Kurczak curry", Ingredients: "kurczak, mleko kokosowe, curry"},
		{ID: 2, Name: "Kurczak teriyaki", Ingredients: "kurczak, sos sojowy, ryz"},
		{ID: 3, Name: "Zupa pomidorowa", Ingredients: "pomidory, makaron"},
		{ID: 4, Name: "Gulasz wolowy", Ingredients: "wolowina, cebula, papryka"},
	}
}

func TestRankMatchesOrdersByScore(t *testing.T) {
	got := RankMatches("kurczak curry", testRecipes(), nil, 4, StrongMatchMinScore)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 matches, got %d", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("top match id = %d, want 1 (exact name)", got[0].ID)
	}
	for _, recipe := range got {
		if recipe.ID == 3 || recipe.ID == 4 {
			t.Errorf("unrelated recipe %d ranked as a match", recipe.ID)
		}
	}
}

func TestRankMatchesLimit(t *testing.T) {
	got := RankMatches("kurczak", testRecipes(), nil, 1, StrongMatchMinScore)
	if len(got) != 1 {
		t.Fatalf("limit 1 returned %d results", len(got))
	}
}

func TestRankMatchesExclusion(t *testing.T) {
	excluded := map[int]struct{}{1: {}}
	got := RankMatches("kurczak curry", testRecipes(), excluded, 4, StrongMatchMinScore)
	for _, recipe := range got {
		if recipe.ID == 1 {
			t.Fatal("excluded recipe returned")
		}
	}
}

func TestRankMatchesTieBreakPrefersNewer(t *testing.T) {
	recipes := []storage.Recipe{
		{ID: 7, Name: "Leczo", Ingredients: "papryka, cukinia"},
		{ID: 9, Name: "Leczo", Ingredients: "papryka, cukinia"},
	}
	got := RankMatches("leczo", recipes, nil, 2, StrongMatchMinScore)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != 9 || got[1].ID != 7 {
		t.Errorf("tie-break order = [%d, %d], want [9, 7]", got[0].ID, got[1].ID)
	}
}

func TestRankMatchesEmptyPrompt(t *testing.T) {
	if got := RankMatches("  !! ", testRecipes(), nil, 4, 0); got != nil {
		t.Errorf("expected nil for empty prompt, got %v", got)
	}
}

func TestFindRequiredNameMatch(t *testing.T) {
	required := FindRequiredNameMatch("zupa pomidorowa", testRecipes(), nil)
	if required == nil {
		t.Fatal("expected a required match for the exact dish name")
	}
	if required.ID != 3 {
		t.Errorf("required match id = %d, want 3", required.ID)
	}
}

func TestFindRequiredNameMatchIgnoresIngredientOverlap(t *testing.T) {
	// "wolowina" only appears in ingredients; name similarity alone must
	// not cross the threshold.
	if required := FindRequiredNameMatch("wolowina", testRecipes(), nil); required != nil {
		t.Errorf("unexpected required match: %+v", required)
	}
}

func TestFindRequiredNameMatchRespectsExclusion(t *testing.T) {
	excluded := map[int]struct{}{3: {}}
	if required := FindRequiredNameMatch("zupa pomidorowa", testRecipes(), excluded); required != nil {
		t.Errorf("excluded recipe returned as required match: %+v", required)
	}
}
