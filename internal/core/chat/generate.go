package chat

import (
	"context"
	"fmt"

	"recipe-chat/internal/core/ai/groq"
	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

// GenerateResult is the ingredient-based generation response: the raw recipe
// text plus the record persisted from it.
type GenerateResult struct {
	Text   string          `json:"przepis"`
	Recipe *storage.Recipe `json:"recipe"`
}

// GenerateFromIngredients asks the model for a free-form recipe built from
// the supplied ingredients and persists it as a new store record.
func (s *Service) GenerateFromIngredients(ctx context.Context, ingredients string) (*GenerateResult, error) {
	ingredients = common.SafeString(ingredients)
	if ingredients == "" {
		return nil, common.NewValidationError("Wpisz najpierw jakies skladniki.")
	}

	messages := []common.ChatTurn{
		{Role: "system", Content: "Jestes Szefem Kuchni. Podaj konkretny przepis na podstawie skladnikow."},
		{Role: "user", Content: fmt.Sprintf("Mam te skladniki: %s. Co moge z nich zrobic? Podaj tytul i opis wykonania.", ingredients)},
	}

	content, err := s.completer.Complete(ctx, messages, groq.Options{})
	if err != nil {
		return nil, err
	}

	recipe, err := s.store.CreateRecipe(storage.RecipeFields{
		Name:         fmt.Sprintf("Przepis z: %s...", common.Truncate(ingredients, 30)),
		Ingredients:  ingredients,
		Instructions: content,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Text: content, Recipe: recipe}, nil
}
