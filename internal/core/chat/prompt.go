package chat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"recipe-chat/internal/pkg/common"
	"recipe-chat/internal/storage"
)

// historyLimit caps the rolling history forwarded to the model.
const historyLimit = 6

// dbContextLimit caps the number of recipe rows in the model context.
const dbContextLimit = 80

const systemPrompt = `Jestes doswiadczonym Szefem Kuchni. Odpowiadasz zawsze po polsku i tylko poprawnym JSON.
WAZNE:
1) Generujesz DOKLADNIE 2 rozne propozycje.
2) Jesli WYMAGANE_DB_ID nie jest "brak" (wykryta podobna nazwa przepisu/dania), jedna opcja MUSI miec ten recipe_id.
3) Jesli WYMAGANE_DB_ID to "brak", nie wymuszaj recipe_id z bazy.
4) Gdy brak sensownego dopasowania, podawaj propozycje oparte o prawdziwe, znane przepisy (internet/klasyka).
5) Dla recipe_id podawaj nazwe, czas, streszczenie, liste skladnikow i instrukcje.

Format JSON:
{
  "assistant_text": "Krotka odpowiedz dla uzytkownika",
  "options": [
    {
      "recipe_id": 123,
      "title": "Nazwa dania",
      "why": "Zachecajace streszczenie",
      "ingredients": "Lista skladnikow",
      "instructions": "Przygotowanie krok po kroku",
      "time": "Czas przygotowania"
    },
    {
      "recipe_id": null,
      "title": "Nazwa dania",
      "why": "Zachecajace streszczenie",
      "ingredients": "Lista skladnikow",
      "instructions": "Przygotowanie krok po kroku",
      "time": "Czas przygotowania"
    }
  ]
}`

// normalizeHistory keeps the most recent valid turns, capped at historyLimit.
func normalizeHistory(history []common.ChatTurn) []common.ChatTurn {
	var valid []common.ChatTurn
	for _, turn := range history {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		valid = append(valid, turn)
	}
	if len(valid) > historyLimit {
		valid = valid[len(valid)-historyLimit:]
	}
	return valid
}

// buildDBContext renders a compact textual digest of the allowed recipes.
func buildDBContext(recipes []storage.Recipe) string {
	if len(recipes) == 0 {
		return "Brak przepisow w bazie."
	}

	if len(recipes) > dbContextLimit {
		recipes = recipes[:dbContextLimit]
	}

	lines := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		czas := recipe.PrepTime
		if czas == "" {
			czas = "brak"
		}
		tagi := recipe.Tags
		if tagi == "" {
			tagi = "-"
		}
		lines = append(lines, fmt.Sprintf(
			"ID:%d | Nazwa:%s | Czas:%s | Tagi:%s | Skladniki:%s | Opis:%s",
			recipe.ID, recipe.Name, czas, tagi,
			common.Truncate(common.SafeString(recipe.Ingredients), 240),
			common.Truncate(common.SafeString(recipe.Instructions), 180),
		))
	}
	return strings.Join(lines, "\n")
}

func joinIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// buildMessages assembles the completion request: system instruction,
// rolling history and a user turn carrying the prompt plus the database
// digest and id constraints.
func buildMessages(prompt string, history []common.ChatTurn, available []storage.Recipe,
	required *storage.Recipe, allowedIDs map[int]struct{}, hasDBMatch bool, excludedIDs []int) []common.ChatTurn {

	messages := make([]common.ChatTurn, 0, historyLimit+2)
	messages = append(messages, common.ChatTurn{Role: "system", Content: systemPrompt})
	messages = append(messages, normalizeHistory(history)...)

	requiredTxt := "brak"
	if required != nil {
		requiredTxt = fmt.Sprintf("%d (%s)", required.ID, required.Name)
	}

	allowedTxt := "(brak)"
	if len(allowedIDs) > 0 {
		var ids []int
		// Preserve the collection's id-descending order for a stable digest.
		for _, recipe := range available {
			if _, ok := allowedIDs[recipe.ID]; ok {
				ids = append(ids, recipe.ID)
			}
		}
		allowedTxt = joinIDs(ids)
	}

	excludedTxt := "(brak)"
	if len(excludedIDs) > 0 {
		excludedTxt = joinIDs(excludedIDs)
	}

	dbContext := "Brak dopasowanych przepisow z bazy do tego zapytania."
	if hasDBMatch {
		var allowed []storage.Recipe
		for _, recipe := range available {
			if _, ok := allowedIDs[recipe.ID]; ok {
				allowed = append(allowed, recipe)
			}
		}
		dbContext = buildDBContext(allowed)
	}

	hasMatchTxt := "nie"
	if hasDBMatch {
		hasMatchTxt = "tak"
	}

	messages = append(messages, common.ChatTurn{
		Role: "user",
		Content: fmt.Sprintf(
			"Pytanie uzytkownika: %s\nWYMAGANE_DB_ID: %s\nDOZWOLONE_DB_ID: %s\nCZY_JEST_DOPASOWANIE_Z_BAZY: %s\nKontekst bazy:\n%s\nOdrzucone ID: %s",
			prompt, requiredTxt, allowedTxt, hasMatchTxt, dbContext, excludedTxt,
		),
	})

	return messages
}

// looseOption tolerates the shapes models actually emit: recipe_id may be a
// number, a quoted number or null.
type looseOption struct {
	RecipeID     json.RawMessage `json:"recipe_id"`
	Title        string          `json:"title"`
	Why          string          `json:"why"`
	Ingredients  string          `json:"ingredients"`
	Instructions string          `json:"instructions"`
	Time         string          `json:"time"`
	VideoLink    string          `json:"link_filmu"`
	PageLink     string          `json:"link_strony"`
}

func (o looseOption) normalized() common.Option {
	return common.Option{
		RecipeID:     parseRecipeID(o.RecipeID),
		Title:        o.Title,
		Why:          o.Why,
		Ingredients:  o.Ingredients,
		Instructions: o.Instructions,
		Time:         o.Time,
		VideoLink:    o.VideoLink,
		PageLink:     o.PageLink,
	}.Normalized()
}

func parseRecipeID(raw json.RawMessage) *int {
	text := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if text == "" || text == "null" {
		return nil
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &id
}

// parseModelOutput parses the completion into option candidates. Malformed
// output is repaired where possible and otherwise degrades to an empty list;
// the backfill chain takes over from there.
func parseModelOutput(raw string) []looseOption {
	var parsed struct {
		AssistantText string        `json:"assistant_text"`
		Options       []looseOption `json:"options"`
	}
	if err := common.ParseJSONLoose(raw, &parsed); err != nil {
		return nil
	}
	return parsed.Options
}
