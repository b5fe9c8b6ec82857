package common

// ChatTurn is one turn of the rolling chat history.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Option is one of the exactly-two dish suggestions returned per chat turn.
// A nil RecipeID means the option is not database-backed. JSON field names
// follow the wire format of the deployed product.
type Option struct {
	RecipeID     *int   `json:"recipe_id"`
	Title        string `json:"title"`
	Why          string `json:"why"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Time         string `json:"time"`
	VideoLink    string `json:"link_filmu,omitempty"`
	PageLink     string `json:"link_strony,omitempty"`
}

// Normalized returns a copy with trimmed fields and non-empty placeholders
// for title, ingredients, instructions and time.
func (o Option) Normalized() Option {
	out := Option{
		RecipeID:     o.RecipeID,
		Title:        SafeString(o.Title),
		Why:          SafeString(o.Why),
		Ingredients:  SafeString(o.Ingredients),
		Instructions: SafeString(o.Instructions),
		Time:         SafeString(o.Time),
		VideoLink:    SafeLink(o.VideoLink),
		PageLink:     SafeLink(o.PageLink),
	}
	if out.Title == "" {
		out.Title = "Danie"
	}
	if out.Ingredients == "" {
		out.Ingredients = "AI nie podalo dokladnych skladnikow."
	}
	if out.Instructions == "" {
		out.Instructions = "AI nie podalo instrukcji. Sprobuj dopytac na czacie."
	}
	if out.Time == "" {
		out.Time = "Brak danych"
	}
	return out
}
