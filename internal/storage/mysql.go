package storage

import (
	"database/sql"
	"fmt"
	"time"

	"recipe-chat/internal/infrastructure/config"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore persists recipes and feedback in MySQL.
type MySQLStore struct {
	db    *sql.DB
	table string
}

// NewMySQLStore opens a pooled connection and ensures the schema exists.
func NewMySQLStore(cfg config.StorageConfig) (*MySQLStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(60 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	s := &MySQLStore{
		db:    db,
		table: safeIdentifier(cfg.DBTable, "recipes"),
	}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) ensureSchema() error {
	createRecipes := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS `+"`%s`"+` (
			id INT NOT NULL AUTO_INCREMENT,
			nazwa VARCHAR(255) NOT NULL,
			czas VARCHAR(255) NOT NULL DEFAULT '',
			skladniki TEXT NOT NULL,
			opis TEXT NOT NULL,
			tagi VARCHAR(512) NOT NULL DEFAULT '',
			link_filmu VARCHAR(1024) NOT NULL DEFAULT '',
			link_strony VARCHAR(1024) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, s.table)
	if _, err := s.db.Exec(createRecipes); err != nil {
		return fmt.Errorf("failed to create recipes table: %w", err)
	}

	createFeedback := `
		CREATE TABLE IF NOT EXISTS feedback (
			id INT NOT NULL AUTO_INCREMENT,
			ts VARCHAR(64) NOT NULL DEFAULT '',
			user_text TEXT NOT NULL,
			option1_title VARCHAR(255) NOT NULL DEFAULT '',
			option1_recipe_id INT NULL,
			option2_title VARCHAR(255) NOT NULL DEFAULT '',
			option2_recipe_id INT NULL,
			action VARCHAR(32) NOT NULL DEFAULT '',
			chosen_index INT NULL,
			follow_up_answer TEXT NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	if _, err := s.db.Exec(createFeedback); err != nil {
		return fmt.Errorf("failed to create feedback table: %w", err)
	}
	return nil
}

const recipeColumns = "id, nazwa, skladniki, opis, czas, tagi, link_filmu, link_strony"

func scanRecipe(row interface{ Scan(...interface{}) error }) (*Recipe, error) {
	var r Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Ingredients, &r.Instructions,
		&r.PrepTime, &r.Tags, &r.VideoLink, &r.PageLink)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRecipes returns all recipes ordered by descending id.
func (s *MySQLStore) ListRecipes() ([]Recipe, error) {
	query := fmt.Sprintf("SELECT %s FROM `%s` ORDER BY id DESC", recipeColumns, s.table)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var out []Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// GetRecipe returns the recipe with the given id, or ErrRecipeNotFound.
func (s *MySQLStore) GetRecipe(id int) (*Recipe, error) {
	query := fmt.Sprintf("SELECT %s FROM `%s` WHERE id = ? LIMIT 1", recipeColumns, s.table)
	r, err := scanRecipe(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return r, nil
}

// CreateRecipe inserts a new recipe and returns it with its assigned id.
func (s *MySQLStore) CreateRecipe(fields RecipeFields) (*Recipe, error) {
	f := fields.Normalize()
	query := fmt.Sprintf(
		"INSERT INTO `%s` (nazwa, czas, skladniki, opis, tagi, link_filmu, link_strony) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.table)
	res, err := s.db.Exec(query, f.Name, f.PrepTime, f.Ingredients, f.Instructions,
		f.Tags, f.VideoLink, f.PageLink)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert id: %w", err)
	}
	recipe := recipeFrom(int(id), f)
	return &recipe, nil
}

// UpdateRecipe replaces the mutable fields of an existing recipe.
func (s *MySQLStore) UpdateRecipe(id int, fields RecipeFields) (*Recipe, error) {
	f := fields.Normalize()
	query := fmt.Sprintf(
		"UPDATE `%s` SET nazwa = ?, czas = ?, skladniki = ?, opis = ?, tagi = ?, link_filmu = ?, link_strony = ? WHERE id = ?",
		s.table)
	if _, err := s.db.Exec(query, f.Name, f.PrepTime, f.Ingredients, f.Instructions,
		f.Tags, f.VideoLink, f.PageLink, id); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	// RowsAffected is 0 both for a missing id and for a no-op update, so
	// existence is confirmed by reading the row back.
	return s.GetRecipe(id)
}

// DeleteRecipe removes a recipe; ids are never reused (AUTO_INCREMENT).
func (s *MySQLStore) DeleteRecipe(id int) (bool, error) {
	query := fmt.Sprintf("DELETE FROM `%s` WHERE id = ?", s.table)
	res, err := s.db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// CountRecipes returns the number of stored recipes.
func (s *MySQLStore) CountRecipes() (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM `%s`", s.table)
	var count int
	if err := s.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// AppendFeedback inserts one feedback entry.
func (s *MySQLStore) AppendFeedback(fb Feedback) error {
	_, err := s.db.Exec(
		`INSERT INTO feedback
		(ts, user_text, option1_title, option1_recipe_id, option2_title, option2_recipe_id, action, chosen_index, follow_up_answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fb.Timestamp, fb.UserText, fb.Option1Title, fb.Option1Recipe,
		fb.Option2Title, fb.Option2Recipe, fb.Action, fb.ChosenIndex, fb.FollowUpAnswer)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// CountFeedback returns the number of feedback entries.
func (s *MySQLStore) CountFeedback() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM feedback").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// Backend names the implementation.
func (s *MySQLStore) Backend() string {
	return "mysql"
}

// Close closes the connection pool.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
