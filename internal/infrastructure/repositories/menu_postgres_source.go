package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/antonistheo/qrmenu/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// PostgresMenuSource serves the menu out of a menu_items table instead of a
// static document, for deployments where the menu is edited in place. Row
// order follows the explicit position column so the document's original
// ordering semantics carry over.
type PostgresMenuSource struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewPostgresMenuSource(database *db.Database, logger *logrus.Logger) ports.MenuSource {
	return &PostgresMenuSource{db: database, logger: logger}
}

func (s *PostgresMenuSource) Name() string { return "postgres:menu_items" }

type menuItemRow struct {
	ID          uuid.UUID      `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	Category    string         `db:"category"`
	Price       menu.Price     `db:"price"`
	Tags        pq.StringArray `db:"tags"`
	Image       sql.NullString `db:"image"`
	Veg         bool           `db:"veg"`
	Spicy       int            `db:"spicy"`
	Available   bool           `db:"available"`
}

func (s *PostgresMenuSource) Fetch(ctx context.Context) ([]menu.Item, error) {
	var rows []menuItemRow
	query := `
		SELECT id, name, description, category, price, tags, image, veg, spicy, available
		FROM menu_items
		ORDER BY position ASC, created_at ASC`

	if err := s.db.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}

	items := make([]menu.Item, 0, len(rows))
	for _, r := range rows {
		available := r.Available
		items = append(items, menu.Item{
			ID:          r.ID.String(),
			Name:        r.Name,
			Description: r.Description.String,
			Category:    r.Category,
			Price:       r.Price,
			Tags:        []string(r.Tags),
			Image:       r.Image.String,
			Veg:         r.Veg,
			Spicy:       r.Spicy,
			Available:   &available,
		})
	}
	if s.logger != nil {
		s.logger.WithField("items", len(items)).Debug("menu items loaded from database")
	}
	return items, nil
}
