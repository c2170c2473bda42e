package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vezoprint/vezo-backend/internal/database"
	"github.com/vezoprint/vezo-backend/internal/model"
)

// ContentRepository handles content item data access.
type ContentRepository interface {
	List(ctx context.Context, filter model.ContentFilter) ([]model.ContentItem, error)
	GetByID(ctx context.Context, id string) (*model.ContentItem, error)
	Create(ctx context.Context, item *model.ContentItem) error
	Update(ctx context.Context, item *model.ContentItem) error
	Delete(ctx context.Context, id string) error
	UpdateOrder(ctx context.Context, id string, order int) error
}

type pgContentRepository struct {
	db *database.Postgres
}

// NewContentRepository creates a Postgres-backed ContentRepository.
func NewContentRepository(db *database.Postgres) ContentRepository {
	return &pgContentRepository{db: db}
}

const contentColumns = `id, type, title, description, content, icon, color, image_url,
	rating, author, company, is_active, sort_order, metadata, created_at, updated_at, created_by`

func scanContent(row pgx.Row) (*model.ContentItem, error) {
	it := &model.ContentItem{}
	var metadata []byte
	err := row.Scan(&it.ID, &it.Type, &it.Title, &it.Description, &it.Content,
		&it.Icon, &it.Color, &it.ImageURL, &it.Rating, &it.Author, &it.Company,
		&it.IsActive, &it.Order, &metadata, &it.CreatedAt, &it.UpdatedAt, &it.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &it.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return it, nil
}

func encodeMetadata(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// List returns items matching the filter, sorted by display order
// ascending with ties broken by creation time descending.
func (r *pgContentRepository) List(ctx context.Context, filter model.ContentFilter) ([]model.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE 1=1`
	args := []any{}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	items := []model.ContentItem{}
	for rows.Next() {
		it, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// GetByID retrieves a single content item.
func (r *pgContentRepository) GetByID(ctx context.Context, id string) (*model.ContentItem, error) {
	return scanContent(r.db.Pool().QueryRow(ctx,
		`SELECT `+contentColumns+` FROM content_items WHERE id = $1`, id))
}

// Create inserts a new content item.
func (r *pgContentRepository) Create(ctx context.Context, it *model.ContentItem) error {
	metadata, err := encodeMetadata(it.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return r.db.Pool().QueryRow(ctx,
		`INSERT INTO content_items
		   (id, type, title, description, content, icon, color, image_url,
		    rating, author, company, is_active, sort_order, metadata, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING created_at, updated_at`,
		it.ID, it.Type, it.Title, it.Description, it.Content, it.Icon, it.Color,
		it.ImageURL, it.Rating, it.Author, it.Company, it.IsActive, it.Order,
		metadata, it.CreatedBy,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
}

// Update replaces the mutable fields of an existing item and bumps
// updated_at. Returns ErrNotFound for an unknown id.
func (r *pgContentRepository) Update(ctx context.Context, it *model.ContentItem) error {
	metadata, err := encodeMetadata(it.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	err = r.db.Pool().QueryRow(ctx,
		`UPDATE content_items SET
		   type = $1, title = $2, description = $3, content = $4, icon = $5,
		   color = $6, image_url = $7, rating = $8, author = $9, company = $10,
		   is_active = $11, sort_order = $12, metadata = $13, updated_at = NOW()
		 WHERE id = $14
		 RETURNING created_at, updated_at, created_by`,
		it.Type, it.Title, it.Description, it.Content, it.Icon, it.Color,
		it.ImageURL, it.Rating, it.Author, it.Company, it.IsActive, it.Order,
		metadata, it.ID,
	).Scan(&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// Delete removes an item. Returns ErrNotFound for an unknown id.
func (r *pgContentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOrder sets the display order of a single item. An unknown id is
// a no-op, matching the bulk reorder contract.
func (r *pgContentRepository) UpdateOrder(ctx context.Context, id string, order int) error {
	_, err := r.db.Pool().Exec(ctx,
		`UPDATE content_items SET sort_order = $1, updated_at = NOW() WHERE id = $2`, order, id)
	return err
}
