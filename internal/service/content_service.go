package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/vezoprint/vezo-backend/internal/events"
	"github.com/vezoprint/vezo-backend/internal/model"
	"github.com/vezoprint/vezo-backend/internal/repository"
)

// Content validation errors.
var (
	ErrInvalidContentType = errors.New("invalid content type")
	ErrTitleRequired      = errors.New("title is required")
)

// sanitizePolicy strips all HTML from free-text fields before they reach
// the store; anything not plain text comes back entity-escaped.
var sanitizePolicy = bluemonday.StrictPolicy()

func sanitize(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}

// ContentService handles CMS content business logic.
type ContentService struct {
	content repository.ContentRepository
	cache   *ContentCache
	hub     *events.Hub
	log     zerolog.Logger
}

// NewContentService creates a new ContentService. cache and hub may be nil.
func NewContentService(content repository.ContentRepository, cache *ContentCache, hub *events.Hub, log zerolog.Logger) *ContentService {
	return &ContentService{
		content: content,
		cache:   cache,
		hub:     hub,
		log:     log.With().Str("component", "content_service").Logger(),
	}
}

// List returns items matching the filter, ordered by display order
// ascending with ties broken by creation time descending. Public reads
// go through the Redis cache when available.
func (s *ContentService) List(ctx context.Context, filter model.ContentFilter) ([]model.ContentItem, error) {
	if items, ok := s.cache.GetList(ctx, filter); ok {
		return items, nil
	}

	items, err := s.content.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// The query already orders, but the invariant is cheap to hold here
	// regardless of which store implementation served the call.
	model.SortItems(items)

	s.cache.SetList(ctx, filter, items)
	return items, nil
}

// Get returns a single item or repository.ErrNotFound.
func (s *ContentService) Get(ctx context.Context, id string) (*model.ContentItem, error) {
	return s.content.GetByID(ctx, id)
}

// Create validates, sanitizes, and persists a new item stamped with the
// acting admin.
func (s *ContentService) Create(ctx context.Context, req model.ContentRequest, actorID int) (*model.ContentItem, error) {
	item, err := buildItem(req)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.New().String()
	item.CreatedBy = &actorID

	if err := s.content.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.hub.Broadcast(events.ContentEvent{Action: events.ActionCreated, ID: item.ID, Type: item.Type})
	s.log.Info().Str("id", item.ID).Str("type", string(item.Type)).Int("actor", actorID).Msg("Content created")
	return item, nil
}

// Update re-validates and re-sanitizes like Create, then replaces the
// mutable fields of an existing item.
func (s *ContentService) Update(ctx context.Context, id string, req model.ContentRequest) (*model.ContentItem, error) {
	item, err := buildItem(req)
	if err != nil {
		return nil, err
	}
	item.ID = id

	if err := s.content.Update(ctx, item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.hub.Broadcast(events.ContentEvent{Action: events.ActionUpdated, ID: item.ID, Type: item.Type})
	return item, nil
}

// Delete removes an item. Role enforcement happens in middleware; the
// service only cares that the id exists.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	if err := s.content.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.hub.Broadcast(events.ContentEvent{Action: events.ActionDeleted, ID: id})
	s.log.Info().Str("id", id).Msg("Content deleted")
	return nil
}

// Reorder applies order updates one item at a time. The writes are
// deliberately independent, not a transaction: a failure partway leaves
// the earlier updates in place and reports the error. Unknown ids are
// skipped.
func (s *ContentService) Reorder(ctx context.Context, items []model.ReorderItem) error {
	for i, it := range items {
		if err := s.content.UpdateOrder(ctx, it.ID, it.Order); err != nil {
			return fmt.Errorf("reorder item %d of %d (%s): %w", i+1, len(items), it.ID, err)
		}
	}

	s.cache.Invalidate(ctx)
	s.hub.Broadcast(events.ContentEvent{Action: events.ActionReordered})
	return nil
}

// buildItem validates a content payload and assembles a sanitized item.
func buildItem(req model.ContentRequest) (*model.ContentItem, error) {
	ctype := model.ContentType(req.Type)
	if !ctype.Valid() {
		return nil, ErrInvalidContentType
	}

	title := sanitize(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	item := &model.ContentItem{
		Type:        ctype,
		Title:       title,
		Description: sanitize(req.Description),
		Content:     sanitize(req.Content),
		Icon:        strings.TrimSpace(req.Icon),
		Color:       strings.TrimSpace(req.Color),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Rating:      req.Rating,
		Author:      sanitize(req.Author),
		Company:     sanitize(req.Company),
		IsActive:    true,
		Metadata:    req.Metadata,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	return item, nil
}
