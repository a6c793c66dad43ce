package shortener

import (
	"context"
	"strings"
	"time"

	"shortlink/models"
)

// ShortenInput carries the caller-supplied fields for create and update.
// Optional fields use pointers so "absent" is distinguishable from a zero
// value.
type ShortenInput struct {
	OriginalURL string
	CustomCode  string
	AccessLimit *int
	ExpiredAt   *time.Time
}

// Engine owns the write path: creating, updating and deleting links plus
// the read-through details and stats queries.
type Engine struct {
	links  LinkStore
	visits VisitStore
	gen    *Generator
	now    func() time.Time
}

func NewEngine(links LinkStore, visits VisitStore, gen *Generator) *Engine {
	return &Engine{
		links:  links,
		visits: visits,
		gen:    gen,
		now:    time.Now,
	}
}

// Create persists a new link under a custom or generated code.
func (e *Engine) Create(ctx context.Context, in ShortenInput) (*models.Link, error) {
	// Expiry is checked before a code is allocated so rejected requests
	// don't consume sequence values.
	if err := e.validateExpiry(in.ExpiredAt); err != nil {
		return nil, err
	}

	code, err := e.resolveCode(ctx, in.CustomCode)
	if err != nil {
		return nil, err
	}

	now := e.now()
	link := &models.Link{
		ShortCode:   code,
		OriginalURL: in.OriginalURL,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiredAt:   in.ExpiredAt,
		AccessLimit: in.AccessLimit,
	}

	// The store's unique constraint is the final authority; a concurrent
	// insert of the same code surfaces as a conflict here.
	if err := e.links.Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// resolveCode validates a custom code or falls back to sequence-driven
// generation.
func (e *Engine) resolveCode(ctx context.Context, customCode string) (string, error) {
	if customCode != "" {
		trimmed := strings.TrimSpace(customCode)
		if trimmed == "" {
			return "", NewError(KindInvalidRequest, "custom short code cannot be blank")
		}

		exists, err := e.links.Exists(ctx, trimmed)
		if err != nil {
			return "", err
		}
		if exists {
			return "", NewError(KindConflict, "short code already exists")
		}

		return trimmed, nil
	}

	return e.gen.NextSequential(ctx)
}

// Update replaces the mutable fields of a link. Short codes are permanent
// identifiers; any custom code in the payload is rejected. Replacement is
// full: omitting expiry or access limit clears them.
func (e *Engine) Update(ctx context.Context, code string, in ShortenInput) (*models.Link, error) {
	if in.CustomCode != "" {
		return nil, NewError(KindInvalidRequest, "short code cannot be updated")
	}

	link, err := e.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := e.validateExpiry(in.ExpiredAt); err != nil {
		return nil, err
	}

	link.OriginalURL = in.OriginalURL
	link.ExpiredAt = in.ExpiredAt
	link.AccessLimit = in.AccessLimit
	link.UpdatedAt = e.now()

	if err := e.links.Update(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

// Delete removes a link together with all of its visits.
func (e *Engine) Delete(ctx context.Context, code string) error {
	link, err := e.getByCode(ctx, code)
	if err != nil {
		return err
	}

	return e.links.Delete(ctx, link.ID)
}

// Details returns the stored link record for a code.
func (e *Engine) Details(ctx context.Context, code string) (*models.Link, error) {
	return e.getByCode(ctx, code)
}

// Stats returns the link together with its visit count, remaining quota
// (when a limit is set) and the chronological list of visits.
func (e *Engine) Stats(ctx context.Context, code string) (*models.Stats, error) {
	link, err := e.getByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	visits, err := e.visits.ListByLink(ctx, link.ID)
	if err != nil {
		return nil, err
	}

	records := make([]models.VisitRecord, 0, len(visits))
	for _, v := range visits {
		records = append(records, models.VisitRecord{
			AccessedAt: v.AccessedAt,
			IPAddress:  v.IPAddress,
			UserAgent:  v.UserAgent,
		})
	}

	stats := &models.Stats{
		Link:        *link,
		TotalVisits: int64(len(records)),
		Visits:      records,
	}
	if link.AccessLimit != nil {
		remaining := int64(*link.AccessLimit) - stats.TotalVisits
		stats.RemainingVisits = &remaining
	}

	return stats, nil
}

func (e *Engine) getByCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := e.links.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, NewError(KindNotFound, "invalid short code")
	}
	return link, nil
}

func (e *Engine) validateExpiry(expiredAt *time.Time) error {
	if expiredAt != nil && !expiredAt.After(e.now()) {
		return NewError(KindInvalidRequest, "expiry must be in the future")
	}
	return nil
}
