package shortener

import (
	"context"

	"shortlink/models"
)

// LinkStore is the durable mapping from short code to link record. It is
// the single source of truth for link existence and enforces short-code
// uniqueness; Create must fail with a conflict error on a duplicate code
// rather than overwrite.
type LinkStore interface {
	// Create inserts the link and fills in its server-assigned ID.
	Create(ctx context.Context, link *models.Link) error
	// GetByCode returns the link for a code, or (nil, nil) when absent.
	GetByCode(ctx context.Context, code string) (*models.Link, error)
	// Exists reports whether a code is already taken.
	Exists(ctx context.Context, code string) (bool, error)
	// Update replaces the mutable fields of an existing link.
	Update(ctx context.Context, link *models.Link) error
	// Delete removes the link and all of its visits in one transaction.
	Delete(ctx context.Context, linkID int64) error
}

// VisitStore is the append-only log of visit events.
type VisitStore interface {
	Record(ctx context.Context, visit *models.Visit) error
	CountByLink(ctx context.Context, linkID int64) (int64, error)
	// ListByLink returns visits in insertion order.
	ListByLink(ctx context.Context, linkID int64) ([]models.Visit, error)
}

// SequenceAllocator issues each value of a monotonic counter exactly
// once, durably, across concurrent callers and restarts.
type SequenceAllocator interface {
	Next(ctx context.Context) (int64, error)
}
