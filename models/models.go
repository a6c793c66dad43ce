package models

import (
	"time"
)

// Link is a stored short link record.
type Link struct {
	ID          int64      `json:"id"`
	ShortCode   string     `json:"shortCode"`
	OriginalURL string     `json:"originalUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ExpiredAt   *time.Time `json:"expiredAt,omitempty"`
	AccessLimit *int       `json:"accessLimit,omitempty"`
}

// Visit is one recorded resolution of a link. Visits are append-only and
// removed only when the owning link is deleted.
type Visit struct {
	ID         int64     `json:"id"`
	LinkID     int64     `json:"linkId"`
	IPAddress  *string   `json:"ip,omitempty"`
	UserAgent  *string   `json:"userAgent,omitempty"`
	AccessedAt time.Time `json:"accessedAt"`
}

// VisitRecord is the per-visit shape exposed by the stats endpoint.
type VisitRecord struct {
	AccessedAt time.Time `json:"accessedAt"`
	IPAddress  *string   `json:"ip,omitempty"`
	UserAgent  *string   `json:"userAgent,omitempty"`
}

// Stats aggregates a link with its visit history.
type Stats struct {
	Link
	TotalVisits     int64         `json:"totalVisits"`
	RemainingVisits *int64        `json:"remainingVisits,omitempty"`
	Visits          []VisitRecord `json:"visits"`
}
