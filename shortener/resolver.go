package shortener

import (
	"context"
	"log"
	"net"
	"strings"
	"time"

	"shortlink/models"
)

// maxUserAgentLength bounds the user-agent string stored per visit.
const maxUserAgentLength = 100

// Resolver owns the redirect path: validate a code and hand back the
// destination URL, recording the visit as a side effect.
type Resolver struct {
	links  LinkStore
	visits VisitStore
	now    func() time.Time
}

func NewResolver(links LinkStore, visits VisitStore) *Resolver {
	return &Resolver{
		links:  links,
		visits: visits,
		now:    time.Now,
	}
}

// Resolve runs the validation pipeline for a redirect: existence, expiry,
// access limit, then visit recording. Each stage short-circuits, so
// expired or over-limit links accrue no further visit records.
//
// The limit check and the visit insert are deliberately not atomic:
// concurrent requests near the limit can admit a few extra visits. The
// limit is a soft cap, not a security boundary.
func (r *Resolver) Resolve(ctx context.Context, code, ipCandidate, userAgent string) (string, error) {
	link, err := r.links.GetByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if link == nil {
		return "", NewError(KindNotFound, "invalid short code")
	}

	// A link expiring at T still resolves at exactly T and fails after.
	if link.ExpiredAt != nil && link.ExpiredAt.Before(r.now()) {
		return "", NewError(KindExpired, "short code is expired")
	}

	if link.AccessLimit != nil {
		count, err := r.visits.CountByLink(ctx, link.ID)
		if err != nil {
			return "", err
		}
		if count >= int64(*link.AccessLimit) {
			return "", NewError(KindLimitExceeded, "short code has exceeded its access limit")
		}
	}

	visit := &models.Visit{
		LinkID:     link.ID,
		IPAddress:  validIP(ipCandidate),
		UserAgent:  truncateUserAgent(userAgent),
		AccessedAt: r.now(),
	}
	if err := r.visits.Record(ctx, visit); err != nil {
		// A dropped analytics entry does not invalidate the redirect.
		log.Printf("failed to record visit for %s: %v", code, err)
	}

	return link.OriginalURL, nil
}

// validIP keeps the candidate only when it parses as an IP address;
// anything else is stored as absent.
func validIP(candidate string) *string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" || net.ParseIP(trimmed) == nil {
		return nil
	}
	return &trimmed
}

func truncateUserAgent(userAgent string) *string {
	if userAgent == "" {
		return nil
	}
	if len(userAgent) > maxUserAgentLength {
		userAgent = userAgent[:maxUserAgentLength]
	}
	return &userAgent
}
