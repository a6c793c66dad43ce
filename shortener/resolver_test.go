package shortener

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/models"
)

func newTestResolver(t *testing.T) (*Resolver, *memStore) {
	t.Helper()
	store := newMemStore()
	return NewResolver(store, store), store
}

func storeLink(t *testing.T, store *memStore, link *models.Link) *models.Link {
	t.Helper()
	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now
	require.NoError(t, store.Create(context.Background(), link))
	return link
}

func TestResolveUnknownCode(t *testing.T) {
	resolver, _ := newTestResolver(t)

	_, err := resolver.Resolve(context.Background(), "missing", "", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestResolveReturnsOriginalURL(t *testing.T) {
	resolver, store := newTestResolver(t)
	storeLink(t, store, &models.Link{ShortCode: "abc", OriginalURL: "https://example.com"})

	url, err := resolver.Resolve(context.Background(), "abc", "203.0.113.7", "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", url)
}

func TestResolveExpiryBoundary(t *testing.T) {
	resolver, store := newTestResolver(t)
	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	storeLink(t, store, &models.Link{
		ShortCode:   "abc",
		OriginalURL: "https://example.com",
		ExpiredAt:   &expiry,
	})
	ctx := context.Background()

	// One second before expiry: resolves.
	resolver.now = func() time.Time { return expiry.Add(-time.Second) }
	_, err := resolver.Resolve(ctx, "abc", "", "")
	require.NoError(t, err)

	// Exactly at expiry: still resolves, the comparison is strict.
	resolver.now = func() time.Time { return expiry }
	_, err = resolver.Resolve(ctx, "abc", "", "")
	require.NoError(t, err)

	// One second after expiry: refused, and no further visit recorded.
	resolver.now = func() time.Time { return expiry.Add(time.Second) }
	_, err = resolver.Resolve(ctx, "abc", "", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindExpired))
	assert.Len(t, store.visits, 2)
}

func TestResolveLimitBoundary(t *testing.T) {
	resolver, store := newTestResolver(t)
	link := storeLink(t, store, &models.Link{
		ShortCode:   "abc",
		OriginalURL: "https://example.com",
		AccessLimit: intPtr(2),
	})
	ctx := context.Background()

	// One prior visit: the second resolve succeeds and the count is 2.
	_, err := resolver.Resolve(ctx, "abc", "", "")
	require.NoError(t, err)
	_, err = resolver.Resolve(ctx, "abc", "", "")
	require.NoError(t, err)

	count, err := store.CountByLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// At the limit: the third resolve is refused and records nothing.
	_, err = resolver.Resolve(ctx, "abc", "", "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindLimitExceeded))

	count, err = store.CountByLink(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestResolveRecordsVisitMetadata(t *testing.T) {
	resolver, store := newTestResolver(t)
	link := storeLink(t, store, &models.Link{ShortCode: "abc", OriginalURL: "https://example.com"})

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	resolver.now = func() time.Time { return at }

	_, err := resolver.Resolve(context.Background(), "abc", "203.0.113.7", "test-agent")
	require.NoError(t, err)

	require.Len(t, store.visits, 1)
	visit := store.visits[0]
	assert.Equal(t, link.ID, visit.LinkID)
	require.NotNil(t, visit.IPAddress)
	assert.Equal(t, "203.0.113.7", *visit.IPAddress)
	require.NotNil(t, visit.UserAgent)
	assert.Equal(t, "test-agent", *visit.UserAgent)
	assert.True(t, visit.AccessedAt.Equal(at))
}

func TestResolveDropsInvalidIP(t *testing.T) {
	resolver, store := newTestResolver(t)
	storeLink(t, store, &models.Link{ShortCode: "abc", OriginalURL: "https://example.com"})

	_, err := resolver.Resolve(context.Background(), "abc", "not-an-ip", "")
	require.NoError(t, err)

	require.Len(t, store.visits, 1)
	assert.Nil(t, store.visits[0].IPAddress)
	assert.Nil(t, store.visits[0].UserAgent)
}

func TestResolveAcceptsIPv6(t *testing.T) {
	resolver, store := newTestResolver(t)
	storeLink(t, store, &models.Link{ShortCode: "abc", OriginalURL: "https://example.com"})

	_, err := resolver.Resolve(context.Background(), "abc", "2001:db8::1", "")
	require.NoError(t, err)

	require.Len(t, store.visits, 1)
	require.NotNil(t, store.visits[0].IPAddress)
	assert.Equal(t, "2001:db8::1", *store.visits[0].IPAddress)
}

func TestResolveTruncatesUserAgent(t *testing.T) {
	resolver, store := newTestResolver(t)
	storeLink(t, store, &models.Link{ShortCode: "abc", OriginalURL: "https://example.com"})

	long := strings.Repeat("x", 250)
	_, err := resolver.Resolve(context.Background(), "abc", "", long)
	require.NoError(t, err)

	require.Len(t, store.visits, 1)
	require.NotNil(t, store.visits[0].UserAgent)
	assert.Len(t, *store.visits[0].UserAgent, maxUserAgentLength)
}
