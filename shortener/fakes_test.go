package shortener

import (
	"context"
	"sync"

	"shortlink/models"
)

// memStore is an in-memory LinkStore and VisitStore for the core tests.
// It mirrors the real store's contract: conflict on duplicate codes,
// (nil, nil) for unknown codes, cascade delete of visits.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	links  map[string]*models.Link
	visits []models.Visit
}

func newMemStore() *memStore {
	return &memStore{links: make(map[string]*models.Link)}
}

func (s *memStore) Create(_ context.Context, link *models.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link.ShortCode]; ok {
		return NewError(KindConflict, "short code already exists")
	}

	s.nextID++
	link.ID = s.nextID
	stored := *link
	s.links[link.ShortCode] = &stored
	return nil
}

func (s *memStore) GetByCode(_ context.Context, code string) (*models.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, nil
	}
	copied := *link
	return &copied, nil
}

func (s *memStore) Exists(_ context.Context, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.links[code]
	return ok, nil
}

func (s *memStore) Update(_ context.Context, link *models.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, stored := range s.links {
		if stored.ID == link.ID {
			copied := *link
			s.links[code] = &copied
			return nil
		}
	}
	return nil
}

func (s *memStore) Delete(_ context.Context, linkID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for code, stored := range s.links {
		if stored.ID == linkID {
			delete(s.links, code)
			break
		}
	}

	kept := s.visits[:0]
	for _, v := range s.visits {
		if v.LinkID != linkID {
			kept = append(kept, v)
		}
	}
	s.visits = kept
	return nil
}

func (s *memStore) Record(_ context.Context, visit *models.Visit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	visit.ID = s.nextID
	s.visits = append(s.visits, *visit)
	return nil
}

func (s *memStore) CountByLink(_ context.Context, linkID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, v := range s.visits {
		if v.LinkID == linkID {
			count++
		}
	}
	return count, nil
}

func (s *memStore) ListByLink(_ context.Context, linkID int64) ([]models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var visits []models.Visit
	for _, v := range s.visits {
		if v.LinkID == linkID {
			visits = append(visits, v)
		}
	}
	return visits, nil
}

// memSequence is an in-memory SequenceAllocator starting at zero.
type memSequence struct {
	mu   sync.Mutex
	next int64
}

func (s *memSequence) Next(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.next
	s.next++
	return value, nil
}
