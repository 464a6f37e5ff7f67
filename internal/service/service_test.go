package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"gamelog-tracker/internal/domain"
)

type fakeMatchStore struct {
	mu        sync.Mutex
	matches   []*domain.Match
	createErr error
	batches   int
}

func (s *fakeMatchStore) FindByID(_ context.Context, id string) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, match := range s.matches {
		if match.ID == id {
			return match, nil
		}
	}

	return nil, &domain.EntityNotFoundError{Entity: "Match", ID: id}
}

func (s *fakeMatchStore) FindAll(context.Context) ([]*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.matches), nil
}

func (s *fakeMatchStore) CreateBatch(_ context.Context, matches []*domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return s.createErr
	}

	for _, match := range matches {
		for _, existing := range s.matches {
			if existing.ID == match.ID {
				return &domain.EntityAlreadyExistsError{Entity: "Match", ID: match.ID}
			}
		}
	}

	s.batches++
	s.matches = append(s.matches, matches...)

	return nil
}

func (s *fakeMatchStore) DeleteAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = nil

	return nil
}

type fakeFetcher struct {
	bodies map[string]string
}

var errFetch = errors.New("fetch failed")

func (f fakeFetcher) Fetch(_ context.Context, rawURL string) (string, error) {
	body, found := f.bodies[rawURL]
	if !found {
		return "", errFetch
	}

	return body, nil
}

type fakePlayerStatsStore struct {
	aggregates []domain.PlayerAggregate
	err        error
}

func (s fakePlayerStatsStore) GlobalRanking(context.Context) ([]domain.PlayerAggregate, error) {
	return s.aggregates, s.err
}
