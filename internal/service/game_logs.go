package service

import (
	"context"
	"fmt"

	"gamelog-tracker/internal/constants"
	"gamelog-tracker/internal/domain"
	"gamelog-tracker/internal/logparse"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type LogFile struct {
	Name    string
	Content string
}

type ProcessResult struct {
	ProcessedMatches int      `json:"processedMatches"`
	ParseErrors      []string `json:"parseErrors"`
}

type GameLogsService struct {
	matches MatchStore
	fetcher RemoteLogFetcher
	logger  zerolog.Logger
}

func NewGameLogsService(matches MatchStore, fetcher RemoteLogFetcher, logger zerolog.Logger) *GameLogsService {
	return &GameLogsService{matches: matches, fetcher: fetcher, logger: logger}
}

// Process parses one log and stores every completed match. Line errors are returned in the
// result; only a storage failure fails the call.
func (s *GameLogsService) Process(ctx context.Context, content string) (*ProcessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	result := logparse.NewMatchLogParser(s.logger).Execute(content)

	return s.store(ctx, result.Matches, result.ParseErrors)
}

// ProcessFiles parses files concurrently, one parser per file, and stores the matches of all of
// them in a single batch. Parse errors are prefixed with the file name and kept in input order.
func (s *GameLogsService) ProcessFiles(ctx context.Context, files []LogFile) (*ProcessResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	results := make([]logparse.Result, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentParses)

	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			logger := s.logger.With().Str("file", file.Name).Logger()
			results[i] = logparse.NewMatchLogParser(logger).Execute(file.Content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to parse uploaded files: %w", err)
	}

	var matches []*domain.Match
	parseErrors := []string{}
	for i, result := range results {
		matches = append(matches, result.Matches...)
		for _, parseErr := range result.ParseErrors {
			parseErrors = append(parseErrors, files[i].Name+": "+parseErr)
		}
	}

	s.logger.Debug().Int("file_count", len(files)).Int("match_count", len(matches)).Msg("uploaded files parsed")
	return s.store(ctx, matches, parseErrors)
}

func (s *GameLogsService) ProcessRemote(ctx context.Context, rawURL string) (*ProcessResult, error) {
	s.logger.Info().Str("url", rawURL).Msg("fetching remote log")

	content, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return s.Process(ctx, content)
}

func (s *GameLogsService) store(ctx context.Context, matches []*domain.Match, parseErrors []string) (*ProcessResult, error) {
	if err := s.matches.CreateBatch(ctx, matches); err != nil {
		s.logger.Error().Err(err).Int("match_count", len(matches)).Msg("failed to store matches")
		return nil, err
	}

	if parseErrors == nil {
		parseErrors = []string{}
	}

	s.logger.Info().
		Int("processed_matches", len(matches)).
		Int("parse_errors", len(parseErrors)).
		Msg("game log processed")

	return &ProcessResult{
		ProcessedMatches: len(matches),
		ParseErrors:      parseErrors,
	}, nil
}
