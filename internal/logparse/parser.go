package logparse

import (
	"fmt"
	"strings"

	"gamelog-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type Result struct {
	Matches     []*domain.Match
	ParseErrors []string
}

// MatchLogParser rebuilds matches from a complete log. A value holds the state of one parse and
// must not be shared between goroutines; create one per log.
type MatchLogParser struct {
	matches      []*domain.Match
	currentMatch *domain.Match
	parseErrors  []string
	logger       zerolog.Logger
}

func NewMatchLogParser(logger zerolog.Logger) *MatchLogParser {
	return &MatchLogParser{logger: logger}
}

// Execute parses every line of content. Failures are recorded per line as "Line <n>: <message>"
// and never stop the parse. A match still open when the input ends is dropped.
func (p *MatchLogParser) Execute(content string) Result {
	p.matches = []*domain.Match{}
	p.parseErrors = []string{}
	p.currentMatch = nil

	lines := strings.Split(content, "\n")

	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if err := p.processLine(line); err != nil {
			p.logger.Debug().Err(err).Int("line", i+1).Msg("rejected log line")
			p.parseErrors = append(p.parseErrors, fmt.Sprintf("Line %d: %s", i+1, err.Error()))
		}
	}

	if p.currentMatch != nil {
		p.logger.Debug().Str("match_id", p.currentMatch.ID).Msg("dropping match without end event")
		p.currentMatch = nil
	}

	p.logger.Info().
		Int("lines", len(lines)).
		Int("matches", len(p.matches)).
		Int("parse_errors", len(p.parseErrors)).
		Msg("log parsed")

	return Result{
		Matches:     p.matches,
		ParseErrors: p.parseErrors,
	}
}

func (p *MatchLogParser) processLine(line string) error {
	event, err := ParseLine(line)
	if err != nil {
		return err
	}

	return p.apply(event)
}

func (p *MatchLogParser) apply(event domain.Event) error {
	switch evt := event.(type) {
	case domain.MatchStartEvent:
		if p.currentMatch != nil {
			return domain.ErrMatchAlreadyStarted
		}

		p.currentMatch = domain.NewMatch(evt)
	case domain.MatchEndEvent:
		if p.currentMatch == nil {
			return &domain.MatchNotStartedError{Kind: evt.Kind()}
		}

		if err := p.currentMatch.End(evt); err != nil {
			return err
		}

		p.matches = append(p.matches, p.currentMatch)
		p.currentMatch = nil
	case domain.KillEvent:
		if p.currentMatch == nil {
			return &domain.MatchNotStartedError{Kind: evt.Kind()}
		}

		return p.currentMatch.AddKill(evt)
	case domain.WorldKillEvent:
		if p.currentMatch == nil {
			return &domain.MatchNotStartedError{Kind: evt.Kind()}
		}

		return p.currentMatch.AddWorldKill(evt)
	default:
		return domain.ErrUnknownEventType
	}

	return nil
}
