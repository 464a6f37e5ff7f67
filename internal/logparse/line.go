// Package logparse turns game server logs into matches with per player statistics.
//
// Lines have the form "DD/MM/YYYY HH:MM:SS - <message>" where message is one of:
//
//	New match <id> has started
//	Match <id> has ended
//	<killer> killed <victim> using <weapon>
//	<WORLD> killed <victim> by <cause>
package logparse

import (
	"regexp"
	"strconv"
	"time"

	"gamelog-tracker/internal/domain"
)

type parserType struct {
	Rx   *regexp.Regexp
	Kind domain.EventKind
}

var (
	rxDate = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4}) (\d{2}):(\d{2}):(\d{2}) - (.+)$`)

	rxMatchStart = regexp.MustCompile(`^New match (.+?) has started$`)
	rxMatchEnd   = regexp.MustCompile(`^Match (.+?) has ended$`)
	rxKill       = regexp.MustCompile(`^(.+?) killed (.+?) using (.+)$`)
	rxWorldKill  = regexp.MustCompile(`^<WORLD> killed (.+?) by (.+)$`)

	// Order matters: a world kill also matches rxKill and is rejected there by its subject.
	rxParsers = []parserType{
		{rxMatchStart, domain.KindMatchStart},
		{rxMatchEnd, domain.KindMatchEnd},
		{rxKill, domain.KindKill},
		{rxWorldKill, domain.KindWorldKill},
	}
)

// ParseLine classifies a single trimmed line. A line with a valid date but an unrecognised
// message yields an UnknownEvent and no error.
func ParseLine(line string) (domain.Event, error) {
	match := rxDate.FindStringSubmatch(line)
	if match == nil {
		return nil, domain.ErrInvalidDateFormat
	}

	createdOn, errDate := parseTimestamp(match[1:7])
	if errDate != nil {
		return nil, errDate
	}

	message := match[7]

	for _, parser := range rxParsers {
		groups := parser.Rx.FindStringSubmatch(message)
		if groups == nil {
			continue
		}

		switch parser.Kind {
		case domain.KindMatchStart:
			return domain.MatchStartEvent{MatchID: groups[1], At: createdOn}, nil
		case domain.KindMatchEnd:
			return domain.MatchEndEvent{MatchID: groups[1], At: createdOn}, nil
		case domain.KindKill:
			if groups[1] == domain.WorldActor {
				continue
			}

			return domain.KillEvent{Killer: groups[1], Victim: groups[2], Weapon: groups[3], At: createdOn}, nil
		case domain.KindWorldKill:
			return domain.WorldKillEvent{Victim: groups[1], Cause: groups[2], At: createdOn}, nil
		}
	}

	return domain.UnknownEvent{At: createdOn}, nil
}

// parseTimestamp copies the calendar fields (day, month, year, hour, minute, second) verbatim.
// UTC carries the naive log clock; no conversion is applied.
func parseTimestamp(fields []string) (time.Time, error) {
	values := make([]int, len(fields))

	for i, field := range fields {
		value, errConv := strconv.Atoi(field)
		if errConv != nil {
			return time.Time{}, domain.ErrInvalidDateFormat
		}

		values[i] = value
	}

	day, month, year, hour, minute, second := values[0], values[1], values[2], values[3], values[4], values[5]

	createdOn := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)

	// time.Date normalises overflow (31/02 becomes 03/03); reject instead.
	if createdOn.Day() != day || int(createdOn.Month()) != month || createdOn.Year() != year ||
		createdOn.Hour() != hour || createdOn.Minute() != minute || createdOn.Second() != second {
		return time.Time{}, domain.ErrInvalidDateFormat
	}

	return createdOn, nil
}
