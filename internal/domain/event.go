package domain

import "time"

type EventKind string

const (
	KindMatchStart EventKind = "MATCH_START"
	KindMatchEnd   EventKind = "MATCH_END"
	KindKill       EventKind = "KILL"
	KindWorldKill  EventKind = "WORLD_KILL"
	KindUnknown    EventKind = "UNKNOWN"
)

// WorldActor is the subject used by the server for environmental deaths.
const WorldActor = "<WORLD>"

// Event is one classified log line. The set of implementations is closed.
type Event interface {
	Kind() EventKind
	Time() time.Time
	event()
}

type MatchStartEvent struct {
	MatchID string
	At      time.Time
}

type MatchEndEvent struct {
	MatchID string
	At      time.Time
}

type KillEvent struct {
	Killer string
	Victim string
	Weapon string
	At     time.Time
}

type WorldKillEvent struct {
	Victim string
	Cause  string
	At     time.Time
}

// UnknownEvent has a valid timestamp but a message body that matched no known pattern.
type UnknownEvent struct {
	At time.Time
}

func (MatchStartEvent) Kind() EventKind { return KindMatchStart }
func (MatchEndEvent) Kind() EventKind   { return KindMatchEnd }
func (KillEvent) Kind() EventKind       { return KindKill }
func (WorldKillEvent) Kind() EventKind  { return KindWorldKill }
func (UnknownEvent) Kind() EventKind    { return KindUnknown }

func (e MatchStartEvent) Time() time.Time { return e.At }
func (e MatchEndEvent) Time() time.Time   { return e.At }
func (e KillEvent) Time() time.Time       { return e.At }
func (e WorldKillEvent) Time() time.Time  { return e.At }
func (e UnknownEvent) Time() time.Time    { return e.At }

func (MatchStartEvent) event() {}
func (MatchEndEvent) event()   {}
func (KillEvent) event()       {}
func (WorldKillEvent) event()  {}
func (UnknownEvent) event()    {}
