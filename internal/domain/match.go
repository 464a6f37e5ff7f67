package domain

import "time"

// Match is one game session reconstructed from the log. It is owned by a single writer while
// being parsed and treated as read only once ended.
type Match struct {
	ID          string
	StartTime   time.Time
	EndTime     *time.Time
	PlayerStats []*PlayerStats
}

func NewMatch(event MatchStartEvent) *Match {
	return &Match{
		ID:          event.MatchID,
		StartTime:   event.At,
		PlayerStats: []*PlayerStats{},
	}
}

// RestoreMatch rebuilds a match loaded from storage.
func RestoreMatch(id string, startTime time.Time, endTime *time.Time, players []*PlayerStats) *Match {
	if players == nil {
		players = []*PlayerStats{}
	}

	return &Match{
		ID:          id,
		StartTime:   startTime,
		EndTime:     endTime,
		PlayerStats: players,
	}
}

func (m *Match) HasEnded() bool {
	return m.EndTime != nil
}

// End closes the match. There is no guard against ending twice; a repeated end with the same
// id moves EndTime.
func (m *Match) End(event MatchEndEvent) error {
	if m.ID != event.MatchID {
		return &MatchIDMismatchError{Expected: m.ID, Actual: event.MatchID}
	}

	endTime := event.At
	m.EndTime = &endTime

	return nil
}

func (m *Match) AddKill(event KillEvent) error {
	if m.HasEnded() {
		return ErrMatchAlreadyEnded
	}

	killer := m.getOrCreatePlayer(event.Killer)
	victim := m.getOrCreatePlayer(event.Victim)

	killer.AddKill(event.Weapon)
	victim.AddDeath()

	return nil
}

func (m *Match) AddWorldKill(event WorldKillEvent) error {
	if m.HasEnded() {
		return ErrMatchAlreadyEnded
	}

	m.getOrCreatePlayer(event.Victim).AddDeath()

	return nil
}

func (m *Match) Player(name string) (*PlayerStats, bool) {
	for _, player := range m.PlayerStats {
		if player.PlayerName == name {
			return player, true
		}
	}

	return nil, false
}

func (m *Match) getOrCreatePlayer(name string) *PlayerStats {
	if player, found := m.Player(name); found {
		return player
	}

	player := NewPlayerStats(name)
	m.PlayerStats = append(m.PlayerStats, player)

	return player
}
