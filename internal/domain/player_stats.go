package domain

import "math"

// PlayerStats holds one player's combat counters for a single match.
type PlayerStats struct {
	PlayerName  string
	Kills       int
	Deaths      int
	WeaponsUsed map[string]int
	BestStreak  int

	currentStreak int
}

func NewPlayerStats(playerName string) *PlayerStats {
	return &PlayerStats{
		PlayerName:  playerName,
		WeaponsUsed: make(map[string]int),
	}
}

// RestorePlayerStats rebuilds stats loaded from storage. The running streak is not persisted
// and starts at zero.
func RestorePlayerStats(playerName string, kills, deaths, bestStreak int, weapons map[string]int) *PlayerStats {
	if weapons == nil {
		weapons = make(map[string]int)
	}

	return &PlayerStats{
		PlayerName:  playerName,
		Kills:       kills,
		Deaths:      deaths,
		WeaponsUsed: weapons,
		BestStreak:  bestStreak,
	}
}

func (p *PlayerStats) AddKill(weapon string) {
	p.Kills++
	p.WeaponsUsed[weapon]++
	p.currentStreak++
	p.BestStreak = max(p.BestStreak, p.currentStreak)
}

// AddDeath ends the running kill streak. BestStreak is kept.
func (p *PlayerStats) AddDeath() {
	p.Deaths++
	p.currentStreak = 0
}

func (p *PlayerStats) CurrentStreak() int {
	return p.currentStreak
}

func (p *PlayerStats) KDA() float64 {
	return KDA(p.Kills, p.Deaths)
}

// KDA is kills when deaths is zero, otherwise kills/deaths rounded to two decimals.
func KDA(kills, deaths int) float64 {
	if deaths == 0 {
		return float64(kills)
	}

	return math.Round(float64(kills)/float64(deaths)*100) / 100
}
