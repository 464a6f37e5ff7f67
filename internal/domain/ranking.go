package domain

import (
	"cmp"
	"slices"
)

type PlayerRanking struct {
	Position   int     `json:"position"`
	PlayerName string  `json:"playerName"`
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	KDA        float64 `json:"KDA"`
}

type MatchRanking struct {
	MatchID string          `json:"matchId"`
	Ranking []PlayerRanking `json:"ranking"`
}

// PlayerAggregate is one player's totals across every stored match.
type PlayerAggregate struct {
	PlayerName    string
	TotalKills    int
	TotalDeaths   int
	BestStreak    int
	MatchesPlayed int
}

func (a PlayerAggregate) OverallKDA() float64 {
	return KDA(a.TotalKills, a.TotalDeaths)
}

type GlobalPlayerRanking struct {
	PlayerName    string  `json:"playerName"`
	TotalKills    int     `json:"totalKills"`
	TotalDeaths   int     `json:"totalDeaths"`
	OverallKDA    float64 `json:"overallKDA"`
	BestStreak    int     `json:"bestStreak"`
	MatchesPlayed int     `json:"matchesPlayed"`
}

// NewMatchRanking orders players by kills descending, then deaths ascending. Ties keep the order
// in which players first appeared in the match.
func NewMatchRanking(match *Match) MatchRanking {
	players := slices.Clone(match.PlayerStats)
	slices.SortStableFunc(players, func(a, b *PlayerStats) int {
		if c := cmp.Compare(b.Kills, a.Kills); c != 0 {
			return c
		}

		return cmp.Compare(a.Deaths, b.Deaths)
	})

	ranking := make([]PlayerRanking, len(players))
	for i, player := range players {
		ranking[i] = PlayerRanking{
			Position:   i + 1,
			PlayerName: player.PlayerName,
			Kills:      player.Kills,
			Deaths:     player.Deaths,
			KDA:        player.KDA(),
		}
	}

	return MatchRanking{MatchID: match.ID, Ranking: ranking}
}

// NewGlobalRanking orders players by overall KDA descending, then total kills descending.
func NewGlobalRanking(aggregates []PlayerAggregate) []GlobalPlayerRanking {
	ranking := make([]GlobalPlayerRanking, len(aggregates))
	for i, agg := range aggregates {
		ranking[i] = GlobalPlayerRanking{
			PlayerName:    agg.PlayerName,
			TotalKills:    agg.TotalKills,
			TotalDeaths:   agg.TotalDeaths,
			OverallKDA:    agg.OverallKDA(),
			BestStreak:    agg.BestStreak,
			MatchesPlayed: agg.MatchesPlayed,
		}
	}

	slices.SortStableFunc(ranking, func(a, b GlobalPlayerRanking) int {
		if c := cmp.Compare(b.OverallKDA, a.OverallKDA); c != 0 {
			return c
		}

		return cmp.Compare(b.TotalKills, a.TotalKills)
	})

	return ranking
}

// AggregatePlayers folds per match stats into per player totals, in order of first appearance.
func AggregatePlayers(matches []*Match) []PlayerAggregate {
	var (
		index      = make(map[string]int)
		aggregates []PlayerAggregate
	)

	for _, match := range matches {
		for _, player := range match.PlayerStats {
			idx, found := index[player.PlayerName]
			if !found {
				idx = len(aggregates)
				index[player.PlayerName] = idx
				aggregates = append(aggregates, PlayerAggregate{PlayerName: player.PlayerName})
			}

			agg := &aggregates[idx]
			agg.TotalKills += player.Kills
			agg.TotalDeaths += player.Deaths
			agg.BestStreak = max(agg.BestStreak, player.BestStreak)
			agg.MatchesPlayed++
		}
	}

	return aggregates
}
