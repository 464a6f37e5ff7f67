package domain_test

import (
	"testing"

	"gamelog-tracker/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPlayerStatsAddKill(t *testing.T) {
	player := domain.NewPlayerStats("Roman")

	player.AddKill("M16")
	player.AddKill("M16")
	player.AddKill("AK47")

	require.Equal(t, 3, player.Kills)
	require.Equal(t, 0, player.Deaths)
	require.Equal(t, map[string]int{"M16": 2, "AK47": 1}, player.WeaponsUsed)
	require.Equal(t, 3, player.BestStreak)
	require.Equal(t, 3, player.CurrentStreak())
}

func TestPlayerStatsAddDeathResetsStreak(t *testing.T) {
	player := domain.NewPlayerStats("Nick")

	player.AddKill("M16")
	player.AddKill("M16")
	player.AddDeath()

	require.Equal(t, 1, player.Deaths)
	require.Equal(t, 0, player.CurrentStreak())
	require.Equal(t, 2, player.BestStreak)
}

func TestPlayerStatsBestStreak(t *testing.T) {
	// k = kill, d = death
	tests := []struct {
		seq  string
		best int
	}{
		{"", 0},
		{"d", 0},
		{"k", 1},
		{"kkdk", 2},
		{"kdkkkdkk", 3},
		{"ddkkkk", 4},
		{"kkkkdkkkk", 4},
		{"kdkdkd", 1},
	}

	for _, test := range tests {
		t.Run(test.seq, func(t *testing.T) {
			player := domain.NewPlayerStats("p")
			previous := 0

			for _, step := range test.seq {
				if step == 'k' {
					player.AddKill("gun")
				} else {
					player.AddDeath()
				}

				require.GreaterOrEqual(t, player.BestStreak, previous)
				require.GreaterOrEqual(t, player.BestStreak, player.CurrentStreak())
				previous = player.BestStreak
			}

			require.Equal(t, test.best, player.BestStreak)
		})
	}
}

func TestKDA(t *testing.T) {
	tests := []struct {
		kills, deaths int
		want          float64
	}{
		{0, 0, 0},
		{5, 0, 5},
		{3, 2, 1.5},
		{2, 3, 0.67},
		{1, 3, 0.33},
		{10, 4, 2.5},
		{5, 20, 0.25},
		{0, 7, 0},
	}

	for _, test := range tests {
		require.Equal(t, test.want, domain.KDA(test.kills, test.deaths), "%d/%d", test.kills, test.deaths)
	}

	player := domain.RestorePlayerStats("p", 3, 2, 2, nil)
	require.Equal(t, 1.5, player.KDA())
	require.NotNil(t, player.WeaponsUsed)
}
