package db

import (
	"time"
)

type Match struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}

type PlayerStat struct {
	ID          string
	MatchID     string
	PlayerName  string
	Kills       int64
	Deaths      int64
	BestStreak  int64
	WeaponStats string
	Position    int64
}
