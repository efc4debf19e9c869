package models

import "time"

// Player is one pick inside a Lineup: a player, the statistic bet on,
// the line, and the over/under direction. ActualValue and IsWin stay nil
// until the pick settles.
type Player struct {
	ID          uint `gorm:"primaryKey" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	LineupID    uint      `gorm:"index;not null" json:"-"`
	Slot        int       `gorm:"not null" json:"-"` // on-screen order, top to bottom
	Name        string    `gorm:"size:128;not null" json:"name"`
	Sport       Sport     `gorm:"size:32;not null" json:"sport"`
	StatType    StatType  `gorm:"size:64;not null" json:"statType"`
	Line        float64   `gorm:"not null" json:"line"`
	Direction   Direction `gorm:"size:16;not null" json:"direction"`
	Opponent    string    `gorm:"size:128" json:"opponent,omitempty"`
	MatchStatus string    `gorm:"size:64" json:"matchStatus,omitempty"`
	ActualValue *float64  `json:"actualValue,omitempty"`
	IsWin       *bool     `json:"isWin,omitempty"`
}

// Lineup is one wager record: a set of picks plus stake and payout terms.
// A scanned lineup starts as a draft (Confirmed=false) and becomes
// authoritative only after the review step; the pipeline never edits a
// lineup after construction.
type Lineup struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
	UserID          uint      `gorm:"index" json:"-"`
	Type            string    `gorm:"size:64;not null" json:"type"` // e.g. "4-Pick Flex Play"
	EntryAmount     float64   `gorm:"not null" json:"entryAmount"`
	PotentialPayout float64   `gorm:"not null" json:"potentialPayout"`
	ActualPayout    *float64  `json:"actualPayout,omitempty"`
	Status          LineupStatus `gorm:"size:16;not null;default:pending" json:"status"`
	Confirmed       bool         `gorm:"default:false;index" json:"confirmed"`
	Players         []Player     `gorm:"foreignKey:LineupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"players"`
	Date            *time.Time   `json:"date,omitempty"`
}

// Clone deep-copies a lineup so corrections never touch the original.
func (l *Lineup) Clone() *Lineup {
	out := *l
	out.Players = make([]Player, len(l.Players))
	copy(out.Players, l.Players)
	for i := range out.Players {
		if v := l.Players[i].ActualValue; v != nil {
			av := *v
			out.Players[i].ActualValue = &av
		}
		if w := l.Players[i].IsWin; w != nil {
			iw := *w
			out.Players[i].IsWin = &iw
		}
	}
	if l.ActualPayout != nil {
		ap := *l.ActualPayout
		out.ActualPayout = &ap
	}
	if l.Date != nil {
		d := *l.Date
		out.Date = &d
	}
	return &out
}
