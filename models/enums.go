package models

// Sport is the closed set of leagues the extractor recognises.
// Stable values (stored in DB and returned over the API).
type Sport string

const (
	SportNBA     Sport = "NBA"
	SportWNBA    Sport = "WNBA"
	SportNFL     Sport = "NFL"
	SportMLB     Sport = "MLB"
	SportNHL     Sport = "NHL"
	SportSoccer  Sport = "Soccer"
	SportTennis  Sport = "Tennis"
	SportEsports Sport = "Esports"
	SportUnknown Sport = "Unknown"
)

// StatType is the statistic a pick is bet against.
type StatType string

const (
	StatPoints         StatType = "Points"
	StatRebounds       StatType = "Rebounds"
	StatAssists        StatType = "Assists"
	StatPtsRebsAsts    StatType = "Pts+Rebs+Asts"
	StatFantasyScore   StatType = "Fantasy Score"
	StatThreePointers  StatType = "3-PT Made"
	StatHits           StatType = "Hits"
	StatStrikeouts     StatType = "Strikeouts"
	StatPassingYards   StatType = "Pass Yards"
	StatRushingYards   StatType = "Rush Yards"
	StatReceivingYards StatType = "Receiving Yards"
	StatGoals          StatType = "Goals"
	StatSaves          StatType = "Saves"
	StatKills          StatType = "Kills"
	StatUnknown        StatType = "Unknown"
)

// Direction is over/under relative to the line. Unknown means the slip
// did not resolve a direction; it is never guessed.
type Direction string

const (
	DirectionOver    Direction = "over"
	DirectionUnder   Direction = "under"
	DirectionUnknown Direction = "unknown"
)

// LineupStatus is the settlement state of a wager record.
type LineupStatus string

const (
	StatusPending   LineupStatus = "pending"
	StatusWin       LineupStatus = "win"
	StatusLoss      LineupStatus = "loss"
	StatusRefund    LineupStatus = "refund"
	StatusPush      LineupStatus = "push"
	StatusCancelled LineupStatus = "cancelled"
	StatusVoid      LineupStatus = "void"
)
