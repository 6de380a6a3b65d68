package models

import "time"

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
)

// MatchKind tells team fixtures apart from solo fixtures. They are stored in
// separate tables and their ids are only unique per kind.
type MatchKind string

const (
	MatchKindTeam MatchKind = "team"
	MatchKindSolo MatchKind = "solo"
)

type TiebreakerType string

const (
	TiebreakerBestOf1 TiebreakerType = "best_of_1"
	TiebreakerBestOf3 TiebreakerType = "best_of_3"
)

// Games is the number of tiebreaker matches the type calls for.
func (t TiebreakerType) Games() int {
	switch t {
	case TiebreakerBestOf1:
		return 1
	case TiebreakerBestOf3:
		return 3
	}
	return 0
}

// Match is a fixture between two entrants. Entrant ids refer to teams for
// MatchKindTeam and to participants for MatchKindSolo.
type Match struct {
	ID            int         `json:"id" db:"id"`
	Kind          MatchKind   `json:"kind" db:"-"`
	TournamentID  int         `json:"tournament_id" db:"tournament_id"`
	Round         int         `json:"round" db:"round"`
	RoundName     string      `json:"round_name" db:"round_name"`
	MatchNumber   int         `json:"match_number" db:"match_number"`
	Entrant1ID    int         `json:"entrant1_id" db:"entrant1_id"`
	Entrant2ID    int         `json:"entrant2_id" db:"entrant2_id"`
	Score1        *int        `json:"score1" db:"score1"`
	Score2        *int        `json:"score2" db:"score2"`
	Penalties1    *int        `json:"penalties1,omitempty" db:"penalties1"`
	Penalties2    *int        `json:"penalties2,omitempty" db:"penalties2"`
	Status        MatchStatus `json:"status" db:"status"`
	WinnerID      *int        `json:"winner_id,omitempty" db:"winner_id"`
	ScheduledDate time.Time   `json:"scheduled_date" db:"scheduled_date"`
	Venue         *string     `json:"venue,omitempty" db:"venue"`
	Notes         *string     `json:"notes,omitempty" db:"notes"`
	HasSubMatches bool        `json:"has_sub_matches" db:"has_sub_matches"`

	IsTiebreaker            bool            `json:"is_tiebreaker" db:"is_tiebreaker"`
	ParentTiebreakerMatchID *int            `json:"parent_tiebreaker_match_id,omitempty" db:"parent_tiebreaker_match_id"`
	TiebreakerType          *TiebreakerType `json:"tiebreaker_type,omitempty" db:"tiebreaker_type"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	SubMatches []SubMatch `json:"sub_matches,omitempty" db:"-"`
}

// Goals returns both scores with nil treated as zero.
func (m *Match) Goals() (int, int) {
	return intOrZero(m.Score1), intOrZero(m.Score2)
}

// Involves reports whether the entrant plays in this match.
func (m *Match) Involves(entrantID int) bool {
	return m.Entrant1ID == entrantID || m.Entrant2ID == entrantID
}

// Opponent returns the other side of the match for a participating entrant.
func (m *Match) Opponent(entrantID int) int {
	if m.Entrant1ID == entrantID {
		return m.Entrant2ID
	}
	return m.Entrant1ID
}

// SubMatch is one player-versus-player leg of a team match.
type SubMatch struct {
	ID               int         `json:"id" db:"id"`
	ParentMatchID    int         `json:"parent_match_id" db:"parent_match_id"`
	TournamentID     int         `json:"tournament_id" db:"tournament_id"`
	MatchOrder       int         `json:"match_order" db:"match_order"`
	Team1ID          int         `json:"team1_id" db:"team1_id"`
	Team2ID          int         `json:"team2_id" db:"team2_id"`
	Team1PlayerID    int         `json:"team1_player_id" db:"team1_player_id"`
	Team2PlayerID    int         `json:"team2_player_id" db:"team2_player_id"`
	Team1PlayerGoals int         `json:"team1_player_goals" db:"team1_player_goals"`
	Team2PlayerGoals int         `json:"team2_player_goals" db:"team2_player_goals"`
	WinnerPlayerID   *int        `json:"winner_player_id,omitempty" db:"winner_player_id"`
	Status           MatchStatus `json:"status" db:"status"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
}

// MatchParticipant records one player's goals in one leg.
type MatchParticipant struct {
	ID         int `json:"id" db:"id"`
	MatchID    int `json:"match_id" db:"match_id"`
	SubMatchID int `json:"sub_match_id" db:"sub_match_id"`
	PlayerID   int `json:"player_id" db:"player_id"`
	TeamID     int `json:"team_id" db:"team_id"`
	Goals      int `json:"goals" db:"goals"`
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
