package models

// Outcome is one entry of a form guide.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// Standing is one computed row of a tournament table. It is never persisted.
type Standing struct {
	EntrantID      int       `json:"entrant_id"`
	Name           string    `json:"name"`
	Position       int       `json:"position"`
	Points         int       `json:"points"`
	MatchesPlayed  int       `json:"matches_played"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	CleanSheets    int       `json:"clean_sheets"`
	FormGuide      []Outcome `json:"form_guide"`
}

// TournamentStatistics summarises the completed matches of a tournament.
type TournamentStatistics struct {
	CompletedMatches    int          `json:"completed_matches"`
	TotalGoals          int          `json:"total_goals"`
	AvgGoalsPerMatch    float64      `json:"avg_goals_per_match"`
	DrawPercentage      float64      `json:"draw_percentage"`
	DecisivePercentage  float64      `json:"decisive_percentage"`
	MatchesWithShutout  int          `json:"matches_with_clean_sheet"`
	HighestScoringMatch *MatchRecord `json:"highest_scoring_match,omitempty"`
	BiggestVictory      *MatchRecord `json:"biggest_victory,omitempty"`
	TopScorer           *EntrantStat `json:"top_scorer,omitempty"`
	BestDefense         *EntrantStat `json:"best_defense,omitempty"`
	MostWins            *EntrantStat `json:"most_wins,omitempty"`
}

// MatchRecord points at the match holding a tournament record.
type MatchRecord struct {
	MatchID int `json:"match_id"`
	Goals   int `json:"total_goals,omitempty"`
	Margin  int `json:"margin,omitempty"`
}

// EntrantStat is a leaderboard highlight for a single entrant.
type EntrantStat struct {
	EntrantID     int     `json:"entrant_id"`
	Name          string  `json:"name"`
	Value         int     `json:"value"`
	MatchesPlayed int     `json:"matches_played"`
	PerMatch      float64 `json:"per_match,omitempty"`
	CleanSheets   int     `json:"clean_sheets,omitempty"`
	WinPercentage float64 `json:"win_percentage,omitempty"`
}
