package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Shamsear/kickoff/models"
)

// ScoreValue is a score as submitted by a client: a JSON number or a string
// holding one. It is parsed and range-checked by Int.
type ScoreValue string

func (s *ScoreValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScore, err)
		}
		*s = ScoreValue(strings.TrimSpace(str))
		return nil
	}
	*s = ScoreValue(data)
	return nil
}

// Int returns the score as a non-negative integer.
func (s ScoreValue) Int() (int, error) {
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidScore, string(s))
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidScore, n)
	}
	return n, nil
}

// Score is a helper for building inputs in code.
func Score(n int) *ScoreValue {
	v := ScoreValue(strconv.Itoa(n))
	return &v
}

// LegInput is one player-versus-player leg of a team match.
type LegInput struct {
	Team1PlayerID    int        `json:"team1_player_id" validate:"required,gt=0"`
	Team2PlayerID    int        `json:"team2_player_id" validate:"required,gt=0"`
	Team1PlayerGoals ScoreValue `json:"team1_player_goals"`
	Team2PlayerGoals ScoreValue `json:"team2_player_goals"`
}

// ResultInput is the payload of a result submission. Solo matches use
// Score1/Score2. Team matches either send a single pair of player goals or a
// list of legs, in which case the team score is derived from the legs.
type ResultInput struct {
	Score1           *ScoreValue `json:"score1,omitempty"`
	Score2           *ScoreValue `json:"score2,omitempty"`
	Team1PlayerGoals *ScoreValue `json:"team1_player_goals,omitempty"`
	Team2PlayerGoals *ScoreValue `json:"team2_player_goals,omitempty"`
	Penalties1       *ScoreValue `json:"penalties1,omitempty"`
	Penalties2       *ScoreValue `json:"penalties2,omitempty"`

	SubMatches []LegInput `json:"sub_matches,omitempty" validate:"omitempty,dive"`

	TiebreakerType *models.TiebreakerType `json:"tiebreaker_type,omitempty" validate:"omitempty,oneof=best_of_1 best_of_3"`
	Notes          *string                `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type resultMode string

const (
	modeSolo     resultMode = "solo"
	modeSingle   resultMode = "single_leg"
	modeMultiLeg resultMode = "multi_leg"
)

// LegTally is one team's record across the legs of a match.
type LegTally struct {
	Wins   int
	Draws  int
	Losses int
	Goals  int
}

// Points converts the tally into a team score under the scoring policy.
func (t LegTally) Points(policy models.ScoringSystem) int {
	if policy == models.ScoringGoalBased {
		return t.Goals
	}
	return t.Wins*pointsPerLegWin + t.Draws
}

const pointsPerLegWin = 3

// TallyLegs folds completed legs into one tally per side.
func TallyLegs(legs []models.SubMatch) (LegTally, LegTally) {
	var home, away LegTally
	for _, leg := range legs {
		home.Goals += leg.Team1PlayerGoals
		away.Goals += leg.Team2PlayerGoals
		switch {
		case leg.Team1PlayerGoals > leg.Team2PlayerGoals:
			home.Wins++
			away.Losses++
		case leg.Team1PlayerGoals < leg.Team2PlayerGoals:
			away.Wins++
			home.Losses++
		default:
			home.Draws++
			away.Draws++
		}
	}
	return home, away
}

// resolvedResult is a validated submission ready to be written.
type resolvedResult struct {
	mode       resultMode
	score1     int
	score2     int
	penalties1 *int
	penalties2 *int
	winnerID   *int
	legs       []models.SubMatch
}

// drawn reports whether the result is level with goals on the board, the
// condition under which a knockout tie may go to a tiebreaker series.
func (r *resolvedResult) drawn() bool {
	return r.winnerID == nil && r.score1 == r.score2 && r.score1 > 0
}

// resolveResult validates the submission against the match and turns it into
// final scores, an optional winner and, for multi-leg results, the legs.
// Nothing is written; every score is checked before the caller touches
// storage.
func resolveResult(m *models.Match, policy models.ScoringSystem, in ResultInput) (*resolvedResult, error) {
	res := &resolvedResult{}
	var err error

	switch {
	case m.Kind == models.MatchKindSolo:
		res.mode = modeSolo
		if res.score1, err = requiredScore(in.Score1, "score1"); err != nil {
			return nil, err
		}
		if res.score2, err = requiredScore(in.Score2, "score2"); err != nil {
			return nil, err
		}

	case len(in.SubMatches) > 0:
		res.mode = modeMultiLeg
		res.legs = make([]models.SubMatch, 0, len(in.SubMatches))
		for i, leg := range in.SubMatches {
			g1, err := leg.Team1PlayerGoals.Int()
			if err != nil {
				return nil, fmt.Errorf("leg %d team1_player_goals: %w", i+1, err)
			}
			g2, err := leg.Team2PlayerGoals.Int()
			if err != nil {
				return nil, fmt.Errorf("leg %d team2_player_goals: %w", i+1, err)
			}
			sm := models.SubMatch{
				ParentMatchID:    m.ID,
				TournamentID:     m.TournamentID,
				MatchOrder:       i + 1,
				Team1ID:          m.Entrant1ID,
				Team2ID:          m.Entrant2ID,
				Team1PlayerID:    leg.Team1PlayerID,
				Team2PlayerID:    leg.Team2PlayerID,
				Team1PlayerGoals: g1,
				Team2PlayerGoals: g2,
				Status:           models.MatchCompleted,
			}
			switch {
			case g1 > g2:
				winner := leg.Team1PlayerID
				sm.WinnerPlayerID = &winner
			case g2 > g1:
				winner := leg.Team2PlayerID
				sm.WinnerPlayerID = &winner
			}
			res.legs = append(res.legs, sm)
		}
		home, away := TallyLegs(res.legs)
		res.score1, res.score2 = home.Points(policy), away.Points(policy)

	default:
		res.mode = modeSingle
		g1, err := requiredScore(in.Team1PlayerGoals, "team1_player_goals")
		if err != nil {
			return nil, err
		}
		g2, err := requiredScore(in.Team2PlayerGoals, "team2_player_goals")
		if err != nil {
			return nil, err
		}
		res.score1, res.score2 = singleLegScore(g1, g2, policy)
	}

	if res.mode != modeMultiLeg {
		if res.penalties1, err = optionalScore(in.Penalties1, "penalties1"); err != nil {
			return nil, err
		}
		if res.penalties2, err = optionalScore(in.Penalties2, "penalties2"); err != nil {
			return nil, err
		}
	}

	res.winnerID = decideWinner(m, res.score1, res.score2, res.penalties1, res.penalties2)
	return res, nil
}

// singleLegScore maps one pair of player goals to team scores. Win based
// tournaments score a win 3-0 and a draw 1-1.
func singleLegScore(g1, g2 int, policy models.ScoringSystem) (int, int) {
	if policy == models.ScoringGoalBased {
		return g1, g2
	}
	switch {
	case g1 > g2:
		return pointsPerLegWin, 0
	case g2 > g1:
		return 0, pointsPerLegWin
	default:
		return 1, 1
	}
}

// decideWinner picks the side with the higher score. Level scores go to the
// side with more penalties when both penalty counts were given.
func decideWinner(m *models.Match, s1, s2 int, p1, p2 *int) *int {
	side := func(first bool) *int {
		id := m.Entrant2ID
		if first {
			id = m.Entrant1ID
		}
		return &id
	}
	switch {
	case s1 > s2:
		return side(true)
	case s2 > s1:
		return side(false)
	case p1 != nil && p2 != nil && *p1 != *p2:
		return side(*p1 > *p2)
	}
	return nil
}

func requiredScore(v *ScoreValue, field string) (int, error) {
	if v == nil || *v == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidScore, field)
	}
	n, err := v.Int()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return n, nil
}

func optionalScore(v *ScoreValue, field string) (*int, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	n, err := v.Int()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &n, nil
}
