package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournamentValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		t       Tournament
		wantErr error
	}{
		{
			name: "solo with participant limit",
			t:    Tournament{Type: TournamentSolo, Solo: &SoloTournamentConfig{MaxParticipants: 16}},
		},
		{
			name: "team with team limits",
			t:    Tournament{Type: TournamentTeam, Team: &TeamTournamentConfig{MaxTeams: 8, MaxPlayersPerTeam: 5}},
		},
		{
			name:    "solo without config",
			t:       Tournament{Type: TournamentSolo},
			wantErr: ErrTournamentConfigMissing,
		},
		{
			name: "solo carrying team limits",
			t: Tournament{
				Type: TournamentSolo,
				Solo: &SoloTournamentConfig{MaxParticipants: 4},
				Team: &TeamTournamentConfig{MaxTeams: 4, MaxPlayersPerTeam: 2},
			},
			wantErr: ErrTournamentConfigMismatch,
		},
		{
			name:    "team with participant limit",
			t:       Tournament{Type: TournamentTeam, Solo: &SoloTournamentConfig{MaxParticipants: 4}},
			wantErr: ErrTournamentConfigMissing,
		},
		{
			name:    "unknown type",
			t:       Tournament{Type: "mixed"},
			wantErr: ErrTournamentTypeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.t.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTournamentFormatNormalize(t *testing.T) {
	t.Parallel()

	got, ok := FormatGroupStage.Normalize()
	assert.True(t, ok)
	assert.Equal(t, FormatGroupStage, got)

	got, ok = TournamentFormat("ladder").Normalize()
	assert.False(t, ok)
	assert.Equal(t, FormatRoundRobin, got)
}

func TestTournamentFormatIsElimination(t *testing.T) {
	t.Parallel()

	for _, f := range []TournamentFormat{FormatSingleElimination, FormatKnockout, FormatDoubleElimination} {
		assert.True(t, f.IsElimination(), f)
	}
	for _, f := range []TournamentFormat{FormatRoundRobin, FormatLeague, FormatGroupStage, FormatSwiss} {
		assert.False(t, f.IsElimination(), f)
	}
}

func TestTournamentCapacityAndKind(t *testing.T) {
	t.Parallel()

	solo := Tournament{ID: 7, Type: TournamentSolo, Solo: &SoloTournamentConfig{MaxParticipants: 12}}
	assert.Equal(t, 12, solo.Capacity())
	assert.Equal(t, MatchKindSolo, solo.MatchKind())
	assert.Equal(t, "tournament_7", solo.Room())

	team := Tournament{Type: TournamentTeam, Team: &TeamTournamentConfig{MaxTeams: 6, MaxPlayersPerTeam: 3}}
	assert.Equal(t, 6, team.Capacity())
	assert.Equal(t, MatchKindTeam, team.MatchKind())
}

func TestTiebreakerGames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, TiebreakerBestOf1.Games())
	assert.Equal(t, 3, TiebreakerBestOf3.Games())
	assert.Equal(t, 0, TiebreakerType("best_of_5").Games())
}
