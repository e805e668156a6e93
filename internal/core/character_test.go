package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCharacterNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   CharacterInput
		want Character
	}{
		{
			name: "valid profile kept as-is",
			in: CharacterInput{
				Name:          "Knok-U-LAR-1",
				Rank:          "U",
				Sector:        "LAR",
				CloneNumber:   1,
				MutantPower:   "machine empathy",
				SecretSociety: "Computer Phreaks",
			},
			want: Character{
				Name:          "Knok-U-LAR-1",
				Rank:          "U",
				Sector:        "LAR",
				CloneNumber:   1,
				MutantPower:   "machine empathy",
				SecretSociety: "Computer Phreaks",
			},
		},
		{
			name: "invalid rank falls back to infrared",
			in:   CharacterInput{Rank: "X", Sector: "LAR"},
			want: Character{Rank: "", Sector: "LAR"},
		},
		{
			name: "lowercase rank rejected",
			in:   CharacterInput{Rank: "r", Sector: "LAR"},
			want: Character{Rank: "", Sector: "LAR"},
		},
		{
			name: "short sector falls back to default",
			in:   CharacterInput{Rank: "R", Sector: "LA"},
			want: Character{Rank: "R", Sector: DefaultSector},
		},
		{
			name: "lowercase sector falls back to default",
			in:   CharacterInput{Rank: "R", Sector: "lar"},
			want: Character{Rank: "R", Sector: DefaultSector},
		},
		{
			name: "negative clone number falls back to zero",
			in:   CharacterInput{CloneNumber: -3},
			want: Character{Sector: DefaultSector},
		},
		{
			name: "empty input gets all defaults",
			in:   CharacterInput{},
			want: Character{Sector: DefaultSector},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCharacter(tt.in)
			require.Equal(t, tt.want, *got)
		})
	}
}

func TestCharacterViewOmitsInfraredRank(t *testing.T) {
	infrared := NewCharacter(CharacterInput{Name: "drone"})
	require.Empty(t, infrared.View().Rank)

	violet := NewCharacter(CharacterInput{Name: "boss", Rank: "V"})
	require.Equal(t, "V", violet.View().Rank)
}
