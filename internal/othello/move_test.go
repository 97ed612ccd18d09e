package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMove_String(t *testing.T) {
	require.Equal(t, "a1", Move{0, 0}.String())
	require.Equal(t, "c3", Move{2, 2}.String())
	require.Equal(t, "h8", Move{7, 7}.String())
	require.Equal(t, "d12", Move{3, 11}.String())
	require.Equal(t, "(-1,0)", Move{-1, 0}.String())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		field   string
		want    Move
		wantErr bool
	}{
		{"a1", Move{0, 0}, false},
		{"C3", Move{2, 2}, false},
		{" h8 ", Move{7, 7}, false},
		{"d12", Move{3, 11}, false},
		{"a0", Move{}, true},
		{"1a", Move{}, true},
		{"a", Move{}, true},
		{"", Move{}, true},
		{"ax", Move{}, true},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			got, err := ParseMove(test.field)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidField)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
			require.Equal(t, got, mustRoundTrip(t, got))
		})
	}
}

func mustRoundTrip(t *testing.T, m Move) Move {
	t.Helper()
	parsed, err := ParseMove(m.String())
	require.NoError(t, err)
	return parsed
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("X")
	require.NoError(t, err)
	require.Equal(t, Black, side)

	side, err = ParseSide("o")
	require.NoError(t, err)
	require.Equal(t, White, side)

	_, err = ParseSide(".")
	require.ErrorIs(t, err, ErrInvalidSide)
}

func TestCell(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent())

	require.True(t, Black.IsSide())
	require.False(t, Empty.IsSide())

	require.Equal(t, "X", Black.Symbol())
	require.Equal(t, "O", White.Symbol())
	require.Equal(t, ".", Empty.Symbol())
	require.Equal(t, "white", White.String())
}
