package scoring

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScoreTurn(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []int
		want     int
		wantErr  error
	}{
		{name: "sum of outcomes", outcomes: []int{3, 5, 6}, want: 14},
		{name: "single die", outcomes: []int{4}, want: 4},
		{name: "pig out on first die", outcomes: []int{1, 6, 6}, want: 1},
		{name: "pig out on last die", outcomes: []int{6, 6, 1}, want: 1},
		{name: "empty outcomes", outcomes: nil, wantErr: ErrInvalidOutcome},
		{name: "zero face", outcomes: []int{2, 0}, wantErr: ErrInvalidOutcome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreTurn(tt.outcomes)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeBacon(t *testing.T) {
	tests := []struct {
		opponentScore int
		want          int
	}{
		{opponentScore: 0, want: 1},
		{opponentScore: 7, want: 8},
		{opponentScore: 47, want: 8},
		{opponentScore: 90, want: 10},
		{opponentScore: 11, want: 2},
		{opponentScore: 99, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FreeBacon(tt.opponentScore), "opponent score %d", tt.opponentScore)
	}
}

func TestSelectDice(t *testing.T) {
	assert.Equal(t, dice.FourSided, SelectDice(0, 0))
	assert.Equal(t, dice.FourSided, SelectDice(3, 4))
	assert.Equal(t, dice.FourSided, SelectDice(50, 20))
	assert.Equal(t, dice.SixSided, SelectDice(1, 0))
	assert.Equal(t, dice.SixSided, SelectDice(50, 21))
}

func TestIsSwap(t *testing.T) {
	assert.True(t, IsSwap(20, 40))
	assert.True(t, IsSwap(40, 20))
	assert.True(t, IsSwap(0, 0))
	assert.False(t, IsSwap(20, 41))
	assert.False(t, IsSwap(10, 0))
}

func TestRollDice_ConsumesEveryDie(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mocks.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().Roll(dice.SixSided).Return(4),
		roller.EXPECT().Roll(dice.SixSided).Return(1),
		roller.EXPECT().Roll(dice.SixSided).Return(6),
	)

	result, err := RollDice(roller, 3, dice.SixSided)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 6}, result.Outcomes)
	assert.Equal(t, PigOutScore, result.Score)
	assert.True(t, result.PigOut)
}

func TestRollDice_Sum(t *testing.T) {
	result, err := RollDice(dice.NewTestRoller(4, 6, 2), 3, dice.SixSided)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Score)
	assert.False(t, result.PigOut)
}

func TestRollDice_Invalid(t *testing.T) {
	_, err := RollDice(dice.NewTestRoller(3), 0, dice.SixSided)
	assert.True(t, errors.Is(err, ErrInvalidNumRolls))

	_, err = RollDice(nil, 2, dice.SixSided)
	assert.True(t, errors.Is(err, ErrNilRoller))
}

func TestTakeTurn(t *testing.T) {
	t.Run("free bacon", func(t *testing.T) {
		result, err := TakeTurn(dice.NewTestRoller(6), 0, 47, dice.SixSided, GoalScore)
		require.NoError(t, err)
		assert.True(t, result.FreeBacon)
		assert.Equal(t, 8, result.Score)
		assert.Empty(t, result.Outcomes)
	})

	t.Run("rolls dice", func(t *testing.T) {
		result, err := TakeTurn(dice.NewTestRoller(3, 5), 2, 10, dice.SixSided, GoalScore)
		require.NoError(t, err)
		assert.False(t, result.FreeBacon)
		assert.Equal(t, 8, result.Score)
	})

	t.Run("too many dice", func(t *testing.T) {
		_, err := TakeTurn(dice.NewTestRoller(3), MaxRolls+1, 10, dice.SixSided, GoalScore)
		assert.True(t, errors.Is(err, ErrInvalidNumRolls))
	})

	t.Run("negative dice", func(t *testing.T) {
		_, err := TakeTurn(dice.NewTestRoller(3), -1, 10, dice.SixSided, GoalScore)
		assert.True(t, errors.Is(err, ErrInvalidNumRolls))
	})

	t.Run("game already over", func(t *testing.T) {
		_, err := TakeTurn(dice.NewTestRoller(3), 2, GoalScore, dice.SixSided, GoalScore)
		assert.True(t, errors.Is(err, ErrGameOver))
	})
}
