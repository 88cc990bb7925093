package game

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/KirkDiggler/hog/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/hog/internal/common/uuid/mocks"
	"github.com/KirkDiggler/hog/internal/dice"
	diceMocks "github.com/KirkDiggler/hog/internal/dice/mocks"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    Service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()

	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller, Clock: s.mockClock, UUIDGenerator: s.mockUUID, GoalScore: -1})
	s.ErrorIs(err, ErrInvalidGoal)
}

func (s *GameServiceTestSuite) TestTakeTurn_HogWildUsesFourSides() {
	s.mockDiceRoller.EXPECT().Roll(dice.FourSided).Return(3).Times(2)

	out, err := s.gameService.TakeTurn(s.ctx, &TakeTurnInput{
		Score:         3,
		OpponentScore: 4,
		NumRolls:      2,
	})
	s.Require().NoError(err)
	s.Equal(9, out.Score)
	s.Equal(4, out.OpponentScore)
	s.True(out.Turn.HogWild)
	s.Equal(dice.FourSided, out.Turn.Dice)
	s.Equal([]int{3, 3}, out.Turn.Outcomes)
}

func (s *GameServiceTestSuite) TestTakeTurn_PigOut() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(dice.SixSided).Return(1),
		s.mockDiceRoller.EXPECT().Roll(dice.SixSided).Return(6),
	)

	out, err := s.gameService.TakeTurn(s.ctx, &TakeTurnInput{
		Score:         10,
		OpponentScore: 5,
		NumRolls:      2,
	})
	s.Require().NoError(err)
	s.Equal(11, out.Score)
	s.True(out.Turn.PigOut)
	s.Equal(1, out.Turn.Points)
}

func (s *GameServiceTestSuite) TestTakeTurn_FreeBaconSwap() {
	// 7 + free bacon of 24 (5) = 12, half of 24
	out, err := s.gameService.TakeTurn(s.ctx, &TakeTurnInput{
		Score:         7,
		OpponentScore: 24,
		NumRolls:      0,
	})
	s.Require().NoError(err)
	s.True(out.Turn.FreeBacon)
	s.True(out.Turn.Swapped)
	s.Equal(24, out.Score)
	s.Equal(12, out.OpponentScore)
	s.Zero(out.Turn.Dice)
}

func (s *GameServiceTestSuite) TestTakeTurn_InvalidChoice() {
	_, err := s.gameService.TakeTurn(s.ctx, &TakeTurnInput{NumRolls: 11})
	s.ErrorIs(err, ErrInvalidStrategyChoice)

	_, err = s.gameService.TakeTurn(s.ctx, &TakeTurnInput{NumRolls: -1})
	s.ErrorIs(err, ErrInvalidStrategyChoice)
}

func (s *GameServiceTestSuite) TestTakeTurn_GameOver() {
	_, err := s.gameService.TakeTurn(s.ctx, &TakeTurnInput{Score: 100, NumRolls: 1})
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestPlayGame_WithSwap() {
	s.mockDiceRoller.EXPECT().Roll(dice.FourSided).Return(3).Times(2)
	s.mockDiceRoller.EXPECT().Roll(dice.SixSided).Return(3).Times(4)

	out, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		Players: [2]Player{
			{Name: "always_roll:2", Strategy: strategy.AlwaysRoll(2)},
			{Name: "always_roll:2", Strategy: strategy.AlwaysRoll(2)},
		},
		Goal:        10,
		RecordTurns: true,
	})
	s.Require().NoError(err)

	game := out.Game
	s.Equal(s.testGameID, game.ID)
	s.Equal(models.GameStatusCompleted, game.Status)
	s.Equal(s.testTime, game.CreatedAt)
	s.Equal(s.testTime, game.CompletedAt)

	score0, score1 := game.Scores()
	s.Equal(6, score0)
	s.Equal(12, score1)
	s.Equal(1, game.Winner)

	s.Require().Len(game.Turns, 3)
	s.True(game.Turns[0].HogWild)
	s.Equal([2]int{6, 0}, game.Turns[0].Scores)
	s.Equal(1, game.Turns[1].Seat)
	s.Equal([2]int{6, 6}, game.Turns[1].Scores)
	s.True(game.Turns[2].Swapped)
	s.Equal([2]int{6, 12}, game.Turns[2].Scores)
}

func (s *GameServiceTestSuite) TestPlayGame_FreeBaconOnly() {
	// No dice are rolled, so the roller mock expects no calls
	out, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		Players: [2]Player{
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
		},
		Goal: 5,
	})
	s.Require().NoError(err)

	score0, score1 := out.Game.Scores()
	s.Equal(4, score0)
	s.Equal(6, score1)
	s.Equal(1, out.Game.Winner)
	s.Empty(out.Game.Turns)
}

func (s *GameServiceTestSuite) TestPlayGame_InvalidStrategyChoice() {
	_, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		Players: [2]Player{
			{Name: "eleven", Strategy: strategy.AlwaysRoll(11)},
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
		},
	})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidStrategyChoice))
}

func (s *GameServiceTestSuite) TestPlayGame_NilStrategy() {
	_, err := s.gameService.PlayGame(s.ctx, &PlayGameInput{
		Players: [2]Player{
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
		},
	})
	s.ErrorIs(err, ErrNilStrategy)
}

func (s *GameServiceTestSuite) TestPlayGame_Cancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.gameService.PlayGame(ctx, &PlayGameInput{
		Players: [2]Player{
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
			{Name: "zero", Strategy: strategy.AlwaysRoll(0)},
		},
	})
	s.ErrorIs(err, context.Canceled)
}

func TestPlayGame_RealDiceAlwaysFinishes(t *testing.T) {
	svc, err := New(&Config{
		DiceRoller:    dice.New(&dice.Config{Seed: 1}),
		Clock:         &fixedClock{},
		UUIDGenerator: &counterUUID{},
	})
	if err != nil {
		t.Fatal(err)
	}

	catalog := strategy.NewCatalog(nil)
	final, err := catalog.Build(strategy.Spec{Name: strategy.NameFinal})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		out, err := svc.PlayGame(context.Background(), &PlayGameInput{
			Players: [2]Player{
				{Name: "final", Strategy: final},
				{Name: "always_roll:5", Strategy: strategy.AlwaysRoll(5)},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		score0, score1 := out.Game.Scores()
		if max(score0, score1) < 100 {
			t.Fatalf("game ended early at %d-%d", score0, score1)
		}
	}
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Time{} }

type counterUUID struct{ n int }

func (c *counterUUID) NewUUID() string {
	c.n++
	return "game-" + strconv.Itoa(c.n)
}
