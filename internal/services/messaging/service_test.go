package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/hog/internal/dice"
	diceMocks "github.com/KirkDiggler/hog/internal/dice/mocks"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockDiceRoller *diceMocks.MockRoller
	service        Service
	ctx            context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{DiceRoller: s.mockDiceRoller})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestEventFor() {
	s.Equal(EventRoll, EventFor(nil))
	s.Equal(EventRoll, EventFor(&models.Turn{}))
	s.Equal(EventHogWild, EventFor(&models.Turn{HogWild: true}))
	s.Equal(EventFreeBacon, EventFor(&models.Turn{FreeBacon: true, HogWild: true}))
	s.Equal(EventPigOut, EventFor(&models.Turn{PigOut: true, HogWild: true}))
	s.Equal(EventSwineSwap, EventFor(&models.Turn{PigOut: true, Swapped: true}))
}

func (s *MessagingServiceTestSuite) TestGetTurnMessage_PigOutNeutral() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).Times(2)

	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		PlayerName:    "Wilbur",
		Turn:          &models.Turn{NumRolls: 3, Outcomes: []int{4, 1, 6}, Points: 1, PigOut: true},
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal(EventPigOut, out.Event)
	s.Equal(ToneNeutral, out.Tone)
	s.Equal("Pig Out!", out.Title)
	s.Equal("Wilbur rolled a 1 and scores 1 point.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetTurnMessage_DefaultsToFunny() {
	s.mockDiceRoller.EXPECT().Roll(3).Return(2).Times(2)

	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		PlayerName: "Babe",
		Turn:       &models.Turn{Points: 8, FreeBacon: true},
	})
	s.Require().NoError(err)
	s.Equal(ToneFunny, out.Tone)
	s.Equal(EventFreeBacon, out.Event)
	s.Equal("Sizzle!", out.Title)
	s.Equal("Why roll when there's bacon? Babe takes 8.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetTurnMessage_SwapShowsScores() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		PlayerName:    "Napoleon",
		Turn:          &models.Turn{Points: 5, Swapped: true, Scores: [2]int{30, 15}},
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal(EventSwineSwap, out.Event)
	s.Contains(out.Message, "Now 30 to 15")
}

func (s *MessagingServiceTestSuite) TestGetTurnMessage_RollListsOutcomes() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(1).AnyTimes()

	out, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{
		PlayerName:    "Wilbur",
		Turn:          &models.Turn{NumRolls: 2, Dice: dice.SixSided, Outcomes: []int{5, 6}, Points: 11},
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Wilbur rolled 5, 6 for 11 points.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetTurnMessage_NilTurn() {
	_, err := s.service.GetTurnMessage(s.ctx, &GetTurnMessageInput{PlayerName: "x"})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestPick_OutOfRangeRollFallsBack() {
	s.mockDiceRoller.EXPECT().Roll(gomock.Any()).Return(99).AnyTimes()

	out, err := s.service.GetGameOverMessage(s.ctx, &GetGameOverMessageInput{
		WinnerName:  "final",
		LoserName:   "always_roll:5",
		WinnerScore: 104,
		LoserScore:  71,
		Tone:        ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Game Over!", out.Title)
	s.Equal("final wins 104 to 71.", out.Message)
}

func (s *MessagingServiceTestSuite) TestGetAdviceMessage() {
	out, err := s.service.GetAdviceMessage(s.ctx, &GetAdviceMessageInput{
		Score: 10, OpponentScore: 47, NumRolls: 0, Dice: dice.SixSided, Value: 8,
	})
	s.Require().NoError(err)
	s.Equal("At 10 to 47, take the free bacon. Expected margin change: +8.00.", out.Message)

	out, err = s.service.GetAdviceMessage(s.ctx, &GetAdviceMessageInput{
		Score: 3, OpponentScore: 4, NumRolls: 4, Dice: dice.FourSided, Value: 1.5,
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "hog wild")
	s.Contains(out.Message, "Roll 4 four-sided dice")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	s.mockDiceRoller.EXPECT().Roll(2).Return(1)

	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeInvalidRolls})
	s.Require().NoError(err)
	s.Equal(ToneFunny, out.Tone)
	s.Equal("You can roll between 0 and 10 dice. No more, no less.", out.Message)
}
