package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/hog/internal/dice"
	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/services/experiment"
	"github.com/KirkDiggler/hog/internal/services/game"
	"github.com/KirkDiggler/hog/internal/services/messaging"
	"github.com/KirkDiggler/hog/internal/services/scoring"
	"github.com/KirkDiggler/hog/internal/services/strategy"
	"github.com/bwmarrin/discordgo"
)

const (
	// ButtonRematchPrefix starts the custom ID of a rematch button. The rest
	// of the ID is "strategy|baseline".
	ButtonRematchPrefix = "hog_rematch:"

	defaultWinRateSamples = 1000
	maxWinRateSamples     = 5000
	highlightTurns        = 8
)

var (
	errInvalidScore = errors.New("invalid score")
	errInvalidRolls = errors.New("invalid rolls")
)

// HogCommandConfig holds the services behind the /hog command
type HogCommandConfig struct {
	GameService       game.Service
	ExperimentService experiment.Service
	MessagingService  messaging.Service
	Catalog           *strategy.Catalog
}

// HogCommand handles the /hog command
type HogCommand struct {
	BaseCommand
	gameService       game.Service
	experimentService experiment.Service
	messagingService  messaging.Service
	catalog           *strategy.Catalog
}

// NewHogCommand creates a new hog command handler
func NewHogCommand(cfg *HogCommandConfig) (*HogCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.ExperimentService == nil {
		return nil, errors.New("experiment service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Catalog == nil {
		return nil, errors.New("catalog cannot be nil")
	}

	minRolls := 1.0
	minScore := 0.0

	return &HogCommand{
		BaseCommand: BaseCommand{
			Name:        "hog",
			Description: "Hog dice game odds, advice and simulated games",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "odds",
					Description: "Exact turn total odds for a number of dice",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rolls",
							Description: "Number of dice to roll",
							Required:    true,
							MinValue:    &minRolls,
							MaxValue:    scoring.MaxRolls,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "dice",
							Description: "Sides per die",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "six-sided", Value: dice.SixSided},
								{Name: "four-sided", Value: dice.FourSided},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "advise",
					Description: "Best number of dice for a score",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "score",
							Description: "Your score",
							Required:    true,
							MinValue:    &minScore,
							MaxValue:    scoring.GoalScore - 1,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "opponent",
							Description: "Your opponent's score",
							Required:    true,
							MinValue:    &minScore,
							MaxValue:    scoring.GoalScore - 1,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "play",
					Description: "Simulate a game between two strategies",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "strategy",
							Description: "Strategy such as final, hybrid, swap or always_roll:6",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "baseline",
							Description: "Opposing strategy, always_roll:5 by default",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "winrate",
					Description: "Measure a strategy's win rate over many games",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "strategy",
							Description: "Strategy to measure",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "baseline",
							Description: "Opposing strategy, always_roll:5 by default",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "samples",
							Description: "Games per seat",
							MinValue:    &minRolls,
							MaxValue:    maxWinRateSamples,
						},
					},
				},
			},
		},
		gameService:       cfg.GameService,
		experimentService: cfg.ExperimentService,
		messagingService:  cfg.MessagingService,
		catalog:           cfg.Catalog,
	}, nil
}

// Handle processes a Discord interaction for the hog command
func (c *HogCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]

	var r *reply
	var err error
	switch sub.Name {
	case "odds":
		r, err = c.odds(intOption(sub, "rolls", 0), intOption(sub, "dice", dice.SixSided))
	case "advise":
		r, err = c.advise(ctx, intOption(sub, "score", -1), intOption(sub, "opponent", -1))
	case "play":
		r, err = c.play(ctx, stringOption(sub, "strategy", ""), stringOption(sub, "baseline", ""))
	case "winrate":
		r, err = c.winRate(ctx, stringOption(sub, "strategy", ""), stringOption(sub, "baseline", ""),
			intOption(sub, "samples", defaultWinRateSamples))
	default:
		err = errors.New("unknown subcommand")
	}
	if err != nil {
		log.Printf("Error handling /hog %s: %v", sub.Name, err)
		return RespondWithError(s, i, c.errorMessage(ctx, err))
	}

	return renderReply(s, i, r)
}

// HandleRematch replays the game named by a rematch button
func (c *HogCommand) HandleRematch(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	strategyRaw, baselineRaw, ok := parseRematchID(i.MessageComponentData().CustomID)
	if !ok {
		return RespondWithError(s, i, c.errorMessage(ctx, nil))
	}

	r, err := c.play(ctx, strategyRaw, baselineRaw)
	if err != nil {
		log.Printf("Error handling rematch: %v", err)
		return RespondWithError(s, i, c.errorMessage(ctx, err))
	}

	return renderReply(s, i, r)
}

// odds shows the exact distribution for rolling rolls dice
func (c *HogCommand) odds(rolls, sides int) (*reply, error) {
	if rolls < 1 || rolls > scoring.MaxRolls {
		return nil, fmt.Errorf("%w: %d", errInvalidRolls, rolls)
	}

	dist, err := c.catalog.Evaluator().Cache().Get(rolls, sides)
	if err != nil {
		return nil, err
	}

	return &reply{
		Title:       fmt.Sprintf("Rolling %d d%d", rolls, sides),
		Description: fmt.Sprintf("Exact odds for %d %d-sided dice. Any 1 scores a single point.", rolls, sides),
		Fields:      renderDistributionFields(dist),
	}, nil
}

// advise recommends the number of dice with the best expected margin
func (c *HogCommand) advise(ctx context.Context, score, opponentScore int) (*reply, error) {
	if score < 0 || score >= scoring.GoalScore || opponentScore < 0 || opponentScore >= scoring.GoalScore {
		return nil, fmt.Errorf("%w: %d-%d", errInvalidScore, score, opponentScore)
	}

	sides := scoring.SelectDice(score, opponentScore)
	numRolls, value, err := c.catalog.Evaluator().BestFutureRoll(sides, score, opponentScore)
	if err != nil {
		return nil, err
	}

	out, err := c.messagingService.GetAdviceMessage(ctx, &messaging.GetAdviceMessageInput{
		Score:         score,
		OpponentScore: opponentScore,
		NumRolls:      numRolls,
		Dice:          sides,
		Value:         value,
	})
	if err != nil {
		return nil, err
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Roll", Value: fmt.Sprintf("%d", numRolls), Inline: true},
		{Name: "Dice", Value: fmt.Sprintf("d%d", sides), Inline: true},
	}
	if numRolls == 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Free bacon",
			Value:  fmt.Sprintf("%d", scoring.FreeBacon(opponentScore)),
			Inline: true,
		})
	}

	return &reply{
		Title:       "Hog Advice",
		Description: out.Message,
		Fields:      fields,
		Ephemeral:   true,
	}, nil
}

// play simulates one game and narrates its last turns
func (c *HogCommand) play(ctx context.Context, strategyRaw, baselineRaw string) (*reply, error) {
	players, specs, err := c.players(strategyRaw, baselineRaw)
	if err != nil {
		return nil, err
	}

	out, err := c.gameService.PlayGame(ctx, &game.PlayGameInput{
		Players:     players,
		RecordTurns: true,
	})
	if err != nil {
		return nil, err
	}
	g := out.Game

	names := [2]string{
		fmt.Sprintf("Player 1 (%s)", players[0].Name),
		fmt.Sprintf("Player 2 (%s)", players[1].Name),
	}

	over, err := c.messagingService.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerName:  names[g.Winner],
		LoserName:   names[1-g.Winner],
		WinnerScore: g.Participants[g.Winner].Score,
		LoserScore:  g.Participants[1-g.Winner].Score,
	})
	if err != nil {
		return nil, err
	}

	lines, err := c.highlights(ctx, g, names)
	if err != nil {
		return nil, err
	}

	fields := []*discordgo.MessageEmbedField{renderScoreField(g, names)}
	if field := renderHighlights(lines); field != nil {
		fields = append(fields, field)
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "Turns",
		Value:  fmt.Sprintf("%d", len(g.Turns)),
		Inline: true,
	})

	return &reply{
		Title:       over.Title,
		Description: over.Message,
		Color:       colorPink,
		Fields:      fields,
		Buttons: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Rematch",
				Style:    discordgo.PrimaryButton,
				CustomID: rematchID(specs[0], specs[1]),
				Emoji: &discordgo.ComponentEmoji{
					Name: "🐷",
				},
			},
		},
	}, nil
}

// highlights returns commentary for the last turns of g
func (c *HogCommand) highlights(ctx context.Context, g *models.Game, names [2]string) ([]string, error) {
	turns := g.Turns
	if len(turns) > highlightTurns {
		turns = turns[len(turns)-highlightTurns:]
	}

	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		out, err := c.messagingService.GetTurnMessage(ctx, &messaging.GetTurnMessageInput{
			PlayerName: names[turn.Seat],
			Turn:       turn,
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, fmt.Sprintf("**%s** %s", out.Title, out.Message))
	}
	return lines, nil
}

// winRate measures a strategy against a baseline from both seats
func (c *HogCommand) winRate(ctx context.Context, strategyRaw, baselineRaw string, samples int) (*reply, error) {
	_, specs, err := c.players(strategyRaw, baselineRaw)
	if err != nil {
		return nil, err
	}
	if samples < 1 || samples > maxWinRateSamples {
		samples = defaultWinRateSamples
	}

	out, err := c.experimentService.WinRate(ctx, &experiment.WinRateInput{
		Strategy: specs[0],
		Baseline: specs[1],
		Samples:  samples,
	})
	if err != nil {
		return nil, err
	}

	return &reply{
		Title:       fmt.Sprintf("%s vs %s", specs[0], specs[1]),
		Description: fmt.Sprintf("%s wins **%s** of games over %d games per seat.", specs[0], percent(out.WinRate), samples),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Moving first", Value: percent(out.AsFirst), Inline: true},
			{Name: "Moving second", Value: percent(out.AsSecond), Inline: true},
		},
	}, nil
}

// players parses and builds both strategies, defaulting the baseline
func (c *HogCommand) players(strategyRaw, baselineRaw string) ([2]game.Player, [2]strategy.Spec, error) {
	var players [2]game.Player
	var specs [2]strategy.Spec

	if strings.TrimSpace(baselineRaw) == "" {
		baselineRaw = experiment.DefaultBaseline.String()
	}

	for seat, raw := range []string{strategyRaw, baselineRaw} {
		spec, err := strategy.ParseSpec(raw)
		if err != nil {
			return players, specs, err
		}
		strat, err := c.catalog.Build(spec)
		if err != nil {
			return players, specs, err
		}
		specs[seat] = spec
		players[seat] = game.Player{Name: spec.String(), Strategy: strat}
	}

	return players, specs, nil
}

// errorMessage turns an error into a friendly message
func (c *HogCommand) errorMessage(ctx context.Context, err error) string {
	errorType := ""
	switch {
	case errors.Is(err, strategy.ErrUnknownStrategy), errors.Is(err, strategy.ErrInvalidSpec):
		errorType = messaging.ErrorTypeUnknownStrategy
	case errors.Is(err, errInvalidScore):
		errorType = messaging.ErrorTypeInvalidScore
	case errors.Is(err, errInvalidRolls), errors.Is(err, game.ErrInvalidStrategyChoice):
		errorType = messaging.ErrorTypeInvalidRolls
	case errors.Is(err, game.ErrGameOver):
		errorType = messaging.ErrorTypeGameOver
	}

	out, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if msgErr != nil {
		return "Something went wrong! Try again later."
	}
	return out.Message
}

func rematchID(strategySpec, baselineSpec strategy.Spec) string {
	return ButtonRematchPrefix + strategySpec.String() + "|" + baselineSpec.String()
}

func parseRematchID(customID string) (string, string, bool) {
	rest, ok := strings.CutPrefix(customID, ButtonRematchPrefix)
	if !ok {
		return "", "", false
	}
	return strings.Cut(rest, "|")
}
