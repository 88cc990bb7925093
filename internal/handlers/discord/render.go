package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/hog/internal/models"
	"github.com/KirkDiggler/hog/internal/probability"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00ff00
	colorPink  = 0xff69b4

	// Discord rejects embed field values longer than this
	maxFieldLength = 1024
)

// reply is a rendered response, independent of how it is delivered
type reply struct {
	Title       string
	Description string
	Color       int
	Fields      []*discordgo.MessageEmbedField
	Buttons     []discordgo.MessageComponent
	Ephemeral   bool
}

// renderReply sends r, editing the original message when the interaction
// came from one of its buttons
func renderReply(s *discordgo.Session, i *discordgo.InteractionCreate, r *reply) error {
	color := r.Color
	if color == 0 {
		color = colorGreen
	}

	embeds := []*discordgo.MessageEmbed{
		{
			Title:       r.Title,
			Description: r.Description,
			Color:       color,
			Fields:      r.Fields,
		},
	}

	var components []discordgo.MessageComponent
	if len(r.Buttons) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: r.Buttons,
		})
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	data := &discordgo.InteractionResponseData{
		Embeds:     embeds,
		Components: components,
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
}

// renderDistributionFields summarizes a turn-total distribution
func renderDistributionFields(dist probability.Distribution) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Pig out",
			Value:  percent(dist[probability.BustTotal]),
			Inline: true,
		},
		{
			Name:   "Expected total",
			Value:  fmt.Sprintf("%.3f", dist.Expected()),
			Inline: true,
		},
	}

	// Most likely totals other than a pig out
	totals := make([]int, 0, len(dist))
	for _, total := range dist.Totals() {
		if total != probability.BustTotal && dist[total] > 0 {
			totals = append(totals, total)
		}
	}
	sort.SliceStable(totals, func(a, b int) bool {
		return dist[totals[a]] > dist[totals[b]]
	})
	if len(totals) > 5 {
		totals = totals[:5]
	}

	var likely strings.Builder
	for _, total := range totals {
		fmt.Fprintf(&likely, "**%d**: %s\n", total, percent(dist[total]))
	}
	if likely.Len() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Most likely totals",
			Value: likely.String(),
		})
	}

	return fields
}

// renderScoreField shows both final scores, winner first
func renderScoreField(game *models.Game, names [2]string) *discordgo.MessageEmbedField {
	winner := game.Winner
	loser := 1 - winner
	scores := [2]int{game.Participants[0].Score, game.Participants[1].Score}

	return &discordgo.MessageEmbedField{
		Name: "Final score",
		Value: fmt.Sprintf("🏆 **%s**: %d\n🐷 **%s**: %d",
			names[winner], scores[winner], names[loser], scores[loser]),
	}
}

// renderHighlights joins turn commentary lines into one field, keeping the
// most recent lines that fit
func renderHighlights(lines []string) *discordgo.MessageEmbedField {
	if len(lines) == 0 {
		return nil
	}

	value := ""
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := lines[i] + "\n" + value
		if len(candidate) > maxFieldLength {
			break
		}
		value = candidate
	}

	return &discordgo.MessageEmbedField{
		Name:  "Highlights",
		Value: value,
	}
}

func percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
