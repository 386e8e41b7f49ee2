package cmd

import (
	"strings"

	"github.com/pterm/pterm"

	"ledgerholdem/internal/cards"
)

func renderCard(c cards.Card) string {
	switch c.Suit {
	case cards.Hearts, cards.Diamonds:
		return pterm.LightRed(c.String())
	default:
		return pterm.LightCyan(c.String())
	}
}

func renderCards(cs []cards.Card) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, renderCard(c))
	}
	return strings.Join(parts, " ")
}

func cardPanel(title string, cs []cards.Card) string {
	box := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)
	return box.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(renderCards(cs))
}
