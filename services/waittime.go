package services

import (
	"strings"

	"chickenpos/entity"
)

// piecesRule maps an item-name fragment to a piece count. Rules are checked
// in order and the first match wins, so a name carrying both "4" and "12"
// counts as 4.
type piecesRule struct {
	fragment string
	pieces   int
}

var piecesRules = []piecesRule{
	{"4", 4},
	{"8", 8},
	{"12", 12},
	{"16", 16},
	{"personal", 2},
	{"familiar", 8},
}

const fallbackPieces = 4

// EstimateWaitTime predicts preparation minutes for an item list using a
// piece-count heuristic over the item names. Up to 8 pieces the kitchen
// quotes 15 minutes, up to 16 it quotes 20, past that one extra minute per
// piece.
func EstimateWaitTime(items []entity.OrderItem) int {
	totalPieces := 0
	for _, it := range items {
		totalPieces += piecesFor(it.Name) * it.Quantity
	}
	return waitTimeForPieces(totalPieces)
}

func waitTimeForPieces(totalPieces int) int {
	switch {
	case totalPieces <= 8:
		return 15
	case totalPieces <= 16:
		return 20
	default:
		return 20 + (totalPieces - 16)
	}
}

func piecesFor(name string) int {
	name = strings.ToLower(name)
	for _, r := range piecesRules {
		if strings.Contains(name, r.fragment) {
			return r.pieces
		}
	}
	return fallbackPieces
}
