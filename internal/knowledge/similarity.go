package knowledge

import (
	"math"
	"strings"

	"jarvis-assistant/internal/model"
)

// Similarity scores a stored intent against the current one.
func Similarity(current, stored model.Intent) float64 {
	var score float64
	if sameAction(current.Action, stored.Action) {
		score += weightAction
	}
	if sameTarget(current.Target, stored.Target) {
		score += weightTarget
	}
	score += weightParams * paramOverlap(current.Params, stored.Params)
	return math.Round(score*10000) / 10000
}

func sameAction(a, b *model.ActionKind) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameTarget(a, b *model.TargetKind) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// paramOverlap is |common roles| / max(len). Two empty lists score 0.
func paramOverlap(p1, p2 []model.Param) float64 {
	longest := max(len(p1), len(p2))
	if longest == 0 {
		return 0
	}

	roles := make(map[model.ParamRole]bool, len(p2))
	for _, p := range p2 {
		roles[p.Role] = true
	}

	common := 0
	seen := make(map[model.ParamRole]bool, len(p1))
	for _, p := range p1 {
		if roles[p.Role] && !seen[p.Role] {
			common++
			seen[p.Role] = true
		}
	}
	return float64(common) / float64(longest)
}

// NormalizeCommand lower-cases, trims and collapses inner whitespace.
func NormalizeCommand(command string) string {
	return strings.Join(strings.Fields(strings.ToLower(command)), " ")
}
