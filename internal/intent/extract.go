package intent

import (
	"math"
	"strings"

	"jarvis-assistant/internal/model"
)

// Extract never fails: an utterance with no recognised keyword yields an
// intent with nil action and target and zero confidence.
func (e *Extractor) Extract(text string) model.Intent {
	trimmed := strings.TrimSpace(text)
	normalized := strings.ToLower(trimmed)

	in := model.Intent{
		OriginalText: text,
		Params:       e.extractParams(trimmed),
	}

	for _, r := range actionRules {
		if strings.Contains(normalized, r.keyword) {
			in.Action = model.ActionPtr(r.action)
			break
		}
	}

	for _, r := range targetRules {
		if strings.Contains(normalized, r.keyword) {
			in.Target = model.TargetPtr(r.target)
			break
		}
	}

	in.Confidence = Confidence(in)
	return in
}

// Confidence scores an intent by which parts were recognised.
func Confidence(in model.Intent) float64 {
	var c float64
	if in.Action != nil {
		c += WeightAction
	}
	if in.Target != nil {
		c += WeightTarget
	}
	if len(in.Params) > 0 {
		c += WeightParams
	}
	return math.Min(1, math.Round(c*100)/100)
}

// extractParams keeps the original casing of values; only the marker is
// compared case-insensitively. Values are always a single token.
func (e *Extractor) extractParams(text string) []model.Param {
	tokens := strings.Fields(text)
	params := make([]model.Param, 0)
	for i := 0; i < len(tokens)-1; i++ {
		role, ok := e.roles[strings.ToLower(tokens[i])]
		if !ok {
			continue
		}
		params = append(params, model.Param{Role: role, Value: tokens[i+1]})
	}
	return params
}
