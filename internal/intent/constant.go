package intent

import "jarvis-assistant/internal/model"

// Confidence weights. They sum to 1.
const (
	WeightAction = 0.4
	WeightTarget = 0.3
	WeightParams = 0.3
)

type actionRule struct {
	keyword string
	action  model.ActionKind
}

type targetRule struct {
	keyword string
	target  model.TargetKind
}

// actionRules is evaluated top to bottom; the first keyword found anywhere in
// the text wins, regardless of where it appears.
var actionRules = []actionRule{
	{"open", model.ActionOpen},
	{"close", model.ActionClose},
	{"start", model.ActionStart},
	{"stop", model.ActionStop},
	{"create", model.ActionCreate},
	{"delete", model.ActionDelete},
	{"search", model.ActionSearch},
	{"find", model.ActionSearch},
	{"take", model.ActionTake},
	{"click", model.ActionTake},
	{"make", model.ActionCreate},
	{"run", model.ActionRun},
	{"execute", model.ActionRun},
	{"install", model.ActionInstall},
	{"update", model.ActionUpdate},
	{"launch", model.ActionOpen},
	{"capture", model.ActionTake},
}

var targetRules = []targetRule{
	{"file", model.TargetFile},
	{"folder", model.TargetFolder},
	{"terminal", model.TargetTerminal},
	{"camera", model.TargetCamera},
	{"picture", model.TargetPicture},
	{"photo", model.TargetPhoto},
	{"screenshot", model.TargetScreenshot},
	{"firefox", model.TargetFirefox},
	{"browser", model.TargetBrowser},
}
