package model

import "strings"

// ActionKind is the verb recognised in an utterance.
type ActionKind string

const (
	ActionOpen    ActionKind = "open"
	ActionClose   ActionKind = "close"
	ActionStart   ActionKind = "start"
	ActionStop    ActionKind = "stop"
	ActionCreate  ActionKind = "create"
	ActionDelete  ActionKind = "delete"
	ActionSearch  ActionKind = "search"
	ActionTake    ActionKind = "take"
	ActionRun     ActionKind = "run"
	ActionInstall ActionKind = "install"
	ActionUpdate  ActionKind = "update"
)

// TargetKind is the object the action applies to.
type TargetKind string

const (
	TargetFile       TargetKind = "file"
	TargetFolder     TargetKind = "folder"
	TargetTerminal   TargetKind = "terminal"
	TargetCamera     TargetKind = "camera"
	TargetPicture    TargetKind = "picture"
	TargetPhoto      TargetKind = "photo"
	TargetScreenshot TargetKind = "screenshot"
	TargetFirefox    TargetKind = "firefox"
	TargetBrowser    TargetKind = "browser"
)

// ParamRole is the marker word that introduced a parameter value.
type ParamRole string

const (
	RoleNamed  ParamRole = "named"
	RoleCalled ParamRole = "called"
	RoleTo     ParamRole = "to"
	RoleIn     ParamRole = "in"
	RoleWith   ParamRole = "with"
	RoleOn     ParamRole = "on"
	RoleFor    ParamRole = "for"
)

// ParamRoles lists every role marker the extractor recognises.
var ParamRoles = []ParamRole{RoleNamed, RoleCalled, RoleTo, RoleIn, RoleWith, RoleOn, RoleFor}

// Param is a single role/value pair taken from the utterance.
type Param struct {
	Role  ParamRole `json:"role"`
	Value string    `json:"value"`
}

// Intent is the structured reading of one utterance.
// Action and Target are nil when no keyword matched.
type Intent struct {
	Action       *ActionKind `json:"action"`
	Target       *TargetKind `json:"target"`
	Params       []Param     `json:"params"`
	OriginalText string      `json:"originalText"`
	Confidence   float64     `json:"confidence"`
}

// Param returns the value of the first param whose role is in roles, in
// param order.
func (i Intent) Param(roles ...ParamRole) (string, bool) {
	for _, p := range i.Params {
		for _, r := range roles {
			if p.Role == r {
				return p.Value, true
			}
		}
	}
	return "", false
}

// HasAction reports whether the intent carries action a.
func (i Intent) HasAction(a ActionKind) bool {
	return i.Action != nil && *i.Action == a
}

// HasTarget reports whether the intent carries one of the given targets.
func (i Intent) HasTarget(targets ...TargetKind) bool {
	if i.Target == nil {
		return false
	}
	for _, t := range targets {
		if *i.Target == t {
			return true
		}
	}
	return false
}

// Launches reports whether the intent opens a program the user expects to
// stay open: open and start, web searches that end in a browser, and the
// camera.
func (i Intent) Launches() bool {
	return i.HasAction(ActionOpen) || i.HasAction(ActionStart) || i.HasAction(ActionSearch) ||
		(i.HasAction(ActionTake) && i.HasTarget(TargetCamera))
}

// Key is the group key used by the knowledge store, "<action>_<target>".
func (i Intent) Key() string {
	action, target := "null", "null"
	if i.Action != nil {
		action = string(*i.Action)
	}
	if i.Target != nil {
		target = string(*i.Target)
	}
	return action + "_" + target
}

// Roles returns the param roles in order.
func (i Intent) Roles() []ParamRole {
	roles := make([]ParamRole, len(i.Params))
	for n, p := range i.Params {
		roles[n] = p.Role
	}
	return roles
}

// String renders the intent for logs.
func (i Intent) String() string {
	var sb strings.Builder
	sb.WriteString(i.Key())
	for _, p := range i.Params {
		sb.WriteString(" ")
		sb.WriteString(string(p.Role))
		sb.WriteString("=")
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// ActionPtr and TargetPtr are small helpers for building intents by hand.
func ActionPtr(a ActionKind) *ActionKind { return &a }
func TargetPtr(t TargetKind) *TargetKind { return &t }
