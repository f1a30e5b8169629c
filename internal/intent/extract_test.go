package intent

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"jarvis-assistant/internal/model"
)

func TestExtract(t *testing.T) {
	e := New()

	tcs := map[string]struct {
		text       string
		wantAction *model.ActionKind
		wantTarget *model.TargetKind
		wantParams []model.Param
		wantConf   float64
	}{
		"create folder with two params": {
			text:       "create a folder named reports in Documents",
			wantAction: model.ActionPtr(model.ActionCreate),
			wantTarget: model.TargetPtr(model.TargetFolder),
			wantParams: []model.Param{
				{Role: model.RoleNamed, Value: "reports"},
				{Role: model.RoleIn, Value: "Documents"},
			},
			wantConf: 1.0,
		},
		"take screenshot": {
			text:       "take a screenshot",
			wantAction: model.ActionPtr(model.ActionTake),
			wantTarget: model.TargetPtr(model.TargetScreenshot),
			wantParams: []model.Param{},
			wantConf:   0.7,
		},
		"open unknown app": {
			text:       "open spotify",
			wantAction: model.ActionPtr(model.ActionOpen),
			wantParams: []model.Param{},
			wantConf:   0.4,
		},
		"nothing recognised": {
			text:       "what is the meaning of life",
			wantParams: []model.Param{},
			wantConf:   0,
		},
		"table order beats text order": {
			text:       "launch and open the terminal",
			wantAction: model.ActionPtr(model.ActionOpen),
			wantTarget: model.TargetPtr(model.TargetTerminal),
			wantParams: []model.Param{},
			wantConf:   0.7,
		},
		"alias keyword": {
			text:       "capture a photo",
			wantAction: model.ActionPtr(model.ActionTake),
			wantTarget: model.TargetPtr(model.TargetPhoto),
			wantParams: []model.Param{},
			wantConf:   0.7,
		},
		"marker at end has no value": {
			text:       "search for",
			wantAction: model.ActionPtr(model.ActionSearch),
			wantParams: []model.Param{},
			wantConf:   0.4,
		},
		"marker is case-insensitive, value keeps case": {
			text:       "Search FOR Golang ON YouTube",
			wantAction: model.ActionPtr(model.ActionSearch),
			wantParams: []model.Param{
				{Role: model.RoleFor, Value: "Golang"},
				{Role: model.RoleOn, Value: "YouTube"},
			},
			wantConf: 0.7,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := e.Extract(tc.text)

			if diff := cmp.Diff(tc.wantAction, got.Action); diff != "" {
				t.Errorf("action mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantTarget, got.Target); diff != "" {
				t.Errorf("target mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantParams, got.Params); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
			if got.Confidence != tc.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tc.wantConf)
			}
			if got.OriginalText != tc.text {
				t.Errorf("original text = %q, want %q", got.OriginalText, tc.text)
			}
		})
	}
}

func TestExtract_ConfidenceBounds(t *testing.T) {
	e := New()
	inputs := []string{"", "   ", "open", "open terminal", "open terminal with zsh", "x named y", "named"}
	for _, in := range inputs {
		c := e.Extract(in).Confidence
		if c < 0 || c > 1 {
			t.Errorf("Extract(%q).Confidence = %v, out of [0,1]", in, c)
		}
	}
}

func TestConfidence_Monotone(t *testing.T) {
	base := model.Intent{}
	withAction := base
	withAction.Action = model.ActionPtr(model.ActionOpen)
	withTarget := withAction
	withTarget.Target = model.TargetPtr(model.TargetFile)
	withParams := withTarget
	withParams.Params = []model.Param{{Role: model.RoleNamed, Value: "a"}}

	steps := []model.Intent{base, withAction, withTarget, withParams}
	for i := 1; i < len(steps); i++ {
		if Confidence(steps[i]) <= Confidence(steps[i-1]) {
			t.Errorf("confidence did not increase at step %d", i)
		}
	}
}

func TestIntentKey(t *testing.T) {
	e := New()
	if got := e.Extract("open the terminal").Key(); got != "open_terminal" {
		t.Errorf("Key() = %q, want open_terminal", got)
	}
	if got := e.Extract("hello there").Key(); got != "null_null" {
		t.Errorf("Key() = %q, want null_null", got)
	}
}
