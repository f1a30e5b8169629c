package synth

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"jarvis-assistant/internal/model"
)

// Synthesize returns the commands for in, or nil when the intent has no
// known command shape.
func (s *Synthesizer) Synthesize(in model.Intent) []string {
	if in.Action == nil {
		return nil
	}

	var cmd string
	switch *in.Action {
	case model.ActionOpen:
		cmd = s.open(in)
	case model.ActionCreate:
		cmd = s.create(in)
	case model.ActionSearch:
		cmd = s.search(in)
	case model.ActionTake:
		cmd = s.take(in)
	}

	if cmd == "" {
		return nil
	}
	return []string{cmd}
}

func (s *Synthesizer) open(in model.Intent) string {
	switch {
	case in.HasTarget(model.TargetTerminal):
		return TerminalChain
	case in.HasTarget(model.TargetCamera):
		return CameraChain
	case in.HasTarget(model.TargetFirefox):
		return FirefoxChain
	}

	if app, ok := in.Param(model.RoleNamed, model.RoleCalled); ok {
		return Quote(app)
	}
	return ""
}

func (s *Synthesizer) create(in model.Intent) string {
	switch {
	case in.HasTarget(model.TargetFolder):
		name := paramOr(in, DefaultFolderName, model.RoleNamed, model.RoleCalled)
		dir := paramOr(in, ".", model.RoleIn)
		return command("mkdir", "-p", Quote(dir+"/"+name))
	case in.HasTarget(model.TargetFile):
		name := paramOr(in, DefaultFileName, model.RoleNamed, model.RoleCalled)
		if dir, ok := in.Param(model.RoleIn); ok {
			return command("touch", Quote(dir+"/"+name))
		}
		return command("touch", Quote(name))
	}
	return ""
}

func (s *Synthesizer) search(in model.Intent) string {
	query, ok := in.Param(model.RoleFor)
	if !ok {
		return ""
	}
	escaped := url.QueryEscape(query)

	platform, _ := in.Param(model.RoleOn)
	platform = strings.ToLower(platform)

	if knownBrowsers[platform] {
		return command(platform, Quote(fmt.Sprintf(s.engineURL, escaped)))
	}
	if tmpl, ok := siteSearchURLs[platform]; ok {
		return command("xdg-open", Quote(fmt.Sprintf(tmpl, escaped)))
	}
	return command("xdg-open", Quote(fmt.Sprintf(s.engineURL, escaped)))
}

func (s *Synthesizer) take(in model.Intent) string {
	switch {
	case in.HasTarget(model.TargetPicture, model.TargetPhoto, model.TargetScreenshot):
		p := Quote(s.ScreenshotPath())
		return chain(
			command("scrot", p),
			command("import", "-window", "root", p),
			command("gnome-screenshot", "-f", p),
		)
	case in.HasTarget(model.TargetCamera):
		return CameraChain
	}
	return ""
}

// ScreenshotPath is the file a screenshot taken now would be written to.
func (s *Synthesizer) ScreenshotPath() string {
	return path.Join(s.screenshotDir, "screenshot_"+s.now().Format(screenshotLayout)+".png")
}

func paramOr(in model.Intent, def string, roles ...model.ParamRole) string {
	if v, ok := in.Param(roles...); ok {
		return v
	}
	return def
}
