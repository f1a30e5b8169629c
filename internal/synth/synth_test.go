package synth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jarvis-assistant/internal/intent"
)

func newTestSynth() *Synthesizer {
	fixed := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	return New(Config{
		ScreenshotDir: "/home/tony/Pictures",
		Now:           func() time.Time { return fixed },
	})
}

func TestSynthesize(t *testing.T) {
	s := newTestSynth()
	e := intent.New()

	shot := `"/home/tony/Pictures/screenshot_20240309_140507.png"`

	tcs := map[string]struct {
		text string
		want []string
	}{
		"open terminal":         {"open the terminal", []string{TerminalChain}},
		"open camera":           {"open camera", []string{CameraChain}},
		"open firefox":          {"open firefox", []string{FirefoxChain}},
		"open named program":    {"open program called gedit", []string{`"gedit"`}},
		"open unknown":          {"open spotify", nil},
		"create folder":         {"create a folder named reports in Documents", []string{`mkdir -p "Documents/reports"`}},
		"create folder default": {"create a folder", []string{`mkdir -p "./new_folder"`}},
		"create file in dir":    {"make a file called notes.txt in docs", []string{`touch "docs/notes.txt"`}},
		"create file default":   {"create a file", []string{`touch "new_file.txt"`}},
		"take screenshot": {"take a screenshot", []string{
			`scrot ` + shot + ` || import -window root ` + shot + ` || gnome-screenshot -f ` + shot,
		}},
		"take camera":          {"capture camera", []string{CameraChain}},
		"search needs query":   {"search something", nil},
		"search generic":       {"search for golang", []string{`xdg-open "https://www.google.com/search?q=golang"`}},
		"search on site":       {"search for cats on YouTube", []string{`xdg-open "https://www.youtube.com/results?search_query=cats"`}},
		"search on browser":    {"search for cats on firefox", []string{`firefox "https://www.google.com/search?q=cats"`}},
		"search unknown place": {"search for cats on myspace", []string{`xdg-open "https://www.google.com/search?q=cats"`}},
		"no action":            {"hello there", nil},
		"unsupported action":   {"delete the file", nil},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := s.Synthesize(e.Extract(tc.text))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSynthesize_QuotesUserText(t *testing.T) {
	s := newTestSynth()
	e := intent.New()

	got := s.Synthesize(e.Extract("create a folder named $(reboot) in `pwd`"))
	assert.Equal(t, []string{"mkdir -p \"\\`pwd\\`/\\$(reboot)\""}, got)

	got = s.Synthesize(e.Extract("search for a&b=c"))
	assert.Equal(t, []string{`xdg-open "https://www.google.com/search?q=a%26b%3Dc"`}, got)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, Quote("plain"))
	assert.Equal(t, `"a \"b\""`, Quote(`a "b"`))
	assert.Equal(t, `"c:\\dir"`, Quote(`c:\dir`))
	assert.Equal(t, `"\$HOME"`, Quote("$HOME"))
}
