package synth

const (
	DefaultFolderName = "new_folder"
	DefaultFileName   = "new_file.txt"
	DefaultEngineURL  = "https://www.google.com/search?q=%s"

	screenshotLayout = "20060102_150405"
)

// Fallback chains; the first installed tool wins at run time.
const (
	TerminalChain = "gnome-terminal || xterm || konsole"
	CameraChain   = "cheese || guvcview || kamoso"
	FirefoxChain  = "firefox || firefox-esr"
)

var knownBrowsers = map[string]bool{
	"firefox":       true,
	"chrome":        true,
	"google-chrome": true,
	"chromium":      true,
	"brave":         true,
}

var siteSearchURLs = map[string]string{
	"youtube":    "https://www.youtube.com/results?search_query=%s",
	"github":     "https://github.com/search?q=%s",
	"wikipedia":  "https://en.wikipedia.org/w/index.php?search=%s",
	"google":     "https://www.google.com/search?q=%s",
	"duckduckgo": "https://duckduckgo.com/?q=%s",
	"bing":       "https://www.bing.com/search?q=%s",
	"amazon":     "https://www.amazon.com/s?k=%s",
	"reddit":     "https://www.reddit.com/search/?q=%s",
}
