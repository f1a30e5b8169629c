package synth

import "strings"

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
	"`", "\\`",
)

// Quote wraps s in double quotes so the shell treats it as one literal word.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// command joins a program name with already rendered arguments.
func command(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func chain(cmds ...string) string {
	return strings.Join(cmds, " || ")
}
