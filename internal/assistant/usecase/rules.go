package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"jarvis-assistant/config"
)

var (
	wikipediaPattern = regexp.MustCompile(`(?i)search (.+?) on wikipedia`)
	commandPattern   = regexp.MustCompile(`COMMAND:\s*([^\n,]+)`)
	explainPattern   = regexp.MustCompile(`EXPLANATION:\s*([^\n]+)`)
)

// rules is the compiled form of config.AssistantConfig.
type rules struct {
	cfg         config.AssistantConfig
	affirmative *regexp.Regexp
	negative    *regexp.Regexp
	filler      *regexp.Regexp
	greetings   map[string]struct{}
	news        map[string]struct{}
}

func compileRules(cfg config.AssistantConfig) *rules {
	return &rules{
		cfg:         cfg,
		affirmative: wordsPattern(cfg.AffirmativeTokens),
		negative:    wordsPattern(cfg.NegativeTokens),
		filler:      wordsPattern(cfg.FillerWords),
		greetings:   phraseSet(cfg.GreetingPhrases),
		news:        phraseSet(cfg.NewsPhrases),
	}
}

// wordsPattern matches any of words as whole words, longest first.
func wordsPattern(words []string) *regexp.Regexp {
	alts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			alts = append(alts, regexp.QuoteMeta(w))
		}
	}
	if len(alts) == 0 {
		return nil
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func phraseSet(phrases []string) map[string]struct{} {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}
	return set
}

func matches(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}

func remove(re *regexp.Regexp, s string) string {
	if re == nil {
		return s
	}
	return re.ReplaceAllString(s, " ")
}

func (r *rules) affirms(text string) bool { return matches(r.affirmative, text) }
func (r *rules) negates(text string) bool { return matches(r.negative, text) }

// onlyConfirmation reports text made of nothing but yes/no tokens and fillers.
func (r *rules) onlyConfirmation(text string) bool {
	if !r.affirms(text) && !r.negates(text) {
		return false
	}
	rest := remove(r.filler, remove(r.negative, remove(r.affirmative, text)))
	return strings.IndexFunc(rest, isWordRune) < 0
}

// strip removes filler words and collapses whitespace. Case is kept.
func (r *rules) strip(text string) string {
	return strings.Join(strings.Fields(remove(r.filler, text)), " ")
}

func (r *rules) isGreeting(phrase string) bool {
	_, ok := r.greetings[phrase]
	return ok
}

func (r *rules) isNews(phrase string) bool {
	_, ok := r.news[phrase]
	return ok
}

// dangerous reports whether any action contains a danger keyword.
func (r *rules) dangerous(actions []string) bool {
	for _, a := range actions {
		for _, kw := range r.cfg.DangerKeywords {
			if kw != "" && strings.Contains(a, kw) {
				return true
			}
		}
	}
	return false
}

// spoken shortens long execution output for speech.
func (r *rules) spoken(msg string) string {
	if r.cfg.MaxSpokenLength > 0 && len(msg) > r.cfg.MaxSpokenLength {
		return r.cfg.Messages.LongOutput
	}
	return msg
}

func isWordRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c)
}

// phrase lower-cases text and drops surrounding punctuation for fixed phrase lookups.
func phrase(text string) string {
	return strings.ToLower(strings.TrimFunc(text, func(c rune) bool {
		return unicode.IsSpace(c) || unicode.IsPunct(c)
	}))
}

// parseSuggestion extracts the COMMAND and EXPLANATION lines of a model reply.
func parseSuggestion(text string) (command, explanation string, ok bool) {
	m := commandPattern.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	command = strings.Trim(strings.TrimSpace(m[1]), "`")
	if command == "" {
		return "", "", false
	}
	if e := explainPattern.FindStringSubmatch(text); e != nil {
		explanation = strings.TrimRight(strings.TrimSpace(e[1]), ".")
	}
	return command, explanation, true
}
