package classifier

import (
	"strings"

	"govchat/internal/domain"
	"govchat/internal/textproc"
)

const tamilThreshold = 0.3

// Options tune the short-query dialogue heuristics. The word-count
// limits are deliberate configuration, not inferred behavior.
type Options struct {
	FollowUpMaxWords int
	VagueMaxWords    int
	KeywordCount     int
}

// DefaultOptions returns the stock heuristic thresholds.
func DefaultOptions() Options {
	return Options{FollowUpMaxWords: 5, VagueMaxWords: 4, KeywordCount: 5}
}

// Classifier resolves language, intent and topic from keyword tables.
// Every decision is explainable by which literal phrase matched. It is
// read-only after construction and safe for concurrent use.
type Classifier struct {
	kw        *Keywords
	opts      Options
	stopwords map[string]struct{}
}

// New builds a classifier over the given vocabulary. A nil vocabulary
// selects the built-in defaults.
func New(kw *Keywords, opts Options) *Classifier {
	if kw == nil {
		kw = DefaultKeywords()
	}
	if opts.FollowUpMaxWords <= 0 {
		opts.FollowUpMaxWords = 5
	}
	if opts.VagueMaxWords <= 0 {
		opts.VagueMaxWords = 4
	}
	if opts.KeywordCount <= 0 {
		opts.KeywordCount = 5
	}
	stop := make(map[string]struct{}, len(kw.Stopwords))
	for _, w := range kw.Stopwords {
		stop[w] = struct{}{}
	}
	return &Classifier{kw: kw, opts: opts, stopwords: stop}
}

// DetectLanguage classifies text as Tamil, English or unknown. Text is
// Tamil when more than 30% of its non-whitespace runes sit in the
// Tamil Unicode block; otherwise a Latin-letter heuristic stands in
// for general language identification, restricted to English.
func (c *Classifier) DetectLanguage(text string) domain.Language {
	if strings.TrimSpace(text) == "" {
		return domain.LanguageUnknown
	}
	if textproc.TamilFraction(text) > tamilThreshold {
		return domain.LanguageTamil
	}
	if textproc.LatinLetterFraction(text) > 0.5 {
		return domain.LanguageEnglish
	}
	return domain.LanguageUnknown
}

// Intent returns the first intent whose keyword set matches the
// normalized text. Table order is the tie-break: specific action words
// win over generic ones.
func (c *Classifier) Intent(text string) domain.Intent {
	t := textproc.Normalize(text)
	for _, entry := range c.kw.Intents {
		if containsAny(t, entry.Keywords) {
			return entry.Intent
		}
	}
	return domain.IntentGeneralInquiry
}

// Topic returns the first matching service topic, or general.
func (c *Classifier) Topic(text string) domain.Topic {
	t := textproc.Normalize(text)
	for _, entry := range c.kw.Topics {
		if containsAny(t, entry.Keywords) {
			return entry.Topic
		}
	}
	return domain.TopicGeneral
}

// IsGreeting reports whether text contains a greeting phrase.
func (c *Classifier) IsGreeting(text string) bool {
	return containsAny(textproc.Normalize(text), c.kw.Greetings)
}

// IsFarewell reports whether text contains a farewell phrase.
func (c *Classifier) IsFarewell(text string) bool {
	return containsAny(textproc.Normalize(text), c.kw.Farewells)
}

// IsFollowUp reports whether text is a short continuation of the
// previous turn. Both conditions are required: a continuation keyword
// and a word count under the follow-up limit, so longer on-topic
// questions containing "yes" or "more" are not misclassified.
func (c *Classifier) IsFollowUp(text string) bool {
	t := textproc.Normalize(text)
	return containsAny(t, c.kw.FollowUps) && textproc.WordCount(t) < c.opts.FollowUpMaxWords
}

// IsVague reports whether text is a short help-seeking query naming no
// recognizable service.
func (c *Classifier) IsVague(text string) bool {
	t := textproc.Normalize(text)
	if textproc.WordCount(t) >= c.opts.VagueMaxWords {
		return false
	}
	return containsAny(t, c.kw.Vague) && !containsAny(t, c.kw.ServiceNames)
}

// Analyze runs the full query-understanding pass and returns an
// immutable QueryAnalysis.
func (c *Classifier) Analyze(text string) domain.QueryAnalysis {
	normalized := textproc.Normalize(text)
	return domain.QueryAnalysis{
		Language:   c.DetectLanguage(text),
		Intent:     c.Intent(normalized),
		Topic:      c.Topic(normalized),
		Keywords:   textproc.Keywords(normalized, c.opts.KeywordCount, c.stopwords),
		Normalized: normalized,
		Original:   text,
	}
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
