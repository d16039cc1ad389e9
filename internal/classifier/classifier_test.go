package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"govchat/internal/domain"
)

func newDefault() *Classifier {
	return New(nil, DefaultOptions())
}

func TestDetectLanguage(t *testing.T) {
	c := newDefault()

	tests := []struct {
		text string
		want domain.Language
	}{
		{"வணக்கம்", domain.LanguageTamil},
		{"பிறப்பு சான்றிதழ் எப்படி பெறுவது", domain.LanguageTamil},
		{"how to get birth certificate", domain.LanguageEnglish},
		{"birth certificate பிறப்பு", domain.LanguageTamil},
		{"", domain.LanguageUnknown},
		{"   ", domain.LanguageUnknown},
		{"12345 67890", domain.LanguageUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.DetectLanguage(tt.text), "text %q", tt.text)
	}
}

func TestDetectLanguageTamilMajorityWins(t *testing.T) {
	c := newDefault()
	// Tamil runes outnumber the Latin ones in mixed input.
	assert.Equal(t, domain.LanguageTamil, c.DetectLanguage("certificate சான்றிதழ் வருமான"))
}

func TestIntentPriorityOrder(t *testing.T) {
	c := newDefault()
	// "download" outranks "apply" even when both phrases appear.
	assert.Equal(t, domain.IntentDownload, c.Intent("I need to download my certificate and apply"))
}

func TestIntentTable(t *testing.T) {
	c := newDefault()

	tests := []struct {
		text string
		want domain.Intent
	}{
		{"how to apply for ration card", domain.IntentApply},
		{"what documents are required", domain.IntentDocuments},
		{"check status of my application", domain.IntentStatus},
		{"what is the fee", domain.IntentFees},
		{"விண்ணப்பிக்க வேண்டும்", domain.IntentApply},
		{"கட்டணம் எவ்வளவு", domain.IntentFees},
		{"certificate", domain.IntentGeneralInquiry},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Intent(tt.text), "text %q", tt.text)
	}
}

func TestTopicTable(t *testing.T) {
	c := newDefault()

	assert.Equal(t, domain.Topic("birth"), c.Topic("birth certificate download"))
	assert.Equal(t, domain.Topic("ration"), c.Topic("ரேஷன் அட்டை"))
	assert.Equal(t, domain.TopicGeneral, c.Topic("village office timings"))
}

func TestGreetingAndFarewell(t *testing.T) {
	c := newDefault()

	assert.True(t, c.IsGreeting("வணக்கம்"))
	assert.True(t, c.IsGreeting("Hello there"))
	assert.False(t, c.IsGreeting("ration card"))

	assert.True(t, c.IsFarewell("bye"))
	assert.True(t, c.IsFarewell("நன்றி"))
	assert.False(t, c.IsFarewell("ration card status"))
}

func TestIsFollowUp(t *testing.T) {
	c := newDefault()

	assert.True(t, c.IsFollowUp("yes"))
	assert.True(t, c.IsFollowUp("tell me more"))
	assert.True(t, c.IsFollowUp("சரி"))
	// keyword present but query too long to be a continuation
	assert.False(t, c.IsFollowUp("yes but i also want a new ration card for my family"))
	// short but no continuation keyword
	assert.False(t, c.IsFollowUp("ration card"))
}

func TestIsVague(t *testing.T) {
	c := newDefault()

	assert.True(t, c.IsVague("help"))
	assert.True(t, c.IsVague("உதவி"))
	// names a service, so it is answerable
	assert.False(t, c.IsVague("need ration card"))
	// too long to be vague
	assert.False(t, c.IsVague("i need some help with a government office"))
}

func TestAnalyze(t *testing.T) {
	c := newDefault()

	a := c.Analyze("What documents are required for ration card?")
	assert.Equal(t, domain.LanguageEnglish, a.Language)
	assert.Equal(t, domain.IntentDocuments, a.Intent)
	assert.Equal(t, domain.Topic("ration"), a.Topic)
	assert.Contains(t, a.Keywords, "ration")
	assert.NotContains(t, a.Keywords, "for")
	assert.Equal(t, "what documents are required for ration card?", a.Normalized)
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	_, err := LoadKeywords("/nonexistent/keywords.yaml")
	assert.Error(t, err)
}
