package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"govchat/internal/domain"
)

// IntentEntry binds one intent to its trigger phrases. Entries are
// matched in slice order, so specific intents must precede generic
// ones (download before apply, and so on).
type IntentEntry struct {
	Intent   domain.Intent `yaml:"intent"`
	Keywords []string      `yaml:"keywords"`
}

// TopicEntry binds one service topic to its trigger phrases.
type TopicEntry struct {
	Topic    domain.Topic `yaml:"topic"`
	Keywords []string     `yaml:"keywords"`
}

// Keywords is the full classification vocabulary. It is data, not
// behavior: the matching logic never changes, the phrase lists can be
// replaced from a YAML file.
type Keywords struct {
	Intents      []IntentEntry `yaml:"intents"`
	Topics       []TopicEntry  `yaml:"topics"`
	Greetings    []string      `yaml:"greetings"`
	Farewells    []string      `yaml:"farewells"`
	FollowUps    []string      `yaml:"follow_ups"`
	Vague        []string      `yaml:"vague"`
	ServiceNames []string      `yaml:"service_names"`
	Stopwords    []string      `yaml:"stopwords"`
}

// LoadKeywords reads a keyword vocabulary from a YAML file.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return nil, fmt.Errorf("parse keywords: %w", err)
	}
	if len(kw.Intents) == 0 || len(kw.Topics) == 0 {
		return nil, fmt.Errorf("keywords file %s missing intent or topic tables", path)
	}
	return &kw, nil
}

// DefaultKeywords returns the built-in bilingual vocabulary.
func DefaultKeywords() *Keywords {
	return &Keywords{
		Intents: []IntentEntry{
			{domain.IntentDownload, []string{"download", "get online", "print", "டவுன்லோட்", "பதிவிறக்க", "பிரிண்ட்", "அச்சிட"}},
			{domain.IntentReissue, []string{"reissue", "duplicate", "lost", "மீண்டும்", "நகல்", "தொலைந்த"}},
			{domain.IntentCorrection, []string{"correct", "change", "modify", "update", "edit", "திருத்த", "மாற்ற", "திருத்தம்"}},
			{domain.IntentRenewal, []string{"renew", "renewal", "extend", "புதுப்பிக்க", "நீட்டிக்க"}},
			{domain.IntentStatus, []string{"status", "track", "check status", "progress", "நிலை", "கண்காணிக்க", "எங்கே"}},
			{domain.IntentApply, []string{"apply", "application", "new", "first time", "விண்ணப்பிக்க", "விண்ணப்பம்", "புதிய"}},
			{domain.IntentDocuments, []string{"document", "required", "need what", "ஆவணம்", "தேவை", "என்ன வேண்டும்"}},
			{domain.IntentProcedure, []string{"how to", "process", "procedure", "steps", "எப்படி", "செயல்முறை", "படிகள்"}},
			{domain.IntentContact, []string{"contact", "phone", "email", "helpline", "தொடர்பு", "எண்", "உதவி"}},
			{domain.IntentFees, []string{"fee", "cost", "charge", "price", "கட்டணம்", "விலை", "எவ்வளவு"}},
			{domain.IntentEligibility, []string{"eligible", "eligibility", "qualify", "தகுதி", "யோக்கியதை"}},
		},
		Topics: []TopicEntry{
			{"birth", []string{"birth", "certificate", "பிறப்பு", "சான்றிதழ்"}},
			{"income", []string{"income", "certificate", "வருமான", "சான்றிதழ்"}},
			{"community", []string{"community", "caste", "சமூக", "ஜாதி"}},
			{"ration", []string{"ration", "card", "ரேஷன்", "அட்டை"}},
			{"license", []string{"driving", "license", "ஓட்டுநர்", "உரிமம்"}},
			{"passport", []string{"passport", "பாஸ்போர்ட்"}},
			{"pension", []string{"pension", "ஓய்வூதியம்"}},
			{"scholarship", []string{"scholarship", "உதவித்தொகை"}},
		},
		Greetings: []string{
			"வணக்கம்", "hello", "hi", "hey", "good morning", "good afternoon",
			"good evening", "வாழ்த்துக்கள்", "நல்ல காலை", "நல்ல பிற்பகல்",
		},
		Farewells: []string{
			"bye", "goodbye", "see you", "thanks", "thank you",
			"நன்றி", "போய்வருகிறேன்", "பிறகு பார்ப்போம்",
		},
		FollowUps: []string{
			"yes", "yeah", "ok", "okay", "sure", "more", "tell me more", "what else",
			"ஆம்", "சரி", "சொல்லுங்கள்", "மேலும்", "வேறு", "அப்புறம்",
			"and then", "next", "after that", "பிறகு", "அடுத்து",
		},
		Vague: []string{
			"help", "info", "tell me", "want to know", "need",
			"உதவி", "தகவல்", "தெரிந்து", "தேவை",
		},
		ServiceNames: []string{
			"birth", "income", "community", "ration", "certificate",
			"பிறப்பு", "வருமான", "சமூக", "ரேஷன்", "சான்றிதழ்",
		},
		Stopwords: []string{
			"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
			"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
			"was", "were", "be", "been", "being", "it", "this", "that",
			"these", "those", "from", "what", "how", "when", "where", "who",
			"can", "will", "just", "should", "now",
			"அது", "இது", "அந்த", "இந்த", "அவர்", "இவர்", "என்ன", "எங்கு",
			"எப்படி", "எப்போது", "எதற்கு", "யார்", "எது", "எவ்வாறு",
			"ஒரு", "மற்றும்", "அல்லது", "ஆனால்", "உடன்", "பின்",
			"முன்", "மேல்", "கீழ்", "உள்ளே", "வெளியே",
		},
	}
}
