package responder

import (
	"math/rand"
	"strings"

	"govchat/internal/domain"
)

// Responder synthesizes the final reply text for every response type.
// Factual blocks are deterministic; only the conversational opening
// and closing phrases vary, drawn from the injected rand source so
// tests can pin the choice.
type Responder struct {
	rng *rand.Rand
}

// New creates a responder with the given rand source. A nil source
// disables the decorative wrapper entirely, which keeps output fully
// deterministic.
func New(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Greeting returns the greeting reply.
func (r *Responder) Greeting(lang domain.Language) domain.Response {
	return domain.Response{Text: pick(greetingTemplates, lang), Type: domain.ResponseGreeting, Language: lang}
}

// Farewell returns the farewell reply.
func (r *Responder) Farewell(lang domain.Language) domain.Response {
	return domain.Response{Text: pick(farewellTemplates, lang), Type: domain.ResponseFarewell, Language: lang}
}

// Clarification asks the user to narrow a vague query to one of the
// known service categories.
func (r *Responder) Clarification(lang domain.Language) domain.Response {
	return domain.Response{Text: pick(clarificationTemplates, lang), Type: domain.ResponseClarification, Language: lang}
}

// MissingContext prompts for a service name when a follow-up arrives
// with nothing on record.
func (r *Responder) MissingContext(lang domain.Language) domain.Response {
	return domain.Response{Text: pick(followUpClarification, lang), Type: domain.ResponseClarification, Language: lang}
}

// NoResults returns the fallback listing known categories and the
// helpline.
func (r *Responder) NoResults(lang domain.Language) domain.Response {
	return domain.Response{Text: pick(noResultsTemplates, lang), Type: domain.ResponseNoResults, Language: lang}
}

// Service renders the intent-specific factual block for a resolved
// record and wraps it conversationally.
func (r *Responder) Service(rec domain.ServiceRecord, intent domain.Intent, lang domain.Language) domain.Response {
	factual := FormatService(rec, intent, lang)
	return domain.Response{
		Text:        r.wrap(factual, lang),
		Type:        domain.ResponseServiceInfo,
		Language:    lang,
		ServiceID:   rec.ID,
		ServiceName: rec.Name(lang),
	}
}

// FollowUp re-emits information about the previously discussed
// service. Procedure-like intents get the step list; everything else
// gets the full overview.
func (r *Responder) FollowUp(rec domain.ServiceRecord, intent domain.Intent, lang domain.Language) domain.Response {
	tamil := lang == domain.LanguageTamil
	var text string
	if intent == domain.IntentProcedure || intent == domain.IntentApply {
		var parts []string
		if tamil {
			parts = append(parts, "நிச்சயமாக! "+rec.NameTA+" க்கான விரிவான செயல்முறை:", "")
			parts = append(parts, numbered("📝 படிப்படியான வழிமுறைகள்:", rec.ProcedureTA)...)
			parts = append(parts, "", "வேறு ஏதாவது தெரிந்து கொள்ள வேண்டுமா? 😊")
		} else {
			parts = append(parts, "Sure! Here's the detailed procedure for "+rec.NameEN+":", "")
			parts = append(parts, numbered("📝 Step-by-step process:", rec.Procedure)...)
			parts = append(parts, "", "Would you like to know anything else? 😊")
		}
		text = strings.Join(parts, "\n")
	} else {
		text = FormatService(rec, domain.IntentGeneralInquiry, lang)
	}
	return domain.Response{
		Text:        text,
		Type:        domain.ResponseFollowUp,
		Language:    lang,
		ServiceID:   rec.ID,
		ServiceName: rec.Name(lang),
	}
}

// wrap adds a random bilingual opening and closing phrase around the
// factual block. Cosmetic only; the block itself is never altered.
func (r *Responder) wrap(factual string, lang domain.Language) string {
	if r.rng == nil {
		return factual
	}
	openings, closings := englishOpenings, englishClosings
	if lang == domain.LanguageTamil {
		openings, closings = tamilOpenings, tamilClosings
	}
	opening := openings[r.rng.Intn(len(openings))]
	closing := closings[r.rng.Intn(len(closings))]
	return opening + "\n\n" + factual + closing
}
