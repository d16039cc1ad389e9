package responder

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"govchat/internal/domain"
)

func incomeCertificate() domain.ServiceRecord {
	return domain.ServiceRecord{
		ID:            "income_certificate",
		NameEN:        "Income Certificate",
		NameTA:        "வருமான சான்றிதழ்",
		DescriptionEN: "Certificate stating the annual income of an individual or family",
		DescriptionTA: "ஒரு நபர் அல்லது குடும்பத்தின் ஆண்டு வருமானத்தை குறிக்கும் சான்றிதழ்",
		Department:    "Revenue Department",
		DepartmentTA:  "வருவாய் துறை",
		Requirements: []string{
			"Aadhaar card",
			"Ration card",
			"Salary certificate or income proof",
			"Address proof",
		},
		RequirementsTA: []string{"ஆதார் அட்டை", "ரேஷன் அட்டை", "சம்பள சான்றிதழ் அல்லது வருமான சான்று", "முகவரி சான்று"},
		Procedure: []string{
			"Visit Taluk office or e-Sevai center",
			"Fill application form",
			"Submit required documents",
		},
		ProcedureTA:    []string{"தாலுக்கா அலுவலகம் அல்லது இ-சேவை மையத்தை பார்வையிடவும்", "விண்ணப்ப படிவத்தை நிரப்பவும்"},
		Fees:           "₹10",
		FeesTA:         "₹10",
		ProcessingTime: "7-15 days",
		Contact:        "1800-425-1000",
		URL:            "https://www.tnedistrict.gov.in",
	}
}

func TestFormatServiceDeterministic(t *testing.T) {
	rec := incomeCertificate()
	first := FormatService(rec, domain.IntentDocuments, domain.LanguageEnglish)
	second := FormatService(rec, domain.IntentDocuments, domain.LanguageEnglish)
	assert.Equal(t, first, second)
}

func TestFormatServiceDocumentsListsEveryRequirement(t *testing.T) {
	rec := incomeCertificate()
	text := FormatService(rec, domain.IntentDocuments, domain.LanguageEnglish)
	assert.Contains(t, text, "📑 Required Documents:")
	for _, req := range rec.Requirements {
		assert.Contains(t, text, req)
	}
}

func TestFormatServiceFooterAlwaysPresent(t *testing.T) {
	rec := incomeCertificate()
	intents := []domain.Intent{
		domain.IntentDownload, domain.IntentReissue, domain.IntentCorrection,
		domain.IntentRenewal, domain.IntentStatus, domain.IntentDocuments,
		domain.IntentApply, domain.IntentProcedure, domain.IntentFees,
		domain.IntentContact, domain.IntentEligibility, domain.IntentGeneralInquiry,
	}
	for _, intent := range intents {
		text := FormatService(rec, intent, domain.LanguageEnglish)
		assert.Contains(t, text, "📞 Contact: "+rec.Contact, "intent %s", intent)
		assert.Contains(t, text, "🌐 Website: "+rec.URL, "intent %s", intent)
	}
}

func TestFormatServiceTamilHeadingAndFooter(t *testing.T) {
	rec := incomeCertificate()
	text := FormatService(rec, domain.IntentFees, domain.LanguageTamil)
	assert.True(t, strings.HasPrefix(text, "📋 "+rec.NameTA))
	assert.Contains(t, text, "💰 கட்டணம்: ₹10")
	assert.Contains(t, text, "📞 தொடர்பு: "+rec.Contact)
}

func TestFormatServiceGeneralOverview(t *testing.T) {
	rec := incomeCertificate()
	text := FormatService(rec, domain.IntentGeneralInquiry, domain.LanguageEnglish)
	assert.Contains(t, text, rec.DescriptionEN)
	assert.Contains(t, text, "📑 Required Documents:")
	assert.Contains(t, text, "📝 Application Procedure:")
	assert.Contains(t, text, "💰 Fees: ₹10")
	assert.Contains(t, text, "⏱️ Processing Time: 7-15 days")
}

func TestFormatServiceProcedureNumbered(t *testing.T) {
	rec := incomeCertificate()
	text := FormatService(rec, domain.IntentProcedure, domain.LanguageEnglish)
	assert.Contains(t, text, "  1. Visit Taluk office or e-Sevai center")
	assert.Contains(t, text, "  3. Submit required documents")
}

func TestServiceWithoutRandSourceIsBareFactualBlock(t *testing.T) {
	r := New(nil)
	rec := incomeCertificate()
	resp := r.Service(rec, domain.IntentDocuments, domain.LanguageEnglish)
	assert.Equal(t, FormatService(rec, domain.IntentDocuments, domain.LanguageEnglish), resp.Text)
	assert.Equal(t, domain.ResponseServiceInfo, resp.Type)
	assert.Equal(t, "income_certificate", resp.ServiceID)
	assert.Equal(t, "Income Certificate", resp.ServiceName)
}

func TestServiceWrapperKeepsFactualBlockIntact(t *testing.T) {
	r := New(rand.New(rand.NewSource(7)))
	rec := incomeCertificate()
	factual := FormatService(rec, domain.IntentDocuments, domain.LanguageEnglish)
	resp := r.Service(rec, domain.IntentDocuments, domain.LanguageEnglish)
	assert.Contains(t, resp.Text, factual)
}

func TestWrapperSeedDeterminism(t *testing.T) {
	rec := incomeCertificate()
	a := New(rand.New(rand.NewSource(42))).Service(rec, domain.IntentFees, domain.LanguageTamil)
	b := New(rand.New(rand.NewSource(42))).Service(rec, domain.IntentFees, domain.LanguageTamil)
	assert.Equal(t, a.Text, b.Text)
}

func TestFollowUpProcedureIntent(t *testing.T) {
	r := New(nil)
	rec := incomeCertificate()
	resp := r.FollowUp(rec, domain.IntentProcedure, domain.LanguageEnglish)
	assert.Equal(t, domain.ResponseFollowUp, resp.Type)
	assert.Contains(t, resp.Text, "detailed procedure for Income Certificate")
	assert.Contains(t, resp.Text, "  1. Visit Taluk office or e-Sevai center")
}

func TestFollowUpOtherIntentGivesOverview(t *testing.T) {
	r := New(nil)
	rec := incomeCertificate()
	resp := r.FollowUp(rec, domain.IntentFees, domain.LanguageEnglish)
	assert.Equal(t, domain.ResponseFollowUp, resp.Type)
	assert.Contains(t, resp.Text, rec.DescriptionEN)
	assert.Equal(t, "income_certificate", resp.ServiceID)
}

func TestStaticTemplatesPerLanguage(t *testing.T) {
	r := New(nil)

	g := r.Greeting(domain.LanguageTamil)
	assert.Equal(t, domain.ResponseGreeting, g.Type)
	assert.Contains(t, g.Text, "வணக்கம்")

	f := r.Farewell(domain.LanguageEnglish)
	assert.Equal(t, domain.ResponseFarewell, f.Type)

	c := r.Clarification(domain.LanguageEnglish)
	assert.Equal(t, domain.ResponseClarification, c.Type)

	n := r.NoResults(domain.LanguageEnglish)
	assert.Equal(t, domain.ResponseNoResults, n.Type)
	assert.Contains(t, n.Text, "1800-425-1000")

	m := r.MissingContext(domain.LanguageTamil)
	assert.Equal(t, domain.ResponseClarification, m.Type)
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	r := New(nil)
	g := r.Greeting(domain.LanguageUnknown)
	assert.NotEmpty(t, g.Text)
	assert.Equal(t, r.Greeting(domain.LanguageEnglish).Text, g.Text)
}
