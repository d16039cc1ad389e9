package responder

import (
	"fmt"
	"strings"

	"govchat/internal/domain"
)

// renderFunc emits the intent-specific middle section of a factual
// block. The full set of handled intents is the keys of renderers, so
// adding an intent without a renderer is caught at review, not by a
// silent fallthrough.
type renderFunc func(rec domain.ServiceRecord, tamil bool) []string

var renderers = map[domain.Intent]renderFunc{
	domain.IntentDownload:   renderDownload,
	domain.IntentReissue:    renderReissue,
	domain.IntentCorrection: renderCorrection,
	domain.IntentRenewal:    renderRenewal,
	domain.IntentStatus:     renderStatus,
	domain.IntentDocuments:  renderDocuments,
	domain.IntentApply:      renderProcedure,
	domain.IntentProcedure:  renderProcedure,
	domain.IntentFees:       renderFees,
	domain.IntentContact:    renderContact,
}

// FormatService renders the deterministic factual block for a service,
// intent and language: service heading, intent-specific body, and the
// unconditional contact/URL footer. The decorative wrapper is applied
// separately.
func FormatService(rec domain.ServiceRecord, intent domain.Intent, lang domain.Language) string {
	tamil := lang == domain.LanguageTamil
	parts := []string{"📋 " + rec.Name(lang), ""}

	render, ok := renderers[intent]
	if !ok {
		// general_inquiry and eligibility get the full overview
		render = renderGeneral
	}
	parts = append(parts, render(rec, tamil)...)

	parts = append(parts, "")
	if tamil {
		parts = append(parts,
			"📞 தொடர்பு: "+rec.Contact,
			"🌐 வலைதளம்: "+rec.URL,
		)
	} else {
		parts = append(parts,
			"📞 Contact: "+rec.Contact,
			"🌐 Website: "+rec.URL,
		)
	}
	return strings.Join(parts, "\n")
}

func renderDownload(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"💻 ஆன்லைனில் டவுன்லோட் செய்வது எப்படி:",
			"  1. " + rec.URL + " வலைதளத்திற்கு செல்லவும்",
			"  2. உங்கள் விண்ணப்ப எண் மற்றும் விவரங்களை உள்ளிடவும்",
			"  3. 'பதிவிறக்கம்' பொத்தானை கிளிக் செய்யவும்",
			"  4. PDF ஐப் பதிவிறக்கம் செய்து அச்சிடவும்",
			"",
			"⚠️ குறிப்பு: ஏற்கனவே வழங்கப்பட்ட சான்றிதழ்களை மட்டுமே டவுன்லோட் செய்ய முடியும்",
		}
	}
	return []string{
		"💻 How to Download Online:",
		"  1. Visit " + rec.URL,
		"  2. Enter your application number and details",
		"  3. Click 'Download' button",
		"  4. Download PDF and print",
		"",
		"⚠️ Note: Only previously issued certificates can be downloaded",
	}
}

func renderReissue(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"🔄 நகல் சான்றிதழ் பெறுவது எப்படி:",
			"  1. அருகிலுள்ள இ-சேவை மையம் அல்லது தாலுக்கா அலுவலகத்திற்கு செல்லவும்",
			"  2. 'நகல் சான்றிதழ்' விண்ணப்பத்தைப் பூர்த்தி செய்யவும்",
			"  3. அசல் சான்றிதழின் நகல் அல்லது எண்ணை வழங்கவும்",
			"  4. அடையாள சான்று சமர்ப்பிக்கவும்",
			"  5. கட்டணம் செலுத்தவும்",
			"",
			"💰 கட்டணம்: " + orDefault(rec.FeesTA, "தகவல் இல்லை"),
		}
	}
	return []string{
		"🔄 How to Get Duplicate Certificate:",
		"  1. Visit nearest e-Sevai center or Taluk office",
		"  2. Fill 'Duplicate Certificate' application",
		"  3. Provide original certificate copy or number",
		"  4. Submit ID proof",
		"  5. Pay fees",
		"",
		"💰 Fees: " + orDefault(rec.Fees, "Not specified"),
	}
}

func renderCorrection(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"✏️ தவறுகளைத் திருத்துவது எப்படி:",
			"  1. அசல் சான்றிதழுடன் தாலுக்கா அலுவலகத்திற்கு செல்லவும்",
			"  2. 'திருத்தம்' விண்ணப்பத்தை பூர்த்தி செய்யவும்",
			"  3. திருத்தத்திற்கான ஆதார ஆவணங்களை இணைக்கவும்",
			"  4. சரிபார்ப்புக்குப் பிறகு திருத்தப்பட்ட சான்றிதழ் வழங்கப்படும்",
		}
	}
	return []string{
		"✏️ How to Make Corrections:",
		"  1. Visit Taluk office with original certificate",
		"  2. Fill 'Correction' application form",
		"  3. Attach supporting documents for correction",
		"  4. Corrected certificate issued after verification",
	}
}

func renderRenewal(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"🔄 புதுப்பிப்பது எப்படி:",
			"  1. இ-சேவை மையம் அல்லது ஆன்லைனில் விண்ணப்பிக்கவும்",
			"  2. அசல் சான்றிதழின் நகலை இணைக்கவும்",
			"  3. புதுப்பிக்கப்பட்ட தகவல்கள்/ஆவணங்களை சமர்ப்பிக்கவும்",
			"  4. கட்டணம் செலுத்தவும்",
		}
	}
	return []string{
		"🔄 How to Renew:",
		"  1. Apply at e-Sevai center or online",
		"  2. Attach copy of original certificate",
		"  3. Submit updated information/documents",
		"  4. Pay renewal fees",
	}
}

func renderStatus(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"📊 நிலையைச் சரிபார்ப்பது எப்படி:",
			"  1. " + rec.URL + " இல் 'விண்ணப்ப நிலை' பிரிவுக்கு செல்லவும்",
			"  2. உங்கள் விண்ணப்ப எண்ணை உள்ளிடவும்",
			"  3. மொபைல் எண் அல்லது ஆதார் எண்ணைச் சரிபார்க்கவும்",
			"  4. தற்போதைய நிலையைக் காணவும்",
			"",
			"📞 SMS வழி நிலை: " + rec.Contact + " க்கு அழைக்கவும்",
		}
	}
	return []string{
		"📊 How to Check Status:",
		"  1. Go to 'Application Status' section on " + rec.URL,
		"  2. Enter your application number",
		"  3. Verify with mobile or Aadhaar number",
		"  4. View current status",
		"",
		"📞 Status via SMS: Call " + rec.Contact,
	}
}

func renderDocuments(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return bulleted("📑 தேவையான ஆவணங்கள்:", rec.RequirementsTA)
	}
	return bulleted("📑 Required Documents:", rec.Requirements)
}

func renderProcedure(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return numbered("📝 விண்ணப்பிக்கும் முறை:", rec.ProcedureTA)
	}
	return numbered("📝 Application Procedure:", rec.Procedure)
}

func renderFees(rec domain.ServiceRecord, tamil bool) []string {
	var parts []string
	if tamil {
		parts = append(parts, "💰 கட்டணம்: "+rec.FeesTA)
		if rec.ProcessingTime != "" {
			parts = append(parts, "⏱️ செயலாக்க நேரம்: "+rec.ProcessingTime)
		}
	} else {
		parts = append(parts, "💰 Fees: "+rec.Fees)
		if rec.ProcessingTime != "" {
			parts = append(parts, "⏱️ Processing Time: "+rec.ProcessingTime)
		}
	}
	return parts
}

func renderContact(rec domain.ServiceRecord, tamil bool) []string {
	if tamil {
		return []string{
			"📞 தொடர்பு தகவல்:",
			"  உதவி எண்: " + rec.Contact,
			"  வலைதளம்: " + rec.URL,
			"  துறை: " + rec.DepartmentTA,
		}
	}
	return []string{
		"📞 Contact Information:",
		"  Helpline: " + rec.Contact,
		"  Website: " + rec.URL,
		"  Department: " + rec.Department,
	}
}

func renderGeneral(rec domain.ServiceRecord, tamil bool) []string {
	var parts []string
	if tamil {
		parts = append(parts, rec.DescriptionTA, "")
		parts = append(parts, bulleted("📑 தேவையான ஆவணங்கள்:", rec.RequirementsTA)...)
		parts = append(parts, "")
		parts = append(parts, numbered("📝 விண்ணப்பிக்கும் முறை:", rec.ProcedureTA)...)
		parts = append(parts, "")
		parts = append(parts, "💰 கட்டணம்: "+rec.FeesTA)
		if rec.ProcessingTime != "" {
			parts = append(parts, "⏱️ செயலாக்க நேரம்: "+rec.ProcessingTime)
		}
	} else {
		parts = append(parts, rec.DescriptionEN, "")
		parts = append(parts, bulleted("📑 Required Documents:", rec.Requirements)...)
		parts = append(parts, "")
		parts = append(parts, numbered("📝 Application Procedure:", rec.Procedure)...)
		parts = append(parts, "")
		parts = append(parts, "💰 Fees: "+rec.Fees)
		if rec.ProcessingTime != "" {
			parts = append(parts, "⏱️ Processing Time: "+rec.ProcessingTime)
		}
	}
	return parts
}

func bulleted(heading string, items []string) []string {
	out := []string{heading}
	for _, item := range items {
		out = append(out, "  • "+item)
	}
	return out
}

func numbered(heading string, items []string) []string {
	out := []string{heading}
	for i, item := range items {
		out = append(out, fmt.Sprintf("  %d. %s", i+1, item))
	}
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
