package responder

import "govchat/internal/domain"

// Static bilingual templates. Unknown-language queries fall back to
// the English rendering.

var greetingTemplates = map[domain.Language]string{
	domain.LanguageEnglish: "Hello! I'm here to help you with Tamil Nadu government services. How can I assist you today?",
	domain.LanguageTamil:   "வணக்கம்! தமிழ்நாடு அரசு சேவைகள் தொடர்பாக நான் உங்களுக்கு உதவ இங்கே இருக்கிறேன். இன்று நான் உங்களுக்கு எப்படி உதவ முடியும்?",
}

var farewellTemplates = map[domain.Language]string{
	domain.LanguageEnglish: "Thank you for using our service. Have a great day!",
	domain.LanguageTamil:   "எங்கள் சேவையைப் பயன்படுத்தியதற்கு நன்றி. நல்ல நாள்!",
}

// followUpClarification is the prompt for a continuation with no
// service on record.
var followUpClarification = map[domain.Language]string{
	domain.LanguageEnglish: "Which service are you asking about? Please let me know! 😊",
	domain.LanguageTamil:   "நீங்கள் எந்த சேவையைப் பற்றி கேட்கிறீர்கள்? தயவுசெய்து குறிப்பிடவும்! 😊",
}

// clarificationTemplates list the service categories a vague query can
// be narrowed to.
var clarificationTemplates = map[domain.Language]string{
	domain.LanguageEnglish: `I'd love to help you! 😊

Which service would you like to know about?

🔹 Birth Certificate (பிறப்பு சான்றிதழ்)
🔹 Income Certificate (வருமான சான்றிதழ்)
🔹 Community Certificate (சமூக சான்றிதழ்)
🔹 Ration Card (ரேஷன் அட்டை)

You can pick one of these or tell me more about what you need!`,
	domain.LanguageTamil: `நான் உங்களுக்கு உதவ விரும்புகிறேன்! 😊

நீங்கள் எந்த சேவையைப் பற்றி தெரிந்து கொள்ள விரும்புகிறீர்கள்?

🔹 பிறப்பு சான்றிதழ் (Birth Certificate)
🔹 வருமான சான்றிதழ் (Income Certificate)
🔹 சமூக சான்றிதழ் (Community Certificate)
🔹 ரேஷன் அட்டை (Ration Card)

இவற்றில் ஏதேனும் ஒன்றைத் தேர்ந்தெடுக்கவும் அல்லது உங்கள் கேள்வியை விரிவாகக் கூறவும்!`,
}

// noResultsTemplates list the known categories plus the helpline when
// retrieval returned nothing usable.
var noResultsTemplates = map[domain.Language]string{
	domain.LanguageEnglish: `I'm sorry, I couldn't find exact information about that. 😔

But I can help you with:

🔹 How to get Birth Certificate?
🔹 Need Income Certificate?
🔹 Ration Card application?
🔹 Community Certificate documents?

Or try asking your question differently! 💚

Helpline: 1800-425-1000`,
	domain.LanguageTamil: `மன்னிக்கவும், எனக்கு துல்லியமான தகவல் கிடைக்கவில்லை. 😔

ஆனால் நான் உங்களுக்கு உதவ முடியும்:

🔹 பிறப்பு சான்றிதழ் எப்படி பெறுவது?
🔹 வருமான சான்றிதழ் தேவையா?
🔹 ரேஷன் அட்டை விண்ணப்பம்?
🔹 சமூக சான்றிதழ் ஆவணங்கள்?

அல்லது எனக்கு உங்கள் கேள்வியை வேறு விதமாக கேளுங்கள்! 💚

தொடர்பு எண்: 1800-425-1000`,
}

var tamilOpenings = []string{
	"நிச்சயமாக! ",
	"சரி! ",
	"நல்ல கேள்வி! ",
}

var tamilClosings = []string{
	"\n\nவேறு ஏதாவது தெரிந்து கொள்ள வேண்டுமா? 😊",
	"\n\nமேலும் விவரங்கள் தேவையா?",
}

var englishOpenings = []string{
	"Sure! ",
	"I'd be happy to help! ",
	"Here's what you need to know: ",
}

var englishClosings = []string{
	"\n\nIs there anything else you'd like to know? 😊",
	"\n\nFeel free to ask if you need more details!",
}

func pick(templates map[domain.Language]string, lang domain.Language) string {
	if t, ok := templates[lang]; ok {
		return t
	}
	return templates[domain.LanguageEnglish]
}
