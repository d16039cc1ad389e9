package records

import "govchat/internal/domain"

// StaticServices returns the curated Tamil Nadu service dataset used to
// seed a fresh database.
func StaticServices() []domain.ServiceRecord {
	return []domain.ServiceRecord{
		{
			ID:            "birth_certificate",
			NameEN:        "Birth Certificate",
			NameTA:        "பிறப்பு சான்றிதழ்",
			DescriptionEN: "Official document certifying the birth of a person",
			DescriptionTA: "ஒரு நபரின் பிறப்பை சான்றளிக்கும் அதிகாரப்பூர்வ ஆவணம்",
			Department:    "Revenue Department",
			DepartmentTA:  "வருவாய் துறை",
			Requirements: []string{
				"Hospital birth certificate or declaration",
				"Parents' ID proof (Aadhaar/Voter ID)",
				"Address proof",
			},
			RequirementsTA: []string{
				"மருத்துவமனை பிறப்பு சான்றிதழ் அல்லது அறிவிப்பு",
				"பெற்றோரின் அடையாள சான்று (ஆதார்/வாக்காளர் அடையாள அட்டை)",
				"முகவரி சான்று",
			},
			Procedure: []string{
				"Visit e-Sevai center or apply online",
				"Submit required documents",
				"Pay prescribed fees",
				"Collect certificate after verification",
			},
			ProcedureTA: []string{
				"இ-சேவை மையத்தை பார்வையிடவும் அல்லது ஆன்லைனில் விண்ணப்பிக்கவும்",
				"தேவையான ஆவணங்களை சமர்ப்பிக்கவும்",
				"நிர்ணயிக்கப்பட்ட கட்டணத்தை செலுத்தவும்",
				"சரிபார்ப்புக்கு பிறகு சான்றிதழை சேகரிக்கவும்",
			},
			Fees:    "Free",
			FeesTA:  "இலவசம்",
			Contact: "1800-425-1000",
			URL:     "https://www.tnedistrict.gov.in",
		},
		{
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
			RequirementsTA: []string{
				"ஆதார் அட்டை",
				"ரேஷன் அட்டை",
				"சம்பள சான்றிதழ் அல்லது வருமான சான்று",
				"முகவரி சான்று",
			},
			Procedure: []string{
				"Visit Taluk office or e-Sevai center",
				"Fill application form",
				"Submit required documents",
				"Pay fees (if applicable)",
				"Certificate issued after verification",
			},
			ProcedureTA: []string{
				"தாலுக்கா அலுவலகம் அல்லது இ-சேவை மையத்தை பார்வையிடவும்",
				"விண்ணப்ப படிவத்தை நிரப்பவும்",
				"தேவையான ஆவணங்களை சமர்ப்பிக்கவும்",
				"கட்டணத்தை செலுத்தவும் (பொருந்தினால்)",
				"சரிபார்ப்புக்கு பிறகு சான்றிதழ் வழங்கப்படும்",
			},
			Fees:           "₹10",
			FeesTA:         "₹10",
			ProcessingTime: "7-15 days",
			Contact:        "1800-425-1000",
			URL:            "https://www.tnedistrict.gov.in",
		},
		{
			ID:            "community_certificate",
			NameEN:        "Community Certificate",
			NameTA:        "சமூக சான்றிதழ்",
			DescriptionEN: "Certificate proving community status (SC/ST/OBC/MBC)",
			DescriptionTA: "சமூக நிலையை நிரூபிக்கும் சான்றிதழ் (SC/ST/OBC/MBC)",
			Department:    "Revenue Department",
			DepartmentTA:  "வருவாய் துறை",
			Requirements: []string{
				"Aadhaar card",
				"Parent's community certificate (if available)",
				"School records",
				"Address proof",
			},
			RequirementsTA: []string{
				"ஆதார் அட்டை",
				"பெற்றோரின் சமூக சான்றிதழ் (இருந்தால்)",
				"பள்ளி பதிவுகள்",
				"முகவரி சான்று",
			},
			Procedure: []string{
				"Apply through e-Sevai center",
				"Submit application with documents",
				"Verification by Tahsildar",
				"Certificate issued after approval",
			},
			ProcedureTA: []string{
				"இ-சேவை மையம் மூலம் விண்ணப்பிக்கவும்",
				"ஆவணங்களுடன் விண்ணப்பத்தை சமர்ப்பிக்கவும்",
				"தஹசில்தார் மூலம் சரிபார்ப்பு",
				"ஒப்புதலுக்கு பிறகு சான்றிதழ் வழங்கப்படும்",
			},
			Fees:           "Free",
			FeesTA:         "இலவசம்",
			ProcessingTime: "15-30 days",
			Contact:        "1800-425-1000",
			URL:            "https://www.tnedistrict.gov.in",
		},
		{
			ID:            "ration_card",
			NameEN:        "Ration Card",
			NameTA:        "ரேஷன் அட்டை",
			DescriptionEN: "Card for purchasing subsidized food grains from Public Distribution System",
			DescriptionTA: "பொது விநியோக அமைப்பிலிருந்து மானிய உணவு தானியங்களை வாங்குவதற்கான அட்டை",
			Department:    "Civil Supplies Department",
			DepartmentTA:  "சிவில் சப்ளைஸ் துறை",
			Requirements: []string{
				"Aadhaar card of all family members",
				"Income certificate",
				"Address proof (Electricity bill/Water bill)",
				"Passport size photos",
			},
			RequirementsTA: []string{
				"அனைத்து குடும்ப உறுப்பினர்களின் ஆதார் அட்டை",
				"வருமான சான்றிதழ்",
				"முகவரி சான்று (மின்சாரம்/தண்ணீர் பில்)",
				"பாஸ்போர்ட் அளவு புகைப்படங்கள்",
			},
			Procedure: []string{
				"Apply online at tnpds.gov.in",
				"Upload required documents",
				"Submit at Civil Supplies office",
				"Inspection and verification",
				"Card issued after approval",
			},
			ProcedureTA: []string{
				"tnpds.gov.in இல் ஆன்லைனில் விண்ணப்பிக்கவும்",
				"தேவையான ஆவணங்களை பதிவேற்றவும்",
				"சிவில் சப்ளைஸ் அலுவலகத்தில் சமர்ப்பிக்கவும்",
				"ஆய்வு மற்றும் சரிபார்ப்பு",
				"ஒப்புதலுக்கு பிறகு அட்டை வழங்கப்படும்",
			},
			Fees:    "Free",
			FeesTA:  "இலவசம்",
			Contact: "1967 (Toll-free)",
			URL:     "https://www.tnpds.gov.in",
		},
	}
}
