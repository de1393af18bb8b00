package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Hindi

	message.SetString(lang, "app.title", "छात्र सहभागिता मंच")
	message.SetString(lang, "nav.dashboard", "डैशबोर्ड")
	message.SetString(lang, "nav.games", "खेल")
	message.SetString(lang, "nav.leaderboard", "लीडरबोर्ड")
	message.SetString(lang, "nav.profile", "प्रोफ़ाइल")
	message.SetString(lang, "nav.assessment", "मूल्यांकन")
	message.SetString(lang, "nav.logout", "लॉग आउट")
	message.SetString(lang, "nav.login", "लॉग इन")
	message.SetString(lang, "nav.signup", "साइन अप")
	message.SetString(lang, "nav.language", "भाषा")

	message.SetString(lang, "login.title", "लॉग इन")
	message.SetString(lang, "login.username", "उपयोगकर्ता नाम")
	message.SetString(lang, "login.password", "पासवर्ड")
	message.SetString(lang, "login.submit", "लॉग इन करें")
	message.SetString(lang, "login.no_account", "नए हैं? साइन अप के लिए मूल्यांकन पूरा करें।")
	message.SetString(lang, "login.google", "Google से साइन इन करें")
	message.SetString(lang, "login.error.invalid", "उपयोगकर्ता नाम या पासवर्ड गलत है")
	message.SetString(lang, "login.error.google", "Google साइन इन विफल रहा")
	message.SetString(lang, "login.flash.registered", "खाता बन गया। कृपया लॉग इन करें।")
	message.SetString(lang, "signup.title", "अपना खाता बनाएँ")
	message.SetString(lang, "signup.email", "ईमेल")
	message.SetString(lang, "signup.confirm_password", "पासवर्ड की पुष्टि करें")
	message.SetString(lang, "signup.submit", "साइन अप करें")
	message.SetString(lang, "signup.have_account", "पहले से खाता है? लॉग इन करें।")
	message.SetString(lang, "signup.error.mismatch", "पासवर्ड मेल नहीं खाते")
	message.SetString(lang, "signup.error.exists", "उपयोगकर्ता नाम या ईमेल पहले से मौजूद है")
	message.SetString(lang, "signup.error.gate", "साइन अप से पहले कृपया मूल्यांकन पूरा करें")
	message.SetString(lang, "signup.error.invalid", "कृपया चिह्नित फ़ील्ड जाँचें")

	message.SetString(lang, "assessment.title", "तैयारी मूल्यांकन")
	message.SetString(lang, "assessment.intro", "कुछ प्रश्नों के उत्तर दें ताकि हम समझ सकें कि आपकी सहायता कैसे करें।")
	message.SetString(lang, "assessment.submit", "जमा करें")
	message.SetString(lang, "assessment.select", "एक विकल्प चुनें")
	message.SetString(lang, "assessment.result", "अनुमानित ड्रॉपआउट जोखिम: %d%%")
	message.SetString(lang, "assessment.eligible", "आप साइन अप के लिए पात्र हैं।")
	message.SetString(lang, "assessment.not_eligible", "क्षमा करें, आप अभी साइन अप के लिए पात्र नहीं हैं।")
	message.SetString(lang, "assessment.continue", "साइन अप जारी रखें")
	message.SetString(lang, "assessment.saved", "आपका मूल्यांकन सहेज लिया गया है।")
	message.SetString(lang, "assessment.error", "कृपया हर प्रश्न का उत्तर दें।")
	message.SetString(lang, "q.Age", "आयु")
	message.SetString(lang, "q.Gender", "लिंग")
	message.SetString(lang, "q.Family_members", "आपके परिवार में कितने सदस्य हैं?")
	message.SetString(lang, "q.Daily_chores_completion", "क्या आप अपने रोज़ के काम पूरे करते हैं?")
	message.SetString(lang, "q.Group_activities_participation", "समूह गतिविधियों के बारे में आप क्या सोचते हैं?")
	message.SetString(lang, "q.Sports_or_team_games", "आपको खेल या टीम गेम कितने पसंद हैं? (1-5)")
	message.SetString(lang, "q.Comfort_talking", "नए लोगों से बात करने में आप कितने सहज हैं? (1-5)")
	message.SetString(lang, "q.Past_program_participation", "क्या आपने पहले ऐसे किसी कार्यक्रम में भाग लिया है?")
	message.SetString(lang, "q.reason_for_joining", "क्या आपके पास जुड़ने का स्पष्ट कारण है?")
	message.SetString(lang, "q.Family_support", "आपका परिवार कितना सहयोगी है?")
	message.SetString(lang, "q.Commit_daily", "क्या आप हर दिन समय दे सकते हैं?")
	message.SetString(lang, "q.Comfortable_travelling", "क्या आप केंद्र तक यात्रा करने में सहज हैं?")
	message.SetString(lang, "q.Earning_members_in_family", "आपके परिवार में कितने कमाने वाले सदस्य हैं?")
	message.SetString(lang, "q.Highest_education_in_family", "आपके परिवार में सर्वोच्च शिक्षा")
	message.SetString(lang, "q.Severe_health_condition_in_family", "क्या परिवार में किसी को गंभीर स्वास्थ्य समस्या है?")
	message.SetString(lang, "q.Comfortable_using_technology", "क्या आप तकनीक का उपयोग करने में सहज हैं?")
	message.SetString(lang, "q.Work_experience", "क्या आपके पास कार्य अनुभव है?")
	message.SetString(lang, "q.Physical_health_condition_affect_participation", "क्या कोई शारीरिक स्वास्थ्य समस्या आपकी भागीदारी को प्रभावित करेगी?")
	message.SetString(lang, "q.Trust_in_program", "आप इस कार्यक्रम पर कितना भरोसा करते हैं?")

	message.SetString(lang, "dashboard.title", "डैशबोर्ड")
	message.SetString(lang, "dashboard.welcome", "स्वागत है, %s!")
	message.SetString(lang, "dashboard.best", "सर्वश्रेष्ठ स्कोर")
	message.SetString(lang, "dashboard.no_score", "अभी तक नहीं खेला")
	message.SetString(lang, "dashboard.play", "खेलें")
	message.SetString(lang, "games.title", "खेल")
	message.SetString(lang, "game.number_guess", "संख्या अनुमान")
	message.SetString(lang, "game.memory", "मेमोरी मैच")
	message.SetString(lang, "game.trivia", "प्रश्नोत्तरी")
	message.SetString(lang, "game.back", "खेलों पर वापस जाएँ")
	message.SetString(lang, "game.play_again", "फिर से खेलें")
	message.SetString(lang, "game.saved", "स्कोर सहेजा गया!")
	message.SetString(lang, "game.save_failed", "आपका स्कोर सहेजा नहीं जा सका।")
	message.SetString(lang, "number_guess.prompt", "1 से 100 के बीच एक संख्या का अनुमान लगाएँ।")
	message.SetString(lang, "number_guess.guess", "अनुमान")
	message.SetString(lang, "number_guess.higher", "और बड़ी!")
	message.SetString(lang, "number_guess.lower", "और छोटी!")
	message.SetString(lang, "number_guess.correct", "सही! आपका स्कोर:")
	message.SetString(lang, "memory.prompt", "कम से कम चालों में सभी जोड़े खोजें।")
	message.SetString(lang, "memory.moves", "चालें:")
	message.SetString(lang, "memory.done", "सभी जोड़े मिल गए! आपका स्कोर:")
	message.SetString(lang, "trivia.prompt", "नीचे दिए गए प्रश्नों के उत्तर दें।")
	message.SetString(lang, "trivia.submit", "उत्तर जाँचें")
	message.SetString(lang, "trivia.done", "आपका स्कोर:")

	message.SetString(lang, "leaderboard.title", "लीडरबोर्ड")
	message.SetString(lang, "leaderboard.rank", "स्थान")
	message.SetString(lang, "leaderboard.user", "खिलाड़ी")
	message.SetString(lang, "leaderboard.score", "स्कोर")
	message.SetString(lang, "leaderboard.games", "खेले गए खेल")
	message.SetString(lang, "leaderboard.all_games", "सभी खेल")
	message.SetString(lang, "leaderboard.empty", "अभी कोई स्कोर नहीं।")

	message.SetString(lang, "profile.title", "प्रोफ़ाइल")
	message.SetString(lang, "profile.member_since", "सदस्यता तिथि")
	message.SetString(lang, "profile.documents", "दस्तावेज़")
	message.SetString(lang, "profile.document_type", "दस्तावेज़ का प्रकार")
	message.SetString(lang, "profile.file", "फ़ाइल")
	message.SetString(lang, "profile.upload", "अपलोड करें")
	message.SetString(lang, "profile.uploaded_at", "अपलोड किया गया")
	message.SetString(lang, "profile.download", "डाउनलोड")
	message.SetString(lang, "profile.no_documents", "अभी तक कोई दस्तावेज़ अपलोड नहीं किया गया।")
	message.SetString(lang, "profile.allowed", "अनुमत: JPG, PNG, PDF, अधिकतम 16 MB।")
	message.SetString(lang, "profile.assessment", "मूल्यांकन")
	message.SetString(lang, "profile.risk", "ड्रॉपआउट जोखिम: %d%%")
	message.SetString(lang, "profile.retake", "मूल्यांकन अपडेट करें")
	message.SetString(lang, "profile.no_assessment", "कोई मूल्यांकन दर्ज नहीं है।")
}
