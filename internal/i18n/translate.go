// Package i18n provides the static localized string lookup used by the
// transport layer. Translate is a pure function: unresolved keys fall back
// to the key itself.
package i18n

// DefaultLanguage is used when a client does not request one.
const DefaultLanguage = "en"

var translations = map[string]map[string]string{
	"en": {
		"welcome":           "Welcome to Icebreaker Quiz!",
		"enter.username":    "Enter your username",
		"start":             "Start Quiz",
		"select.theme":      "Select a Theme",
		"agility":           "Agility",
		"sports":            "Sports",
		"general":           "General Culture",
		"customer":          "Customer Care",
		"time.remaining":    "Time Remaining",
		"next":              "Next",
		"submit":            "Submit",
		"score":             "Your Score",
		"quiz.selectAnswer": "Please select an answer",
		"quiz.noQuestions":  "No questions available for this theme",
		"quiz.complete":     "Quiz complete!",
	},
	"fr": {
		"welcome":           "Bienvenue au Quiz Brise-glace !",
		"enter.username":    "Entrez votre nom d'utilisateur",
		"start":             "Commencer le Quiz",
		"select.theme":      "Sélectionnez un Thème",
		"agility":           "Agilité",
		"sports":            "Sports",
		"general":           "Culture Générale",
		"customer":          "Service Client",
		"time.remaining":    "Temps Restant",
		"next":              "Suivant",
		"submit":            "Soumettre",
		"score":             "Votre Score",
		"quiz.selectAnswer": "Veuillez sélectionner une réponse",
		"quiz.noQuestions":  "Aucune question disponible pour ce thème",
		"quiz.complete":     "Quiz terminé !",
	},
	"es": {
		"welcome":           "¡Bienvenido al Quiz Rompehielos!",
		"enter.username":    "Ingresa tu nombre de usuario",
		"start":             "Comenzar Quiz",
		"select.theme":      "Selecciona un Tema",
		"agility":           "Agilidad",
		"sports":            "Deportes",
		"general":           "Cultura General",
		"customer":          "Atención al Cliente",
		"time.remaining":    "Tiempo Restante",
		"next":              "Siguiente",
		"submit":            "Enviar",
		"score":             "Tu Puntaje",
		"quiz.selectAnswer": "Por favor selecciona una respuesta",
		"quiz.noQuestions":  "No hay preguntas disponibles para este tema",
		"quiz.complete":     "¡Quiz completado!",
	},
	"de": {
		"welcome":           "Willkommen beim Eisbrecher-Quiz!",
		"enter.username":    "Benutzername eingeben",
		"start":             "Quiz starten",
		"select.theme":      "Wähle ein Thema",
		"agility":           "Agilität",
		"sports":            "Sport",
		"general":           "Allgemeinwissen",
		"customer":          "Kundenbetreuung",
		"time.remaining":    "Verbleibende Zeit",
		"next":              "Weiter",
		"submit":            "Absenden",
		"score":             "Deine Punktzahl",
		"quiz.selectAnswer": "Bitte wähle eine Antwort aus",
		"quiz.noQuestions":  "Keine Fragen für dieses Thema verfügbar",
		"quiz.complete":     "Quiz abgeschlossen!",
	},
}

// Translate resolves key in the given language, falling back to English and
// finally to the key itself.
func Translate(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if lang != DefaultLanguage {
		if value, ok := translations[DefaultLanguage][key]; ok {
			return value
		}
	}
	return key
}
