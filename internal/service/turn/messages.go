package turn

const (
	blockedMessage   = "Your input contains unsafe content and has been blocked."
	injectionMessage = "Your input appears to contain prompt injection and has been blocked."

	piiNotice   = "Your message contains sensitive personal information. Please remove or rephrase it."
	piiResponse = "Input blocked due to PII."

	crisisMessage = "I'm here for you. It sounds like you're going through something very difficult. " +
		"Please know you're not alone. If you're in immediate danger or need urgent help, " +
		"contact a mental health professional or crisis helpline in your area."

	unsafeResponseNotice  = "The AI response was flagged as unsafe."
	unsafeResponseMessage = "Response blocked due to safety concerns."

	safetyUnavailableMessage = "I couldn't complete a safety check on this message, so I can't respond right now. " +
		"Please try again in a moment. If you're in immediate danger, contact a crisis helpline in your area."

	generationFailedMessage = "I'm having trouble responding right now. Please try again in a moment."
)

const chatSystemPrompt = "You are a compassionate therapist."

const journalSystemPrompt = "You are an empathetic AI therapist. A user has written a journal entry. " +
	"Read it, reflect on the feelings expressed, and provide a thoughtful and supportive response. " +
	"End with a gentle follow-up question to encourage continued journaling."
