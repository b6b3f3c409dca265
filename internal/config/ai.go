package config

type AI string

const (
	AIGemini AI = "gemini"
	AIGroq   AI = "groq"
)

type Model string

const (
	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"

	ModelLlama3V8B  Model = "llama3-8b-8192"
	ModelLlama3V70B Model = "llama3-70b-8192"
)

func SupportedAIs() []AI {
	return []AI{
		AIGemini,
		AIGroq,
	}
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25FlashLite,
			ModelGeminiV25Pro,
		}
	case AIGroq:
		return []Model{
			ModelLlama3V8B,
			ModelLlama3V70B,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// EnvVarForAI returns the environment variable holding the provider's API key.
func EnvVarForAI(ai AI) string {
	switch ai {
	case AIGemini:
		return "GEMINI_API_KEY"
	case AIGroq:
		return "GROQ_API_KEY"
	default:
		return ""
	}
}
