package config

// Supported llm.provider values.
const (
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderAlibaba  = "alibaba"
)

// providerAPIKeyEnv maps each provider to its conventional credential variable.
var providerAPIKeyEnv = map[string]string{
	ProviderOpenAI:   "OPENAI_API_KEY",
	ProviderGemini:   "GEMINI_API_KEY",
	ProviderDeepSeek: "DEEPSEEK_API_KEY",
	ProviderQwen:     "DASHSCOPE_API_KEY",
	ProviderAlibaba:  "DASHSCOPE_API_KEY",
}
