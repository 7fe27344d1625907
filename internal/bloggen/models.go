package bloggen

// ModelConfig describes one hosted completion model: where to reach it
// and which sampling parameters to send. Instances are immutable.
type ModelConfig struct {
	Name             string
	BaseURL          string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
	Strengths        []string
	Description      string
}

// DefaultUseCase is the registry key used when a caller asks for a use
// case that has no dedicated entry.
const DefaultUseCase = "blog_generation"

var models = map[string]ModelConfig{
	DefaultUseCase: {
		Name:             "nvidia/llama-3.3-nemotron-super-49b-v1",
		BaseURL:          "https://integrate.api.nvidia.com/v1/chat/completions",
		Temperature:      0.6,
		MaxTokens:        4096,
		TopP:             0.95,
		FrequencyPenalty: 0,
		PresencePenalty:  0,
		Strengths:        []string{"content_creation", "seo_optimization", "brand_voice", "engagement", "detailed_thinking"},
		Description:      "Optimized for creating engaging, SEO-friendly blog content with detailed thinking",
	},
}

// SelectModel resolves a use case to its model configuration. An unknown
// use case falls back to the default entry; this never fails.
func SelectModel(useCase string) ModelConfig {
	if m, ok := models[useCase]; ok {
		return m
	}
	return models[DefaultUseCase]
}
