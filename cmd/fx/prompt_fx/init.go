package prompt_fx

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripmate/internal/services"
	"tripmate/pkg/config"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvidePromptService)

// ChatClientOptions picks the key and model that belong to the configured provider.
func ChatClientOptions(cfg config.Config) (utils.ChatClientOptions, error) {
	opts := utils.ChatClientOptions{Provider: strings.ToLower(cfg.LLMProvider)}

	switch opts.Provider {
	case "", "openai", "qwen":
		opts.APIKey = cfg.OpenAIAPIKey
		opts.BaseURL = cfg.OpenAIBaseURL
		opts.Model = cfg.OpenAIModel
		if opts.APIKey == "" {
			return opts, fmt.Errorf("QWEN_API_KEY or OPENAI_API_KEY is required for provider %q", cfg.LLMProvider)
		}
	case "gemini":
		opts.APIKey = cfg.GeminiAPIKey
		opts.Model = cfg.GeminiModel
		if opts.APIKey == "" {
			return opts, fmt.Errorf("GEMINI_API_KEY is required when using Gemini provider")
		}
	default:
		return opts, fmt.Errorf("unsupported LLM provider: %s. Use 'openai', 'qwen' or 'gemini'", cfg.LLMProvider)
	}
	return opts, nil
}

// ProvideChatClient creates the chat model client for the configured provider
func ProvideChatClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.ChatClientInterface, error) {
	opts, err := ChatClientOptions(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Initializing chat client", zap.String("provider", opts.Provider), zap.String("model", opts.Model))

	client, err := utils.NewChatClient(context.Background(), opts)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.StopHook(closer.Close))
	}
	return client, nil
}

func ProvidePromptService(amap services.AmapClientInterface, log *zap.Logger) services.PromptServiceInterface {
	return services.NewPromptService(amap, log.Named("prompt"))
}
