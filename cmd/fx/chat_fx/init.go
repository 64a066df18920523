package chat_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/config"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(provideConversationRepo, provideChatService)

func provideConversationRepo(db *gorm.DB) repositories.ConversationRepository {
	return repositories.NewConversationRepository(db)
}

func provideChatService(
	convRepo repositories.ConversationRepository,
	llm utils.ChatClientInterface,
	prompts services.PromptServiceInterface,
	travelService services.TravelServiceInterface,
	cfg config.Config,
	log *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(convRepo, llm, prompts, travelService, cfg.DefaultTimezone, log.Named("chat"))
}
