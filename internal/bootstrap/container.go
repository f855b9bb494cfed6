package bootstrap

import (
	"log"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/config"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/controller"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/logger"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/pkg/mailer"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/implementation"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/memory"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/service"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/dashboard"
	adminEvents "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/events"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/refund"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/admin/user"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/predictor"

	pktNats "github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	TicketController       controller.ITicketController
	PurchaseController     controller.IPurchaseController
	CaseController         controller.ICaseController
	AdminController        controller.IAdminController
	NotificationController controller.INotificationController
	PredictionController   controller.IPredictionController

	// Background Services (Exposed for main.go to run)
	MailConsumerService service.IMailConsumerService

	// Infrastructure the entrypoint has to close
	NatsPublisher *pktNats.Publisher
	SysLogger     *logger.ZapLogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	notifLogger := logger.NewIsolatedLogger(cfg.App.NotifLogFilePath)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	mailPublisher := service.NewPublisherService(pubSub, cfg.App.MailTopicName)
	mailConsumer := service.NewMailConsumerService(pubSub, cfg.App.MailTopicName, emailService)

	// NATS change feed (nil-safe: everything downstream tolerates no broker)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Prediction provider
	llmProvider := predictor.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	log.Printf("[INFO] Using Prediction Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)

	// 3. Services
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, notifLogger)

	authService := service.NewAuthService(uowFactory)
	ticketService := service.NewTicketService(uowFactory)
	purchaseService := service.NewPurchaseService(uowFactory, notifService, natsPub, sysLogger)
	caseService := service.NewCaseService(uowFactory, notifService, mailPublisher, natsPub, sysLogger)
	predictionService := service.NewPredictionService(llmProvider, sysLogger)

	// Admin Domain Components
	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	userManager := user.NewManager(sysLogger, adminEventPublisher)
	refundProcessor := refund.NewProcessor(sysLogger, adminEventPublisher)
	statsCache := memory.NewStatsCache(30 * time.Second)
	dashboardAggregator := dashboard.NewAggregator(sysLogger, statsCache)

	adminService := service.NewAdminService(
		uowFactory,
		refundProcessor,
		userManager,
		dashboardAggregator,
		notifService,
		mailPublisher,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		TicketController:       controller.NewTicketController(ticketService),
		PurchaseController:     controller.NewPurchaseController(purchaseService),
		CaseController:         controller.NewCaseController(caseService),
		AdminController:        controller.NewAdminController(adminService, caseService),
		NotificationController: controller.NewNotificationController(notifService),
		PredictionController:   controller.NewPredictionController(predictionService),

		MailConsumerService: mailConsumer,

		NatsPublisher: natsPub,
		SysLogger:     sysLogger,
	}
}
