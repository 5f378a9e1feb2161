package bootstrap

import (
	"context"
	"log"

	"tenderdesk-be/internal/board"
	"tenderdesk-be/internal/config"
	"tenderdesk-be/internal/controller"
	"tenderdesk-be/internal/handler"
	"tenderdesk-be/internal/pkg/logger"
	"tenderdesk-be/internal/pkg/mailer"
	"tenderdesk-be/internal/repository/implementation"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/internal/service"
	"tenderdesk-be/internal/websocket"
	"tenderdesk-be/pkg/lock"
	"tenderdesk-be/pkg/storage"

	pktNats "tenderdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	activityTopic = "activity_events"
	settingsTopic = "scheduler_settings"
)

type Container struct {
	// Controllers
	TenderController   controller.ITenderController
	TrackingController controller.ITrackingController
	StudyController    controller.IStudyController
	SnapshotController controller.ISnapshotController
	EmployeeController controller.IEmployeeController
	CompanyController  controller.ICompanyController
	DocumentController controller.IDocumentController
	SessionController  controller.ISessionController
	ActivityController controller.IActivityController

	// Background services (exposed for main.go to run)
	ActivityConsumer service.IActivityConsumerService
	SnapshotService  *service.SnapshotService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. In-process event bus (activity writes, scheduler nudges)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// A nil *Publisher wrapped in the interface would slip past the services'
	// nil checks, so only assign it when the connection came up.
	var eventBus service.EventPublisher
	if natsPub != nil {
		eventBus = natsPub
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	locker := lock.NewRedisLocker(rdb)

	// File storage
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.App.BaseURL+"/uploads")
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize upload storage: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	activityPublisher := service.NewPublisherService(activityTopic, pubSub)
	settingsPublisher := service.NewPublisherService(settingsTopic, pubSub)

	activityService := service.NewActivityService(uowFactory, activityPublisher)
	activityConsumer := service.NewActivityConsumerService(pubSub, activityTopic, uowFactory)

	thresholds := board.Thresholds{
		High:   cfg.Tracking.PriorityHighThreshold,
		Medium: cfg.Tracking.PriorityMediumThreshold,
	}

	tenderService := service.NewTenderService(uowFactory, activityService, thresholds)
	trackingService := service.NewTrackingService(
		uowFactory,
		eventBus,
		wsHub,
		activityService,
		thresholds,
		sysLogger,
	)
	studyService := service.NewStudyService(uowFactory, activityService)
	employeeService := service.NewEmployeeService(uowFactory, activityService)
	companyService := service.NewCompanyService(uowFactory, activityService)
	documentService := service.NewDocumentService(uowFactory, fileStorage, eventBus, activityService)
	sessionService := service.NewSessionService(uowFactory)
	settingsService := service.NewSettingsService(
		uowFactory,
		settingsPublisher,
		cfg.Snapshot.DefaultSnapshotTime,
		cfg.Snapshot.DefaultResetTime,
	)

	snapshotService := service.NewSnapshotService(
		implementation.NewSnapshotRepository(db),
		implementation.NewLiveSessionRepository(db),
		implementation.NewEmployeeRepository(db),
		implementation.NewActivityLogRepository(db),
		implementation.NewSettingsRepository(db),
		locker,
		pubSub,
		settingsTopic,
		emailService,
		eventBus,
		cfg.Snapshot,
		sysLogger,
	)

	// 3.5 Notification system
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		TenderController:   controller.NewTenderController(tenderService),
		TrackingController: controller.NewTrackingController(trackingService),
		StudyController:    controller.NewStudyController(studyService),
		SnapshotController: controller.NewSnapshotController(snapshotService, settingsService),
		EmployeeController: controller.NewEmployeeController(employeeService),
		CompanyController:  controller.NewCompanyController(companyService),
		DocumentController: controller.NewDocumentController(documentService),
		SessionController:  controller.NewSessionController(sessionService),
		ActivityController: controller.NewActivityController(activityService),

		ActivityConsumer: activityConsumer,
		SnapshotService:  snapshotService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
