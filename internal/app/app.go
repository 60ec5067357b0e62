package app

import (
	"github.com/kyodai-travel/tourbook/config"
	"github.com/kyodai-travel/tourbook/internal/cache"
	"github.com/kyodai-travel/tourbook/internal/model"
	"github.com/kyodai-travel/tourbook/internal/mq"
	"github.com/kyodai-travel/tourbook/internal/repository"
	"github.com/kyodai-travel/tourbook/internal/service/domain"
	"github.com/kyodai-travel/tourbook/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	ClientRepo      repository.ClientRepo
	AdminRepo       repository.AdminRepo
	SessionRepo     repository.SessionRepo
	CategoryRepo    repository.CategoryRepo
	DestinationRepo repository.DestinationRepo
	PackageRepo     repository.PackageRepo
	BookingRepo     repository.BookingRepo
	ReviewRepo      repository.ReviewRepo

	SessionService     domain.SessionService
	ClientService      domain.ClientService
	AdminService       domain.AdminService
	PackageService     domain.PackageService
	DestinationService domain.DestinationService
	CategoryService    domain.CategoryService
	BookingService     domain.BookingService
	ReviewService      domain.ReviewService

	BookingWorkflow      *workflow.BookingWorkflow
	NotificationWorkflow *workflow.NotificationWorkflow
}

func New(config *config.Config, db *gorm.DB, redisCache *cache.RedisCache, logger *zap.Logger, mqConn *amqp.Connection) *App {
	clientRepo := repository.NewClientRepoGorm(db)
	adminRepo := repository.NewAdminRepoGorm(db)
	sessionRepo := repository.NewSessionRepoGorm(db)
	categoryRepo := repository.NewCategoryRepoGorm(db)
	destinationRepo := repository.NewDestinationRepoGorm(db)
	packageRepo := repository.NewPackageRepoGorm(db)
	bookingRepo := repository.NewBookingRepoGorm(db)
	reviewRepo := repository.NewReviewRepoGorm(db)

	var svcCache domain.Cache
	if redisCache != nil {
		svcCache = redisCache
	}

	sessionService := domain.NewSessionService(sessionRepo, clientRepo, adminRepo, logger,
		config.ClientSessionTTL, config.AdminSessionTTL)
	clientService := domain.NewClientService(clientRepo)
	adminService := domain.NewAdminService(adminRepo)
	packageService := domain.NewPackageService(packageRepo, svcCache)
	destinationService := domain.NewDestinationService(destinationRepo)
	categoryService := domain.NewCategoryService(categoryRepo)
	bookingService := domain.NewBookingService(bookingRepo, packageRepo, svcCache)
	reviewService := domain.NewReviewService(reviewRepo, packageRepo)

	var publisher workflow.Publisher
	if mqConn != nil {
		publisher = mq.NewProducer(mqConn)
	}
	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, publisher, logger)
	notificationWorkflow := workflow.NewNotificationWorkflow(logger)

	return &App{
		Config: config,
		DB:     db,
		Cache:  redisCache,
		Logger: logger,
		MQConn: mqConn,

		ClientRepo:      clientRepo,
		AdminRepo:       adminRepo,
		SessionRepo:     sessionRepo,
		CategoryRepo:    categoryRepo,
		DestinationRepo: destinationRepo,
		PackageRepo:     packageRepo,
		BookingRepo:     bookingRepo,
		ReviewRepo:      reviewRepo,

		SessionService:     sessionService,
		ClientService:      clientService,
		AdminService:       adminService,
		PackageService:     packageService,
		DestinationService: destinationService,
		CategoryService:    categoryService,
		BookingService:     bookingService,
		ReviewService:      reviewService,

		BookingWorkflow:      bookingWorkflow,
		NotificationWorkflow: notificationWorkflow,
	}
}

// Init runs the one-time startup work: schema migration, seed data, queue
// declaration and the notification consumer. cmd/server calls it exactly
// once before the listener starts.
func (app *App) Init() error {
	if err := app.DB.AutoMigrate(
		&model.Admin{},
		&model.Client{},
		&model.Session{},
		&model.Category{},
		&model.Destination{},
		&model.TourPackage{},
		&model.Booking{},
		&model.Review{},
	); err != nil {
		return err
	}

	if err := app.seed(); err != nil {
		return err
	}

	if purged, err := app.SessionService.PurgeExpired(); err != nil {
		app.Logger.Warn("expired session purge failed", zap.Error(err))
	} else if purged > 0 {
		app.Logger.Info("purged expired sessions", zap.Int64("count", purged))
	}

	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
		if err := app.NotificationWorkflow.Start(app.MQConn); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
