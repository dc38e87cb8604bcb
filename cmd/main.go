package main

import (
	"context"
	"log"

	"guide-booking-service/config"
	bookingHandler "guide-booking-service/internal/module/booking/handler"
	bookingRepositories "guide-booking-service/internal/module/booking/repositories"
	bookingUsecases "guide-booking-service/internal/module/booking/usecases"
	disputeHandler "guide-booking-service/internal/module/dispute/handler"
	disputeRepositories "guide-booking-service/internal/module/dispute/repositories"
	disputeUsecases "guide-booking-service/internal/module/dispute/usecases"
	referralHandler "guide-booking-service/internal/module/referral/handler"
	referralRepositories "guide-booking-service/internal/module/referral/repositories"
	referralUsecases "guide-booking-service/internal/module/referral/usecases"
	tripHandler "guide-booking-service/internal/module/trip/handler"
	tripRepositories "guide-booking-service/internal/module/trip/repositories"
	tripUsecases "guide-booking-service/internal/module/trip/usecases"
	userRepositories "guide-booking-service/internal/module/user/repositories"
	"guide-booking-service/internal/pkg/clock"
	"guide-booking-service/internal/pkg/database"
	"guide-booking-service/internal/pkg/http"
	"guide-booking-service/internal/pkg/httpclient"
	"guide-booking-service/internal/pkg/ledger"
	"guide-booking-service/internal/pkg/lock"
	log_internal "guide-booking-service/internal/pkg/log"
	"guide-booking-service/internal/pkg/messagestream"
	"guide-booking-service/internal/pkg/middleware"
	"guide-booking-service/internal/pkg/money"
	"guide-booking-service/internal/pkg/payment"
	"guide-booking-service/internal/pkg/redis"
	"guide-booking-service/internal/pkg/scheduler"
	router "guide-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, referral := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start scheduler
	sch := scheduler.Scheduler{Log: log_internal.GetLogger()}
	go sch.StartPeriodic(&cfg.Redis, cfg.Scheduler.PayoutBatchCron, scheduler.TypeReferralPayoutBatch)
	go sch.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReferralPayoutBatch},
		[]func(ctx context.Context, t *asynq.Task) error{referral.ProcessPayoutBatch})
	go sch.StartMonitoring(&cfg.Redis, cfg.Scheduler.MonitoringPort)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *referralHandler.ReferralHandler) {

	// init database
	db := database.GetConnection(&cfg.Database)
	tx := database.NewTransactor(db)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	otelLogger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	hostingFee, err := money.ParseAmount(cfg.Settlement.HostingFee)
	if err != nil {
		log.Fatalf("error parse hosting fee: %v", err)
	}
	settlement := bookingUsecases.Settlement{
		Rates: ledger.Rates{
			Commission: money.Bps(cfg.Settlement.CommissionBps),
			HostingFee: hostingFee,
		},
		Currency: cfg.Settlement.Currency,
	}

	payments := payment.NewGateway(cfg.PaymentGateway.BaseURL, cfg.PaymentGateway.APIKey, httpClient)
	locker := lock.New(redisClient, cfg.Scheduler.PayoutLockExpiry)
	clk := clock.New()

	tripRepo := tripRepositories.New(db, logger, redisClient, cfg.Redis.CacheTTL)
	tripUsecase := tripUsecases.New(tripRepo, logger)

	referralRepo := referralRepositories.New(db, logger)
	referralUsecase := referralUsecases.New(referralRepo, logger, publisher, locker, referralUsecases.PayoutConfig{
		BatchSize: cfg.Scheduler.PayoutBatchSize,
		Currency:  cfg.Settlement.Currency,
	})

	bookingRepo := bookingRepositories.New(db, logger)
	bookingUsecase := bookingUsecases.New(bookingRepo, logger, tripUsecase, referralUsecase, payments, tx, publisher, clk, settlement)

	disputeRepo := disputeRepositories.New(db, logger)
	disputeUsecase := disputeUsecases.New(disputeRepo, logger, bookingUsecase, payments, tx, publisher, clk, cfg.Settlement.Currency)

	userRepo := userRepositories.New(logger, httpClient, &cfg.UserService)
	middleware := middleware.Middleware{
		Log:  otelLogger,
		Repo: userRepo,
	}

	validator := validator.New()
	handlers := router.Handlers{
		Booking: &bookingHandler.BookingHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   bookingUsecase,
		},
		Dispute: &disputeHandler.DisputeHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   disputeUsecase,
		},
		Trip: &tripHandler.TripHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   tripUsecase,
		},
		Referral: &referralHandler.ReferralHandler{
			Log:       otelLogger,
			Validator: validator,
			Usecase:   referralUsecase,
			Publish:   publisher,
		},
	}

	var messageRouters []*message.Router

	consumePayoutResultRouter, err := messagestream.NewRouter(publisher, messagestream.TopicPoisoned, "referral_payout_result_handler", messagestream.TopicPayoutResult, subscriber, handlers.Referral.ConsumePayoutResult)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_payout_result router", err)
	}

	messageRouters = append(messageRouters, consumePayoutResultRouter)

	serverHttp := http.SetupHttpEngine(cfg.APM.Enabled)

	r := router.Initialize(serverHttp, handlers, &middleware)

	return r, messageRouters, handlers.Referral

}
