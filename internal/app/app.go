package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aays-store/backend/internal/dal/mongodb"
	"github.com/aays-store/backend/internal/dal/rabbitmq"
	collectionrepo "github.com/aays-store/backend/internal/dal/repositories/collection/mongo"
	contactrepo "github.com/aays-store/backend/internal/dal/repositories/contact/mongo"
	customerrepo "github.com/aays-store/backend/internal/dal/repositories/customer/mongo"
	orderrepo "github.com/aays-store/backend/internal/dal/repositories/order/mongo"
	outboxrepo "github.com/aays-store/backend/internal/dal/repositories/outbox/mongo"
	productrepo "github.com/aays-store/backend/internal/dal/repositories/product/mongo"
	webhookeventrepo "github.com/aays-store/backend/internal/dal/repositories/webhookevent/mongo"
	"github.com/aays-store/backend/internal/dal/stripeapi"
	"github.com/aays-store/backend/internal/otel"
	"github.com/aays-store/backend/internal/service/services/catalogsvc"
	"github.com/aays-store/backend/internal/service/services/checkoutsvc"
	"github.com/aays-store/backend/internal/service/services/contactsvc"
	"github.com/aays-store/backend/internal/service/services/ordersvc"
	"github.com/aays-store/backend/internal/service/services/webhooksvc"
	httptransport "github.com/aays-store/backend/internal/transport/http"
	"github.com/aays-store/backend/internal/worker/outbox"
)

// App represents the application.
type App struct {
	transport      *httptransport.HTTPTransport
	outboxWorker   *outbox.Worker
	mongoClient    *mongodb.Client
	rabbitClient   *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	mongoClient := mongodb.MustNewClient()
	rabbitClient := rabbitmq.MustNewClient()
	stripeapi.MustInit()

	db := mongoClient.Database()

	orderRepo := orderrepo.NewMongoOrderRepository(db)
	customerRepo := customerrepo.NewMongoCustomerRepository(db)
	productRepo := productrepo.NewMongoProductRepository(db)
	collectionRepo := collectionrepo.NewMongoCollectionRepository(db)
	contactRepo := contactrepo.NewMongoContactRepository(db)
	outboxRepo := outboxrepo.NewMongoOutboxRepository(db)
	webhookEventRepo := webhookeventrepo.NewMongoWebhookEventRepository(db)

	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithTransactor(mongoClient),
		ordersvc.WithOrderRepository(orderRepo),
		ordersvc.WithCustomerRepository(customerRepo),
		ordersvc.WithProductRepository(productRepo),
		ordersvc.WithOutboxRepository(outboxRepo),
	)

	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithTransactor(mongoClient),
		catalogsvc.WithProductRepository(productRepo),
		catalogsvc.WithCollectionRepository(collectionRepo),
	)

	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithSessionCreator(stripeapi.SessionClient{}),
	)

	webhookSvc := webhooksvc.MustNewWebhookService(
		webhooksvc.WithEventVerifier(stripeapi.MustNewWebhookVerifier()),
		webhooksvc.WithSessionFetcher(stripeapi.SessionClient{}),
		webhooksvc.WithOrderCreator(orderSvc),
		webhooksvc.WithEventRepository(webhookEventRepo),
	)

	contactSvc := contactsvc.MustNewContactService(
		contactsvc.WithContactRepository(contactRepo),
	)

	transport := httptransport.NewHTTPTransport(orderSvc, catalogSvc, checkoutSvc, webhookSvc, contactSvc)
	transport.RegisterRoutes()

	outboxWorker := outbox.NewWorker(outboxRepo, rabbitClient)

	return &App{
		transport:      transport,
		outboxWorker:   outboxWorker,
		mongoClient:    mongoClient,
		rabbitClient:   rabbitClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	// Create a channel to receive OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go a.outboxWorker.Start(context.Background())

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	a.outboxWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.rabbitClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	if err := a.mongoClient.Close(ctx); err != nil {
		slog.Error("Database connection close error", "error", err)
	} else {
		slog.Info("Database connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
