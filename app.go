package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"cylaba/internal/config"
	"cylaba/internal/handlers"
	"cylaba/internal/identity"
	"cylaba/internal/metrics"
	"cylaba/internal/middleware"
	"cylaba/internal/models"
	"cylaba/internal/repositories"
	"cylaba/internal/services"
	"cylaba/internal/store"
	"cylaba/pkg/logger"
	"cylaba/pkg/rabbitmq"
)

// Collection names, also the file names of the json backend.
const (
	ordersCollection   = "orders"
	productsCollection = "products"
	schoolsCollection  = "schools"
)

// eventLogQueue receives a copy of every published event.
const eventLogQueue = "cylaba.events.log"

// collections are the three documents of the shop, sharing one backend.
type collections struct {
	backend  store.Backend
	orders   *store.Collection[models.Order]
	products *store.Collection[models.Product]
	schools  *store.Collection[string]
}

func openCollections(cfg *config.Config, log *logger.Logger) (*collections, error) {
	backend, err := store.Open(cfg.StoreBackend, cfg.DataDir, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	opts := store.Options{StrictReads: cfg.StrictReads, Logger: log}
	return &collections{
		backend:  backend,
		orders:   store.NewCollection[models.Order](ordersCollection, backend, opts),
		products: store.NewCollection[models.Product](productsCollection, backend, opts),
		schools:  store.NewCollection[string](schoolsCollection, backend, opts),
	}, nil
}

// seed writes the initial documents that do not exist yet.
func (c *collections) seed(ctx context.Context) error {
	if _, err := c.orders.Seed(ctx, []models.Order{}); err != nil {
		return err
	}
	if _, err := c.products.Seed(ctx, models.SeedProducts()); err != nil {
		return err
	}
	if _, err := c.schools.Seed(ctx, models.SeedSchools()); err != nil {
		return err
	}
	return nil
}

// App is the HTTP server with everything it owns.
type App struct {
	Fiber *fiber.App

	store *collections
	mq    *rabbitmq.Client
	log   *logger.Logger
}

// NewApp opens storage, seeds it, connects the event broker when configured
// and registers every route.
func NewApp(cfg *config.Config, log *logger.Logger) (*App, error) {
	colls, err := openCollections(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := colls.seed(context.Background()); err != nil {
		colls.backend.Close()
		return nil, fmt.Errorf("failed to seed collections: %w", err)
	}

	// A nil *rabbitmq.Client must not end up inside the interface.
	var events services.EventPublisher
	var mq *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mq, err = rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQURL,
			Exchange: cfg.RabbitMQExchange,
			Queue:    eventLogQueue,
		}, log)
		if err != nil {
			colls.backend.Close()
			return nil, err
		}
		events = mq
	}

	ids := identity.NewMillisAssigner()
	orderService := services.NewOrderService(repositories.NewOrderRepository(colls.orders), ids, events, log,
		services.OrderOptions{DateLayout: cfg.OrderDateLayout})
	productService := services.NewProductService(repositories.NewProductRepository(colls.products), ids, events, log)
	schoolService := services.NewSchoolService(repositories.NewSchoolRepository(colls.schools), events, log)

	app := fiber.New(fiber.Config{
		AppName:      "Cylaba",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log.WithComponent("http")))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowedOrigins}))

	api := app.Group("/api")
	handlers.NewOrderHandler(orderService, log).RegisterRoutes(api)
	handlers.NewProductHandler(productService, log).RegisterRoutes(api)
	handlers.NewSchoolHandler(schoolService, log).RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  colls.backend.Kind(),
			"events": mq != nil,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	if cfg.PublicDir != "" {
		app.Static("/", cfg.PublicDir)
	}

	return &App{Fiber: app, store: colls, mq: mq, log: log}, nil
}

// StartEventLog consumes the event queue and logs every event. It does
// nothing without a broker.
func (a *App) StartEventLog() error {
	if a.mq == nil {
		return nil
	}
	log := a.log.WithComponent("events")
	return a.mq.Consume(func(msg amqp.Delivery) error {
		log.Infow("Received event", "routing_key", msg.RoutingKey, "delivery_tag", msg.DeliveryTag, "body", string(msg.Body))
		return nil
	})
}

// Shutdown stops the HTTP server and releases the broker and storage.
func (a *App) Shutdown() error {
	var errs []error
	if err := a.Fiber.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.store.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store close: %w", err))
	}
	return errors.Join(errs...)
}

// errorHandler renders errors that escape the handlers, unknown routes
// included, in the {success:false, error} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
