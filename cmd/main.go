package main

import (
	"context"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/muhammadheryan/rental-commerce/application/auth"
	rentalapp "github.com/muhammadheryan/rental-commerce/application/rental"
	variantapp "github.com/muhammadheryan/rental-commerce/application/variant"
	"github.com/muhammadheryan/rental-commerce/cmd/config"
	redisclient "github.com/muhammadheryan/rental-commerce/cmd/redis"
	_ "github.com/muhammadheryan/rental-commerce/docs"
	bookingRepo "github.com/muhammadheryan/rental-commerce/repository/booking"
	productRepo "github.com/muhammadheryan/rental-commerce/repository/product"
	redisRepo "github.com/muhammadheryan/rental-commerce/repository/redis"
	txRepo "github.com/muhammadheryan/rental-commerce/repository/tx"
	variantRepo "github.com/muhammadheryan/rental-commerce/repository/variant"
	"github.com/muhammadheryan/rental-commerce/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-commerce/transport"
	"github.com/muhammadheryan/rental-commerce/utils/logger"
	"go.uber.org/zap"
)

// @title RENTAL COMMERCE API
// @version 1.0
// @description Rental quoting and variant stock ledger API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize RabbitMQ publisher and hold expiration consumer
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	apiURL := "http://localhost:" + cfg.Server.Port
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, apiURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	if err := consumer.Start(context.Background()); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	VariantRepo := variantRepo.NewVariantRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	BookingRepo := bookingRepo.NewBookingRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	RentalApp := rentalapp.NewRentalApp(cfg, ProductRepo, BookingRepo, time.Now)
	VariantApp := variantapp.NewVariantApp(cfg, TxRepo, VariantRepo, RedisRepo, publisher)
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(RentalApp, VariantApp, AuthApp, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
