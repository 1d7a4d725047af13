package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/internal/app"
	"github.com/alimikegami/e-commerce/internal/controller"
	"github.com/alimikegami/e-commerce/internal/dto"
	"github.com/alimikegami/e-commerce/internal/infrastructure/database/postgres"
	"github.com/alimikegami/e-commerce/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-commerce/internal/repository"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig("review-service")
	app.InitLogger(config.LogLevel)
	config.ServiceAddress = utils.ServiceAddress(config.ServicePort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Close()

	reviewRepo := repository.CreateNewPostgresReviewRepository(db)
	if err := reviewRepo.CreateSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create schema")
	}

	reviewSvc := service.CreateReviewService(reviewRepo, config.ServiceAddress)

	kafkaWriter := kafka.CreateKafkaWriter(config)
	defer kafkaWriter.Close()
	kafkaReader := kafka.CreateKafkaReader(config, dto.TopicReviews)
	defer kafkaReader.Close()

	consumer := kafka.CreateEventConsumer(kafkaReader, kafkaWriter, dto.TopicReviews, reviewSvc.HandleEvent, config.KafkaConfig.ConsumerMaxAttempts, config.KafkaConfig.RetryBackoff)
	go func() {
		if err := consumer.ConsumeEvent(ctx); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("consumer stopped")
			stop()
		}
	}()

	server := app.CreateApp(config)
	controller.CreateReviewController(server.Group, reviewSvc)
	controller.CreateHealthController(server.Group, reviewSvc)

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
