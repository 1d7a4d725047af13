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
	"github.com/alimikegami/e-commerce/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/e-commerce/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-commerce/internal/repository"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig("recommendation-service")
	app.InitLogger(config.LogLevel)
	config.ServiceAddress = utils.ServiceAddress(config.ServicePort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer db.Client().Disconnect(context.Background())

	recommendationRepo := repository.CreateNewMongoDBRecommendationRepository(db)
	if err := recommendationRepo.CreateIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	recommendationSvc := service.CreateRecommendationService(recommendationRepo, config.ServiceAddress)

	kafkaWriter := kafka.CreateKafkaWriter(config)
	defer kafkaWriter.Close()
	kafkaReader := kafka.CreateKafkaReader(config, dto.TopicRecommendations)
	defer kafkaReader.Close()

	consumer := kafka.CreateEventConsumer(kafkaReader, kafkaWriter, dto.TopicRecommendations, recommendationSvc.HandleEvent, config.KafkaConfig.ConsumerMaxAttempts, config.KafkaConfig.RetryBackoff)
	go func() {
		if err := consumer.ConsumeEvent(ctx); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("consumer stopped")
			stop()
		}
	}()

	server := app.CreateApp(config)
	controller.CreateRecommendationController(server.Group, recommendationSvc)
	controller.CreateHealthController(server.Group, recommendationSvc)

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
