package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimikegami/e-commerce/config"
	"github.com/alimikegami/e-commerce/internal/app"
	"github.com/alimikegami/e-commerce/internal/controller"
	"github.com/alimikegami/e-commerce/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/e-commerce/internal/integration"
	"github.com/alimikegami/e-commerce/internal/service"
	"github.com/alimikegami/e-commerce/pkg/httpclient"
	"github.com/alimikegami/e-commerce/pkg/utils"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig("product-composite-service")
	app.InitLogger(config.LogLevel)
	config.ServiceAddress = utils.ServiceAddress(config.ServicePort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kafkaWriter := kafka.CreateKafkaWriter(config)
	defer kafkaWriter.Close()
	publisher := kafka.CreateEventPublisher(kafkaWriter, config.KafkaConfig.RetryBackoff)

	httpClient := httpclient.CreateHttpClient(config.IntegrationConfig.RequestTimeout)

	compositeIntegration := integration.CreateProductCompositeIntegration(publisher, httpClient, config)
	compositeSvc := service.CreateProductCompositeService(compositeIntegration, config.ServiceAddress)
	healthSvc := service.CreateHealthService(httpClient, config)

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			config.HealthCheckConfig.Interval,
		),
		gocron.NewTask(
			healthSvc.Poll,
			ctx,
		),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to schedule health polling")
	}

	s.Start()
	defer s.Shutdown()

	server := app.CreateApp(config)
	controller.CreateProductCompositeController(server.Group, compositeSvc)
	controller.CreateHealthController(server.Group, healthSvc)

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
