package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prepbuddy/prepbuddy/internal/api"
	"github.com/prepbuddy/prepbuddy/internal/calendar"
	"github.com/prepbuddy/prepbuddy/internal/notify"
	"github.com/prepbuddy/prepbuddy/internal/pubsub"
	"github.com/prepbuddy/prepbuddy/internal/repo"
	"github.com/prepbuddy/prepbuddy/internal/scheduler"
	"github.com/prepbuddy/prepbuddy/internal/storage"
	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	repoClient, err := repo.NewMongoClient(ctx, log, cfg.Mongo)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init mongo client"))
	}

	gateway, err := calendar.NewGateway(ctx, cfg.Calendar, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init calendar gateway"))
	}

	resumes, err := storage.NewDrive(ctx, cfg.Drive, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init resume storage"))
	}

	var events scheduler.EventSink
	if cfg.Kafka.Enabled() {
		producer := pubsub.NewKafkaProducer(cfg.Kafka, log)
		defer func() {
			err := producer.Close()
			if err != nil {
				log.Warn(err)
			}
		}()
		events = producer
	}

	var notifier scheduler.Notifier = notify.NewStub()
	if cfg.Telegram.Enabled() {
		notifier, err = notify.NewTelegram(cfg.Telegram, log)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init telegram notifier"))
		}
	}

	sched := scheduler.New(
		log,
		repoClient.Interviews(),
		repoClient.Users(),
		gateway,
		events,
		notifier,
		nil,
	)

	server := api.NewServer(cfg.API, log, repoClient, sched, resumes)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Warn(errors.WrapFail(err, "shutdown server"))
		}

		stopped <- struct{}{}
	})

	stdlog.Println("Server is listening on", cfg.API.HTTP.Addr)

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve http"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
