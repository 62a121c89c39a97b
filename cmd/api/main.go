package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	logshandler "github.com/DevRamona/Course-Management-Platform/internal/api/handlers/activitylog"
	"github.com/DevRamona/Course-Management-Platform/internal/api/router"
	"github.com/DevRamona/Course-Management-Platform/internal/api/server"
	"github.com/DevRamona/Course-Management-Platform/internal/config"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	logsrepo "github.com/DevRamona/Course-Management-Platform/internal/repository/activitylog"
	userrepo "github.com/DevRamona/Course-Management-Platform/internal/repository/user"
	notifsvc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
	"github.com/DevRamona/Course-Management-Platform/internal/storage"
	"github.com/DevRamona/Course-Management-Platform/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	notificationQueue, err := queue.New(ch, cfg.RabbitMQ.NotificationQueue)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notification queue")
	}

	reminderQueue, err := queue.New(ch, cfg.RabbitMQ.ReminderQueue)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create reminder queue")
	}

	alertQueue, err := queue.New(ch, cfg.RabbitMQ.AlertQueue)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create alert queue")
	}

	db, err := storage.Connect(ctx, cfg.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	mailer := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)

	logs := logsrepo.NewRepository(db)
	users := userrepo.NewRepository(db)

	service := notifsvc.NewService(logs, users, notificationQueue, reminderQueue, alertQueue, mailer, rdb)
	handler := logshandler.NewHandler(logs, users, service, val, cfg)

	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close database: %v", err)
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
