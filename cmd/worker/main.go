package main

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/DevRamona/Course-Management-Platform/internal/config"
	alertmsg "github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/handlers/alert"
	notifmsg "github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/handlers/notification"
	remindermsg "github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/handlers/reminder"
	"github.com/DevRamona/Course-Management-Platform/internal/rabbitmq/queue"
	logsrepo "github.com/DevRamona/Course-Management-Platform/internal/repository/activitylog"
	userrepo "github.com/DevRamona/Course-Management-Platform/internal/repository/user"
	"github.com/DevRamona/Course-Management-Platform/internal/scheduler"
	notifsvc "github.com/DevRamona/Course-Management-Platform/internal/service/notification"
	"github.com/DevRamona/Course-Management-Platform/internal/storage"
	"github.com/DevRamona/Course-Management-Platform/internal/worker"
	"github.com/DevRamona/Course-Management-Platform/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

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

	// The worker may start before the primary store is up; Connect walks the
	// fallback nodes before giving up.
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

	w := worker.New()
	w.Register(notificationQueue, notifmsg.NewHandler(service))
	w.Register(reminderQueue, remindermsg.NewHandler(service))
	w.Register(alertQueue, alertmsg.NewHandler(service))

	go w.Run(ctx, cfg.Retry, cfg.Workers.Count)

	sched := scheduler.New(logs, users, service, cfg.Retry)
	go sched.Run(ctx, cfg.Scheduler.ReminderInterval, cfg.Scheduler.AlertInterval)

	zlog.Logger.Info().Msg("notification worker started")

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

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
