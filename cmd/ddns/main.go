package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"homescripts/internal/config"
	"homescripts/internal/dns"
	_ "homescripts/internal/dns/providers"
	"homescripts/internal/ipprobe"
	"homescripts/internal/logging"
	"homescripts/internal/notify"
	"homescripts/internal/publisher"
	"homescripts/internal/scheduler"
	"homescripts/internal/service"
	"homescripts/internal/storage/postgres"
)

// ddns never fails the caller: it is meant to be run from cron.
func main() {
	os.Exit(cli(os.Args[1:], os.Stderr))
}

// cli runs the updater and returns the process exit code, which is always 0.
func cli(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("ddns", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (built-in default when empty)")
	interval := fs.Duration("interval", 0, "repeat the sync at this interval instead of running once")

	logger := logging.Text(stderr, "info")

	if err := fs.Parse(args); err != nil {
		logger.Error("invalid arguments", "error", err)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 0
	}

	out, closeLog, err := logging.OpenFile(cfg.LogDir, cfg.DDNS.LogFile)
	if err != nil {
		logger.Error("failed to open log file", "error", err)
		out, closeLog = stderr, func() error { return nil }
	}
	defer closeLog()

	logger = logging.Text(out, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *interval, logger); err != nil {
		logger.Error("ddns failed", "error", err)
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, interval time.Duration, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("ddns panicked", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	svc, closer, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer.Close()

	if interval <= 0 {
		return svc.Run(ctx)
	}

	logger.Info("starting ddns",
		"domain", cfg.DDNS.Domain,
		"provider", cfg.DDNS.Provider,
		"interval", interval,
	)
	sched := scheduler.NewScheduler(svc, interval, logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*service.DDNSService, io.Closer, error) {
	provider, err := dns.NewProvider(cfg.DDNS.Provider, logger, cfg.DDNS.Settings)
	if err != nil {
		return nil, nil, err
	}

	resolver, err := ipprobe.FromConfig(cfg.DDNS.Probe)
	if err != nil {
		return nil, nil, err
	}

	closers := &closers{}

	var changes service.ChangeStore
	if cfg.Database.Enabled() {
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		closers.add(db)
		changes = postgres.NewChangeStore(db)
		logger.Info("connected to database")
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			closers.Close()
			return nil, nil, err
		}
		closers.add(rabbitMQ)
		pub = rabbitMQ
	}

	svc := service.NewDDNSService(
		cfg.DDNS.Domain,
		resolver,
		provider,
		notify.NewMailer(cfg.SMTP, logger),
		changes,
		pub,
		logger,
	)
	return svc, closers, nil
}

type closers struct {
	list []io.Closer
}

func (c *closers) add(cl io.Closer) {
	c.list = append(c.list, cl)
}

func (c *closers) Close() error {
	var errs []error
	for i := len(c.list) - 1; i >= 0; i-- {
		errs = append(errs, c.list[i].Close())
	}
	return errors.Join(errs...)
}
