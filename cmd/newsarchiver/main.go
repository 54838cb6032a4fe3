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
	"syscall"
	"time"

	"homescripts/internal/archive"
	"homescripts/internal/config"
	"homescripts/internal/logging"
	"homescripts/internal/media"
	"homescripts/internal/publisher"
	"homescripts/internal/scheduler"
	"homescripts/internal/service"
	"homescripts/internal/source/nhk"
	"homescripts/internal/storage/postgres"
)

func main() {
	os.Exit(cli(os.Args[1:], os.Stdout, os.Stderr))
}

// cli returns 2 on usage errors and 1 when the archive run fails.
func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("newsarchiver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: newsarchiver [-config file] [-interval duration] <outdir>")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to config file (built-in default when empty)")
	interval := fs.Duration("interval", 0, "repeat the archive run at this interval instead of running once")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	outDir := fs.Arg(0)

	logger := logging.JSON(stdout, "info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 1
	}

	logger = logging.JSON(stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, outDir, *interval, logger); err != nil {
		logger.Error("archive failed", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, outDir string, interval time.Duration, logger *slog.Logger) error {
	ffmpeg := media.NewFFmpeg(cfg.News.FFmpeg, logger)
	if err := ffmpeg.Available(); err != nil {
		logger.Warn("ffmpeg not found, articles with audio will fail", "error", err)
	}

	source := nhk.New(nhk.Config{
		FeedURL:      cfg.News.FeedURL,
		PageURL:      cfg.News.PageURL,
		EasyImageURL: cfg.News.EasyImageURL,
		VoiceURL:     cfg.News.VoiceURL,
		UserAgent:    cfg.News.UserAgent,
		Timeout:      cfg.News.Timeout,
	}, logger)

	var catalog service.ArticleStore
	if cfg.Database.Enabled() {
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()
		catalog = postgres.NewArticleStore(db)
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
			return err
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	archiver := service.NewArchiver(
		source,
		archive.NewStore(outDir),
		ffmpeg,
		catalog,
		pub,
		logger,
	)

	if interval <= 0 {
		_, err := archiver.Run(ctx)
		return err
	}

	logger.Info("starting news archiver",
		"source", source.Name(),
		"out_dir", outDir,
		"interval", interval,
	)
	sched := scheduler.NewScheduler(scheduler.RunnerFunc(func(ctx context.Context) error {
		_, err := archiver.Run(ctx)
		return err
	}), interval, logger).WithTimeout(30 * time.Minute)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
