package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ProgramAdvisor/internal/config"
	"ProgramAdvisor/internal/dialog"
	"ProgramAdvisor/internal/domain"
	"ProgramAdvisor/internal/extractor"
	"ProgramAdvisor/internal/infrastructure/fetcher"
	"ProgramAdvisor/internal/infrastructure/scheduler"
	"ProgramAdvisor/internal/infrastructure/storage"
	"ProgramAdvisor/internal/infrastructure/telegram"
	"ProgramAdvisor/internal/logging"
	"ProgramAdvisor/internal/ports"
	"ProgramAdvisor/internal/usecase"
)

const refreshTimeout = 2 * time.Minute

// Application wires config to the bot, storage, and lifecycle.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	store     ports.RecordStore
	library   *storage.Library
	client    *telegram.Client
	bot       *usecase.Bot
	pipeline  *usecase.ScrapePipeline
	scheduler ports.Scheduler
}

// New builds a runnable bot instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store := storage.NewFileStore(cfg.Storage.DataDir, baseLogger.With("component", "storage"))
	library := storage.NewLibrary(nil)

	client := telegram.NewClient(
		cfg.Telegram.BotToken,
		time.Duration(cfg.Telegram.PollTimeoutSeconds)*time.Second,
	)

	bot := usecase.NewBot(usecase.BotDeps{
		Library:   library,
		States:    dialog.NewStore(),
		Messenger: client,
		Logger:    baseLogger.With("component", "bot"),
	})

	pipeline := usecase.NewScrapePipeline(cfg.Scraper.Programs, usecase.ScrapeDeps{
		Fetcher:   fetcher.NewHTTPFetcher(nil),
		Extractor: extractor.New(),
		Store:     store,
		Logger:    baseLogger.With("component", "scraper"),
	})

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		store:     store,
		library:   library,
		client:    client,
		bot:       bot,
		pipeline:  pipeline,
		scheduler: scheduler.NewCronScheduler(cfg.Scraper.CronExpression, cfg.Scraper.Location()),
	}
}

// Run loads records, optionally starts the rescrape schedule, and
// polls for updates until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if a.cfg.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is not configured")
	}

	records, err := a.store.LoadAll()
	if err != nil {
		return fmt.Errorf("load program records: %w", err)
	}
	if len(records) == 0 {
		a.logger.Warn("no program records loaded; answers will degrade until a scrape succeeds",
			"dir", a.cfg.Storage.DataDir)
	}
	a.library.Replace(records)
	a.logger.Info("program records loaded", "loaded", len(records))

	if err := a.scheduler.Start(ctx, a.refresh); err != nil {
		return fmt.Errorf("start rescrape schedule: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.scheduler.Stop(stopCtx)
	}()

	return a.poll(ctx)
}

// refresh rescrapes all programs and swaps the record mapping in one
// step so concurrent readers never observe a partial reload.
func (a *Application) refresh(trigger time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := a.pipeline.Run(ctx); err != nil {
		a.logger.Error("rescrape run failed", "error", err)
		return
	}

	records, err := a.store.LoadAll()
	if err != nil {
		a.logger.Error("reload after rescrape failed", "error", err)
		return
	}

	a.library.Replace(records)
	a.logger.Info("program records reloaded", "loaded", len(records), "trigger", trigger.Format(time.RFC3339))
}

func (a *Application) poll(ctx context.Context) error {
	var offset int64

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		updates, err := a.client.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			a.logger.Warn("get updates failed", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}

			msg := domain.IncomingMessage{
				UserID:    update.Message.From.ID,
				ChatID:    update.Message.Chat.ID,
				MessageID: update.Message.MessageID,
				Text:      update.Message.Text,
			}
			if err := a.bot.HandleMessage(ctx, msg); err != nil {
				a.logger.Warn("handle message failed", "user", msg.UserID, "error", err)
			}
		}
	}
}
