package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone  = "UTC"
	configPathEnv    = "ADVISOR_CONFIG"
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	dataDirEnv       = "ADVISOR_DATA_DIR"
	archiveDSNEnv    = "ARCHIVE_DSN"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Telegram TelegramConfig `yaml:"telegram"`
	Storage  StorageConfig  `yaml:"storage"`
	Scraper  ScraperConfig  `yaml:"scraper"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// TelegramConfig wires all data required to run the bot.
type TelegramConfig struct {
	BotToken           string `yaml:"botToken"`
	PollTimeoutSeconds int    `yaml:"pollTimeoutSeconds"`
}

// StorageConfig describes where program records live.
type StorageConfig struct {
	DataDir    string `yaml:"dataDir"`
	ArchiveDSN string `yaml:"archiveDsn"`
}

// ScraperConfig defines the scrape targets and the rescrape schedule.
// An empty CronExpression disables periodic rescraping.
type ScraperConfig struct {
	CronExpression string          `yaml:"cronExpression"`
	Timezone       string          `yaml:"timezone"`
	Programs       []ProgramConfig `yaml:"programs"`
	location       *time.Location  `yaml:"-"`
}

// Location resolves the scraper timezone string to a time.Location.
func (s ScraperConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// ProgramConfig names one program page to scrape.
type ProgramConfig struct {
	Slug string `yaml:"slug"`
	URL  string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Scraper.Programs) == 0 {
		cfg.Scraper.Programs = defaultConfig().Scraper.Programs
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}

	if v := os.Getenv(dataDirEnv); v != "" {
		c.Storage.DataDir = v
	}

	if v := os.Getenv(archiveDSNEnv); v != "" {
		c.Storage.ArchiveDSN = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scraper.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scraper.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Telegram.BotToken != "" {
		base.Telegram.BotToken = override.Telegram.BotToken
	}
	if override.Telegram.PollTimeoutSeconds > 0 {
		base.Telegram.PollTimeoutSeconds = override.Telegram.PollTimeoutSeconds
	}

	if override.Storage.DataDir != "" {
		base.Storage.DataDir = override.Storage.DataDir
	}
	if override.Storage.ArchiveDSN != "" {
		base.Storage.ArchiveDSN = override.Storage.ArchiveDSN
	}

	if override.Scraper.CronExpression != "" {
		base.Scraper.CronExpression = override.Scraper.CronExpression
	}
	if override.Scraper.Timezone != "" {
		base.Scraper.Timezone = override.Scraper.Timezone
	}
	if len(override.Scraper.Programs) > 0 {
		base.Scraper.Programs = override.Scraper.Programs
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Telegram: TelegramConfig{
			BotToken:           "",
			PollTimeoutSeconds: 30,
		},
		Storage: StorageConfig{DataDir: "data"},
		Scraper: ScraperConfig{
			CronExpression: "",
			Timezone:       defaultTimezone,
			location:       tz,
			Programs: []ProgramConfig{
				{Slug: "ai", URL: "https://abit.itmo.ru/program/master/ai"},
				{Slug: "ai_product", URL: "https://abit.itmo.ru/program/master/ai_product"},
			},
		},
	}
}
