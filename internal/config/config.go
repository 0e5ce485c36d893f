package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"TriOracle/internal/analysis"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		BriefingCron string `yaml:"briefing_cron"`
		RunOnStart   bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`
	Briefing struct {
		Presets []string `yaml:"presets"`
	} `yaml:"briefing"`
	Analysis struct {
		NearLevel        float64 `yaml:"near_level"`
		ApproachLevel    float64 `yaml:"approach_level"`
		CompressionRange float64 `yaml:"compression_range"`
		StakePlaces      int32   `yaml:"stake_places"`
		DefaultBankroll  float64 `yaml:"default_bankroll"`
	} `yaml:"analysis"`
	Log struct {
		Level string `yaml:"level"`
		Env   string `yaml:"env"`
	} `yaml:"log"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// envOverrides are applied on top of the YAML file when set.
type envOverrides struct {
	BotToken        string  `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID          string  `envconfig:"TELEGRAM_CHAT_ID"`
	BriefingCron    string  `envconfig:"CRON_BRIEFING"`
	RunOnStart      bool    `envconfig:"RUN_ON_START"`
	DefaultBankroll float64 `envconfig:"DEFAULT_BANKROLL"`
	LogLevel        string  `envconfig:"LOG_LEVEL"`
	Env             string  `envconfig:"APP_ENV"`
	MetricsAddr     string  `envconfig:"METRICS_ADDR"`
	Proxy           string  `envconfig:"HTTPS_PROXY"`
}

// cronParser accepts the same six-field specs as the scheduler.
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Path returns CONFIG_PATH or the default config location.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// Load reads config from a YAML file, then a .env file, then applies
// environment variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env never overrides variables already present in the environment
	_ = godotenv.Load()

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	cfg.applyEnv(env)
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(env envOverrides) {
	if env.BotToken != "" {
		c.Telegram.BotToken = env.BotToken
	}
	if env.ChatID != "" {
		c.Telegram.ChatID = env.ChatID
	}
	if env.BriefingCron != "" {
		c.Schedule.BriefingCron = env.BriefingCron
	}
	if env.RunOnStart {
		c.Schedule.RunOnStart = true
	}
	if env.DefaultBankroll != 0 {
		c.Analysis.DefaultBankroll = env.DefaultBankroll
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.Env != "" {
		c.Log.Env = env.Env
	}
	if env.MetricsAddr != "" {
		c.Metrics.Addr = env.MetricsAddr
	}
	if env.Proxy != "" {
		c.Proxy = env.Proxy
	}
}

func (c *Config) applyDefaults() {
	def := analysis.DefaultThresholds()
	if c.Schedule.BriefingCron == "" {
		c.Schedule.BriefingCron = "0 0 8 * * *"
	}
	if c.Analysis.NearLevel == 0 {
		c.Analysis.NearLevel = def.NearLevel
	}
	if c.Analysis.ApproachLevel == 0 {
		c.Analysis.ApproachLevel = def.ApproachLevel
	}
	if c.Analysis.CompressionRange == 0 {
		c.Analysis.CompressionRange = def.CompressionRange
	}
	if c.Analysis.StakePlaces == 0 {
		c.Analysis.StakePlaces = def.StakePlaces
	}
	if c.Analysis.DefaultBankroll == 0 {
		c.Analysis.DefaultBankroll = 100
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Env == "" {
		c.Log.Env = "development"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9090"
	}
}

// Thresholds returns the analysis thresholds.
func (c *Config) Thresholds() analysis.Thresholds {
	return analysis.Thresholds{
		NearLevel:        c.Analysis.NearLevel,
		ApproachLevel:    c.Analysis.ApproachLevel,
		CompressionRange: c.Analysis.CompressionRange,
		StakePlaces:      c.Analysis.StakePlaces,
	}
}

// ValidateAnalysis checks the settings needed to evaluate commands.
func (c *Config) ValidateAnalysis() error {
	a := c.Analysis
	if a.NearLevel <= 0 || a.ApproachLevel <= 0 || a.CompressionRange <= 0 {
		return fmt.Errorf("analysis distances must be positive")
	}
	if a.NearLevel > a.ApproachLevel {
		return fmt.Errorf("analysis.near_level (%g) must not exceed analysis.approach_level (%g)", a.NearLevel, a.ApproachLevel)
	}
	if a.StakePlaces < 0 || a.StakePlaces > 8 {
		return fmt.Errorf("analysis.stake_places must be between 0 and 8")
	}
	if a.DefaultBankroll <= 0 {
		return fmt.Errorf("analysis.default_bankroll must be positive")
	}
	return nil
}

// Validate checks that all fields required by the daemon are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if _, err := strconv.ParseInt(c.Telegram.ChatID, 10, 64); err != nil {
		return fmt.Errorf("telegram.chat_id must be numeric: %w", err)
	}
	if _, err := cronParser.Parse(c.Schedule.BriefingCron); err != nil {
		return fmt.Errorf("schedule.briefing_cron: %w", err)
	}
	for i, p := range c.Briefing.Presets {
		if !strings.HasPrefix(strings.TrimSpace(p), "/") {
			return fmt.Errorf("briefing.presets[%d] must be a command, got %q", i, p)
		}
	}
	return c.ValidateAnalysis()
}
