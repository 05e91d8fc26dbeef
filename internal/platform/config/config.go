package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	defaultListenAddr        = ":50051"
	defaultMinMultiplier     = "1.2"
	defaultMaxMultiplier     = "1.5"
	defaultMaxReportingDepth = 4
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourceConfig は社員レコードの取り込み元に関する設定です。
type SourceConfig struct {
	Kind string    `yaml:"kind"`
	CSV  CSVConfig `yaml:"csv"`
}

// CSVConfig は CSV ファイルの取り込み設定です。
type CSVConfig struct {
	Path         string `yaml:"path"`
	Delimiter    rune   `yaml:"-"`
	DelimiterRaw string `yaml:"delimiter"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	ApplicationName    string        `yaml:"application_name"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// AnalysisConfig は分析ポリシーに関する設定です。倍率は丸め誤差を避けるため文字列で指定します。
type AnalysisConfig struct {
	MinMultiplier     decimal.Decimal `yaml:"-"`
	MaxMultiplier     decimal.Decimal `yaml:"-"`
	MinMultiplierRaw  string          `yaml:"min_multiplier"`
	MaxMultiplierRaw  string          `yaml:"max_multiplier"`
	MaxReportingDepth *int            `yaml:"max_reporting_depth"`
}

// LoggingConfig はログ出力に関する設定です。
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ForCSV は設定ファイルを使わず、指定された CSV ファイルを既定値で分析する設定を返します。
func ForCSV(path string) (*Config, error) {
	cfg := Config{Source: SourceConfig{Kind: SourceCSV, CSV: CSVConfig{Path: path}}}
	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EffectivePath はフラグ、環境変数 CONFIG_PATH、既定値の順で設定ファイルのパスを決定します。
func EffectivePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func (c *Config) validateAndNormalize() error {
	if err := c.Source.validateAndNormalize(); err != nil {
		return err
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = defaultListenAddr
	}

	if c.Source.Kind == SourcePostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	if err := c.Analysis.validateAndNormalize(); err != nil {
		return err
	}

	return c.Logging.validateAndNormalize()
}

// RequireDatabase は database セクションを必須として検証します。
func (c *Config) RequireDatabase() error {
	return c.Database.validateAndNormalize()
}

func (s *SourceConfig) validateAndNormalize() error {
	s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
	if s.Kind == "" {
		s.Kind = SourceCSV
	}

	switch s.Kind {
	case SourceCSV:
		if s.CSV.Path == "" {
			return fmt.Errorf("config: source.csv.path must be set")
		}
		delimiter, err := parseDelimiter(s.CSV.DelimiterRaw)
		if err != nil {
			return fmt.Errorf("config: source.csv.delimiter: %w", err)
		}
		s.CSV.Delimiter = delimiter
	case SourcePostgres:
	default:
		return fmt.Errorf("config: unsupported source.kind %q", s.Kind)
	}
	return nil
}

func parseDelimiter(raw string) (rune, error) {
	switch raw {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	runes := []rune(raw)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", raw)
	}
	return runes[0], nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (a *AnalysisConfig) validateAndNormalize() error {
	minMultiplier, err := parseDecimalOrDefault(a.MinMultiplierRaw, defaultMinMultiplier)
	if err != nil {
		return fmt.Errorf("config: analysis.min_multiplier: %w", err)
	}
	maxMultiplier, err := parseDecimalOrDefault(a.MaxMultiplierRaw, defaultMaxMultiplier)
	if err != nil {
		return fmt.Errorf("config: analysis.max_multiplier: %w", err)
	}
	if !minMultiplier.IsPositive() {
		return fmt.Errorf("config: analysis.min_multiplier must be positive")
	}
	if maxMultiplier.LessThan(minMultiplier) {
		return fmt.Errorf("config: analysis.max_multiplier must not be below min_multiplier")
	}
	a.MinMultiplier = minMultiplier
	a.MaxMultiplier = maxMultiplier

	if a.MaxReportingDepth == nil {
		depth := defaultMaxReportingDepth
		a.MaxReportingDepth = &depth
	}
	if *a.MaxReportingDepth < 0 {
		return fmt.Errorf("config: analysis.max_reporting_depth must not be negative")
	}
	return nil
}

func (l *LoggingConfig) validateAndNormalize() error {
	l.Level = strings.ToLower(strings.TrimSpace(l.Level))
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	l.Format = strings.ToLower(strings.TrimSpace(l.Format))
	switch l.Format {
	case "":
		l.Format = defaultLogFormat
	case "text", "json":
	default:
		return fmt.Errorf("config: unsupported logging.format %q", l.Format)
	}
	return nil
}

func parseDecimalOrDefault(raw, fallback string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	return decimal.NewFromString(strings.TrimSpace(raw))
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
