package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 10 * time.Second
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultMaxEventPages      = 10

	// DatabaseDriverPostgres selects the Postgres connection from the postgres section.
	DatabaseDriverPostgres = "postgres"
	// DatabaseDriverSQLite selects a local SQLite file, used for development.
	DatabaseDriverSQLite = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Microsoft *MicrosoftConfig `json:"microsoft" yaml:"microsoft"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// Vault configures how provider tokens are sealed at rest
	Vault *VaultConfig `json:"vault" yaml:"vault"`
}

// DatabaseConfig selects the storage driver for the user directory
type DatabaseConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// SessionConfig defines lifetimes of application session tokens
type SessionConfig struct {
	AccessTTL  time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
}

// MicrosoftConfig holds the Microsoft identity platform and Graph settings.
type MicrosoftConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	Tenant       string `json:"tenant" yaml:"tenant"`

	// TokenURL overrides the tenant token endpoint, mostly for tests
	TokenURL        string `json:"tokenUrl" yaml:"tokenUrl"`
	UserProfileURL  string `json:"userProfileUrl" yaml:"userProfileUrl"`
	EventsURL       string `json:"eventsUrl" yaml:"eventsUrl"`
	CalendarViewURL string `json:"calendarViewUrl" yaml:"calendarViewUrl"`

	// WindowTimeZone is the IANA zone used to compute "today".
	WindowTimeZone string `json:"windowTimeZone" yaml:"windowTimeZone"`
	// DisplayTimeZone is the Windows zone name sent in the Prefer header.
	DisplayTimeZone string `json:"displayTimeZone" yaml:"displayTimeZone"`

	MaxEventPages  int           `json:"maxEventPages" yaml:"maxEventPages"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

type GoogleOAuthConfig struct {
	ClientID       string        `json:"clientId" yaml:"clientId"`
	ClientSecret   string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI    string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes         string        `json:"scopes" yaml:"scopes"`
	TokenURL       string        `json:"tokenUrl" yaml:"tokenUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// VaultConfig points at a gocloud.dev secrets keeper; empty keeps tokens in plaintext
type VaultConfig struct {
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// A .env next to the yaml (or in the working directory) feeds the env provider below.
	if err := loadDotEnv(defaultPath, filepath.Dir(configFile)); err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MICROSOFT_CLIENTID -> microsoft.clientId
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DatabaseDriverPostgres
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.AccessTTL <= 0 {
		cfg.Session.AccessTTL = defaultAccessTTL
	}
	if cfg.Session.RefreshTTL <= 0 {
		cfg.Session.RefreshTTL = defaultRefreshTTL
	}

	if cfg.Microsoft == nil {
		cfg.Microsoft = &MicrosoftConfig{}
	}
	cfg.Microsoft.applyDefaults()

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.GoogleOAuth.Scopes == "" {
		cfg.GoogleOAuth.Scopes = "openid email profile"
	}
	if cfg.GoogleOAuth.RequestTimeout <= 0 {
		cfg.GoogleOAuth.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Vault == nil {
		cfg.Vault = &VaultConfig{}
	}
}

func (m *MicrosoftConfig) applyDefaults() {
	if m.Tenant == "" {
		m.Tenant = "common"
	}
	if m.UserProfileURL == "" {
		m.UserProfileURL = "https://graph.microsoft.com/v1.0/me"
	}
	if m.EventsURL == "" {
		m.EventsURL = "https://graph.microsoft.com/v1.0/me/events"
	}
	if m.CalendarViewURL == "" {
		m.CalendarViewURL = "https://graph.microsoft.com/v1.0/me/calendarview"
	}
	if m.WindowTimeZone == "" {
		m.WindowTimeZone = "America/New_York"
	}
	if m.DisplayTimeZone == "" {
		m.DisplayTimeZone = "Central European Standard Time"
	}
	if m.MaxEventPages <= 0 {
		m.MaxEventPages = defaultMaxEventPages
	}
	if m.RequestTimeout <= 0 {
		m.RequestTimeout = defaultRequestTimeout
	}
}

// loadDotEnv loads the first .env found into the process environment.
// Variables already set in the environment win.
func loadDotEnv(dirs ...string) error {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return errors.Wrapf(err, "load %s failed", candidate)
		}

		return nil
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
