package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/constants"

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
	defaultSyncSchedule       = "@every 60s"
	defaultTimeZone           = "Europe/Lisbon"
	defaultCurrency           = "EUR"
	defaultPaymentTimeout     = 30 * time.Second
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

	// Storage selects the key/value driver behind every document repository
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access         string        `json:"access" yaml:"access"`
		AccessDuration time.Duration `json:"accessDuration" yaml:"accessDuration"`
		Issuer         string        `json:"issuer" yaml:"issuer"`
	} `json:"secretKey" yaml:"secretKey"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Copytrading *CopytradingConfig `json:"copytrading" yaml:"copytrading"`

	// QRCode configuration for affiliate referral QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Integrations configures the companion HTTP services client
	Integrations *IntegrationsConfig `json:"integrations" yaml:"integrations"`

	SiteSettings *SiteSettingsConfig `json:"siteSettings" yaml:"siteSettings"`

	// TestRoutes exposes token minting for local development
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines the key/value persistence boundary
type StorageConfig struct {
	// Driver is one of memory, redis, postgres, blob
	Driver string `json:"driver" yaml:"driver"`

	// KeyPrefix namespaces every stored key
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`

	Redis RedisConfig `json:"redis" yaml:"redis"`

	Blob BlobConfig `json:"blob" yaml:"blob"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type BlobConfig struct {
	// URL is a gocloud bucket URL, e.g. file:///var/lib/mtm or mem://
	URL string `json:"url" yaml:"url"`
}

// CheckoutConfig defines the simulated payment step.
// PaymentTimeout bounds a charge once started; the request context cannot cut it short.
type CheckoutConfig struct {
	PaymentDelay   time.Duration `json:"paymentDelay" yaml:"paymentDelay"`
	PaymentTimeout time.Duration `json:"paymentTimeout" yaml:"paymentTimeout"`
	Currency       string        `json:"currency" yaml:"currency"`
}

// CopytradingConfig defines the sync scheduler and trade simulation
type CopytradingConfig struct {
	SyncSchedule     string       `json:"syncSchedule" yaml:"syncSchedule"`
	PromotionPolicy  string       `json:"promotionPolicy" yaml:"promotionPolicy"`
	MaxOpenTrades    int          `json:"maxOpenTrades" yaml:"maxOpenTrades"`
	OpenProbability  float64      `json:"openProbability" yaml:"openProbability"`
	CloseProbability float64      `json:"closeProbability" yaml:"closeProbability"`
	RetainOperations int          `json:"retainOperations" yaml:"retainOperations"`
	Symbols          []string     `json:"symbols" yaml:"symbols"`
	Bridge           BridgeConfig `json:"bridge" yaml:"bridge"`
}

// BridgeConfig selects how broker connectivity is checked
type BridgeConfig struct {
	// Kind is simulated or http
	Kind    string        `json:"kind" yaml:"kind"`
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// IntegrationsConfig defines the companion services client and its circuit breaker
type IntegrationsConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Breaker trips after MaxFailures consecutive failures and half-opens after OpenTimeout
	Breaker struct {
		MaxFailures uint32        `json:"maxFailures" yaml:"maxFailures"`
		OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
	} `json:"breaker" yaml:"breaker"`
}

// SiteSettingsConfig defines presentation and override settings
type SiteSettingsConfig struct {
	// TimeZone used to render dates in exports
	TimeZone string `json:"timeZone" yaml:"timeZone"`

	// EnvKeys is the allow-list of variables that may be overridden at runtime
	EnvKeys []string `json:"envKeys" yaml:"envKeys"`
}

// TestRoutesConfig toggles the /test routes
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// .env is optional; real environment variables always win over it
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = constants.StorageDriverMemory
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.Currency == "" {
		cfg.Checkout.Currency = defaultCurrency
	}
	if cfg.Checkout.PaymentTimeout <= 0 {
		cfg.Checkout.PaymentTimeout = defaultPaymentTimeout
	}

	if cfg.Copytrading == nil {
		cfg.Copytrading = &CopytradingConfig{}
	}
	ct := cfg.Copytrading
	if ct.SyncSchedule == "" {
		ct.SyncSchedule = defaultSyncSchedule
	}
	if ct.PromotionPolicy == "" {
		ct.PromotionPolicy = constants.PromotionPolicyConnectivity
	}
	if ct.MaxOpenTrades <= 0 {
		ct.MaxOpenTrades = 5
	}
	if ct.RetainOperations <= 0 {
		ct.RetainOperations = 50
	}
	if ct.Bridge.Kind == "" {
		ct.Bridge.Kind = constants.BrokerBridgeSimulated
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "medium"}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.Integrations == nil {
		cfg.Integrations = &IntegrationsConfig{}
	}

	if cfg.SiteSettings == nil {
		cfg.SiteSettings = &SiteSettingsConfig{}
	}
	if cfg.SiteSettings.TimeZone == "" {
		cfg.SiteSettings.TimeZone = defaultTimeZone
	}

	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
	}
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
