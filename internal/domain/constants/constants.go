// Package constants contains names shared between configuration and infrastructure.
package constants

// Storage drivers accepted by storage.driver.
const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
	StorageDriverBlob     = "blob"
)

// Storage keys. The shapes stored under them are the JSON documents of the matching entities.
const (
	KeyCartPrefix            = "cart:"
	KeyAffiliates            = "affiliates"
	KeyCommissionHistory     = "commissionHistory"
	KeyRegisteredUsers       = "registeredUsers"
	KeyCopytradingAccounts   = "copytrading_accounts"
	KeyCopytradingOperations = "copytrading_operations"
	KeySiteConfig            = "site-config"
	KeyEnvOverridePrefix     = "env:"
)

// Environment variables the site reads through its overridable environment.
const (
	EnvTradingViewScannerURL = "TRADINGVIEW_SCANNER_URL"
)

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Promotion policies accepted by copytrading.promotionPolicy.
const (
	PromotionPolicyOnSync       = "on_sync"
	PromotionPolicyConnectivity = "connectivity"
)

// Broker bridges accepted by copytrading.bridge.kind.
const (
	BrokerBridgeSimulated = "simulated"
	BrokerBridgeHTTP      = "http"
)
