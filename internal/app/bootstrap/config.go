// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/learnhub/internal/app/system/copyindicator"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the learning hub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: content_source, mongo_uri, etc.
//   - Environment variables: LEARNHUB_CONTENT_SOURCE, LEARNHUB_MONGO_URI, etc.
//   - Command-line flags: --content_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "content_source", Default: SourceEmbedded, Desc: "Catalog source: 'embedded', 'dir' or 'mongo'"},
	{Name: "content_dir", Default: "./content", Desc: "Content directory (content_source=dir)"},
	{Name: "content_watch", Default: false, Desc: "Reload content_dir when files change"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (content_source=mongo)"},
	{Name: "mongo_database", Default: "learnhub", Desc: "MongoDB database name"},

	{Name: "session_key", Default: devSessionKey, Desc: "View-session cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: viewsession.DefaultCookieName, Desc: "View-session cookie name"},
	{Name: "session_domain", Default: "", Desc: "View-session cookie domain (blank means current host)"},
	{Name: "session_idle_ttl", Default: "30m", Desc: "Discard page state unused for this long (e.g., 30m)"},
	{Name: "session_sweep_interval", Default: "1m", Desc: "How often idle page state is swept"},

	{Name: "copy_indicator_ttl", Default: "2s", Desc: "How long a copied example shows as copied"},
	{Name: "copy_rate_limit", Default: 60, Desc: "Copy requests per client IP per minute (0 disables)"},
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables (WAFFLE_* for core, LEARNHUB_* for app) and
// command-line flags with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LEARNHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		ContentSource: appValues.String("content_source"),
		ContentDir:    appValues.String("content_dir"),
		ContentWatch:  appValues.Bool("content_watch"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:           appValues.String("session_key"),
		SessionName:          appValues.String("session_name"),
		SessionDomain:        appValues.String("session_domain"),
		SessionIdleTTL:       appValues.Duration("session_idle_ttl", 30*time.Minute),
		SessionSweepInterval: appValues.Duration("session_sweep_interval", time.Minute),

		CopyIndicatorTTL: appValues.Duration("copy_indicator_ttl", copyindicator.DefaultTTL),
		CopyRateLimit:    appValues.Int("copy_rate_limit"),
		SiteName:         appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.ContentSource {
	case SourceEmbedded:
	case SourceDir:
		if appCfg.ContentDir == "" {
			return fmt.Errorf("content_source=dir requires content_dir")
		}
	case SourceMongo:
		if appCfg.MongoURI == "" {
			return fmt.Errorf("content_source=mongo requires mongo_uri")
		}
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("content_source=mongo requires mongo_database")
		}
	default:
		return fmt.Errorf("unknown content_source %q (want %s, %s or %s)",
			appCfg.ContentSource, SourceEmbedded, SourceDir, SourceMongo)
	}

	if appCfg.ContentWatch && appCfg.ContentSource != SourceDir {
		return fmt.Errorf("content_watch requires content_source=dir")
	}

	if appCfg.CopyIndicatorTTL <= 0 {
		return fmt.Errorf("copy_indicator_ttl must be positive, got %s", appCfg.CopyIndicatorTTL)
	}
	if appCfg.CopyRateLimit < 0 {
		return fmt.Errorf("copy_rate_limit must not be negative, got %d", appCfg.CopyRateLimit)
	}
	if appCfg.SessionIdleTTL <= 0 || appCfg.SessionSweepInterval <= 0 {
		return fmt.Errorf("session_idle_ttl and session_sweep_interval must be positive")
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return fmt.Errorf("session_key must be set in production")
	}
	return nil
}
