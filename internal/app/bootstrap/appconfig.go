// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// Content sources.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceMongo    = "mongo"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings such as ports, TLS, log level and CORS; AppConfig
// is everything specific to the learning hub.
type AppConfig struct {
	// Where the catalog comes from: embedded, dir or mongo.
	ContentSource string
	ContentDir    string // content tree on disk (source=dir)
	ContentWatch  bool   // reload ContentDir on change (source=dir)

	// MongoDB connection configuration (source=mongo)
	MongoURI      string
	MongoDatabase string

	// View-session cookie and in-memory page state
	SessionKey           string        // secret key for signing the cookie
	SessionName          string        // cookie name
	SessionDomain        string        // cookie domain (blank means current host)
	SessionIdleTTL       time.Duration // evict page state unused this long
	SessionSweepInterval time.Duration // how often idle page state is swept

	// How long a copied code example shows its check mark.
	CopyIndicatorTTL time.Duration
	// Copy requests allowed per client IP each minute; 0 disables the limit.
	CopyRateLimit int

	// Header title.
	SiteName string
}
