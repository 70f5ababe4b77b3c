// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/dalemusser/learnhub/internal/app/resources"
	topicstore "github.com/dalemusser/learnhub/internal/app/store/topics"
	"github.com/dalemusser/learnhub/internal/app/system/contentwatch"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/dalemusser/learnhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after DB connections and schema setup
// and before the HTTP handler is built: it registers the layout templates,
// builds the catalog, creates the view-session manager, and starts the
// background workers.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Runtime == nil {
		return errors.New("startup: runtime not initialized by ConnectDB")
	}
	rt := deps.Runtime

	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	c, err := loadCatalog(ctx, appCfg, deps, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	rt.Catalog.Swap(c)

	secure := coreCfg.Env == "prod"
	views, err := viewsession.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, appCfg.CopyIndicatorTTL, logger)
	if err != nil {
		return fmt.Errorf("view session manager: %w", err)
	}
	rt.Views = views

	rt.Sweep = workers.NewViewSweep(views, logger, appCfg.SessionSweepInterval, appCfg.SessionIdleTTL)
	rt.Sweep.Start()

	if appCfg.ContentWatch {
		w, err := contentwatch.New(appCfg.ContentDir, rt.Catalog, logger)
		if err != nil {
			rt.Sweep.Stop()
			return err
		}
		rt.Watch = w
		rt.Watch.Start()
	}
	return nil
}

// loadCatalog builds the catalog from the configured source. An empty Mongo
// database is seeded from the embedded content first.
func loadCatalog(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (*catalog.Catalog, error) {
	switch appCfg.ContentSource {
	case SourceDir:
		return content.LoadDir(appCfg.ContentDir, logger)
	case SourceMongo:
		return loadFromMongo(ctx, deps, logger)
	default:
		return content.LoadEmbedded(logger)
	}
}

func loadFromMongo(ctx context.Context, deps DBDeps, logger *zap.Logger) (*catalog.Catalog, error) {
	if deps.MongoDatabase == nil {
		return nil, errors.New("content_source=mongo but no database connected")
	}
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "load topics")
	defer cancel()

	store := topicstore.New(deps.MongoDatabase)
	b, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if len(b.Topics) == 0 {
		logger.Info("topic collections empty; seeding from embedded content")
		if b, err = content.Read(content.Embedded()); err != nil {
			return nil, err
		}
		if err := store.ReplaceAll(ctx, b); err != nil {
			return nil, fmt.Errorf("seed topics: %w", err)
		}
	}

	c, err := catalog.New(b.Topics, b.Contents)
	if err != nil {
		return nil, err
	}
	withContent, total := c.Coverage()
	logger.Info("content loaded from MongoDB",
		zap.Int("topics", total),
		zap.Int("with_content", withContent))
	return c, nil
}
