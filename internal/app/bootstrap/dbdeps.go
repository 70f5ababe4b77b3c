// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/system/contentwatch"
	"github.com/dalemusser/learnhub/internal/app/system/viewsession"
	"github.com/dalemusser/learnhub/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds back-end dependencies for the app.
//
// The Mongo fields are nil unless content_source=mongo. Runtime is created in
// ConnectDB and filled in by Startup; WAFFLE passes DBDeps by value, so the
// shared pointer is how later hooks see what Startup built.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Runtime *Runtime
}

// Runtime is the in-process state shared by the handlers and the background
// workers.
type Runtime struct {
	Catalog *catalog.Holder
	Views   *viewsession.Manager
	Sweep   *workers.ViewSweep
	Watch   *contentwatch.Watcher
}
