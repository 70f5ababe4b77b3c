package main

import (
	"io/fs"
	"os"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"go.uber.org/zap"
)

// contentFS returns the tree selected by --dir, or the embedded one.
func contentFS() fs.FS {
	if contentDir == "" {
		return content.Embedded()
	}
	return os.DirFS(contentDir)
}

func loadCatalog(logger *zap.Logger) (*catalog.Catalog, error) {
	return content.Load(contentFS(), logger)
}
