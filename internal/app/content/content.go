// Package content reads the catalog and topic content files and builds a
// catalog.Catalog from them.
//
// Layout of a content tree:
//
//	catalog.yaml          topics: [...] in display order
//	topics/<id>.yaml      one TopicContent record, id must match the file name
//
// Every file is validated against an embedded JSON Schema before it is decoded.
// The default tree is embedded in the binary; a directory on disk can replace it.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data
var dataFS embed.FS

// ErrInvalidContent is wrapped by every file-level validation error.
var ErrInvalidContent = errors.New("invalid content")

const (
	CatalogFile = "catalog.yaml"
	TopicsDir   = "topics"
)

// Bundle is the decoded content of a tree before it becomes a Catalog.
type Bundle struct {
	Topics   []models.Topic
	Contents []models.TopicContent
}

// Embedded returns the content tree compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// the embed directive guarantees "data" exists
		panic(err)
	}
	return sub
}

// Read decodes and validates every file in fsys. Problems in individual topic
// files are collected and returned together.
func Read(fsys fs.FS) (Bundle, error) {
	var b Bundle

	raw, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		return Bundle{}, fmt.Errorf("read %s: %w", CatalogFile, err)
	}
	var cat struct {
		Topics []models.Topic `yaml:"topics"`
	}
	if err := decode(CatalogFile, raw, catalogSchema, &cat); err != nil {
		return Bundle{}, err
	}
	b.Topics = cat.Topics

	entries, err := fs.ReadDir(fsys, TopicsDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Bundle{}, fmt.Errorf("read %s: %w", TopicsDir, err)
	}

	byID := make(map[string]models.Topic, len(b.Topics))
	for _, t := range b.Topics {
		byID[t.ID] = t
	}

	var errs []error
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !isYAML(name) {
			continue
		}
		p := path.Join(TopicsDir, name)
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", p, err))
			continue
		}
		var tc models.TopicContent
		if err := decode(p, raw, topicSchema, &tc); err != nil {
			errs = append(errs, err)
			continue
		}
		if stem := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"); tc.ID != stem {
			errs = append(errs, fmt.Errorf("%w: %s: id %q does not match file name", ErrInvalidContent, p, tc.ID))
			continue
		}
		if t, ok := byID[tc.ID]; ok {
			inherit(&tc, t)
		}
		b.Contents = append(b.Contents, tc)
	}
	if len(errs) > 0 {
		return Bundle{}, errors.Join(errs...)
	}
	return b, nil
}

// Load reads fsys and builds a Catalog.
func Load(fsys fs.FS, logger *zap.Logger) (*catalog.Catalog, error) {
	b, err := Read(fsys)
	if err != nil {
		return nil, err
	}
	c, err := catalog.New(b.Topics, b.Contents)
	if err != nil {
		return nil, err
	}
	withContent, total := c.Coverage()
	logger.Info("content loaded",
		zap.Int("topics", total),
		zap.Int("with_content", withContent))
	return c, nil
}

// LoadEmbedded builds a Catalog from the embedded content tree.
func LoadEmbedded(logger *zap.Logger) (*catalog.Catalog, error) {
	return Load(Embedded(), logger)
}

// LoadDir builds a Catalog from a content tree on disk.
func LoadDir(dir string, logger *zap.Logger) (*catalog.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), logger)
}

// decode validates raw against schema and then unmarshals it into out.
func decode(name string, raw []byte, schema schemaFunc, out any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
	}
	if err := validate(schema, doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, name, err)
	}
	return nil
}

// inherit fills metadata the content file left out from its catalog entry.
func inherit(tc *models.TopicContent, t models.Topic) {
	if tc.Title == "" {
		tc.Title = t.Title
	}
	if tc.Description == "" {
		tc.Description = t.Description
	}
	if tc.Category == "" {
		tc.Category = t.Category
	}
	if tc.Difficulty == 0 {
		tc.Difficulty = t.Difficulty
	}
	if tc.Duration == "" {
		tc.Duration = t.Duration
	}
	if tc.Icon == "" {
		tc.Icon = t.Icon
	}
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
