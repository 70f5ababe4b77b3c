package content

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

type schemaFunc func() (*gojsonschema.Schema, error)

var (
	catalogSchema schemaFunc = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return compile("schema/catalog.schema.json")
	})
	topicSchema schemaFunc = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return compile("schema/topic.schema.json")
	})
)

func compile(name string) (*gojsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}

// validate checks a decoded YAML document against the schema and folds all
// violations into one error.
func validate(schema schemaFunc, doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, re := range res.Errors() {
		msgs = append(msgs, re.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}
