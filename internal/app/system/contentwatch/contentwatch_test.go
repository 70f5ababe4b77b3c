package contentwatch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func copyTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.CopyFS(dir, content.Embedded()))
	return dir
}

func startWatcher(t *testing.T, dir string) (*Watcher, *catalog.Holder) {
	t.Helper()
	c, err := content.LoadDir(dir, zap.NewNop())
	require.NoError(t, err)
	h := catalog.NewHolder(c)

	w, err := New(dir, h, zap.NewNop(), WithDebounce(60*time.Millisecond))
	require.NoError(t, err)
	w.Start()
	t.Cleanup(w.Stop)
	return w, h
}

func loopsTitle(h *catalog.Holder) string {
	tp, _ := h.Catalog().Topic("loops")
	return tp.Title
}

func rewrite(t *testing.T, path, old, new string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), old)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(string(raw), old, new, 1)), 0o644))
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := copyTree(t)
	w, h := startWatcher(t, dir)
	require.Equal(t, "Loops", loopsTitle(h))

	rewrite(t, filepath.Join(dir, content.CatalogFile), `title: "Loops"`, `title: "Loops and Iteration"`)

	require.Eventually(t, func() bool {
		return loopsTitle(h) == "Loops and Iteration"
	}, 3*time.Second, 20*time.Millisecond)

	reloads, failures := w.Stats()
	assert.GreaterOrEqual(t, reloads, 1)
	assert.Zero(t, failures)
	w.Stop()
}

func TestWatcher_KeepsCatalogOnBadContent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := copyTree(t)
	w, h := startWatcher(t, dir)
	before := h.Catalog()

	rewrite(t, filepath.Join(dir, content.CatalogFile), "difficulty: 1", "difficulty: 9")

	require.Eventually(t, func() bool {
		_, failures := w.Stats()
		return failures > 0
	}, 3*time.Second, 20*time.Millisecond)

	assert.Same(t, before, h.Catalog())
	w.Stop()
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := copyTree(t)
	w, _ := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("draft"), 0o644))
	time.Sleep(300 * time.Millisecond)

	reloads, failures := w.Stats()
	assert.Zero(t, reloads)
	assert.Zero(t, failures)
	w.Stop()
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), catalog.NewHolder(nil), zap.NewNop())
	assert.Error(t, err)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Millisecond, tickInterval(time.Nanosecond))
	assert.Equal(t, time.Millisecond, tickInterval(2*time.Nanosecond))
	assert.Equal(t, 100*time.Millisecond, tickInterval(300*time.Millisecond))
}

func TestWatcher_TinyDebounceStartsAndStops(t *testing.T) {
	dir := copyTree(t)
	c, err := content.LoadDir(dir, zap.NewNop())
	require.NoError(t, err)

	w, err := New(dir, catalog.NewHolder(c), zap.NewNop(), WithDebounce(time.Nanosecond))
	require.NoError(t, err)
	w.Start()
	w.Stop()
}
