package outercolor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitNotified(t *testing.T, c <-chan struct{}) {
	t.Helper()
	select {
	case <-c:
	case <-time.After(3 * time.Second):
		t.Fatal("no notification")
	}
}

func TestNopNotifier(t *testing.T) {
	n := NopNotifier()
	assert.Nil(t, n.C())
	n.Stop()
}

func TestMultiNotifier_FansIn(t *testing.T) {
	a, b := newManualNotifier(), newManualNotifier()
	m := NewMultiNotifier(a, NopNotifier(), b)
	defer m.Stop()

	require.NotNil(t, m.C())
	b.fire()
	waitNotified(t, m.C())
	a.fire()
	waitNotified(t, m.C())
}

func TestMultiNotifier_AllNilNeverFires(t *testing.T) {
	m := NewMultiNotifier(NopNotifier(), NopNotifier())
	assert.Nil(t, m.C())
	m.Stop()
}

func TestMultiNotifier_StopStopsSources(t *testing.T) {
	a := newManualNotifier()
	m := NewMultiNotifier(a)
	m.Stop()
	m.Stop()
	assert.True(t, a.stopped.Load())
}

func TestFileNotifier_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme")
	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o600))

	n, err := NewFileNotifier(path, nil)
	require.NoError(t, err)
	defer n.Stop()

	require.NoError(t, os.WriteFile(path, []byte("light"), 0o600))
	waitNotified(t, n.C())
}

func TestFileNotifier_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme")

	n, err := NewFileNotifier(path, nil)
	require.NoError(t, err)
	defer n.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0o600))
	select {
	case <-n.C():
		t.Fatal("sibling write must not notify")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFileNotifier_MissingDirectory(t *testing.T) {
	_, err := NewFileNotifier(filepath.Join(t.TempDir(), "nope", "theme"), nil)
	assert.Error(t, err)
}
