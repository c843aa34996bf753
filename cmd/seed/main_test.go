package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/infrastructure/memory"
	"github.com/sngm3741/shopfront/internal/public/domain"
)

type recordingWriter struct {
	calls     []string
	upsertErr error
}

func (w *recordingWriter) Drop(context.Context) error {
	w.calls = append(w.calls, "drop")
	return nil
}

func (w *recordingWriter) EnsureIndexes(context.Context) error {
	w.calls = append(w.calls, "index")
	return nil
}

func (w *recordingWriter) Upsert(_ context.Context, p domain.ShopProfile, _ time.Time) error {
	if w.upsertErr != nil {
		return w.upsertErr
	}
	w.calls = append(w.calls, "upsert:"+p.Slug)
	return nil
}

func TestSeedOrder(t *testing.T) {
	w := &recordingWriter{}
	profiles := []domain.ShopProfile{memory.Fixture()}

	require.NoError(t, seed(context.Background(), zap.NewNop(), w, profiles, true, time.Now()))
	assert.Equal(t, []string{"drop", "index", "upsert:" + memory.FixtureSlug}, w.calls)

	w = &recordingWriter{}
	require.NoError(t, seed(context.Background(), zap.NewNop(), w, profiles, false, time.Now()))
	assert.Equal(t, []string{"index", "upsert:" + memory.FixtureSlug}, w.calls)
}

func TestSeedWrapsUpsertError(t *testing.T) {
	boom := errors.New("boom")
	w := &recordingWriter{upsertErr: boom}

	err := seed(context.Background(), zap.NewNop(), w, []domain.ShopProfile{memory.Fixture()}, false, time.Now())
	assert.ErrorIs(t, err, boom)
}

func TestProfilesToSeed(t *testing.T) {
	fixture, err := profilesToSeed("")
	require.NoError(t, err)
	require.Len(t, fixture, 1)
	assert.Equal(t, memory.FixtureSlug, fixture[0].Slug)

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	catalog := `
profiles:
  - slug: shine-co
    name: Shine Co
    city: Austin
    gallery: ["/a.png"]
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	loaded, err := profilesToSeed(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "shine-co", loaded[0].Slug)
}

func TestFlags(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-f", "p.yaml", "--drop", "--timeout", "5s"}))

	file, err := cmd.Flags().GetString("file")
	require.NoError(t, err)
	assert.Equal(t, "p.yaml", file)

	drop, err := cmd.Flags().GetBool("drop")
	require.NoError(t, err)
	assert.True(t, drop)
}
