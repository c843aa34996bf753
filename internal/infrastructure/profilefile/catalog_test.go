package profilefile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

const sampleCatalog = `
profiles:
  - slug: sparkle-wash
    name: Sparkle Wash
    city: Fairfax, VA
    open: false
    closesAt: "5:00 PM"
    rating: 4.4
    reviewCount: 12
    badges:
      - label: Verified Pro
        variant: green
      - label: Odd
        variant: teal
    gallery: [/a.jpg, /b.jpg]
    services:
      - title: Wash
        priceFrom: 40
        duration: 1 Hour
        bullets: [Rinse, Dry]
    reviews:
      - name: Kim
        stars: 4
        verified: true
    hours:
      - day: Mon
        hours: Closed
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	repo, err := Load(path)
	require.NoError(t, err)

	p, err := repo.Lookup(context.Background(), "sparkle-wash")
	require.NoError(t, err)
	assert.Equal(t, "Sparkle Wash", p.Name)
	assert.Equal(t, "Fairfax, VA", p.AddressShort)
	assert.False(t, p.IsOpen)
	assert.Equal(t, domain.BadgeGreen, p.Badges[0].Variant)
	assert.Equal(t, domain.BadgeGray, p.Badges[1].Variant)
	assert.Equal(t, []string{"Rinse", "Dry"}, p.Services[0].Bullets)
	assert.True(t, p.Reviews[0].Verified)
	assert.Empty(t, p.Reviews[0].Photos)
	assert.Equal(t, domain.DayHours{Day: "Mon", Hours: "Closed"}, p.Hours[0])

	_, err = repo.Lookup(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("profiles:\n  - slug: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadMissingSlug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: Nameless\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
