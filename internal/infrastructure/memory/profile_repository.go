package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

// StaticRepository resolves every key to the same profile.
type StaticRepository struct {
	profile domain.ShopProfile
}

// NewStaticRepository returns a repository that always serves profile.
func NewStaticRepository(profile domain.ShopProfile) *StaticRepository {
	return &StaticRepository{profile: profile}
}

// Lookup ignores slug. Each call returns an independent copy.
func (r *StaticRepository) Lookup(_ context.Context, _ string) (*domain.ShopProfile, error) {
	p := r.profile.Clone()
	return &p, nil
}

// CatalogRepository resolves profiles by slug.
type CatalogRepository struct {
	profiles map[string]domain.ShopProfile
	slugs    []string
}

// NewCatalogRepository indexes profiles by slug. Empty and duplicate slugs are rejected.
func NewCatalogRepository(profiles ...domain.ShopProfile) (*CatalogRepository, error) {
	repo := &CatalogRepository{profiles: make(map[string]domain.ShopProfile, len(profiles))}
	for i, p := range profiles {
		slug := strings.TrimSpace(p.Slug)
		if slug == "" {
			return nil, fmt.Errorf("profile %d (%q) has no slug", i, p.Name)
		}
		if _, ok := repo.profiles[slug]; ok {
			return nil, fmt.Errorf("duplicate profile slug %q", slug)
		}
		p.Slug = slug
		repo.profiles[slug] = p.Clone()
		repo.slugs = append(repo.slugs, slug)
	}
	return repo, nil
}

// Lookup returns the profile registered under slug.
func (r *CatalogRepository) Lookup(_ context.Context, slug string) (*domain.ShopProfile, error) {
	p, ok := r.profiles[slug]
	if !ok {
		return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrProfileNotFound)
	}
	p = p.Clone()
	return &p, nil
}

// Slugs lists registered slugs in insertion order.
func (r *CatalogRepository) Slugs() []string {
	return append([]string{}, r.slugs...)
}

// Profiles lists registered profiles in insertion order.
func (r *CatalogRepository) Profiles() []domain.ShopProfile {
	out := make([]domain.ShopProfile, 0, len(r.slugs))
	for _, slug := range r.slugs {
		out = append(out, r.profiles[slug].Clone())
	}
	return out
}
