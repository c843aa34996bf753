package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

// ErrInvalidProfile marks a stored profile that cannot be rendered.
var ErrInvalidProfile = errors.New("invalid profile")

// profileQueryService is the concrete implementation of ProfileQueryService.
type profileQueryService struct {
	repo ProfileRepository
}

// NewProfileQueryService creates a new profile query service.
func NewProfileQueryService(repo ProfileRepository) ProfileQueryService {
	return &profileQueryService{repo: repo}
}

// Profile resolves slug and returns a copy that is safe to hand to the view layer:
// badge variants are normalised and every rating is clamped to [0, 5].
func (s *profileQueryService) Profile(ctx context.Context, slug string) (*domain.ShopProfile, error) {
	profile, err := s.repo.Lookup(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	normalised := normaliseProfile(*profile)
	return &normalised, nil
}

func validateProfile(p *domain.ShopProfile) error {
	if p == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidProfile)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if len(p.Gallery) == 0 {
		return fmt.Errorf("%w: %s has no cover image", ErrInvalidProfile, p.Name)
	}
	for _, svc := range p.Services {
		if svc.PriceFrom <= 0 {
			return fmt.Errorf("%w: service %q must have a positive price", ErrInvalidProfile, svc.Title)
		}
	}
	return nil
}

func normaliseProfile(p domain.ShopProfile) domain.ShopProfile {
	p = p.Clone()
	p.Rating = domain.ClampRating(p.Rating)
	for i := range p.Badges {
		p.Badges[i].Variant = domain.ParseBadgeVariant(string(p.Badges[i].Variant))
	}
	for i := range p.Reviews {
		p.Reviews[i].Stars = domain.ClampRating(p.Reviews[i].Stars)
	}
	return p
}
