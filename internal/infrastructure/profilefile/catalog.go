// Package profilefile loads shop profiles from a YAML catalog on disk.
package profilefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sngm3741/shopfront/internal/infrastructure/memory"
	"github.com/sngm3741/shopfront/internal/public/domain"
)

type catalogFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	Slug         string         `yaml:"slug"`
	Name         string         `yaml:"name"`
	City         string         `yaml:"city"`
	AddressShort string         `yaml:"address"`
	IsOpen       bool           `yaml:"open"`
	ClosesAt     string         `yaml:"closesAt"`
	Rating       float64        `yaml:"rating"`
	ReviewCount  int            `yaml:"reviewCount"`
	ResponseTime string         `yaml:"responseTime"`
	Badges       []badgeEntry   `yaml:"badges"`
	Highlights   []string       `yaml:"highlights"`
	About        string         `yaml:"about"`
	Serving      []string       `yaml:"serving"`
	Gallery      []string       `yaml:"gallery"`
	Services     []serviceEntry `yaml:"services"`
	Reviews      []reviewEntry  `yaml:"reviews"`
	Hours        []hoursEntry   `yaml:"hours"`
}

type badgeEntry struct {
	Label   string `yaml:"label"`
	Variant string `yaml:"variant"`
}

type serviceEntry struct {
	Title     string   `yaml:"title"`
	PriceFrom int      `yaml:"priceFrom"`
	Duration  string   `yaml:"duration"`
	Bullets   []string `yaml:"bullets"`
}

type reviewEntry struct {
	Name     string   `yaml:"name"`
	Location string   `yaml:"location"`
	Stars    float64  `yaml:"stars"`
	Date     string   `yaml:"date"`
	Text     string   `yaml:"text"`
	Verified bool     `yaml:"verified"`
	Photos   []string `yaml:"photos"`
}

type hoursEntry struct {
	Day   string `yaml:"day"`
	Hours string `yaml:"hours"`
}

// Load reads the catalog at path.
func Load(path string) (*memory.CatalogRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile catalog: %w", err)
	}
	profiles, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return memory.NewCatalogRepository(profiles...)
}

// Decode parses a YAML catalog document.
func Decode(r io.Reader) ([]domain.ShopProfile, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("profile catalog is empty")
		}
		return nil, fmt.Errorf("decode profile catalog: %w", err)
	}

	profiles := make([]domain.ShopProfile, 0, len(file.Profiles))
	for _, entry := range file.Profiles {
		profiles = append(profiles, entry.toDomain())
	}
	return profiles, nil
}

func (e profileEntry) toDomain() domain.ShopProfile {
	badges := make([]domain.Badge, 0, len(e.Badges))
	for _, b := range e.Badges {
		badges = append(badges, domain.Badge{Label: b.Label, Variant: domain.ParseBadgeVariant(b.Variant)})
	}
	services := make([]domain.Service, 0, len(e.Services))
	for _, s := range e.Services {
		services = append(services, domain.Service{
			Title:     s.Title,
			PriceFrom: s.PriceFrom,
			Duration:  s.Duration,
			Bullets:   append([]string{}, s.Bullets...),
		})
	}
	reviews := make([]domain.Review, 0, len(e.Reviews))
	for _, r := range e.Reviews {
		reviews = append(reviews, domain.Review{
			Name:     r.Name,
			Location: r.Location,
			Stars:    r.Stars,
			Date:     r.Date,
			Text:     r.Text,
			Verified: r.Verified,
			Photos:   append([]string{}, r.Photos...),
		})
	}
	hours := make([]domain.DayHours, 0, len(e.Hours))
	for _, h := range e.Hours {
		hours = append(hours, domain.DayHours{Day: h.Day, Hours: h.Hours})
	}

	address := e.AddressShort
	if address == "" {
		address = e.City
	}

	return domain.ShopProfile{
		Slug:         e.Slug,
		Name:         e.Name,
		City:         e.City,
		AddressShort: address,
		IsOpen:       e.IsOpen,
		ClosesAt:     e.ClosesAt,
		Rating:       e.Rating,
		ReviewCount:  e.ReviewCount,
		ResponseTime: e.ResponseTime,
		Badges:       badges,
		Highlights:   append([]string{}, e.Highlights...),
		About:        e.About,
		Serving:      append([]string{}, e.Serving...),
		Gallery:      append([]string{}, e.Gallery...),
		Services:     services,
		Reviews:      reviews,
		Hours:        hours,
	}
}
