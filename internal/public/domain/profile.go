package domain

import (
	"errors"
	"math"
	"strings"
)

// ErrProfileNotFound is returned by repositories when no profile matches the lookup key.
var ErrProfileNotFound = errors.New("profile not found")

// BadgeVariant selects the visual treatment of a badge pill.
type BadgeVariant string

const (
	BadgeGreen BadgeVariant = "green"
	BadgeBlue  BadgeVariant = "blue"
	BadgeGray  BadgeVariant = "gray"
)

// Valid reports whether the variant is one of the enumerated values.
func (v BadgeVariant) Valid() bool {
	switch v {
	case BadgeGreen, BadgeBlue, BadgeGray:
		return true
	default:
		return false
	}
}

// ParseBadgeVariant normalises raw input. Unknown values fall back to gray.
func ParseBadgeVariant(raw string) BadgeVariant {
	v := BadgeVariant(strings.ToLower(strings.TrimSpace(raw)))
	if v.Valid() {
		return v
	}
	return BadgeGray
}

// Badge is a small labelled indicator of a business attribute.
type Badge struct {
	Label   string
	Variant BadgeVariant
}

// Service is one bookable offering.
type Service struct {
	Title     string
	PriceFrom int
	Duration  string
	Bullets   []string
}

// Review is a customer review shown on the profile.
type Review struct {
	Name     string
	Location string
	Stars    float64
	Date     string
	Text     string
	Verified bool
	Photos   []string
}

// DayHours is one row of the weekly hours table.
type DayHours struct {
	Day   string
	Hours string
}

// ShopProfile describes one service business.
type ShopProfile struct {
	Slug         string
	Name         string
	City         string
	AddressShort string
	IsOpen       bool
	ClosesAt     string
	Rating       float64
	ReviewCount  int
	ResponseTime string
	Badges       []Badge
	Highlights   []string
	About        string
	Serving      []string
	Gallery      []string
	Services     []Service
	Reviews      []Review
	Hours        []DayHours
}

// Clone returns a copy of p that shares no slices with it. Nil slices come back empty.
func (p ShopProfile) Clone() ShopProfile {
	p.Badges = append([]Badge{}, p.Badges...)
	p.Highlights = append([]string{}, p.Highlights...)
	p.Serving = append([]string{}, p.Serving...)
	p.Gallery = append([]string{}, p.Gallery...)
	p.Hours = append([]DayHours{}, p.Hours...)

	services := make([]Service, 0, len(p.Services))
	for _, svc := range p.Services {
		svc.Bullets = append([]string{}, svc.Bullets...)
		services = append(services, svc)
	}
	p.Services = services

	reviews := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		r.Photos = append([]string{}, r.Photos...)
		reviews = append(reviews, r)
	}
	p.Reviews = reviews
	return p
}

// MaxThumbnails is the number of gallery entries shown next to the cover.
const MaxThumbnails = 3

// Cover returns the first gallery entry.
func (p ShopProfile) Cover() (string, bool) {
	if len(p.Gallery) == 0 {
		return "", false
	}
	return p.Gallery[0], true
}

// Thumbnails returns gallery entries at indices 1..3.
func (p ShopProfile) Thumbnails() []string {
	if len(p.Gallery) <= 1 {
		return []string{}
	}
	end := 1 + MaxThumbnails
	if end > len(p.Gallery) {
		end = len(p.Gallery)
	}
	return append([]string{}, p.Gallery[1:end]...)
}

// MaxRating is the upper bound of every star rating.
const MaxRating = 5.0

// ClampRating bounds r to [0, MaxRating]. NaN maps to zero.
func ClampRating(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > MaxRating:
		return MaxRating
	default:
		return r
	}
}
