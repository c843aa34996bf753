package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/sngm3741/shopfront/internal/assets"
	"github.com/sngm3741/shopfront/internal/public/domain"
)

// Home page asset.
const (
	HomeImagePath = "/project-foam.png"
	HomeImageAlt  = "Project Foam placeholder logo"
	HomeImageSize = 1080
)

// HomePage is the view model of the home page.
type HomePage struct {
	Title string
	Image assets.Source
}

// NewHomePage resolves the home image.
func NewHomePage(ctx context.Context, resolver assets.Resolver) (HomePage, error) {
	img, err := resolver.Resolve(ctx, assets.Image{
		Path:     HomeImagePath,
		Alt:      HomeImageAlt,
		Width:    HomeImageSize,
		Height:   HomeImageSize,
		Priority: true,
	})
	if err != nil {
		return HomePage{}, fmt.Errorf("resolve home image: %w", err)
	}
	return HomePage{Title: "Project Foam", Image: img}, nil
}

// Tab is one in-page navigation anchor.
type Tab struct {
	Label  string
	Href   string
	Active bool
	Class  string
}

var tabLabels = []string{"Overview", "Services", "Reviews", "Gallery", "Location"}

// Tabs returns the section navigation. The first tab is always marked active; it does not
// follow the scroll position.
func Tabs() []Tab {
	tabs := make([]Tab, 0, len(tabLabels))
	for i, label := range tabLabels {
		active := i == 0
		href := "#" + strings.ToLower(label)
		state := "border-transparent hover:text-slate-900"
		if active {
			href = "#overview"
			state = "border-blue-600 text-blue-700"
		}
		tabs = append(tabs, Tab{
			Label:  label,
			Href:   href,
			Active: active,
			Class:  Cn("whitespace-nowrap border-b-2 py-3", state),
		})
	}
	return tabs
}

// ServingArea is one entry of the serving list with its trailing separator.
type ServingArea struct {
	Name      string
	Separator string
}

// ServiceCard is one card of the services grid.
type ServiceCard struct {
	Title      string
	Duration   string
	PriceLabel string
	Bullets    []string
	Quote      Button
}

// ReviewCard is one card of the reviews list.
type ReviewCard struct {
	Name     string
	Location string
	Stars    StarRating
	Date     string
	Text     string
	Verified bool
	Photos   []assets.Source
}

// RequestForm holds the quick-request controls. The same controls are rendered twice.
type RequestForm struct {
	Service Select
	Zip     Input
	Date    Input
}

// ShopPage is the view model of the shop-profile page.
type ShopPage struct {
	Title        string
	Name         string
	Badges       []BadgePill
	RatingText   string
	Rating       StarRating
	ReviewCount  int
	City         string
	OpenLabel    string
	OpenClass    string
	ClosesAt     string
	Cover        assets.Source
	Thumbnails   []assets.Source
	GalleryCount int
	ResponseTime string
	Highlights   []string
	Tabs         []Tab
	About        string
	Serving      []ServingArea
	Form         RequestForm
	Services     []ServiceCard
	Reviews      []ReviewCard
	Address      string
	Hours        []domain.DayHours
}

// Image hints for the shop gallery.
const (
	coverSizes       = "(max-width: 1024px) 100vw, 66vw"
	thumbnailSizes   = "(max-width: 1024px) 100vw, 33vw"
	reviewPhotoSizes = "96px"
)

// NewShopPage maps a profile onto the shop page. The profile is expected to have been
// normalised by the query service; ratings are clamped again here so the star primitive
// only ever sees values in [0, 5].
func NewShopPage(ctx context.Context, p domain.ShopProfile, resolver assets.Resolver) (ShopPage, error) {
	coverPath, ok := p.Cover()
	if !ok {
		return ShopPage{}, fmt.Errorf("profile %q has no cover image", p.Slug)
	}
	cover, err := resolver.Resolve(ctx, assets.Image{
		Path:     coverPath,
		Alt:      "Cover",
		Fill:     true,
		Class:    "object-cover",
		Sizes:    coverSizes,
		Priority: true,
	})
	if err != nil {
		return ShopPage{}, fmt.Errorf("resolve cover: %w", err)
	}

	thumbs, err := resolveAll(ctx, resolver, p.Thumbnails(), "Gallery", thumbnailSizes)
	if err != nil {
		return ShopPage{}, err
	}

	reviews := make([]ReviewCard, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		photos, err := resolveAll(ctx, resolver, r.Photos, "Review photo", reviewPhotoSizes)
		if err != nil {
			return ShopPage{}, err
		}
		reviews = append(reviews, ReviewCard{
			Name:     r.Name,
			Location: r.Location,
			Stars:    Stars(domain.ClampRating(r.Stars)),
			Date:     r.Date,
			Text:     r.Text,
			Verified: r.Verified,
			Photos:   photos,
		})
	}

	badges := make([]BadgePill, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, NewBadgePill(b))
	}

	services := make([]ServiceCard, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, ServiceCard{
			Title:      s.Title,
			Duration:   s.Duration,
			PriceLabel: FormatPrice(s.PriceFrom),
			Bullets:    append([]string{}, s.Bullets...),
			Quote:      NewButton("Request Quote", ButtonPrimary, KindButton, "mt-5 w-full"),
		})
	}

	serving := make([]ServingArea, 0, len(p.Serving))
	for i, s := range p.Serving {
		sep := ""
		if i < len(p.Serving)-1 {
			sep = " · "
		}
		serving = append(serving, ServingArea{Name: s, Separator: sep})
	}

	openLabel, openClass := "Closed", "text-rose-700"
	if p.IsOpen {
		openLabel, openClass = "Open", "text-emerald-700"
	}

	rating := domain.ClampRating(p.Rating)

	return ShopPage{
		Title:        p.Name,
		Name:         p.Name,
		Badges:       badges,
		RatingText:   fmt.Sprintf("%.1f", rating),
		Rating:       Stars(rating),
		ReviewCount:  p.ReviewCount,
		City:         p.City,
		OpenLabel:    openLabel,
		OpenClass:    Cn("font-medium", openClass),
		ClosesAt:     p.ClosesAt,
		Cover:        cover,
		Thumbnails:   thumbs,
		GalleryCount: len(p.Gallery),
		ResponseTime: p.ResponseTime,
		Highlights:   append([]string{}, p.Highlights...),
		Tabs:         Tabs(),
		About:        p.About,
		Serving:      serving,
		Form: RequestForm{
			Service: NewServiceSelect("service", "Select service", p.Services),
			Zip:     NewInput("zip", "Zip code"),
			Date:    NewInput("date", "Preferred date"),
		},
		Services: services,
		Reviews:  reviews,
		Address:  p.AddressShort,
		Hours:    append([]domain.DayHours{}, p.Hours...),
	}, nil
}

// FormatPrice renders a starting price with the currency prefix.
func FormatPrice(amount int) string {
	return fmt.Sprintf("$%d", amount)
}

func resolveAll(ctx context.Context, resolver assets.Resolver, paths []string, alt, sizes string) ([]assets.Source, error) {
	out := make([]assets.Source, 0, len(paths))
	for _, path := range paths {
		src, err := resolver.Resolve(ctx, assets.Image{
			Path:  path,
			Alt:   alt,
			Fill:  true,
			Class: "object-cover",
			Sizes: sizes,
		})
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}
		out = append(out, src)
	}
	return out, nil
}
