package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

// ProfileRepository implements application.ProfileRepository using MongoDB.
type ProfileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository creates a new Mongo-backed profile repository.
func NewProfileRepository(db *mongo.Database, collectionName string) *ProfileRepository {
	return &ProfileRepository{collection: db.Collection(collectionName)}
}

// Lookup returns the profile stored under slug.
func (r *ProfileRepository) Lookup(ctx context.Context, slug string) (*domain.ShopProfile, error) {
	var doc ProfileDocument
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("slug %q: %w", slug, domain.ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %q: %w", slug, err)
	}
	profile := mapProfileDocument(doc)
	return &profile, nil
}

// Upsert replaces the document stored under profile.Slug, creating it when absent.
// createdAt is kept from the first insert.
func (r *ProfileRepository) Upsert(ctx context.Context, profile domain.ShopProfile, now time.Time) error {
	doc := ProfileDocumentFromDomain(profile)
	doc.UpdatedAt = &now

	update := upsertUpdate(doc, now)
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"slug": doc.Slug}, update, opts); err != nil {
		return fmt.Errorf("upsert profile %q: %w", doc.Slug, err)
	}
	return nil
}

// upsertUpdate は $set で値を書き込み、omitempty で落ちる空フィールドは $unset で消す。
func upsertUpdate(doc ProfileDocument, now time.Time) bson.M {
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"createdAt": now},
	}

	empty := map[string]bool{
		"city":         doc.City == "",
		"addressShort": doc.AddressShort == "",
		"closesAt":     doc.ClosesAt == "",
		"responseTime": doc.ResponseTime == "",
		"badges":       len(doc.Badges) == 0,
		"highlights":   len(doc.Highlights) == 0,
		"about":        doc.About == "",
		"serving":      len(doc.Serving) == 0,
		"services":     len(doc.Services) == 0,
		"reviews":      len(doc.Reviews) == 0,
		"hours":        len(doc.Hours) == 0,
	}
	unset := bson.M{}
	for field, isEmpty := range empty {
		if isEmpty {
			unset[field] = ""
		}
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// EnsureIndexes creates the unique slug index.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("slug_unique"),
	})
	return err
}

// Drop removes the whole collection.
func (r *ProfileRepository) Drop(ctx context.Context) error {
	return r.collection.Drop(ctx)
}

func mapProfileDocument(doc ProfileDocument) domain.ShopProfile {
	badges := make([]domain.Badge, 0, len(doc.Badges))
	for _, b := range doc.Badges {
		badges = append(badges, domain.Badge{Label: b.Label, Variant: domain.ParseBadgeVariant(b.Variant)})
	}

	services := make([]domain.Service, 0, len(doc.Services))
	for _, s := range doc.Services {
		services = append(services, domain.Service{
			Title:     s.Title,
			PriceFrom: s.PriceFrom,
			Duration:  s.Duration,
			Bullets:   append([]string{}, s.Bullets...),
		})
	}

	reviews := make([]domain.Review, 0, len(doc.Reviews))
	for _, rv := range doc.Reviews {
		reviews = append(reviews, domain.Review{
			Name:     rv.Name,
			Location: rv.Location,
			Stars:    rv.Stars,
			Date:     rv.Date,
			Text:     rv.Text,
			Verified: rv.Verified,
			Photos:   append([]string{}, rv.Photos...),
		})
	}

	hours := make([]domain.DayHours, 0, len(doc.Hours))
	for _, h := range doc.Hours {
		hours = append(hours, domain.DayHours{Day: h.Day, Hours: h.Hours})
	}

	return domain.ShopProfile{
		Slug:         doc.Slug,
		Name:         doc.Name,
		City:         doc.City,
		AddressShort: strings.TrimSpace(doc.AddressShort),
		IsOpen:       doc.IsOpen,
		ClosesAt:     doc.ClosesAt,
		Rating:       doc.Rating,
		ReviewCount:  doc.ReviewCount,
		ResponseTime: doc.ResponseTime,
		Badges:       badges,
		Highlights:   append([]string{}, doc.Highlights...),
		About:        doc.About,
		Serving:      append([]string{}, doc.Serving...),
		Gallery:      append([]string{}, doc.Gallery...),
		Services:     services,
		Reviews:      reviews,
		Hours:        hours,
	}
}

// ProfileDocumentFromDomain converts a profile into its stored shape.
func ProfileDocumentFromDomain(p domain.ShopProfile) ProfileDocument {
	badges := make([]BadgeDocument, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, BadgeDocument{Label: b.Label, Variant: string(b.Variant)})
	}

	services := make([]ServiceDocument, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, ServiceDocument{
			Title:     s.Title,
			PriceFrom: s.PriceFrom,
			Duration:  s.Duration,
			Bullets:   append([]string{}, s.Bullets...),
		})
	}

	reviews := make([]ReviewDocument, 0, len(p.Reviews))
	for _, rv := range p.Reviews {
		reviews = append(reviews, ReviewDocument{
			Name:     rv.Name,
			Location: rv.Location,
			Stars:    rv.Stars,
			Date:     rv.Date,
			Text:     rv.Text,
			Verified: rv.Verified,
			Photos:   append([]string{}, rv.Photos...),
		})
	}

	hours := make([]HoursDocument, 0, len(p.Hours))
	for _, h := range p.Hours {
		hours = append(hours, HoursDocument{Day: h.Day, Hours: h.Hours})
	}

	return ProfileDocument{
		Slug:         strings.TrimSpace(p.Slug),
		Name:         p.Name,
		City:         p.City,
		AddressShort: p.AddressShort,
		IsOpen:       p.IsOpen,
		ClosesAt:     p.ClosesAt,
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		ResponseTime: p.ResponseTime,
		Badges:       badges,
		Highlights:   append([]string{}, p.Highlights...),
		About:        p.About,
		Serving:      append([]string{}, p.Serving...),
		Gallery:      append([]string{}, p.Gallery...),
		Services:     services,
		Reviews:      reviews,
		Hours:        hours,
	}
}
