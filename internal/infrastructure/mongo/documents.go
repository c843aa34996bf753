package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileDocument は MongoDB 上での店舗プロフィールスキーマを Go 構造体として表現したもの。
type ProfileDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Slug         string             `bson:"slug"`
	Name         string             `bson:"name"`
	City         string             `bson:"city,omitempty"`
	AddressShort string             `bson:"addressShort,omitempty"`
	IsOpen       bool               `bson:"isOpen"`
	ClosesAt     string             `bson:"closesAt,omitempty"`
	Rating       float64            `bson:"rating"`
	ReviewCount  int                `bson:"reviewCount"`
	ResponseTime string             `bson:"responseTime,omitempty"`
	Badges       []BadgeDocument    `bson:"badges,omitempty"`
	Highlights   []string           `bson:"highlights,omitempty"`
	About        string             `bson:"about,omitempty"`
	Serving      []string           `bson:"serving,omitempty"`
	Gallery      []string           `bson:"gallery"`
	Services     []ServiceDocument  `bson:"services,omitempty"`
	Reviews      []ReviewDocument   `bson:"reviews,omitempty"`
	Hours        []HoursDocument    `bson:"hours,omitempty"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty"`
}

// BadgeDocument はバッジ 1 件分の埋め込みドキュメント。
type BadgeDocument struct {
	Label   string `bson:"label"`
	Variant string `bson:"variant"`
}

// ServiceDocument はサービスメニュー 1 件分の埋め込みドキュメント。
type ServiceDocument struct {
	Title     string   `bson:"title"`
	PriceFrom int      `bson:"priceFrom"`
	Duration  string   `bson:"duration,omitempty"`
	Bullets   []string `bson:"bullets,omitempty"`
}

// ReviewDocument はプロフィールに埋め込まれた口コミ 1 件分。
type ReviewDocument struct {
	Name     string   `bson:"name"`
	Location string   `bson:"location,omitempty"`
	Stars    float64  `bson:"stars"`
	Date     string   `bson:"date,omitempty"`
	Text     string   `bson:"text,omitempty"`
	Verified bool     `bson:"verified,omitempty"`
	Photos   []string `bson:"photos,omitempty"`
}

// HoursDocument は週間営業時間表の 1 行。
type HoursDocument struct {
	Day   string `bson:"day"`
	Hours string `bson:"hours"`
}
