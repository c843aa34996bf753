package application

import (
	"context"

	"github.com/sngm3741/shopfront/internal/public/domain"
)

// ProfileRepository abstracts read access to shop profiles.
// ProfileRepository は Public コンテキストで店舗プロフィールを読み取るためのポート。
type ProfileRepository interface {
	// Lookup returns the profile for slug, or an error wrapping domain.ErrProfileNotFound.
	Lookup(ctx context.Context, slug string) (*domain.ShopProfile, error)
}

// ProfileQueryService describes profile read use-cases.
// ProfileQueryService は店舗ページ描画用のプロフィール参照ユースケースを提供するリーダーモデル。
type ProfileQueryService interface {
	Profile(ctx context.Context, slug string) (*domain.ShopProfile, error)
}
