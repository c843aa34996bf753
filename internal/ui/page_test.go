package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/shopfront/internal/assets"
	"github.com/sngm3741/shopfront/internal/infrastructure/memory"
	"github.com/sngm3741/shopfront/internal/public/domain"
)

type failingResolver struct{}

func (failingResolver) Resolve(context.Context, assets.Image) (assets.Source, error) {
	return assets.Source{}, errors.New("bucket unavailable")
}

func renderShop(t *testing.T, p domain.ShopProfile) *goquery.Document {
	t.Helper()
	page, err := NewShopPage(context.Background(), p, assets.NewPathResolver(""))
	require.NoError(t, err)

	r, err := NewRenderer()
	require.NoError(t, err)
	body, err := r.Render(PageShop, page)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	return doc
}

func TestShopPageMeta(t *testing.T) {
	doc := renderShop(t, memory.Fixture())

	assert.Equal(t, "Precision Auto Detailing", doc.Find("h1").Text())
	assert.Equal(t, "4.9", doc.Find(`[data-role="rating"]`).Text())
	assert.Equal(t, "Open", doc.Find(`[data-role="open-state"]`).Text())
	assert.Equal(t, 3, doc.Find(`[data-role="badges"] > span`).Length())
	assert.True(t, doc.Find(`[data-role="badges"] > span`).First().HasClass("text-emerald-700"))

	label, _ := doc.Find(`[data-section="meta"] [aria-label]`).Attr("aria-label")
	assert.Equal(t, "4.9 stars", label)
	assert.Equal(t, 5, doc.Find(`[data-section="meta"] svg[data-filled="true"]`).Length())
}

func TestShopPageGallery(t *testing.T) {
	p := memory.Fixture()
	doc := renderShop(t, p)

	cover, _ := doc.Find(`[data-role="cover"] img`).Attr("src")
	assert.Equal(t, "/detail-foam.jpg", cover)
	priority, _ := doc.Find(`[data-role="cover"] img`).Attr("fetchpriority")
	assert.Equal(t, "high", priority)

	var thumbs []string
	doc.Find(`[data-role="thumbnails"] img`).Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		thumbs = append(thumbs, src)
	})
	assert.Equal(t, []string{"/car-detailing-1.jpg", "/shine-shop.webp", "/interior-steam.webp"}, thumbs)
	assert.Contains(t, doc.Text(), "View all photos (5)")
}

func TestShopPageGalleryWithFewPhotos(t *testing.T) {
	p := memory.Fixture()
	p.Gallery = []string{"/only.jpg"}
	doc := renderShop(t, p)

	assert.Equal(t, 0, doc.Find(`[data-role="thumbnails"] img`).Length())
	assert.Contains(t, doc.Text(), "View all photos (1)")
}

func TestShopPageServices(t *testing.T) {
	p := memory.Fixture()
	doc := renderShop(t, p)

	cards := doc.Find(`[data-role="service"]`)
	require.Equal(t, len(p.Services), cards.Length())
	cards.Each(func(i int, card *goquery.Selection) {
		svc := p.Services[i]
		assert.Equal(t, svc.Title, card.Find("h3").Text())
		assert.Equal(t, FormatPrice(svc.PriceFrom), card.Find(`[data-role="price"]`).Text())

		var bullets []string
		card.Find("li").Each(func(_ int, li *goquery.Selection) {
			bullets = append(bullets, li.Text())
		})
		assert.Equal(t, svc.Bullets, bullets)
	})
}

func TestShopPageReviews(t *testing.T) {
	doc := renderShop(t, memory.Fixture())

	reviews := doc.Find(`[data-role="review"]`)
	require.Equal(t, 2, reviews.Length())

	first := reviews.Eq(0)
	var photos []string
	first.Find(`[data-role="review-photos"] img`).Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		photos = append(photos, src)
	})
	assert.Equal(t, []string{"/images/rev-1a.jpg", "/images/rev-1b.jpg"}, photos)
	assert.Equal(t, 0, first.Find(`[data-role="verified"]`).Length())

	second := reviews.Eq(1)
	assert.Equal(t, 0, second.Find(`[data-role="review-photos"]`).Length())
	assert.Equal(t, 0, second.Find("img").Length())
	assert.Equal(t, 1, second.Find(`[data-role="verified"]`).Length())
}

func TestShopPageClampsReviewStars(t *testing.T) {
	p := memory.Fixture()
	p.Reviews = []domain.Review{{Name: "Loud", Stars: 11}, {Name: "Grumpy", Stars: -4}}
	doc := renderShop(t, p)

	reviews := doc.Find(`[data-role="review"]`)
	assert.Equal(t, 5, reviews.Eq(0).Find("svg").Length())
	assert.Equal(t, 5, reviews.Eq(0).Find(`svg[data-filled="true"]`).Length())
	assert.Equal(t, 5, reviews.Eq(1).Find("svg").Length())
	assert.Equal(t, 0, reviews.Eq(1).Find(`svg[data-filled="true"]`).Length())
}

func TestShopPageTabsAndForms(t *testing.T) {
	doc := renderShop(t, memory.Fixture())

	tabs := doc.Find(`[data-role="tabs"] a`)
	assert.Equal(t, 5, tabs.Length())
	current, ok := tabs.First().Attr("aria-current")
	assert.True(t, ok)
	assert.Equal(t, "true", current)
	assert.Equal(t, 1, doc.Find(`[data-role="tabs"] a[aria-current]`).Length())

	for _, scope := range []string{`[data-role="quick-request"]`, `[data-role="request-bar"]`} {
		form := doc.Find(scope)
		options := form.Find("select option")
		assert.Equal(t, 4, options.Length(), scope)
		_, disabled := options.First().Attr("disabled")
		assert.True(t, disabled, scope)
		assert.Equal(t, 2, form.Find("input").Length(), scope)
	}
	submit := doc.Find(`[data-role="quick-request"] button`)
	assert.Equal(t, "submit", submit.AttrOr("type", ""))
}

func TestShopPageServingAndHours(t *testing.T) {
	doc := renderShop(t, memory.Fixture())

	assert.Contains(t, doc.Find(`[data-role="serving"]`).Text(), "Fairfax · Chantilly · Centreville")
	rows := doc.Find(`[data-role="hours"] > div`)
	assert.Equal(t, 7, rows.Length())
	assert.Equal(t, "SunClosed", rows.Last().Text())
}

func TestNewShopPageErrors(t *testing.T) {
	p := memory.Fixture()
	p.Gallery = nil
	_, err := NewShopPage(context.Background(), p, assets.NewPathResolver(""))
	assert.Error(t, err)

	_, err = NewShopPage(context.Background(), memory.Fixture(), failingResolver{})
	assert.Error(t, err)
}

func TestHomePage(t *testing.T) {
	page, err := NewHomePage(context.Background(), assets.NewPathResolver("/static"))
	require.NoError(t, err)

	r, err := NewRenderer()
	require.NoError(t, err)
	body, err := r.Render(PageHome, page)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	require.NoError(t, err)
	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	assert.Equal(t, "/static/project-foam.png", img.AttrOr("src", ""))
	assert.Equal(t, "1080", img.AttrOr("width", ""))
	assert.Equal(t, "1080", img.AttrOr("height", ""))
	assert.Equal(t, "eager", img.AttrOr("loading", ""))
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	_, err = r.Render("missing", nil)
	assert.Error(t, err)
}
