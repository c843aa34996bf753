package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/interfaces/http/common"
	"github.com/sngm3741/shopfront/internal/public/domain"
	"github.com/sngm3741/shopfront/internal/ui"
)

const pageTimeout = 5 * time.Second

func (h *Handler) homeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pageTimeout)
		defer cancel()

		page, err := ui.NewHomePage(ctx, h.assets)
		if err != nil {
			h.logger.Error("home page build failed", zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to render page")
			return
		}
		h.render(w, http.StatusOK, ui.PageHome, page)
	}
}

func (h *Handler) shopHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pageTimeout)
		defer cancel()

		slug := strings.TrimSpace(chi.URLParam(r, "slug"))

		profile, err := h.profiles.Profile(ctx, slug)
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				h.logger.Info("shop profile not found", zap.String("slug", slug))
				h.render(w, http.StatusNotFound, ui.PageNotFound, ui.NotFoundPage{Slug: slug})
				return
			}
			h.logger.Error("shop profile fetch failed", zap.String("slug", slug), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load shop profile")
			return
		}

		page, err := ui.NewShopPage(ctx, *profile, h.assets)
		if err != nil {
			h.logger.Error("shop page build failed", zap.String("slug", slug), zap.Error(err))
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to render page")
			return
		}
		h.render(w, http.StatusOK, ui.PageShop, page)
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		h.logger.Error("template render failed", zap.String("page", name), zap.Error(err))
		common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to render page")
		return
	}
	common.WriteHTML(h.logger, w, status, body)
}
