// Package assets turns image references from profile records into URLs the browser can load.
// Image bytes are never read here; sizing, caching and lazy loading belong to whatever serves the URL.
package assets

import (
	"context"
	"strings"
)

// Image describes how a page wants to show one picture.
type Image struct {
	Path     string
	Alt      string
	Width    int
	Height   int
	Priority bool
	Sizes    string
	// Fill stretches the image over its positioned parent instead of using intrinsic dimensions.
	Fill  bool
	Class string
}

// Source is an Image with its URL resolved.
type Source struct {
	Image
	URL string
}

// Loading returns the value of the img loading attribute.
func (s Source) Loading() string {
	if s.Priority {
		return "eager"
	}
	return "lazy"
}

// FetchPriority returns the value of the img fetchpriority attribute.
func (s Source) FetchPriority() string {
	if s.Priority {
		return "high"
	}
	return "auto"
}

// Resolver maps an Image to a loadable Source.
type Resolver interface {
	Resolve(ctx context.Context, img Image) (Source, error)
}

// PathResolver prefixes image paths with a base URL.
type PathResolver struct {
	baseURL string
}

// NewPathResolver returns a resolver rooted at baseURL. An empty base leaves paths untouched.
func NewPathResolver(baseURL string) *PathResolver {
	return &PathResolver{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// Resolve joins the base URL and the image path. Absolute URLs pass through.
func (r *PathResolver) Resolve(_ context.Context, img Image) (Source, error) {
	return Source{Image: img, URL: joinURL(r.baseURL, img.Path)}, nil
}

func joinURL(base, path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// objectKey turns an image path into a bucket key.
func objectKey(prefix, path string) string {
	key := strings.TrimLeft(strings.TrimSpace(path), "/")
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
