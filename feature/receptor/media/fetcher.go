package media

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"post-receptor/core/utils"

	"github.com/gofiber/fiber/v2"
)

// ErrNotImage is returned when the fetched resource is not an image.
var ErrNotImage = errors.New("resource is not an image")

// Download is a fetched remote file.
type Download struct {
	Data        []byte
	ContentType string
	FileName    string
}

// Fetcher downloads a remote resource.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Download, error)
}

// HTTPFetcher downloads images with the Fiber client.
type HTTPFetcher struct {
	timeout  time.Duration
	maxBytes int
}

// NewHTTPFetcher creates a fetcher with a per request timeout and a body cap.
func NewHTTPFetcher(timeout time.Duration, maxBytes int) *HTTPFetcher {
	return &HTTPFetcher{timeout: timeout, maxBytes: maxBytes}
}

// Fetch implements Fetcher. The timeout is the shorter of the configured one
// and the context deadline.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Download, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid image url %q", rawURL)
	}

	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			return nil, ctx.Err()
		}
		if timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	agent := fiber.Get(rawURL)
	agent.MaxRedirectsCount(5)
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)
	agent.SetResponse(resp)

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}
	if f.maxBytes > 0 {
		agent.MaxResponseBodySize = f.maxBytes
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", rawURL, code)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("failed to fetch %s: empty body", rawURL)
	}
	if f.maxBytes > 0 && len(body) > f.maxBytes {
		return nil, fmt.Errorf("failed to fetch %s: body exceeds %d bytes", rawURL, f.maxBytes)
	}

	contentType := string(resp.Header.ContentType())
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(body)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, contentType)
	}

	return &Download{
		Data:        body,
		ContentType: contentType,
		FileName:    fileName(u.Path, contentType),
	}, nil
}

// fileName derives a safe file name from the url path.
func fileName(urlPath, contentType string) string {
	base := path.Base(urlPath)
	ext := strings.ToLower(path.Ext(base))
	name := utils.Slugify(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "image"
	}
	if ext == "" || len(ext) > 5 {
		ext = ""
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return name + ext
}
