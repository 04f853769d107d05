package assets

import (
	"fmt"
	"net/url"
	"strconv"
)

// ResizeURL appends the w, h and q query parameters understood by the image
// CDN. Zero values are left out and quality is clamped to 1..100. Existing
// query parameters are kept.
func ResizeURL(raw string, width, height, quality int) (string, error) {
	if width < 0 || height < 0 {
		return "", fmt.Errorf("resize %q: negative dimensions", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("resize %q: %w", raw, err)
	}

	q := u.Query()
	if width > 0 {
		q.Set("w", strconv.Itoa(width))
	}
	if height > 0 {
		q.Set("h", strconv.Itoa(height))
	}
	if quality != 0 {
		q.Set("q", strconv.Itoa(min(max(quality, 1), 100)))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
