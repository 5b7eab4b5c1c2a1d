package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/satya-labs/satya-cli/internal/core/domain"
)

// videoIDPattern matches an 11-character YouTube video ID.
var videoIDPattern = regexp.MustCompile(`^[\w-]{11}$`)

// ParseVideoID extracts the video ID from ref.
//
// Accepted forms:
//   - dQw4w9WgXcQ
//   - https://www.youtube.com/watch?v=dQw4w9WgXcQ
//   - https://m.youtube.com/watch?v=dQw4w9WgXcQ&t=42
//   - https://youtu.be/dQw4w9WgXcQ
//   - https://www.youtube.com/shorts/dQw4w9WgXcQ
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: video ID is required", domain.ErrInvalidInput)
	}
	if videoIDPattern.MatchString(ref) {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not a YouTube video ID or URL", domain.ErrInvalidInput, ref)
	}

	var id string
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		} else if rest, ok := strings.CutPrefix(u.Path, "/shorts/"); ok {
			id = strings.TrimSuffix(rest, "/")
		}
	case "youtu.be":
		id = strings.TrimSuffix(strings.TrimPrefix(u.Path, "/"), "/")
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q is not a YouTube video ID or URL", domain.ErrInvalidInput, ref)
	}
	return id, nil
}
