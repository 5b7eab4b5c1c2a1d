package youtube

import (
	"context"
	"fmt"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/satya-labs/satya-cli/internal/core/domain"
	"github.com/satya-labs/satya-cli/internal/core/ports/driven"
	"github.com/satya-labs/satya-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.CommentSource = (*Fetcher)(nil)

// threadParts are the resource parts requested from commentThreads.list.
var threadParts = []string{"snippet"}

// Fetcher reads top-level comments for a video.
// It is safe for concurrent use; all fetches share one rate limiter.
type Fetcher struct {
	svc     *ytapi.Service
	config  *Config
	limiter *RateLimiter
}

// NewFetcher creates a fetcher. A nil config uses DefaultConfig.
// Limits above the provider caps are clamped.
func NewFetcher(svc *ytapi.Service, cfg *Config) *Fetcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.normalise()
	return &Fetcher{
		svc:     svc,
		config:  cfg,
		limiter: NewRateLimiter(cfg.RateLimit),
	}
}

// ParseVideoID implements driven.VideoIDParser.
func (f *Fetcher) ParseVideoID(ref string) (string, error) {
	return ParseVideoID(ref)
}

// Fetch returns up to MaxComments top-level comments in API order.
// A video with no comments returns an empty slice and no error.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) ([]domain.RawComment, error) {
	logger.Section("Fetch Comments")
	defer logger.Timed("fetch")()

	limit := f.config.MaxComments
	comments := make([]domain.RawComment, 0, min(limit, f.config.PageSize))
	pageToken := ""
	pages := 0

	for len(comments) < limit {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
		}

		want := min(f.config.PageSize, limit-len(comments))
		call := f.svc.CommentThreads.List(threadParts).
			VideoId(videoID).
			MaxResults(int64(want)).
			TextFormat("plainText").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			logger.Debug("page %d failed: %v", pages+1, err)
			return nil, WrapError(err)
		}
		pages++

		before := len(comments)
		for _, thread := range resp.Items {
			if len(comments) >= limit {
				break
			}
			if c, ok := commentFromThread(thread); ok {
				comments = append(comments, c)
			}
		}
		logger.Debug("page %d: %d threads, %d comments total", pages, len(resp.Items), len(comments))

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
		if len(comments) == before {
			logger.Warn("page %d of %s had no comments but a next page token; stopping", pages, videoID)
			break
		}
	}

	logger.Info("fetched %d comments for %s in %d pages", len(comments), videoID, pages)
	return comments, nil
}

// commentFromThread extracts the top-level comment of a thread.
func commentFromThread(thread *ytapi.CommentThread) (domain.RawComment, bool) {
	if thread == nil || thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
		return domain.RawComment{}, false
	}
	s := thread.Snippet.TopLevelComment.Snippet
	if s == nil {
		return domain.RawComment{}, false
	}

	var author string
	if s.AuthorChannelId != nil {
		author = s.AuthorChannelId.Value
	}
	return domain.NewRawComment(s.TextOriginal, s.PublishedAt, author), true
}
