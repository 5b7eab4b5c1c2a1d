// Package youtube fetches top-level video comments from the YouTube Data API v3.
//
// The package contains:
//   - Fetcher, the comment source used by the analysis pipeline
//   - ParseVideoID to accept bare IDs and watch or short URLs
//   - Service factories that authenticate with an API key or an OAuth token
//   - Error mapping from API error reasons to domain failures
//   - Rate limiting of page requests
//
// # Usage
//
//	svc, err := youtube.NewService(ctx, youtube.Credentials{APIKey: key})
//	fetcher := youtube.NewFetcher(svc, youtube.DefaultConfig())
//	comments, err := fetcher.Fetch(ctx, videoID)
//
// A fetch pages through commentThreads.list until the comment cap is
// reached or no further page token is returned. The first failing page
// aborts the whole fetch; nothing is retried.
package youtube
