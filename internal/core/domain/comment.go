package domain

// UnknownAuthor is recorded when a comment has no author channel ID.
const UnknownAuthor = "Unknown"

// RawComment is a top-level comment as returned by the comment source.
// It is immutable and lives only for the duration of one analysis.
type RawComment struct {
	// Text is the original, unformatted comment text.
	Text string

	// PublishedAt is the provider's timestamp string, kept verbatim
	// so downstream parsing sees the provider format.
	PublishedAt string

	// AuthorID is the author's channel ID, or UnknownAuthor.
	AuthorID string
}

// NewRawComment builds a RawComment, substituting UnknownAuthor for an
// empty author ID.
func NewRawComment(text, publishedAt, authorID string) RawComment {
	if authorID == "" {
		authorID = UnknownAuthor
	}
	return RawComment{
		Text:        text,
		PublishedAt: publishedAt,
		AuthorID:    authorID,
	}
}
