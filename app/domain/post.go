package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Preview lengths used on the front page. The featured post gets a longer
// excerpt than the regular grid entries.
const (
	FeaturedPreviewLength = 200
	RegularPreviewLength  = 150
)

// Post is a markdown blog post authored by a registered profile.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`

	// Author is populated on reads that join the profile table.
	Author *Profile `json:"author,omitempty"`
}

// NewPost creates a published post with validation.
func NewPost(authorID, title, content string) (*Post, error) {
	title = strings.TrimSpace(title)
	if authorID == "" {
		return nil, fmt.Errorf("author id is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		Published: true,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Preview returns the first n runes of the post content followed by an
// ellipsis. Content shorter than n is returned unchanged.
func (p *Post) Preview(n int) string {
	runes := []rune(p.Content)
	if len(runes) <= n {
		return p.Content
	}
	return string(runes[:n]) + "..."
}

// FrontPage is the home page partition of the published post list: the newest
// post is featured, the remainder fill the regular grid.
type FrontPage struct {
	Featured *Post  `json:"featured,omitempty"`
	Posts    []*Post `json:"posts"`
}

// SplitFeatured partitions posts (assumed newest-first) into a front page.
func SplitFeatured(posts []*Post) FrontPage {
	if len(posts) == 0 {
		return FrontPage{Posts: []*Post{}}
	}
	return FrontPage{
		Featured: posts[0],
		Posts:    posts[1:],
	}
}

// AuthorPage is the profile view: the author's profile plus their published
// posts, newest first.
type AuthorPage struct {
	Profile *Profile `json:"profile"`
	Posts   []*Post  `json:"posts"`
}
