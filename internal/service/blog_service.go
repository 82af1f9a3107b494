package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/catalog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	feedSanitizer = bluemonday.UGCPolicy()
)

const feedTimeout = 10 * time.Second

// BlogListing is the blog page payload.
type BlogListing struct {
	Posts    []catalog.BlogPost `json:"posts"`
	Fallback bool               `json:"fallback"`
}

// feedResponse matches the rss2json bridge shape.
type feedResponse struct {
	Status string `json:"status"`
	Items  []struct {
		Title       string   `json:"title"`
		Link        string   `json:"link"`
		PubDate     string   `json:"pubDate"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Categories  []string `json:"categories"`
		Author      string   `json:"author"`
		Thumbnail   string   `json:"thumbnail"`
	} `json:"items"`
}

// BlogService fetches the author's feed through an RSS-to-JSON bridge,
// falling back to the stored post list when the feed is unavailable. Feed
// HTML is sanitized before it reaches any page.
type BlogService struct {
	content    *ContentService
	log        zerolog.Logger
	httpClient httpDoer
	feedURL    string
}

// NewBlogService constructs the service.
func NewBlogService(content *ContentService, feedURL string, log zerolog.Logger) *BlogService {
	return &BlogService{
		content:    content,
		log:        log,
		httpClient: &http.Client{Timeout: feedTimeout},
		feedURL:    strings.TrimSpace(feedURL),
	}
}

// SetHTTPClient replaces the feed HTTP client, mainly for tests.
func (s *BlogService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: feedTimeout}
		return
	}
	s.httpClient = client
}

// Fetch returns the live feed when reachable, the stored fallback otherwise.
// A feed problem is never an error to the caller; the listing just flags that
// fallback content is being served.
func (s *BlogService) Fetch(ctx context.Context) BlogListing {
	posts, err := s.fetchFeed(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("serving fallback blog posts")
		return BlogListing{Posts: s.content.BlogPosts(), Fallback: true}
	}
	return BlogListing{Posts: posts}
}

func (s *BlogService) fetchFeed(ctx context.Context) ([]catalog.BlogPost, error) {
	if s.feedURL == "" {
		return nil, fmt.Errorf("no feed url configured")
	}

	ctx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if feed.Status != "ok" {
		return nil, fmt.Errorf("feed status %q", feed.Status)
	}

	posts := make([]catalog.BlogPost, 0, len(feed.Items))
	for _, item := range feed.Items {
		posts = append(posts, catalog.BlogPost{
			Title:       item.Title,
			Link:        item.Link,
			PubDate:     item.PubDate,
			Description: feedSanitizer.Sanitize(item.Description),
			Content:     feedSanitizer.Sanitize(item.Content),
			Categories:  item.Categories,
			Author:      item.Author,
			Thumbnail:   item.Thumbnail,
		})
	}
	return posts, nil
}

// Search filters posts by a case-insensitive term over title and description
// and by category. Category "All" or "" matches everything.
func (s *BlogService) Search(posts []catalog.BlogPost, term, category string) []catalog.BlogPost {
	term = strings.ToLower(strings.TrimSpace(term))
	category = strings.TrimSpace(category)

	out := make([]catalog.BlogPost, 0, len(posts))
	for _, post := range posts {
		if term != "" &&
			!strings.Contains(strings.ToLower(post.Title), term) &&
			!strings.Contains(strings.ToLower(post.Description), term) {
			continue
		}
		if category != "" && category != "All" && !slices.Contains(post.Categories, category) {
			continue
		}
		out = append(out, post)
	}
	return out
}

// Categories returns the distinct categories across posts, "All" first, in
// first-seen order.
func (s *BlogService) Categories(posts []catalog.BlogPost) []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, post := range posts {
		for _, c := range post.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// RenderContent converts stored markdown post content to sanitized HTML.
func (s *BlogService) RenderContent(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render post content: %w", err)
	}
	return template.HTML(feedSanitizer.SanitizeBytes(buf.Bytes())), nil
}
