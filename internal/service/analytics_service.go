package service

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/kv"
)

const (
	maxRecentVisitors = 50
	maxTopPages       = 10
)

// TopPage ranks one page by view count.
type TopPage struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

// Visitor is one entry of the recent-visitor log.
type Visitor struct {
	IP        string    `json:"ip"`
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	UserAgent string    `json:"userAgent"`
}

// AnalyticsSnapshot is the full usage-counter state, persisted as one record.
type AnalyticsSnapshot struct {
	PageViews          int       `json:"pageViews"`
	UniqueVisitors     int       `json:"uniqueVisitors"`
	ResumeDownloads    int       `json:"resumeDownloads"`
	ContactSubmissions int       `json:"contactSubmissions"`
	TopPages           []TopPage `json:"topPages"`
	RecentVisitors     []Visitor `json:"recentVisitors"`
}

// AnalyticsService keeps low-fidelity usage counters and mirrors the whole
// snapshot into the key-value store after every mutation. Every page view
// counts as a new unique visitor; there is no deduplication, matching the
// site's original behaviour.
type AnalyticsService struct {
	store *kv.Store
	log   zerolog.Logger

	mu       sync.Mutex
	snapshot AnalyticsSnapshot
}

// NewAnalyticsService constructs the service, restoring a persisted snapshot
// when one exists. A corrupt snapshot resets counters to zero.
func NewAnalyticsService(store *kv.Store, log zerolog.Logger) *AnalyticsService {
	s := &AnalyticsService{store: store, log: log}

	var saved AnalyticsSnapshot
	found, err := store.GetJSON(kv.KeyAnalytics, &saved)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("resetting analytics, stored snapshot unreadable")
	case found:
		s.snapshot = saved
	}
	return s
}

// RecordPageView counts one view of page and logs the visitor.
func (s *AnalyticsService) RecordPageView(page, ip, userAgent string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneSnapshot(s.snapshot)
	next.PageViews++
	next.UniqueVisitors++
	next.RecentVisitors = prependVisitor(next.RecentVisitors, Visitor{
		IP:        ip,
		Page:      page,
		Timestamp: now,
		UserAgent: userAgent,
	})
	next.TopPages = bumpTopPages(next.TopPages, page)

	return s.commit(next)
}

// RecordResumeDownload counts one resume download.
func (s *AnalyticsService) RecordResumeDownload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneSnapshot(s.snapshot)
	next.ResumeDownloads++
	return s.commit(next)
}

// RecordContactSubmission counts one contact-form submission.
func (s *AnalyticsService) RecordContactSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneSnapshot(s.snapshot)
	next.ContactSubmissions++
	return s.commit(next)
}

// Snapshot returns a copy of the current counters.
func (s *AnalyticsService) Snapshot() AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snapshot)
}

// commit persists the candidate snapshot and only then makes it current, so
// counters in memory never run ahead of what storage holds.
func (s *AnalyticsService) commit(next AnalyticsSnapshot) error {
	if err := s.store.SetJSON(kv.KeyAnalytics, next); err != nil {
		return fmt.Errorf("persist analytics: %w", err)
	}
	s.snapshot = next
	return nil
}

func cloneSnapshot(in AnalyticsSnapshot) AnalyticsSnapshot {
	out := in
	out.TopPages = slices.Clone(in.TopPages)
	out.RecentVisitors = slices.Clone(in.RecentVisitors)
	return out
}

// prependVisitor keeps the log newest-first, evicting beyond the cap.
func prependVisitor(log []Visitor, v Visitor) []Visitor {
	out := make([]Visitor, 0, min(len(log)+1, maxRecentVisitors))
	out = append(out, v)
	for _, existing := range log {
		if len(out) == maxRecentVisitors {
			break
		}
		out = append(out, existing)
	}
	return out
}

// bumpTopPages counts one view of page, keeping the ranking sorted by views
// descending. The sort is stable so equal counts keep insertion order, and
// the list never exceeds the cap.
func bumpTopPages(pages []TopPage, page string) []TopPage {
	idx := slices.IndexFunc(pages, func(p TopPage) bool { return p.Page == page })
	if idx >= 0 {
		pages[idx].Views++
	} else {
		pages = append(pages, TopPage{Page: page, Views: 1})
	}

	slices.SortStableFunc(pages, func(a, b TopPage) int { return b.Views - a.Views })
	if len(pages) > maxTopPages {
		pages = pages[:maxTopPages]
	}
	return pages
}
