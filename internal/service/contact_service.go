package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sinha001/portfolio-server/internal/kv"
)

// Contact submission lifecycle states.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Derived priority tags.
const (
	ContactPriorityLow    = "low"
	ContactPriorityMedium = "medium"
	ContactPriorityHigh   = "high"
)

const webhookTimeout = 10 * time.Second

// ErrContactInvalidInput is returned when a submission fails validation.
var ErrContactInvalidInput = errors.New("invalid contact input")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is one stored contact-form message.
type ContactSubmission struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	Role         string    `json:"role,omitempty"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Technologies []string  `json:"technologies,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Read         bool      `json:"read"`
}

// ContactInput carries the submitted form fields.
type ContactInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Subject      string   `json:"subject"`
	Message      string   `json:"message"`
	Technologies []string `json:"technologies"`
}

// ContactFilter narrows the admin listing.
type ContactFilter struct {
	Search string
	Status string // "", "all", or one of the lifecycle states
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ContactService validates and stores contact submissions and forwards each
// one to the notification webhook. Storage always succeeds or fails before
// delivery is attempted; a webhook failure never loses the submission.
type ContactService struct {
	store      *kv.Store
	log        zerolog.Logger
	httpClient httpDoer
	webhookURL string

	mu sync.Mutex
}

// NewContactService constructs the service, seeding a small demo inbox the
// first time the site runs (the admin screen looks broken when empty).
func NewContactService(store *kv.Store, webhookURL string, log zerolog.Logger) *ContactService {
	s := &ContactService{
		store:      store,
		log:        log,
		httpClient: &http.Client{Timeout: webhookTimeout},
		webhookURL: strings.TrimSpace(webhookURL),
	}
	s.seedIfEmpty()
	return s
}

// SetHTTPClient replaces the webhook HTTP client, mainly for tests.
func (s *ContactService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: webhookTimeout}
		return
	}
	s.httpClient = client
}

// Submit validates, stores, and forwards one submission. The returned boolean
// reports whether webhook delivery succeeded; a false value with a nil error
// means the message is safely stored but the notification did not go out.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (ContactSubmission, bool, error) {
	if err := validateContactInput(input); err != nil {
		return ContactSubmission{}, false, err
	}

	submission := ContactSubmission{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Company:      strings.TrimSpace(input.Company),
		Role:         strings.TrimSpace(input.Role),
		Subject:      strings.TrimSpace(input.Subject),
		Message:      strings.TrimSpace(input.Message),
		Technologies: slices.Clone(input.Technologies),
		Timestamp:    time.Now().UTC(),
		Status:       ContactStatusNew,
		Priority:     derivePriority(input.Subject),
	}

	if err := s.append(submission); err != nil {
		return ContactSubmission{}, false, err
	}

	delivered := true
	if err := s.forward(ctx, submission); err != nil {
		s.log.Warn().Err(err).Str("submission", submission.ID).Msg("contact webhook delivery failed")
		delivered = false
	}
	return submission, delivered, nil
}

// List returns submissions newest-first, filtered by search term and status.
func (s *ContactService) List(filter ContactFilter) ([]ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	status := strings.TrimSpace(filter.Status)

	out := make([]ContactSubmission, 0, len(all))
	for _, c := range all {
		if status != "" && status != "all" && c.Status != status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.Subject), search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// MarkRead flips a submission to read. An unknown id is a no-op.
func (s *ContactService) MarkRead(id string) error {
	return s.mutate(id, func(c *ContactSubmission) {
		c.Status = ContactStatusRead
		c.Read = true
	})
}

// MarkReplied flips a submission to replied. An unknown id is a no-op.
func (s *ContactService) MarkReplied(id string) error {
	return s.mutate(id, func(c *ContactSubmission) {
		c.Status = ContactStatusReplied
		c.Read = true
	})
}

// Delete removes a submission. An unknown id is a no-op.
func (s *ContactService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked()
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(all, func(c ContactSubmission) bool { return c.ID == id })
	return s.saveLocked(kept)
}

func (s *ContactService) mutate(id string, apply func(*ContactSubmission)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(all, func(c ContactSubmission) bool { return c.ID == id })
	if idx < 0 {
		return nil
	}
	apply(&all[idx])
	return s.saveLocked(all)
}

func (s *ContactService) append(submission ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked()
	if err != nil {
		return err
	}
	return s.saveLocked(append([]ContactSubmission{submission}, all...))
}

func (s *ContactService) loadLocked() ([]ContactSubmission, error) {
	var all []ContactSubmission
	found, err := s.store.GetJSON(kv.KeyContacts, &all)
	if err != nil {
		// A corrupt inbox is reported but treated as empty rather than
		// blocking new submissions.
		s.log.Warn().Err(err).Msg("stored contacts unreadable, treating as empty")
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return all, nil
}

func (s *ContactService) saveLocked(all []ContactSubmission) error {
	if all == nil {
		all = []ContactSubmission{}
	}
	if err := s.store.SetJSON(kv.KeyContacts, all); err != nil {
		return fmt.Errorf("persist contacts: %w", err)
	}
	return nil
}

// forward posts the submission to the notification webhook. Any non-2xx
// response or transport error is a delivery failure; there is no retry.
func (s *ContactService) forward(ctx context.Context, submission ContactSubmission) error {
	if s.webhookURL == "" {
		return nil
	}

	payload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

func validateContactInput(input ContactInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrContactInvalidInput)
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrContactInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: email is malformed", ErrContactInvalidInput)
	}
	if strings.TrimSpace(input.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrContactInvalidInput)
	}
	if strings.TrimSpace(input.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrContactInvalidInput)
	}
	return nil
}

// derivePriority tags a submission by how urgent its subject usually is.
func derivePriority(subject string) string {
	switch strings.TrimSpace(subject) {
	case "job-opportunity", "freelance-project":
		return ContactPriorityHigh
	case "collaboration", "consultation":
		return ContactPriorityMedium
	default:
		return ContactPriorityLow
	}
}

// seedIfEmpty installs a few demo submissions on first run.
func (s *ContactService) seedIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found, err := s.store.Get(kv.KeyContacts)
	if err != nil || found {
		return
	}

	now := time.Now().UTC()
	samples := []ContactSubmission{
		{
			ID:        uuid.New().String(),
			Name:      "John Smith",
			Email:     "john.smith@techcorp.com",
			Company:   "TechCorp Inc.",
			Role:      "hiring-manager",
			Subject:   "job-opportunity",
			Message:   "Hi Nishant, we have an exciting full-stack developer position that would be perfect for your skills. Would you be interested in discussing this opportunity?",
			Timestamp: now.Add(-2 * time.Hour),
			Status:    ContactStatusNew,
			Priority:  ContactPriorityHigh,
		},
		{
			ID:        uuid.New().String(),
			Name:      "Sarah Johnson",
			Email:     "sarah@startup.io",
			Company:   "StartupIO",
			Role:      "founder",
			Subject:   "freelance-project",
			Message:   "We need help with automation workflows for our business processes. Your Make.com expertise would be invaluable.",
			Timestamp: now.Add(-5 * time.Hour),
			Status:    ContactStatusRead,
			Priority:  ContactPriorityMedium,
			Read:      true,
		},
		{
			ID:        uuid.New().String(),
			Name:      "Mike Chen",
			Email:     "mike.chen@devconf.com",
			Company:   "DevConf",
			Role:      "other",
			Subject:   "speaking",
			Message:   "Would you be interested in speaking at our upcoming developer conference about automation and full-stack development?",
			Timestamp: now.Add(-24 * time.Hour),
			Status:    ContactStatusReplied,
			Priority:  ContactPriorityLow,
			Read:      true,
		},
	}

	if err := s.saveLocked(samples); err != nil {
		s.log.Warn().Err(err).Msg("failed to seed demo contacts")
	}
}
