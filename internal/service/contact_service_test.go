package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

type countingDoer struct {
	calls atomic.Int64
	fail  bool
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls.Add(1)
	if d.fail {
		return nil, errors.New("connection refused")
	}
	rec := httptest.NewRecorder()
	rec.WriteHeader(http.StatusOK)
	return rec.Result(), nil
}

func validContactInput() ContactInput {
	return ContactInput{
		Name:    "Jane Doe",
		Email:   "jane@company.com",
		Subject: "job-opportunity",
		Message: "We would like to talk.",
	}
}

func TestSubmitValidatesBeforeWebhook(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContactService(store, "https://example.com/hook", zerolog.Nop())
	doer := &countingDoer{}
	svc.SetHTTPClient(doer)

	input := validContactInput()
	input.Message = ""
	if _, _, err := svc.Submit(context.Background(), input); !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected validation error for empty message, got %v", err)
	}

	input = validContactInput()
	input.Email = "not-an-email"
	if _, _, err := svc.Submit(context.Background(), input); !errors.Is(err, ErrContactInvalidInput) {
		t.Fatalf("expected validation error for bad email, got %v", err)
	}

	if doer.calls.Load() != 0 {
		t.Fatalf("webhook must not be called for invalid input, got %d calls", doer.calls.Load())
	}
}

func TestSubmitStoresAndForwards(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContactService(store, "https://example.com/hook", zerolog.Nop())
	doer := &countingDoer{}
	svc.SetHTTPClient(doer)

	submission, delivered, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !delivered {
		t.Fatalf("expected delivery to succeed")
	}
	if doer.calls.Load() != 1 {
		t.Fatalf("expected one webhook call, got %d", doer.calls.Load())
	}
	if submission.Status != ContactStatusNew {
		t.Fatalf("expected new status, got %s", submission.Status)
	}
	if submission.Priority != ContactPriorityHigh {
		t.Fatalf("job-opportunity should derive high priority, got %s", submission.Priority)
	}

	all, err := svc.List(ContactFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) == 0 || all[0].ID != submission.ID {
		t.Fatalf("submission not stored newest-first: %+v", all)
	}
}

func TestSubmitKeepsSubmissionWhenWebhookFails(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContactService(store, "https://example.com/hook", zerolog.Nop())
	svc.SetHTTPClient(&countingDoer{fail: true})

	submission, delivered, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("submit must survive webhook failure: %v", err)
	}
	if delivered {
		t.Fatalf("expected delivery failure to be reported")
	}

	all, err := svc.List(ContactFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) == 0 || all[0].ID != submission.ID {
		t.Fatalf("submission lost on webhook failure")
	}
}

func TestDerivePriority(t *testing.T) {
	cases := map[string]string{
		"job-opportunity":   ContactPriorityHigh,
		"freelance-project": ContactPriorityHigh,
		"collaboration":     ContactPriorityMedium,
		"consultation":      ContactPriorityMedium,
		"speaking":          ContactPriorityLow,
		"other":             ContactPriorityLow,
		"":                  ContactPriorityLow,
	}
	for subject, want := range cases {
		if got := derivePriority(subject); got != want {
			t.Fatalf("derivePriority(%q) = %s, want %s", subject, got, want)
		}
	}
}

func TestListFilters(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	// The constructor seeds three demo submissions with mixed statuses.
	svc := NewContactService(store, "", zerolog.Nop())

	newOnly, err := svc.List(ContactFilter{Status: ContactStatusNew})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, c := range newOnly {
		if c.Status != ContactStatusNew {
			t.Fatalf("status filter leaked %s", c.Status)
		}
	}
	if len(newOnly) != 1 {
		t.Fatalf("expected 1 new submission in seed data, got %d", len(newOnly))
	}

	matched, err := svc.List(ContactFilter{Search: "SARAH"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(matched) != 1 || matched[0].Name != "Sarah Johnson" {
		t.Fatalf("case-insensitive search failed: %+v", matched)
	}
}

func TestMarkAndDelete(t *testing.T) {
	store, cleanup := setupKVStore(t)
	defer cleanup()

	svc := NewContactService(store, "", zerolog.Nop())

	all, err := svc.List(ContactFilter{})
	if err != nil || len(all) == 0 {
		t.Fatalf("expected seeded submissions: %v", err)
	}
	target := all[len(all)-1]

	if err := svc.MarkRead(target.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if err := svc.MarkReplied(target.ID); err != nil {
		t.Fatalf("mark replied failed: %v", err)
	}

	refreshed, _ := svc.List(ContactFilter{})
	for _, c := range refreshed {
		if c.ID == target.ID && (c.Status != ContactStatusReplied || !c.Read) {
			t.Fatalf("status transition not persisted: %+v", c)
		}
	}

	// Unknown ids are no-ops.
	if err := svc.MarkRead("does-not-exist"); err != nil {
		t.Fatalf("mark read on unknown id must be a no-op: %v", err)
	}
	if err := svc.Delete("does-not-exist"); err != nil {
		t.Fatalf("delete on unknown id must be a no-op: %v", err)
	}

	if err := svc.Delete(target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	remaining, _ := svc.List(ContactFilter{})
	if len(remaining) != len(all)-1 {
		t.Fatalf("expected %d submissions after delete, got %d", len(all)-1, len(remaining))
	}
}
