package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/folio-dev/folio/internal/contact"
	"github.com/folio-dev/folio/internal/db"
)

type recorder struct {
	mu   sync.Mutex
	got  []Notification
	code int
}

func (rec *recorder) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		var n Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			t.Errorf("decoding: %v", err)
		}
		rec.mu.Lock()
		rec.got = append(rec.got, n)
		code := rec.code
		rec.mu.Unlock()
		if code == 0 {
			code = http.StatusNoContent
		}
		w.WriteHeader(code)
	})
}

func (rec *recorder) all() []Notification {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]Notification(nil), rec.got...)
}

func testSubmission() contact.Submission {
	return contact.Submission{
		ID:        "sub-1",
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Nice portfolio",
	}
}

func TestDispatchAllWebhooks(t *testing.T) {
	var a, b recorder
	sa := httptest.NewServer(a.handler(t))
	defer sa.Close()
	sb := httptest.NewServer(b.handler(t))
	defer sb.Close()

	d := NewDispatcher([]string{sa.URL, sb.URL}, nil)
	if err := d.Dispatch(context.Background(), FromSubmission(testSubmission())); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	for name, rec := range map[string]*recorder{"a": &a, "b": &b} {
		got := rec.all()
		if len(got) != 1 {
			t.Fatalf("%s: got %d deliveries, want 1", name, len(got))
		}
		if got[0].Kind != KindContactReceived || got[0].ReplyTo != "ada@example.com" || got[0].Title != "Hello" {
			t.Errorf("%s: unexpected payload %+v", name, got[0])
		}
	}
}

func TestDispatchReportsFailureButTriesEveryHook(t *testing.T) {
	bad := recorder{code: http.StatusInternalServerError}
	var good recorder
	sbad := httptest.NewServer(bad.handler(t))
	defer sbad.Close()
	sgood := httptest.NewServer(good.handler(t))
	defer sgood.Close()

	d := NewDispatcher([]string{sbad.URL, sgood.URL}, nil)
	if err := d.Dispatch(context.Background(), FromSubmission(testSubmission())); err == nil {
		t.Fatal("expected error from failing webhook")
	}
	if len(good.all()) != 1 {
		t.Error("second webhook was not tried")
	}
}

func TestNotifyWithoutWebhooks(t *testing.T) {
	d := NewDispatcher(nil, nil)
	d.Notify(testSubmission())
	d.Wait()
}

func TestStoreNotifiesOnSave(t *testing.T) {
	var rec recorder
	srv := httptest.NewServer(rec.handler(t))
	defer srv.Close()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	d := NewDispatcher([]string{srv.URL}, nil)
	store := contact.NewStore(database)
	store.SetNotifier(d)

	res, err := store.Submit(context.Background(), contact.Form{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there",
	})
	if err != nil || !res.Success {
		t.Fatalf("Submit = %+v, %v", res, err)
	}
	d.Wait()

	got := rec.all()
	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if got[0].From != "Ada" || got[0].ID == "" {
		t.Errorf("unexpected notification %+v", got[0])
	}

	// Rejected forms are not stored and not announced.
	if res, _ := store.Submit(context.Background(), contact.Form{Name: "x"}); res.Success {
		t.Fatal("incomplete form accepted")
	}
	d.Wait()
	if len(rec.all()) != 1 {
		t.Error("incomplete form produced a notification")
	}
}
