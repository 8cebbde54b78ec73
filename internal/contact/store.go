package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/folio-dev/folio/internal/db"
)

// Notifier is told about every stored submission.
type Notifier interface {
	Notify(sub Submission)
}

// Store persists contact submissions.
type Store struct {
	db       *db.DB
	notifier Notifier
}

// NewStore creates a new contact store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SetNotifier registers n to hear about new submissions. Call it before
// serving requests.
func (s *Store) SetNotifier(n Notifier) { s.notifier = n }

// Save records a submission and returns it with its id and timestamp.
func (s *Store) Save(ctx context.Context, f Form, remoteAddr string) (*Submission, error) {
	sub := Submission{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Name:       f.Name,
		Email:      f.Email,
		Subject:    f.Subject,
		Message:    f.Message,
		RemoteAddr: remoteAddr,
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, subject, message, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.RemoteAddr, sub.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	if sub.Seq, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("reading submission id: %w", err)
	}
	if s.notifier != nil {
		s.notifier.Notify(sub)
	}
	return &sub, nil
}

// List returns every submission, oldest first.
func (s *Store) List(ctx context.Context) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, id, name, email, subject, message, remote_addr, created_at
		 FROM contact_submissions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.Seq, &sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message, &sub.RemoteAddr, &sub.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// Count returns the number of stored submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}

// Submit validates and saves a form in-process, producing the same
// result the HTTP API would.
func (s *Store) Submit(ctx context.Context, f Form) (Result, error) {
	if !f.Complete() {
		return Result{Message: MsgMissingFields}, nil
	}
	if _, err := s.Save(ctx, f, ""); err != nil {
		return Result{Message: MsgSaveFailed}, nil
	}
	return Result{Success: true, Message: MsgSaved}, nil
}
