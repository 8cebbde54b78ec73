package contact

import (
	"context"
	"sync"
	"time"

	"github.com/folio-dev/folio/internal/anim"
)

// AutoClose is how long a successful dialog stays open.
const AutoClose = 2 * time.Second

const handleAutoClose anim.Handle = "email-autoclose"

// Button labels.
const (
	LabelIdle    = "Send Email"
	LabelSending = "Sending..."
)

// NoticeStyle colours the status line under the form.
type NoticeStyle string

const (
	StyleSuccess NoticeStyle = "success"
	StyleError   NoticeStyle = "error"
)

// Notice is the status line shown after a submit.
type Notice struct {
	Text  string
	Style NoticeStyle
}

// State is a renderable snapshot of the dialog.
type State struct {
	Open     bool
	Sending  bool
	Form     Form
	Notice   *Notice
	Label    string
	Disabled bool
}

// Dialog is the email dialog's submit flow.
type Dialog struct {
	mu      sync.Mutex
	sched   *anim.Scheduler
	open    bool
	sending bool
	form    Form
	notice  *Notice
	onClose func()
}

// NewDialog returns a closed dialog. onClose, if set, runs whenever the
// dialog closes, including the delayed close after a successful send.
func NewDialog(sched *anim.Scheduler, onClose func()) *Dialog {
	return &Dialog{sched: sched, onClose: onClose}
}

// Open shows the dialog.
func (d *Dialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
}

// Close hides the dialog and cancels a pending auto-close.
func (d *Dialog) Close() {
	d.sched.Cancel(handleAutoClose)
	d.close()
}

func (d *Dialog) close() {
	d.mu.Lock()
	was := d.open
	d.open = false
	d.mu.Unlock()
	if was && d.onClose != nil {
		d.onClose()
	}
}

// SetForm replaces the field values.
func (d *Dialog) SetForm(f Form) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form = f
}

// State returns a snapshot for rendering.
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state()
}

func (d *Dialog) state() State {
	s := State{Open: d.open, Sending: d.sending, Form: d.form, Label: LabelIdle}
	if d.notice != nil {
		n := *d.notice
		s.Notice = &n
	}
	if d.sending {
		s.Label = LabelSending
		s.Disabled = true
	}
	return s
}

// Submit sends the form once through sub. render is called with the
// sending state before the request and with the final state after it.
// On success the form is cleared and the dialog closes after AutoClose.
func (d *Dialog) Submit(ctx context.Context, sub Submitter, render func(State)) {
	d.mu.Lock()
	if d.sending {
		d.mu.Unlock()
		return
	}
	d.sending = true
	d.notice = nil
	form := d.form
	sending := d.state()
	d.mu.Unlock()

	if render != nil {
		render(sending)
	}

	res, err := sub.Submit(ctx, form)

	d.mu.Lock()
	switch {
	case err != nil:
		d.notice = &Notice{Text: MsgNetworkError, Style: StyleError}
	case res.Success:
		d.notice = &Notice{Text: res.Message, Style: StyleSuccess}
		d.form = Form{}
	default:
		d.notice = &Notice{Text: res.Message, Style: StyleError}
	}
	d.sending = false
	final := d.state()
	d.mu.Unlock()

	if err == nil && res.Success {
		d.sched.After(handleAutoClose, AutoClose, d.close)
	}
	if render != nil {
		render(final)
	}
}
