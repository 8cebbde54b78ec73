package site

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/folio-dev/folio/internal/anim"
	"github.com/folio-dev/folio/internal/contact"
)

// registry maps visitor ids to the live object of their open stream.
type registry[T comparable] struct {
	mu    sync.Mutex
	items map[string]T
}

func newRegistry[T comparable]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

// put stores v and returns what it displaced.
func (r *registry[T]) put(id string, v T) (prev T, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok = r.items[id]
	r.items[id] = v
	return prev, ok
}

// putUnless stores v unless the current entry is busy. The check and the
// insert happen under one lock.
func (r *registry[T]) putUnless(id string, v T, busy func(T) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.items[id]; ok && busy(cur) {
		return false
	}
	r.items[id] = v
	return true
}

func (r *registry[T]) get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[id]
	return v, ok
}

// remove deletes the entry only if it is still v.
func (r *registry[T]) remove(id string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.items[id]; ok && cur == v {
		delete(r.items, id)
	}
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

var errStreamClosed = errors.New("stream closed")

const videoSelector = "document.getElementById('profile-video')"

// streamPlayer drives the profile video over an SSE stream. The stream is
// finished once the clip has been paused and rewound.
type streamPlayer struct {
	sse *datastar.ServerSentEventGenerator

	mu     sync.Mutex
	paused bool
	closed bool
	done   chan struct{}
	once   sync.Once
}

func newStreamPlayer(sse *datastar.ServerSentEventGenerator) *streamPlayer {
	return &streamPlayer{sse: sse, done: make(chan struct{})}
}

func (p *streamPlayer) Rewind() {
	_ = p.exec(videoSelector + ".currentTime = 0")
	p.mu.Lock()
	stopped := p.paused
	p.mu.Unlock()
	if stopped {
		p.finish()
	}
}

func (p *streamPlayer) Play() error {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
	return p.exec(videoSelector + ".play().catch(e => console.info('video autoplay blocked', e))")
}

func (p *streamPlayer) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
	_ = p.exec(videoSelector + ".pause()")
}

func (p *streamPlayer) exec(js string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errStreamClosed
	}
	return p.sse.ExecuteScript(js)
}

func (p *streamPlayer) finish() { p.once.Do(func() { close(p.done) }) }

// close stops all further writes; the request is ending.
func (p *streamPlayer) close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.finish()
}

type hoverEntry struct {
	hover *anim.VideoHover
	sched *anim.Scheduler
}

// emailEntry is a visitor's live email dialog. sending is set before the
// entry is published and cleared once the submit has finished.
type emailEntry struct {
	dialog  *contact.Dialog
	sending atomic.Bool
}

func (e *emailEntry) busy() bool { return e.sending.Load() }
