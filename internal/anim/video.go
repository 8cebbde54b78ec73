package anim

import (
	"log/slog"
	"time"
)

const (
	// HoverDebounce delays playback so brushing past the profile does nothing.
	HoverDebounce = 100 * time.Millisecond
	// HoverPlayback is how long the clip plays before stopping itself.
	HoverPlayback = 4 * time.Second
)

const (
	handleHover Handle = "hover"
	handlePlay  Handle = "play"
)

// Player controls the profile video.
type Player interface {
	Rewind()
	Play() error
	Pause()
}

// VideoHover plays the profile clip while the pointer rests on it.
type VideoHover struct {
	sched  *Scheduler
	player Player
	logger *slog.Logger
}

// NewVideoHover wires a hover controller to a player.
func NewVideoHover(sched *Scheduler, player Player, logger *slog.Logger) *VideoHover {
	if logger == nil {
		logger = slog.Default()
	}
	return &VideoHover{sched: sched, player: player, logger: logger}
}

// Enter rewinds and, after the debounce, plays for HoverPlayback.
func (v *VideoHover) Enter() {
	v.sched.Cancel(handleHover)
	v.sched.Cancel(handlePlay)
	v.player.Rewind()

	v.sched.After(handleHover, HoverDebounce, func() {
		if err := v.player.Play(); err != nil {
			v.logger.Info("video autoplay blocked", "error", err)
		}
		v.sched.After(handlePlay, HoverPlayback, func() {
			v.player.Pause()
			v.player.Rewind()
		})
	})
}

// Leave cancels pending timers and stops the clip immediately.
func (v *VideoHover) Leave() {
	v.sched.Cancel(handleHover)
	v.sched.Cancel(handlePlay)
	v.player.Pause()
	v.player.Rewind()
}

// Active reports whether a debounce or playback timer is pending.
func (v *VideoHover) Active() bool {
	return v.sched.Pending(handleHover) || v.sched.Pending(handlePlay)
}
