package animator

import (
	"github.com/K0rnli/rift-rewind/engine/model"
)

// Action is one instance's playback handle for one clip. It owns the playback
// clock for its clip; only the record's current action is ever advanced.
type Action struct {
	clip      *model.AnimationClip
	time      float32
	loop      bool
	timeScale float32
	enabled   bool
	paused    bool
	running   bool
}

func newAction(clip *model.AnimationClip) *Action {
	return &Action{
		clip:      clip,
		timeScale: 1.0,
	}
}

// Clip returns the clip this action plays.
func (a *Action) Clip() *model.AnimationClip {
	return a.clip
}

// Time returns the action's current playback time in seconds.
func (a *Action) Time() float32 {
	return a.time
}

// Loop reports whether the action repeats when it reaches the clip end.
func (a *Action) Loop() bool {
	return a.loop
}

// TimeScale returns the action's playback speed multiplier.
func (a *Action) TimeScale() float32 {
	return a.timeScale
}

// Running reports whether the action is the active, advancing playback.
// A posed action is enabled but not running.
func (a *Action) Running() bool {
	return a.running && !a.paused
}

func (a *Action) reset() {
	a.time = 0
	a.paused = false
	a.enabled = true
}

func (a *Action) play() {
	a.enabled = true
	a.running = true
}

func (a *Action) stop() {
	a.running = false
	a.paused = false
	a.time = 0
}

// advance moves the clock by dt seconds, scaled by timeScale. Looping wraps,
// one-shot playback clamps at the clip end and stops running.
func (a *Action) advance(dt float32) {
	if !a.running || a.paused || a.clip == nil {
		return
	}
	duration := a.clip.Duration
	if duration <= 0 {
		return
	}
	a.time += dt * a.timeScale
	if a.loop {
		for a.time >= duration {
			a.time -= duration
		}
		for a.time < 0 {
			a.time += duration
		}
		return
	}
	if a.time >= duration {
		a.time = duration
		a.running = false
	}
	if a.time < 0 {
		a.time = 0
	}
}
