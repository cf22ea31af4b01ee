package main

import (
	"context"
	"time"
)

// TypingPace holds the delays of the typing animation.
type TypingPace struct {
	Type      time.Duration
	Delete    time.Duration
	HoldFull  time.Duration
	HoldEmpty time.Duration
}

var DefaultTypingPace = TypingPace{
	Type:      80 * time.Millisecond,
	Delete:    48 * time.Millisecond,
	HoldFull:  1400 * time.Millisecond,
	HoldEmpty: 350 * time.Millisecond,
}

// Typer cycles through phrases, typing and deleting one character per tick.
type Typer struct {
	phrases  [][]rune
	pace     TypingPace
	pi, ci   int
	deleting bool
}

func NewTyper(phrases []string, pace TypingPace) *Typer {
	t := &Typer{pace: pace}
	for _, p := range phrases {
		t.phrases = append(t.phrases, []rune(p))
	}
	return t
}

// Index returns the phrase currently being typed or deleted.
func (t *Typer) Index() int { return t.pi }

// Deleting reports whether the next tick shrinks the text.
func (t *Typer) Deleting() bool { return t.deleting }

// Next renders the current prefix and returns how long to wait before the
// following tick.
func (t *Typer) Next() (string, time.Duration) {
	phrase := t.phrases[t.pi]

	var text string
	if t.deleting {
		text = string(phrase[:min(t.ci, len(phrase))])
		t.ci--
	} else {
		text = string(phrase[:t.ci])
		t.ci++
	}

	switch {
	case !t.deleting && t.ci > len(phrase):
		t.deleting = true
		return text, t.pace.HoldFull
	case t.deleting && t.ci < 0:
		t.deleting = false
		t.pi = (t.pi + 1) % len(t.phrases)
		t.ci = 0
		return text, t.pace.HoldEmpty
	case t.deleting:
		return text, t.pace.Delete
	default:
		return text, t.pace.Type
	}
}

// RunTyping emits every rendered prefix until ctx is done. A typer without
// phrases does nothing.
func RunTyping(ctx context.Context, t *Typer, emit func(string)) {
	if len(t.phrases) == 0 {
		return
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			text, wait := t.Next()
			emit(text)
			timer.Reset(wait)
		}
	}
}
