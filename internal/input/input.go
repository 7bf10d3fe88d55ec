// Package input reads raw-mode terminal bytes and presents them as
// per-frame key state. Terminals only deliver key presses (with repeat),
// never releases, so a key counts as held for a short window after its
// last byte arrived. That also makes simultaneous keys work: rotating
// while thrusting interleaves bytes, and both stay inside the window.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input is the current frame's key state.
type Input struct {
	Quit    bool // Esc or q
	Left    bool // Left arrow or A
	Right   bool // Right arrow or D
	Up      bool // Up arrow or W
	Down    bool // Down arrow or S
	Fire    bool // Space or Enter
	Pressed []byte
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key timestamps.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads bytes from r into the stream.
// The goroutine exits when the reader returns an error (e.g. stdin closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes (non-blocking), decodes CSI arrow
// sequences, updates key timestamps, and returns the frame's input.
func Read(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI sequence: ESC [ <code> (arrow keys)
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.state.up = now
				case 'B':
					s.state.down = now
				case 'C':
					s.state.right = now
				case 'D':
					s.state.left = now
				}
				i += 2
				continue
			}
			// Lone escape quits
			s.state.quit = now
			continue
		}

		applyByte(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Fire:    now.Sub(s.state.fire) < keyHoldDuration,
		Pressed: buf,
	}
}

// Reset clears all key timestamps, so keys pressed on one screen don't
// leak into the next (e.g. the space that started the game firing a shot).
func Reset(s *Stream) {
	s.state = keyState{}
}

// applyByte updates key timestamps for a single non-escape byte.
func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case ' ', '\n', '\r':
		state.fire = now
	}
}
