// Package replay records the input snapshots of a session so the run can
// be reproduced tick for tick.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/shooter-engine/engine/core"
)

// Replay records and plays back per-tick input
type Replay struct {
	Header Header
	Frames []Frame
	file   *os.File
	writer *bufio.Writer
	pos    int
}

// NewRecorder creates a replay file and writes its header.
func NewRecorder(path string, h Header) (*Replay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("replay: create %s: %w", path, err)
	}
	r := &Replay{
		Header: h,
		file:   f,
		writer: bufio.NewWriter(f),
	}
	if err := h.Encode(r.writer); err != nil {
		f.Close()
		return nil, fmt.Errorf("replay: write header: %w", err)
	}
	return r, nil
}

// Record appends the input consumed on tick.
func (r *Replay) Record(tick uint64, in core.Snapshot) error {
	fr := Frame{Tick: tick, Input: in}
	r.Frames = append(r.Frames, fr)
	if r.writer == nil {
		return nil
	}
	return fr.Encode(r.writer)
}

// Close flushes and closes the replay file
func (r *Replay) Close() error {
	if r.writer != nil {
		if err := r.writer.Flush(); err != nil {
			r.file.Close()
			return err
		}
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Load reads a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(bufio.NewReader(f))
}

// Read decodes a header followed by frames until EOF. A truncated last
// frame is dropped.
func Read(rd io.Reader) (*Replay, error) {
	r := &Replay{}
	if err := r.Header.Decode(rd); err != nil {
		if errors.Is(err, ErrBadHeader) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	for {
		var fr Frame
		if err := fr.Decode(rd); err != nil {
			break
		}
		r.Frames = append(r.Frames, fr)
	}
	return r, nil
}

// Next returns the next recorded input for playback.
func (r *Replay) Next() (core.Snapshot, bool) {
	if r.pos >= len(r.Frames) {
		return core.Snapshot{}, false
	}
	fr := r.Frames[r.pos]
	r.pos++
	return fr.Input, true
}

// InputForTick returns the input recorded for tick, if any
func (r *Replay) InputForTick(tick uint64) (core.Snapshot, bool) {
	for _, fr := range r.Frames {
		if fr.Tick == tick {
			return fr.Input, true
		}
	}
	return core.Snapshot{}, false
}
