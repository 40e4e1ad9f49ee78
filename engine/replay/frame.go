package replay

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/1siamBot/shooter-engine/engine/core"
)

const version uint16 = 2

var magic = [4]byte{'S', 'H', 'R', 'P'}

// ErrBadHeader is returned when a stream does not start with a replay header.
var ErrBadHeader = errors.New("replay: bad header")

// Header identifies the session a replay was recorded from and everything
// needed to rebuild it.
type Header struct {
	Session   uuid.UUID
	Seed      int64
	Width     float64
	Height    float64
	TickRate  float64
	TwoPlayer bool
}

// Encode writes the header to binary
func (h *Header) Encode(w io.Writer) error {
	for _, v := range []interface{}{magic, version, h.Session, h.Seed, h.Width, h.Height, h.TickRate, h.TwoPlayer} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a header from binary
func (h *Header) Decode(r io.Reader) error {
	var m [4]byte
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		return err
	}
	if m != magic {
		return ErrBadHeader
	}
	var v uint16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return err
	}
	if v != version {
		return fmt.Errorf("%w: version %d", ErrBadHeader, v)
	}
	for _, dst := range []interface{}{&h.Session, &h.Seed, &h.Width, &h.Height, &h.TickRate, &h.TwoPlayer} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return err
		}
	}
	return nil
}

// Frame is the input consumed on one tick
type Frame struct {
	Tick  uint64
	Input core.Snapshot
}

// Encode writes a frame to binary
func (f *Frame) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, f.Tick); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(f.Input.Actions)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.PointerX); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.Input.PointerY); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, f.Input.NoPointer)
}

// Decode reads a frame from binary
func (f *Frame) Decode(r io.Reader) error {
	if err := binary.Read(r, binary.LittleEndian, &f.Tick); err != nil {
		return err
	}
	var actions uint32
	if err := binary.Read(r, binary.LittleEndian, &actions); err != nil {
		return err
	}
	f.Input.Actions = core.ActionSet(actions)
	if err := binary.Read(r, binary.LittleEndian, &f.Input.PointerX); err != nil {
		return err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Input.PointerY); err != nil {
		return err
	}
	return binary.Read(r, binary.LittleEndian, &f.Input.NoPointer)
}
