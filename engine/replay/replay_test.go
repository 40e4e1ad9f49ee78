package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/1siamBot/shooter-engine/engine/core"
)

func snap(x float64, actions ...core.Action) core.Snapshot {
	s := core.Snapshot{PointerX: x, PointerY: x / 2}
	for _, a := range actions {
		s.Actions.Set(a)
	}
	return s
}

func testHeader() Header {
	return Header{
		Session:   uuid.New(),
		Seed:      99,
		Width:     800,
		Height:    600,
		TickRate:  60,
		TwoPlayer: true,
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	h := testHeader()
	var buf bytes.Buffer
	if err := h.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	var got Header
	if err := got.Decode(&buf); err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Errorf("header = %+v, want %+v", got, h)
	}
}

func TestBadMagic(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("NOPE and then some")))
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("err = %v, want ErrBadHeader", err)
	}
}

func TestShortHeader(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("SH")))
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("err = %v, want ErrBadHeader", err)
	}
}

func TestTruncatedFrameDropped(t *testing.T) {
	var buf bytes.Buffer
	h := testHeader()
	if err := h.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	for i, in := range []core.Snapshot{snap(10, core.ActStart), snap(20, core.ActP1Fire, core.ActP1Up)} {
		fr := Frame{Tick: uint64(i + 1), Input: in}
		if err := fr.Encode(&buf); err != nil {
			t.Fatal(err)
		}
	}
	data := buf.Bytes()
	r, err := Read(bytes.NewReader(data[:len(data)-3]))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(r.Frames))
	}
	if !r.Frames[0].Input.Pressed(core.ActStart) || r.Frames[0].Input.PointerX != 10 {
		t.Errorf("frame = %+v", r.Frames[0])
	}
}

func TestRecordAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.rep")
	h := testHeader()
	rec, err := NewRecorder(path, h)
	if err != nil {
		t.Fatal(err)
	}
	inputs := []core.Snapshot{
		snap(0, core.ActStart),
		snap(400, core.ActP1Fire),
		snap(800, core.ActP1Down, core.ActP2Fire),
	}
	inputs[2].NoPointer = true
	for i, in := range inputs {
		if err := rec.Record(uint64(i+1), in); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Header != h {
		t.Errorf("header = %+v, want %+v", r.Header, h)
	}
	for i, want := range inputs {
		got, ok := r.Next()
		if !ok {
			t.Fatalf("ran out at frame %d", i)
		}
		if got != want {
			t.Errorf("frame %d = %+v, want %+v", i, got, want)
		}
	}
	if _, ok := r.Next(); ok {
		t.Error("Next past the end should report false")
	}

	in, ok := r.InputForTick(2)
	if !ok || !in.Pressed(core.ActP1Fire) {
		t.Errorf("tick 2 = %+v, %v", in, ok)
	}
	if _, ok := r.InputForTick(9); ok {
		t.Error("tick 9 was never recorded")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.rep")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestInMemoryRecord(t *testing.T) {
	r := &Replay{}
	if err := r.Record(5, snap(1)); err != nil {
		t.Fatal(err)
	}
	if len(r.Frames) != 1 || r.Frames[0].Tick != 5 {
		t.Errorf("frames = %+v", r.Frames)
	}
	if err := r.Close(); err != nil {
		t.Errorf("close = %v", err)
	}
}
