package record

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rollball/telemetry"
)

// Kind marks the header line of a recording
const Kind = "rollball.recording"

// Version of the line format
const Version = 1

// Header is the first line of every recording
type Header struct {
	Kind    string    `json:"kind"`
	Version int       `json:"version"`
	Session string    `json:"session"`
	Started time.Time `json:"started"`
}

// Recorder appends telemetry frames to a zstd compressed JSONL file
type Recorder struct {
	path string

	mu     sync.Mutex
	f      *os.File
	enc    *zstd.Encoder
	w      *bufio.Writer
	frames uint64
}

// NewRecorder creates (truncating) path and writes the header line
func NewRecorder(path, session string, started time.Time) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create recording dir %s", dir)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open recording %s", path)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "zstd writer")
	}

	r := &Recorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}
	h := Header{Kind: Kind, Version: Version, Session: session, Started: started.UTC()}
	if err := r.writeLine(h); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Write appends one frame
func (r *Recorder) Write(f *telemetry.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return errors.New("recorder closed")
	}
	if err := r.writeLine(f); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written
func (r *Recorder) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Recorder) Path() string { return r.path }

func (r *Recorder) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal record")
	}
	if _, err := r.w.Write(b); err != nil {
		return errors.Wrap(err, "write record")
	}
	return errors.Wrap(r.w.WriteByte('\n'), "write record")
}

// Close flushes and finalizes the zstd stream; safe to call twice
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.w != nil {
		err = r.w.Flush()
		r.w = nil
	}
	if r.enc != nil {
		if cerr := r.enc.Close(); err == nil {
			err = cerr
		}
		r.enc = nil
	}
	if r.f != nil {
		if cerr := r.f.Close(); err == nil {
			err = cerr
		}
		r.f = nil
	}
	return errors.Wrapf(err, "close recording %s", r.path)
}
