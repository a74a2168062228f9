package record

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/lixenwraith/rollball/telemetry"
)

// ErrNotRecording is returned when the first line is not a recording header
var ErrNotRecording = errors.New("not a rollball recording")

// Reader streams frames back out of a recording
type Reader struct {
	f      *os.File
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	header Header
	line   int
}

// Open reads and checks the header line
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open recording %s", path)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "zstd reader")
	}

	r := &Reader{f: f, dec: dec, sc: bufio.NewScanner(dec)}
	r.sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	if !r.sc.Scan() {
		err := r.sc.Err()
		r.Close()
		if err == nil {
			err = ErrNotRecording
		}
		return nil, errors.Wrapf(err, "read header %s", path)
	}
	r.line++
	if err := json.Unmarshal(r.sc.Bytes(), &r.header); err != nil || r.header.Kind != Kind {
		r.Close()
		return nil, errors.Wrapf(ErrNotRecording, "%s", path)
	}
	if r.header.Version != Version {
		r.Close()
		return nil, errors.Errorf("%s: unsupported recording version %d", path, r.header.Version)
	}
	return r, nil
}

func (r *Reader) Header() Header { return r.header }

// Next returns the next frame, or io.EOF at the end of the stream
func (r *Reader) Next() (telemetry.Frame, error) {
	var fr telemetry.Frame
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return fr, errors.Wrapf(err, "line %d", r.line+1)
		}
		return fr, io.EOF
	}
	r.line++
	if err := json.Unmarshal(r.sc.Bytes(), &fr); err != nil {
		return fr, errors.Wrapf(err, "line %d", r.line)
	}
	return fr, nil
}

func (r *Reader) Close() error {
	if r.dec != nil {
		r.dec.Close()
		r.dec = nil
	}
	if r.f != nil {
		err := r.f.Close()
		r.f = nil
		return err
	}
	return nil
}
