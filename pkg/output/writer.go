// Copyright 2025 ScyllaDB
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output writes drawn samples, one per line, optionally compressed.
package output

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		panic("unknown format")
	}
}

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, errors.Errorf("unknown format %q", value)
	}
}

type Writer struct {
	buf        *bufio.Writer
	compressor io.Closer
	closer     io.Closer
	scratch    []byte
	format     Format
	written    uint64
}

// New writes to w. If w is an io.Closer it is closed by Close.
func New(w io.Writer, format Format, compression Compression) (*Writer, error) {
	buf, compressor, err := compression.wrap(w)
	if err != nil {
		return nil, err
	}

	out := &Writer{
		buf:        buf,
		compressor: compressor,
		format:     format,
		scratch:    make([]byte, 0, 32),
	}
	if c, ok := w.(io.Closer); ok {
		out.closer = c
	}

	return out, nil
}

// Open creates (or truncates) path. An empty path writes to stdout, which is
// never closed.
func Open(path string, format Format, compression Compression) (*Writer, error) {
	if path == "" {
		return New(unclosable{os.Stdout}, format, compression)
	}

	fd, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	w, err := New(fd, format, compression)
	if err != nil {
		return nil, multierr.Append(err, fd.Close())
	}

	return w, nil
}

func (w *Writer) Write(v float64) error {
	var err error

	switch w.format {
	case FormatJSON:
		// encoding/json rejects NaN and infinities; the error is surfaced.
		var data []byte
		if data, err = json.Marshal(v); err != nil {
			return errors.Wrapf(err, "failed to encode %v", v)
		}
		w.scratch = append(w.scratch[:0], data...)
	default:
		w.scratch = strconv.AppendFloat(w.scratch[:0], v, 'g', -1, 64)
	}

	w.scratch = append(w.scratch, '\n')
	if _, err = w.buf.Write(w.scratch); err != nil {
		return errors.Wrap(err, "failed to write sample")
	}
	w.written++

	return nil
}

func (w *Writer) Written() uint64 {
	return w.written
}

// Close flushes buffered samples, then closes the compressor and the
// underlying writer. All failures are reported.
func (w *Writer) Close() error {
	err := w.buf.Flush()

	if w.compressor != nil {
		err = multierr.Append(err, w.compressor.Close())
	}

	if w.closer != nil {
		err = multierr.Append(err, w.closer.Close())
	}

	return err
}

// unclosable hides Close of the wrapped writer.
type unclosable struct {
	io.Writer
}
