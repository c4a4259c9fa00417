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

package output

import (
	"bytes"
	"compress/gzip"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var samples = []float64{0.5, -1.25, 3e-9, 1234567.875}

func decompress(t *testing.T, compression Compression, data []byte) string {
	t.Helper()

	var r io.Reader = bytes.NewReader(data)

	switch compression {
	case ZSTDCompression:
		dec, err := zstd.NewReader(r)
		require.NoError(t, err)
		defer dec.Close()
		r = dec
	case GZIPCompression:
		dec, err := gzip.NewReader(r)
		require.NoError(t, err)
		defer func() { _ = dec.Close() }()
		r = dec
	}

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestWriterCompressions(t *testing.T) {
	t.Parallel()

	expected := "0.5\n-1.25\n3e-09\n1.234567875e+06\n"

	for _, compression := range []Compression{NoCompression, ZSTDCompression, GZIPCompression} {
		t.Run(compression.String(), func(t *testing.T) {
			t.Parallel()
			assert := require.New(t)

			var buf bytes.Buffer
			w, err := New(&buf, FormatText, compression)
			assert.NoError(err)

			for _, v := range samples {
				assert.NoError(w.Write(v))
			}
			assert.NoError(w.Close())
			assert.Equal(uint64(len(samples)), w.Written())

			if diff := cmp.Diff(expected, decompress(t, compression, buf.Bytes())); diff != "" {
				t.Errorf("unexpected output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriterJSON(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	var buf bytes.Buffer
	w, err := New(&buf, FormatJSON, NoCompression)
	assert.NoError(err)

	for _, v := range samples {
		assert.NoError(w.Write(v))
	}
	assert.Error(w.Write(math.NaN()))
	assert.NoError(w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal([]string{"0.5", "-1.25", "3e-9", "1234567.875"}, lines)
}

type recordingCloser struct {
	bytes.Buffer
	closed bool
	err    error
}

func (r *recordingCloser) Close() error {
	r.closed = true
	return r.err
}

func TestWriterClosesUnderlying(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	failure := errors.New("close failed")
	rc := &recordingCloser{err: failure}

	w, err := New(rc, FormatText, ZSTDCompression)
	assert.NoError(err)
	assert.NoError(w.Write(1))

	err = w.Close()
	assert.True(rc.closed)
	assert.True(errors.Is(err, failure))
}

func TestOpenFile(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "samples.txt.gz")

	w, err := Open(path, FormatText, GZIPCompression)
	assert.NoError(err)
	assert.NoError(w.Write(2.5))
	assert.NoError(w.Close())

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("2.5\n", decompress(t, GZIPCompression, data))
}

func TestOpenMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "missing", "samples.txt"), FormatText, NoCompression)
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, c := range []Compression{NoCompression, ZSTDCompression, GZIPCompression} {
		parsed, err := ParseCompression(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}
	_, err := ParseCompression("lz4")
	require.Error(t, err)

	for _, f := range []Format{FormatText, FormatJSON} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}
	_, err = ParseFormat("csv")
	require.Error(t, err)
}

func TestParseIgnoresCaseAndSpace(t *testing.T) {
	t.Parallel()

	compression, err := ParseCompression(" ZSTD ")
	require.NoError(t, err)
	require.Equal(t, ZSTDCompression, compression)

	compression, err = ParseCompression("Gzip")
	require.NoError(t, err)
	require.Equal(t, GZIPCompression, compression)

	format, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, format)

	format, err = ParseFormat(" Text")
	require.NoError(t, err)
	require.Equal(t, FormatText, format)
}
