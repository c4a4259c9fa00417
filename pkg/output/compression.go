// Copyright 2019 ScyllaDB
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
	"bufio"
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type Compression int

const (
	NoCompression Compression = iota
	ZSTDCompression
	GZIPCompression
)

const bufioWriterSize = 8192 * 4

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case ZSTDCompression:
		return "zstd"
	case GZIPCompression:
		return "gzip"
	default:
		panic("unknown compression")
	}
}

func ParseCompression(value string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none", "":
		return NoCompression, nil
	case "zstd":
		return ZSTDCompression, nil
	case "gzip":
		return GZIPCompression, nil
	default:
		return NoCompression, errors.Errorf("unknown compression %q", value)
	}
}

// wrap returns a buffered writer over input and, when compressing, the
// compressor that has to be closed before input.
func (c Compression) wrap(input io.Writer) (*bufio.Writer, io.Closer, error) {
	switch c {
	case ZSTDCompression:
		zstdWriter, err := zstd.NewWriter(input,
			zstd.WithEncoderLevel(zstd.SpeedFastest),
			zstd.WithEncoderCRC(true),
		)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create zstd writer")
		}

		return bufio.NewWriterSize(zstdWriter, bufioWriterSize), zstdWriter, nil
	case GZIPCompression:
		gzipWriter, err := gzip.NewWriterLevel(input, gzip.BestSpeed)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create gzip writer")
		}

		return bufio.NewWriterSize(gzipWriter, bufioWriterSize), gzipWriter, nil
	default:
		return bufio.NewWriterSize(input, bufioWriterSize), nil, nil
	}
}
