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

package utils

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

func IgnoreError(fn func() error) {
	_ = fn()
}

func UnwrapErr(err error) error {
	nextErr := err
	for nextErr != nil {
		err = nextErr
		nextErr = errors.Unwrap(err)
	}
	return err
}

// CreateFile opens name for writing and registers a finalizer that syncs and
// closes it. An empty name returns def.
func CreateFile(name string, appendFile bool, def io.Writer) (io.Writer, error) {
	if name == "" {
		return def, nil
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendFile {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(name, flags, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", name)
	}

	AddFinalizer(func() {
		IgnoreError(file.Sync)
		IgnoreError(file.Close)
	})

	return file, nil
}
