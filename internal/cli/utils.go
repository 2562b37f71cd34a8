// Copyright 2018 SumUp Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-textwrapper"
	"github.com/palantir/stacktrace"
	"github.com/sumup-oss/go-pkgs/os"
)

const lineSeparator = "\n"

// WrapLines splits `content` into lines of `width` characters.
// Non-positive `width` returns `content` untouched.
func WrapLines(content []byte, width int) ([]byte, error) {
	if width <= 0 {
		return content, nil
	}

	var buf bytes.Buffer

	_, err := textwrapper.New(&buf, lineSeparator, width).Write(content)
	if err != nil {
		return nil, stacktrace.Propagate(err, "failed to wrap lines")
	}

	return buf.Bytes(), nil
}

// StripLineBreaks drops every CR and LF, so wrapped payloads can be decoded.
func StripLineBreaks(content []byte) []byte {
	stripped := make([]byte, 0, len(content))

	for _, b := range content {
		if b == '\r' || b == '\n' {
			continue
		}

		stripped = append(stripped, b)
	}

	return stripped
}

// WriteOut writes `content` at `outFilePath`,
// or to stdout below `banner` when the path is blank.
func WriteOut(
	osExecutor os.OsExecutor,
	outFilePath string,
	banner string,
	content []byte,
) error {
	if outFilePath == "" {
		_, _ = fmt.Fprintln(osExecutor.Stdout(), banner)

		// NOTE: Explicitly print as string representation
		_, err := fmt.Fprintln(osExecutor.Stdout(), string(content))
		if err != nil {
			return stacktrace.Propagate(err, "failed to write to stdout")
		}

		return nil
	}

	err := osExecutor.WriteFile(outFilePath, content, 0644)
	if err != nil {
		return stacktrace.Propagate(err, "failed to write at out file path")
	}

	return nil
}
