// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indent inserts a fixed prefix at the start of a byte stream
// and after every newline within it, for rendering nested CLI help text
// (format lists, flag groups) the way a terminal "tree" view would.
package indent

import (
	"bytes"
	"io"
)

// Writer wraps an io.Writer, writing prefix before the first byte ever
// seen and after every newline — except a newline that turns out to be
// the very last byte written, since nothing should trail the final
// line of help text. Because a streaming Writer cannot look ahead, it
// defers the post-newline prefix until the next byte actually arrives;
// if none ever does, that prefix is simply never emitted.
type Writer struct {
	w       io.Writer
	prefix  []byte
	pending bool
}

// NewWriter returns a Writer that indents everything subsequently
// written to it with prefix before forwarding to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), pending: true}
}

// Write implements io.Writer. The returned count is the number of
// bytes of p durably indented and forwarded to the underlying writer;
// on a short or failing underlying write this can be less than len(p),
// reflecting the underlying writer's own partial-write outcome rather
// than masking it.
func (iw *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	buf := make([]byte, 0, len(p)+len(iw.prefix))
	boundary := make([]int, len(p)+1)
	pendingAt := make([]bool, len(p)+1)

	pending := iw.pending
	pendingAt[0] = pending
	for i, b := range p {
		if pending {
			buf = append(buf, iw.prefix...)
			pending = false
		}
		buf = append(buf, b)
		if b == '\n' {
			pending = true
		}
		boundary[i+1] = len(buf)
		pendingAt[i+1] = pending
	}

	wn, err := iw.w.Write(buf)

	n := 0
	for n < len(p) && boundary[n+1] <= wn {
		n++
	}
	iw.pending = pendingAt[n]

	if err == nil && wn < len(buf) {
		err = io.ErrShortWrite
	}
	return n, err
}

// Bytes returns in with prefix inserted at the start and after every
// newline, except one ending the input.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return in
	}
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(in)
	return buf.Bytes()
}

// String is the string form of Bytes.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}
