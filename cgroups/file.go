/*
   Copyright The containerd Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package cgroups

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// readBufferSize bounds a single control-file line. The files carry
// values from a bounded enumeration; a longer line is a protocol
// violation, not data to grow a buffer for.
const readBufferSize = 255

// writeFile truncates the control file at path and writes data in
// full, discarding the previous content. One open/close pair per
// call: control files are single-shot kernel interfaces and no handle
// outlives the operation.
func writeFile(path, data string) error {
	return retryingWriteFile(path, data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// appendFile appends data to the control file at path, creating it if
// absent. Appending is only meaningful for the task membership file,
// where the kernel treats every written id as a migration into the
// group and keeps the existing members.
func appendFile(path, data string) error {
	return retryingWriteFile(path, data, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func retryingWriteFile(path, data string, flag int) error {
	// Retry writes on EINTR; see:
	//    https://github.com/golang/go/issues/38033
	for {
		err := writeOnce(path, data, flag)
		if err == nil {
			return nil
		} else if !errors.Is(err, syscall.EINTR) {
			return err
		}
	}
}

func writeOnce(path, data string, flag int) error {
	f, err := os.OpenFile(path, flag, defaultFilePerm)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// readLine returns the first line of the control file at path,
// including its terminator when present. At end-of-file before the
// first byte it returns the empty string. A line that fills the whole
// buffer without a terminator fails with ErrBufferTooSmall.
func readLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	buf := make([]byte, readBufferSize)
	n := 0
	for n < len(buf) {
		r, err := f.Read(buf[n:])
		n += r
		if err == io.EOF {
			break
		}
		if err != nil {
			f.Close()
			return "", err
		}
		if bytes.IndexByte(buf[:n], '\n') >= 0 {
			break
		}
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
		return string(buf[:i+1]), nil
	}
	if n == len(buf) {
		return "", errors.Wrapf(ErrBufferTooSmall, "read %s", path)
	}
	return string(buf[:n]), nil
}

// readInts reads the whole membership file at path, parsing the
// leading integer of every line. Lines where no characters form an
// integer, such as blank lines, are skipped; a line exceeding the
// read buffer fails with ErrBufferTooSmall.
func readInts(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var out []int
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, readBufferSize), readBufferSize)
	for s.Scan() {
		if v, ok := leadingInt(s.Text()); ok {
			out = append(out, v)
		}
	}
	if err := s.Err(); err != nil {
		f.Close()
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, errors.Wrapf(ErrBufferTooSmall, "read %s", path)
		}
		return nil, err
	}
	return out, f.Close()
}
