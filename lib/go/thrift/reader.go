/*
 * Licensed to the Apache Software Foundation (ASF) under one
 * or more contributor license agreements. See the NOTICE file
 * distributed with this work for additional information
 * regarding copyright ownership. The ASF licenses this file
 * to you under the Apache License, Version 2.0 (the
 * "License"); you may not use this file except in compliance
 * with the License. You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package thrift

import (
	"bufio"
	"io"
)

// byteReader is what the Compact decoder needs: bulk reads for
// fixed-width fields and strings, plus single-byte reads for varints
// and Compact's packed type/size bytes. CompactDecodeMessage wraps the
// caller's io.Reader exactly once and threads the same byteReader
// through every recursive call, so a buffered wrapper never discards
// bytes the next call needed. The Binary decoder reads from the
// caller's io.Reader directly and does not wrap it.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// byteWriter is the encode-side counterpart. io.Writer already
// provides everything the encoders need.
type byteWriter interface {
	io.Writer
}

func asByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// readFull reads exactly len(buf) bytes, reporting Other on an I/O
// failure including unexpected EOF.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		return wrapIO(err, "short read")
	}
	return nil
}
