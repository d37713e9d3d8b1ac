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
	"bytes"
	"testing"
)

func TestZigzag32(t *testing.T) {
	cases := []struct {
		n int32
		u uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, c := range cases {
		if got := int32ToZigzag(c.n); got != c.u {
			t.Errorf("int32ToZigzag(%d) = %d, want %d", c.n, got, c.u)
		}
		if got := zigzagToInt32(c.u); got != c.n {
			t.Errorf("zigzagToInt32(%d) = %d, want %d", c.u, got, c.n)
		}
	}
}

func TestZigzag64(t *testing.T) {
	cases := []struct {
		n int64
		u uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, c := range cases {
		if got := int64ToZigzag(c.n); got != c.u {
			t.Errorf("int64ToZigzag(%d) = %d, want %d", c.n, got, c.u)
		}
		if got := zigzagToInt64(c.u); got != c.n {
			t.Errorf("zigzagToInt64(%d) = %d, want %d", c.u, got, c.n)
		}
	}
}

func TestVarint32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 0x7fffffff, 0xffffffff}
	for _, v := range values {
		var buf bytes.Buffer
		if _, err := writeVarint32(&buf, v); err != nil {
			t.Fatalf("writeVarint32(%d): %v", v, err)
		}
		got, err := readVarint32(asByteReader(&buf))
		if err != nil {
			t.Fatalf("readVarint32(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d got %d", v, got)
		}
	}
}

func TestVarint32TooLong(t *testing.T) {
	buf := bytes.NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80})
	_, err := readVarint32(asByteReader(buf))
	if err == nil {
		t.Fatal("expected error for over-length varint32")
	}
	if !isInvalidInput(err) {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func isInvalidInput(err error) bool {
	te, ok := err.(*Error)
	return ok && te.Kind == InvalidInput
}
