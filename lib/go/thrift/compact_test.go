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

	"github.com/google/go-cmp/cmp"
)

// onewayExampleBytes is the 23-byte wire form of
// Message{MethodName: "foo_method", Kind: Oneway, SequenceID: 1,
// Body: {1: Binary("arg1"), 2: I32(2)}} in Compact framing.
var onewayExampleBytes = []byte{
	0x82, 0x81, 0x01, 0x0A, 0x66, 0x6F, 0x6F, 0x5F,
	0x6D, 0x65, 0x74, 0x68, 0x6F, 0x64, 0x18, 0x04,
	0x61, 0x72, 0x67, 0x31, 0x15, 0x04, 0x00,
}

func TestCompactOnewayExampleEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := CompactEncodeMessage(&buf, sampleMessage()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if diff := cmp.Diff(onewayExampleBytes, buf.Bytes()); diff != "" {
		t.Errorf("wire bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactOnewayExampleDecode(t *testing.T) {
	got, err := CompactDecodeMessage(bytes.NewReader(onewayExampleBytes), DefaultConfig())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleMessage(), got); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactEmptyMapIsOneZeroByte(t *testing.T) {
	var buf bytes.Buffer
	if err := CompactEncodeData(&buf, NewEmptyMap()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x00}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactListLongFormHeader(t *testing.T) {
	vals := make([]int32, 15)
	for i := range vals {
		vals[i] = int32(i)
	}
	list := NewList(I32Elements(vals))
	var buf bytes.Buffer
	if err := CompactEncodeData(&buf, list); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := buf.Bytes()
	if got[0] != 0xf8 {
		t.Fatalf("header byte = %#x, want 0xf8", got[0])
	}
	if got[1] != 15 {
		t.Fatalf("size varint = %d, want 15", got[1])
	}
}

func TestCompactDoubleIsLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	if err := CompactEncodeData(&buf, DoubleData(1.0)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	// 1.0 as IEEE-754 bits is 0x3FF0000000000000; little-endian puts
	// the zero bytes first.
	want := []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactRejectsUnknownTypeCode(t *testing.T) {
	// field header with delta 1 and type code 0x0f (never assigned)
	buf := bytes.NewReader([]byte{0x1f, 0x00})
	_, err := CompactDecodeStruct(asByteReader(buf), DefaultConfig())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestCompactRejectsBadProtocolID(t *testing.T) {
	buf := bytes.NewReader([]byte{0x00, 0x81, 0x01, 0x00})
	_, err := CompactDecodeMessage(buf, DefaultConfig())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
