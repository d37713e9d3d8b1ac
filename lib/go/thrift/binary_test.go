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

func sampleMessage() Message {
	body := NewStruct(
		NewField(1, BinaryData("arg1")),
		NewField(2, I32Data(2)),
	)
	return NewMessage("foo_method", Oneway, 1, body)
}

func TestBinaryMessageRoundTrip(t *testing.T) {
	msg := sampleMessage()
	var buf bytes.Buffer
	if err := BinaryEncodeMessage(&buf, msg); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := BinaryDecodeMessage(&buf, DefaultConfig())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(msg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryMessageRejectsMissingVersionFlag(t *testing.T) {
	buf := bytes.NewReader([]byte{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	_, err := BinaryDecodeMessage(buf, DefaultConfig())
	te, ok := err.(*Error)
	if !ok || te.Kind != Other {
		t.Fatalf("expected Other error, got %v", err)
	}
}

func TestBinaryMessageRejectsWrongVersion(t *testing.T) {
	// top bit set (version flag present), version field is 2 instead of 1.
	buf := bytes.NewReader([]byte{0x80, 0x02, 0x00, 0x04, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	_, err := BinaryDecodeMessage(buf, DefaultConfig())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestBinaryEmptyMapRequiresKinds(t *testing.T) {
	var buf bytes.Buffer
	err := BinaryEncodeData(&buf, NewEmptyMap())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestBinaryListRoundTrip(t *testing.T) {
	elems := I32Elements{1, 2, 3}
	list := NewList(elems)
	var buf bytes.Buffer
	if err := BinaryEncodeData(&buf, list); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := BinaryDecodeData(&buf, KindList, DefaultConfig())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	gotList, ok := got.(List)
	if !ok {
		t.Fatalf("decoded %T, want List", got)
	}
	if diff := cmp.Diff(I32Elements{1, 2, 3}, gotList.Elements()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryRejectsBadBoolByte(t *testing.T) {
	buf := bytes.NewReader([]byte{2})
	_, err := BinaryDecodeData(buf, KindBool, DefaultConfig())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestBinaryRejectsNegativeLength(t *testing.T) {
	buf := bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff})
	_, err := BinaryDecodeData(buf, KindBinary, DefaultConfig())
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}
