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

func TestMessageKindValid(t *testing.T) {
	valid := []MessageKind{Call, Reply, Exception, Oneway}
	for _, k := range valid {
		if !k.valid() {
			t.Errorf("%v should be valid", k)
		}
	}
	if MessageKind(0).valid() {
		t.Error("0 should be invalid")
	}
	if MessageKind(5).valid() {
		t.Error("5 should be invalid")
	}
}

func TestStructFieldLookup(t *testing.T) {
	s := NewStruct(NewField(1, I32Data(7)), NewField(2, BinaryData("x")))
	f, ok := s.Field(2)
	if !ok || string(f.Data.(BinaryData)) != "x" {
		t.Errorf("Field(2) = %+v, %v", f, ok)
	}
	if _, ok := s.Field(99); ok {
		t.Error("Field(99) should not be found")
	}
}

func TestBinaryAndCompactRejectOutOfRangeMessageKind(t *testing.T) {
	msg := NewMessage("m", MessageKind(9), 1, Struct{})
	if err := BinaryEncodeMessage(&bytes.Buffer{}, msg); !isInvalidInput(err) {
		t.Errorf("binary encode: expected InvalidInput, got %v", err)
	}
	if err := CompactEncodeMessage(&bytes.Buffer{}, msg); !isInvalidInput(err) {
		t.Errorf("compact encode: expected InvalidInput, got %v", err)
	}
}
