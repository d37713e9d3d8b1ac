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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementsAreHomogeneous(t *testing.T) {
	e := NewElements(KindI32)
	if _, ok := e.(I32Elements); !ok {
		t.Fatalf("NewElements(KindI32) = %T, want I32Elements", e)
	}
	if e.Kind() != KindI32 {
		t.Errorf("Kind() = %v, want KindI32", e.Kind())
	}
	if !e.IsEmpty() || e.Len() != 0 {
		t.Errorf("new column should be empty")
	}
}

func TestIterateStopsEarly(t *testing.T) {
	e := I32Elements{1, 2, 3, 4}
	var seen []int32
	Iterate(e, func(_ int, d Data) bool {
		seen = append(seen, int32(d.(I32Data)))
		return len(seen) < 2
	})
	want := []int32{1, 2}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("Iterate mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRejectsMismatchedColumns(t *testing.T) {
	keys := I32Elements{1, 2}
	values := BinaryElements{[]byte("a")}
	_, err := NewMap(keys, values)
	if !isInvalidInput(err) {
		t.Fatalf("expected InvalidInput, got %v", err)
	}
}

func TestMapRoundTripAccessors(t *testing.T) {
	keys := I32Elements{1, 2}
	values := BinaryElements{[]byte("one"), []byte("two")}
	m, err := NewMap(keys, values)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if kk, ok := m.KeyKind(); !ok || kk != KindI32 {
		t.Errorf("KeyKind() = %v, %v", kk, ok)
	}
	if vk, ok := m.ValueKind(); !ok || vk != KindBinary {
		t.Errorf("ValueKind() = %v, %v", vk, ok)
	}
	k, v, ok := m.Get(1)
	if !ok {
		t.Fatal("Get(1) missing")
	}
	if int32(k.(I32Data)) != 2 {
		t.Errorf("key = %v, want 2", k)
	}
	if string(v.(BinaryData)) != "two" {
		t.Errorf("value = %v, want two", v)
	}
}

func TestEmptyMapHasNoKinds(t *testing.T) {
	m := NewEmptyMap()
	if _, ok := m.KeyKind(); ok {
		t.Error("empty map should report no key kind")
	}
	if _, ok := m.ValueKind(); ok {
		t.Error("empty map should report no value kind")
	}
}
