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

// Map pairs a keys column with a values column of equal length. An
// empty Map carries no key/value kind at all: Binary encoding of such
// a Map fails with InvalidInput, since Binary has no way to write a
// map header without both kinds.
type Map struct {
	keys   Elements
	values Elements
}

// NewEmptyMap returns a Map with no entries and no known key/value
// kind.
func NewEmptyMap() Map {
	return Map{}
}

// NewMap pairs keys with values. It returns InvalidInput if the two
// columns have different lengths.
func NewMap(keys, values Elements) (Map, error) {
	kl, vl := 0, 0
	if keys != nil {
		kl = keys.Len()
	}
	if values != nil {
		vl = values.Len()
	}
	if kl != vl {
		return Map{}, invalidInput("map: %d keys but %d values", kl, vl)
	}
	return Map{keys: keys, values: values}, nil
}

// Keys returns the key column, or nil if the map carries no known key
// kind.
func (m Map) Keys() Elements { return m.keys }

// Values returns the value column, or nil if the map carries no known
// value kind.
func (m Map) Values() Elements { return m.values }

// KeyKind reports the key DataKind and whether one is known.
func (m Map) KeyKind() (DataKind, bool) {
	if m.keys == nil {
		return 0, false
	}
	return m.keys.Kind(), true
}

// ValueKind reports the value DataKind and whether one is known.
func (m Map) ValueKind() (DataKind, bool) {
	if m.values == nil {
		return 0, false
	}
	return m.values.Kind(), true
}

// Len returns the entry count.
func (m Map) Len() int {
	if m.keys == nil {
		return 0
	}
	return m.keys.Len()
}

// IsEmpty reports whether Len() == 0.
func (m Map) IsEmpty() bool { return m.Len() == 0 }

// Get returns the i-th key/value pair.
func (m Map) Get(i int) (key, value Data, ok bool) {
	if m.keys == nil || m.values == nil {
		return nil, nil, false
	}
	k, ok1 := m.keys.Get(i)
	v, ok2 := m.values.Get(i)
	if !ok1 || !ok2 {
		return nil, nil, false
	}
	return k, v, true
}

func (m Map) Kind() DataKind { return KindMap }
func (m Map) dataValue()     {}
