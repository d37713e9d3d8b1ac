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

// buildElements and writeElements are the shared list/set/map element
// driver: both Binary and Compact decode a declared count of
// same-kind values into one of the eleven concrete Elements columns,
// and both encode a column back out value by value. Each protocol
// supplies readOne/writeOne, which already know that protocol's wire
// shape for a single value of kind; this file owns only the part that
// would otherwise be duplicated per protocol: the 11-way kind switch
// that picks the right concrete slice type and the incremental,
// size-hint-capped append loop that never trusts a declared count
// outright.

// buildElements decodes n values of kind kind, calling readOne once
// per value, and returns them as the matching concrete Elements type.
// n has already been validated against cfg by the caller.
func buildElements(kind DataKind, n int32, readOne func() (Data, error)) (Elements, error) {
	hint := preallocHint(n)
	switch kind {
	case KindBool:
		out := make([]bool, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(BoolData)
			if !ok {
				return nil, invalidInput("element %d: expected Bool, got %s", i, d.Kind())
			}
			out = append(out, bool(v))
		}
		return BoolElements(out), nil
	case KindI8:
		out := make([]int8, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(I8Data)
			if !ok {
				return nil, invalidInput("element %d: expected I8, got %s", i, d.Kind())
			}
			out = append(out, int8(v))
		}
		return I8Elements(out), nil
	case KindI16:
		out := make([]int16, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(I16Data)
			if !ok {
				return nil, invalidInput("element %d: expected I16, got %s", i, d.Kind())
			}
			out = append(out, int16(v))
		}
		return I16Elements(out), nil
	case KindI32:
		out := make([]int32, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(I32Data)
			if !ok {
				return nil, invalidInput("element %d: expected I32, got %s", i, d.Kind())
			}
			out = append(out, int32(v))
		}
		return I32Elements(out), nil
	case KindI64:
		out := make([]int64, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(I64Data)
			if !ok {
				return nil, invalidInput("element %d: expected I64, got %s", i, d.Kind())
			}
			out = append(out, int64(v))
		}
		return I64Elements(out), nil
	case KindDouble:
		out := make([]float64, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(DoubleData)
			if !ok {
				return nil, invalidInput("element %d: expected Double, got %s", i, d.Kind())
			}
			out = append(out, float64(v))
		}
		return DoubleElements(out), nil
	case KindBinary:
		out := make([][]byte, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(BinaryData)
			if !ok {
				return nil, invalidInput("element %d: expected Binary, got %s", i, d.Kind())
			}
			out = append(out, []byte(v))
		}
		return BinaryElements(out), nil
	case KindStruct:
		out := make([]Struct, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(Struct)
			if !ok {
				return nil, invalidInput("element %d: expected Struct, got %s", i, d.Kind())
			}
			out = append(out, v)
		}
		return StructElements(out), nil
	case KindMap:
		out := make([]Map, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(Map)
			if !ok {
				return nil, invalidInput("element %d: expected Map, got %s", i, d.Kind())
			}
			out = append(out, v)
		}
		return MapElements(out), nil
	case KindSet:
		out := make([]Set, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(Set)
			if !ok {
				return nil, invalidInput("element %d: expected Set, got %s", i, d.Kind())
			}
			out = append(out, v)
		}
		return SetElements(out), nil
	case KindList:
		out := make([]List, 0, hint)
		for i := int32(0); i < n; i++ {
			d, err := readOne()
			if err != nil {
				return nil, err
			}
			v, ok := d.(List)
			if !ok {
				return nil, invalidInput("element %d: expected List, got %s", i, d.Kind())
			}
			out = append(out, v)
		}
		return ListElements(out), nil
	default:
		return nil, invalidInput("unknown element kind %d", kind)
	}
}

// writeElements calls writeOne once per element of e, in order.
func writeElements(e Elements, writeOne func(Data) error) error {
	var outerErr error
	Iterate(e, func(_ int, d Data) bool {
		if err := writeOne(d); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	return outerErr
}
