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

// Elements is a homogeneous column of values, one concrete defined
// type per DataKind. This mirrors the wire format directly: a list,
// set, or map column is never a sequence of boxed Data values, it is
// one typed slice. Creating an Elements via NewElements(kind) yields
// an empty column that still remembers its kind.
type Elements interface {
	// Kind reports the DataKind shared by every element in the column.
	Kind() DataKind

	// Len returns the element count.
	Len() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Get returns the element at index i as a boxed Data view, or
	// (nil, false) if i is out of range.
	Get(i int) (Data, bool)

	elementsValue()
}

// NewElements makes an empty column that can hold elements of kind.
func NewElements(kind DataKind) Elements {
	switch kind {
	case KindBool:
		return BoolElements(nil)
	case KindI8:
		return I8Elements(nil)
	case KindI16:
		return I16Elements(nil)
	case KindI32:
		return I32Elements(nil)
	case KindI64:
		return I64Elements(nil)
	case KindDouble:
		return DoubleElements(nil)
	case KindBinary:
		return BinaryElements(nil)
	case KindStruct:
		return StructElements(nil)
	case KindMap:
		return MapElements(nil)
	case KindSet:
		return SetElements(nil)
	case KindList:
		return ListElements(nil)
	default:
		return nil
	}
}

// Iterate walks e in order, calling fn for each element until fn
// returns false or the column is exhausted. It is the borrowed
// iterator the value model calls for; Elements itself only exposes
// Len/Get so every variant can share this one implementation.
func Iterate(e Elements, fn func(i int, d Data) bool) {
	n := e.Len()
	for i := 0; i < n; i++ {
		d, ok := e.Get(i)
		if !ok {
			return
		}
		if !fn(i, d) {
			return
		}
	}
}

type BoolElements []bool
type I8Elements []int8
type I16Elements []int16
type I32Elements []int32
type I64Elements []int64
type DoubleElements []float64
type BinaryElements [][]byte
type StructElements []Struct
type MapElements []Map
type SetElements []Set
type ListElements []List

func (BoolElements) Kind() DataKind   { return KindBool }
func (I8Elements) Kind() DataKind     { return KindI8 }
func (I16Elements) Kind() DataKind    { return KindI16 }
func (I32Elements) Kind() DataKind    { return KindI32 }
func (I64Elements) Kind() DataKind    { return KindI64 }
func (DoubleElements) Kind() DataKind { return KindDouble }
func (BinaryElements) Kind() DataKind { return KindBinary }
func (StructElements) Kind() DataKind { return KindStruct }
func (MapElements) Kind() DataKind    { return KindMap }
func (SetElements) Kind() DataKind    { return KindSet }
func (ListElements) Kind() DataKind   { return KindList }

func (v BoolElements) Len() int   { return len(v) }
func (v I8Elements) Len() int     { return len(v) }
func (v I16Elements) Len() int    { return len(v) }
func (v I32Elements) Len() int    { return len(v) }
func (v I64Elements) Len() int    { return len(v) }
func (v DoubleElements) Len() int { return len(v) }
func (v BinaryElements) Len() int { return len(v) }
func (v StructElements) Len() int { return len(v) }
func (v MapElements) Len() int    { return len(v) }
func (v SetElements) Len() int    { return len(v) }
func (v ListElements) Len() int   { return len(v) }

func (v BoolElements) IsEmpty() bool   { return len(v) == 0 }
func (v I8Elements) IsEmpty() bool     { return len(v) == 0 }
func (v I16Elements) IsEmpty() bool    { return len(v) == 0 }
func (v I32Elements) IsEmpty() bool    { return len(v) == 0 }
func (v I64Elements) IsEmpty() bool    { return len(v) == 0 }
func (v DoubleElements) IsEmpty() bool { return len(v) == 0 }
func (v BinaryElements) IsEmpty() bool { return len(v) == 0 }
func (v StructElements) IsEmpty() bool { return len(v) == 0 }
func (v MapElements) IsEmpty() bool    { return len(v) == 0 }
func (v SetElements) IsEmpty() bool    { return len(v) == 0 }
func (v ListElements) IsEmpty() bool   { return len(v) == 0 }

func (v BoolElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return BoolData(v[i]), true
}
func (v I8Elements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return I8Data(v[i]), true
}
func (v I16Elements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return I16Data(v[i]), true
}
func (v I32Elements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return I32Data(v[i]), true
}
func (v I64Elements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return I64Data(v[i]), true
}
func (v DoubleElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return DoubleData(v[i]), true
}
func (v BinaryElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return BinaryData(v[i]), true
}
func (v StructElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return v[i], true
}
func (v MapElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return v[i], true
}
func (v SetElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return v[i], true
}
func (v ListElements) Get(i int) (Data, bool) {
	if i < 0 || i >= len(v) {
		return nil, false
	}
	return v[i], true
}

func (BoolElements) elementsValue()   {}
func (I8Elements) elementsValue()     {}
func (I16Elements) elementsValue()    {}
func (I32Elements) elementsValue()    {}
func (I64Elements) elementsValue()    {}
func (DoubleElements) elementsValue() {}
func (BinaryElements) elementsValue() {}
func (StructElements) elementsValue() {}
func (MapElements) elementsValue()    {}
func (SetElements) elementsValue()    {}
func (ListElements) elementsValue()   {}
