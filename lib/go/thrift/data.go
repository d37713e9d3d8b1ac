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

// DataKind is the closed set of Thrift value kinds. The numeric
// values are normative: they are the wire codes used directly by the
// Binary protocol and by container element/key/value slots in the
// Compact protocol. They are a different numbering from the Compact
// struct-field type codes in compact_protocol.go — the two spaces
// must never be merged.
type DataKind uint8

const (
	KindBool   DataKind = 2
	KindI8     DataKind = 3
	KindDouble DataKind = 4
	KindI16    DataKind = 6
	KindI32    DataKind = 8
	KindI64    DataKind = 10
	KindBinary DataKind = 11
	KindStruct DataKind = 12
	KindMap    DataKind = 13
	KindSet    DataKind = 14
	KindList   DataKind = 15
)

func (k DataKind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindI8:
		return "I8"
	case KindDouble:
		return "Double"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindBinary:
		return "Binary"
	case KindStruct:
		return "Struct"
	case KindMap:
		return "Map"
	case KindSet:
		return "Set"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Data is a tagged Thrift value. It is implemented by the seven
// scalar defined types below (BoolData .. BinaryData) and directly by
// Struct, Map, Set, and List. The set of implementations is sealed:
// dataValue is unexported so no other package can add a variant.
type Data interface {
	// Kind reports which DataKind this value holds.
	Kind() DataKind

	dataValue()
}

// BoolData is a Data holding a Thrift bool.
type BoolData bool

// I8Data is a Data holding a Thrift i8 (also accepted on decode as
// the legacy "byte" alias, wire code 3).
type I8Data int8

// I16Data is a Data holding a Thrift i16.
type I16Data int16

// I32Data is a Data holding a Thrift i32.
type I32Data int32

// I64Data is a Data holding a Thrift i64.
type I64Data int64

// DoubleData is a Data holding a Thrift double.
type DoubleData float64

// BinaryData is a Data holding a Thrift binary (or string) payload.
type BinaryData []byte

func (BoolData) Kind() DataKind   { return KindBool }
func (I8Data) Kind() DataKind     { return KindI8 }
func (I16Data) Kind() DataKind    { return KindI16 }
func (I32Data) Kind() DataKind    { return KindI32 }
func (I64Data) Kind() DataKind    { return KindI64 }
func (DoubleData) Kind() DataKind { return KindDouble }
func (BinaryData) Kind() DataKind { return KindBinary }

func (BoolData) dataValue()   {}
func (I8Data) dataValue()     {}
func (I16Data) dataValue()    {}
func (I32Data) dataValue()    {}
func (I64Data) dataValue()    {}
func (DoubleData) dataValue() {}
func (BinaryData) dataValue() {}
