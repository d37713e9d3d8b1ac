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
	"io"
	"math"
	"unicode/utf8"
)

// Compact protocol: varint-encoded integers, zigzag for signed
// values, struct field ids delta-encoded against the previous field
// in the same struct, and packed type/size bytes for collection
// headers. Field type codes below are a distinct numbering from
// DataKind; they must never be compared against DataKind values
// directly, only translated through compactTypeOf/dataKindOf.
//
// One documented deviation from the published Compact protocol spec:
// Double is written and read little-endian here, matching what
// interoperating implementations actually do on the wire rather than
// the historical big-endian text.
const (
	compactProtocolID  = 0x82
	compactVersion     = 1
	compactVersionMask = 0x1f
	compactTypeShift   = 5

	compactBooleanTrue  = 0x01
	compactBooleanFalse = 0x02
	compactByte         = 0x03
	compactI16          = 0x04
	compactI32          = 0x05
	compactI64          = 0x06
	compactDouble       = 0x07
	compactBinary       = 0x08
	compactList         = 0x09
	compactSet          = 0x0a
	compactMap          = 0x0b
	compactStruct       = 0x0c

	compactStopField = 0x00
)

func compactTypeOf(kind DataKind) (byte, error) {
	switch kind {
	case KindBool:
		return compactBooleanTrue, nil
	case KindI8:
		return compactByte, nil
	case KindI16:
		return compactI16, nil
	case KindI32:
		return compactI32, nil
	case KindI64:
		return compactI64, nil
	case KindDouble:
		return compactDouble, nil
	case KindBinary:
		return compactBinary, nil
	case KindList:
		return compactList, nil
	case KindSet:
		return compactSet, nil
	case KindMap:
		return compactMap, nil
	case KindStruct:
		return compactStruct, nil
	default:
		return 0, invalidInput("compact: no type code for kind %s", kind)
	}
}

// dataKindFromByte validates that code is one of the eleven DataKind
// wire codes (the container/Binary kind-code space, 2-15), rejecting
// anything else as malformed input. List/set element kinds and map
// key/value kinds live in this space, not in the Compact struct-field
// type-code space that compactTypeOf/dataKindOf translate.
func dataKindFromByte(code byte) (DataKind, error) {
	switch DataKind(code) {
	case KindBool, KindI8, KindDouble, KindI16, KindI32, KindI64,
		KindBinary, KindStruct, KindMap, KindSet, KindList:
		return DataKind(code), nil
	default:
		return 0, invalidInput("compact: unknown element kind %#x", code)
	}
}

func dataKindOf(code byte) (DataKind, error) {
	switch code {
	case compactBooleanTrue, compactBooleanFalse:
		return KindBool, nil
	case compactByte:
		return KindI8, nil
	case compactI16:
		return KindI16, nil
	case compactI32:
		return KindI32, nil
	case compactI64:
		return KindI64, nil
	case compactDouble:
		return KindDouble, nil
	case compactBinary:
		return KindBinary, nil
	case compactList:
		return KindList, nil
	case compactSet:
		return KindSet, nil
	case compactMap:
		return KindMap, nil
	case compactStruct:
		return KindStruct, nil
	default:
		return 0, invalidInput("compact: unknown type code %#x", code)
	}
}

// getMinSerializedSize is the smallest a single value of kind can
// possibly occupy on the wire. It guards a declared container size
// before any element is read: a size whose minimum total already
// exceeds the configured container bound is rejected outright, so a
// hostile size prefix can't force an unbounded read loop.
func getMinSerializedSize(kind DataKind) int32 {
	if kind == KindDouble {
		return 8
	}
	return 1
}

// CompactEncodeMessage writes m in Compact protocol framing.
func CompactEncodeMessage(w byteWriter, m Message) error {
	if !m.Kind.valid() {
		return invalidInput("message kind %d out of range", m.Kind)
	}
	if err := writeAll(w, []byte{compactProtocolID}); err != nil {
		return wrapIO(err, "write protocol id")
	}
	versionAndType := byte(compactVersion&compactVersionMask) | byte(m.Kind)<<compactTypeShift
	if err := writeAll(w, []byte{versionAndType}); err != nil {
		return wrapIO(err, "write version/type")
	}
	if _, err := writeVarint32(w, uint32(m.SequenceID)); err != nil {
		return err
	}
	if err := compactWriteString(w, m.MethodName); err != nil {
		return err
	}
	return CompactEncodeStruct(w, m.Body)
}

// CompactDecodeMessage reads a Message in Compact protocol framing.
func CompactDecodeMessage(r io.Reader, cfg Config) (Message, error) {
	br := asByteReader(r)
	idByte, err := br.ReadByte()
	if err != nil {
		return Message{}, wrapIO(err, "read protocol id")
	}
	if idByte != compactProtocolID {
		return Message{}, invalidInput("compact message has protocol id %#x, want %#x", idByte, compactProtocolID)
	}
	versionAndType, err := br.ReadByte()
	if err != nil {
		return Message{}, wrapIO(err, "read version/type")
	}
	version := versionAndType & compactVersionMask
	if version != compactVersion {
		return Message{}, invalidInput("compact message has unsupported version %d", version)
	}
	kind := MessageKind(versionAndType >> compactTypeShift)
	if !kind.valid() {
		return Message{}, invalidInput("message kind %d out of range", kind)
	}
	seqU, err := readVarint32(br)
	if err != nil {
		return Message{}, err
	}
	name, err := compactReadString(br, cfg)
	if err != nil {
		return Message{}, err
	}
	body, err := CompactDecodeStruct(br, cfg)
	if err != nil {
		return Message{}, err
	}
	return Message{MethodName: name, Kind: kind, SequenceID: int32(seqU), Body: body}, nil
}

// CompactEncodeStruct writes s field by field, delta-encoding each
// field id against the previous field written (or against 0 for the
// first field), and terminates with a stop byte. A Bool field packs
// its true/false value directly into the type nibble instead of
// emitting a value byte, since Compact has no separate bool body.
func CompactEncodeStruct(w byteWriter, s Struct) error {
	lastID := int16(0)
	for _, f := range s.Fields {
		if b, ok := f.Data.(BoolData); ok {
			typeCode := byte(compactBooleanFalse)
			if bool(b) {
				typeCode = compactBooleanTrue
			}
			if err := compactWriteFieldHeader(w, typeCode, f.ID, &lastID); err != nil {
				return err
			}
			continue
		}
		typeCode, err := compactTypeOf(f.Data.Kind())
		if err != nil {
			return err
		}
		if err := compactWriteFieldHeader(w, typeCode, f.ID, &lastID); err != nil {
			return err
		}
		if err := CompactEncodeData(w, f.Data); err != nil {
			return err
		}
	}
	return writeAll(w, []byte{compactStopField})
}

func compactWriteFieldHeader(w byteWriter, typeCode byte, id int16, lastID *int16) error {
	delta := int32(id) - int32(*lastID)
	if delta > 0 && delta <= 15 {
		if err := writeAll(w, []byte{byte(delta)<<4 | typeCode}); err != nil {
			return wrapIO(err, "write field header")
		}
		*lastID = id
		return nil
	}
	if err := writeAll(w, []byte{typeCode}); err != nil {
		return wrapIO(err, "write field header")
	}
	if err := compactWriteI16(w, id); err != nil {
		return err
	}
	*lastID = id
	return nil
}

// CompactDecodeStruct reads fields until the stop byte.
func CompactDecodeStruct(r byteReader, cfg Config) (Struct, error) {
	var fields []Field
	lastID := int16(0)
	for {
		header, err := r.ReadByte()
		if err != nil {
			return Struct{}, wrapIO(err, "read field header")
		}
		if header == compactStopField {
			return Struct{Fields: fields}, nil
		}
		typeCode := header & 0x0f
		delta := header >> 4
		var id int16
		if delta == 0 {
			id, err = compactReadI16(r)
			if err != nil {
				return Struct{}, err
			}
		} else {
			id = lastID + int16(delta)
		}
		lastID = id
		var data Data
		if typeCode == compactBooleanTrue || typeCode == compactBooleanFalse {
			data = BoolData(typeCode == compactBooleanTrue)
		} else {
			kind, err := dataKindOf(typeCode)
			if err != nil {
				return Struct{}, err
			}
			data, err = CompactDecodeData(r, kind, cfg)
			if err != nil {
				return Struct{}, err
			}
		}
		fields = append(fields, Field{ID: id, Data: data})
	}
}

// CompactEncodeData writes a single value of any kind, without a
// leading type byte. Bool outside a struct field still needs an
// explicit value byte, since there is no field header to pack it
// into (list/set/map elements, map keys and values).
func CompactEncodeData(w byteWriter, d Data) error {
	switch v := d.(type) {
	case BoolData:
		b := byte(0)
		if v {
			b = 1
		}
		return wrapIO(writeAll(w, []byte{b}), "write bool")
	case I8Data:
		return wrapIO(writeAll(w, []byte{byte(v)}), "write i8")
	case I16Data:
		_, err := writeVarint32(w, int32ToZigzag(int32(v)))
		return err
	case I32Data:
		_, err := writeVarint32(w, int32ToZigzag(int32(v)))
		return err
	case I64Data:
		_, err := writeVarint64(w, int64ToZigzag(int64(v)))
		return err
	case DoubleData:
		return compactWriteDouble(w, float64(v))
	case BinaryData:
		return compactWriteBytes(w, []byte(v))
	case Struct:
		return CompactEncodeStruct(w, v)
	case Map:
		return compactEncodeMap(w, v)
	case Set:
		return compactEncodeElements(w, v.Elements())
	case List:
		return compactEncodeElements(w, v.Elements())
	default:
		return invalidInput("compact encode: unsupported value %T", d)
	}
}

// CompactDecodeData reads a single value of the given kind.
func CompactDecodeData(r byteReader, kind DataKind, cfg Config) (Data, error) {
	switch kind {
	case KindBool:
		b, err := r.ReadByte()
		if err != nil {
			return nil, wrapIO(err, "read bool")
		}
		if b != 0 && b != 1 {
			return nil, invalidInput("bool: byte %d is neither 0 nor 1", b)
		}
		return BoolData(b == 1), nil
	case KindI8:
		b, err := r.ReadByte()
		if err != nil {
			return nil, wrapIO(err, "read i8")
		}
		return I8Data(int8(b)), nil
	case KindI16:
		v, err := compactReadI16(r)
		if err != nil {
			return nil, err
		}
		return I16Data(v), nil
	case KindI32:
		u, err := readVarint32(r)
		if err != nil {
			return nil, err
		}
		return I32Data(zigzagToInt32(u)), nil
	case KindI64:
		u, err := readVarint64(r)
		if err != nil {
			return nil, err
		}
		return I64Data(zigzagToInt64(u)), nil
	case KindDouble:
		v, err := compactReadDouble(r)
		if err != nil {
			return nil, err
		}
		return DoubleData(v), nil
	case KindBinary:
		b, err := compactReadBytes(r, cfg)
		if err != nil {
			return nil, err
		}
		return BinaryData(b), nil
	case KindStruct:
		return CompactDecodeStruct(r, cfg)
	case KindMap:
		return compactDecodeMap(r, cfg)
	case KindSet:
		e, err := compactDecodeElements(r, cfg)
		if err != nil {
			return nil, err
		}
		return NewSet(e), nil
	case KindList:
		e, err := compactDecodeElements(r, cfg)
		if err != nil {
			return nil, err
		}
		return NewList(e), nil
	default:
		return nil, invalidInput("compact decode: unknown kind %d", kind)
	}
}

// compactEncodeElements writes a list/set header (packed size+type
// nibble for size<15, else a 0xf-nibble plus a separate varint size)
// followed by each element in turn.
func compactEncodeElements(w byteWriter, e Elements) error {
	typeCode := byte(e.Kind())
	n := e.Len()
	if n < 15 {
		if err := writeAll(w, []byte{byte(n)<<4 | typeCode}); err != nil {
			return wrapIO(err, "write list/set header")
		}
	} else {
		if err := writeAll(w, []byte{0xf0 | typeCode}); err != nil {
			return wrapIO(err, "write list/set header")
		}
		if _, err := writeVarint32(w, uint32(n)); err != nil {
			return err
		}
	}
	return writeElements(e, func(d Data) error { return CompactEncodeData(w, d) })
}

func compactDecodeElements(r byteReader, cfg Config) (Elements, error) {
	header, err := r.ReadByte()
	if err != nil {
		return nil, wrapIO(err, "read list/set header")
	}
	typeCode := header & 0x0f
	size := int32(header >> 4)
	if size == 15 {
		u, err := readVarint32(r)
		if err != nil {
			return nil, err
		}
		size = int32(u)
	}
	kind, err := dataKindFromByte(typeCode)
	if err != nil {
		return nil, err
	}
	if err := compactCheckContainerSize(cfg, kind, size, "list/set size"); err != nil {
		return nil, err
	}
	return buildElements(kind, size, func() (Data, error) { return CompactDecodeData(r, kind, cfg) })
}

// compactEncodeMap writes a single zero byte for an empty map (no key
// or value type exists to report), or a varint size followed by a
// packed key/value type byte and then the entries.
func compactEncodeMap(w byteWriter, m Map) error {
	if m.IsEmpty() {
		return wrapIO(writeAll(w, []byte{0x00}), "write empty map")
	}
	keyKind, ok := m.KeyKind()
	if !ok {
		return invalidInput("compact encode: map has no key kind")
	}
	valueKind, ok := m.ValueKind()
	if !ok {
		return invalidInput("compact encode: map has no value kind")
	}
	keyCode := byte(keyKind)
	valCode := byte(valueKind)
	if _, err := writeVarint32(w, uint32(m.Len())); err != nil {
		return err
	}
	if err := writeAll(w, []byte{keyCode<<4 | valCode}); err != nil {
		return wrapIO(err, "write map type byte")
	}
	for i := 0; i < m.Len(); i++ {
		k, v, _ := m.Get(i)
		if err := CompactEncodeData(w, k); err != nil {
			return err
		}
		if err := CompactEncodeData(w, v); err != nil {
			return err
		}
	}
	return nil
}

func compactDecodeMap(r byteReader, cfg Config) (Data, error) {
	u, err := readVarint32(r)
	if err != nil {
		return nil, err
	}
	size := int32(u)
	if size == 0 {
		return NewEmptyMap(), nil
	}
	typeByte, err := r.ReadByte()
	if err != nil {
		return nil, wrapIO(err, "read map type byte")
	}
	keyKind, err := dataKindFromByte(typeByte >> 4)
	if err != nil {
		return nil, err
	}
	valKind, err := dataKindFromByte(typeByte & 0x0f)
	if err != nil {
		return nil, err
	}
	if err := compactCheckContainerSize(cfg, keyKind, size, "map size"); err != nil {
		return nil, err
	}
	keys, err := buildElements(keyKind, size, func() (Data, error) { return CompactDecodeData(r, keyKind, cfg) })
	if err != nil {
		return nil, err
	}
	values, err := buildElements(valKind, size, func() (Data, error) { return CompactDecodeData(r, valKind, cfg) })
	if err != nil {
		return nil, err
	}
	m, err := NewMap(keys, values)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// compactCheckContainerSize rejects a declared element count before
// any element is read, both against the configured bound and against
// the minimum possible serialized size for elements of kind.
func compactCheckContainerSize(cfg Config, kind DataKind, size int32, context string) error {
	if err := cfg.checkContainerSize(size, context); err != nil {
		return err
	}
	minElem := getMinSerializedSize(kind)
	limit := cfg.MaxContainerSize
	if limit <= 0 {
		limit = DefaultConfig().MaxContainerSize
	}
	if int64(size)*int64(minElem) > int64(limit) {
		return invalidInput("%s: declared size %d too large for element kind %s", context, size, kind)
	}
	return nil
}

func compactWriteI16(w byteWriter, v int16) error {
	_, err := writeVarint32(w, int32ToZigzag(int32(v)))
	return err
}

func compactReadI16(r byteReader) (int16, error) {
	u, err := readVarint32(r)
	if err != nil {
		return 0, err
	}
	v := zigzagToInt32(u)
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, invalidInput("i16: value %d out of range", v)
	}
	return int16(v), nil
}

// compactWriteDouble and compactReadDouble use little-endian byte
// order, matching the interoperable behavior of real Compact protocol
// implementations rather than the published big-endian text.
func compactWriteDouble(w byteWriter, v float64) error {
	var buf [8]byte
	bits := math.Float64bits(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(bits >> (8 * uint(i)))
	}
	return wrapIO(writeAll(w, buf[:]), "write double")
}

func compactReadDouble(r byteReader) (float64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	var bits uint64
	for i := 0; i < 8; i++ {
		bits |= uint64(buf[i]) << (8 * uint(i))
	}
	return math.Float64frombits(bits), nil
}

func compactWriteString(w byteWriter, s string) error {
	return compactWriteBytes(w, []byte(s))
}

func compactReadString(r byteReader, cfg Config) (string, error) {
	b, err := compactReadBytes(r, cfg)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", invalidInput("string is not valid UTF-8")
	}
	return string(b), nil
}

func compactWriteBytes(w byteWriter, b []byte) error {
	if _, err := writeVarint32(w, uint32(len(b))); err != nil {
		return err
	}
	return wrapIO(writeAll(w, b), "write bytes")
}

func compactReadBytes(r byteReader, cfg Config) ([]byte, error) {
	u, err := readVarint32(r)
	if err != nil {
		return nil, err
	}
	n := int32(u)
	if err := cfg.checkLength(n, "binary/string length"); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
