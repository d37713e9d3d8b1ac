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
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// Binary protocol: every multi-byte integer is big-endian, every
// length-prefixed value (string/binary, list/set/map, struct fields)
// is self-describing with an explicit type byte ahead of it. The
// message envelope is always written in the "strict" form: a version
// mask and message kind packed into the high/low 16 bits of one int32,
// matching the teacher library's TBinaryProtocol default.

const (
	binaryVersion1  = 0x80010000
	binaryStopField = 0
)

// BinaryEncodeMessage writes m in Binary protocol framing.
func BinaryEncodeMessage(w io.Writer, m Message) error {
	if !m.Kind.valid() {
		return invalidInput("message kind %d out of range", m.Kind)
	}
	header := uint32(binaryVersion1) | uint32(m.Kind)&0xff
	if err := binaryWriteU32(w, header); err != nil {
		return err
	}
	if err := binaryWriteString(w, m.MethodName); err != nil {
		return err
	}
	if err := binaryWriteI32(w, m.SequenceID); err != nil {
		return err
	}
	return BinaryEncodeStruct(w, m.Body)
}

// BinaryDecodeMessage reads a Message in Binary protocol framing.
func BinaryDecodeMessage(r io.Reader, cfg Config) (Message, error) {
	header, err := binaryReadU32(r)
	if err != nil {
		return Message{}, err
	}
	if header&0x80000000 == 0 {
		return Message{}, &Error{Kind: Other, Context: "binary message missing version flag"}
	}
	if (header>>16)&0x7fff != 1 {
		return Message{}, invalidInput("binary message has unsupported version %d", (header>>16)&0x7fff)
	}
	kind := MessageKind(header & 0xff)
	if !kind.valid() {
		return Message{}, invalidInput("message kind %d out of range", kind)
	}
	name, err := binaryReadString(r, cfg)
	if err != nil {
		return Message{}, err
	}
	seqID, err := binaryReadI32(r)
	if err != nil {
		return Message{}, err
	}
	body, err := BinaryDecodeStruct(r, cfg)
	if err != nil {
		return Message{}, err
	}
	return Message{MethodName: name, Kind: kind, SequenceID: seqID, Body: body}, nil
}

// BinaryEncodeStruct writes s as a sequence of type-tagged fields
// terminated by a stop byte.
func BinaryEncodeStruct(w io.Writer, s Struct) error {
	for _, f := range s.Fields {
		if err := binaryWriteByte(w, byte(f.Data.Kind())); err != nil {
			return err
		}
		if err := binaryWriteI16(w, f.ID); err != nil {
			return err
		}
		if err := BinaryEncodeData(w, f.Data); err != nil {
			return err
		}
	}
	return binaryWriteByte(w, binaryStopField)
}

// BinaryDecodeStruct reads fields until the stop byte.
func BinaryDecodeStruct(r io.Reader, cfg Config) (Struct, error) {
	var fields []Field
	for {
		kindByte, err := binaryReadByte(r)
		if err != nil {
			return Struct{}, err
		}
		if kindByte == binaryStopField {
			return Struct{Fields: fields}, nil
		}
		kind := DataKind(kindByte)
		id, err := binaryReadI16(r)
		if err != nil {
			return Struct{}, err
		}
		d, err := BinaryDecodeData(r, kind, cfg)
		if err != nil {
			return Struct{}, err
		}
		fields = append(fields, Field{ID: id, Data: d})
	}
}

// BinaryEncodeData writes a single value of any kind, without a
// leading type byte (the caller already knows d.Kind(), from a field
// header, a container header, or context).
func BinaryEncodeData(w io.Writer, d Data) error {
	switch v := d.(type) {
	case BoolData:
		b := byte(0)
		if v {
			b = 1
		}
		return binaryWriteByte(w, b)
	case I8Data:
		return binaryWriteByte(w, byte(v))
	case I16Data:
		return binaryWriteI16(w, int16(v))
	case I32Data:
		return binaryWriteI32(w, int32(v))
	case I64Data:
		return binaryWriteI64(w, int64(v))
	case DoubleData:
		return binaryWriteU64(w, math.Float64bits(float64(v)))
	case BinaryData:
		return binaryWriteBytes(w, []byte(v))
	case Struct:
		return BinaryEncodeStruct(w, v)
	case Map:
		return binaryEncodeMap(w, v)
	case Set:
		return binaryEncodeElements(w, v.Elements())
	case List:
		return binaryEncodeElements(w, v.Elements())
	default:
		return invalidInput("binary encode: unsupported value %T", d)
	}
}

// BinaryDecodeData reads a single value of the given kind.
func BinaryDecodeData(r io.Reader, kind DataKind, cfg Config) (Data, error) {
	switch kind {
	case KindBool:
		b, err := binaryReadByte(r)
		if err != nil {
			return nil, err
		}
		if b != 0 && b != 1 {
			return nil, invalidInput("bool: byte %d is neither 0 nor 1", b)
		}
		return BoolData(b == 1), nil
	case KindI8:
		b, err := binaryReadByte(r)
		if err != nil {
			return nil, err
		}
		return I8Data(int8(b)), nil
	case KindI16:
		v, err := binaryReadI16(r)
		if err != nil {
			return nil, err
		}
		return I16Data(v), nil
	case KindI32:
		v, err := binaryReadI32(r)
		if err != nil {
			return nil, err
		}
		return I32Data(v), nil
	case KindI64:
		v, err := binaryReadI64(r)
		if err != nil {
			return nil, err
		}
		return I64Data(v), nil
	case KindDouble:
		u, err := binaryReadU64(r)
		if err != nil {
			return nil, err
		}
		return DoubleData(math.Float64frombits(u)), nil
	case KindBinary:
		b, err := binaryReadBytes(r, cfg)
		if err != nil {
			return nil, err
		}
		return BinaryData(b), nil
	case KindStruct:
		return BinaryDecodeStruct(r, cfg)
	case KindMap:
		return binaryDecodeMap(r, cfg)
	case KindSet:
		e, err := binaryDecodeElements(r, cfg)
		if err != nil {
			return nil, err
		}
		return NewSet(e), nil
	case KindList:
		e, err := binaryDecodeElements(r, cfg)
		if err != nil {
			return nil, err
		}
		return NewList(e), nil
	default:
		return nil, invalidInput("binary decode: unknown kind %d", kind)
	}
}

func binaryEncodeElements(w io.Writer, e Elements) error {
	if err := binaryWriteByte(w, byte(e.Kind())); err != nil {
		return err
	}
	if err := binaryWriteI32(w, int32(e.Len())); err != nil {
		return err
	}
	return writeElements(e, func(d Data) error { return BinaryEncodeData(w, d) })
}

func binaryDecodeElements(r io.Reader, cfg Config) (Elements, error) {
	kindByte, err := binaryReadByte(r)
	if err != nil {
		return nil, err
	}
	kind := DataKind(kindByte)
	n, err := binaryReadI32(r)
	if err != nil {
		return nil, err
	}
	if err := cfg.checkContainerSize(n, "list/set size"); err != nil {
		return nil, err
	}
	return buildElements(kind, n, func() (Data, error) { return BinaryDecodeData(r, kind, cfg) })
}

func binaryEncodeMap(w io.Writer, m Map) error {
	keyKind, ok := m.KeyKind()
	if !ok {
		return invalidInput("binary encode: map has no key kind")
	}
	valueKind, ok := m.ValueKind()
	if !ok {
		return invalidInput("binary encode: map has no value kind")
	}
	if err := binaryWriteByte(w, byte(keyKind)); err != nil {
		return err
	}
	if err := binaryWriteByte(w, byte(valueKind)); err != nil {
		return err
	}
	if err := binaryWriteI32(w, int32(m.Len())); err != nil {
		return err
	}
	for i := 0; i < m.Len(); i++ {
		k, v, _ := m.Get(i)
		if err := BinaryEncodeData(w, k); err != nil {
			return err
		}
		if err := BinaryEncodeData(w, v); err != nil {
			return err
		}
	}
	return nil
}

func binaryDecodeMap(r io.Reader, cfg Config) (Data, error) {
	keyByte, err := binaryReadByte(r)
	if err != nil {
		return nil, err
	}
	valByte, err := binaryReadByte(r)
	if err != nil {
		return nil, err
	}
	n, err := binaryReadI32(r)
	if err != nil {
		return nil, err
	}
	if err := cfg.checkContainerSize(n, "map size"); err != nil {
		return nil, err
	}
	if n == 0 {
		return NewEmptyMap(), nil
	}
	keyKind, valKind := DataKind(keyByte), DataKind(valByte)
	keys, err := buildElements(keyKind, n, func() (Data, error) { return BinaryDecodeData(r, keyKind, cfg) })
	if err != nil {
		return nil, err
	}
	values, err := buildElements(valKind, n, func() (Data, error) { return BinaryDecodeData(r, valKind, cfg) })
	if err != nil {
		return nil, err
	}
	m, err := NewMap(keys, values)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func binaryWriteByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return wrapIO(err, "write byte")
}

func binaryReadByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func binaryWriteI16(w io.Writer, v int16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return wrapIO(err, "write i16")
}

func binaryReadI16(r io.Reader) (int16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[:])), nil
}

func binaryWriteI32(w io.Writer, v int32) error {
	return binaryWriteU32(w, uint32(v))
}

func binaryReadI32(r io.Reader) (int32, error) {
	u, err := binaryReadU32(r)
	if err != nil {
		return 0, err
	}
	return int32(u), nil
}

func binaryWriteU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return wrapIO(err, "write u32")
}

func binaryReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func binaryWriteI64(w io.Writer, v int64) error {
	return binaryWriteU64(w, uint64(v))
}

func binaryReadI64(r io.Reader) (int64, error) {
	u, err := binaryReadU64(r)
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

func binaryWriteU64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return wrapIO(err, "write u64")
}

func binaryReadU64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

func binaryWriteString(w io.Writer, s string) error {
	return binaryWriteBytes(w, []byte(s))
}

func binaryReadString(r io.Reader, cfg Config) (string, error) {
	b, err := binaryReadBytes(r, cfg)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", invalidInput("string is not valid UTF-8")
	}
	return string(b), nil
}

func binaryWriteBytes(w io.Writer, b []byte) error {
	if err := binaryWriteI32(w, int32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return wrapIO(err, "write bytes")
}

func binaryReadBytes(r io.Reader, cfg Config) ([]byte, error) {
	n, err := binaryReadI32(r)
	if err != nil {
		return nil, err
	}
	if err := cfg.checkLength(n, "binary/string length"); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
