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

// Field is one member of a Struct: a field id paired with its value.
// Thrift field ids are not required to be contiguous or sorted; both
// protocols encode the id with every field, and Compact additionally
// uses the gap from the previous field's id to pick its delta or
// long-form encoding.
type Field struct {
	ID   int16
	Data Data
}

// NewField makes a Field.
func NewField(id int16, data Data) Field {
	return Field{ID: id, Data: data}
}

// Struct is an ordered sequence of fields. Order is preserved on
// decode and is significant for Compact re-encoding, since Compact's
// field-id delta is computed against encounter order, not numeric
// order.
type Struct struct {
	Fields []Field
}

// NewStruct makes a Struct from fields.
func NewStruct(fields ...Field) Struct {
	return Struct{Fields: fields}
}

// Field returns the first field with the given id, if any.
func (s Struct) Field(id int16) (Field, bool) {
	for _, f := range s.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Len returns the field count.
func (s Struct) Len() int { return len(s.Fields) }

func (s Struct) Kind() DataKind { return KindStruct }
func (s Struct) dataValue()     {}
