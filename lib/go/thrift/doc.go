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

// Package thrift encodes and decodes Thrift RPC messages in both the
// Binary and Compact wire protocols, without generating code from a
// .thrift IDL file. Callers build and inspect messages through the
// Data/Elements/Struct/Map/Set/List/Message value model in this
// package and hand them to BinaryEncode*/BinaryDecode* or
// CompactEncode*/CompactDecode*.
//
// Both protocols are stateless and safe for concurrent use: each
// encode or decode call only touches the io.Reader/io.Writer and
// value tree passed to it.
package thrift
