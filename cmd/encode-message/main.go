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

// Command encode-message builds a synthetic Jaeger-style emitBatch
// span batch and writes it to stdout, in Binary framing by default or
// Compact framing with --compact.
package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	thrift "github.com/sile/thrift-codec/lib/go/thrift"
)

var log = logging.MustGetLogger("encode-message")

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{color}%{level:.4s}%{color:reset} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
	logging.SetLevel(logging.INFO, "encode-message")
}

// process tags, matching the shape Jaeger's Thrift IDL emits for a
// call batch: a handful of typed key/value pairs carried on the
// batch's process struct.
func spanTags() thrift.List {
	tag := func(key string, vType int32, vStr string) thrift.Struct {
		return thrift.NewStruct(
			thrift.NewField(1, thrift.BinaryData(key)),
			thrift.NewField(2, thrift.I32Data(vType)),
			thrift.NewField(3, thrift.BinaryData(vStr)),
		)
	}
	tags := thrift.StructElements{
		tag("span.kind", 0, "client"),
		tag("component", 0, "thrift-codec"),
		tag("peer.service", 0, "encode-message"),
	}
	return thrift.NewList(tags)
}

func process() thrift.Struct {
	return thrift.NewStruct(
		thrift.NewField(1, thrift.BinaryData("encode-message")),
		thrift.NewField(2, spanTags()),
	)
}

func span(traceIDLow, traceIDHigh, spanID int64) thrift.Struct {
	return thrift.NewStruct(
		thrift.NewField(1, thrift.I64Data(traceIDLow)),
		thrift.NewField(2, thrift.I64Data(traceIDHigh)),
		thrift.NewField(3, thrift.I64Data(spanID)),
		thrift.NewField(4, thrift.I64Data(0)),
		thrift.NewField(5, thrift.BinaryData("emit")),
		thrift.NewField(6, thrift.I32Data(0)),
		thrift.NewField(7, thrift.I64Data(1_700_000_000_000)),
		thrift.NewField(8, thrift.I64Data(1_500)),
	)
}

func batch() thrift.Struct {
	spans := thrift.StructElements{
		span(1, 0, 1),
		span(1, 0, 2),
	}
	return thrift.NewStruct(
		thrift.NewField(1, process()),
		thrift.NewField(2, thrift.NewList(spans)),
	)
}

func emitBatchMessage() thrift.Message {
	body := thrift.NewStruct(thrift.NewField(1, batch()))
	return thrift.NewMessage("emitBatch", thrift.Oneway, 1, body)
}

func main() {
	setupLogging()

	app := cli.NewApp()
	app.Name = "encode-message"
	app.Usage = "encode a synthetic Thrift RPC message to stdout"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "compact",
			Usage: "write Compact protocol framing instead of Binary",
		},
	}
	app.Action = func(c *cli.Context) error {
		msg := emitBatchMessage()
		var err error
		if c.Bool("compact") {
			err = thrift.CompactEncodeMessage(os.Stdout, msg)
		} else {
			err = thrift.BinaryEncodeMessage(os.Stdout, msg)
		}
		if err != nil {
			log.Errorf("encode failed: %v", err)
			return err
		}
		log.Infof("wrote %s message %q, seq %d", msg.Kind, msg.MethodName, msg.SequenceID)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
