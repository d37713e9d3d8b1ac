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

// Command decode-message reads a framed Thrift RPC message from
// stdin and prints a summary. Binary framing is assumed unless
// --compact is given; --json dumps the decoded struct tree as
// indented JSON, and --verbose additionally pretty-prints the decoded
// Go value tree.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/op/go-logging"
	"github.com/urfave/cli"

	thrift "github.com/sile/thrift-codec/lib/go/thrift"
)

var log = logging.MustGetLogger("decode-message")

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{color}%{level:.4s}%{color:reset} %{message}`)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
	logging.SetLevel(logging.INFO, "decode-message")
}

// jsonField is the shape a decoded Data tree is rendered into for
// --json output; Data itself has no public struct shape a json
// encoder could walk directly, since containers are kept as sealed
// interfaces rather than exported union structs.
type jsonField struct {
	ID    int16       `json:"id"`
	Kind  string      `json:"kind"`
	Value interface{} `json:"value,omitempty"`
}

func toJSON(d thrift.Data) interface{} {
	switch v := d.(type) {
	case thrift.BoolData:
		return bool(v)
	case thrift.I8Data:
		return int8(v)
	case thrift.I16Data:
		return int16(v)
	case thrift.I32Data:
		return int32(v)
	case thrift.I64Data:
		return int64(v)
	case thrift.DoubleData:
		return float64(v)
	case thrift.BinaryData:
		return string(v)
	case thrift.Struct:
		return structToJSON(v)
	case thrift.List:
		return elementsToJSON(v.Elements())
	case thrift.Set:
		return elementsToJSON(v.Elements())
	case thrift.Map:
		out := make([]map[string]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			k, val, _ := v.Get(i)
			out = append(out, map[string]interface{}{"key": toJSON(k), "value": toJSON(val)})
		}
		return out
	default:
		return nil
	}
}

func elementsToJSON(e thrift.Elements) []interface{} {
	out := make([]interface{}, 0, e.Len())
	thrift.Iterate(e, func(_ int, d thrift.Data) bool {
		out = append(out, toJSON(d))
		return true
	})
	return out
}

func structToJSON(s thrift.Struct) []jsonField {
	out := make([]jsonField, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, jsonField{ID: f.ID, Kind: f.Data.Kind().String(), Value: toJSON(f.Data)})
	}
	return out
}

func main() {
	setupLogging()

	app := cli.NewApp()
	app.Name = "decode-message"
	app.Usage = "decode a Thrift RPC message from stdin"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "compact", Usage: "read Compact protocol framing instead of Binary"},
		cli.BoolFlag{Name: "json", Usage: "print the decoded struct tree as indented JSON"},
		cli.BoolFlag{Name: "verbose", Usage: "also pretty-print the decoded Go value tree"},
	}
	app.Action = func(c *cli.Context) error {
		cfg := thrift.DefaultConfig()
		var msg thrift.Message
		var err error
		if c.Bool("compact") {
			msg, err = thrift.CompactDecodeMessage(os.Stdin, cfg)
		} else {
			msg, err = thrift.BinaryDecodeMessage(os.Stdin, cfg)
		}
		if err != nil {
			log.Errorf("decode failed: %v", err)
			return err
		}

		summary := color.GreenString("%s", msg.Kind.String())
		log.Infof("%s %q seq=%d fields=%d", summary, msg.MethodName, msg.SequenceID, msg.Body.Len())

		if c.Bool("json") {
			out, err := json.MarshalIndent(structToJSON(msg.Body), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		}
		if c.Bool("verbose") {
			fmt.Printf("%# v\n", pretty.Formatter(msg))
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
