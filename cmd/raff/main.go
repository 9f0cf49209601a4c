// SPDX-License-Identifier: EPL-2.0

// Command raff dumps the chunk structure of an IFF-based container file
// as JSON. It reads a file argument or standard input, skips chunks named
// with --ignore, and either lists raw records (container mode) or decoded
// values (chunk mode).
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ik5/raff"
	"github.com/ik5/raff/container"
)

var CLI struct {
	Source      string   `arg:"" optional:"" help:"Input file path. If omitted, binary data is read from standard input."`
	Mode        string   `enum:"container,chunk" default:"container" help:"Parsing mode: 'container' returns raw chunk records, 'chunk' returns decoded chunk values."`
	Ignore      []string `help:"Chunk identifiers to ignore (improves performance if unwanted chunks are skipped)."`
	ShowPayload bool     `help:"In container mode, include base64 payloads in the output."`
}

type masterOut struct {
	Identifier string `json:"identifier"`
	Size       uint64 `json:"size"`
	Type       string `json:"type"`
	GUID       string `json:"guid,omitempty"`
}

type chunkOut struct {
	Identifier string `json:"identifier"`
	Size       uint64 `json:"size"`
	Offset     int64  `json:"offset"`
	Skipped    bool   `json:"skipped,omitempty"`
	ListType   string `json:"list_type,omitempty"`
	GUID       string `json:"guid,omitempty"`
	Payload    string `json:"payload,omitempty"`
	Value      any    `json:"value,omitempty"`
	DecodeErr  string `json:"decode_error,omitempty"`
}

type output struct {
	Master masterOut  `json:"master"`
	Chunks []chunkOut `json:"chunks"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("raff"),
		kong.Description("IFF-based container/chunk parser utility."),
		kong.UsageOnError(),
	)

	cfg := container.Config{
		Ignore: CLI.Ignore,
		// Chunk mode needs payloads for the decoders; container mode only
		// reads them when they are going to be shown.
		Payload: CLI.ShowPayload || CLI.Mode == "chunk",
	}

	src, err := openSource()
	if err != nil {
		fail(err)
	}
	defer src.Close()

	scanner, err := container.NewScanner(src, cfg)
	if err != nil {
		fail(err)
	}

	var chunks []*container.Chunk
	if CLI.Mode == "chunk" {
		chunks, err = container.NewDispatcher(scanner, raff.DefaultRegistry()).ReadAll()
	} else {
		chunks, err = scanner.ReadAll()
	}
	if err != nil {
		fail(err)
	}

	if err := render(scanner.Master(), chunks); err != nil {
		fail(err)
	}
}

func openSource() (*container.ByteSource, error) {
	if CLI.Source != "" {
		return container.Open(CLI.Source)
	}
	return container.FromReader(os.Stdin), nil
}

func render(master container.Master, chunks []*container.Chunk) error {
	out := output{
		Master: masterOut{
			Identifier: master.Identifier,
			Size:       master.Size,
			Type:       master.Type,
			GUID:       master.GUID,
		},
	}

	for _, c := range chunks {
		co := chunkOut{
			Identifier: c.Identifier,
			Size:       c.Size,
			Offset:     c.Offset,
			Skipped:    c.Skipped,
			ListType:   c.ListType,
			GUID:       c.GUID,
			Value:      c.Value,
		}
		if c.DecodeErr != nil {
			co.DecodeErr = c.DecodeErr.Error()
		}
		if CLI.ShowPayload && c.Value == nil && c.Payload != nil {
			co.Payload = base64.StdEncoding.EncodeToString(c.Payload)
		}
		out.Chunks = append(out.Chunks, co)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "raff:", err)
	os.Exit(1)
}
