// SPDX-License-Identifier: EPL-2.0

package raff

import (
	"io"

	"github.com/ik5/raff/chunks/bext"
	"github.com/ik5/raff/chunks/info"
	"github.com/ik5/raff/chunks/wavefmt"
	"github.com/ik5/raff/container"
)

// ScanFile walks the container in the file at path and returns its master
// header and chunk records. The file is closed on all paths.
func ScanFile(path string, cfg container.Config) (container.Master, []*container.Chunk, error) {
	src, err := container.Open(path)
	if err != nil {
		return container.Master{}, nil, err
	}
	defer src.Close()

	return scan(src, cfg)
}

// ScanBytes walks a container held in memory.
func ScanBytes(data []byte, cfg container.Config) (container.Master, []*container.Chunk, error) {
	return scan(container.FromBytes(data), cfg)
}

// ScanReader walks a container read from an open stream. The caller keeps
// ownership of r.
func ScanReader(r io.Reader, cfg container.Config) (container.Master, []*container.Chunk, error) {
	return scan(container.FromReader(r), cfg)
}

func scan(src *container.ByteSource, cfg container.Config) (container.Master, []*container.Chunk, error) {
	scanner, err := container.NewScanner(src, cfg)
	if err != nil {
		return container.Master{}, nil, err
	}

	chunks, err := scanner.ReadAll()
	return scanner.Master(), chunks, err
}

// DefaultRegistry returns a registry preloaded with the decoders for the
// common WAVE metadata chunks: "fmt ", LIST (INFO lists) and bext.
func DefaultRegistry() *container.Registry {
	reg := container.NewRegistry()
	reg.Register("fmt ", wavefmt.Decoder{})
	reg.Register("LIST", info.Decoder{})
	reg.Register("bext", bext.Decoder{})

	return reg
}
