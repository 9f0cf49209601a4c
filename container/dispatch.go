// SPDX-License-Identifier: EPL-2.0

package container

import (
	"io"
	"sync"
)

// Decoder turns a chunk's raw payload into a structured value.
type Decoder interface {
	DecodeChunk(payload []byte) (any, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(payload []byte) (any, error)

func (f DecoderFunc) DecodeChunk(payload []byte) (any, error) {
	return f(payload)
}

// Registry maps chunk identifiers (FourCC) to payload decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(identifier string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[identifier] = d
}

func (r *Registry) Get(identifier string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[identifier]
	return d, ok
}

// Dispatcher wraps a Scanner and hands each materialized payload to the
// decoder registered for its identifier. Chunks without a registered
// decoder pass through with their raw payload. A decode error never
// aborts the scan; it is attached to the chunk as DecodeErr.
type Dispatcher struct {
	scanner *Scanner
	reg     *Registry
}

func NewDispatcher(s *Scanner, reg *Registry) *Dispatcher {
	return &Dispatcher{scanner: s, reg: reg}
}

// Master returns the wrapped scanner's master header.
func (d *Dispatcher) Master() Master {
	return d.scanner.Master()
}

// Next yields the scanner's next chunk, decoded when possible.
func (d *Dispatcher) Next() (*Chunk, error) {
	ch, err := d.scanner.Next()
	if err != nil {
		return nil, err
	}

	if ch.Skipped || ch.Payload == nil {
		return ch, nil
	}

	dec, ok := d.reg.Get(ch.Identifier)
	if !ok {
		return ch, nil
	}

	value, derr := dec.DecodeChunk(ch.Payload)
	if derr != nil {
		ch.DecodeErr = derr
		return ch, nil
	}
	ch.Value = value

	return ch, nil
}

// ReadAll drains the remaining sequence, decoding as it goes.
func (d *Dispatcher) ReadAll() ([]*Chunk, error) {
	var chunks []*Chunk
	for {
		ch, err := d.Next()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, ch)
	}
}
