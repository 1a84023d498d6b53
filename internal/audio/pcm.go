package audio

import (
	"context"
	"encoding/binary"
	"io"
)

// PCMSource adapts a raw signed 16-bit little-endian PCM stream (for
// example `arecord -f S16_LE ... |`) into normalized sample chunks.
type PCMSource struct {
	r         io.Reader
	chunkSize int
	buf       []byte
}

func NewPCMSource(r io.Reader, chunkSize int) *PCMSource {
	if chunkSize <= 0 {
		chunkSize = 1024
	}
	return &PCMSource{
		r:         r,
		chunkSize: chunkSize,
		buf:       make([]byte, chunkSize*2),
	}
}

// ReadChunk returns up to chunkSize samples normalized to [-1, 1]. A
// short tail before EOF is returned as a final partial chunk.
func (s *PCMSource) ReadChunk(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	samples := make([]float64, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		v := int16(binary.LittleEndian.Uint16(s.buf[i:]))
		samples = append(samples, float64(v)/32768.0)
	}
	if len(samples) == 0 {
		return nil, io.EOF
	}
	return samples, nil
}
