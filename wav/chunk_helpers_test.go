package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks walks the top level chunks of an encoded container.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
	}

	return chunks, nil
}

// buildWav assembles a container from raw pieces so tests can produce
// malformed files.
func buildWav(fmtChunk *FmtChunk, fmtSize uint32, extra []byte, dataSize uint32, pcm []byte) []byte {
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(4+8+int(fmtSize)+8+len(pcm)))
	out = append(out, "WAVEfmt "...)
	out = binary.LittleEndian.AppendUint32(out, fmtSize)
	out = binary.LittleEndian.AppendUint16(out, fmtChunk.FormatTag)
	out = binary.LittleEndian.AppendUint16(out, fmtChunk.NumChannels)
	out = binary.LittleEndian.AppendUint32(out, fmtChunk.SampleRate)
	out = binary.LittleEndian.AppendUint32(out, fmtChunk.AvgBytesPerSec)
	out = binary.LittleEndian.AppendUint16(out, fmtChunk.BlockAlign)
	out = binary.LittleEndian.AppendUint16(out, fmtChunk.BitsPerSample)
	out = append(out, extra...)
	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, dataSize)

	return append(out, pcm...)
}
