// ABOUTME: Minimal WAV container writer for quantized buffers
// ABOUTME: Writes mono 8-bit PCM, the same format the playback device sees
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const headerSize = 44

// Write encodes a quantized buffer as a mono 8-bit PCM WAV stream. The input
// is signed 8-bit samples as produced by Quantize; 8-bit WAV is unsigned, so
// samples are offset to 0-255 on the way out.
func Write(w io.Writer, data []byte, sampleRate int) error {
	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(headerSize-8+len(data)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(header[22:24], 1)  // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)) // byte rate, 1 byte/frame
	binary.LittleEndian.PutUint16(header[32:34], 1)                  // block align
	binary.LittleEndian.PutUint16(header[34:36], 8)                  // bits per sample

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write wav header: %w", err)
	}

	unsigned := make([]byte, len(data))
	for i, b := range data {
		unsigned[i] = b ^ 0x80
	}
	if _, err := w.Write(unsigned); err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}
	return nil
}

// WriteFile writes a quantized buffer to a WAV file at path.
func WriteFile(path string, data []byte, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}
	if err := Write(f, data, sampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
