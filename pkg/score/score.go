// ABOUTME: CSV score loading: parses note records and synthesizes one Sound
// ABOUTME: Malformed records are skipped, the rest are concatenated in order
package score

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soundwave-audio/soundwave-go/pkg/sound"
)

// Load reads a score of comma-separated note records, one per line:
//
//	whiteKey,accidental,octave,durationSeconds
//
// Records that do not have exactly four fields, or whose octave or duration
// fail to parse, are silently skipped. A record that parses but names a pitch
// letter outside A-G fails with sound.ErrInvalidKey. A score with no valid
// records fails with sound.ErrEmptyComposition.
func Load(r io.Reader) (sound.Sound, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var notes []sound.Sound
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue // malformed line, skip
			}
			return sound.Sound{}, fmt.Errorf("failed to read score: %w", err)
		}

		note, ok, err := parseRecord(record)
		if err != nil {
			return sound.Sound{}, err
		}
		if !ok {
			continue
		}
		notes = append(notes, note)
	}

	return sound.Concatenate(notes...)
}

// LoadFile opens path and loads the score it contains.
func LoadFile(path string) (sound.Sound, error) {
	f, err := os.Open(path)
	if err != nil {
		return sound.Sound{}, fmt.Errorf("failed to open score: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// parseRecord synthesizes one note from a CSV record. The second return value
// is false when the record is malformed and should be skipped.
func parseRecord(record []string) (sound.Sound, bool, error) {
	if len(record) != 4 {
		return sound.Sound{}, false, nil
	}
	if record[0] == "" || record[1] == "" {
		return sound.Sound{}, false, nil
	}

	octave, err := strconv.Atoi(record[2])
	if err != nil {
		return sound.Sound{}, false, nil
	}
	duration, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return sound.Sound{}, false, nil
	}

	note, err := sound.Note(record[0][0], record[1][0], octave, duration)
	if err != nil {
		return sound.Sound{}, false, err
	}
	return note, true, nil
}
