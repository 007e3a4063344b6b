package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLine bounds a single record line; real records are well under 128 bytes.
const maxLine = 1 << 20

// maxPrealloc caps up-front allocation so a bogus header cannot reserve
// memory the stream never backs with records.
const maxPrealloc = 1 << 16

// Decode reads a whole stream and returns the decoded Store. It reads
// exactly the records the header promises; anything after them is ignored.
// On failure the returned error wraps ErrMalformedHeader,
// ErrTruncatedStream or ErrMalformedRecord and no Store is returned.
func Decode(r io.Reader) (*Store, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	line := 0

	next := func() (string, bool, error) {
		if !sc.Scan() {
			return "", false, sc.Err()
		}
		line++
		return sc.Text(), true, nil
	}

	text, ok, err := next()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !ok {
		return nil, &DecodeError{Line: 1, Err: ErrMalformedHeader}
	}
	numBodies, seconds, err := parseHeader(text)
	if err != nil {
		return nil, &DecodeError{Line: line, Text: text, Err: err}
	}

	frames := make([]Frame, 0, min(seconds, maxPrealloc))
	radii := make([]float64, 0, min(numBodies, maxPrealloc))

	for i := 0; i < seconds; i++ {
		frame := make(Frame, 0, min(numBodies, maxPrealloc))
		for j := 0; j < numBodies; j++ {
			text, ok, err := next()
			if err != nil {
				return nil, fmt.Errorf("read record: %w", err)
			}
			if !ok {
				return nil, &DecodeError{
					Line: line + 1,
					Err: fmt.Errorf("%w: got %d of %d records", ErrTruncatedStream, i*numBodies+j, numBodies*seconds),
				}
			}
			pos, radius, err := parseRecord(text)
			if err != nil {
				return nil, &DecodeError{Line: line, Text: text, Err: err}
			}
			frame = append(frame, pos)
			if len(radii) < numBodies {
				radii = append(radii, radius)
			}
		}
		frames = append(frames, frame)
	}

	return &Store{frames: frames, radii: radii}, nil
}

// DecodeFile decodes the stream stored at path; "-" reads standard input.
func DecodeFile(path string) (*Store, error) {
	if path == "-" || path == "" {
		return Decode(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func parseHeader(text string) (numBodies, seconds int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedHeader, len(fields))
	}
	numBodies, err = strconv.Atoi(fields[0])
	if err != nil || numBodies < 0 {
		return 0, 0, fmt.Errorf("%w: num_bodies %q", ErrMalformedHeader, fields[0])
	}
	seconds, err = strconv.Atoi(fields[1])
	if err != nil || seconds < 0 {
		return 0, 0, fmt.Errorf("%w: seconds %q", ErrMalformedHeader, fields[1])
	}
	return numBodies, seconds, nil
}

func parseRecord(text string) (Position, float64, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Position{}, 0, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRecord, len(fields))
	}
	var v [4]float64
	for k, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Position{}, 0, fmt.Errorf("%w: field %d %q", ErrMalformedRecord, k+1, f)
		}
		v[k] = x
	}
	return Position{v[0], v[1], v[2]}, v[3], nil
}
