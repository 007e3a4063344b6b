package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/nbodyviz/internal/series"
)

func TestSeriesJSON(t *testing.T) {
	st, err := series.Decode(strings.NewReader("2 2\n1 2 3 4\n5 6 7 8\n1 2 3 4\n5 6 7 8\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, NewSeriesData("output.txt", st)); err != nil {
		t.Fatal(err)
	}

	var got SeriesData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Source != "output.txt" || got.Bodies != 2 || got.Frames != 2 {
		t.Errorf("unexpected header: %+v", got)
	}
	if got.Positions[1][1] != [3]float64{5, 6, 7} {
		t.Errorf("positions[1][1] = %v", got.Positions[1][1])
	}
	if got.Radii[0] != 4 || got.Radii[1] != 8 {
		t.Errorf("radii = %v", got.Radii)
	}
	if len(got.Spread) != 2 {
		t.Errorf("spread length = %d", len(got.Spread))
	}
}

func TestWriteJSON(t *testing.T) {
	st, err := series.Decode(strings.NewReader("1 1\n0 0 0 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out", "run.json")
	if err := WriteJSON(path, nil, "stdin", st); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"bodies": 1`) {
		t.Errorf("unexpected contents: %s", data)
	}
}

func TestWriteJSONStdout(t *testing.T) {
	st, err := series.Decode(strings.NewReader("1 1\n0 0 0 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON("-", &buf, "stdin", st); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var got SeriesData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("stdout is not json: %v", err)
	}
	if got.Frames != 1 {
		t.Errorf("frames = %d", got.Frames)
	}
}
