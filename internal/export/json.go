package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/nbodyviz/internal/series"
)

// SeriesData is the JSON form of a decoded stream. Positions are indexed
// [frame][body] as x, y, z triples.
type SeriesData struct {
	Source    string         `json:"source"`
	Bodies    int            `json:"bodies"`
	Frames    int            `json:"frames"`
	Radii     []float64      `json:"radii"`
	Spread    []float64      `json:"spread"`
	Positions [][][3]float64 `json:"positions"`
}

func NewSeriesData(source string, st *series.Store) SeriesData {
	data := SeriesData{
		Source:    source,
		Bodies:    st.BodyCount(),
		Frames:    st.FrameCount(),
		Radii:     st.Radii(),
		Spread:    make([]float64, st.FrameCount()),
		Positions: make([][][3]float64, st.FrameCount()),
	}
	for i := range data.Positions {
		f, _ := st.Frame(i)
		row := make([][3]float64, len(f))
		for j, p := range f {
			row[j] = [3]float64{p.X, p.Y, p.Z}
		}
		data.Positions[i] = row
		data.Spread[i] = st.Spread(i)
	}
	return data
}

func EncodeJSON(w io.Writer, data SeriesData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteJSON writes the series to path, or to stdout when path is "-".
func WriteJSON(path string, stdout io.Writer, source string, st *series.Store) error {
	data := NewSeriesData(source, st)
	if path == "-" {
		return EncodeJSON(stdout, data)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return EncodeJSON(file, data)
}
