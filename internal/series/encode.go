package series

import (
	"bufio"
	"io"
	"strconv"
)

// Encode writes s in the stream format Decode reads. Floats use the
// shortest representation that round-trips exactly. Each frame repeats the
// stored radii.
func Encode(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 96)

	buf = strconv.AppendInt(buf[:0], int64(s.BodyCount()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(s.FrameCount()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}

	for _, f := range s.frames {
		for j, p := range f {
			buf = strconv.AppendFloat(buf[:0], p.X, 'g', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, p.Z, 'g', -1, 64)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, s.radii[j], 'g', -1, 64)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
