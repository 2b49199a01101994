package graphfile

import (
	"bufio"
	"io"
	"strconv"

	"github.com/bischofs/TravelingSalesman/graph"
)

// Write emits one block: the size line, one row,col,weight line per edge
// in the given order, and the terminator. Edges are written as given, so a
// reader sees the same warnings Build would report.
func Write(w io.Writer, size int, edges []graph.Edge) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strconv.Itoa(size))
	bw.WriteByte('\n')

	var (
		e   graph.Edge
		buf []byte
	)
	for _, e = range edges {
		buf = strconv.AppendInt(buf[:0], int64(e.U), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(e.V), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	bw.WriteString(terminator + "\n")

	return bw.Flush()
}
