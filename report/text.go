package report

import (
	"bufio"
	"io"
	"strconv"
)

// Fixed lines of the console transcript.
const (
	matrixHeader  = "The matrix representation of the graph is:"
	lengthPrefix  = "Minimum circuit length is: "
	circuitPrefix = "The circuit is: ["
	noCircuit     = "No circuit..."
	warningLine   = "The row or col is larger than the size of the matrix."
	fatalLine     = "Error reading file. Please check your input."
)

// textPrinter writes the legacy console transcript.
type textPrinter struct {
	w io.Writer
}

func (p *textPrinter) Warning(int, error) error {
	_, err := io.WriteString(p.w, warningLine+"\n")
	return err
}

func (p *textPrinter) Fatal(error) error {
	_, err := io.WriteString(p.w, fatalLine+"\n")
	return err
}

// Graph writes
//
//	The matrix representation of the graph is:
//
//	[[0 6 7 ]
//	[6 0 1 ]
//	...
//
//	Minimum circuit length is: 22
//	The circuit is: [0, 4, 1, 3, 2, 0]
//
// followed by two blank lines, or a single "No circuit..." line in place of
// the circuit.
func (p *textPrinter) Graph(o Outcome) error {
	bw := bufio.NewWriter(p.w)

	bw.WriteString(matrixHeader + "\n\n[")
	var (
		row []int64
		w   int64
	)
	for _, row = range o.Rows {
		bw.WriteByte('[')
		for _, w = range row {
			bw.WriteString(strconv.FormatInt(w, 10))
			bw.WriteByte(' ')
		}
		bw.WriteString("]\n")
	}
	bw.WriteByte('\n')

	if o.Result == nil {
		bw.WriteString(noCircuit + "\n")
		return bw.Flush()
	}

	bw.WriteString(lengthPrefix)
	bw.WriteString(strconv.FormatInt(o.Result.Length, 10))
	bw.WriteString("\n" + circuitPrefix)
	var (
		i int
		v int
	)
	for i, v = range o.Result.Tour {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteString("]\n\n\n")

	return bw.Flush()
}

func (p *textPrinter) Close() error { return nil }
