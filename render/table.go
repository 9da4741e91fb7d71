package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/splinefit"
	"github.com/npillmayer/splinefit/bspline"
	"gonum.org/v1/gonum/mat"
)

// MatrixTable renders m as a table with row and column indices.
func MatrixTable(title string, m mat.Matrix) string {
	r, c := m.Dims()
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	header := table.Row{""}
	configs := make([]table.ColumnConfig, 0, c)
	for j := 0; j < c; j++ {
		header = append(header, j)
		configs = append(configs, table.ColumnConfig{Number: j + 2, Align: text.AlignRight})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	for i := 0; i < r; i++ {
		row := table.Row{i}
		for j := 0; j < c; j++ {
			row = append(row, cell(m.At(i, j)))
		}
		tw.AppendRow(row)
	}
	return tw.Render()
}

// PairsMatrix stacks pairs into an n×2 matrix, one point per row.
func PairsMatrix(pairs []splinefit.Pair) *mat.Dense {
	if len(pairs) == 0 {
		return nil
	}
	data := make([]float64, 0, 2*len(pairs))
	for _, p := range pairs {
		data = append(data, p.X(), p.Y())
	}
	return mat.NewDense(len(pairs), 2, data)
}

// Report writes the coefficient matrix N, the target matrix D and the
// control points P of a fit as tables.
func Report(w io.Writer, f *bspline.Fitting) error {
	if f == nil || f.Spline == nil {
		return fmt.Errorf("no fitting to report")
	}
	tables := []struct {
		title string
		m     *mat.Dense
	}{
		{"N", f.N},
		{"D", f.D},
		{"P", PairsMatrix(f.Spline.Controls)},
	}
	for _, t := range tables {
		if t.m == nil {
			continue
		}
		if _, err := fmt.Fprintln(w, MatrixTable(t.title, t.m)); err != nil {
			return err
		}
	}
	return nil
}

func cell(x float64) string {
	if splinefit.Is0(x) {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
