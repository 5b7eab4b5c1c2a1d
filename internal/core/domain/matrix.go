package domain

import "fmt"

// FeatureMatrix is a dense row-major matrix of feature values.
// Its width is fixed by the vectorizer vocabulary; a matrix with zero
// rows still reports that width.
type FeatureMatrix struct {
	rows int
	cols int
	data []float64
}

// NewFeatureMatrix allocates a zeroed rows x cols matrix.
func NewFeatureMatrix(rows, cols int) FeatureMatrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return FeatureMatrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (m FeatureMatrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m FeatureMatrix) Cols() int {
	return m.cols
}

// Row returns a view of row i. Modifying the slice modifies the matrix.
func (m FeatureMatrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols]
}

// At returns the value at row i, column j.
func (m FeatureMatrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m FeatureMatrix) Set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

// CheckWidth returns ErrAlignment if the matrix width differs from want.
func (m FeatureMatrix) CheckWidth(want int) error {
	if m.cols != want {
		return fmt.Errorf("%w: matrix has %d columns, model expects %d", ErrAlignment, m.cols, want)
	}
	return nil
}
