package matrix

import (
	"errors"
	"fmt"

	"github.com/edp1096/sparse"
)

var ErrIndexOutOfBounds = errors.New("matrix index out of bounds")

// Stamper accepts row contributions of a linear system. Indices are 1-based.
type Stamper interface {
	AddElement(i, j int, value float64) error
	AddRHS(i int, value float64) error
}

// SystemMatrix is a real sparse linear system A x = b solved by LU factorization.
type SystemMatrix struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
}

func NewMatrix(size int) (*SystemMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("creating sparse matrix: invalid size %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	return &SystemMatrix{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
	}, nil
}

func (m *SystemMatrix) AddElement(i, j int, value float64) error {
	if i <= 0 || j <= 0 || i > m.Size || j > m.Size {
		return fmt.Errorf("element (%d,%d) of %dx%d: %w", i, j, m.Size, m.Size, ErrIndexOutOfBounds)
	}
	m.matrix.GetElement(int64(i), int64(j)).Real += value
	return nil
}

func (m *SystemMatrix) AddRHS(i int, value float64) error {
	if i <= 0 || i > m.Size {
		return fmt.Errorf("rhs %d of %d: %w", i, m.Size, ErrIndexOutOfBounds)
	}
	m.rhs[i] += value
	return nil
}

func (m *SystemMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
}

func (m *SystemMatrix) Solve() error {
	if err := m.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %w", err)
	}

	solution, err := m.matrix.Solve(m.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}
	if len(solution) < m.Size+1 {
		return fmt.Errorf("matrix solve returned %d values for size %d", len(solution), m.Size)
	}
	m.solution = solution

	return nil
}

// Solution returns x with 1-based indexing; index 0 is unused.
func (m *SystemMatrix) Solution() []float64 {
	return m.solution
}

func (m *SystemMatrix) RHS() []float64 {
	return m.rhs
}

func (m *SystemMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
