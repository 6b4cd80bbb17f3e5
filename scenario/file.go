package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/veletrack/raillock/core"
)

// Sentinel errors for YAML scenario validation.
var (
	// ErrBadShape indicates a ragged matrix or a row/column count that
	// disagrees with the names and available vector.
	ErrBadShape = errors.New("scenario: matrices must be rectangular and match the declared sizes")

	// ErrNegativeEntry indicates a negative unit count somewhere in the file.
	ErrNegativeEntry = errors.New("scenario: unit counts must be non-negative")

	// ErrAllocOverMax indicates an allocation entry above the declared maximum.
	ErrAllocOverMax = errors.New("scenario: allocation exceeds declared maximum")
)

// File is the YAML schema for a scenario. Train and track counts are
// implied by the lengths of Trains and Available; Need is always derived,
// never read from the file.
//
//	trains: [A, B]
//	tracks: [T0, T1]
//	available: [1, 0]
//	maximum:
//	  - [1, 1]
//	  - [0, 1]
//	allocation:
//	  - [0, 1]
//	  - [0, 0]
type File struct {
	Trains     []string `yaml:"trains"`
	Tracks     []string `yaml:"tracks"`
	Available  []int    `yaml:"available"`
	Maximum    [][]int  `yaml:"maximum"`
	Allocation [][]int  `yaml:"allocation"`
}

// Load reads and parses a YAML scenario file from path.
func Load(path string) (*core.State, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(contents)
}

// Parse decodes a YAML scenario document and builds a validated State.
// Validation happens here, at the trust boundary: shape, non-negativity,
// and Allocation ≤ Maximum are all enforced before the core sees the data.
func Parse(contents []byte) (*core.State, error) {
	var f File
	if err := yaml.Unmarshal(contents, &f); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}

	n, m := len(f.Trains), len(f.Tracks)
	s, err := core.New(n, m, core.WithTrainNames(f.Trains...), core.WithTrackNames(f.Tracks...))
	if err != nil {
		return nil, err
	}

	if err = f.validate(n, m); err != nil {
		return nil, err
	}

	copy(s.Available, f.Available)
	for i := 0; i < n; i++ {
		copy(s.Maximum[i], f.Maximum[i])
		copy(s.Allocation[i], f.Allocation[i])
	}
	s.RecomputeNeed()

	return s, nil
}

// validate enforces the schema invariants against the declared n×m shape.
func (f *File) validate(n, m int) error {
	if len(f.Available) != m || len(f.Maximum) != n || len(f.Allocation) != n {
		return fmt.Errorf("scenario: available/maximum/allocation sizes: %w", ErrBadShape)
	}

	for j, units := range f.Available {
		if units < 0 {
			return fmt.Errorf("scenario: available[%d]=%d: %w", j, units, ErrNegativeEntry)
		}
	}

	for i := 0; i < n; i++ {
		if len(f.Maximum[i]) != m || len(f.Allocation[i]) != m {
			return fmt.Errorf("scenario: row %d: %w", i, ErrBadShape)
		}
		for j := 0; j < m; j++ {
			if f.Maximum[i][j] < 0 || f.Allocation[i][j] < 0 {
				return fmt.Errorf("scenario: row %d col %d: %w", i, j, ErrNegativeEntry)
			}
			if f.Allocation[i][j] > f.Maximum[i][j] {
				return fmt.Errorf("scenario: row %d col %d: allocation %d > maximum %d: %w",
					i, j, f.Allocation[i][j], f.Maximum[i][j], ErrAllocOverMax)
			}
		}
	}

	return nil
}
