// Package table loads two-column numeric curves (x, y) such as
// open-circuit potential against stoichiometry.
//
// The curves shipped with this package are embedded under data/ and are
// loaded at most once per process; the returned tables are shared and must
// not be modified.
package table

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//go:embed data/*.csv
var dataFS embed.FS

const dataDir = "data"

var ErrTooFewRows = errors.New("table: fewer than two rows")

type Table struct {
	Name string
	X    []float64
	Y    []float64
}

func (t *Table) Len() int { return len(t.X) }

var logger = zap.NewNop()

// SetLogger replaces the package logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Parse reads comma-separated (x, y) rows. Lines starting with '#' and blank
// lines are ignored.
func Parse(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	t := &Table{Name: name}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		line, _ := reader.FieldPos(0)
		x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s line %d: x: %w", name, line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s line %d: y: %w", name, line, err)
		}

		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	}

	if t.Len() < 2 {
		return nil, fmt.Errorf("parsing %s: %w", name, ErrTooFewRows)
	}
	return t, nil
}

// LoadFile reads a table from disk. The table name is the file name without extension.
func LoadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}
	defer f.Close()

	base := filepath.Base(filename)
	return Parse(strings.TrimSuffix(base, filepath.Ext(base)), f)
}

type entry struct {
	load func() (*Table, error)
}

var (
	mu    sync.Mutex
	cache = make(map[string]*entry)
)

// Load returns the embedded table with the given name (file stem), reading
// it on first use. Later calls return the same *Table.
func Load(name string) (*Table, error) {
	mu.Lock()
	e, ok := cache[name]
	if !ok {
		e = &entry{load: sync.OnceValues(func() (*Table, error) {
			return loadEmbedded(name)
		})}
		cache[name] = e
	}
	mu.Unlock()

	return e.load()
}

// MustLoad is like Load but panics on error. It is meant for package-level
// initialization of curves that ship with this package.
func MustLoad(name string) *Table {
	t, err := Load(name)
	if err != nil {
		panic(err)
	}
	return t
}

func loadEmbedded(name string) (*Table, error) {
	f, err := dataFS.Open(path.Join(dataDir, name+".csv"))
	if err != nil {
		return nil, fmt.Errorf("loading table %s: %w", name, err)
	}
	defer f.Close()

	t, err := Parse(name, f)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded table",
		zap.String("name", name),
		zap.Int("rows", t.Len()),
		zap.Float64("xmin", t.X[0]),
		zap.Float64("xmax", t.X[t.Len()-1]))
	return t, nil
}

// Names lists the embedded tables.
func Names() []string {
	entries, err := dataFS.ReadDir(dataDir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".csv" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names
}
