// SPDX-License-Identifier: MIT

// Package snapshot persists float64 matrices to memory-mapped files so
// benchmark inputs can be replayed bit-for-bit across runs.
//
// File layout (little endian):
//
//	[0:8)   magic "MMXSNAP1"
//	[8:16)  rows  uint64
//	[16:24) cols  uint64
//	[24:)   rows*cols IEEE-754 float64, row-major
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/mmult/matrix"
)

const (
	magic    = "MMXSNAP1"
	headSize = 24
	elemSize = 8
)

var (
	// ErrBadMagic indicates the file is not a matrix snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrTruncated indicates the file is shorter than its header claims.
	ErrTruncated = errors.New("snapshot: truncated file")
)

// Save writes m to path, replacing any existing file.
func Save(path string, m *matrix.Dense[float64]) (err error) {
	r, c := m.Shape()
	size := headSize + r*c*elemSize

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: save %s: %w", path, cerr)
		}
	}()

	if err = f.Truncate(int64(size)); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	defer func() {
		if uerr := data.Unmap(); err == nil && uerr != nil {
			err = fmt.Errorf("snapshot: save %s: %w", path, uerr)
		}
	}()

	copy(data[:8], magic)
	binary.LittleEndian.PutUint64(data[8:16], uint64(r))
	binary.LittleEndian.PutUint64(data[16:24], uint64(c))
	off := headSize
	for _, v := range m.Data() {
		binary.LittleEndian.PutUint64(data[off:off+elemSize], math.Float64bits(v))
		off += elemSize
	}

	if err = data.Flush(); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}

	return nil
}

// Load reads a matrix previously written by Save.
func Load(path string) (*matrix.Dense[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, err)
	}
	if info.Size() < headSize {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, ErrTruncated)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, err)
	}
	defer data.Unmap()

	return decode(path, data)
}

func decode(path string, data []byte) (*matrix.Dense[float64], error) {
	if string(data[:8]) != magic {
		return nil, fmt.Errorf("snapshot: load %s: %w", path, ErrBadMagic)
	}
	r := binary.LittleEndian.Uint64(data[8:16])
	c := binary.LittleEndian.Uint64(data[16:24])
	n := r * c
	if r > math.MaxInt32 || c > math.MaxInt32 || uint64(len(data)-headSize)/elemSize < n {
		return nil, fmt.Errorf("snapshot: load %s: %dx%d: %w", path, r, c, ErrTruncated)
	}

	values := make([]float64, n)
	off := headSize
	for idx := range values {
		values[idx] = math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+elemSize]))
		off += elemSize
	}
	m := matrix.NewDense[float64](int(r), int(c))
	m.Assign(values...)

	return m, nil
}
