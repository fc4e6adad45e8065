// SPDX-License-Identifier: MIT
package snapshot_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/mmult/matrix"
	"github.com/katalvlaran/mmult/snapshot"
	"github.com/stretchr/testify/require"
)

// TestSaveLoadRoundTrip preserves shape and exact bits.
func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mmx")
	m := matrix.NewDense[float64](3, 4)
	m.Assign(1, -2.5, 3, math.Pi, 5, 6, 7, 8, 9, 1e-300, 11, math.MaxFloat64)

	require.NoError(t, snapshot.Save(path, m))
	got, err := snapshot.Load(path)
	require.NoError(t, err)
	require.Equal(t, "3x4", got.DimString())
	require.True(t, cmp.Equal(m.Data(), got.Data()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, 24+12*8, info.Size())
}

// TestSaveOverwrites replaces an existing larger snapshot.
func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mmx")
	require.NoError(t, snapshot.Save(path, matrix.NewFilled(10, 10, 1.0)))
	require.NoError(t, snapshot.Save(path, matrix.NewFilled(1, 2, 3.0)))

	got, err := snapshot.Load(path)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, got.Data())
}

// TestSaveLoadEmpty handles a matrix with no elements.
func TestSaveLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.mmx")
	require.NoError(t, snapshot.Save(path, matrix.NewDense[float64](0, 5)))

	got, err := snapshot.Load(path)
	require.NoError(t, err)
	require.Equal(t, "0x5", got.DimString())
}

// TestLoadBadMagic rejects foreign files.
func TestLoadBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk")
	require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o600))

	_, err := snapshot.Load(path)
	require.ErrorIs(t, err, snapshot.ErrBadMagic)
}

// TestLoadTruncated detects files shorter than the header or the declared payload.
func TestLoadTruncated(t *testing.T) {
	dir := t.TempDir()

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte("MMX"), 0o600))
	_, err := snapshot.Load(short)
	require.ErrorIs(t, err, snapshot.ErrTruncated)

	cut := filepath.Join(dir, "cut.mmx")
	require.NoError(t, snapshot.Save(cut, matrix.NewFilled(4, 4, 2.0)))
	require.NoError(t, os.Truncate(cut, 24+8*3))
	_, err = snapshot.Load(cut)
	require.ErrorIs(t, err, snapshot.ErrTruncated)

	// A header claiming more rows than an int32 can index is rejected
	// before any allocation, even though rows*cols*8 bytes never follow.
	for _, dims := range [][2]uint64{{math.MaxInt32 + 1, 1}, {1, math.MaxInt32 + 1}, {math.MaxUint64, 2}} {
		huge := filepath.Join(dir, "huge.mmx")
		head := make([]byte, 24+8)
		copy(head, "MMXSNAP1")
		binary.LittleEndian.PutUint64(head[8:16], dims[0])
		binary.LittleEndian.PutUint64(head[16:24], dims[1])
		require.NoError(t, os.WriteFile(huge, head, 0o600))

		_, err = snapshot.Load(huge)
		require.ErrorIs(t, err, snapshot.ErrTruncated, "%dx%d", dims[0], dims[1])
	}
}

// TestLoadMissing surfaces the filesystem error.
func TestLoadMissing(t *testing.T) {
	_, err := snapshot.Load(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
