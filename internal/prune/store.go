package prune

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubesolver/internal/coord"
)

// FormatVersion identifies the on-disk table layout. Bump it whenever the
// coordinate definitions or table order change; stale files then fail the
// version check and get rebuilt instead of silently mis-pruning.
const FormatVersion uint32 = 1

var magic = [4]byte{'C', 'S', 'P', 'T'}

// ErrUnavailable is returned when persisted tables are missing, truncated,
// the wrong version, or fail their checksum. The caller recovers by
// rebuilding.
var ErrUnavailable = errors.New("prune: pruning tables unavailable")

// header layout: magic(4) version(4) crc32(4), then the four tables in
// fixed order at their fixed sizes.
const headerSize = 12

const payloadSize = SliceTwistSize + SliceFlipSize + CornerSliceSize + EdgeSliceSize

// DefaultPath returns the default table file path in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubesolver")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "pruning.tables"), nil
}

// Save writes the tables as a versioned, checksummed blob. The write goes
// through a temp file and rename so a crash never leaves a half-written
// table behind.
func (t *Tables) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}

	buf := make([]byte, headerSize+payloadSize)
	copy(buf[0:4], magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], FormatVersion)

	off := headerSize
	for _, table := range [][]uint8{t.SliceTwist, t.SliceFlip, t.CornerSlice, t.EdgeSlice} {
		copy(buf[off:], table)
		off += len(table)
	}
	binary.LittleEndian.PutUint32(buf[8:12], crc32.ChecksumIEEE(buf[headerSize:]))

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("failed to write tables: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace tables: %w", err)
	}
	return nil
}

// Load reads persisted tables, verifying magic, version, size and checksum.
// Any mismatch returns an error wrapping ErrUnavailable.
func Load(path string) (*Tables, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(buf) != headerSize+payloadSize {
		return nil, fmt.Errorf("%w: unexpected size %d", ErrUnavailable, len(buf))
	}
	if [4]byte(buf[0:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrUnavailable)
	}
	if v := binary.LittleEndian.Uint32(buf[4:8]); v != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrUnavailable, v, FormatVersion)
	}
	if sum := crc32.ChecksumIEEE(buf[headerSize:]); sum != binary.LittleEndian.Uint32(buf[8:12]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrUnavailable)
	}

	off := headerSize
	take := func(size int) []uint8 {
		out := make([]uint8, size)
		copy(out, buf[off:off+size])
		off += size
		return out
	}

	return &Tables{
		SliceTwist:  take(SliceTwistSize),
		SliceFlip:   take(SliceFlipSize),
		CornerSlice: take(CornerSliceSize),
		EdgeSlice:   take(EdgeSliceSize),
	}, nil
}

// LoadOrBuild loads tables from path, rebuilding and re-persisting them when
// the file is absent or unusable. A rebuild is always preferred over using a
// suspect file.
func LoadOrBuild(path string, mt *coord.MoveTables) (*Tables, error) {
	if t, err := Load(path); err == nil {
		return t, nil
	}
	t := Build(mt)
	if err := t.Save(path); err != nil {
		return nil, err
	}
	return t, nil
}
