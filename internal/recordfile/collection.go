package recordfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/yigit/academia/internal/pkg/apperrors"
)

// Codec converts records of one type to and from their fixed-size on-disk
// form. Marshal must always produce exactly RecordSize bytes.
type Codec[R any] interface {
	// RecordSize returns the fixed byte length of one encoded record.
	RecordSize() int

	// MarshalRecord encodes rec into its on-disk form.
	MarshalRecord(rec R) ([]byte, error)

	// UnmarshalRecord decodes one record from exactly RecordSize bytes.
	UnmarshalRecord(data []byte) (R, error)
}

// Collection is a durable store of fixed-size records of one type backed by a
// single headerless binary file. End of file is end of collection; records
// are kept in insertion order and duplicate keys resolve first-match-wins.
//
// Every operation, reads included, holds the collection mutex for its full
// duration, so operations on one collection are strictly serialized. The
// in-place update relies on that: the read-seek-write sequence must never be
// split across a lock release.
type Collection[R any] struct {
	mu    sync.Mutex
	path  string
	codec Codec[R]
	keyOf func(R) string
}

// NewCollection creates a collection backed by the file at path. The file is
// created lazily on first append. keyOf extracts the lookup key of a record.
func NewCollection[R any](path string, codec Codec[R], keyOf func(R) string) *Collection[R] {
	return &Collection[R]{
		path:  path,
		codec: codec,
		keyOf: keyOf,
	}
}

// Path returns the backing file path.
func (c *Collection[R]) Path() string {
	return c.path
}

// Append adds one record to the end of the collection and syncs it to disk.
// It performs no duplicate-key checking; uniqueness is a caller precondition.
func (c *Collection[R]) Append(rec R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.codec.MarshalRecord(rec)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return apperrors.NewStorageError(err, fmt.Sprintf("opening %s for append", c.path))
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return apperrors.NewStorageError(err, fmt.Sprintf("appending to %s", c.path))
	}
	if err := f.Sync(); err != nil {
		return apperrors.NewStorageError(err, fmt.Sprintf("syncing %s", c.path))
	}

	return nil
}

// Scan calls fn for every stored record in storage order until fn returns
// false or the collection is exhausted. The lock is held for the whole scan,
// so fn must not call back into the collection.
func (c *Collection[R]) Scan(fn func(rec R) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Never-written collection is empty, not broken.
			return nil
		}
		return apperrors.NewStorageError(err, fmt.Sprintf("opening %s for scan", c.path))
	}
	defer f.Close()

	buf := make([]byte, c.codec.RecordSize())
	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return apperrors.NewStorageError(err, fmt.Sprintf("reading %s", c.path))
		}

		rec, err := c.codec.UnmarshalRecord(buf)
		if err != nil {
			return err
		}
		if !fn(rec) {
			return nil
		}
	}
}

// FindByKey returns the first record whose key matches, scanning in storage
// order. The second return value reports whether a match was found.
func (c *Collection[R]) FindByKey(key string) (R, bool, error) {
	var (
		found bool
		match R
	)

	err := c.Scan(func(rec R) bool {
		if c.keyOf(rec) == key {
			match = rec
			found = true
			return false
		}
		return true
	})

	return match, found, err
}

// UpdateByKey overwrites the first record whose key matches with rec, in its
// original storage slot. Returns apperrors.ErrRecordNotFound when no record
// matches.
func (c *Collection[R]) UpdateByKey(key string, rec R) error {
	return c.UpdateFirst(
		func(old R) bool { return c.keyOf(old) == key },
		func(R) R { return rec },
	)
}

// UpdateFirst locates the first record for which pred is true, applies update
// to it and writes the result back into the same slot. Returns
// apperrors.ErrRecordNotFound when no record matches.
//
// A write failure after the record has been located leaves the slot in an
// indeterminate state; it is reported to the caller, never retried.
func (c *Collection[R]) UpdateFirst(pred func(rec R) bool, update func(rec R) R) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.OpenFile(c.path, os.O_RDWR, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrRecordNotFound
		}
		return apperrors.NewStorageError(err, fmt.Sprintf("opening %s for update", c.path))
	}
	defer f.Close()

	size := int64(c.codec.RecordSize())
	buf := make([]byte, size)
	var offset int64

	for {
		if _, err := io.ReadFull(f, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return apperrors.ErrRecordNotFound
			}
			return apperrors.NewStorageError(err, fmt.Sprintf("reading %s", c.path))
		}

		rec, err := c.codec.UnmarshalRecord(buf)
		if err != nil {
			return err
		}

		if pred(rec) {
			data, err := c.codec.MarshalRecord(update(rec))
			if err != nil {
				return err
			}
			if _, err := f.WriteAt(data, offset); err != nil {
				return apperrors.NewStorageError(err, fmt.Sprintf("updating %s", c.path))
			}
			if err := f.Sync(); err != nil {
				return apperrors.NewStorageError(err, fmt.Sprintf("syncing %s", c.path))
			}
			return nil
		}

		offset += size
	}
}

// RemoveMatching deletes every record for which pred is true by rewriting the
// survivors to a side file and renaming it over the primary. The swap is
// atomic: a crash mid-rewrite leaves either the old file or a stray side
// file, never a half-written primary. Returns the number of records removed.
func (c *Collection[R]) RemoveMatching(pred func(rec R) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	src, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, apperrors.NewStorageError(err, fmt.Sprintf("opening %s for rewrite", c.path))
	}
	defer src.Close()

	tmpPath := c.path + ".tmp"
	dst, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, apperrors.NewStorageError(err, fmt.Sprintf("creating %s", tmpPath))
	}

	removed, err := c.rewrite(src, dst, pred)
	if err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return 0, err
	}

	if err := dst.Sync(); err != nil {
		dst.Close()
		os.Remove(tmpPath)
		return 0, apperrors.NewStorageError(err, fmt.Sprintf("syncing %s", tmpPath))
	}
	if err := dst.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, apperrors.NewStorageError(err, fmt.Sprintf("closing %s", tmpPath))
	}

	if removed == 0 {
		// Nothing changed; keep the primary untouched.
		os.Remove(tmpPath)
		return 0, nil
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return 0, apperrors.NewStorageError(err, fmt.Sprintf("publishing rewrite of %s", c.path))
	}

	return removed, nil
}

// rewrite copies every surviving record from src to dst and counts removals.
func (c *Collection[R]) rewrite(src io.Reader, dst io.Writer, pred func(rec R) bool) (int, error) {
	buf := make([]byte, c.codec.RecordSize())
	removed := 0

	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return removed, nil
			}
			return 0, apperrors.NewStorageError(err, fmt.Sprintf("reading %s", c.path))
		}

		rec, err := c.codec.UnmarshalRecord(buf)
		if err != nil {
			return 0, err
		}

		if pred(rec) {
			removed++
			continue
		}
		if _, err := dst.Write(buf); err != nil {
			return 0, apperrors.NewStorageError(err, "writing rewrite side file")
		}
	}
}

// Count returns the number of stored records, tombstones included.
func (c *Collection[R]) Count() (int, error) {
	n := 0
	err := c.Scan(func(R) bool {
		n++
		return true
	})
	return n, err
}
