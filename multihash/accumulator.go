package multihash

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
)

// ChunkSize is the block size used to read the target file.
const ChunkSize = 4096

// Accumulator computes every supported digest of one file in
// a single sequential pass. It is bound to its path for its
// whole lifetime and has no way to be reset; create a new one
// per file. An Accumulator is not safe for concurrent use.
type Accumulator struct {
	path      string
	chunkSize int
	states    map[Algorithm]hash.Hash
	sink      io.Writer

	done    bool
	passErr error
	size    int64
	digests map[Algorithm]string
}

// New returns an Accumulator for the file at path with one
// fresh hash state per supported algorithm. No I/O happens
// here; a missing or unreadable path is reported by Compute.
func New(path string) *Accumulator {
	return newAccumulator(path, ChunkSize)
}

func newAccumulator(path string, chunkSize int) *Accumulator {
	ac := &Accumulator{
		path:      path,
		chunkSize: chunkSize,
		states:    make(map[Algorithm]hash.Hash, len(algorithms)),
	}

	ws := make([]io.Writer, 0, len(algorithms))

	for _, en := range algorithms {
		st := en.new()
		ac.states[en.id] = st
		ws = append(ws, st)
	}

	ac.sink = io.MultiWriter(ws...)

	return ac
}

// Path returns the target file path.
func (ac *Accumulator) Path() string {
	return ac.path
}

// Size returns the number of bytes consumed by the pass, or 0
// before a successful pass.
func (ac *Accumulator) Size() int64 {
	return ac.size
}

// Compute returns the lowercase hex digest of the target file
// for alg.
//
// The first call reads the file once and updates every hash
// state with each block. Its outcome is kept: later calls
// return the cached digest for any algorithm, or the same
// error if the pass failed, without reading the file again.
func (ac *Accumulator) Compute(alg Algorithm) (string, error) {
	const errCtx = "computing digest"

	if _, ok := ac.states[alg]; !ok {
		return "", fmt.Errorf("%s: %w: %q", errCtx, ErrUnsupportedAlgorithm, alg)
	}

	if err := ac.pass(); err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return ac.digests[alg], nil
}

// Digests returns every supported digest of the target file,
// running the pass if Compute has not done so yet.
func (ac *Accumulator) Digests() (map[Algorithm]string, error) {
	const errCtx = "computing digests"

	if err := ac.pass(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	out := make(map[Algorithm]string, len(ac.digests))
	for alg, dg := range ac.digests {
		out[alg] = dg
	}

	return out, nil
}

func (ac *Accumulator) pass() error {
	if ac.done {
		return ac.passErr
	}

	ac.done = true
	ac.passErr = ac.stream()

	if ac.passErr != nil {
		return ac.passErr
	}

	ac.digests = make(map[Algorithm]string, len(ac.states))
	for alg, st := range ac.states {
		ac.digests[alg] = hex.EncodeToString(st.Sum(nil))
	}

	return nil
}

// stream feeds the file to every hash state in chunkSize
// blocks.
func (ac *Accumulator) stream() error {
	const errCtx = "reading file"

	fi, err := os.Open(ac.path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w: %w", errCtx, ErrFileNotFound, err)
		}

		return fmt.Errorf("%s: %w: %w", errCtx, ErrReadFailure, err)
	}

	defer fi.Close() //nolint:errcheck // read-only file

	buf := make([]byte, ac.chunkSize)

	var size int64

	for {
		n, err := fi.Read(buf)
		if n > 0 {
			// hash.Hash writes never fail
			_, _ = ac.sink.Write(buf[:n])
			size += int64(n)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("%s: %w: %w", errCtx, ErrReadFailure, err)
		}
	}

	ac.size = size

	return nil
}
