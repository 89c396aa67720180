package mapping

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"sync"

	"github.com/katalvlaran/sublattice/core"
)

// ErrDecode indicates a malformed candidate line.
var ErrDecode = errors.New("mapping: cannot decode candidate")

// maxLineBytes bounds one JSONL candidate; a full Advantage chip mapping is ~100KB.
const maxLineBytes = 8 << 20

// ReadJSONL streams candidate mappings from r, one JSON object per line:
//
//	{"0": "128", "1": 133, ...}
//
// Values may be JSON strings or numbers (hardware qubits are usually integers).
// Blank lines are skipped. A read or decode failure is yielded as the final
// element, with a nil Table.
func ReadJSONL(r io.Reader) iter.Seq2[Table, error] {
	return func(yield func(Table, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		line := 0
		for sc.Scan() {
			line++
			raw := bytes.TrimSpace(sc.Bytes())
			if len(raw) == 0 {
				continue
			}
			t, err := decodeTable(raw)
			if err != nil {
				yield(nil, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(t, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// decodeTable parses one candidate object.
func decodeTable(raw []byte) (Table, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	t := make(Table, len(fields))
	for k, v := range fields {
		if len(v) > 0 && v[0] == '"' {
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return nil, fmt.Errorf("%w: key %q: %v", ErrDecode, k, err)
			}
			t[k] = s
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return nil, fmt.Errorf("%w: key %q: value must be a string or number", ErrDecode, k)
		}
		t[k] = n.String()
	}

	return t, nil
}

// FileEnumerator streams candidates from a JSONL file, re-opening it on every
// Enumerate call. The pattern and target arguments are ignored: the file holds
// candidates precomputed by the external sublattice enumerator.
type FileEnumerator struct {
	Path string

	mu  sync.Mutex
	err error
}

// Enumerate implements Enumerator.
func (f *FileEnumerator) Enumerate(*core.Graph, *core.Graph) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		f.setErr(nil)
		fh, err := os.Open(f.Path)
		if err != nil {
			f.setErr(err)
			return
		}
		defer fh.Close()

		for t, err := range ReadJSONL(fh) {
			if err != nil {
				f.setErr(fmt.Errorf("%s: %w", f.Path, err))
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Err reports the failure, if any, of the most recent Enumerate.
func (f *FileEnumerator) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.err
}

func (f *FileEnumerator) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}
