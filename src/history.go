package elect

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// HistoryStore is the §6.4 external collaborator interface: opaque to
// the core, consulted only by a caller's input-line editor.
type HistoryStore interface {
	Add(entry string) error
	Next() (string, bool)
	Prev() (string, bool)
}

// FileHistory is a HistoryStore backed by a newline-delimited file,
// capped at maxSize most recent entries.
type FileHistory struct {
	path    string
	entries []string
	maxSize int
	cursor  int
}

// NewFileHistory loads (or creates) the history file at path.
func NewFileHistory(path string, maxSize int) (*FileHistory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(path, nil, 0o600); werr != nil {
				return nil, errors.Wrapf(werr, "creating history file %s", path)
			}
			data = nil
		} else {
			return nil, errors.Wrapf(err, "reading history file %s", path)
		}
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}

	return &FileHistory{
		path:    path,
		entries: entries,
		maxSize: maxSize,
		cursor:  len(entries),
	}, nil
}

// Add appends a non-empty entry, persists it, and resets the cursor
// to the end of history. It trims the oldest entries past maxSize.
func (h *FileHistory) Add(entry string) error {
	if entry == "" {
		return nil
	}
	h.entries = append(h.entries, entry)
	if h.maxSize > 0 && len(h.entries) > h.maxSize {
		h.entries = h.entries[len(h.entries)-h.maxSize:]
	}
	h.cursor = len(h.entries)
	return os.WriteFile(h.path, []byte(strings.Join(h.entries, "\n")+"\n"), 0o600)
}

// Prev moves the cursor one entry back in time and returns it.
func (h *FileHistory) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry forward and returns it. Advancing
// past the most recent entry returns false.
func (h *FileHistory) Next() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		h.cursor = len(h.entries)
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}
