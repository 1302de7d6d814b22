package history

// DefaultCapacity is the number of entries kept when New is given a
// non-positive capacity.
const DefaultCapacity = 100

// NotBrowsing is the cursor value while the live line is being edited.
const NotBrowsing = -1

type Options struct {
	// IgnoreDups drops a push that equals the most recent entry.
	IgnoreDups bool
}

// Store is a bounded most-recent-first list of lines.
//
// Entries are kept oldest-first internally so that Push is an append; At and
// Entries translate to most-recent-first offsets.
type Store struct {
	lines    []string
	capacity int
	cursor   int
	opt      Options
}

func New(capacity int) *Store {
	return NewWithOptions(capacity, Options{})
}

func NewWithOptions(capacity int, opt Options) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
		cursor:   NotBrowsing,
		opt:      opt,
	}
}

func (s *Store) Capacity() int { return s.capacity }

func (s *Store) Len() int { return len(s.lines) }

// Push stores line as the most recent entry and resets the cursor. When the
// store is full the oldest entry is evicted. It reports whether line was
// stored.
func (s *Store) Push(line string) bool {
	s.cursor = NotBrowsing
	if s.opt.IgnoreDups && len(s.lines) > 0 && s.lines[len(s.lines)-1] == line {
		return false
	}

	s.lines = append(s.lines, line)
	if len(s.lines) > s.capacity {
		// Copy down instead of reslicing so the backing array stays bounded.
		n := copy(s.lines, s.lines[len(s.lines)-s.capacity:])
		clear(s.lines[n:])
		s.lines = s.lines[:n]
	}
	return true
}

// At returns the entry i steps back from the most recent one.
func (s *Store) At(i int) (string, bool) {
	if i < 0 || i >= len(s.lines) {
		return "", false
	}
	return s.lines[len(s.lines)-1-i], true
}

// Entries returns a copy of all entries, most recent first.
func (s *Store) Entries() []string {
	out := make([]string, len(s.lines))
	for i := range s.lines {
		out[i] = s.lines[len(s.lines)-1-i]
	}
	return out
}

func (s *Store) Cursor() int { return s.cursor }

func (s *Store) Browsing() bool { return s.cursor != NotBrowsing }

func (s *Store) ResetCursor() { s.cursor = NotBrowsing }

// Older steps the cursor one entry back in time and returns that entry.
// It reports false when there is no older entry; the cursor is unchanged.
func (s *Store) Older() (string, bool) {
	if s.cursor+1 >= len(s.lines) {
		return "", false
	}
	s.cursor++
	return s.At(s.cursor)
}

// Newer steps the cursor one entry forward in time. Stepping past the most
// recent entry leaves browsing mode and returns "", true so the caller can
// restore an empty live line. It reports false when not browsing.
func (s *Store) Newer() (string, bool) {
	if s.cursor == NotBrowsing {
		return "", false
	}
	s.cursor--
	if s.cursor == NotBrowsing {
		return "", true
	}
	return s.At(s.cursor)
}
