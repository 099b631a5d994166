package problem

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	ErrInvalidID            = errors.New("problem id must be a valid non-negative integer")
	ErrUnknownDataStructure = errors.New("unknown data structure")
)

// ID identifies a single problem. It drives every derived name: the
// solution file stem, the test filter and the index entry.
type ID uint64

// ParseID accepts decimal digits only; signs, spaces and hex are rejected.
func ParseID(raw string) (ID, error) {
	if raw == "" || strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidID, raw)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidID, raw)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Stem is the solution file name without extension, e.g. "s_42".
func (id ID) Stem() string {
	return "s_" + id.String()
}

// TestFilter is the name fragment handed to the test tool, e.g. "test_42".
func (id ID) TestFilter() string {
	return "test_" + id.String()
}

// IndexEntry is the registration line written to the index, without the
// trailing newline.
func (id ID) IndexEntry() string {
	return "mod " + id.Stem() + ";"
}

// ParseIndexEntry extracts the id from a registration line. The id is the
// text between the first '_' and the trailing ';'.
func ParseIndexEntry(line string) (ID, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasSuffix(line, ";") {
		return 0, false
	}
	_, rest, ok := strings.Cut(line, "_")
	if !ok {
		return 0, false
	}
	id, err := ParseID(strings.TrimSuffix(rest, ";"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// DataStructure selects the template a solution is scaffolded from.
type DataStructure int

const (
	Default DataStructure = iota
)

var dataStructureTags = map[DataStructure]string{
	Default: "default",
}

// DataStructures lists every known variant in declaration order.
func DataStructures() []DataStructure {
	return []DataStructure{Default}
}

func (ds DataStructure) String() string {
	if tag, ok := dataStructureTags[ds]; ok {
		return tag
	}
	return fmt.Sprintf("DataStructure(%d)", int(ds))
}

// Tags returns the accepted command-line tags.
func Tags() []string {
	all := DataStructures()
	tags := make([]string, 0, len(all))
	for _, ds := range all {
		tags = append(tags, ds.String())
	}
	return tags
}

func ParseDataStructure(raw string) (DataStructure, error) {
	tag := strings.ToLower(strings.TrimSpace(raw))
	for _, ds := range DataStructures() {
		if ds.String() == tag {
			return ds, nil
		}
	}
	msg := fmt.Sprintf("%q (expected one of: %s)", raw, strings.Join(Tags(), ", "))
	if s := Suggest(raw); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return 0, fmt.Errorf("%w %s", ErrUnknownDataStructure, msg)
}

// Suggest returns the closest known tag for a mistyped one, or "".
func Suggest(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ""
	}
	matches := fuzzy.Find(raw, Tags())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
