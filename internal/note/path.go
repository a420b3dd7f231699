package note

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/ledgermark/ledgermark/internal/model"
)

// StampLayout is the timestamp format embedded in note filenames. It is the
// single source of truth shared by the path deriver and the collector's
// filename parsing; the two must never drift apart. Colons are replaced by
// hyphens so the stamp stays path-safe, and second precision keeps filenames
// collision-resistant for interactively entered transactions.
const StampLayout = "2006-01-02T15-04-05"

// Filename derives the note filename for a transaction:
// <stamp>_<kind>.md, e.g. 2024-03-15T09-30-00_expense.md.
func Filename(occurredAt time.Time, kind model.Kind) string {
	return fmt.Sprintf("%s_%s.md", occurredAt.Format(StampLayout), kind)
}

// Path derives the full vault path for a transaction's note. All notes live
// flat under the ledger folder; vault paths are slash-separated regardless
// of platform.
func Path(folder string, occurredAt time.Time, kind model.Kind) string {
	return path.Join(folder, Filename(occurredAt, kind))
}

// ParseFilename recovers the timestamp and kind from a note filename
// produced by Filename. It reports false for names in any other shape,
// which lets the collector skip foreign files cheaply without reading them.
func ParseFilename(name string) (time.Time, model.Kind, bool) {
	base := path.Base(name)
	trimmed, isNote := strings.CutSuffix(base, ".md")
	if !isNote {
		return time.Time{}, "", false
	}

	stamp, kindPart, found := strings.Cut(trimmed, "_")
	if !found {
		return time.Time{}, "", false
	}

	occurredAt, err := time.Parse(StampLayout, stamp)
	if err != nil {
		return time.Time{}, "", false
	}
	kind, err := model.ParseKind(kindPart)
	if err != nil {
		return time.Time{}, "", false
	}
	return occurredAt, kind, true
}
