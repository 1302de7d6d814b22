package buffer

// ChangeKind identifies the operation that produced a change.
type ChangeKind uint8

const (
	ChangeMove ChangeKind = iota
	ChangeInsert
	ChangeDelete
	ChangeTruncate
	ChangeReplace
	ChangeClear
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeMove:
		return "move"
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeTruncate:
		return "truncate"
	case ChangeReplace:
		return "replace"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Change is a normalized, versioned mutation payload.
//
// Offset is the byte offset in the text before the change where DeletedText
// was removed and InsertText was inserted. Pure moves leave both empty.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64
	PointBefore   int
	PointAfter    int
	Offset        int
	InsertText    string
	DeletedText   string
}

type changeBuilder struct {
	kind          ChangeKind
	versionBefore uint64
	pointBefore   int
	textBefore    string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:          kind,
		versionBefore: b.version,
		pointBefore:   b.point,
		textBefore:    b.text,
	}
}

// commitChange bumps the version and records the change when text or point
// actually moved. It reports whether anything changed.
func (b *Buffer) commitChange(cb changeBuilder, offset int, inserted, deleted string) bool {
	if b.text == cb.textBefore && b.point == cb.pointBefore {
		return false
	}
	b.version++
	b.lastChange = Change{
		Kind:          cb.kind,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		PointBefore:   cb.pointBefore,
		PointAfter:    b.point,
		Offset:        offset,
		InsertText:    inserted,
		DeletedText:   deleted,
	}
	b.hasLastChange = true
	return true
}
