package rope

import "github.com/google/uuid"

// Document is a small bookkeeping wrapper around a rope root: it
// stamps a fresh RevisionID on every mutating call so a caller (an
// editor surface, an undo stack, a sync layer) can detect that the
// tree underneath has changed without diffing it.
//
// Document itself holds no lock and makes no concurrency guarantee —
// spec.md's Non-goals exclude concurrent mutation from multiple
// writers, so unlike the teacher's RopeHandle this is not meant to be
// shared across goroutines.
type Document struct {
	Root       Node
	RevisionID uuid.UUID
}

// NewDocument wraps the empty rope.
func NewDocument() *Document {
	return &Document{Root: New(), RevisionID: uuid.New()}
}

// DocumentFromText wraps a freshly parsed rope.
func DocumentFromText(s string) *Document {
	return &Document{Root: FromText(s), RevisionID: uuid.New()}
}

func (d *Document) touch(root Node) {
	d.Root = root
	d.RevisionID = uuid.New()
}

// VisibleString returns the document's visible text.
func (d *Document) VisibleString() string { return VisibleString(d.Root) }

// Length returns the document's visible length in UTF-16 code units.
func (d *Document) Length() int { return Length(d.Root) }

// FileString returns the document's on-disk text.
func (d *Document) FileString() string { return FileString(d.Root) }

// FileLength returns the UTF-16 length of FileString.
func (d *Document) FileLength() int { return FileLength(d.Root) }

// Insert splices text in at offset, stamping a new RevisionID on
// success. On error the document is left unchanged.
func (d *Document) Insert(offset int, text string) error {
	root, err := Insert(d.Root, offset, text)
	if err != nil {
		return err
	}
	d.touch(root)
	return nil
}

// Delete removes [location, location+length), stamping a new
// RevisionID on success. On error the document is left unchanged.
func (d *Document) Delete(location, length int) error {
	root, err := Delete(d.Root, location, length)
	if err != nil {
		return err
	}
	d.touch(root)
	return nil
}

// Indent adjusts indentation over [location, location+length) by
// delta, stamping a new RevisionID on success.
func (d *Document) Indent(delta, location, length int) error {
	root, err := Indent(d.Root, delta, location, length)
	if err != nil {
		return err
	}
	d.touch(root)
	return nil
}

// Collapse folds descendants in [location, location+length), stamping
// a new RevisionID on success.
func (d *Document) Collapse(location, length int) error {
	root, err := Collapse(d.Root, location, length)
	if err != nil {
		return err
	}
	d.touch(root)
	return nil
}

// Expand unfolds descendants in [location, location+length), stamping
// a new RevisionID on success.
func (d *Document) Expand(location, length int) error {
	root, err := Expand(d.Root, location, length)
	if err != nil {
		return err
	}
	d.touch(root)
	return nil
}

// Depth returns the indentation of the leaf at offset.
func (d *Document) Depth(offset int) (uint32, error) {
	return Depth(d.Root, offset)
}

// RangeOfLine returns the starting offset and length of the leaf at
// offset.
func (d *Document) RangeOfLine(offset int) (start, length int, err error) {
	return RangeOfLine(d.Root, offset)
}
