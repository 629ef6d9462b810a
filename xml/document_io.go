package xml

import (
	"fmt"
	"os"
)

// LoadFile reads path and parses it as a new Document (spec.md §6
// LoadFile/SaveFile contract). A missing file reports FILE_NOT_FOUND;
// any other read failure reports FILE_COULD_NOT_BE_OPENED, mirroring
// the distinction spec.md's error taxonomy draws between the two.
func LoadFile(path string) (*Document, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		d := NewDocument()
		if os.IsNotExist(err) {
			d.setError(ErrFileNotFound, 0, path)
		} else {
			d.setError(ErrFileCouldNotBeOpened, 0, path)
		}
		d.err.Err = err
		return d, d.err
	}
	d := NewDocument()
	if err := d.Parse(buf); err != nil {
		return d, err
	}
	return d, nil
}

// SaveFile renders d (compact or indented) and writes it to path,
// creating or truncating the file.
func (d *Document) SaveFile(path string, compact bool) error {
	var out string
	if compact {
		out = d.CompactString()
	} else {
		out = d.String()
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("xml: save %s: %w", path, err)
	}
	return nil
}
