package dicomfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	preambleLength = 128
	magicWord      = "DICM"
)

// ErrNotDICOM reports that a file does not carry the DICOM Part 10 preamble.
var ErrNotDICOM = errors.New("not a dicom file")

// Options controls how files are parsed.
type Options struct {
	SkipPixelData bool
}

// File is the decoded header of a single DICOM file.
type File struct {
	dataset dicom.Dataset
}

// Sniff reports whether path starts with the 128 byte preamble followed by
// the DICM magic word.
func Sniff(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, preambleLength+len(magicWord))
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(buf[preambleLength:], []byte(magicWord)), nil
}

// Open sniffs and parses the file at path.
func Open(path string, opts Options) (file *File, err error) {
	ok, err := Sniff(path)
	if err != nil {
		return nil, fmt.Errorf("dicom sniff %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("dicom open %s: %w", path, ErrNotDICOM)
	}

	defer func() {
		if r := recover(); r != nil {
			file = nil
			err = fmt.Errorf("dicom parse %s: parser panic: %v", path, r)
		}
	}()

	var parseOpts []dicom.ParseOption
	if opts.SkipPixelData {
		parseOpts = append(parseOpts, dicom.SkipPixelData())
	}
	dataset, err := dicom.ParseFile(path, nil, parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("dicom parse %s: %w", path, err)
	}
	return &File{dataset: dataset}, nil
}

// Lookup returns the rendered value of the element named by keyword. The
// second result is false when the keyword is unknown to the DICOM dictionary
// or the element is absent from the file.
func (f *File) Lookup(keyword string) (string, bool) {
	if f == nil {
		return "", false
	}
	info, err := tag.FindByName(strings.TrimSpace(keyword))
	if err != nil {
		return "", false
	}
	elem, err := f.dataset.FindElementByTag(info.Tag)
	if err != nil || elem == nil || elem.Value == nil {
		return "", false
	}
	return renderElement(elem), true
}
