package extract

import "strings"

const (
	// SentinelMissing stands in for an attribute that is absent or unreadable.
	SentinelMissing = "Na"
	// SentinelEmpty stands in for an attribute that is present but empty.
	SentinelEmpty = "None"
)

// Dataset is the queryable metadata of one decoded file.
type Dataset interface {
	Lookup(keyword string) (string, bool)
}

// Decoder decodes the file at path.
type Decoder interface {
	Decode(path string) (Dataset, error)
}

// DecodeFunc adapts a function to the Decoder interface.
type DecodeFunc func(path string) (Dataset, error)

// Decode calls f(path).
func (f DecodeFunc) Decode(path string) (Dataset, error) {
	return f(path)
}

// Row is one output record: the file path followed by attribute values.
type Row []string

// Extractor reads a fixed list of attributes from decoded files.
type Extractor struct {
	decoder    Decoder
	attributes []string
}

// New constructs an Extractor for the given attributes, in output order.
func New(decoder Decoder, attributes []string) *Extractor {
	attrs := make([]string, len(attributes))
	copy(attrs, attributes)
	return &Extractor{decoder: decoder, attributes: attrs}
}

// Row decodes path and returns its output row. The second result is false
// when the file cannot be decoded; the caller skips it.
func (e *Extractor) Row(path string) (Row, bool) {
	dataset, ok := e.decode(path)
	if !ok {
		return nil, false
	}

	row := make(Row, 0, len(e.attributes)+1)
	row = append(row, path)
	for _, keyword := range e.attributes {
		row = append(row, Value(lookup(dataset, keyword)))
	}
	return row, true
}

func (e *Extractor) decode(path string) (dataset Dataset, ok bool) {
	if e == nil || e.decoder == nil {
		return nil, false
	}
	defer func() {
		if r := recover(); r != nil {
			dataset, ok = nil, false
		}
	}()
	dataset, err := e.decoder.Decode(path)
	if err != nil || dataset == nil {
		return nil, false
	}
	return dataset, true
}

func lookup(dataset Dataset, keyword string) (value string, found bool) {
	defer func() {
		if r := recover(); r != nil {
			value, found = "", false
		}
	}()
	return dataset.Lookup(keyword)
}

// Value maps a lookup outcome to the text written to the table.
func Value(rendered string, found bool) string {
	switch {
	case !found:
		return SentinelMissing
	case rendered == "":
		return SentinelEmpty
	default:
		return strings.ReplaceAll(rendered, ",", ".")
	}
}
