package dicomfile

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/suyashkumar/dicom"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// valueDelimiter separates the values of a multi-valued element.
const valueDelimiter = `\`

func renderElement(elem *dicom.Element) string {
	switch v := elem.Value.GetValue().(type) {
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = cleanText(s)
		}
		return strings.TrimRight(strings.Join(parts, valueDelimiter), valueDelimiter)
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, valueDelimiter)
	case []float64:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.FormatFloat(n, 'g', -1, 64)
		}
		return strings.Join(parts, valueDelimiter)
	case []byte:
		return hex.EncodeToString(v)
	case []*dicom.SequenceItemValue:
		return renderSequence(v)
	case []*dicom.Element:
		return renderItem(v)
	case dicom.PixelDataInfo:
		return ""
	case nil:
		return ""
	default:
		return cleanText(fmt.Sprint(v))
	}
}

func renderSequence(items []*dicom.SequenceItemValue) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		elems, _ := item.GetValue().([]*dicom.Element)
		parts = append(parts, renderItem(elems))
	}
	return strings.Join(parts, " | ")
}

func renderItem(elems []*dicom.Element) string {
	fields := make([]string, 0, len(elems))
	for _, elem := range elems {
		if elem == nil || elem.Value == nil {
			continue
		}
		fields = append(fields, elem.Tag.String()+"="+renderElement(elem))
	}
	return "(" + strings.Join(fields, "; ") + ")"
}

// cleanText strips DICOM padding and returns valid, NFC-normalized UTF-8.
// Undeclared 8-bit text is read as ISO-8859-1.
func cleanText(s string) string {
	s = strings.TrimRight(s, " \x00")
	if !utf8.ValidString(s) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().String(s); err == nil {
			s = decoded
		} else {
			s = strings.ToValidUTF8(s, "�")
		}
	}
	return norm.NFC.String(s)
}
