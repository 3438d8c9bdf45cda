package testsupport

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// explicitVRLittleEndian is the transfer syntax used for generated files.
const explicitVRLittleEndian = "1.2.840.10008.1.2.1"

// Element is one short-form explicit VR element for WriteDICOM.
type Element struct {
	Group   uint16
	Element uint16
	VR      string
	Value   string
}

// Modality returns a Modality (0008,0060) element.
func Modality(value string) Element {
	return Element{Group: 0x0008, Element: 0x0060, VR: "CS", Value: value}
}

// StudyDescription returns a StudyDescription (0008,1030) element.
func StudyDescription(value string) Element {
	return Element{Group: 0x0008, Element: 0x1030, VR: "LO", Value: value}
}

// PatientID returns a PatientID (0010,0020) element.
func PatientID(value string) Element {
	return Element{Group: 0x0010, Element: 0x0020, VR: "LO", Value: value}
}

// WriteDICOM writes a minimal Part 10 file (explicit VR little endian) holding
// the given dataset elements, which must be in ascending tag order and use
// VRs with a 16-bit length field.
func WriteDICOM(t testing.TB, path string, elems ...Element) {
	t.Helper()

	var meta bytes.Buffer
	writeElement(&meta, Element{Group: 0x0002, Element: 0x0010, VR: "UI", Value: explicitVRLittleEndian})

	var out bytes.Buffer
	out.Write(make([]byte, 128))
	out.WriteString("DICM")
	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(meta.Len()))
	writeRaw(&out, 0x0002, 0x0000, "UL", groupLength)
	out.Write(meta.Bytes())
	for _, elem := range elems {
		writeElement(&out, elem)
	}

	WriteFile(t, path, out.Bytes())
}

func writeElement(buf *bytes.Buffer, elem Element) {
	value := []byte(elem.Value)
	if len(value)%2 == 1 {
		pad := byte(' ')
		if elem.VR == "UI" {
			pad = 0
		}
		value = append(value, pad)
	}
	writeRaw(buf, elem.Group, elem.Element, elem.VR, value)
}

func writeRaw(buf *bytes.Buffer, group, element uint16, vr string, value []byte) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint16(header[0:], group)
	binary.LittleEndian.PutUint16(header[2:], element)
	copy(header[4:6], vr)
	binary.LittleEndian.PutUint16(header[6:], uint16(len(value)))
	buf.Write(header)
	buf.Write(value)
}
