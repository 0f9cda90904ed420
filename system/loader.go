package system

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// romOrigin is the fixed load address of the kernel ROM image's first byte.
const romOrigin = 0xF000

// Segment is one row of a parsed ld65-style segment map: a named region
// of the final program with its start address and size in bytes.
type Segment struct {
	Name  string
	Start uint16
	End   uint16
	Size  uint32
}

// SegmentMapFailure wraps a failure to parse or satisfy a segment map.
type SegmentMapFailure struct {
	Reason string
	Err    error
}

func (e *SegmentMapFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("segment map: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("segment map: %s", e.Reason)
}

func (e *SegmentMapFailure) Unwrap() error { return e.Err }

// ROMLoadFailure wraps a failure to read or apply a kernel ROM image.
type ROMLoadFailure struct {
	Reason string
	Err    error
}

func (e *ROMLoadFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rom load: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("rom load: %s", e.Reason)
}

func (e *ROMLoadFailure) Unwrap() error { return e.Err }

// ParseSegmentMap reads an ld65-style map file: a "Segment list:" header
// followed by two rule/header lines, then rows of
// "NAME  START  END  SIZE  ALIGN" in hex without a "0x" prefix. Parsing
// stops at the first blank line after the section begins.
func ParseSegmentMap(r io.Reader) ([]Segment, error) {
	scanner := bufio.NewScanner(r)
	var segments []Segment
	inSection := false
	skipLines := 0

	for scanner.Scan() {
		line := scanner.Text()

		if !inSection {
			if strings.Contains(line, "Segment list:") {
				inSection = true
				skipLines = 2
			}
			continue
		}

		if skipLines > 0 {
			skipLines--
			continue
		}

		if line == "" {
			break
		}
		if strings.HasPrefix(line, "-") {
			continue
		}

		seg, err := parseSegmentLine(line)
		if err != nil {
			return nil, &SegmentMapFailure{Reason: fmt.Sprintf("bad segment line %q", line), Err: err}
		}
		segments = append(segments, seg)
	}

	if err := scanner.Err(); err != nil {
		return nil, &SegmentMapFailure{Reason: "reading map", Err: err}
	}
	if len(segments) == 0 {
		return nil, &SegmentMapFailure{Reason: "no segments found"}
	}
	return segments, nil
}

func parseSegmentLine(line string) (Segment, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Segment{}, fmt.Errorf("expected at least 4 fields, got %d", len(fields))
	}

	start, err := strconv.ParseUint(fields[1], 16, 16)
	if err != nil {
		return Segment{}, fmt.Errorf("start address: %w", err)
	}
	end, err := strconv.ParseUint(fields[2], 16, 16)
	if err != nil {
		return Segment{}, fmt.Errorf("end address: %w", err)
	}
	size, err := strconv.ParseUint(fields[3], 16, 32)
	if err != nil {
		return Segment{}, fmt.Errorf("size: %w", err)
	}

	return Segment{
		Name:  fields[0],
		Start: uint16(start),
		End:   uint16(end),
		Size:  uint32(size),
	}, nil
}

// FindSegment returns the named segment, or false if the map doesn't
// contain it.
func FindSegment(segments []Segment, name string) (Segment, bool) {
	for _, s := range segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// requiredSegments are looked up by name and loaded at their mapped
// address; any other segment present in the map is ignored.
var requiredSegments = []string{"CODE", "JUMPS", "VECS"}

// loadSegments copies each required segment out of the flat ROM image
// (offset by romOrigin) and onto the bus at its mapped address.
func loadSegments(image []byte, segments []Segment, loadImage func([]byte, uint16)) error {
	var missing []string
	for _, name := range requiredSegments {
		seg, ok := FindSegment(segments, name)
		if !ok {
			missing = append(missing, name)
			continue
		}

		offset := int(seg.Start) - romOrigin
		if offset < 0 || offset+int(seg.Size) > len(image) {
			return &SegmentMapFailure{Reason: fmt.Sprintf(
				"segment %s at $%04X size %d falls outside the %d-byte ROM image",
				name, seg.Start, seg.Size, len(image)),
			}
		}

		loadImage(image[offset:offset+int(seg.Size)], seg.Start)
	}

	if len(missing) > 0 {
		return &SegmentMapFailure{Reason: fmt.Sprintf("missing required segment(s): %s", strings.Join(missing, ", "))}
	}
	return nil
}

// readROMImage reads the entire kernel ROM image from r.
func readROMImage(r io.Reader) ([]byte, error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return nil, &ROMLoadFailure{Reason: "reading image", Err: err}
	}
	if len(image) == 0 {
		return nil, &ROMLoadFailure{Reason: "empty image"}
	}
	return image, nil
}
