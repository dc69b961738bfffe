package ply

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
)

// Write serializes pc as ASCII PLY into a new file at path. It refuses to
// touch an existing path. If serialization fails midway the partially
// written file is left in place for the caller to remove.
func Write(pc PointCloud, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: cannot write because path %s already exists", ErrDestinationExists, path)
		}
		return err
	}

	if err := Encode(f, pc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes the header followed by the data section of pc to w.
func Encode(w io.Writer, pc PointCloud) error {
	layouts, err := pc.layout()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, pc.Provenance, layouts); err != nil {
		return err
	}
	if err := writeData(bw, layouts); err != nil {
		bw.Flush()
		return err
	}
	return bw.Flush()
}

// WriteHeader writes only the header of pc, including the end_header line.
func WriteHeader(w io.Writer, pc PointCloud) error {
	layouts, err := pc.layout()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := writeHeader(bw, pc.Provenance, layouts); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteData writes only the data section of pc.
func WriteData(w io.Writer, pc PointCloud) error {
	layouts, err := pc.layout()
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := writeData(bw, layouts); err != nil {
		bw.Flush()
		return err
	}
	return bw.Flush()
}

func writeHeader(bw *bufio.Writer, provenance []Record, layouts []elementLayout) error {
	bw.WriteString("ply\n")
	bw.WriteString("format ascii 1.0\n")

	if len(provenance) > 0 {
		bw.WriteString("comment [\n")
		for _, rec := range provenance {
			text, err := FormatRecord(rec)
			if err != nil {
				return err
			}
			bw.WriteString("comment " + text + "\n")
		}
		bw.WriteString("comment ]\n")
	}

	for _, l := range layouts {
		bw.WriteString("element " + l.name + " " + strconv.Itoa(l.rows) + "\n")
		for _, p := range l.props {
			bw.WriteString("property " + p.typ + " " + p.name + "\n")
		}
	}

	_, err := bw.WriteString("end_header\n")
	return err
}

func writeData(bw *bufio.Writer, layouts []elementLayout) error {
	var line []byte
	for _, l := range layouts {
		last := len(l.props) - 1
		for row := 0; row < l.rows; row++ {
			line = line[:0]
			for i, p := range l.props {
				v, ok := p.data.At(row)
				if !ok {
					return missingValue(l.name, p, row)
				}
				line = v.AppendPLY(line)
				if i == last {
					line = append(line, '\n')
				} else {
					line = append(line, ' ')
				}
			}
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return nil
}

func missingValue(element string, p propertyLayout, row int) error {
	reason := "array has no value at this row"
	if _, isArray := p.data.Rows(); !isArray {
		reason = "scalar quantity has no value at this row"
	}
	return &StructuralError{Element: element, Property: p.name, Row: row, Reason: reason}
}

// FormatRecord renders a provenance record as the text of one comment line.
// Keys come out sorted and values as JSON, so the line never breaks.
func FormatRecord(r Record) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("ply: encoding provenance record: %w", err)
	}
	return string(b), nil
}
