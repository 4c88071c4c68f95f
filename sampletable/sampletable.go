// Package sampletable parses the tab-delimited sample manifests that drive a
// multi-sample assembly run: one row per sequencing lane (or library), with a
// header line naming the columns. Column order is free; unknown columns are
// ignored; the literal "NA" marks an absent value.
package sampletable

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for manifest parsing.
var (
	// ErrNoHeader is returned for an empty manifest.
	ErrNoHeader = errors.New("sampletable: missing header line")

	// ErrMissingColumn is returned when the header lacks a required column.
	ErrMissingColumn = errors.New("sampletable: missing column")

	// ErrBadField is returned when a field cannot be converted to its type.
	ErrBadField = errors.New("sampletable: bad field")
)

// absent marks a value not available for this row
const absent = "NA"

// Lane describes one sequencing lane of one library.
type Lane struct {
	Cohort  string
	Patient string
	Sample  string
	Library string
	Lane    string
	QC      string

	UseJuncs       bool
	UseTranscripts bool
	Valid          bool

	// AlignedReads is -1 when the manifest carried "NA".
	AlignedReads int64
	ReadLength   int

	TophatJuncsFile  string
	CufflinksGTFFile string
}

// IsValid reports whether the lane can participate in a run: it passed QC,
// has an aligned-read count, and names the files its use flags require.
func (l Lane) IsValid() bool {
	if l.QC == "FAIL" {
		return false
	}
	if l.AlignedReads < 0 {
		return false
	}
	if l.UseJuncs && l.TophatJuncsFile == "" {
		return false
	}
	if l.UseTranscripts && l.CufflinksGTFFile == "" {
		return false
	}
	return true
}

var laneColumns = []string{
	"cohort", "patient", "sample", "library", "lane", "qc",
	"use_juncs", "use_transcripts", "valid",
	"aligned_reads", "read_length",
	"tophat_juncs_file", "cufflinks_gtf_file",
}

// ReadLanes parses a lane manifest.
func ReadLanes(r io.Reader) ([]Lane, error) {
	rows, cols, err := readTable(r, laneColumns)
	if err != nil {
		return nil, err
	}
	lanes := make([]Lane, 0, len(rows))
	for i, row := range rows {
		l := Lane{
			Cohort:           row[cols["cohort"]],
			Patient:          row[cols["patient"]],
			Sample:           row[cols["sample"]],
			Library:          row[cols["library"]],
			Lane:             row[cols["lane"]],
			QC:               row[cols["qc"]],
			TophatJuncsFile:  optional(row[cols["tophat_juncs_file"]]),
			CufflinksGTFFile: optional(row[cols["cufflinks_gtf_file"]]),
		}
		if l.UseJuncs, err = parseFlag(row[cols["use_juncs"]]); err != nil {
			return nil, rowErr(i, "use_juncs", err)
		}
		if l.UseTranscripts, err = parseFlag(row[cols["use_transcripts"]]); err != nil {
			return nil, rowErr(i, "use_transcripts", err)
		}
		if l.Valid, err = parseFlag(row[cols["valid"]]); err != nil {
			return nil, rowErr(i, "valid", err)
		}
		if l.AlignedReads, err = parseCount(row[cols["aligned_reads"]]); err != nil {
			return nil, rowErr(i, "aligned_reads", err)
		}
		if l.ReadLength, err = strconv.Atoi(row[cols["read_length"]]); err != nil {
			return nil, rowErr(i, "read_length", err)
		}
		lanes = append(lanes, l)
	}
	return lanes, nil
}

// Library describes one sequencing library.
type Library struct {
	Cohort  string
	Patient string
	Sample  string
	Library string
	Lanes   string

	Valid          bool
	UseTranscripts bool

	CufflinksGTFFile string
}

// IsValid reports whether the library can participate in a run.
func (l Library) IsValid() bool {
	if !l.Valid {
		return false
	}
	if l.UseTranscripts && l.CufflinksGTFFile == "" {
		return false
	}
	return true
}

var libraryColumns = []string{
	"cohort", "patient", "sample", "library", "lanes", "valid",
	"use_transcripts", "cufflinks_gtf_file",
}

// ReadLibraries parses a library manifest.
func ReadLibraries(r io.Reader) ([]Library, error) {
	rows, cols, err := readTable(r, libraryColumns)
	if err != nil {
		return nil, err
	}
	libs := make([]Library, 0, len(rows))
	for i, row := range rows {
		l := Library{
			Cohort:           row[cols["cohort"]],
			Patient:          row[cols["patient"]],
			Sample:           row[cols["sample"]],
			Library:          row[cols["library"]],
			Lanes:            row[cols["lanes"]],
			CufflinksGTFFile: optional(row[cols["cufflinks_gtf_file"]]),
		}
		if l.Valid, err = parseFlag(row[cols["valid"]]); err != nil {
			return nil, rowErr(i, "valid", err)
		}
		if l.UseTranscripts, err = parseFlag(row[cols["use_transcripts"]]); err != nil {
			return nil, rowErr(i, "use_transcripts", err)
		}
		libs = append(libs, l)
	}
	return libs, nil
}

// readTable reads the header, checks the required columns are present, and
// returns the data rows padded/checked to header width.
func readTable(r io.Reader, required []string) ([][]string, map[string]int, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrNoHeader
	}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r\n"), "\t")
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	var rows [][]string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < len(header) {
			return nil, nil, fmt.Errorf("%w: row has %d fields, header has %d",
				ErrBadField, len(fields), len(header))
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return rows, cols, nil
}

func optional(s string) string {
	if s == absent {
		return ""
	}
	return s
}

// parseFlag accepts the manifest's integer booleans (0/1).
func parseFlag(s string) (bool, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// parseCount parses an integer count that may be "NA" (-1) or written in
// float notation (e.g. "1.2e7").
func parseCount(s string) (int64, error) {
	if s == absent {
		return -1, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func rowErr(row int, col string, err error) error {
	return fmt.Errorf("%w: row %d column %s: %v", ErrBadField, row+1, col, err)
}
