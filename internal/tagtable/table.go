package tagtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Table is an append-only CSV file with a fixed header.
type Table struct {
	file   *os.File
	writer *csv.Writer
	rows   int
	closed bool
}

// Create truncates or creates the file at path and writes header as its
// first record.
func Create(path string, header []string) (*Table, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	// UseCRLF stays off: it rewrites \r and \n inside quoted fields.
	writer := csv.NewWriter(file)

	t := &Table{file: file, writer: writer}
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write table header: %w", err)
	}
	return t, nil
}

// Rows returns the number of data rows appended so far.
func (t *Table) Rows() int {
	return t.rows
}

// Append writes one data row.
func (t *Table) Append(row []string) error {
	if t.closed {
		return errors.New("append to closed table")
	}
	if err := t.writer.Write(row); err != nil {
		return fmt.Errorf("write table row: %w", err)
	}
	t.rows++
	return nil
}

// Flush pushes buffered rows to the file.
func (t *Table) Flush() error {
	if t.closed {
		return nil
	}
	t.writer.Flush()
	if err := t.writer.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// Close flushes and releases the file. Calling Close more than once is a no-op.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	flushErr := t.Flush()
	t.closed = true
	if err := t.file.Close(); err != nil {
		return errors.Join(flushErr, fmt.Errorf("close table: %w", err))
	}
	return flushErr
}
