package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record format on disk, one file per catalog table:
// [deleted_flag: 1 byte][data_length: 4 bytes][json_data: variable bytes]
//
// deleted_flag: 0 = active, 1 = deleted
// data_length: length of json_data in bytes (uint32, little-endian)
// json_data: one catalog row as JSON
//
// The catalog is only ever replaced wholesale, so the deleted flag is
// always 0 on write; it is honored on read so a file produced by a tool
// that soft-deletes rows still loads correctly.

// writeRecords writes all rows to path atomically: the records go to a
// temp file first and the temp file is renamed over the target, so a crash
// mid-write leaves the previous file intact.
func writeRecords(path string, rows [][]byte) error {
	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", tmpPath, err)
	}

	for _, data := range rows {
		deletedFlag := byte(0)
		dataLength := uint32(len(data))

		if err := binary.Write(f, binary.LittleEndian, deletedFlag); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record flag: %v", err)
		}
		if err := binary.Write(f, binary.LittleEndian, dataLength); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record length: %v", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("failed to write record data: %v", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %v", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %v", path, err)
	}

	return nil
}

// readRecords reads all active rows from path. A missing file yields an
// empty result, matching a table with no rows.
func readRecords(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	var rows [][]byte

	for {
		var deletedFlag byte
		if err := binary.Read(f, binary.LittleEndian, &deletedFlag); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("failed to read record flag in %s: %v", path, err)
		}

		var dataLength uint32
		if err := binary.Read(f, binary.LittleEndian, &dataLength); err != nil {
			return nil, fmt.Errorf("failed to read record length in %s: %v", path, err)
		}

		data := make([]byte, dataLength)
		if _, err := io.ReadFull(f, data); err != nil {
			return nil, fmt.Errorf("failed to read record data in %s: %v", path, err)
		}

		if deletedFlag != 0 {
			continue
		}
		rows = append(rows, data)
	}

	return rows, nil
}

// marshalRows JSON-encodes a slice of catalog rows for writeRecords.
func marshalRows[T any](rows []T) ([][]byte, error) {
	out := make([][]byte, 0, len(rows))
	for _, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog row: %v", err)
		}
		out = append(out, data)
	}
	return out, nil
}

// unmarshalRows decodes the raw records read by readRecords. An empty
// table decodes to nil so a reloaded catalog marshals identically to a
// freshly built one.
func unmarshalRows[T any](records [][]byte) ([]T, error) {
	var out []T
	for _, data := range records {
		var row T
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to decode catalog row: %v", err)
		}
		out = append(out, row)
	}
	return out, nil
}
