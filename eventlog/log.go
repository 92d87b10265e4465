package eventlog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Log manages the append-only provisioning log
type Log struct {
	mu        sync.Mutex
	filePath  string
	currentID uint64 // Next event ID to assign
	file      *os.File
}

// NewLog opens (or creates) a provisioning log in dataDir
func NewLog(dataDir string, filename string) (*Log, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	l := &Log{filePath: filepath.Join(dataDir, filename)}
	if err := l.initialize(); err != nil {
		return nil, err
	}

	return l, nil
}

// initialize opens the log file for append and counts existing events so
// new IDs continue the sequence.
func (l *Log) initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := os.Stat(l.filePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if os.IsNotExist(err) {
		f, err := os.Create(l.filePath)
		if err != nil {
			return err
		}
		l.file = f
		l.currentID = 1
		return nil
	}

	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	l.file = f

	readFile, err := os.Open(l.filePath)
	if err != nil {
		return err
	}
	defer readFile.Close()

	decoder := json.NewDecoder(readFile)
	count := uint64(0)
	for decoder.More() {
		var e Event
		if err := decoder.Decode(&e); err != nil {
			return fmt.Errorf("corrupt provisioning log %s: %v", l.filePath, err)
		}
		count++
	}
	l.currentID = count + 1

	return nil
}

// Append records a new event and returns it with its assigned ID and
// checksum filled in.
func (l *Log) Append(eventType EventType, payload EventPayload) (*Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := Event{
		ID:        l.currentID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	checksum, err := computeChecksum(e)
	if err != nil {
		return nil, err
	}
	e.Checksum = checksum

	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %v", err)
	}
	data = append(data, '\n')

	if _, err := l.file.Write(data); err != nil {
		return nil, fmt.Errorf("failed to append event: %v", err)
	}

	l.currentID++
	return &e, nil
}

// ReadAll replays every event in the log, verifying checksums.
func (l *Log) ReadAll() ([]Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []Event
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var e Event
		if err := decoder.Decode(&e); err != nil {
			return nil, fmt.Errorf("corrupt provisioning log %s: %v", l.filePath, err)
		}

		expected := e.Checksum
		e.Checksum = ""
		actual, err := computeChecksum(e)
		if err != nil {
			return nil, err
		}
		if actual != expected {
			return nil, fmt.Errorf("checksum mismatch on event %d", e.ID)
		}
		e.Checksum = expected

		events = append(events, e)
	}

	return events, nil
}

// Close closes the underlying log file
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// computeChecksum hashes the event's JSON encoding with the checksum
// field cleared. The payload is normalized through generic JSON first so
// the checksum comes out the same whether the payload is the original
// struct or the map a replay decodes it into.
func computeChecksum(e Event) (string, error) {
	e.Checksum = ""

	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return "", fmt.Errorf("failed to checksum event payload: %v", err)
		}
		var generic interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return "", fmt.Errorf("failed to checksum event payload: %v", err)
		}
		e.Payload = generic
	}

	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to checksum event: %v", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
