package acc

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	ms "pfeifer.dev/acc/settings"
	"pfeifer.dev/acc/utils"
)

// SaveStatus appends a timestamped record of the current state to the
// controller's log file. Failures are returned and never touch the state.
func (c *Controller) SaveStatus() error {
	return AppendStatus(c.logFile, c.Snapshot())
}

// AppendStatus appends one record to path. Writers are serialized with a
// lock file next to the log.
func AppendStatus(path string, status Status) error {
	lockPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
	unlock, err := utils.LockFile(lockPath)
	if err != nil {
		return errors.Wrapf(err, "could not lock status log %s", path)
	}
	defer unlock()

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "could not open status log %s", path)
	}

	_, err = io.WriteString(file, status.Record())
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "could not write status log %s", path)
	}

	err = file.Close()
	if err != nil {
		return errors.Wrapf(err, "could not close status log %s", path)
	}
	return nil
}

// LogRecord is one parsed status log record.
type LogRecord struct {
	Timestamp    time.Time
	EgoSpeed     float64
	AheadSpeed   float64
	Distance     float64
	SafeDistance float64
	Status       string
}

var recordFields = []struct {
	prefix, suffix string
	field          func(*LogRecord) *float64
}{
	{"Current Speed: ", " km/h", func(r *LogRecord) *float64 { return &r.EgoSpeed }},
	{"Car Ahead Speed: ", " km/h", func(r *LogRecord) *float64 { return &r.AheadSpeed }},
	{"Distance: ", " m", func(r *LogRecord) *float64 { return &r.Distance }},
	{"Safe Distance: ", " m", func(r *LogRecord) *float64 { return &r.SafeDistance }},
}

// ReadRecords parses every complete record in a status log. A trailing
// record without its separator line is dropped.
func ReadRecords(r io.Reader) ([]LogRecord, error) {
	records := []LogRecord{}
	scanner := bufio.NewScanner(r)

	var current *LogRecord
	lineNum := 0
	for scanner.Scan() {
		lineNum += 1
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == ms.RECORD_BANNER {
			current = &LogRecord{}
			continue
		}
		if current == nil {
			continue
		}
		if line == ms.RECORD_SEPARATOR {
			records = append(records, *current)
			current = nil
			continue
		}

		if ts, ok := strings.CutPrefix(line, "Timestamp: "); ok {
			t, err := time.ParseInLocation(time.ANSIC, ts, time.Local)
			if err != nil {
				return records, errors.Wrapf(err, "line %d: invalid timestamp", lineNum)
			}
			current.Timestamp = t
			continue
		}
		if status, ok := strings.CutPrefix(line, "Status: "); ok {
			current.Status = status
			continue
		}
		for _, f := range recordFields {
			raw, ok := strings.CutPrefix(line, f.prefix)
			if !ok {
				continue
			}
			val, err := strconv.ParseFloat(strings.TrimSuffix(raw, f.suffix), 64)
			if err != nil {
				return records, errors.Wrapf(err, "line %d: invalid value", lineNum)
			}
			*f.field(current) = val
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return records, errors.Wrap(err, "could not read status log")
	}
	return records, nil
}

// ReadRecordsFile is ReadRecords for a path.
func ReadRecordsFile(path string) ([]LogRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open status log %s", path)
	}
	defer file.Close()
	return ReadRecords(file)
}
