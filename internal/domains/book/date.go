package book

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// dateOnlyLayout là format của <input type="date">
const dateOnlyLayout = "2006-01-02"

// Date nhận publicationDate ở 3 dạng: RFC 3339, "2006-01-02",
// hoặc số milliseconds từ epoch. null = zero value
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// Numeric: epoch millis
	if len(data) > 0 && data[0] != '"' {
		ms, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid date %s: %w", data, err)
		}
		d.Time = time.UnixMilli(int64(ms)).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, dateOnlyLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}
