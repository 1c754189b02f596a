package sqlite

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// textTime guarda time.Time como TEXT RFC3339Nano en UTC.
type textTime struct {
	time.Time
}

func (t textTime) Value() (driver.Value, error) {
	return t.UTC().Format(time.RFC3339Nano), nil
}

func (t *textTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case time.Time:
		t.Time = v
		return nil
	default:
		return fmt.Errorf("textTime: tipo no soportado %T", src)
	}
}

func (t *textTime) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("textTime: %w", err)
	}
	t.Time = parsed
	return nil
}

// nullTextTime versión opcional de textTime.
type nullTextTime struct {
	Time  time.Time
	Valid bool
}

func newNullTextTime(t *time.Time) nullTextTime {
	if t == nil {
		return nullTextTime{}
	}
	return nullTextTime{Time: *t, Valid: true}
}

func (t nullTextTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return textTime{t.Time}.Value()
}

func (t *nullTextTime) Scan(src any) error {
	if src == nil {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	var tt textTime
	if err := tt.Scan(src); err != nil {
		return err
	}
	t.Time, t.Valid = tt.Time, true
	return nil
}

func (t nullTextTime) ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// isUniqueViolation detecta violaciones de UNIQUE/PRIMARY KEY reportadas por el driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
