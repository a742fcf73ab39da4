package recurrence

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer so rules are stored in their string form.
func (r Rule) Value() (driver.Value, error) {
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Rule) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = None()
	case string:
		*r = Parse(v)
	case []byte:
		*r = Parse(string(v))
	default:
		return fmt.Errorf("recurrence: cannot scan %T", src)
	}
	return nil
}
