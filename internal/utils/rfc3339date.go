package utils

import (
	"encoding/json"
	"time"
)

// RFC3339Date marshals a timestamp as an RFC 3339 string, the format the
// warehouse API uses for order dates.
type RFC3339Date struct {
	time.Time
}

func NewRFC3339Date(t time.Time) RFC3339Date {
	return RFC3339Date{Time: t}
}

func (d RFC3339Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

func (d *RFC3339Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
