package cbadv

import (
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is a unix-seconds timestamp the exchange encodes as a decimal
// string, e.g. "1639508050".
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).String()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(time.Time(t).Unix(), 10))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}

	*t = Timestamp(time.Unix(sec, 0))
	return nil
}
