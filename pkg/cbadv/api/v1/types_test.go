package cbadv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"1700000000"`), &ts))
	assert.Equal(t, int64(1700000000), ts.Time().Unix())

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"1700000000"`, string(out))

	// a bare number is a schema violation, the exchange quotes timestamps
	assert.Error(t, json.Unmarshal([]byte(`1700000000`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestServerTime_UnmarshalJSON(t *testing.T) {
	data := `{
		"iso": "2023-11-14T22:13:20Z",
		"epochSeconds": "1700000000",
		"epochMillis": "1700000000000"
	}`

	var st ServerTime
	require.NoError(t, json.Unmarshal([]byte(data), &st))
	assert.Equal(t, int64(1700000000), st.Iso.Unix())
	assert.Equal(t, int64(1700000000), st.EpochSeconds.Time().Unix())
	assert.Equal(t, "1700000000000", st.EpochMillis)
}
