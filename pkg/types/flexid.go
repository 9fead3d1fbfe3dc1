package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexibleID идентификатор, который удаленный сервис может прислать числом или строкой
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", s, err)
		}
		*id = FlexibleID(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = FlexibleID(n)
	return nil
}

func (id FlexibleID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(id))
}

func (id FlexibleID) Int64() int64 {
	return int64(id)
}
