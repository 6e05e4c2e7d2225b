package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserID identifies a stored profile.
type UserID int64

// ParseUserID accepts a decimal id, trimming surrounding space.
func ParseUserID(raw string) (UserID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("user id is required")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return UserID(n), nil
}

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id UserID) IsZero() bool {
	return id <= 0
}

// UnmarshalJSON accepts both 42 and "42"; null and "" leave the id zero.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			*id = 0
			return nil
		}
		parsed, err := ParseUserID(raw)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid user id %s", data)
	}
	*id = UserID(n)
	return nil
}
