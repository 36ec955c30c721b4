package schedules

import (
	"strconv"

	"github.com/bytedance/sonic"
)

// GameID is a provider's game identifier, encoded in the provider's own JSON type.
// SportsDataIO and football-data send numbers; MLB sends a gameGuid string.
type GameID struct {
	num *int
	str *string
}

// IntID wraps a numeric provider id. A nil id encodes as null.
func IntID(v *int) GameID {
	return GameID{num: v}
}

// StringID wraps a string provider id. A nil id encodes as null.
func StringID(v *string) GameID {
	return GameID{str: v}
}

// IsZero reports whether the provider sent no id.
func (id GameID) IsZero() bool {
	return id.num == nil && id.str == nil
}

// Int returns the numeric id; ok is false for string or absent ids.
func (id GameID) Int() (int, bool) {
	if id.num == nil {
		return 0, false
	}
	return *id.num, true
}

func (id GameID) String() string {
	switch {
	case id.num != nil:
		return strconv.Itoa(*id.num)
	case id.str != nil:
		return *id.str
	}
	return ""
}

func (id GameID) MarshalJSON() ([]byte, error) {
	switch {
	case id.num != nil:
		return strconv.AppendInt(nil, int64(*id.num), 10), nil
	case id.str != nil:
		return sonic.Marshal(*id.str)
	}
	return []byte("null"), nil
}

func (id *GameID) UnmarshalJSON(data []byte) error {
	*id = GameID{}
	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		id.str = &s
	default:
		var n int
		if err := sonic.Unmarshal(data, &n); err != nil {
			return err
		}
		id.num = &n
	}
	return nil
}
