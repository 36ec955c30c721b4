package schedules

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestGameIDKeepsProviderType(t *testing.T) {
	num := 436
	cases := []struct {
		name string
		id   GameID
		want string
	}{
		{"numeric", IntID(&num), `{"gameId":436`},
		{"string", StringID(strPtr("75e1b8cd-abc")), `{"gameId":"75e1b8cd-abc"`},
		{"absent", IntID(nil), `{"gameId":null`},
		{"zero value", GameID{}, `{"gameId":null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := sonic.Marshal(Game{GameID: tc.id})
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if got := string(raw); !strings.HasPrefix(got, tc.want) {
				t.Fatalf("expected prefix %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGameIDDecodesBothTypes(t *testing.T) {
	var g struct {
		Num  GameID `json:"num"`
		Str  GameID `json:"str"`
		None GameID `json:"none"`
	}
	if err := sonic.Unmarshal([]byte(`{"num":12,"str":"g-1","none":null}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if n, ok := g.Num.Int(); !ok || n != 12 {
		t.Fatalf("expected numeric 12, got %v", g.Num)
	}
	if _, ok := g.Str.Int(); ok || g.Str.String() != "g-1" {
		t.Fatalf("expected string g-1, got %v", g.Str)
	}
	if !g.None.IsZero() || g.None.String() != "" {
		t.Fatalf("expected absent id, got %v", g.None)
	}
}
