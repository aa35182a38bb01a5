package expiration_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/pocketcache/expiration"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    expiration.Expiration
		wantErr bool
	}{
		{input: "default", want: expiration.Default},
		{input: " Default ", want: expiration.Default},
		{input: "30s", want: expiration.Seconds(30)},
		{input: "0s", want: expiration.Seconds(0)},
		{input: "5 seconds", want: expiration.Seconds(5)},
		{input: "1 second", want: expiration.Seconds(1)},
		{input: "5m", want: expiration.Minutes(5)},
		{input: "15min", want: expiration.Minutes(15)},
		{input: "2 Minutes", want: expiration.Minutes(2)},
		{input: "3h", want: expiration.Hours(3)},
		{input: "1 hour", want: expiration.Hours(1)},
		{input: "", wantErr: true},
		{input: "30", wantErr: true},
		{input: "s", wantErr: true},
		{input: "-1s", wantErr: true},
		{input: "1.5h", wantErr: true},
		{input: "3d", wantErr: true},
		{input: "99999999999999999999s", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := expiration.Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, expiration.ErrInvalidExpiration) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidExpiration", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpiration_String(t *testing.T) {
	t.Parallel()

	for _, e := range []expiration.Expiration{
		expiration.Default,
		expiration.Seconds(0),
		expiration.Seconds(45),
		expiration.Minutes(20),
		expiration.Hours(24),
	} {
		parsed, err := expiration.Parse(e.String())
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", e.String(), err)
			continue
		}
		if parsed != e {
			t.Errorf("Parse(%q) = %v, want %v", e.String(), parsed, e)
		}
	}
}

func TestExpiration_TextConfig(t *testing.T) {
	t.Parallel()

	type config struct {
		TTL expiration.Expiration `json:"ttl"`
	}

	var cfg config
	if err := json.Unmarshal([]byte(`{"ttl":"20m"}`), &cfg); err != nil {
		t.Fatal(err)
	}
	if df := cmp.Diff(config{TTL: expiration.Minutes(20)}, cfg, cmp.Comparer(func(a, b expiration.Expiration) bool {
		return a == b
	})); df != "" {
		t.Errorf("config diff=%s", df)
	}

	b, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"ttl":"20m"}` {
		t.Errorf("json.Marshal() = %s", b)
	}

	if err := json.Unmarshal([]byte(`{"ttl":"soon"}`), &cfg); !errors.Is(err, expiration.ErrInvalidExpiration) {
		t.Errorf("json.Unmarshal() error = %v, want ErrInvalidExpiration", err)
	}
}
