package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/loglane/loglane/core"
)

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name    string
		field   core.Field
		wantKey string
		wantVal string
	}{
		{"String", String("user", "ada"), "user", "ada"},
		{"Int", Int("status", 200), "status", "200"},
		{"Int64", Int64("bytes", 1<<33), "bytes", "8589934592"},
		{"Float", Float("ratio", 0.5), "ratio", "0.5"},
		{"Bool true", Bool("ok", true), "ok", "true"},
		{"Bool false", Bool("ok", false), "ok", "false"},
		{"Duration", Duration("elapsed", 1500*time.Millisecond), "elapsed", "1.5s"},
		{"Err", Err(errors.New("boom")), "error", "boom"},
		{"Err nil", Err(nil), "error", ""},
		{"Stringer", Stringer("level", core.ErrorLevel), "level", "ERROR"},
		{"Any", Any("ids", []int{3, 4}), "ids", "[3 4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if got := tt.field.StringValue(); got != tt.wantVal {
				t.Errorf("StringValue() = %q, want %q", got, tt.wantVal)
			}
		})
	}
}

func TestTimeFieldRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.Local)
	f := Time("at", ts)

	if f.Key != "at" {
		t.Errorf("Key = %q, want at", f.Key)
	}
	if got := f.StringValue(); got != ts.Format(time.RFC3339) {
		t.Errorf("StringValue() = %q, want %q", got, ts.Format(time.RFC3339))
	}
}
