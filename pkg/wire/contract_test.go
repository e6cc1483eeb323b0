package wire

import (
	"errors"
	"testing"
)

func TestParseMessageKind(t *testing.T) {
	tests := []struct {
		name string
		want MessageKind
	}{
		{"describe", KindDescribe},
		{"read", KindRead},
		{"write", KindWrite},
		{"run", KindRun},
		{"READ", KindUnknown},
		{"", KindUnknown},
		{"subscribe", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMessageKind(tt.name)
			if got != tt.want {
				t.Errorf("ParseMessageKind(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if got.IsValid() != (tt.want != KindUnknown) {
				t.Errorf("IsValid() = %v", got.IsValid())
			}
			if got.IsValid() && got.String() != tt.name {
				t.Errorf("String() = %q, want %q", got.String(), tt.name)
			}
		})
	}
}

func TestContractCoversEveryKind(t *testing.T) {
	for _, kind := range []MessageKind{KindDescribe, KindRead, KindWrite, KindRun} {
		c, ok := Contract(kind)
		if !ok {
			t.Errorf("no contract for %v", kind)
			continue
		}
		if c.Kind != kind {
			t.Errorf("contract kind = %v, want %v", c.Kind, kind)
		}
	}

	if _, ok := Contract(KindUnknown); ok {
		t.Error("unknown kind must not have a contract")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"describe needs nothing", Request{Message: MessageDescribe}, nil},
		{"read with path", Request{Message: MessageRead, Path: "a"}, nil},
		{"read with empty path", Request{Message: MessageRead}, nil},
		{"write with empty path", Request{Message: MessageWrite, Data: &Data{}}, nil},
		{"write with empty value", Request{Message: MessageWrite, Path: "a", Data: &Data{}}, nil},
		{"run without data", Request{Message: MessageRun, Path: "a"}, ErrMissingField},
		{"unknown", Request{Message: "quit"}, ErrUnknownMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.req)
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
