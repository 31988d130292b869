package chat

import (
	"errors"
	"testing"
)

type spamVerdict struct {
	IsSpam bool   `json:"is_spam"`
	Reason string `json:"reason"`
}

type guess struct {
	Guess int `json:"guess"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want spamVerdict
	}{
		{"plain json", `{"is_spam": true, "reason": "lottery"}`, spamVerdict{true, "lottery"}},
		{"fenced json", "```json\n{\"is_spam\": false, \"reason\": \"meeting\"}\n```", spamVerdict{false, "meeting"}},
		{"extra fields ignored", `{"is_spam": true, "reason": "x", "confidence": 0.9}`, spamVerdict{true, "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode[spamVerdict](tc.text)
			if err != nil {
				t.Fatalf("Decode() returned unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Decode() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", "   "},
		{"not json", "I think it's spam"},
		{"wrong type", `{"is_spam": "yes", "reason": "x"}`},
		{"missing field", `{"reason": "x"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode[spamVerdict](tc.text); !errors.Is(err, ErrInvalidOutput) {
				t.Errorf("want ErrInvalidOutput, got %v", err)
			}
		})
	}
}

func TestDecodeInteger(t *testing.T) {
	got, err := Decode[guess](`{"guess": 7}`)
	if err != nil {
		t.Fatalf("Decode() returned unexpected error: %v", err)
	}
	if got.Guess != 7 {
		t.Errorf("want 7, got %d", got.Guess)
	}
	if _, err := Decode[guess](`{"guess": 7.5}`); !errors.Is(err, ErrInvalidOutput) {
		t.Errorf("want ErrInvalidOutput for non-integer guess, got %v", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{}", "{}"},
		{"```json\n{}\n```", "{}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  \n{\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tc := range tests {
		if got := StripFences(tc.in); got != tc.want {
			t.Errorf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
