package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat/chattest"
)

func TestAudioType(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"hola.wav", "audio/wav", false},
		{"HOLA.MP3", "audio/mp3", false},
		{"a/b/c.flac", "audio/flac", false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := AudioType(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("AudioType(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestRecognize(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Reason
		text  string
	}{
		{"speech", "  Hola, ¿qué tal?\n", Recognized, "Hola, ¿qué tal?"},
		{"marker", "NO_MATCH", NoMatch, ""},
		{"blank", "   ", NoMatch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecognizer(chattest.New(tt.reply), "es-ES")
			got := r.Recognize(context.Background(), []byte("RIFF"), "audio/wav")
			if got.Reason != tt.want || got.Text != tt.text {
				t.Errorf("Recognize() = %+v", got)
			}
		})
	}
}

func TestRecognizeSendsInlineAudio(t *testing.T) {
	m := chattest.New("hola")
	r := NewRecognizer(m, "es-ES")
	r.Recognize(context.Background(), []byte{1, 2, 3}, "audio/ogg")

	req := m.Requests()[0]
	parts := req.Contents[len(req.Contents)-1].Parts
	var blob *genai.Blob
	for _, p := range parts {
		if p.InlineData != nil {
			blob = p.InlineData
		}
	}
	if blob == nil || blob.MIMEType != "audio/ogg" || len(blob.Data) != 3 {
		t.Fatalf("inline audio not sent: %+v", parts)
	}
}

func TestRecognizeCanceled(t *testing.T) {
	m := chattest.New()
	m.Respond = func(*model.LLMRequest) (*genai.Content, error) {
		return nil, errors.New("quota exceeded")
	}
	got := NewRecognizer(m, "es-ES").Recognize(context.Background(), []byte{1}, "audio/wav")
	if got.Reason != Canceled || got.Cancellation == nil || got.Cancellation.Reason != "Error" {
		t.Fatalf("Recognize() = %+v", got)
	}
	want := "Cancelado: Error\nDetalles del error: " + got.Cancellation.ErrorDetails
	if got.String() != want {
		t.Errorf("String() = %q", got.String())
	}
}

func TestRecognizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hola.wav")
	if err := os.WriteFile(path, []byte("RIFF....WAVE"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := NewRecognizer(chattest.New("hola"), "es-ES").RecognizeFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "Texto reconocido: hola" {
		t.Errorf("String() = %q", got.String())
	}

	if _, err := NewRecognizer(chattest.New(), "es-ES").RecognizeFile(context.Background(), filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResultString(t *testing.T) {
	if got := (Result{Reason: NoMatch}).String(); got != "No se pudo reconocer la voz." {
		t.Errorf("NoMatch = %q", got)
	}
	if got := (Result{Reason: Canceled, Cancellation: &CancellationDetails{Reason: "EndOfStream"}}).String(); got != "Cancelado: EndOfStream" {
		t.Errorf("Canceled = %q", got)
	}
}
