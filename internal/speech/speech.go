// Package speech transcreve áudio enviando o arquivo ao modelo como parte
// inline. O reconhecimento fica todo do lado do modelo.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/thread"
)

// Reason é o desfecho de um reconhecimento
type Reason string

const (
	Recognized Reason = "RecognizedSpeech"
	NoMatch    Reason = "NoMatch"
	Canceled   Reason = "Canceled"
)

// noMatchMarker é a resposta combinada com o modelo quando não há fala
const noMatchMarker = "NO_MATCH"

var audioTypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mp3",
	".aiff": "audio/aiff",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// CancellationDetails explica por que o reconhecimento foi cancelado
type CancellationDetails struct {
	Reason       string
	ErrorDetails string
}

// Result é o resultado de um reconhecimento
type Result struct {
	Reason       Reason
	Text         string
	Cancellation *CancellationDetails
}

// Recognizer transcreve áudio no idioma configurado
type Recognizer struct {
	client   *chat.Client
	Language string
}

func NewRecognizer(m model.LLM, language string) *Recognizer {
	instructions := fmt.Sprintf("You are a speech recognizer. Transcribe the speech in the audio exactly, in the language %s. "+
		"Reply only with the transcription. If there is no recognizable speech, reply %s.", language, noMatchMarker)
	return &Recognizer{
		client:   chat.NewClient(m, chat.WithName("speech"), chat.WithInstructions(instructions)),
		Language: language,
	}
}

// AudioType devolve o media type do arquivo de áudio pela extensão
func AudioType(path string) (string, error) {
	t, ok := audioTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	return t, nil
}

// RecognizeFile lê o arquivo e reconhece uma única fala
func (r *Recognizer) RecognizeFile(ctx context.Context, path string) (Result, error) {
	mediaType, err := AudioType(path)
	if err != nil {
		return Result{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read audio: %w", err)
	}
	return r.Recognize(ctx, data, mediaType), nil
}

// Recognize envia o áudio ao modelo. Erros do modelo viram um resultado
// Canceled com os detalhes do erro.
func (r *Recognizer) Recognize(ctx context.Context, audio []byte, mediaType string) Result {
	if len(audio) == 0 {
		return Result{Reason: NoMatch}
	}
	text, err := r.client.Send(ctx, thread.New(),
		genai.NewPartFromText("Transcribe this audio."),
		genai.NewPartFromBytes(audio, mediaType),
	)
	if err != nil {
		reason := "Error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			reason = "CancelledByUser"
		}
		return Result{Reason: Canceled, Cancellation: &CancellationDetails{Reason: reason, ErrorDetails: err.Error()}}
	}

	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, noMatchMarker) {
		return Result{Reason: NoMatch}
	}
	return Result{Reason: Recognized, Text: text}
}

// String formata o resultado como a saída do reconhecedor
func (r Result) String() string {
	switch r.Reason {
	case Recognized:
		return "Texto reconocido: " + r.Text
	case NoMatch:
		return "No se pudo reconocer la voz."
	case Canceled:
		if r.Cancellation == nil {
			return "Cancelado"
		}
		out := "Cancelado: " + r.Cancellation.Reason
		if r.Cancellation.ErrorDetails != "" {
			out += "\nDetalles del error: " + r.Cancellation.ErrorDetails
		}
		return out
	}
	return string(r.Reason)
}
