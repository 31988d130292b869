package completion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vitormoschetta/adk-patterns/internal/chat"
	"github.com/vitormoschetta/adk-patterns/internal/chat/chattest"
)

// recorder guarda cópias das listas de mensagens e responde "reply N"
type recorder struct {
	calls [][]chat.Message
	fail  int
}

func (r *recorder) Complete(_ context.Context, messages []chat.Message) (string, error) {
	r.calls = append(r.calls, append([]chat.Message(nil), messages...))
	if r.fail > 0 && len(r.calls) == r.fail {
		return "", errors.New("boom")
	}
	return fmt.Sprintf("reply %d", len(r.calls)), nil
}

func TestFirstPromptWithModel(t *testing.T) {
	m := chattest.New("Había una vez...")
	got, err := FirstPrompt(context.Background(), chat.NewClient(m))
	if err != nil {
		t.Fatal(err)
	}
	if got != "Había una vez..." {
		t.Errorf("FirstPrompt() = %q", got)
	}
	req := m.Requests()[0]
	if chat.Text(req.Config.SystemInstruction) != StorySystemPrompt {
		t.Errorf("system instruction = %q", chat.Text(req.Config.SystemInstruction))
	}
	if m.LastText() != StoryUserPrompt {
		t.Errorf("user prompt = %q", m.LastText())
	}
}

func TestDateMessages(t *testing.T) {
	msgs := DateMessages(SampleTexts[3])
	roles := make([]string, len(msgs))
	for i, m := range msgs {
		roles[i] = m.Role
	}
	want := []string{chat.RoleSystem, chat.RoleUser, chat.RoleAssistant, chat.RoleUser}
	if diff := cmp.Diff(want, roles); diff != "" {
		t.Errorf("roles mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(msgs[3].Content, SampleTexts[3]) {
		t.Errorf("last message does not carry the text: %q", msgs[3].Content)
	}
	if msgs[2].Content != "03/01/2024, 12/04/2024" {
		t.Errorf("few-shot answer = %q", msgs[2].Content)
	}
}

func TestExtractAll(t *testing.T) {
	r := &recorder{}
	got, err := ExtractAll(context.Background(), r, SampleTexts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(SampleTexts) || got[4] != "reply 5" {
		t.Errorf("ExtractAll() = %v", got)
	}

	r = &recorder{fail: 2}
	got, err = ExtractAll(context.Background(), r, SampleTexts)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 {
		t.Errorf("partial results = %v, want 1", got)
	}
}

func TestClassifyIntent(t *testing.T) {
	m := chattest.New("Consulta de saldo")
	got, err := ClassifyIntent(context.Background(), chat.NewClient(m), "¿Cuánto dinero tengo?")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Consulta de saldo" {
		t.Errorf("ClassifyIntent() = %q", got)
	}
	system := chat.Text(m.Requests()[0].Config.SystemInstruction)
	for _, intent := range Intents {
		if !strings.Contains(system, intent) {
			t.Errorf("system prompt missing intent %q", intent)
		}
	}
}

func TestDebateMirrorsHistories(t *testing.T) {
	r := &recorder{}
	var out bytes.Buffer
	d := NewDebate(&out)
	d.Iterations = 2

	turns, err := d.Run(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}
	wantTurns := []Turn{{2, "reply 1"}, {1, "reply 2"}, {2, "reply 3"}, {1, "reply 4"}}
	if diff := cmp.Diff(wantTurns, turns); diff != "" {
		t.Errorf("turns mismatch (-want +got):\n%s", diff)
	}

	// terceira chamada: histórico do assistente 2 depois de uma rodada
	wantSecond := []chat.Message{
		{Role: chat.RoleSystem, Content: BarcaFan},
		{Role: chat.RoleUser, Content: DebateTopic},
		{Role: chat.RoleAssistant, Content: "reply 1"},
		{Role: chat.RoleUser, Content: "reply 2"},
	}
	if diff := cmp.Diff(wantSecond, r.calls[2]); diff != "" {
		t.Errorf("assistant 2 history mismatch (-want +got):\n%s", diff)
	}

	// quarta chamada: histórico do assistente 1
	wantFirst := []chat.Message{
		{Role: chat.RoleSystem, Content: MadridFan},
		{Role: chat.RoleUser, Content: "reply 1"},
		{Role: chat.RoleAssistant, Content: "reply 2"},
		{Role: chat.RoleUser, Content: "reply 3"},
	}
	if diff := cmp.Diff(wantFirst, r.calls[3]); diff != "" {
		t.Errorf("assistant 1 history mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(out.String(), "Tema a tratar:  "+DebateTopic) {
		t.Errorf("missing topic line in %q", out.String())
	}
}

func TestDebateStopsOnError(t *testing.T) {
	d := NewDebate(nil)
	turns, err := d.Run(context.Background(), &recorder{fail: 3})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(turns) != 2 {
		t.Errorf("turns = %d, want 2", len(turns))
	}
}
