package chat

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"google.golang.org/genai"

	"github.com/vitormoschetta/adk-patterns/internal/chat/chattest"
	"github.com/vitormoschetta/adk-patterns/internal/thread"
)

func TestSendAndSaveThenResume(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := thread.NewMockStore(ctrl)
	fake := chattest.New("A pirate joke.", "Arr! A pirate joke, matey.")
	c := NewClient(fake)

	th := thread.New()
	var saved []byte
	store.EXPECT().Save(gomock.Any(), th).DoAndReturn(func(_ context.Context, got *thread.Thread) error {
		data, err := got.Serialize()
		saved = data
		return err
	})
	if _, err := c.SendAndSave(ctx, store, th, "Tell me a short pirate joke."); err != nil {
		t.Fatal(err)
	}

	store.EXPECT().Load(gomock.Any(), th.ID).DoAndReturn(func(context.Context, string) (*thread.Thread, error) {
		return thread.Deserialize(saved)
	})
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	reply, resumed, err := c.Resume(ctx, store, th.ID, "Now tell that joke in the voice of a pirate.")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Arr! A pirate joke, matey." {
		t.Errorf("reply = %q", reply)
	}
	if resumed.Len() != 4 {
		t.Errorf("resumed thread has %d messages, want 4", resumed.Len())
	}
	// a segunda requisição carrega a conversa anterior
	if n := len(fake.Requests()[1].Contents); n != 3 {
		t.Errorf("second request carried %d contents, want 3", n)
	}
}

func TestResumeUnknownThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := thread.NewMockStore(ctrl)
	store.EXPECT().Load(gomock.Any(), "missing").Return(nil, thread.ErrNotFound)

	_, _, err := NewClient(chattest.New()).Resume(context.Background(), store, "missing", "hi")
	if !errors.Is(err, thread.ErrNotFound) {
		t.Errorf("Resume() error = %v, want ErrNotFound", err)
	}
}

func TestSendAndSaveSkipsSaveOnModelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := thread.NewMockStore(ctrl)
	// nenhuma chamada a Save é esperada
	th := thread.New()
	th.Append(genai.NewContentFromText("hi", genai.RoleUser), genai.NewContentFromText("hello", genai.RoleModel))

	if _, err := NewClient(chattest.New()).SendAndSave(context.Background(), store, th, "again"); err == nil {
		t.Fatal("expected error")
	}
	if th.Len() != 2 {
		t.Errorf("thread changed on error: %d messages", th.Len())
	}
}
