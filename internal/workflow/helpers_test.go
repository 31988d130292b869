package workflow

import (
	"context"
	"errors"
)

// scriptedSender devolve as respostas em ordem e guarda as mensagens recebidas
type scriptedSender struct {
	replies []string
	got     []string
}

func (s *scriptedSender) SendText(_ context.Context, text string) (string, error) {
	s.got = append(s.got, text)
	if len(s.replies) == 0 {
		return "", errors.New("no reply left")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r, nil
}

type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Prompt(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", errors.New("no answer left")
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}
