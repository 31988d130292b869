// Package console lê a entrada do usuário no terminal para as demonstrações
// interativas.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExitKeywords encerram os loops interativos
var ExitKeywords = []string{"salir", "exit", "quit"}

// Prompter faz uma pergunta e devolve a resposta digitada
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Console lê linhas de in e escreve os prompts em out
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Prompt escreve prompt e lê uma linha; devolve io.EOF quando a entrada acaba
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Loop pergunta repetidamente e chama handle para cada linha até o usuário
// digitar uma palavra de saída ou a entrada acabar. Linhas vazias são
// ignoradas. Sem keywords, usa ExitKeywords.
func (c *Console) Loop(prompt string, handle func(line string) error, keywords ...string) error {
	if len(keywords) == 0 {
		keywords = ExitKeywords
	}
	for {
		line, err := c.Prompt(prompt)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		if IsExit(line, keywords...) {
			return nil
		}
		if err := handle(line); err != nil {
			return err
		}
	}
}

// IsExit informa se line é uma das palavras de saída, sem diferenciar maiúsculas
func IsExit(line string, keywords ...string) bool {
	if len(keywords) == 0 {
		keywords = ExitKeywords
	}
	line = strings.TrimSpace(line)
	for _, k := range keywords {
		if strings.EqualFold(line, k) {
			return true
		}
	}
	return false
}
