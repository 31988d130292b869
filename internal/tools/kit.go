// Package tools contém as funções locais expostas aos agentes como
// ferramentas. Os dados são fixos ou sorteados; o objetivo é exercitar a
// chamada de funções, não consultar serviços reais.
package tools

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"
)

// Lang escolhe o idioma dos textos devolvidos pelas ferramentas
type Lang string

const (
	English Lang = "en"
	German  Lang = "de"
)

// Kit agrupa as dependências das ferramentas para que testes possam fixar o
// sorteio e o relógio.
type Kit struct {
	Rand func() float64
	Now  func() time.Time
	Out  io.Writer
	Lang Lang
}

// NewKit cria um Kit com aleatoriedade e relógio reais
func NewKit(out io.Writer, lang Lang) *Kit {
	return &Kit{Rand: rand.Float64, Now: time.Now, Out: out, Lang: lang}
}

func (k *Kit) logf(format string, args ...any) {
	if k.Out == nil {
		return
	}
	fmt.Fprintf(k.Out, format+"\n", args...)
}

func (k *Kit) german() bool { return k.Lang == German }

// WeatherTools devolve a ferramenta de clima simples (sem data)
func (k *Kit) WeatherTools() ([]tool.Tool, error) {
	weather, err := functiontool.New(functiontool.Config{
		Name:        "get_weather",
		Description: "Returns the current weather for a city.",
	}, k.Weather)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_weather tool: %w", err)
	}
	return []tool.Tool{weather}, nil
}

// WeekendTools devolve clima por data, atividades e data atual
func (k *Kit) WeekendTools() ([]tool.Tool, error) {
	weather, err := functiontool.New(functiontool.Config{
		Name:        "get_weather",
		Description: k.text("Returns the weather forecast for a city on a date.", "Liefert die Wettervorhersage für eine Stadt an einem Datum."),
	}, k.WeatherOnDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_weather tool: %w", err)
	}
	activities, err := functiontool.New(functiontool.Config{
		Name:        "get_activities",
		Description: k.text("Returns the activities available in a city on a date.", "Liefert die Aktivitäten in einer Stadt an einem Datum."),
	}, k.Activities)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_activities tool: %w", err)
	}
	date, err := functiontool.New(functiontool.Config{
		Name:        "get_current_date",
		Description: k.text("Returns today's date in format YYYY-MM-DD.", "Liefert das heutige Datum im Format YYYY-MM-DD."),
	}, k.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_current_date tool: %w", err)
	}
	return []tool.Tool{weather, activities, date}, nil
}

// MealTools devolve busca de receitas e conferência da geladeira
func (k *Kit) MealTools() ([]tool.Tool, error) {
	recipes, err := functiontool.New(functiontool.Config{
		Name:        "find_recipes",
		Description: k.text("Finds recipes for a meal or ingredient.", "Sucht Rezepte für eine Mahlzeit oder Zutat."),
	}, k.FindRecipes)
	if err != nil {
		return nil, fmt.Errorf("failed to create find_recipes tool: %w", err)
	}
	fridge, err := functiontool.New(functiontool.Config{
		Name:        "check_fridge",
		Description: k.text("Lists the ingredients currently in the fridge.", "Listet die Zutaten im Kühlschrank auf."),
	}, k.CheckFridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create check_fridge tool: %w", err)
	}
	return []tool.Tool{recipes, fridge}, nil
}

// MenuTools devolve as ferramentas do cardápio do restaurante
func (k *Kit) MenuTools() ([]tool.Tool, error) {
	specials, err := functiontool.New(functiontool.Config{
		Name:        "get_specials",
		Description: "Returns the specials from the menu.",
	}, k.Specials)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_specials tool: %w", err)
	}
	price, err := functiontool.New(functiontool.Config{
		Name:        "get_item_price",
		Description: "Returns the price of the menu item.",
	}, k.ItemPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_item_price tool: %w", err)
	}
	return []tool.Tool{specials, price}, nil
}

// TimeTools devolve a ferramenta de hora atual
func (k *Kit) TimeTools() ([]tool.Tool, error) {
	now, err := functiontool.New(functiontool.Config{
		Name:        "get_time",
		Description: "Get the current time.",
	}, k.CurrentTime)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_time tool: %w", err)
	}
	return []tool.Tool{now}, nil
}

// ForecastTools devolve a previsão fixa por localização
func (k *Kit) ForecastTools() ([]tool.Tool, error) {
	forecast, err := functiontool.New(functiontool.Config{
		Name:        "get_weather",
		Description: "Get the weather for a given location.",
	}, k.Forecast)
	if err != nil {
		return nil, fmt.Errorf("failed to create get_weather tool: %w", err)
	}
	return []tool.Tool{forecast}, nil
}

func (k *Kit) text(en, de string) string {
	if k.german() {
		return de
	}
	return en
}

// All devolve todas as ferramentas locais, sem repetir nomes
func (k *Kit) All() ([]tool.Tool, error) {
	builders := []func() ([]tool.Tool, error){
		k.WeekendTools, k.MealTools, k.MenuTools, k.TimeTools, k.ForecastTools, k.WeatherTools,
	}
	seen := map[string]bool{}
	var all []tool.Tool
	for _, build := range builders {
		ts, err := build()
		if err != nil {
			return nil, err
		}
		for _, t := range ts {
			if seen[t.Name()] {
				continue
			}
			seen[t.Name()] = true
			all = append(all, t)
		}
	}
	return all, nil
}
