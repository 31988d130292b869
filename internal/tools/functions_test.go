package tools

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func fixedKit(r float64, lang Lang) (*Kit, *bytes.Buffer) {
	var out bytes.Buffer
	return &Kit{
		Rand: func() float64 { return r },
		Now:  func() time.Time { return time.Date(2025, 11, 8, 14, 30, 5, 0, time.UTC) },
		Out:  &out,
		Lang: lang,
	}, &out
}

func TestWeather(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want Weather
	}{
		{"sunny below half", 0.2, Weather{72, "Sunny"}},
		{"rainy from half", 0.5, Weather{60, "Rainy"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, out := fixedKit(tc.r, English)
			got, err := k.Weather(nil, CityArgs{City: "San Francisco"})
			if err != nil {
				t.Fatalf("Weather() returned unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Weather() = %+v, want %+v", got, tc.want)
			}
			if !strings.Contains(out.String(), "Getting weather for San Francisco") {
				t.Errorf("missing trace line, got %q", out.String())
			}
		})
	}
}

func TestWeatherOnDate(t *testing.T) {
	k, _ := fixedKit(0.04, English)
	if got, _ := k.WeatherOnDate(nil, CityDateArgs{City: "SF", Date: "2025-11-08"}); got.Description != "Sunny" {
		t.Errorf("want Sunny below 5%%, got %+v", got)
	}

	k, out := fixedKit(0.06, German)
	got, _ := k.WeatherOnDate(nil, CityDateArgs{City: "Berlin", Date: "2025-11-08"})
	if got.Description != "Regnerisch" {
		t.Errorf("want Regnerisch, got %+v", got)
	}
	if !strings.Contains(out.String(), "Hole Wetter für Berlin am 2025-11-08") {
		t.Errorf("missing german trace, got %q", out.String())
	}
}

func TestActivities(t *testing.T) {
	k, _ := fixedKit(0, English)
	got, err := k.Activities(nil, CityDateArgs{City: "Madrid", Date: "2025-11-08"})
	if err != nil {
		t.Fatalf("Activities() returned unexpected error: %v", err)
	}
	want := Activities{Activities: []Activity{
		{"Hiking", "Madrid"}, {"Beach", "Madrid"}, {"Museum", "Madrid"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Activities() mismatch (-want +got):\n%s", diff)
	}
}

func TestCurrentDateAndTime(t *testing.T) {
	k, _ := fixedKit(0, English)
	d, _ := k.CurrentDate(nil, NoArgs{})
	if d.Date != "2025-11-08" {
		t.Errorf("CurrentDate() = %q", d.Date)
	}
	c, _ := k.CurrentTime(nil, NoArgs{})
	if c.Time != "14:30:05" {
		t.Errorf("CurrentTime() = %q", c.Time)
	}
}

func TestFindRecipes(t *testing.T) {
	tests := []struct {
		query string
		lang  Lang
		want  string
	}{
		{"Something with PASTA", English, "Pasta Primavera"},
		{"tofu bowl", English, "Tofu Stir Fry"},
		{"lunch", English, "Grilled Cheese Sandwich"},
		{"tofu", German, "Tofu Pfannengericht"},
		{"mittagessen", German, "Gegrilltes Käsesandwich"},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			k, _ := fixedKit(0, tc.lang)
			got, err := k.FindRecipes(nil, RecipeArgs{Query: tc.query})
			if err != nil {
				t.Fatalf("FindRecipes() returned unexpected error: %v", err)
			}
			if len(got.Recipes) != 1 || got.Recipes[0].Title != tc.want {
				t.Errorf("FindRecipes(%q) = %+v, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestCheckFridge(t *testing.T) {
	k, _ := fixedKit(0.1, English)
	got, _ := k.CheckFridge(nil, NoArgs{})
	if got.Items[0] != "pasta" {
		t.Errorf("want pasta fridge, got %v", got.Items)
	}
	k, _ = fixedKit(0.9, English)
	got, _ = k.CheckFridge(nil, NoArgs{})
	if got.Items[0] != "tofu" {
		t.Errorf("want tofu fridge, got %v", got.Items)
	}
}

func TestMenu(t *testing.T) {
	k, _ := fixedKit(0, English)
	s, _ := k.Specials(nil, NoArgs{})
	if s.Soup != "Clam Chowder" || s.Salad != "Cobb Salad" || s.Drink != "Chai Tea" {
		t.Errorf("unexpected specials %+v", s)
	}
	p, _ := k.ItemPrice(nil, MenuItemArgs{MenuItem: "Cobb Salad"})
	if p.Price != "$9.99" {
		t.Errorf("unexpected price %+v", p)
	}
}

func TestForecast(t *testing.T) {
	k, _ := fixedKit(0, English)
	got, err := k.Forecast(nil, LocationArgs{Location: "Amsterdam"})
	if err != nil {
		t.Fatalf("Forecast() returned unexpected error: %v", err)
	}
	if got.Forecast != "The weather in Amsterdam is cloudy with a high of 15°C." {
		t.Errorf("unexpected forecast %q", got.Forecast)
	}
	if _, err := k.Forecast(nil, LocationArgs{}); err == nil {
		t.Error("want error for empty location")
	}
}

func TestToolSets(t *testing.T) {
	k, _ := fixedKit(0, English)
	sets := map[string]func() (int, error){
		"weather":  func() (int, error) { ts, err := k.WeatherTools(); return len(ts), err },
		"weekend":  func() (int, error) { ts, err := k.WeekendTools(); return len(ts), err },
		"meal":     func() (int, error) { ts, err := k.MealTools(); return len(ts), err },
		"menu":     func() (int, error) { ts, err := k.MenuTools(); return len(ts), err },
		"time":     func() (int, error) { ts, err := k.TimeTools(); return len(ts), err },
		"forecast": func() (int, error) { ts, err := k.ForecastTools(); return len(ts), err },
	}
	want := map[string]int{"weather": 1, "weekend": 3, "meal": 2, "menu": 2, "time": 1, "forecast": 1}
	for name, build := range sets {
		n, err := build()
		if err != nil {
			t.Fatalf("%s tools: %v", name, err)
		}
		if n != want[name] {
			t.Errorf("%s tools: want %d, got %d", name, want[name], n)
		}
	}
}

func TestAllDedupesNames(t *testing.T) {
	k, _ := fixedKit(0, English)
	all, err := k.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 8 {
		t.Errorf("All() returned %d tools, want 8", len(all))
	}
	seen := map[string]bool{}
	for _, tl := range all {
		if seen[tl.Name()] {
			t.Errorf("duplicate tool %s", tl.Name())
		}
		seen[tl.Name()] = true
	}
}
