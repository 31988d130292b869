package tools

import (
	"fmt"
	"strings"

	"google.golang.org/adk/tool"
)

type CityArgs struct {
	City string `json:"city" jsonschema:"City name, spelled out fully"`
}

type CityDateArgs struct {
	City string `json:"city" jsonschema:"The city to look up"`
	Date string `json:"date" jsonschema:"The date in format YYYY-MM-DD"`
}

type Weather struct {
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
}

// Weather sorteia entre ensolarado e chuvoso com chances iguais
func (k *Kit) Weather(_ tool.Context, args CityArgs) (Weather, error) {
	k.logf("Getting weather for %s", args.City)
	if k.Rand() < 0.5 {
		return Weather{Temperature: 72, Description: "Sunny"}, nil
	}
	return Weather{Temperature: 60, Description: "Rainy"}, nil
}

// WeatherOnDate quase sempre devolve chuva (5% de sol)
func (k *Kit) WeatherOnDate(_ tool.Context, args CityDateArgs) (Weather, error) {
	if k.german() {
		k.logf("Hole Wetter für %s am %s", args.City, args.Date)
	} else {
		k.logf("Getting weather for %s on %s", args.City, args.Date)
	}
	if k.Rand() < 0.05 {
		return Weather{Temperature: 72, Description: k.text("Sunny", "Sonnig")}, nil
	}
	return Weather{Temperature: 60, Description: k.text("Rainy", "Regnerisch")}, nil
}

type Activity struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Activities struct {
	Activities []Activity `json:"activities"`
}

func (k *Kit) Activities(_ tool.Context, args CityDateArgs) (Activities, error) {
	if k.german() {
		k.logf("Hole Aktivitäten für %s am %s", args.City, args.Date)
		return Activities{Activities: []Activity{
			{Name: "Wandern", Location: args.City},
			{Name: "Strand", Location: args.City},
			{Name: "Museum", Location: args.City},
		}}, nil
	}
	k.logf("Getting activities for %s on %s", args.City, args.Date)
	return Activities{Activities: []Activity{
		{Name: "Hiking", Location: args.City},
		{Name: "Beach", Location: args.City},
		{Name: "Museum", Location: args.City},
	}}, nil
}

type NoArgs struct{}

type Date struct {
	Date string `json:"date"`
}

func (k *Kit) CurrentDate(_ tool.Context, _ NoArgs) (Date, error) {
	k.logf("%s", k.text("Getting current date", "Hole aktuelles Datum"))
	return Date{Date: k.Now().Format("2006-01-02")}, nil
}

type RecipeArgs struct {
	Query string `json:"query" jsonschema:"User query or desired meal/ingredient"`
}

type Recipe struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type Recipes struct {
	Recipes []Recipe `json:"recipes"`
}

func (k *Kit) FindRecipes(_ tool.Context, args RecipeArgs) (Recipes, error) {
	if k.german() {
		k.logf("Suche Rezepte für '%s'", args.Query)
	} else {
		k.logf("Finding recipes for '%s'", args.Query)
	}

	query := strings.ToLower(args.Query)
	switch {
	case strings.Contains(query, "pasta"):
		return Recipes{Recipes: []Recipe{k.recipe(
			"Pasta Primavera", "Pasta Primavera",
			[]string{"pasta", "vegetables", "olive oil"}, []string{"Nudeln", "Gemüse", "Olivenöl"},
			[]string{"Cook pasta.", "Sauté vegetables."}, []string{"Nudeln kochen.", "Gemüse anbraten."},
		)}}, nil
	case strings.Contains(query, "tofu"):
		return Recipes{Recipes: []Recipe{k.recipe(
			"Tofu Stir Fry", "Tofu Pfannengericht",
			[]string{"tofu", "soy sauce", "vegetables"}, []string{"Tofu", "Sojasauce", "Gemüse"},
			[]string{"Cube tofu.", "Stir fry veggies."}, []string{"Tofu würfeln.", "Gemüse anbraten."},
		)}}, nil
	default:
		return Recipes{Recipes: []Recipe{k.recipe(
			"Grilled Cheese Sandwich", "Gegrilltes Käsesandwich",
			[]string{"bread", "cheese", "butter"}, []string{"Brot", "Käse", "Butter"},
			[]string{"Butter bread.", "Place cheese between slices.", "Grill until golden brown."},
			[]string{"Brot buttern.", "Käse zwischen die Scheiben legen.", "Golden braun grillen."},
		)}}, nil
	}
}

func (k *Kit) recipe(titleEN, titleDE string, ingEN, ingDE, stepsEN, stepsDE []string) Recipe {
	if k.german() {
		return Recipe{Title: titleDE, Ingredients: ingDE, Steps: stepsDE}
	}
	return Recipe{Title: titleEN, Ingredients: ingEN, Steps: stepsEN}
}

type Fridge struct {
	Items []string `json:"items"`
}

// CheckFridge sorteia um de dois conteúdos possíveis
func (k *Kit) CheckFridge(_ tool.Context, _ NoArgs) (Fridge, error) {
	k.logf("%s", k.text("Checking fridge for current ingredients", "Überprüfe Kühlschrank auf vorhandene Zutaten"))
	if k.Rand() < 0.5 {
		return Fridge{Items: k.pick(
			[]string{"pasta", "tomato sauce", "bell peppers", "olive oil"},
			[]string{"Nudeln", "Tomatensauce", "Paprika", "Olivenöl"},
		)}, nil
	}
	return Fridge{Items: k.pick(
		[]string{"tofu", "soy sauce", "broccoli", "carrots"},
		[]string{"Tofu", "Sojasauce", "Brokkoli", "Karotten"},
	)}, nil
}

func (k *Kit) pick(en, de []string) []string {
	if k.german() {
		return de
	}
	return en
}

type Specials struct {
	Soup  string `json:"special_soup"`
	Salad string `json:"special_salad"`
	Drink string `json:"special_drink"`
}

func (k *Kit) Specials(_ tool.Context, _ NoArgs) (Specials, error) {
	return Specials{Soup: "Clam Chowder", Salad: "Cobb Salad", Drink: "Chai Tea"}, nil
}

type MenuItemArgs struct {
	MenuItem string `json:"menu_item" jsonschema:"The name of the menu item."`
}

type Price struct {
	MenuItem string `json:"menu_item"`
	Price    string `json:"price"`
}

func (k *Kit) ItemPrice(_ tool.Context, args MenuItemArgs) (Price, error) {
	return Price{MenuItem: args.MenuItem, Price: "$9.99"}, nil
}

type Clock struct {
	Time string `json:"time"`
}

func (k *Kit) CurrentTime(_ tool.Context, _ NoArgs) (Clock, error) {
	return Clock{Time: k.Now().Format("15:04:05")}, nil
}

type LocationArgs struct {
	Location string `json:"location" jsonschema:"The location to get the weather for."`
}

type Forecast struct {
	Forecast string `json:"forecast"`
}

func (k *Kit) Forecast(_ tool.Context, args LocationArgs) (Forecast, error) {
	if strings.TrimSpace(args.Location) == "" {
		return Forecast{}, fmt.Errorf("location is required")
	}
	return Forecast{Forecast: fmt.Sprintf("The weather in %s is cloudy with a high of 15°C.", args.Location)}, nil
}
