package station

import (
	"sort"
	"strings"
)

// Recipes maps a shapeless ingredient set onto its result. It is shared with
// every crafting module as the window extension.
type Recipes map[string]string

// DefaultRecipes returns the recipes the demo station ships with.
func DefaultRecipes() Recipes {
	r := Recipes{}
	r.Add("planks", "log")
	r.Add("stick", "planks", "planks")
	r.Add("torch", "coal", "stick")
	r.Add("crafting_table", "planks", "planks", "planks", "planks")
	r.Add("chest", "planks", "planks", "planks", "planks", "planks", "planks", "planks", "planks")
	r.Add("furnace", "cobblestone", "cobblestone", "cobblestone", "cobblestone", "cobblestone", "cobblestone", "cobblestone", "cobblestone")
	return r
}

// Name implements ui.Extension.
func (r Recipes) Name() string {
	return "recipes"
}

// Add registers result for the given ingredients, in any order.
func (r Recipes) Add(result string, ingredients ...string) {
	r[recipeKey(ingredients)] = result
}

// Match returns the result for items, ignoring empty entries and order.
func (r Recipes) Match(items []string) string {
	key := recipeKey(items)
	if key == "" {
		return ""
	}
	return r[key]
}

func recipeKey(items []string) string {
	var names []string
	for _, it := range items {
		if it != "" {
			names = append(names, it)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}
