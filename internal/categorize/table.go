package categorize

import (
	"github.com/pantryflow/receipt-ingest/constants"
)

// Entry pairs one pantry category with the keywords that select it.
type Entry struct {
	Category constants.Category
	Keywords []string
}

// Table is an ordered list of entries. Order is the match priority: the
// first entry whose keyword set hits the item name wins, so more specific
// categories must come before broader ones.
type Table []Entry

// DefaultTable is the stock keyword table. It is configuration data, not
// behavior: callers may pass their own table to New without touching any
// parsing logic.
var DefaultTable = Table{
	{constants.Produce, []string{
		"banana", "apple", "orange", "grape", "berr", "melon", "lemon", "lime",
		"tomato", "lettuce", "spinach", "kale", "carrot", "onion", "potato",
		"pepper", "broccoli", "cucumber", "avocado", "celery", "organic", "salad",
	}},
	{constants.Seafood, []string{
		"salmon", "tuna", "shrimp", "tilapia", "cod", "crab", "lobster", "fish",
	}},
	{constants.Meat, []string{
		"chicken", "beef", "pork", "turkey", "ham", "bacon", "sausage", "steak",
		"ground", "ribs", "lamb", "deli",
	}},
	{constants.Dairy, []string{
		"milk", "cheese", "yogurt", "butter", "egg", "cream", "creamer",
		"cottage", "mozzarella", "cheddar", "parmesan",
	}},
	{constants.Frozen, []string{
		"frozen", "ice cream", "popsicle", "pizza rolls", "frz",
	}},
	{constants.CannedGoods, []string{
		"canned", "can ", "soup", "beans", "chickpea", "tomato sauce", "tuna can",
		"corn can", "broth", "stock",
	}},
	{constants.Grains, []string{
		"bread", "rice", "pasta", "spaghetti", "noodle", "cereal", "oat",
		"tortilla", "bagel", "bun", "quinoa", "flour tortilla", "cracker",
	}},
	{constants.Beverages, []string{
		"water", "juice", "soda", "cola", "coffee", "tea", "beer", "wine",
		"drink", "sparkling", "lemonade",
	}},
	{constants.Snacks, []string{
		"chip", "pretzel", "popcorn", "candy", "chocolate", "cookie", "granola",
		"nuts", "trail mix", "snack",
	}},
	{constants.Condiments, []string{
		"ketchup", "mustard", "mayo", "relish", "salsa", "dressing", "sauce",
		"syrup", "honey", "jam", "jelly", "vinegar",
	}},
	{constants.Spices, []string{
		"salt", "spice", "cinnamon", "cumin", "paprika", "oregano", "basil",
		"garlic powder", "chili powder", "seasoning",
	}},
	{constants.Baking, []string{
		"flour", "sugar", "yeast", "baking soda", "baking powder", "vanilla",
		"cocoa", "shortening", "cake mix", "frosting",
	}},
}
