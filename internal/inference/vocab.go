package inference

// Cuisines is the fixed cuisine vocabulary. Keyword inference scans it
// in order and the first hit wins, so the order is part of the contract.
var Cuisines = []string{
	"American", "British", "Canadian", "Chinese", "Croatian", "Dutch", "Egyptian", "French", "Greek", "Indian", "Irish",
	"Italian", "Jamaican", "Japanese", "Kenyan", "Malaysian", "Mexican", "Moroccan", "Russian", "Spanish", "Thai", "Turkish",
	"Vietnamese", "Nordic", "Polish", "Portuguese", "Cuban", "Korean", "Filipino", "Peruvian", "Brazilian", "Lebanese",
	"Pakistani", "Tunisian", "Ukrainian",
}

var cuisineKeywords = map[string][]string{
	"American":   {"burger", "bbq", "buffalo", "cornbread", "mac and cheese", "sloppy joe"},
	"British":    {"shepherd", "yorkshire", "stilton", "cottage pie", "trifle", "toad in the hole"},
	"Canadian":   {"poutine", "maple", "butter tart"},
	"Chinese":    {"wok", "szechuan", "sichuan", "hoisin", "dumpling", "five spice", "char siu", "spring roll"},
	"Croatian":   {"peka", "cevapi", "ajvar"},
	"Dutch":      {"gouda", "stroopwafel", "speculaas"},
	"Egyptian":   {"koshari", "dukkah", "molokhia"},
	"French":     {"baguette", "brie", "bourguignon", "ratatouille", "crepe", "provencal", "bechamel"},
	"Greek":      {"feta", "tzatziki", "souvlaki", "gyro", "moussaka", "halloumi"},
	"Indian":     {"curry", "masala", "paneer", "tikka", "garam", "naan", "korma", "dal"},
	"Irish":      {"guinness", "colcannon", "soda bread"},
	"Italian":    {"pasta", "risotto", "pesto", "lasagna", "carbonara", "parmesan", "mozzarella", "gnocchi"},
	"Jamaican":   {"jerk", "scotch bonnet", "ackee"},
	"Japanese":   {"teriyaki", "soy sauce", "miso", "sushi", "wasabi", "ramen", "dashi", "mirin"},
	"Kenyan":     {"ugali", "sukuma", "nyama"},
	"Malaysian":  {"laksa", "rendang", "satay", "sambal"},
	"Mexican":    {"taco", "tortilla", "salsa", "jalapeno", "enchilada", "burrito", "queso", "guacamole"},
	"Moroccan":   {"tagine", "harissa", "couscous", "ras el hanout"},
	"Russian":    {"borscht", "pelmeni", "stroganoff", "blini"},
	"Spanish":    {"paella", "chorizo", "tapas", "gazpacho", "manchego"},
	"Thai":       {"pad thai", "lemongrass", "galangal", "fish sauce", "thai basil"},
	"Turkish":    {"kebab", "doner", "sumac", "baklava"},
	"Vietnamese": {"pho", "banh", "rice paper", "nuoc"},
	"Nordic":     {"gravlax", "lingonberry", "dill cream"},
	"Polish":     {"pierogi", "kielbasa", "bigos"},
	"Portuguese": {"piri piri", "bacalhau", "chourico", "pastel de nata"},
	"Cuban":      {"mojo", "ropa vieja", "cubano"},
	"Korean":     {"kimchi", "gochujang", "bulgogi", "bibimbap"},
	"Filipino":   {"adobo", "sinigang", "lumpia"},
	"Peruvian":   {"ceviche", "aji amarillo", "lomo saltado"},
	"Brazilian":  {"feijoada", "farofa", "cachaca"},
	"Lebanese":   {"tahini", "zaatar", "hummus", "tabbouleh"},
	"Pakistani":  {"nihari", "karahi", "chapli"},
	"Tunisian":   {"brik", "merguez", "shakshuka"},
	"Ukrainian":  {"varenyky", "salo", "holubtsi"},
}

// MealTypes is the fixed meal-type vocabulary, scanned in order
var MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert"}

var mealTypeKeywords = map[string][]string{
	"Breakfast": {"breakfast", "pancake", "omelette", "porridge", "granola", "oatmeal", "brunch"},
	"Lunch":     {"lunch", "sandwich", "wrap", "salad"},
	"Dinner":    {"dinner", "roast", "stew", "casserole", "curry"},
	"Snack":     {"snack", "bite", "dip", "finger food"},
	"Dessert":   {"dessert", "cake", "cookie", "pudding", "ice cream", "sweet", "brownie"},
}

// Diet tag vocabulary. Anything outside this list is silently dropped
// from inference output.
const (
	DietVegan       = "Vegan"
	DietVegetarian  = "Vegetarian"
	DietDairyFree   = "Dairy-Free"
	DietGlutenFree  = "Gluten-Free"
	DietHighProtein = "High-Protein"
	DietLowCarb     = "Low-Carb"
	DietPaleo       = "Paleo"
	DietKeto        = "Keto"
)

var DietTagVocabulary = []string{
	DietVegan, DietVegetarian, DietDairyFree, DietGlutenFree,
	DietHighProtein, DietLowCarb, DietPaleo, DietKeto,
}

// Ingredient marker sets for diet classification. Matching is
// case-insensitive substring over ingredient names.
var (
	meatWords = []string{
		"beef", "pork", "chicken", "lamb", "bacon", "ham", "sausage", "turkey",
		"duck", "veal", "steak", "mince", "chorizo", "prosciutto", "salami", "meatball",
	}
	fishWords = []string{
		"fish", "salmon", "tuna", "cod", "haddock", "shrimp", "prawn", "crab",
		"lobster", "anchov", "sardine", "mussel", "clam", "oyster", "squid", "mackerel", "trout",
	}
	dairyWords = []string{
		"milk", "butter", "cheese", "cream", "yogurt", "yoghurt", "ghee",
		"mozzarella", "parmesan", "cheddar", "feta", "custard", "paneer",
	}
	eggWords    = []string{"egg"}
	glutenWords = []string{
		"flour", "wheat", "bread", "pasta", "spaghetti", "macaroni", "noodle",
		"barley", "rye", "couscous", "semolina", "soy sauce", "tortilla",
		"cracker", "biscuit", "pastry", "beer",
	}
	starchyCarbWords = []string{"potato", "rice", "corn", "oat", "quinoa"}
	sugaryCarbWords  = []string{"sugar", "honey", "syrup", "molasses", "chocolate", "caramel", "jam"}

	// sugarFamilyWords is the stricter subset gating Low-Carb and Paleo
	sugarFamilyWords = []string{"sugar", "honey", "syrup", "molasses"}

	proteinExtraWords = []string{
		"tofu", "tempeh", "seitan", "paneer", "yogurt", "lentil", "chickpea", "bean", "egg",
	}
)
