package suggest

type pair struct {
	key   string
	value string
}

var seasonalItems = map[string][]string{
	"fall":   {"Pumpkin", "Butternut Squash", "Brussels Sprouts", "Sweet Potato", "Cranberries"},
	"winter": {"Citrus Fruits", "Root Vegetables", "Kale", "Winter Squash", "Pomegranate"},
	"spring": {"Asparagus", "Strawberries", "Peas", "Artichokes", "Spring Lettuce"},
	"summer": {"Tomatoes", "Corn", "Watermelon", "Berries", "Zucchini"},
}

// Checked in order; the first key contained in an item name applies.
var substitutes = []pair{
	{"milk", "Almond Milk"},
	{"almond milk", "Oat Milk"},
	{"butter", "Olive Oil"},
	{"sugar", "Honey"},
	{"white bread", "Whole Wheat Bread"},
	{"pasta", "Whole Grain Pasta"},
	{"beef", "Chicken"},
	{"chicken", "Turkey"},
	{"rice", "Quinoa"},
	{"soda", "Sparkling Water"},
	{"chips", "Veggie Chips"},
	{"ice cream", "Frozen Yogurt"},
}

var complements = []pair{
	{"bread", "Butter"},
	{"pasta", "Tomato Sauce"},
	{"cereal", "Milk"},
	{"coffee", "Creamer"},
	{"chips", "Salsa"},
	{"crackers", "Cheese"},
	{"hamburger buns", "Ground Beef"},
	{"hot dog buns", "Hot Dogs"},
	{"lettuce", "Salad Dressing"},
	{"eggs", "Bacon"},
	{"pancake mix", "Maple Syrup"},
	{"peanut butter", "Jelly"},
	{"tortilla chips", "Guacamole"},
}

var interestCategories = []struct {
	name  string
	items []string
}{
	{"fruit", []string{"Strawberries", "Blueberries", "Oranges", "Grapes", "Pineapple", "Apples", "Bananas"}},
	{"vegetable", []string{"Spinach", "Broccoli", "Carrots", "Tomatoes", "Bell Peppers", "Potatoes", "Onions", "Lettuce"}},
	{"dairy", []string{"Cheddar Cheese", "Butter", "Eggs", "Greek Yogurt", "Milk", "Cream Cheese"}},
	{"meat", []string{"Ground Beef", "Salmon Fillet", "Turkey Breast", "Chicken Thighs", "Chicken Breast"}},
	{"beverage", []string{"Tea", "Soda", "Water Bottles", "Energy Drinks", "Coffee", "Orange Juice"}},
	{"snack", []string{"Granola Bars", "Chips", "Popcorn", "Nuts", "Cookies", "Candy"}},
	{"bakery", []string{"Bagels", "Muffins", "Croissants", "Donuts", "Bread", "Cake"}},
	{"pantry", []string{"Rice", "Quinoa", "Olive Oil", "Spices", "Pasta", "Cereal", "Flour"}},
	{"frozen", []string{"Frozen Pizza", "Ice Cream", "Frozen Vegetables", "Frozen Meals"}},
	{"personal", []string{"Shampoo", "Soap", "Deodorant", "Tissues", "Toothpaste"}},
	{"household", []string{"Paper Towels", "Trash Bags", "Laundry Detergent", "Dish Soap"}},
}

var preferenceWords = []string{"organic", "premium", "fresh", "natural", "low-fat", "gluten-free"}

var preferenceItems = []string{
	"Organic Apples", "Premium Coffee", "Fresh Bread", "Natural Yogurt", "Low-Fat Milk", "Gluten-Free Pasta",
}

// Accessories looked up in the catalog for items already on the list.
var accessories = []struct {
	key   string
	items []string
}{
	{"iphone", []string{"iPhone Screen Protector", "iPhone Case", "AirPods", "iPhone Charger"}},
	{"samsung galaxy", []string{"Samsung Screen Protector", "Samsung Case", "Galaxy Buds", "Samsung Charger"}},
	{"google pixel", []string{"Pixel Screen Protector", "Pixel Case", "Pixel Buds", "Pixel Charger"}},
	{"oneplus", []string{"OnePlus Screen Protector", "OnePlus Case", "OnePlus Buds", "OnePlus Charger"}},
	{"xiaomi", []string{"Xiaomi Screen Protector", "Xiaomi Case", "Xiaomi Earbuds", "Xiaomi Charger"}},
	{"poco", []string{"Poco Screen Protector", "Poco Case", "Poco Earbuds", "Poco Charger"}},

	{"macbook", []string{"MacBook Sleeve", "Magic Mouse", "MacBook Charger", "Thunderbolt Cable"}},
	{"dell", []string{"Dell Laptop Bag", "Dell Mouse", "Dell Charger", "USB Hub"}},
	{"hp", []string{"HP Laptop Case", "HP Mouse", "HP Charger", "HDMI Cable"}},
	{"lenovo", []string{"Lenovo Backpack", "Lenovo Mouse", "Lenovo Charger", "Docking Station"}},

	{"nike", []string{"Nike Socks", "Nike Shoe Laces", "Nike Insoles", "Nike Shoe Cleaner"}},
	{"adidas", []string{"Adidas Socks", "Adidas Shoe Laces", "Adidas Insoles", "Adidas Shoe Bag"}},
	{"puma", []string{"Puma Socks", "Puma Shoe Laces", "Puma Insoles", "Puma Shoe Care Kit"}},

	{"book", []string{"Bookmark Set", "Reading Light", "Book Stand", "Book Cover"}},
	{"kindle", []string{"Kindle Case", "Kindle Screen Protector", "Kindle Charger", "Kindle Stand"}},

	{"coffee maker", []string{"Coffee Filters", "Coffee Beans", "Coffee Mug", "Descaling Solution"}},
	{"blender", []string{"Blender Jars", "Blender Blades", "Blender Cleaning Brush", "Recipe Book"}},
	{"air fryer", []string{"Air Fryer Basket", "Air Fryer Liners", "Silicone Tongs", "Recipe Book"}},
	{"instant pot", []string{"Instant Pot Accessories", "Pressure Cooker Recipes", "Extra Sealing Rings"}},

	{"playstation", []string{"PS5 Controller", "PS5 Headset", "PS5 Stand", "PS5 Games"}},
	{"xbox", []string{"Xbox Controller", "Xbox Headset", "Xbox Stand", "Xbox Games"}},
	{"nintendo switch", []string{"Switch Case", "Switch Screen Protector", "Switch Joy-Con Grip", "Switch Games"}},

	{"headphones", []string{"Headphone Case", "Audio Cable", "Headphone Stand", "Cleaning Kit"}},
	{"speaker", []string{"Speaker Stand", "Audio Cable", "Speaker Cover", "Battery Pack"}},
	{"camera", []string{"Camera Case", "Memory Card", "Camera Bag", "Lens Cleaner"}},

	{"watch", []string{"Watch Band", "Watch Box", "Watch Winder", "Watch Cleaner"}},
	{"sunglasses", []string{"Sunglass Case", "Lens Cleaner", "Sunglass Chain", "Cleaning Cloth"}},
	{"bag", []string{"Bag Organizer", "Bag Charm", "Bag Hanger", "Bag Cover"}},

	{"plant", []string{"Plant Pot", "Plant Soil", "Plant Fertilizer", "Watering Can"}},
	{"grill", []string{"Grill Cover", "Grill Brush", "Grill Tools", "Charcoal"}},
	{"bicycle", []string{"Bike Lock", "Bike Light", "Bike Helmet", "Bike Pump"}},

	{"yoga mat", []string{"Yoga Blocks", "Yoga Strap", "Yoga Towel", "Meditation Cushion"}},
	{"dumbbells", []string{"Dumbbell Rack", "Weight Bench", "Resistance Bands", "Workout Gloves"}},
	{"treadmill", []string{"Treadmill Mat", "Heart Rate Monitor", "Water Bottle", "Towel"}},

	{"diaper", []string{"Diaper Cream", "Wipes", "Diaper Bag", "Changing Pad"}},
	{"stroller", []string{"Stroller Organizer", "Stroller Cup Holder", "Rain Cover", "Stroller Hook"}},
	{"toy", []string{"Toy Storage", "Toy Cleaner", "Batteries", "Toy Repair Kit"}},
}

func season(month int) string {
	switch {
	case month >= 9 && month <= 11:
		return "fall"
	case month >= 0 && month <= 2:
		return "winter"
	case month >= 3 && month <= 5:
		return "spring"
	default:
		return "summer"
	}
}
