package catalog

var builtin = []Product{
	// Electronics
	{Name: "iPhone 15 Pro Max", Category: "electronics", Brand: "Apple", Size: "256GB", Price: 1199.99, InStock: true},
	{Name: "Samsung Galaxy S24 Ultra", Category: "electronics", Brand: "Samsung", Size: "512GB", Price: 1299.99, InStock: true},
	{Name: "MacBook Pro 16-inch", Category: "electronics", Brand: "Apple", Size: "M3 Max", Price: 3499.99, InStock: true},
	{Name: "Dell XPS 13 Laptop", Category: "electronics", Brand: "Dell", Size: "Intel i7", Price: 1299.99, InStock: true},
	{Name: "Sony WH-1000XM5 Headphones", Category: "electronics", Brand: "Sony", Size: "Wireless", Price: 349.99, InStock: true},
	{Name: "AirPods Pro 2nd Gen", Category: "electronics", Brand: "Apple", Size: "Wireless", Price: 249.99, InStock: true},
	{Name: "iPad Air 5th Gen", Category: "electronics", Brand: "Apple", Size: "64GB", Price: 599.99, InStock: true},
	{Name: `Samsung 55" 4K Smart TV`, Category: "electronics", Brand: "Samsung", Size: "55 inch", Price: 699.99, InStock: true},
	{Name: "Nintendo Switch OLED", Category: "electronics", Brand: "Nintendo", Size: "White", Price: 349.99, InStock: true},
	{Name: "GoPro HERO11 Silver", Category: "electronics", Brand: "GoPro", Size: "Action Camera", Price: 299.99, InStock: true},

	// Clothing
	{Name: "Levi's 511 Slim Fit Jeans", Category: "clothing", Brand: "Levi's", Size: "32x32", Price: 69.99, InStock: true},
	{Name: "Nike Air Max 270", Category: "clothing", Brand: "Nike", Size: "10", Price: 129.99, InStock: true},
	{Name: "Adidas Ultraboost 23", Category: "clothing", Brand: "Adidas", Size: "9.5", Price: 189.99, InStock: true},
	{Name: "H&M Cotton T-Shirt", Category: "clothing", Brand: "H&M", Size: "Large", Price: 12.99, InStock: true},
	{Name: "Zara Wool Coat", Category: "clothing", Brand: "Zara", Size: "Medium", Price: 149.99, InStock: true},
	{Name: "Uniqlo Down Jacket", Category: "clothing", Brand: "Uniqlo", Size: "Large", Price: 89.99, InStock: true},
	{Name: "Supreme Box Logo Hoodie", Category: "clothing", Brand: "Supreme", Size: "Large", Price: 299.99, InStock: true},
	{Name: "Gucci GG Marmont Bag", Category: "clothing", Brand: "Gucci", Size: "Small", Price: 1890.00, InStock: true},

	// Home & kitchen
	{Name: "KitchenAid Stand Mixer", Category: "home", Brand: "KitchenAid", Size: "5 Quart", Price: 379.99, InStock: true},
	{Name: "Dyson V15 Detect Vacuum", Category: "home", Brand: "Dyson", Size: "Cordless", Price: 749.99, InStock: true},
	{Name: "Instant Pot Duo 7-in-1", Category: "home", Brand: "Instant Pot", Size: "6 Quart", Price: 79.99, InStock: true},
	{Name: "Ninja Food Processor", Category: "home", Brand: "Ninja", Size: "8 Cup", Price: 149.99, InStock: true},
	{Name: "Cuisinart Coffee Maker", Category: "home", Brand: "Cuisinart", Size: "12 Cup", Price: 59.99, InStock: true},
	{Name: "Breville Espresso Machine", Category: "home", Brand: "Breville", Size: "Stainless Steel", Price: 699.99, InStock: true},

	// Books
	{Name: "Atomic Habits", Category: "books", Brand: "James Clear", Size: "Paperback", Price: 16.99, InStock: true},
	{Name: "The Psychology of Money", Category: "books", Brand: "Morgan Housel", Size: "Hardcover", Price: 19.99, InStock: true},
	{Name: "Sapiens: A Brief History of Humankind", Category: "books", Brand: "Yuval Noah Harari", Size: "Paperback", Price: 24.99, InStock: true},
	{Name: "Educated", Category: "books", Brand: "Tara Westover", Size: "Paperback", Price: 15.99, InStock: true},
	{Name: "The Midnight Library", Category: "books", Brand: "Matt Haig", Size: "Hardcover", Price: 26.99, InStock: true},

	// Sports & outdoors
	{Name: "Peloton Bike", Category: "sports", Brand: "Peloton", Size: "Standard", Price: 2495.00, InStock: true},
	{Name: "Bowflex SelectTech Dumbbells", Category: "sports", Brand: "Bowflex", Size: "5-52.5 lbs", Price: 499.99, InStock: true},
	{Name: "Yeti Tundra 65 Cooler", Category: "sports", Brand: "Yeti", Size: "65 Quart", Price: 399.99, InStock: true},
	{Name: "Garmin Forerunner 265", Category: "sports", Brand: "Garmin", Size: "Running Watch", Price: 449.99, InStock: true},
	{Name: "Wilson Pro Staff Tennis Racket", Category: "sports", Brand: "Wilson", Size: `4 3/8"`, Price: 249.99, InStock: true},

	// Beauty & personal care
	{Name: "Dyson Airwrap Complete", Category: "beauty", Brand: "Dyson", Size: "Multi-styler", Price: 599.99, InStock: true},
	{Name: "The Ordinary Hyaluronic Acid", Category: "beauty", Brand: "The Ordinary", Size: "30ml", Price: 6.99, InStock: true},
	{Name: "CeraVe Moisturizing Cream", Category: "beauty", Brand: "CeraVe", Size: "16 oz", Price: 16.99, InStock: true},
	{Name: "Fenty Beauty Pro Filt'r Soft Matte Longwear Foundation", Category: "beauty", Brand: "Fenty Beauty", Size: "30ml", Price: 35.00, InStock: true},
	{Name: "Drunk Elephant Protini Polypeptide Cream", Category: "beauty", Brand: "Drunk Elephant", Size: "50ml", Price: 68.00, InStock: true},

	// Toys & games
	{Name: "LEGO Star Wars Millennium Falcon", Category: "toys", Brand: "LEGO", Size: "1351 pieces", Price: 159.99, InStock: true},
	{Name: "Nintendo Switch OLED", Category: "toys", Brand: "Nintendo", Size: "White", Price: 349.99, InStock: true},
	{Name: "Hasbro Monopoly Classic", Category: "toys", Brand: "Hasbro", Size: "Board Game", Price: 19.99, InStock: true},
	{Name: "Fisher-Price Little People Wheelies", Category: "toys", Brand: "Fisher-Price", Size: "Stand & Play Ramp", Price: 24.99, InStock: true},

	// Grocery
	{Name: "Organic Bananas", Category: "grocery", Brand: "Fresh Farms", Size: "1 lb", Price: 0.59, InStock: true},
	{Name: "Whole Milk", Category: "grocery", Brand: "Organic Valley", Size: "1 gallon", Price: 5.99, InStock: true},
	{Name: "Free Range Eggs", Category: "grocery", Brand: "Vital Farms", Size: "12 count", Price: 7.99, InStock: true},
	{Name: "Whole Wheat Bread", Category: "grocery", Brand: "Dave's Killer Bread", Size: "24 oz", Price: 6.99, InStock: true},
	{Name: "Organic Strawberries", Category: "grocery", Brand: "Driscoll's", Size: "1 lb", Price: 4.99, InStock: true},
	{Name: "Greek Yogurt", Category: "grocery", Brand: "Chobani", Size: "32 oz", Price: 5.49, InStock: true},
	{Name: "Almond Butter", Category: "grocery", Brand: "Justin's", Size: "16 oz", Price: 4.99, InStock: true},
	{Name: "Organic Chicken Breast", Category: "grocery", Brand: "Perdue", Size: "1 lb", Price: 8.99, InStock: true},
	{Name: "Brown Rice", Category: "grocery", Brand: "Lundberg", Size: "2 lb", Price: 4.99, InStock: true},
	{Name: "Extra Virgin Olive Oil", Category: "grocery", Brand: "California Olive Ranch", Size: "16.9 oz", Price: 9.99, InStock: true},

	// More electronics
	{Name: "iPhone 15", Category: "electronics", Brand: "Apple", Size: "128GB", Price: 799.99, InStock: true},
	{Name: "Google Pixel 8 Pro", Category: "electronics", Brand: "Google", Size: "256GB", Price: 999.99, InStock: true},
	{Name: "Surface Pro 9", Category: "electronics", Brand: "Microsoft", Size: "Intel i7", Price: 1299.99, InStock: true},
	{Name: "AirPods Max", Category: "electronics", Brand: "Apple", Size: "Space Gray", Price: 549.99, InStock: true},
	{Name: "Ring Video Doorbell", Category: "electronics", Brand: "Ring", Size: "Wired", Price: 59.99, InStock: true},
	{Name: "Echo Dot 5th Gen", Category: "electronics", Brand: "Amazon", Size: "Smart Speaker", Price: 39.99, InStock: true},

	// More clothing
	{Name: "Ray-Ban Aviator Sunglasses", Category: "clothing", Brand: "Ray-Ban", Size: "Medium", Price: 149.99, InStock: true},
	{Name: "Timberland 6-Inch Boot", Category: "clothing", Brand: "Timberland", Size: "10", Price: 189.99, InStock: true},
	{Name: "Patagonia Better Sweater", Category: "clothing", Brand: "Patagonia", Size: "Large", Price: 139.00, InStock: true},
	{Name: "Allbirds Wool Runners", Category: "clothing", Brand: "Allbirds", Size: "9", Price: 95.00, InStock: true},

	// Accessories and complements
	{Name: "iPhone Screen Protector", Category: "electronics", Brand: "Generic", Size: "Standard", Price: 9.99, InStock: true},
	{Name: "iPhone Case", Category: "electronics", Brand: "Generic", Size: "Clear", Price: 14.99, InStock: true},
	{Name: "MacBook Sleeve", Category: "electronics", Brand: "Generic", Size: "13-inch", Price: 24.99, InStock: true},
	{Name: "Nike Socks", Category: "clothing", Brand: "Nike", Size: "Medium", Price: 12.99, InStock: true},
	{Name: "Nike Shoe Laces", Category: "clothing", Brand: "Nike", Size: "Standard", Price: 4.99, InStock: true},
	{Name: "Coffee Filters", Category: "home", Brand: "Generic", Size: "Pack of 100", Price: 3.99, InStock: true},
	{Name: "Coffee Beans", Category: "grocery", Brand: "Starbucks", Size: "1 lb", Price: 12.99, InStock: true},
	{Name: "PS5 Controller", Category: "electronics", Brand: "Sony", Size: "Wireless", Price: 69.99, InStock: true},
	{Name: "Headphone Case", Category: "electronics", Brand: "Generic", Size: "Standard", Price: 8.99, InStock: true},
	{Name: "Watch Band", Category: "clothing", Brand: "Generic", Size: "22mm", Price: 19.99, InStock: true},
	{Name: "Plant Pot", Category: "home", Brand: "Generic", Size: "6-inch", Price: 7.99, InStock: true},
	{Name: "Bike Lock", Category: "sports", Brand: "Generic", Size: "Standard", Price: 15.99, InStock: true},
	{Name: "Yoga Blocks", Category: "sports", Brand: "Generic", Size: "Set of 2", Price: 12.99, InStock: true},
	{Name: "Diaper Cream", Category: "baby", Brand: "Generic", Size: "4 oz", Price: 4.99, InStock: true},

	// More home
	{Name: "Blue Apron Meal Kit", Category: "home", Brand: "Blue Apron", Size: "Serves 2", Price: 59.94, InStock: true},
	{Name: "Casper Hybrid Mattress", Category: "home", Brand: "Casper", Size: "Queen", Price: 1099.00, InStock: true},
	{Name: "Anker Power Bank", Category: "home", Brand: "Anker", Size: "20000mAh", Price: 39.99, InStock: true},

	// More books
	{Name: "The Seven Husbands of Evelyn Hugo", Category: "books", Brand: "Taylor Jenkins Reid", Size: "Paperback", Price: 16.99, InStock: true},
	{Name: "Where the Crawdads Sing", Category: "books", Brand: "Delia Owens", Size: "Paperback", Price: 18.99, InStock: true},
	{Name: "The Thursday Murder Club", Category: "books", Brand: "Richard Osman", Size: "Hardcover", Price: 27.99, InStock: true},

	// More sports
	{Name: "Fitbit Charge 6", Category: "sports", Brand: "Fitbit", Size: "Fitness Tracker", Price: 149.99, InStock: true},
	{Name: "Titleist TruFeel Golf Balls", Category: "sports", Brand: "Titleist", Size: "12 pack", Price: 29.99, InStock: true},
	{Name: "Manduka PRO Yoga Mat", Category: "sports", Brand: "Manduka", Size: `68" x 24"`, Price: 119.00, InStock: true},

	// More beauty
	{Name: "Oribe Shampoo", Category: "beauty", Brand: "Oribe", Size: "8.5 oz", Price: 58.00, InStock: true},
	{Name: "Glossier Boy Brow", Category: "beauty", Brand: "Glossier", Size: "0.12 oz", Price: 16.00, InStock: true},
	{Name: "Laneige Water Sleeping Mask", Category: "beauty", Brand: "Laneige", Size: "70ml", Price: 29.00, InStock: true},

	// More toys
	{Name: "Codenames Board Game", Category: "toys", Brand: "Czech Games", Size: "2-8 players", Price: 14.99, InStock: true},
	{Name: "Roku Streaming Stick 4K", Category: "toys", Brand: "Roku", Size: "Voice Remote", Price: 49.99, InStock: true},
}

// Builtin returns a copy of the bundled product catalog.
func Builtin() []Product {
	out := make([]Product, len(builtin))
	copy(out, builtin)
	return out
}
