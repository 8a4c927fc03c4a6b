package generator

import (
	"ecommerce_dataset/constants"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Priya", "Arjun", "Wei", "Mei", "Hiroshi", "Yuki", "Lukas", "Hannah",
	"Oliver", "Amelia", "Liam", "Chloe", "Noah", "Isla", "Mateo", "Sofia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Patel", "Sharma", "Chen", "Wang", "Tanaka", "Sato", "Mueller", "Schmidt",
}

var productAdjectives = []string{
	"Classic", "Premium", "Essential", "Pro", "Compact", "Deluxe", "Eco", "Smart",
	"Vintage", "Modern", "Ultra", "Everyday",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Park Rd", "Elm St", "Lake View Rd",
	"High St", "Station Rd", "Church Ln", "Hillcrest Ave", "River Rd", "Sunset Blvd",
	"King St", "Queen St", "Victoria Rd", "Mill Ln", "Forest Dr",
}

var reviewTexts = map[int][]string{
	5: {
		"Excellent product! Exceeded my expectations.",
		"Perfect! Exactly what I needed.",
		"Outstanding quality and fast delivery.",
		"Absolutely love it! Highly recommend.",
		"Best purchase ever! Five stars!",
	},
	4: {
		"Very good product, happy with purchase.",
		"Good quality, works as expected.",
		"Great product, minor issues but overall satisfied.",
		"Solid product, would buy again.",
		"Nice item, good value for money.",
	},
	3: {
		"Decent product, meets basic needs.",
		"Average quality, nothing special.",
		"It's okay, works fine but not amazing.",
		"Fair product for the price.",
		"Acceptable, does what it says.",
	},
	2: {
		"Disappointed, expected better quality.",
		"Not great, has some issues.",
		"Below expectations, wouldn't recommend.",
		"Poor quality, not worth the price.",
		"Unsatisfied, had problems with it.",
	},
	1: {
		"Terrible product, waste of money.",
		"Very disappointed, does not work.",
		"Awful quality, returned immediately.",
		"Complete disaster, do not buy.",
		"Worst purchase, totally unusable.",
	},
}

var defaultEmailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com", "protonmail.com",
}

var defaultPaymentMethods = []string{
	"Credit Card", "Debit Card", "PayPal", "Bank Transfer", "Apple Pay", "Google Pay",
}

var defaultCountries = []Country{
	{
		Name: "USA", DialCode: "+1", PostalFormat: "#####",
		Cities: []string{"New York", "Los Angeles", "Chicago", "Houston", "Seattle", "Boston", "Austin", "Denver"},
	},
	{
		Name: "Canada", DialCode: "+1", PostalFormat: "A#A #A#",
		Cities: []string{"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa"},
	},
	{
		Name: "UK", DialCode: "+44", PostalFormat: "AA# #AA",
		Cities: []string{"London", "Manchester", "Birmingham", "Leeds", "Glasgow", "Bristol"},
	},
	{
		Name: "Germany", DialCode: "+49", PostalFormat: "#####",
		Cities: []string{"Berlin", "Munich", "Hamburg", "Frankfurt", "Cologne"},
	},
	{
		Name: "India", DialCode: "+91", PostalFormat: "######",
		Cities: []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Hyderabad", "Pune"},
	},
	{
		Name: "Australia", DialCode: "+61", PostalFormat: "####",
		Cities: []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"},
	},
}

var defaultCategories = []Category{
	{
		Name: constants.CATEGORY_ELECTRONICS, Weight: 25,
		Brands: []string{"Samsung", "Sony", "Apple", "Logitech", "Anker", "Bose"},
		Items:  []string{"Headphones", "Smartwatch", "Bluetooth Speaker", "Tablet", "Wireless Mouse", "Power Bank", "Monitor"},
	},
	{
		Name: constants.CATEGORY_CLOTHING, Weight: 20,
		Brands: []string{"Nike", "Adidas", "Levi's", "Uniqlo", "Zara", "H&M"},
		Items:  []string{"T-Shirt", "Jeans", "Hoodie", "Jacket", "Sneakers", "Dress"},
	},
	{
		Name: constants.CATEGORY_HOME_KITCHEN, Weight: 18,
		Brands: []string{"KitchenAid", "Cuisinart", "Dyson", "Philips", "Tefal"},
		Items:  []string{"Blender", "Coffee Maker", "Air Fryer", "Cookware Set", "Vacuum Cleaner", "Toaster"},
	},
	{
		Name: constants.CATEGORY_BOOKS, Weight: 12,
		Brands: []string{"Penguin", "HarperCollins", "O'Reilly", "Vintage Books", "Scholastic"},
		Items:  []string{"Novel", "Cookbook", "Programming Guide", "Biography", "Travel Guide"},
	},
	{
		Name: constants.CATEGORY_SPORTS, Weight: 15,
		Brands: []string{"Coleman", "Wilson", "Under Armour", "The North Face", "Garmin"},
		Items:  []string{"Yoga Mat", "Tent", "Water Bottle", "Backpack", "Dumbbell Set", "Running Shoes"},
	},
	{
		Name: constants.CATEGORY_BEAUTY, Weight: 10,
		Brands: []string{"L'Oreal", "Nivea", "Neutrogena", "Olay", "Clinique"},
		Items:  []string{"Moisturizer", "Shampoo", "Face Serum", "Sunscreen", "Lip Balm"},
	},
}
