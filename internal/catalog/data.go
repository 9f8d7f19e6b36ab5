package catalog

import "github.com/koolabhinay07/Lollyzz/internal/domain"

// CategoryOrder is the fixed preference order for the category navigation
// strip. Sections not listed here keep their display order after the listed
// ones.
var CategoryOrder = []string{
	"momos",
	"pizza",
	"burgers",
	"sandwiches",
	"starters",
	"main-course",
	"rice-noodles",
	"snacks",
	"beverages",
	"desserts",
}

// Default builds the embedded Lollyzz menu. The data is fixed at build time;
// deployments that keep the menu in a spreadsheet use the sheets loader
// instead.
func Default() *Catalog {
	c, err := New(defaultSections)
	if err != nil {
		// the embedded data is validated by tests; reaching this is a bug
		panic(err)
	}
	return c
}

var defaultSections = []domain.MenuSection{
	{
		ID:       "momos",
		Title:    "Momos",
		Subtitle: "Steamed, fried & kurkure",
		Items: []domain.MenuItem{
			{
				ID:   "momo-veg-steam",
				Name: "Veg Steam Momos",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half (5 pcs)", Price: 50},
					{ID: "full", Label: "Full (10 pcs)", Price: 90},
				},
			},
			{
				ID:   "momo-veg-fried",
				Name: "Veg Fried Momos",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half (5 pcs)", Price: 60},
					{ID: "full", Label: "Full (10 pcs)", Price: 110},
				},
			},
			{
				ID:   "momo-veg-kurkure",
				Name: "Veg Kurkure Momos",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full (10 pcs)", Price: 130},
				},
			},
			{
				ID:   "momo-paneer-steam",
				Name: "Paneer Steam Momos",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half (5 pcs)", Price: 70},
					{ID: "full", Label: "Full (10 pcs)", Price: 130},
				},
			},
			{
				ID:   "momo-chicken-steam",
				Name: "Chicken Steam Momos",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half (5 pcs)", Price: 70},
					{ID: "full", Label: "Full (10 pcs)", Price: 130},
				},
			},
			{
				ID:   "momo-chicken-fried",
				Name: "Chicken Fried Momos",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half (5 pcs)", Price: 80},
					{ID: "full", Label: "Full (10 pcs)", Price: 150},
				},
			},
			{
				ID:   "momo-chicken-kurkure",
				Name: "Chicken Kurkure Momos",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full (10 pcs)", Price: 170},
				},
			},
		},
	},
	{
		ID:       "pizza",
		Title:    "Pizza",
		Subtitle: "Fresh pan pizzas",
		Items: []domain.MenuItem{
			{
				ID:   "pizza-margherita",
				Name: "Margherita Pizza",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "7in", Label: `7"`, Price: 110},
					{ID: "10in", Label: `10"`, Price: 210},
				},
			},
			{
				ID:   "pizza-farmhouse",
				Name: "Farmhouse Pizza",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "7in", Label: `7"`, Price: 150},
					{ID: "10in", Label: `10"`, Price: 270},
				},
			},
			{
				ID:   "pizza-paneer-tikka",
				Name: "Paneer Tikka Pizza",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "7in", Label: `7"`, Price: 170},
					{ID: "10in", Label: `10"`, Price: 300},
				},
			},
			{
				ID:   "pizza-chicken-tikka",
				Name: "Chicken Tikka Pizza",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "7in", Label: `7"`, Price: 190},
					{ID: "10in", Label: `10"`, Price: 330},
				},
			},
		},
	},
	{
		ID:    "burgers",
		Title: "Burgers",
		Items: []domain.MenuItem{
			{
				ID:   "burger-aloo-tikki",
				Name: "Aloo Tikki Burger",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 50},
				},
			},
			{
				ID:   "burger-veg-cheese",
				Name: "Veg Cheese Burger",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 70},
					{ID: "large", Label: "Large", Price: 100},
				},
			},
			{
				ID:   "burger-paneer",
				Name: "Paneer Burger",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 80},
				},
			},
			{
				ID:   "burger-chicken",
				Name: "Chicken Burger",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 90},
					{ID: "large", Label: "Large", Price: 130},
				},
			},
		},
	},
	{
		ID:    "sandwiches",
		Title: "Sandwiches",
		Items: []domain.MenuItem{
			{
				ID:   "sandwich-veg-grilled",
				Name: "Veg Grilled Sandwich",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 60},
					{ID: "med", Label: "Med", Price: 80},
				},
			},
			{
				ID:   "sandwich-paneer-tikka",
				Name: "Paneer Tikka Sandwich",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 90},
				},
			},
			{
				ID:   "sandwich-chicken-tikka",
				Name: "Chicken Tikka Sandwich",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 100},
				},
			},
			{
				ID:   "sandwich-club",
				Name: "Club Sandwich",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 110},
				},
			},
		},
	},
	{
		ID:    "starters",
		Title: "Starters",
		Items: []domain.MenuItem{
			{
				ID:   "starter-chilli-paneer",
				Name: "Chilli Paneer",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 120},
					{ID: "full", Label: "Full", Price: 220},
				},
			},
			{
				ID:   "starter-chilli-potato",
				Name: "Chilli Potato",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 80},
					{ID: "full", Label: "Full", Price: 140},
				},
			},
			{
				ID:   "starter-honey-chilli-potato",
				Name: "Honey Chilli Potato",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 90},
					{ID: "full", Label: "Full", Price: 160},
				},
			},
			{
				ID:   "starter-chicken-65",
				Name: "Chicken 65",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 220},
				},
			},
			{
				ID:   "starter-chicken-lollipop",
				Name: "Chicken Lollipop",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "6pc", Label: "6 pcs", Price: 200},
				},
			},
		},
	},
	{
		ID:       "main-course",
		Title:    "Main Course",
		Subtitle: "Served with roti or rice",
		Items: []domain.MenuItem{
			{
				ID:   "main-paneer-punjabi",
				Name: "Paneer Punjabi",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 130},
					{ID: "full", Label: "Full", Price: 240},
				},
			},
			{
				ID:   "main-shahi-paneer",
				Name: "Shahi Paneer",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 140},
					{ID: "full", Label: "Full", Price: 250},
				},
			},
			{
				ID:   "main-kadhai-paneer",
				Name: "Kadhai Paneer",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 140},
					{ID: "full", Label: "Full", Price: 250},
				},
			},
			{
				ID:   "main-dal-makhani",
				Name: "Dal Makhani",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 100},
					{ID: "full", Label: "Full", Price: 180},
				},
			},
			{
				ID:   "main-butter-chicken",
				Name: "Butter Chicken",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 180},
					{ID: "full", Label: "Full", Price: 330},
				},
			},
			{
				ID:   "main-chicken-curry",
				Name: "Chicken Curry",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 160},
					{ID: "full", Label: "Full", Price: 300},
				},
			},
		},
	},
	{
		ID:    "rice-noodles",
		Title: "Rice & Noodles",
		Items: []domain.MenuItem{
			{
				ID:   "rice-veg-fried",
				Name: "Veg Fried Rice",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 70},
					{ID: "full", Label: "Full", Price: 120},
				},
			},
			{
				ID:   "rice-paneer-fried",
				Name: "Paneer Fried Rice",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 150},
				},
			},
			{
				ID:   "rice-egg-fried",
				Name: "Egg Fried Rice",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 130},
				},
			},
			{
				ID:   "rice-chicken-fried",
				Name: "Chicken Fried Rice",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 160},
				},
			},
			{
				ID:   "noodles-veg-hakka",
				Name: "Veg Hakka Noodles",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 70},
					{ID: "full", Label: "Full", Price: 120},
				},
			},
			{
				ID:   "noodles-chicken-hakka",
				Name: "Chicken Hakka Noodles",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 160},
				},
			},
			{
				ID:   "main-veg-biryani",
				Name: "Veg Biryani",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "full", Label: "Full", Price: 140},
				},
			},
			{
				ID:   "main-chicken-biryani",
				Name: "Chicken Biryani",
				Veg:  false,
				Variants: []domain.Variant{
					{ID: "half", Label: "Half", Price: 150},
					{ID: "full", Label: "Full", Price: 260},
				},
			},
		},
	},
	{
		ID:    "snacks",
		Title: "Snacks",
		Items: []domain.MenuItem{
			{
				ID:   "snack-paneer-pakora",
				Name: "Paneer Pakora",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "plate", Label: "Plate (6 pcs)", Price: 110},
				},
			},
			{
				ID:   "snack-veg-pakora",
				Name: "Veg Pakora",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "plate", Label: "Plate", Price: 70},
				},
			},
			{
				ID:   "snack-french-fries",
				Name: "French Fries",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 60},
					{ID: "large", Label: "Large", Price: 90},
				},
			},
			{
				ID:   "snack-peri-peri-fries",
				Name: "Peri Peri Fries",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 80},
					{ID: "large", Label: "Large", Price: 110},
				},
			},
			{
				ID:   "snack-spring-roll",
				Name: "Veg Spring Roll",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "plate", Label: "Plate (4 pcs)", Price: 90},
				},
			},
		},
	},
	{
		ID:    "beverages",
		Title: "Beverages",
		Items: []domain.MenuItem{
			{
				ID:   "bev-masala-chai",
				Name: "Masala Chai",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 20},
				},
			},
			{
				ID:   "bev-cold-coffee",
				Name: "Cold Coffee",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "med", Label: "Med", Price: 70},
					{ID: "large", Label: "Large", Price: 100},
				},
			},
			{
				ID:   "bev-oreo-shake",
				Name: "Oreo Shake",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "med", Label: "Med", Price: 90},
					{ID: "large", Label: "Large", Price: 120},
				},
			},
			{
				ID:   "bev-sweet-lassi",
				Name: "Sweet Lassi",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 50},
				},
			},
			{
				ID:   "bev-masala-lemonade",
				Name: "Masala Lemonade",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 40},
				},
			},
		},
	},
	{
		ID:    "desserts",
		Title: "Desserts",
		Items: []domain.MenuItem{
			{
				ID:   "dessert-gulab-jamun",
				Name: "Gulab Jamun",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "2pc", Label: "2 pcs", Price: 40},
				},
			},
			{
				ID:   "dessert-brownie",
				Name: "Chocolate Brownie",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "reg", Label: "Reg", Price: 80},
					{ID: "sizzler", Label: "With Ice Cream", Price: 120},
				},
			},
			{
				ID:   "dessert-ice-cream",
				Name: "Ice Cream",
				Veg:  true,
				Variants: []domain.Variant{
					{ID: "scoop", Label: "Single Scoop", Price: 50},
					{ID: "double", Label: "Double Scoop", Price: 90},
				},
			},
		},
	},
}
