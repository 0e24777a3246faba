package catalog

var categories = []Category{
	{ID: "nuts", Name: "Nuts", Description: "Premium quality nuts", Image: "/images/categories/nuts.jpg"},
	{ID: "dried-fruits", Name: "Dried Fruits", Description: "Naturally sweet and nutritious", Image: "/images/categories/dried-fruits.jpg"},
	{ID: "seeds", Name: "Seeds", Description: "Tiny powerhouses of nutrition", Image: "/images/categories/seeds.jpg"},
	{ID: "trail-mix", Name: "Trail Mix", Description: "Perfect blends for on-the-go", Image: "/images/categories/trail-mix.jpg"},
	{ID: "healthy-bites", Name: "Healthy Bites", Description: "Guilt-free munching", Image: "/images/categories/healthy-bites.jpg"},
}

var products = []Product{
	{
		ID: "1", Name: "Premium California Almonds", Category: "Nuts",
		Price: 299, OriginalPrice: 349, Weight: "250g", Image: "/images/products/almonds.jpg",
		Rating: 4.8, Reviews: 324, InStock: true,
		Description: "Crunchy, wholesome almonds sourced from California orchards. Rich in vitamin E and healthy fats.",
		Nutrition:   "Per 100g: 579 kcal, Protein 21g, Fat 50g, Fiber 12g",
	},
	{
		ID: "2", Name: "Whole Cashews W240", Category: "Nuts",
		Price: 399, OriginalPrice: 449, Weight: "250g", Image: "/images/products/cashews.jpg",
		Rating: 4.7, Reviews: 256, InStock: true,
		Description: "Large, creamy W240 grade cashews, lightly roasted for a buttery bite.",
		Nutrition:   "Per 100g: 553 kcal, Protein 18g, Fat 44g, Fiber 3g",
	},
	{
		ID: "3", Name: "Chilean Walnut Kernels", Category: "Nuts",
		Price: 449, Weight: "200g", Image: "/images/products/walnuts.jpg",
		Rating: 4.6, Reviews: 189, InStock: true,
		Description: "Light halves of Chilean walnuts packed with omega-3 fatty acids.",
		Nutrition:   "Per 100g: 654 kcal, Protein 15g, Fat 65g, Fiber 7g",
	},
	{
		ID: "4", Name: "Afghan Black Raisins", Category: "Dried Fruits",
		Price: 199, OriginalPrice: 249, Weight: "250g", Image: "/images/products/raisins.jpg",
		Rating: 4.5, Reviews: 142, InStock: true,
		Description: "Seedless black raisins, naturally sweet and rich in iron.",
		Nutrition:   "Per 100g: 299 kcal, Protein 3g, Carbs 79g, Iron 1.9mg",
	},
	{
		ID: "5", Name: "Medjool Dates", Category: "Dried Fruits",
		Price: 549, OriginalPrice: 599, Weight: "500g", Image: "/images/products/dates.jpg",
		Rating: 4.9, Reviews: 410, InStock: true,
		Description: "Soft, caramel-like Medjool dates. A natural energy booster.",
		Nutrition:   "Per 100g: 277 kcal, Protein 2g, Carbs 75g, Fiber 7g",
	},
	{
		ID: "6", Name: "Roasted Pumpkin Seeds", Category: "Seeds",
		Price: 179, Weight: "200g", Image: "/images/products/pumpkin-seeds.jpg",
		Rating: 4.4, Reviews: 98, InStock: true,
		Description: "Lightly salted roasted pumpkin seeds, high in magnesium and zinc.",
		Nutrition:   "Per 100g: 559 kcal, Protein 30g, Fat 49g, Magnesium 592mg",
	},
	{
		ID: "7", Name: "Classic Trail Mix", Category: "Trail Mix",
		Price: 349, OriginalPrice: 399, Weight: "300g", Image: "/images/products/trail-mix.jpg",
		Rating: 4.6, Reviews: 203, InStock: true,
		Description: "A balanced mix of almonds, cashews, raisins and seeds for everyday snacking.",
		Nutrition:   "Per 100g: 480 kcal, Protein 14g, Fat 30g, Fiber 6g",
	},
	{
		ID: "8", Name: "Roasted Makhana Peri Peri", Category: "Healthy Bites",
		Price: 149, OriginalPrice: 179, Weight: "100g", Image: "/images/products/makhana.jpg",
		Rating: 4.3, Reviews: 176, InStock: true,
		Description: "Crunchy fox nuts roasted in olive oil with a peri peri kick.",
		Nutrition:   "Per 100g: 374 kcal, Protein 10g, Fat 8g, Fiber 14g",
	},
	{
		ID: "9", Name: "Chia Seeds", Category: "Seeds",
		Price: 229, Weight: "250g", Image: "/images/products/chia.jpg",
		Rating: 4.5, Reviews: 134, InStock: true,
		Description: "Raw chia seeds for smoothies, puddings and overnight oats.",
		Nutrition:   "Per 100g: 486 kcal, Protein 17g, Fat 31g, Fiber 34g",
	},
	{
		ID: "10", Name: "Turkish Dried Apricots", Category: "Dried Fruits",
		Price: 329, OriginalPrice: 379, Weight: "250g", Image: "/images/products/apricots.jpg",
		Rating: 4.4, Reviews: 87, InStock: false,
		Description: "Sun-dried Turkish apricots with no added sugar.",
		Nutrition:   "Per 100g: 241 kcal, Protein 3g, Carbs 63g, Fiber 7g",
	},
	{
		ID: "11", Name: "Berry Nut Trail Mix", Category: "Trail Mix",
		Price: 429, Weight: "300g", Image: "/images/products/berry-mix.jpg",
		Rating: 4.7, Reviews: 121, InStock: true,
		Description: "Cranberries, blueberries, almonds and pistachios in one tangy blend.",
		Nutrition:   "Per 100g: 455 kcal, Protein 11g, Fat 26g, Fiber 5g",
	},
	{
		ID: "12", Name: "Salted Pistachios", Category: "Nuts",
		Price: 599, OriginalPrice: 699, Weight: "250g", Image: "/images/products/pistachios.jpg",
		Rating: 4.8, Reviews: 267, InStock: true,
		Description: "In-shell Iranian pistachios, roasted and lightly salted.",
		Nutrition:   "Per 100g: 560 kcal, Protein 20g, Fat 45g, Fiber 10g",
	},
	{
		ID: "13", Name: "Ragi Millet Cookies", Category: "Healthy Bites",
		Price: 129, Weight: "150g", Image: "/images/products/ragi-cookies.jpg",
		Rating: 4.2, Reviews: 64, InStock: true,
		Description: "Baked finger millet cookies sweetened with jaggery.",
		Nutrition:   "Per 100g: 452 kcal, Protein 7g, Fat 18g, Fiber 6g",
	},
	{
		ID: "14", Name: "Flax Seeds", Category: "Seeds",
		Price: 99, Weight: "250g", Image: "/images/products/flax.jpg",
		Rating: 4.3, Reviews: 58, InStock: true,
		Description: "Golden flax seeds, a plant source of omega-3 and lignans.",
		Nutrition:   "Per 100g: 534 kcal, Protein 18g, Fat 42g, Fiber 27g",
	},
}
