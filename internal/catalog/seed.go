package catalog

// Default returns the coffee shop catalog. Products are defined here, in
// display order, and never change for the life of the process.
func Default() *Catalog {
	return New(coffeeProducts)
}

var coffeeProducts = []Product{
	// Espresso
	{
		ID:          1,
		Name:        "Classic Espresso",
		Category:    CategoryEspresso,
		Serving:     ServingHot,
		Price:       25000,
		Description: "Espresso murni dengan cita rasa kuat dan aroma yang khas",
		Image:       "images/products/Espresso.jpg",
		ImageAlt:    "Classic Espresso",
		Featured:    true,
	},
	{
		ID:          2,
		Name:        "Americano",
		Category:    CategoryEspresso,
		Serving:     ServingHot,
		Price:       28000,
		Description: "Espresso yang diencerkan dengan air panas, nikmat dan tidak terlalu pekat",
		Image:       "images/products/Americano.jpg",
		ImageAlt:    "Hot Americano",
	},
	{
		ID:          3,
		Name:        "Iced Americano",
		Category:    CategoryEspresso,
		Serving:     ServingIce,
		Price:       30000,
		Description: "Americano dingin yang menyegarkan dengan es batu",
		Image:       "images/products/Iced-Americano.jpg",
		ImageAlt:    "Iced Americano",
		Featured:    true,
	},
	{
		ID:          4,
		Name:        "Double Espresso",
		Category:    CategoryEspresso,
		Serving:     ServingHot,
		Price:       35000,
		Description: "Dua shot espresso untuk rasa yang lebih kuat dan energi maksimal",
		Image:       "images/products/Double-Espresso.jpg",
		ImageAlt:    "Double Espresso",
	},

	// Latte
	{
		ID:          5,
		Name:        "Cafe Latte",
		Category:    CategoryLatte,
		Serving:     ServingHot,
		Price:       35000,
		Description: "Kombinasi sempurna espresso dengan susu steamed yang creamy",
		Image:       "images/products/Cafe-Latte.jpg",
		ImageAlt:    "Cafe Latte",
		Featured:    true,
	},
	{
		ID:          6,
		Name:        "Iced Latte",
		Category:    CategoryLatte,
		Serving:     ServingIce,
		Price:       38000,
		Description: "Latte dingin dengan es untuk kesegaran maksimal",
		Image:       "images/products/Iced-Latte.jpg",
		ImageAlt:    "Iced Latte",
		Featured:    true,
	},
	{
		ID:          7,
		Name:        "Vanilla Latte",
		Category:    CategoryLatte,
		Serving:     ServingHot,
		Price:       40000,
		Description: "Latte dengan sentuhan vanilla yang manis dan harum",
		Image:       "images/products/Vanilla-Latte.jpg",
		ImageAlt:    "Vanilla Latte",
	},
	{
		ID:          8,
		Name:        "Caramel Latte",
		Category:    CategoryLatte,
		Serving:     ServingHot,
		Price:       42000,
		Description: "Latte dengan topping caramel sauce yang lezat",
		Image:       "images/products/Caramel-latte.jpg",
		ImageAlt:    "Caramel Latte",
	},
	{
		ID:          9,
		Name:        "Iced Vanilla Latte",
		Category:    CategoryLatte,
		Serving:     ServingIce,
		Price:       42000,
		Description: "Kombinasi vanilla latte dengan es yang menyegarkan",
		Image:       "images/products/Iced-Vanilla-Latte.jpg",
		ImageAlt:    "Iced Vanilla Latte",
	},
	{
		ID:          10,
		Name:        "Matcha Latte",
		Category:    CategoryLatte,
		Serving:     ServingHot,
		Price:       45000,
		Description: "Perpaduan unik matcha premium dengan susu yang creamy",
		Image:       "images/products/Matcha-Latte.jpg",
		ImageAlt:    "Matcha Latte",
		Featured:    true,
	},

	// Manual brew
	{
		ID:          11,
		Name:        "V60 Pour Over",
		Category:    CategoryManualBrew,
		Serving:     ServingHot,
		Price:       38000,
		Description: "Kopi manual brew dengan metode V60, rasa yang clean dan bright",
		Image:       "images/products/V60-Pour-over.jpg",
		ImageAlt:    "V60 Pour Over",
	},
	{
		ID:          12,
		Name:        "French Press",
		Category:    CategoryManualBrew,
		Serving:     ServingHot,
		Price:       40000,
		Description: "Kopi dengan body yang full dan rasa yang kaya",
		Image:       "images/products/French-Press.jpg",
		ImageAlt:    "French Press",
	},
	{
		ID:          13,
		Name:        "Aeropress",
		Category:    CategoryManualBrew,
		Serving:     ServingHot,
		Price:       35000,
		Description: "Metode brewing cepat dengan rasa yang smooth dan balanced",
		Image:       "images/products/Aeropress.jpg",
		ImageAlt:    "Aeropress Coffee",
	},
	{
		ID:          14,
		Name:        "Cold Brew",
		Category:    CategoryManualBrew,
		Serving:     ServingIce,
		Price:       42000,
		Description: "Kopi yang diseduh dingin selama 12-24 jam, rasa yang smooth dan less acidic",
		Image:       "images/products/Cold-Brew.jpg",
		ImageAlt:    "Cold Brew Coffee",
		Featured:    true,
	},
	{
		ID:          15,
		Name:        "Japanese Iced Coffee",
		Category:    CategoryManualBrew,
		Serving:     ServingIce,
		Price:       40000,
		Description: "Kopi yang diseduh langsung ke atas es, mempertahankan aroma dan rasa",
		Image:       "images/products/Japanese-Iced-Coffe.jpg",
		ImageAlt:    "Japanese Iced Coffee",
	},

	// Signature
	{
		ID:          16,
		Name:        "Cappuccino",
		Category:    CategorySignature,
		Serving:     ServingHot,
		Price:       38000,
		Description: "Espresso dengan milk foam yang tebal dan creamy",
		Image:       "images/products/Cappuccino.jpg",
		ImageAlt:    "Cappuccino",
		Featured:    true,
	},
	{
		ID:          17,
		Name:        "Mocha",
		Category:    CategorySignature,
		Serving:     ServingHot,
		Price:       45000,
		Description: "Kombinasi sempurna espresso, cokelat, dan susu",
		Image:       "images/products/Mocha.jpg",
		ImageAlt:    "Mocha Coffee",
	},
	{
		ID:          18,
		Name:        "Iced Mocha",
		Category:    CategorySignature,
		Serving:     ServingIce,
		Price:       48000,
		Description: "Mocha dingin dengan es dan whipped cream",
		Image:       "images/products/Iced-Mocha.jpg",
		ImageAlt:    "Iced Mocha",
	},
	{
		ID:          19,
		Name:        "Affogato",
		Category:    CategorySignature,
		Serving:     ServingHot,
		Price:       42000,
		Description: "Espresso panas yang dituangkan ke atas vanilla ice cream",
		Image:       "images/products/Affogato.jpg",
		ImageAlt:    "Affogato",
		Featured:    true,
	},
	{
		ID:          20,
		Name:        "Kopi Susu Gula Aren",
		Category:    CategorySignature,
		Serving:     ServingIce,
		Price:       35000,
		Description: "Kopi susu khas Indonesia dengan gula aren yang manis",
		Image:       "images/products/Kopi-Susu-Gula-Aren.jpg",
		ImageAlt:    "Kopi Susu Gula Aren",
		Featured:    true,
	},
	{
		ID:          21,
		Name:        "Vietnamese Coffee",
		Category:    CategorySignature,
		Serving:     ServingHot,
		Price:       38000,
		Description: "Kopi Vietnam dengan condensed milk yang manis dan kental",
		Image:       "images/products/Vietnamese-Coffe.jpg",
		ImageAlt:    "Vietnamese Coffee",
	},
	{
		ID:          22,
		Name:        "Irish Coffee",
		Category:    CategorySignature,
		Serving:     ServingHot,
		Price:       48000,
		Description: "Kopi dengan whiskey, gula, dan cream (non-alcoholic version)",
		Image:       "images/products/Irish-Coffe.jpg",
		ImageAlt:    "Irish Coffee",
	},
	{
		ID:          23,
		Name:        "Dalgona Coffee",
		Category:    CategorySignature,
		Serving:     ServingIce,
		Price:       38000,
		Description: "Kopi Korea dengan foam kopi yang creamy di atas susu dingin",
		Image:       "images/products/Dalgona-Coffe.jpg",
		ImageAlt:    "Dalgona Coffee",
	},
	{
		ID:          24,
		Name:        "Spanish Latte",
		Category:    CategorySignature,
		Serving:     ServingIce,
		Price:       42000,
		Description: "Latte dengan condensed milk dan susu full cream yang creamy",
		Image:       "images/products/Spanish-Latte.jpg",
		ImageAlt:    "Spanish Latte",
	},
}
