package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// promoTable is the fixed promo code table. Keys are uppercase; lookup is
// case-insensitive on input.
var promoTable = map[string]int{
	"FLAT20":    20,
	"FIRST10":   10,
	"MILLET15":  15,
	"HEALTHY25": 25,
}

func w(value string, price int64) domain.Weight {
	return domain.Weight{Value: value, Price: decimal.NewFromInt(price)}
}

// products is the static catalog, in display order
var products = []*domain.Product{
	{
		ID:          "1",
		Name:        "Idli Mix",
		Description: "Soft, fluffy idlis in minutes. Stone-ground rice and urad dal batter mix with no preservatives.",
		Weights:     []domain.Weight{w("200g", 85), w("500g", 180), w("1kg", 340)},
		Rating:      4.6, ReviewCount: 214, PrepTime: "15 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagBestseller, domain.TagNoPreservatives},
		Category:     domain.CategoryBreakfastMixes,
		Ingredients:  []string{"Parboiled rice", "Urad dal", "Fenugreek", "Salt"},
		CookingSteps: []string{"Mix with water to batter consistency", "Rest for 10 minutes", "Steam in idli moulds for 12 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "2",
		Name:        "Dosa Mix",
		Description: "Crisp golden dosas from a traditional fermented-style batter mix.",
		Weights:     []domain.Weight{w("200g", 90), w("500g", 190), w("1kg", 360)},
		Rating:      4.7, ReviewCount: 186, PrepTime: "10 mins", Discount: 5,
		Tags:         []domain.Tag{domain.TagBestseller, domain.TagTraditional},
		Category:     domain.CategoryBreakfastMixes,
		Ingredients:  []string{"Rice", "Urad dal", "Chana dal", "Fenugreek", "Salt"},
		CookingSteps: []string{"Whisk with water into a thin batter", "Rest for 15 minutes", "Spread on a hot tawa and roast till golden"},
		IsVeg:        true,
	},
	{
		ID:          "3",
		Name:        "Ragi Dosa Mix",
		Description: "Finger millet dosa mix, rich in calcium and fibre. Naturally dark, earthy flavour.",
		Weights:     []domain.Weight{w("250g", 110), w("500g", 210)},
		Rating:      4.5, ReviewCount: 142, PrepTime: "10 mins", Discount: 15,
		Tags:         []domain.Tag{domain.TagHealthy, domain.TagMillet},
		Category:     domain.CategoryMilletMixes,
		Ingredients:  []string{"Ragi (finger millet)", "Rice", "Urad dal", "Cumin", "Salt"},
		CookingSteps: []string{"Mix with water or buttermilk", "Rest for 10 minutes", "Cook like a regular dosa on medium flame"},
		IsVeg:        true,
	},
	{
		ID:          "4",
		Name:        "Multigrain Dosa Mix",
		Description: "Five-grain dosa blend with millets, wheat and oats for a protein-forward breakfast.",
		Weights:     []domain.Weight{w("250g", 120), w("500g", 230)},
		Rating:      4.3, ReviewCount: 98, PrepTime: "10 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagHealthy, domain.TagMillet, domain.TagProteinRich},
		Category:     domain.CategoryMilletMixes,
		Ingredients:  []string{"Jowar", "Bajra", "Wheat", "Oats", "Urad dal", "Salt"},
		CookingSteps: []string{"Whisk with water into a pourable batter", "Spread thin on a hot tawa", "Drizzle oil and roast both sides"},
		IsVeg:        true,
	},
	{
		ID:          "5",
		Name:        "Upma Mix",
		Description: "Roasted semolina upma with curry leaves, mustard and cashew. Just add hot water.",
		Weights:     []domain.Weight{w("200g", 75), w("500g", 160)},
		Rating:      4.2, ReviewCount: 121, PrepTime: "5 mins", Discount: 0,
		Tags:         []domain.Tag{domain.TagQuick, domain.TagNoPreservatives},
		Category:     domain.CategoryBreakfastMixes,
		Ingredients:  []string{"Roasted rava", "Mustard", "Curry leaves", "Cashew", "Salt"},
		CookingSteps: []string{"Boil water with a spoon of ghee", "Stir in the mix", "Cover and rest for 3 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "6",
		Name:        "Pongal Mix",
		Description: "Comforting ven pongal with moong dal, pepper and cumin, temple-style.",
		Weights:     []domain.Weight{w("250g", 95), w("500g", 185)},
		Rating:      4.8, ReviewCount: 167, PrepTime: "20 mins", Discount: 5,
		Tags:         []domain.Tag{domain.TagTraditional, domain.TagBestseller},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Raw rice", "Moong dal", "Black pepper", "Cumin", "Ginger"},
		CookingSteps: []string{"Pressure cook with 3 cups water", "Temper with ghee, pepper and cashew", "Serve hot with chutney"},
		IsVeg:        true,
	},
	{
		ID:          "7",
		Name:        "Vada Mix",
		Description: "Crunchy medu vadas without soaking or grinding. Instant urad dal mix.",
		Weights:     []domain.Weight{w("200g", 99), w("500g", 200)},
		Rating:      4.4, ReviewCount: 88, PrepTime: "15 mins", Discount: 0,
		Tags:         []domain.Tag{domain.TagTraditional, domain.TagQuick},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Urad dal flour", "Rice flour", "Pepper", "Curry leaves", "Asafoetida"},
		CookingSteps: []string{"Mix with water into a thick batter", "Shape with wet hands", "Deep fry till golden"},
		IsVeg:        true,
	},
	{
		ID:          "8",
		Name:        "Instant Sambar Mix",
		Description: "Hotel-style sambar in ten minutes. Dal and spice blend with tamarind.",
		Weights:     []domain.Weight{w("100g", 65), w("250g", 140)},
		Rating:      4.1, ReviewCount: 76, PrepTime: "10 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagQuick, domain.TagNoPreservatives},
		Category:     domain.CategoryQuickMeals,
		Ingredients:  []string{"Toor dal", "Sambar spices", "Tamarind", "Salt"},
		CookingSteps: []string{"Boil the mix in 2 cups water", "Add vegetables of choice", "Simmer for 5 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "9",
		Name:        "Puttu Mix",
		Description: "Steamed rice flour puttu, Kerala style. Pairs with banana or kadala curry.",
		Weights:     []domain.Weight{w("500g", 130), w("1kg", 245)},
		Rating:      4.3, ReviewCount: 54, PrepTime: "15 mins", Discount: 0,
		Tags:         []domain.Tag{domain.TagTraditional},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Roasted rice flour", "Salt"},
		CookingSteps: []string{"Sprinkle water and crumble", "Layer with grated coconut", "Steam for 8 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "10",
		Name:        "Appam Mix",
		Description: "Lacy, soft-centred appams from a coconut and rice batter mix.",
		Weights:     []domain.Weight{w("250g", 115), w("500g", 220)},
		Rating:      4.5, ReviewCount: 67, PrepTime: "10 mins", Discount: 5,
		Tags:         []domain.Tag{domain.TagTraditional, domain.TagNoPreservatives},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Raw rice", "Coconut", "Yeast", "Sugar", "Salt"},
		CookingSteps: []string{"Mix with warm water", "Rest for 30 minutes", "Swirl in an appam pan and cover"},
		IsVeg:        true,
	},
	{
		ID:          "11",
		Name:        "Rava Idli Mix",
		Description: "Karnataka-style rava idli with curd, mustard and coriander in the mix.",
		Weights:     []domain.Weight{w("200g", 88), w("500g", 175)},
		Rating:      4.4, ReviewCount: 102, PrepTime: "15 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagQuick, domain.TagBestseller},
		Category:     domain.CategoryBreakfastMixes,
		Ingredients:  []string{"Roasted rava", "Curd solids", "Mustard", "Coriander", "Salt"},
		CookingSteps: []string{"Mix with water and rest 5 minutes", "Spoon into greased moulds", "Steam for 12 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "12",
		Name:        "Bajra Khichdi Mix",
		Description: "Pearl millet khichdi with moong dal and mild spices. Winter comfort food.",
		Weights:     []domain.Weight{w("250g", 105), w("500g", 198)},
		Rating:      4.0, ReviewCount: 43, PrepTime: "25 mins", Discount: 15,
		Tags:         []domain.Tag{domain.TagHealthy, domain.TagMillet},
		Category:     domain.CategoryMilletMixes,
		Ingredients:  []string{"Bajra", "Moong dal", "Cumin", "Turmeric", "Salt"},
		CookingSteps: []string{"Rinse and pressure cook with 4 cups water", "Temper with ghee and cumin", "Rest 5 minutes before serving"},
		IsVeg:        true,
	},
	{
		ID:          "13",
		Name:        "Adai Mix",
		Description: "Protein-dense lentil adai with four dals and red chilli.",
		Weights:     []domain.Weight{w("250g", 112), w("500g", 215)},
		Rating:      4.2, ReviewCount: 39, PrepTime: "15 mins", Discount: 0,
		Tags:         []domain.Tag{domain.TagProteinRich, domain.TagTraditional},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Chana dal", "Toor dal", "Urad dal", "Moong dal", "Red chilli", "Rice"},
		CookingSteps: []string{"Mix with water into a coarse batter", "Spread thick on a hot tawa", "Cook with sesame oil on both sides"},
		IsVeg:        true,
	},
	{
		ID:          "14",
		Name:        "Poha Mix",
		Description: "Flattened rice poha with peanuts, curry leaves and turmeric. Five-minute breakfast.",
		Weights:     []domain.Weight{w("200g", 70), w("500g", 150)},
		Rating:      4.1, ReviewCount: 58, PrepTime: "5 mins", Discount: 5,
		Tags:         []domain.Tag{domain.TagQuick},
		Category:     domain.CategoryBreakfastMixes,
		Ingredients:  []string{"Thick poha", "Peanuts", "Curry leaves", "Turmeric", "Salt"},
		CookingSteps: []string{"Sprinkle water over the mix", "Heat through in a pan for 3 minutes", "Finish with lime juice"},
		IsVeg:        true,
	},
	{
		ID:          "15",
		Name:        "Kozhukattai Mix",
		Description: "Steamed rice dumpling mix for sweet or savoury kozhukattai.",
		Weights:     []domain.Weight{w("250g", 98), w("500g", 188)},
		Rating:      4.0, ReviewCount: 27, PrepTime: "20 mins", Discount: 0,
		Tags:         []domain.Tag{domain.TagTraditional, domain.TagNoPreservatives},
		Category:     domain.CategoryTraditionalMixes,
		Ingredients:  []string{"Rice flour", "Salt"},
		CookingSteps: []string{"Mix with hot water and a spoon of oil", "Shape into dumplings", "Steam for 10 minutes"},
		IsVeg:        true,
	},
	{
		ID:          "16",
		Name:        "Jowar Roti Mix",
		Description: "Soft sorghum rotis that stay pliable. Gluten-free staple.",
		Weights:     []domain.Weight{w("500g", 125), w("1kg", 235)},
		Rating:      4.3, ReviewCount: 64, PrepTime: "15 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagHealthy, domain.TagMillet},
		Category:     domain.CategoryMilletMixes,
		Ingredients:  []string{"Jowar flour", "Salt"},
		CookingSteps: []string{"Knead with warm water", "Pat into thin rounds", "Roast on a hot tawa till spotted"},
		IsVeg:        true,
	},
	{
		ID:          "17",
		Name:        "Chicken Biryani Mix",
		Description: "Seeraga samba biryani kit with whole spices and fried onion. Add chicken and rice.",
		Weights:     []domain.Weight{w("100g", 120), w("250g", 260)},
		Rating:      4.6, ReviewCount: 149, PrepTime: "45 mins", Discount: 10,
		Tags:         []domain.Tag{domain.TagBestseller, domain.TagTraditional},
		Category:     domain.CategoryQuickMeals,
		Ingredients:  []string{"Biryani masala", "Fried onion", "Whole spices", "Dried mint", "Salt"},
		CookingSteps: []string{"Marinate chicken with the spice sachet", "Layer with soaked rice and fried onion", "Cook on dum for 25 minutes"},
		IsVeg:        false,
	},
	{
		ID:          "18",
		Name:        "Egg Curry Masala",
		Description: "Chettinad-style egg curry base with roasted coconut and pepper.",
		Weights:     []domain.Weight{w("100g", 85), w("250g", 190)},
		Rating:      4.2, ReviewCount: 71, PrepTime: "20 mins", Discount: 5,
		Tags:         []domain.Tag{domain.TagQuick, domain.TagProteinRich},
		Category:     domain.CategoryQuickMeals,
		Ingredients:  []string{"Roasted coconut", "Pepper", "Fennel", "Chilli", "Salt"},
		CookingSteps: []string{"Saute the masala in oil", "Add water and simmer", "Drop in boiled eggs and cook 5 minutes"},
		IsVeg:        false,
	},
}
