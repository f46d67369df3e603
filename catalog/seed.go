package catalog

import "github.com/ray-remotestate/bakepos/models"

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Beef Crowich",
		Price:       5.50,
		Category:    models.CategorySandwich,
		Image:       "https://images.unsplash.com/photo-1539252554873-9e588e05e374?w=800&auto=format&fit=crop&q=80",
		Description: "Tender beef slices with fresh vegetables on our homemade croissant bread",
	},
	{
		ID:          "2",
		Name:        "Buttermelt Croissant",
		Price:       4.00,
		Category:    models.CategoryPastry,
		Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800&auto=format&fit=crop&q=80",
		Description: "Premium butter croissant with a crispy pastry crust and soft inside will melt away on your mouth!",
	},
	{
		ID:          "3",
		Name:        "Cereal Cream Donut",
		Price:       2.45,
		Category:    models.CategoryDonut,
		Image:       "https://images.unsplash.com/photo-1514517220017-8ce97a34a7b6?w=800&auto=format&fit=crop&q=80",
		Description: "Sweet donut topped with cereal and filled with vanilla cream",
	},
	{
		ID:          "4",
		Name:        "Cheesy Cheesecake",
		Price:       3.75,
		Category:    models.CategoryCake,
		Image:       "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=800&auto=format&fit=crop&q=80",
		Description: "Rich and creamy cheesecake with a buttery graham cracker crust",
	},
	{
		ID:          "5",
		Name:        "Cheezy Sourdough",
		Price:       4.50,
		Category:    models.CategoryBread,
		Image:       "https://images.unsplash.com/photo-1586444248879-11d7a7413773?w=800&auto=format&fit=crop&q=80",
		Description: "Artisan sourdough bread filled with premium cheese blend",
	},
	{
		ID:          "6",
		Name:        "Egg Tart",
		Price:       3.25,
		Category:    models.CategoryTart,
		Image:       "https://images.unsplash.com/photo-1572383672419-ab35444a5db0?w=800&auto=format&fit=crop&q=80",
		Description: "Flaky pastry shell filled with sweet egg custard",
	},
	{
		ID:          "7",
		Name:        "Grains Pan Bread",
		Price:       4.50,
		Category:    models.CategoryBread,
		Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800&auto=format&fit=crop&q=80",
		Description: "Multigrain bread made with organic whole grains and seeds",
	},
	{
		ID:          "8",
		Name:        "Spinchoco Roll",
		Price:       4.00,
		Category:    models.CategoryPastry,
		Image:       "https://images.unsplash.com/photo-1586985289688-ca3cf47d3e6e?w=800&auto=format&fit=crop&q=80",
		Description: "Chocolate swiss roll with spinach infused sponge cake",
	},
	{
		ID:          "9",
		Name:        "Sliced Black Forest",
		Price:       5.00,
		Category:    models.CategoryCake,
		Image:       "https://images.unsplash.com/photo-1571115177098-24ec42ed204d?w=800&auto=format&fit=crop&q=80",
		Description: "Classic Black Forest cake with cherries and chocolate shavings",
	},
	{
		ID:          "10",
		Name:        "Solo Floss Bread",
		Price:       4.50,
		Category:    models.CategoryBread,
		Image:       "https://images.unsplash.com/photo-1598373182133-52452f7691ef?w=800&auto=format&fit=crop&q=80",
		Description: "Soft bread topped with sweet meat floss and mayo",
	},
	{
		ID:          "11",
		Name:        "Zoguma Pan Bread",
		Price:       4.50,
		Category:    models.CategoryBread,
		Image:       "https://images.unsplash.com/photo-1608198093002-ad4e005484ec?w=800&auto=format&fit=crop&q=80",
		Description: "Premium Japanese-style milk bread with soft texture",
	},
	{
		ID:          "12",
		Name:        "Double Chocolate Tart",
		Price:       4.25,
		Category:    models.CategoryTart,
		Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800&auto=format&fit=crop&q=80",
		Description: "Rich chocolate ganache in a chocolate pastry shell",
	},
	{
		ID:          "13",
		Name:        "Ham & Cheese Sandwich",
		Price:       5.25,
		Category:    models.CategorySandwich,
		Image:       "https://images.unsplash.com/photo-1553909489-cd47e0907980?w=800&auto=format&fit=crop&q=80",
		Description: "Classic ham and cheese on our freshly baked bread",
	},
	{
		ID:          "14",
		Name:        "Glazed Ring Donut",
		Price:       2.00,
		Category:    models.CategoryDonut,
		Image:       "https://images.unsplash.com/photo-1551024601-bec78aea704b?w=800&auto=format&fit=crop&q=80",
		Description: "Traditional ring donut with sweet glaze coating",
	},
}
