package models

// SalesReport summarises completed sales for the dashboard.
type SalesReport struct {
	TotalSalesAmount  float64 `json:"total_sales_amount"`
	TotalProductSales int     `json:"total_product_sales"`
	TotalCustomers    int     `json:"total_customers"`
	NetProfit         float64 `json:"net_profit"`
	GrowthAmount      float64 `json:"growth_amount"`
	GrowthPercentage  float64 `json:"growth_percentage"`
	Currency          string  `json:"currency"`
}

// FavoriteProduct is a catalog product ranked by how often it was ordered.
type FavoriteProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	TotalOrders int      `json:"total_orders"`
}

// OrderHistoryItem is a presentation row for the activity table. Date, time
// and payment are pre-formatted strings; this is the one place monetary
// values leave the plain-number world.
type OrderHistoryItem struct {
	ID            string `json:"id"`
	OrderNumber   string `json:"order_number"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customer_name"`
	OrderStatus   string `json:"order_status"`
	TotalPayment  string `json:"total_payment"`
	PaymentStatus string `json:"payment_status"`
}
