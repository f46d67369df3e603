// Package reports derives the dashboard figures from stored order records.
package reports

import (
	"fmt"
	"sort"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/pos"
	"github.com/ray-remotestate/bakepos/store"
)

const currency = "USD"

type Service struct {
	orders   store.OrderStore
	products pos.ProductFinder
}

func NewService(orders store.OrderStore, products pos.ProductFinder) *Service {
	return &Service{orders: orders, products: products}
}

// Sales summarises paid orders. Growth compares the most recent day with
// sales against the day before it; with fewer than two days of data both
// growth figures are zero.
func (s *Service) Sales() (models.SalesReport, error) {
	orders, err := s.orders.List()
	if err != nil {
		return models.SalesReport{}, err
	}

	report := models.SalesReport{Currency: currency}
	customers := make(map[string]bool)
	byDay := make(map[string]float64)

	for _, o := range orders {
		if !o.IsPaid {
			continue
		}
		report.TotalSalesAmount += o.Total
		for _, item := range o.Items {
			report.TotalProductSales += item.Quantity
		}
		customers[o.CustomerName] = true
		if o.OrderedAt != nil {
			byDay[o.OrderedAt.Format("2006-01-02")] += o.Total
		}
	}
	report.TotalCustomers = len(customers)
	report.NetProfit = report.TotalSalesAmount

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) >= 2 {
		latest := byDay[days[len(days)-1]]
		previous := byDay[days[len(days)-2]]
		report.GrowthAmount = latest - previous
		if previous > 0 {
			report.GrowthPercentage = (latest - previous) / previous * 100
		}
	}

	return report, nil
}

// Favorites ranks catalog products by total ordered quantity across paid
// orders, highest first, limited to limit entries.
func (s *Service) Favorites(limit int) ([]models.FavoriteProduct, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, o := range orders {
		if !o.IsPaid {
			continue
		}
		for _, item := range o.Items {
			counts[item.ProductID] += item.Quantity
		}
	}

	favorites := make([]models.FavoriteProduct, 0, len(counts))
	for id, count := range counts {
		product, ok := s.products.FindProductByID(id)
		if !ok {
			continue
		}
		favorites = append(favorites, models.FavoriteProduct{
			ID:          product.ID,
			Name:        product.Name,
			Category:    product.Category,
			Image:       product.Image,
			TotalOrders: count,
		})
	}

	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].TotalOrders != favorites[j].TotalOrders {
			return favorites[i].TotalOrders > favorites[j].TotalOrders
		}
		return favorites[i].Name < favorites[j].Name
	})

	if limit > 0 && len(favorites) > limit {
		favorites = favorites[:limit]
	}
	return favorites, nil
}

// History lists every stored order as a formatted activity row, newest
// first.
func (s *Service) History() ([]models.OrderHistoryItem, error) {
	orders, err := s.orders.List()
	if err != nil {
		return nil, err
	}

	rows := make([]models.OrderHistoryItem, 0, len(orders))
	for _, o := range orders {
		when := o.CreatedAt
		if o.OrderedAt != nil {
			when = *o.OrderedAt
		}

		paymentStatus := "Unpaid"
		if o.IsPaid {
			paymentStatus = "Paid"
		}

		rows = append(rows, models.OrderHistoryItem{
			ID:            o.ID.String(),
			OrderNumber:   o.OrderNumber,
			Date:          when.Format("02/01/2006"),
			Time:          when.Format("03:04 PM"),
			CustomerName:  o.CustomerName,
			OrderStatus:   string(o.Status),
			TotalPayment:  fmt.Sprintf("%s %.2f", currency, o.Total),
			PaymentStatus: paymentStatus,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderNumber > rows[j].OrderNumber })
	return rows, nil
}
