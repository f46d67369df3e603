package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ray-remotestate/bakepos/models"
	"github.com/ray-remotestate/bakepos/pos"
)

func TestValidateOrder(t *testing.T) {
	valid := models.Order{
		CustomerName: "Eloise",
		OrderType:    models.OrderTypeDineIn,
		TableNumber:  "05",
		Items: []models.OrderItem{
			{ProductID: "croissant", Quantity: 2},
			{ProductID: "donut", Quantity: 1},
		},
	}

	tests := []struct {
		name    string
		mutate  func(o *models.Order)
		wantErr bool
	}{
		{
			name:    "valid order",
			mutate:  func(o *models.Order) {},
			wantErr: false,
		},
		{
			name:    "blank customer name",
			mutate:  func(o *models.Order) { o.CustomerName = "  " },
			wantErr: true,
		},
		{
			name:    "invalid order type",
			mutate:  func(o *models.Order) { o.OrderType = "Drive Thru" },
			wantErr: true,
		},
		{
			name:    "dine-in without table",
			mutate:  func(o *models.Order) { o.TableNumber = "" },
			wantErr: true,
		},
		{
			name: "take-away without table",
			mutate: func(o *models.Order) {
				o.OrderType = models.OrderTypeTakeAway
				o.TableNumber = ""
			},
			wantErr: false,
		},
		{
			name:    "no items",
			mutate:  func(o *models.Order) { o.Items = nil },
			wantErr: true,
		},
		{
			name: "duplicate product line",
			mutate: func(o *models.Order) {
				o.Items = append(o.Items, models.OrderItem{ProductID: "croissant", Quantity: 1})
			},
			wantErr: true,
		},
		{
			name: "zero quantity line",
			mutate: func(o *models.Order) {
				o.Items[0].Quantity = 0
			},
			wantErr: true,
		},
		{
			name: "unknown product",
			mutate: func(o *models.Order) {
				o.Items[0].ProductID = "ghost"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := valid.Clone()
			tt.mutate(&order)
			err := pos.ValidateOrder(order, testCatalog())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOrderCollectsAllViolations(t *testing.T) {
	order := models.Order{
		CustomerName: "",
		OrderType:    "Drive Thru",
		Items:        nil,
	}

	err := pos.ValidateOrder(order, testCatalog())
	assert.Error(t, err)

	var vErr pos.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, err.Error(), "customer name is required")
	assert.Contains(t, err.Error(), "invalid order type")
	assert.Contains(t, err.Error(), "order has no items")
}
