package category

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	Name            string `json:"name" doc:"Upper-case category name"`
	TransactionType string `json:"transactionType" enum:"INCOME,EXPENSE" doc:"Type every transaction in this category gets"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c service.Category) Category {
	return Category{
		Name:            c.Name,
		TransactionType: string(c.Type),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}
