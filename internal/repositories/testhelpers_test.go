package repositories

import (
	"drink-coffee/models"
	"drink-coffee/pkg/logger"

	"github.com/shopspring/decimal"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

func testProduct(id int, name, price string) models.Product {
	return models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}
