package converter

import (
	"investment-service/src/internal/entity"
	"investment-service/src/internal/model"
	"investment-service/src/pkg/utils"
)

func StockToResponse(stock *entity.Stock) model.StockResponse {
	return model.StockResponse{
		StockID:      stock.StockID,
		Symbol:       stock.Symbol,
		Name:         stock.Name,
		CategoryID:   stock.CategoryID,
		CurrentPrice: stock.CurrentPrice,
	}
}

func StockToDetailResponse(stock *entity.Stock, history []entity.StockPricePoint) *model.StockDetailResponse {
	points := make([]model.PricePointResponse, 0, len(history))
	for _, p := range history {
		points = append(points, model.PricePointResponse{Date: p.Date, Price: p.Price})
	}
	return &model.StockDetailResponse{
		StockResponse: StockToResponse(stock),
		BasePrice:     stock.BasePrice,
		Volatility:    stock.Volatility,
		PriceHistory:  points,
	}
}

func HoldingToResponse(holding *entity.StockHolding, stock *entity.Stock) model.HoldingResponse {
	currentValue := utils.Round2(float64(holding.Quantity) * stock.CurrentPrice)
	return model.HoldingResponse{
		StockID:         holding.StockID,
		Symbol:          stock.Symbol,
		Name:            stock.Name,
		Quantity:        holding.Quantity,
		AverageBuyPrice: holding.AverageBuyPrice,
		TotalInvested:   holding.TotalInvested,
		CurrentPrice:    stock.CurrentPrice,
		CurrentValue:    currentValue,
		ProfitLoss:      utils.Round2(currentValue - holding.TotalInvested),
	}
}
