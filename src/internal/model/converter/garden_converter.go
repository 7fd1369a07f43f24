package converter

import (
	"investment-service/src/internal/entity"
	"investment-service/src/internal/model"
)

func PlotToResponse(plot *entity.GardenPlot, species map[string]entity.PlantSpecies) model.PlotResponse {
	resp := model.PlotResponse{
		PlotID:         plot.PlotID,
		PlantID:        plot.PlantID,
		PlantedAt:      plot.PlantedAt,
		LastWatered:    plot.LastWatered,
		GrowthProgress: plot.GrowthProgress,
		Status:         plot.Status,
	}
	if plot.PlantID != nil {
		if sp, ok := species[*plot.PlantID]; ok {
			resp.PlantName = sp.Name
		}
	}
	return resp
}

func SpeciesToResponse(sp *entity.PlantSpecies) model.SeedResponse {
	return model.SeedResponse{
		PlantID:            sp.PlantID,
		Name:               sp.Name,
		SeedCost:           sp.SeedCost,
		GrowthTimeHours:    sp.GrowthTimeHours,
		WaterIntervalHours: sp.WaterIntervalHours,
		HarvestYield:       sp.HarvestYield,
		YieldUnit:          sp.YieldUnit,
		BaseSellPrice:      sp.BaseSellPrice,
	}
}

func InventoryToResponse(item *entity.HarvestInventory, species map[string]entity.PlantSpecies) model.InventoryResponse {
	resp := model.InventoryResponse{
		PlantID:  item.PlantID,
		Quantity: item.Quantity,
	}
	if sp, ok := species[item.PlantID]; ok {
		resp.PlantName = sp.Name
	}
	return resp
}

func MarketPriceToResponse(price *entity.MarketPrice) model.MarketPriceResponse {
	return model.MarketPriceResponse{
		PlantID:      price.PlantID,
		Date:         price.Date,
		CurrentPrice: price.CurrentPrice,
	}
}
