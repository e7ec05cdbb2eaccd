package catalog

func toSummary(p *Product, images []string) ProductSummary {
	if images == nil {
		images = []string{}
	}

	return ProductSummary{
		ID:              p.ID,
		Name:            p.Name,
		SerialName:      p.SerialName,
		Detail:          p.Detail,
		Price:           p.Price,
		Stock:           p.Stock,
		GuaranteeMonths: p.GuaranteeMonths,
		SupplierID:      p.SupplierID,
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
		Images:          images,
	}
}
