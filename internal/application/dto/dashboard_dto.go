package dto

// DashboardDTO respuesta de GET /api/dashboard: tarjetas y serie del gráfico.
type DashboardDTO struct {
	TotalItems      int             `json:"total_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
	TotalCategories int             `json:"total_categories"`
	Chart           []ChartPointDTO `json:"chart"` // 10 artículos de menor cantidad, ascendente
}

// ChartPointDTO barra del gráfico; Status usa los mismos umbrales que los reportes.
type ChartPointDTO struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}
