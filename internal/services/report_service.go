package services

import (
	"time"

	"boba_pos/internal/repository"
)

const productUsageWindow = 30 * 24 * time.Hour

type ReportService interface {
	// GetProductUsage reports units sold per menu item over the last 30
	// days.
	GetProductUsage() (map[string]int, error)
	GetTotalSales(start, end time.Time) (float64, error)
}

type reportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) GetProductUsage() (map[string]int, error) {
	return s.store.ProductUsage(time.Now().Add(-productUsageWindow))
}

func (s *reportService) GetTotalSales(start, end time.Time) (float64, error) {
	return s.store.TotalSales(start, end)
}
