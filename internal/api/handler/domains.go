package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
)

// domainResponse é a visão de um descritor entregue à interface de seleção:
// identidade visual, variantes e as colunas sugeridas para o upload
type domainResponse struct {
	Key             string                    `json:"key"`
	Name            string                    `json:"name"`
	Color           string                    `json:"color"`
	Dashboards      []domain.DashboardVariant `json:"dashboards"`
	ExpectedColumns []string                  `json:"expected_columns"`
	HasFilter       bool                      `json:"has_filter"`
}

// ListDomains retorna os domínios disponíveis para seleção
func ListDomains(domainRegistry *registry.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		descriptors := domainRegistry.All()

		response := make([]domainResponse, 0, len(descriptors))
		for _, descriptor := range descriptors {
			response = append(response, domainResponse{
				Key:             descriptor.Key,
				Name:            descriptor.Name,
				Color:           descriptor.Color,
				Dashboards:      descriptor.Dashboards,
				ExpectedColumns: descriptor.ExpectedColumns(),
				HasFilter:       descriptor.FilterField != "",
			})
		}

		writeJSON(w, http.StatusOK, response)
	})
}
