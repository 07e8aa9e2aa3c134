package controller

import (
	"net/http"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/api/dto"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/service"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/pkg/logger"
	"github.com/gin-gonic/gin"
)

// DashboardController gerencia as requisições de agregados do dashboard
type DashboardController struct {
	dashboard *service.DashboardService
	logger    logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(dashboard *service.DashboardService, logger logger.Logger) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
		logger:    logger,
	}
}

// Summary retorna o resumo geral do sistema
// @Summary Resumo do dashboard
// @Description Retorna contagens de clientes, produtos e vendas, receita bruta e ativa, e as vendas mais recentes
// @Tags dashboard
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/summary [get]
func (c *DashboardController) Summary(ctx *gin.Context) {
	summary, err := c.dashboard.GetSummary(ctx)
	if err != nil {
		c.logger.Error("erro ao montar resumo do dashboard", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao montar resumo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}

// Revenue retorna a receita agregada do período
// @Summary Receita por período
// @Description Retorna a receita bruta e ativa das vendas do período informado
// @Tags dashboard
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start query string false "Início do período (RFC 3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim do período (RFC 3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.RevenueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/revenue [get]
func (c *DashboardController) Revenue(ctx *gin.Context) {
	filter, err := periodFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	revenue, err := c.dashboard.GetRevenue(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao calcular receita", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular receita", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueResponse(revenue))
}
