package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/api/dto"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	productdomain "github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	saledomain "github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/sale"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/service"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	sales  *service.SaleService
	logger logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(sales *service.SaleService, logger logger.Logger) *SaleController {
	return &SaleController{
		sales:  sales,
		logger: logger,
	}
}

// periodFilter lê o filtro de período start/end da query (RFC 3339 ou
// somente data)
func periodFilter(ctx *gin.Context) (saledomain.Filter, error) {
	var f saledomain.Filter

	if raw := ctx.Query("start"); raw != "" {
		t, err := parsePeriodBound(raw)
		if err != nil {
			return f, err
		}
		f.Start = &t
	}

	if raw := ctx.Query("end"); raw != "" {
		t, err := parsePeriodBound(raw)
		if err != nil {
			return f, err
		}
		f.End = &t
	}

	return f, nil
}

func parsePeriodBound(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// Create registra uma nova venda
// @Summary Registrar venda
// @Description Registra uma venda ativa, capturando o valor unitário vigente do produto e baixando o estoque na mesma transação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.DetailedSaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.sales.Create(ctx, req.ClientID, req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, saledomain.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar venda", err.Error()))
		case errors.Is(err, repository.ErrClientNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case errors.Is(err, productdomain.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "estoque insuficiente", err.Error()))
		default:
			c.logger.Error("erro ao registrar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao registrar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDetailedSaleResponse(created))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna os dados de uma venda pelo ID
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	found, err := c.sales.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(found))
}

// List retorna a lista de vendas detalhadas
// @Summary Listar vendas
// @Description Retorna as vendas do período (da mais recente para a mais antiga) com nomes de cliente e produto
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start query string false "Início do período (RFC 3339 ou AAAA-MM-DD)"
// @Param end query string false "Fim do período (RFC 3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.SaleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	filter, err := periodFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", err.Error()))
		return
	}

	sales, err := c.sales.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales))
}

// Cancel cancela uma venda ativa
// @Summary Cancelar venda
// @Description Cancela uma venda ativa e devolve ao estoque exatamente a quantidade vendida. Cancelar uma venda já cancelada é rejeitado.
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [patch]
func (c *SaleController) Cancel(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	cancelled, err := c.sales.Cancel(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
		case errors.Is(err, saledomain.ErrAlreadyCancelled):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "venda já cancelada", err.Error()))
		default:
			c.logger.Error("erro ao cancelar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(cancelled))
}

// Delete remove uma venda definitivamente
// @Summary Excluir venda
// @Description Remove o registro da venda em qualquer status, sem restaurar estoque. Excluir uma venda ativa apaga a trilha sem reconciliar o estoque; use o cancelamento quando a intenção for devolver as unidades.
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID da venda"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.sales.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao remover venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("venda removida com sucesso", nil))
}
