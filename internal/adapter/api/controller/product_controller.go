package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/api/dto"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/adapter/repository"
	productdomain "github.com/agenciadigitalslz/sistema-vendas-nota3/internal/domain/product"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/internal/service"
	"github.com/agenciadigitalslz/sistema-vendas-nota3/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	catalog *service.CatalogService
	logger  logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalog *service.CatalogService, logger logger.Logger) *ProductController {
	return &ProductController{
		catalog: catalog,
		logger:  logger,
	}
}

// isProductValidationErr verifica se o erro é de validação de produto
func isProductValidationErr(err error) bool {
	return errors.Is(err, productdomain.ErrEmptyName) ||
		errors.Is(err, productdomain.ErrInvalidQuantity) ||
		errors.Is(err, productdomain.ErrInvalidValue)
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo com estoque inicial
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.catalog.CreateProduct(ctx, req.Name, req.Quantity, req.Value)
	if err != nil {
		if isProductValidationErr(err) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	found, err := c.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(found))
}

// List retorna a lista de produtos
// @Summary Listar produtos
// @Description Retorna a lista de produtos paginada, ordenada por nome
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, size := paginationParams(ctx)
	offset := (page - 1) * size

	products, total, err := c.catalog.ListProducts(ctx, size, offset)
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, page, size, total))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Description Atualiza nome, estoque e valor de um produto. A quantidade sobrescreve o estoque atual (correção manual); o valor capturado em vendas já registradas não muda.
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	updated, err := c.catalog.UpdateProduct(ctx, id, req.Name, req.Quantity, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		case isProductValidationErr(err):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		default:
			c.logger.Error("erro ao atualizar produto", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(updated))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto que não possua vendas ativas
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.catalog.DeleteProduct(ctx, id); err != nil {
		switch {
		case errors.Is(err, service.ErrProductHasActiveSales):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "produto possui vendas ativas", err.Error()))
		case errors.Is(err, repository.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
		default:
			c.logger.Error("erro ao remover produto", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido com sucesso", nil))
}
