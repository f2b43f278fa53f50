package http

import (
	"net/http"

	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// create
//
//	@Summary	Cadastro de categoria
//	@Tags		categorias
//	@Accept		json
//	@Produce	json
//	@Param		categoria	body		usecase.CategoryReq	true	"Categoria"
//	@Success	201			{object}	CategoryResponse
//	@Failure	400			{object}	ValidationErrorResponse
//	@Failure	409			{object}	StandardError
//	@Router		/categorias [post]
func (c *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req usecase.CategoryReq
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, c.logger, err)
		return
	}

	category, err := c.categoryUsecase.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewCategoryResponse(category))
}

// getByID
//
//	@Summary	Busca categoria por id
//	@Tags		categorias
//	@Produce	json
//	@Param		id	path		int	true	"ID da categoria"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	StandardError
//	@Router		/categorias/{id} [get]
func (c *CategoryHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, r, c.logger, err)
		return
	}

	category, err := c.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponse(category))
}

// list
//
//	@Summary	Lista categorias
//	@Tags		categorias
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categorias [get]
func (c *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categoryUsecase.List(r.Context())
	if err != nil {
		WriteError(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCategoryResponses(categories))
}
