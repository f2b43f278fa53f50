package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/internal/usecase"
	"github.com/treinamento/produtos-service/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	cfg            *cfg.HTTPConfig
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, cfg *cfg.HTTPConfig, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, cfg: cfg, logger: logger}
}

// create
//
//	@Summary		Cadastro de produto
//	@Description	Cria um produto vinculado a uma categoria existente
//	@Tags			produtos
//	@Accept			json
//	@Produce		json
//	@Param			produto	body		usecase.ProductReq		true	"Produto"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ValidationErrorResponse
//	@Router			/produtos [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req usecase.ProductReq
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	p.logger.Infof("product created: id=%d", product.ID)
	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// getByID
//
//	@Summary	Busca produto por id
//	@Tags		produtos
//	@Produce	json
//	@Param		id	path		int	true	"ID do produto"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	StandardError
//	@Router		/produtos/{id} [get]
func (p *ProductHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// findByDescription
//
//	@Summary	Busca produtos por trecho da descrição
//	@Tags		produtos
//	@Produce	json
//	@Param		descricao	path	string	true	"Trecho da descrição"
//	@Success	200			{array}	ProductResponse
//	@Router		/produtos/find/{descricao} [get]
func (p *ProductHandler) findByDescription(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.FindByDescription(r.Context(), chi.URLParam(r, "descricao"))
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponses(products))
}

// list
//
//	@Summary	Lista paginada de produtos
//	@Tags		produtos
//	@Produce	json
//	@Param		page	query		int	false	"Página (a partir de 0)"
//	@Param		size	query		int	false	"Tamanho da página"
//	@Success	200		{object}	PageResponse[ProductResponse]
//	@Failure	400		{object}	StandardError
//	@Router		/produtos [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageReq(r, p.cfg)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	page, err := p.productUsecase.List(r.Context(), pageReq)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductPageResponse(page))
}

// update
//
//	@Summary	Atualiza produto
//	@Tags		produtos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID do produto"
//	@Param		produto	body		usecase.ProductReq	true	"Novos valores"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	ValidationErrorResponse
//	@Failure	404		{object}	StandardError
//	@Router		/produtos/{id} [put]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	var req usecase.ProductReq
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	p.logger.Infof("product updated: id=%d", product.ID)
	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// delete
//
//	@Summary	Remove produto
//	@Tags		produtos
//	@Param		id	path	int	true	"ID do produto"
//	@Success	204
//	@Failure	404	{object}	StandardError
//	@Router		/produtos/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		WriteError(w, r, p.logger, err)
		return
	}

	p.logger.Infof("product deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
