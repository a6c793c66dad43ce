package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shortlink/shortener"
)

// Handler bundles the core engines behind the HTTP surface.
type Handler struct {
	engine   *shortener.Engine
	resolver *shortener.Resolver
}

func New(engine *shortener.Engine, resolver *shortener.Resolver) *Handler {
	return &Handler{engine: engine, resolver: resolver}
}

// ShortenRequest is the payload for create and update. Field syntax is
// validated here; business rules (expiry in the past, duplicate codes,
// code immutability) are the engine's job.
type ShortenRequest struct {
	URL         string     `json:"url" binding:"required,url"`
	CustomCode  string     `json:"customCode" binding:"omitempty,min=8,max=20"`
	AccessLimit *int       `json:"accessLimit" binding:"omitempty,min=1,max=10000"`
	Expiry      *time.Time `json:"expiry"`
}

func (r ShortenRequest) toInput() shortener.ShortenInput {
	return shortener.ShortenInput{
		OriginalURL: r.URL,
		CustomCode:  r.CustomCode,
		AccessLimit: r.AccessLimit,
		ExpiredAt:   r.Expiry,
	}
}

// @Summary Create a short link
// @Description Shortens the provided URL under a custom or generated code
// @ID shortenURL
// @Accept json
// @Produce json
// @Param body body handlers.ShortenRequest true "URL to shorten"
// @Success 201 {object} models.Link
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /api/v1/shorten [post]
// @Tags shorten
func (h *Handler) Shorten(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, shortener.NewError(shortener.KindInvalidRequest, err.Error()))
		return
	}

	link, err := h.engine.Create(c.Request.Context(), req.toInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// @Summary Redirect to the original URL
// @Description Resolves a short code and redirects, recording the visit
// @ID redirectShortCode
// @Param code path string true "Short code"
// @Success 302 "Redirect to original URL"
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 410 {object} handlers.ErrorResponse
// @Failure 429 {object} handlers.ErrorResponse
// @Router /api/v1/shorten/{code} [get]
// @Tags shorten
func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")

	originalURL, err := h.resolver.Resolve(c.Request.Context(), code, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, originalURL)
}

// @Summary Get link details
// @Description Returns the stored record for a short code
// @ID getShortCodeDetails
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} models.Link
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/shorten/{code}/details [get]
// @Tags shorten
func (h *Handler) Details(c *gin.Context) {
	link, err := h.engine.Details(c.Request.Context(), c.Param("code"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// @Summary Update a short link
// @Description Replaces the destination URL, expiry and access limit; the short code itself is immutable
// @ID updateShortCode
// @Accept json
// @Produce json
// @Param code path string true "Short code"
// @Param body body handlers.ShortenRequest true "New link fields"
// @Success 200 {object} models.Link
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/shorten/{code} [put]
// @Tags shorten
func (h *Handler) Update(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, shortener.NewError(shortener.KindInvalidRequest, err.Error()))
		return
	}

	link, err := h.engine.Update(c.Request.Context(), c.Param("code"), req.toInput())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// @Summary Delete a short link
// @Description Deletes a link and all of its recorded visits
// @ID deleteShortCode
// @Param code path string true "Short code"
// @Success 204 "Deleted"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/shorten/{code} [delete]
// @Tags shorten
func (h *Handler) Delete(c *gin.Context) {
	if err := h.engine.Delete(c.Request.Context(), c.Param("code")); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get link statistics
// @Description Returns the link with its visit count, remaining quota and visit history
// @ID getShortCodeStats
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} models.Stats
// @Failure 404 {object} handlers.ErrorResponse
// @Router /api/v1/shorten/{code}/stats [get]
// @Tags shorten
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.engine.Stats(c.Request.Context(), c.Param("code"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
