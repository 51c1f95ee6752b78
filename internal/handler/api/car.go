package api

import (
	"errors"
	"net/http"

	"car-auction/internal/domain/car"
	reqdto "car-auction/internal/handler/dto/request"
	resdto "car-auction/internal/handler/dto/response"
	"car-auction/internal/handler/httperr"
	"car-auction/internal/handler/middleware"
	"car-auction/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	carUseCase usecase.CarUseCase
}

func NewCarHandler(carUseCase usecase.CarUseCase) *CarHandler {
	return &CarHandler{
		carUseCase: carUseCase,
	}
}

// @Summary Create car
// @Description Create a car listing owned by the authenticated dealer
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car request"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.carUseCase.CreateCar(c.Request.Context(), dealerID, usecase.CreateCarParams{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarRM(rm))
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	carID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.carUseCase.GetCar(c.Request.Context(), carID)
	if err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarRM(rm))
}

// @Summary Update car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Car request"
// @Success 200 {object} resdto.CarResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	carID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.carUseCase.UpdateCar(c.Request.Context(), carID, dealerID, usecase.CreateCarParams{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Description: req.Description,
	})
	if err != nil {
		h.writeCarError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarRM(rm))
}

// @Summary Delete car
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	dealerID, ok := middleware.GetDealerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	carID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.carUseCase.DeleteCar(c.Request.Context(), carID, dealerID); err != nil {
		h.writeCarError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CarHandler) writeCarError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, usecase.ErrCarNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, usecase.ErrCarInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Car referenced by an auction", nil)
	case errors.Is(err, car.ErrInvalidMake), errors.Is(err, car.ErrInvalidModel), errors.Is(err, car.ErrInvalidYear):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
