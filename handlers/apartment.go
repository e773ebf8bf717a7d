package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/models"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

type ApartmentHandler struct {
	store  services.ReservationStore
	config *config.Config
}

func NewApartmentHandler(store services.ReservationStore, cfg *config.Config) *ApartmentHandler {
	return &ApartmentHandler{
		store:  store,
		config: cfg,
	}
}

func (h *ApartmentHandler) GetApartments(c *gin.Context) {
	apartments, err := h.store.ListAvailableApartments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch apartments",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    apartments,
	})
}

func (h *ApartmentHandler) GetApartmentByID(c *gin.Context) {
	apartmentID := c.Param("id")

	apartment, err := h.store.GetApartment(c.Request.Context(), apartmentID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Apartment not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    apartment,
	})
}
