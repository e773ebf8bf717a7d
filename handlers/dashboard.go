package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/models"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

type DashboardHandler struct {
	store  services.ReservationStore
	config *config.Config
}

func NewDashboardHandler(store services.ReservationStore, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{
		store:  store,
		config: cfg,
	}
}

// GetDashboard assembles the whole dashboard page in one payload: profile,
// booking stats, booking history and favorites count.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, _ := c.Get("user_id")
	uid := userID.(string)
	ctx := c.Request.Context()

	profile, err := h.store.GetProfile(ctx, uid)
	if err != nil || profile == nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Profile not found",
		})
		return
	}

	// Stats fall back to zeros on a store fault so a new user sees an
	// empty dashboard; the store logs the fault.
	stats, err := h.store.GetBookingStats(ctx, uid)
	if err != nil {
		stats = &models.BookingStats{UserID: uid}
	}

	bookings, err := h.store.GetUserBookings(ctx, uid)
	if err != nil {
		fmt.Printf("[GetDashboard] Bookings fetch failed for user %s: %v\n", uid, err)
		bookings = []models.Booking{}
	}

	favoritesCount, err := h.store.CountFavorites(ctx, uid)
	if err != nil {
		fmt.Printf("[GetDashboard] Favorites count failed for user %s: %v\n", uid, err)
		favoritesCount = 0
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data: models.Dashboard{
			Profile:        profile.Sanitized(),
			Stats:          *stats,
			Bookings:       bookings,
			FavoritesCount: favoritesCount,
		},
	})
}

// =====================================================
// FAVORITES
// =====================================================

func (h *DashboardHandler) AddFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	favorite, err := h.store.AddFavorite(c.Request.Context(), userID.(string), req.ApartmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to add favorite",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Added to favorites",
		Data:    favorite,
	})
}

func (h *DashboardHandler) RemoveFavorite(c *gin.Context) {
	userID, _ := c.Get("user_id")
	apartmentID := c.Param("apartment_id")

	if err := h.store.RemoveFavorite(c.Request.Context(), userID.(string), apartmentID); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to remove favorite",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Removed from favorites",
	})
}

func (h *DashboardHandler) GetFavorites(c *gin.Context) {
	userID, _ := c.Get("user_id")

	favorites, err := h.store.ListFavorites(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch favorites",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    favorites,
	})
}

func (h *DashboardHandler) GetFavoritesCount(c *gin.Context) {
	userID, _ := c.Get("user_id")

	count, err := h.store.CountFavorites(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to count favorites",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    gin.H{"count": count},
	})
}
