package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/repository"
	"github.com/Darlington6/safeboda/internal/service"
)

// actingUserHeader carries the authenticated user's ID, set by the
// gateway in front of this service. The acting identity is always passed
// explicitly, never read from ambient state.
const actingUserHeader = "X-User-ID"

// PassengerHandler handles HTTP requests for passenger profiles.
type PassengerHandler struct {
	passengerService *service.PassengerService
}

// NewPassengerHandler creates a new PassengerHandler.
func NewPassengerHandler(passengerService *service.PassengerService) *PassengerHandler {
	return &PassengerHandler{passengerService: passengerService}
}

// CreateProfileRequest is the HTTP request body for profile creation.
type CreateProfileRequest struct {
	HomeAddress            string `json:"home_address"`
	WorkAddress            string `json:"work_address"`
	EmergencyContactName   string `json:"emergency_contact_name"`
	EmergencyContactPhone  string `json:"emergency_contact_phone"`
	PreferredPaymentMethod string `json:"preferred_payment_method"`
	PreferredCarType       string `json:"preferred_car_type"`
}

// UpdateProfileRequest is the HTTP request body for partial profile
// updates. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	HomeAddress            *string `json:"home_address"`
	WorkAddress            *string `json:"work_address"`
	EmergencyContactName   *string `json:"emergency_contact_name"`
	EmergencyContactPhone  *string `json:"emergency_contact_phone"`
	PreferredPaymentMethod *string `json:"preferred_payment_method"`
	PreferredCarType       *string `json:"preferred_car_type"`
}

// ProfileResponse is the HTTP response for a passenger profile.
type ProfileResponse struct {
	User                        UserResponse `json:"user"`
	FullName                    string       `json:"full_name"`
	HomeAddress                 string       `json:"home_address"`
	WorkAddress                 string       `json:"work_address"`
	EmergencyContactName        string       `json:"emergency_contact_name"`
	EmergencyContactPhone       string       `json:"emergency_contact_phone"`
	PreferredPaymentMethod      string       `json:"preferred_payment_method"`
	PreferredCarType            string       `json:"preferred_car_type"`
	AverageRating               float64      `json:"average_rating"`
	TotalRides                  int          `json:"total_rides"`
	IsPhoneVerified             bool         `json:"is_phone_verified"`
	ProfileCompletionPercentage int          `json:"profile_completion_percentage"`
	IsProfileComplete           bool         `json:"is_profile_complete"`
	CreatedAt                   time.Time    `json:"created_at"`
	UpdatedAt                   time.Time    `json:"updated_at"`
}

func toProfileResponse(p *service.Profile) ProfileResponse {
	return ProfileResponse{
		User:                        toUserResponse(p.User),
		FullName:                    p.User.FullName(),
		HomeAddress:                 p.Passenger.HomeAddress,
		WorkAddress:                 p.Passenger.WorkAddress,
		EmergencyContactName:        p.Passenger.EmergencyContactName,
		EmergencyContactPhone:       p.Passenger.EmergencyContactPhone,
		PreferredPaymentMethod:      string(p.Passenger.PreferredPaymentMethod),
		PreferredCarType:            string(p.Passenger.PreferredCarType),
		AverageRating:               p.Passenger.AverageRating,
		TotalRides:                  p.Passenger.TotalRides,
		IsPhoneVerified:             p.Passenger.IsPhoneVerified,
		ProfileCompletionPercentage: p.Completion.Percentage,
		IsProfileComplete:           p.Completion.IsComplete,
		CreatedAt:                   p.Passenger.CreatedAt,
		UpdatedAt:                   p.Passenger.UpdatedAt,
	}
}

// Create handles POST /v1/passengers
func (h *PassengerHandler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.passengerService.CreateProfile(c.Request.Context(), c.GetHeader(actingUserHeader), service.CreateProfileRequest{
		HomeAddress:            req.HomeAddress,
		WorkAddress:            req.WorkAddress,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactPhone:  req.EmergencyContactPhone,
		PreferredPaymentMethod: domain.PaymentMethod(req.PreferredPaymentMethod),
		PreferredCarType:       domain.CarType(req.PreferredCarType),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

// Get handles GET /v1/passengers/:user_id
func (h *PassengerHandler) Get(c *gin.Context) {
	profile, err := h.passengerService.GetProfile(c.Request.Context(), c.GetHeader(actingUserHeader), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update handles PATCH /v1/passengers/:user_id
func (h *PassengerHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	update := service.UpdateProfileRequest{
		HomeAddress:           req.HomeAddress,
		WorkAddress:           req.WorkAddress,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}
	if req.PreferredPaymentMethod != nil {
		method := domain.PaymentMethod(*req.PreferredPaymentMethod)
		update.PreferredPaymentMethod = &method
	}
	if req.PreferredCarType != nil {
		carType := domain.CarType(*req.PreferredCarType)
		update.PreferredCarType = &carType
	}

	profile, err := h.passengerService.UpdateProfile(c.Request.Context(), c.GetHeader(actingUserHeader), c.Param("user_id"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Delete handles DELETE /v1/passengers/:user_id
func (h *PassengerHandler) Delete(c *gin.Context) {
	err := h.passengerService.DeleteProfile(c.Request.Context(), c.GetHeader(actingUserHeader), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /v1/passengers
func (h *PassengerHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	profiles, err := h.passengerService.ListProfiles(c.Request.Context(), c.GetHeader(actingUserHeader), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, toProfileResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(results),
		"results": results,
	})
}

// StatsResponse is the HTTP response for passenger statistics.
type StatsResponse struct {
	PassengerID       string    `json:"passenger_id"`
	Email             string    `json:"email"`
	TotalRides        int       `json:"total_rides"`
	AverageRating     float64   `json:"average_rating"`
	ProfileCompletion int       `json:"profile_completion"`
	IsVerified        bool      `json:"is_verified"`
	MemberSince       time.Time `json:"member_since"`
	LastUpdated       time.Time `json:"last_updated"`
}

// GetStats handles GET /v1/passengers/:user_id/stats
func (h *PassengerHandler) GetStats(c *gin.Context) {
	stats, err := h.passengerService.GetStats(c.Request.Context(), c.GetHeader(actingUserHeader), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		PassengerID:       stats.PassengerID,
		Email:             stats.Email,
		TotalRides:        stats.TotalRides,
		AverageRating:     stats.AverageRating,
		ProfileCompletion: stats.ProfileCompletion,
		IsVerified:        stats.IsVerified,
		MemberSince:       stats.MemberSince,
		LastUpdated:       stats.LastUpdated,
	})
}

// VerifyPhone handles POST /v1/passengers/:user_id/verify-phone
func (h *PassengerHandler) VerifyPhone(c *gin.Context) {
	profile, err := h.passengerService.VerifyPhone(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// RecordRideRequest is the HTTP request body for recording a completed ride.
type RecordRideRequest struct {
	Rating float64 `json:"rating"`
}

// RecordRide handles POST /v1/passengers/:user_id/rides
func (h *PassengerHandler) RecordRide(c *gin.Context) {
	var req RecordRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	profile, err := h.passengerService.RecordRide(c.Request.Context(), c.Param("user_id"), req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// parseFilter builds a repository filter from the list query parameters.
func parseFilter(c *gin.Context) (repository.PassengerFilter, error) {
	var filter repository.PassengerFilter

	if v := c.Query("preferred_payment_method"); v != "" {
		method := domain.PaymentMethod(v)
		if !domain.IsValidPaymentMethod(method) {
			return filter, service.ErrInvalidPaymentMethod
		}
		filter.PreferredPaymentMethod = &method
	}
	if v := c.Query("preferred_car_type"); v != "" {
		carType := domain.CarType(v)
		if !domain.IsValidCarType(carType) {
			return filter, service.ErrInvalidCarType
		}
		filter.PreferredCarType = &carType
	}
	if v := c.Query("is_phone_verified"); v != "" {
		verified, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.IsPhoneVerified = &verified
	}
	if v := c.Query("is_profile_complete"); v != "" {
		complete, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.IsProfileComplete = &complete
	}

	return filter, nil
}
