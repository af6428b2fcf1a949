package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Darlington6/safeboda/internal/domain"
	"github.com/Darlington6/safeboda/internal/redis"
	"github.com/Darlington6/safeboda/internal/repository"
)

// PassengerService handles passenger profile operations: creation,
// merge-style updates, reads, stats, and the external verification and
// ride-completion hooks. Every mutation runs the validation rules and
// re-evaluates profile completion before anything is persisted.
type PassengerService struct {
	userRepo      repository.UserRepository
	passengerRepo repository.PassengerRepository
	cacheStore    redis.PassengerCacheInterface
	logger        *logrus.Logger
}

// NewPassengerService creates a new PassengerService. cacheStore and
// logger are optional.
func NewPassengerService(
	userRepo repository.UserRepository,
	passengerRepo repository.PassengerRepository,
	cacheStore redis.PassengerCacheInterface,
	logger *logrus.Logger,
) *PassengerService {
	return &PassengerService{
		userRepo:      userRepo,
		passengerRepo: passengerRepo,
		cacheStore:    cacheStore,
		logger:        logger,
	}
}

// Profile aggregates a passenger record with its owning identity and a
// freshly computed completion result. Completion is always evaluated at
// read time so callers never see a stale derived value.
type Profile struct {
	User       *domain.User
	Passenger  *domain.Passenger
	Completion CompletionResult
}

// CreateProfileRequest contains the candidate fields for a new profile.
type CreateProfileRequest struct {
	HomeAddress            string
	WorkAddress            string
	EmergencyContactName   string
	EmergencyContactPhone  string
	PreferredPaymentMethod domain.PaymentMethod // Optional: defaults to card
	PreferredCarType       domain.CarType       // Optional: defaults to economy
}

// UpdateProfileRequest contains a partial update. Nil fields keep their
// current values.
type UpdateProfileRequest struct {
	HomeAddress            *string
	WorkAddress            *string
	EmergencyContactName   *string
	EmergencyContactPhone  *string
	PreferredPaymentMethod *domain.PaymentMethod
	PreferredCarType       *domain.CarType
}

// CreateProfile creates the passenger profile owned by actingUserID.
// The acting user must be a passenger and must not own a profile yet.
func (s *PassengerService) CreateProfile(ctx context.Context, actingUserID string, req CreateProfileRequest) (*Profile, error) {
	if actingUserID == "" {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	if user.UserType != domain.UserTypePassenger {
		return nil, ErrNotPassenger
	}

	paymentMethod := req.PreferredPaymentMethod
	if paymentMethod == "" {
		paymentMethod = domain.DefaultPaymentMethod
	}
	carType := req.PreferredCarType
	if carType == "" {
		carType = domain.DefaultCarType
	}

	passenger := &domain.Passenger{
		UserID:                 user.ID,
		HomeAddress:            req.HomeAddress,
		WorkAddress:            req.WorkAddress,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactPhone:  req.EmergencyContactPhone,
		PreferredPaymentMethod: paymentMethod,
		PreferredCarType:       carType,
		AverageRating:          domain.DefaultAverageRating,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}

	if err := validateProfile(passenger); err != nil {
		return nil, err
	}

	// Derive completion before the single commit.
	completion := EvaluateCompletion(user, passenger)
	passenger.IsProfileComplete = completion.IsComplete

	if err := s.passengerRepo.Create(ctx, passenger); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	s.cachePut(ctx, passenger)
	s.logInfo("passenger profile created", logrus.Fields{
		"user_id":    user.ID,
		"complete":   completion.IsComplete,
		"percentage": completion.Percentage,
	})

	return &Profile{User: user, Passenger: passenger, Completion: completion}, nil
}

// GetProfile retrieves a profile. Non-staff callers can only see their
// own profile; anything else looks like a missing record to them.
func (s *PassengerService) GetProfile(ctx context.Context, actingUserID, targetUserID string) (*Profile, error) {
	acting, err := s.resolveActing(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if !canAccess(acting, targetUserID) {
		return nil, repository.ErrNotFound
	}

	user, passenger, err := s.fetch(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Passenger: passenger, Completion: EvaluateCompletion(user, passenger)}, nil
}

// UpdateProfile merges the candidate fields into an existing profile,
// re-validates, re-evaluates completion and persists everything in one
// write.
func (s *PassengerService) UpdateProfile(ctx context.Context, actingUserID, targetUserID string, req UpdateProfileRequest) (*Profile, error) {
	acting, err := s.resolveActing(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if !canAccess(acting, targetUserID) {
		return nil, repository.ErrNotFound
	}

	user, err := s.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	passenger, err := s.passengerRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	merged := mergeProfile(passenger, req)

	// Rules apply to the merged record, so an update can never leave the
	// stored profile violating a cross-field constraint.
	if err := validateProfile(merged); err != nil {
		return nil, err
	}

	completion := EvaluateCompletion(user, merged)
	merged.IsProfileComplete = completion.IsComplete
	merged.UpdatedAt = time.Now()

	if err := s.passengerRepo.Update(ctx, merged); err != nil {
		return nil, err
	}

	s.cachePut(ctx, merged)
	s.logInfo("passenger profile updated", logrus.Fields{
		"user_id":    merged.UserID,
		"complete":   completion.IsComplete,
		"percentage": completion.Percentage,
	})

	return &Profile{User: user, Passenger: merged, Completion: completion}, nil
}

// DeleteProfile removes a profile (account removal).
func (s *PassengerService) DeleteProfile(ctx context.Context, actingUserID, targetUserID string) error {
	acting, err := s.resolveActing(ctx, actingUserID)
	if err != nil {
		return err
	}
	if !canAccess(acting, targetUserID) {
		return repository.ErrNotFound
	}

	if err := s.passengerRepo.Delete(ctx, targetUserID); err != nil {
		return err
	}

	s.cacheInvalidate(ctx, targetUserID)
	s.logInfo("passenger profile deleted", logrus.Fields{"user_id": targetUserID})
	return nil
}

// ListProfiles retrieves profiles matching the filter. Non-staff callers
// only ever see their own profile, whatever the filter says.
func (s *PassengerService) ListProfiles(ctx context.Context, actingUserID string, filter repository.PassengerFilter) ([]*Profile, error) {
	acting, err := s.resolveActing(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	if !acting.IsStaff {
		passenger, err := s.passengerRepo.GetByUserID(ctx, acting.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if !matchesFilter(passenger, filter) {
			return nil, nil
		}
		return []*Profile{{User: acting, Passenger: passenger, Completion: EvaluateCompletion(acting, passenger)}}, nil
	}

	passengers, err := s.passengerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	profiles := make([]*Profile, 0, len(passengers))
	for _, p := range passengers {
		user, err := s.userRepo.GetByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &Profile{User: user, Passenger: p, Completion: EvaluateCompletion(user, p)})
	}
	return profiles, nil
}

// PassengerStats summarizes a passenger's ride history and profile state.
type PassengerStats struct {
	PassengerID       string
	Email             string
	TotalRides        int
	AverageRating     float64
	ProfileCompletion int
	IsVerified        bool
	MemberSince       time.Time
	LastUpdated       time.Time
}

// GetStats retrieves ride statistics for a passenger.
func (s *PassengerService) GetStats(ctx context.Context, actingUserID, targetUserID string) (*PassengerStats, error) {
	profile, err := s.GetProfile(ctx, actingUserID, targetUserID)
	if err != nil {
		return nil, err
	}

	return &PassengerStats{
		PassengerID:       profile.Passenger.UserID,
		Email:             profile.User.Email,
		TotalRides:        profile.Passenger.TotalRides,
		AverageRating:     profile.Passenger.AverageRating,
		ProfileCompletion: profile.Completion.Percentage,
		IsVerified:        profile.Passenger.IsPhoneVerified,
		MemberSince:       profile.Passenger.CreatedAt,
		LastUpdated:       profile.Passenger.UpdatedAt,
	}, nil
}

// VerifyPhone marks the passenger's phone as verified. This is the entry
// point for the verification process; it goes through the evaluator so
// the stored completion flag cannot go stale.
func (s *PassengerService) VerifyPhone(ctx context.Context, userID string) (*Profile, error) {
	user, passenger, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	passenger.IsPhoneVerified = true

	completion := EvaluateCompletion(user, passenger)
	passenger.IsProfileComplete = completion.IsComplete
	passenger.UpdatedAt = time.Now()

	if err := s.passengerRepo.Update(ctx, passenger); err != nil {
		return nil, err
	}

	s.cachePut(ctx, passenger)
	s.logInfo("passenger phone verified", logrus.Fields{
		"user_id":  userID,
		"complete": completion.IsComplete,
	})

	return &Profile{User: user, Passenger: passenger, Completion: completion}, nil
}

// RecordRide records a completed ride with its rating. This is the entry
// point for the ride-completion process; it maintains the running
// average rating and the ride counter.
func (s *PassengerService) RecordRide(ctx context.Context, userID string, rating float64) (*Profile, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	user, passenger, err := s.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := passenger.TotalRides
	passenger.AverageRating = (passenger.AverageRating*float64(total) + rating) / float64(total+1)
	passenger.TotalRides = total + 1
	passenger.UpdatedAt = time.Now()

	if err := s.passengerRepo.Update(ctx, passenger); err != nil {
		return nil, err
	}

	s.cachePut(ctx, passenger)
	s.logInfo("passenger ride recorded", logrus.Fields{
		"user_id":     userID,
		"total_rides": passenger.TotalRides,
	})

	return &Profile{User: user, Passenger: passenger, Completion: EvaluateCompletion(user, passenger)}, nil
}

// validateProfile applies the profile validation rules. The rules touch
// disjoint or cooperating fields, so order does not affect the outcome.
func validateProfile(p *domain.Passenger) error {
	if p.EmergencyContactPhone != "" && !strings.HasPrefix(p.EmergencyContactPhone, "+") {
		return ErrEmergencyPhoneFormat
	}
	if p.EmergencyContactName != "" && p.EmergencyContactPhone == "" {
		return ErrEmergencyPhoneRequired
	}
	if !domain.IsValidPaymentMethod(p.PreferredPaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if !domain.IsValidCarType(p.PreferredCarType) {
		return ErrInvalidCarType
	}
	return nil
}

// mergeProfile applies a partial update on top of an existing profile.
// The returned copy leaves the input untouched.
func mergeProfile(existing *domain.Passenger, req UpdateProfileRequest) *domain.Passenger {
	merged := *existing
	if req.HomeAddress != nil {
		merged.HomeAddress = *req.HomeAddress
	}
	if req.WorkAddress != nil {
		merged.WorkAddress = *req.WorkAddress
	}
	if req.EmergencyContactName != nil {
		merged.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		merged.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.PreferredPaymentMethod != nil {
		merged.PreferredPaymentMethod = *req.PreferredPaymentMethod
	}
	if req.PreferredCarType != nil {
		merged.PreferredCarType = *req.PreferredCarType
	}
	return &merged
}

// canAccess reports whether acting may touch targetUserID's profile.
func canAccess(acting *domain.User, targetUserID string) bool {
	return acting.IsStaff || acting.ID == targetUserID
}

// matchesFilter reports whether a profile satisfies an in-memory filter.
// Used for non-staff listings, which are restricted to one profile.
func matchesFilter(p *domain.Passenger, filter repository.PassengerFilter) bool {
	if filter.PreferredPaymentMethod != nil && p.PreferredPaymentMethod != *filter.PreferredPaymentMethod {
		return false
	}
	if filter.PreferredCarType != nil && p.PreferredCarType != *filter.PreferredCarType {
		return false
	}
	if filter.IsPhoneVerified != nil && p.IsPhoneVerified != *filter.IsPhoneVerified {
		return false
	}
	if filter.IsProfileComplete != nil && p.IsProfileComplete != *filter.IsProfileComplete {
		return false
	}
	return true
}

// resolveActing loads and checks the acting identity.
func (s *PassengerService) resolveActing(ctx context.Context, actingUserID string) (*domain.User, error) {
	if actingUserID == "" {
		return nil, ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, actingUserID)
}

// fetch loads a user together with its passenger profile, consulting the
// cache for the profile first.
func (s *PassengerService) fetch(ctx context.Context, userID string) (*domain.User, *domain.Passenger, error) {
	if userID == "" {
		return nil, nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetPassenger(ctx, userID)
		if err == nil && cached != nil {
			return user, cached.ToDomain(), nil
		}
	}

	passenger, err := s.passengerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	s.cachePut(ctx, passenger)
	return user, passenger, nil
}

func (s *PassengerService) cachePut(ctx context.Context, p *domain.Passenger) {
	if s.cacheStore != nil {
		_ = s.cacheStore.SetPassenger(ctx, redis.FromPassenger(p))
	}
}

func (s *PassengerService) cacheInvalidate(ctx context.Context, userID string) {
	if s.cacheStore != nil {
		_ = s.cacheStore.InvalidatePassenger(ctx, userID)
	}
}

func (s *PassengerService) logInfo(msg string, fields logrus.Fields) {
	if s.logger != nil {
		s.logger.WithFields(fields).Info(msg)
	}
}
