package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Darlington6/safeboda/internal/domain"
)

// CacheStore handles passenger profile caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// PassengerCacheTTL bounds staleness of cached profiles. Profiles change
// rarely compared to ride-side entities, so a minute is acceptable.
const PassengerCacheTTL = 60 * time.Second

const passengerCachePrefix = "cache:passenger:"

// CachedPassenger is the JSON shape of a cached profile.
type CachedPassenger struct {
	UserID                 string    `json:"user_id"`
	HomeAddress            string    `json:"home_address"`
	WorkAddress            string    `json:"work_address"`
	EmergencyContactName   string    `json:"emergency_contact_name"`
	EmergencyContactPhone  string    `json:"emergency_contact_phone"`
	PreferredPaymentMethod string    `json:"preferred_payment_method"`
	PreferredCarType       string    `json:"preferred_car_type"`
	AverageRating          float64   `json:"average_rating"`
	TotalRides             int       `json:"total_rides"`
	IsPhoneVerified        bool      `json:"is_phone_verified"`
	IsProfileComplete      bool      `json:"is_profile_complete"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ToDomain converts a cached entry back into a domain profile.
func (c *CachedPassenger) ToDomain() *domain.Passenger {
	return &domain.Passenger{
		UserID:                 c.UserID,
		HomeAddress:            c.HomeAddress,
		WorkAddress:            c.WorkAddress,
		EmergencyContactName:   c.EmergencyContactName,
		EmergencyContactPhone:  c.EmergencyContactPhone,
		PreferredPaymentMethod: domain.PaymentMethod(c.PreferredPaymentMethod),
		PreferredCarType:       domain.CarType(c.PreferredCarType),
		AverageRating:          c.AverageRating,
		TotalRides:             c.TotalRides,
		IsPhoneVerified:        c.IsPhoneVerified,
		IsProfileComplete:      c.IsProfileComplete,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

// FromPassenger builds a cache entry from a domain profile.
func FromPassenger(p *domain.Passenger) *CachedPassenger {
	return &CachedPassenger{
		UserID:                 p.UserID,
		HomeAddress:            p.HomeAddress,
		WorkAddress:            p.WorkAddress,
		EmergencyContactName:   p.EmergencyContactName,
		EmergencyContactPhone:  p.EmergencyContactPhone,
		PreferredPaymentMethod: string(p.PreferredPaymentMethod),
		PreferredCarType:       string(p.PreferredCarType),
		AverageRating:          p.AverageRating,
		TotalRides:             p.TotalRides,
		IsPhoneVerified:        p.IsPhoneVerified,
		IsProfileComplete:      p.IsProfileComplete,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// GetPassenger retrieves a profile from cache. A nil result with nil
// error means cache miss.
func (s *CacheStore) GetPassenger(ctx context.Context, userID string) (*CachedPassenger, error) {
	key := passengerCachePrefix + userID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cached CachedPassenger
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// SetPassenger stores a profile in cache.
func (s *CacheStore) SetPassenger(ctx context.Context, cached *CachedPassenger) error {
	key := passengerCachePrefix + cached.UserID
	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, PassengerCacheTTL).Err()
}

// InvalidatePassenger removes a profile from cache.
func (s *CacheStore) InvalidatePassenger(ctx context.Context, userID string) error {
	key := passengerCachePrefix + userID
	return s.client.Del(ctx, key).Err()
}
