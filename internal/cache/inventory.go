package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix         = "user:%d"
	LocationKeyPrefix     = "location:%d"
	LocationsKey          = "locations:all"
	SubordinatesKeyPrefix = "subordinates:%d"
)

const (
	UserTTL         = 5 * time.Minute
	LocationTTL     = 30 * time.Minute
	SubordinatesTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func LocationKey(locationID uint) string {
	return fmt.Sprintf(LocationKeyPrefix, locationID)
}

// SubordinatesKey caches the direct-report set of a supervisor.
func SubordinatesKey(supervisorID uint) string {
	return fmt.Sprintf(SubordinatesKeyPrefix, supervisorID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateSupervisor drops the cached direct-report set. Called when
// a user is created or re-assigned under a supervisor.
func InvalidateSupervisor(ctx context.Context, supervisorID uint) {
	Invalidate(ctx, SubordinatesKey(supervisorID))
}

func InvalidateLocations(ctx context.Context) {
	Invalidate(ctx, LocationsKey)
}
