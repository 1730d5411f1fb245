package database

import "leavedesk/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Locations migrate first so the users foreign key can be created.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Location{},
		&models.User{},
		&models.VacationRequest{},
	}
}
