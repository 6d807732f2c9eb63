package database

import (
	"github.com/yeremiapane/crm-backend/models"
	"github.com/yeremiapane/crm-backend/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the enquiries and pickup_requests tables.
// pickup_requests.enquiry_id carries an index but no foreign key, so deleting
// an enquiry never touches its pickups.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Enquiry{},
		&models.PickupRequest{},
	)
	if err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
