package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Article{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&Reel{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&NewLaunchItem{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&HomeTourItem{}); err != nil {
		return err
	}

	return db.AutoMigrate(&HomepageSetting{})
}
