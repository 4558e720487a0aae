package model

import "gorm.io/gorm"

// HomepageSettingID is the id of the only homepage settings row.
const HomepageSettingID = "homepage"

// HomepageSetting is the singleton homepage configuration document. The raw
// JSON may have been written by an older release, readers always pass it
// through the homepage merge before use.
type HomepageSetting struct {
	gorm.Model
	ID   string `gorm:"primaryKey;not null;"`
	Data string `gorm:"not null"`
}
