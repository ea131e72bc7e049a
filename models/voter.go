// Description: Defines the Voter model and its fields.
package models

import "time"

type Voter struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	SerialNo     int       `json:"serialNo" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"not null"`
	GuardianName string    `json:"guardianName" gorm:"not null"`
	HouseNo      string    `json:"houseNo" gorm:"not null"`
	HouseName    string    `json:"houseName" gorm:"not null"`
	GenderAge    string    `json:"genderAge" gorm:"not null"`
	IDCardNo     string    `json:"idCardNo" gorm:"uniqueIndex;not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
