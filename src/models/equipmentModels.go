package models

type EquipmentModel struct {
	Id           int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string  `json:"name" gorm:"type:varchar(100);not null"`
	Description  *string `json:"description" gorm:"type:text"`
	SerialNumber *string `json:"serialNumber" gorm:"column:serial_number;type:varchar(100)"`
}
