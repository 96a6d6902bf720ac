package model

// Visitor is one recorded storefront visit; counts are aggregated per day.
type Visitor struct {
	BaseModel
	IP        string `gorm:"type:varchar(64)" json:"ip"`
	UserAgent string `gorm:"type:varchar(255)" json:"user_agent"`
}
