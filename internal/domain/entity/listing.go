package entity

import "time"

// Listing kanalga chiqarilgan tayyor e'lon (o'zgarmas)
type Listing struct {
	ID          string
	UserID      int64
	DeviceType  DeviceType
	Brand       string
	Model       string
	Specs       map[Step]string
	PriceUSD    string
	PriceKGS    string
	Contact     string
	Photos      []string
	Text        string // kanalga yuborilgan tayyor matn
	PublishedAt time.Time
}

// UserProfile foydalanuvchi yozuvi (premium bayrog'i shu yerda)
type UserProfile struct {
	UserID       int64
	Username     string
	Premium      bool
	PremiumSince time.Time
	CreatedAt    time.Time
}
