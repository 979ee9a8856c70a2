package model

import "time"

// User type discriminator values as returned by the platform API.
const (
	UserTypeGuide   = "guide"
	UserTypeDriver  = "driver"
	UserTypeUnknown = "unknown"
)

// User is a guide or driver record as returned by the platform API.
// Field names are fixed by the upstream wire contract; the dashboard
// never mutates or writes these back.
type User struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	Phone        string     `json:"phone"`
	Type         string     `json:"type"`
	IsActive     bool       `json:"is_active"`
	IsOnboarded  bool       `json:"is_onboarded"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	Commission   float64    `json:"commission"`
	RewardAmount *float64   `json:"reward_amount"`
	BankName     string     `json:"bank_name"`
	BankAccount  string     `json:"bank_account"`
	PlateNumber  string     `json:"plate_number"`
	CarModel     string     `json:"car_model"`
}

// Reward returns the reward amount with a null value treated as zero.
func (u *User) Reward() float64 {
	if u.RewardAmount == nil {
		return 0
	}
	return *u.RewardAmount
}

// TypeOrUnknown returns the user type, bucketing a missing type as "unknown".
func (u *User) TypeOrUnknown() string {
	if u.Type == "" {
		return UserTypeUnknown
	}
	return u.Type
}
