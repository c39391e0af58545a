package models

import "time"

// TechStack represents one technology badge shown on the public site.
type TechStack struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IconName    string    `db:"icon_name" json:"iconName"`
	IconColor   string    `db:"icon_color" json:"iconColor"`
	BgColor     string    `db:"bg_color" json:"bgColor"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
