// Package models — Membership domain modeli.
//
// Membership, User ↔ Club many-to-many ilişkisinin join table karşılığıdır.
// İki foreign key dışında attribute taşımaz; composite primary key
// (user_id, club_id) aynı üyeliğin iki kez kurulmasını engeller.
package models

import "time"

// Membership, bir kullanıcının bir kulübe üyeliğini temsil eder.
type Membership struct {
	UserID   string    `json:"user_id"`
	ClubID   string    `json:"club_id"`
	JoinedAt time.Time `json:"joined_at"`
}
