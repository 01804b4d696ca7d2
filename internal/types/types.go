// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "time"

const (
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationExpired  = "expired"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`

	// OrganizationID is a denormalized pointer to the user's home
	// organization, cleared when that membership is removed.
	OrganizationID *string `json:"organization_id,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ShareCode   string    `json:"share_code"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Membership struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrganizationMember is a membership row joined with its user, the shape the
// member listing endpoint returns.
type OrganizationMember struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type Invitation struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Email          string    `json:"email"`
	InvitedBy      string    `json:"invited_by"`
	Status         string    `json:"status"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type Farm struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Location       string    `json:"location,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	AnimalType     string    `json:"animal_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type DiseaseReport struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	FarmID         *string `json:"farm_id,omitempty"`
	CreatedBy      string  `json:"created_by"`

	AnimalSpecies string    `json:"animal_species"`
	DiseaseName   string    `json:"disease_name"`
	Severity      string    `json:"severity,omitempty"`
	OnsetDate     time.Time `json:"onset_date"`

	TotalPopulation *int64 `json:"total_population,omitempty"`
	SickCount       *int64 `json:"sick_count,omitempty"`
	DeathCount      *int64 `json:"death_count,omitempty"`

	// MorbidityRate and MortalityRate are derived from the counts above and
	// stay nil when the population is unknown.
	MorbidityRate *float64 `json:"morbidity_rate,omitempty"`
	MortalityRate *float64 `json:"mortality_rate,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
