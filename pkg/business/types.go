// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package business

import (
	"github.com/canonical/business-service/internal/types"
)

const (
	adminDepartmentName = "Admin"
	adminRoleName       = "General"
)

// Registration is a new business together with its first administrator
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Business  types.Business
}

type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email,max=254"`
	Password     string `json:"password" validate:"required,min=8,max=72"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"max=32"`
	BusinessName string `json:"business_name" validate:"required,max=200"`
	AddressLine1 string `json:"address_line_1" validate:"required,max=200"`
	AddressLine2 string `json:"address_line_2" validate:"max=200"`
	City         string `json:"city" validate:"required,max=100"`
	Region       string `json:"region" validate:"max=100"`
	PostalCode   string `json:"postal_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
}

func (r *RegisterRequest) Registration() *Registration {
	return &Registration{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Business: types.Business{
			Name:         r.BusinessName,
			AddressLine1: r.AddressLine1,
			AddressLine2: r.AddressLine2,
			City:         r.City,
			Region:       r.Region,
			PostalCode:   r.PostalCode,
			Country:      r.Country,
		},
	}
}
