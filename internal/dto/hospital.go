package dto

import (
	"time"

	"github.com/CareSetu/health_portal_app/internal/core/domain"
)

// CreateHospitalRequest registers a hospital in the directory.
type CreateHospitalRequest struct {
	Name          string `json:"name" binding:"required"`
	State         string `json:"state" binding:"required"`
	District      string `json:"district" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	BedsTotal     int    `json:"bedsTotal" binding:"gte=0"`
	BedsAvailable int    `json:"bedsAvailable" binding:"gte=0"`
}

// SearchHospitalsParams defines query parameters for hospital search.
type SearchHospitalsParams struct {
	State    string `form:"state"`
	District string `form:"district"`
	Name     string `form:"name"`
	Limit    int    `form:"limit,default=20"`
}

// UpdateBedsRequest updates a hospital's bed counts.
type UpdateBedsRequest struct {
	BedsTotal     int `json:"bedsTotal" binding:"gte=0"`
	BedsAvailable int `json:"bedsAvailable" binding:"gte=0"`
}

// HospitalResponse is the client-facing hospital shape.
type HospitalResponse struct {
	HospitalID    string    `json:"hospitalID"`
	Name          string    `json:"name"`
	State         string    `json:"state"`
	District      string    `json:"district"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	BedsTotal     int       `json:"bedsTotal"`
	BedsAvailable int       `json:"bedsAvailable"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToHospitalResponse converts a domain.Hospital to its response DTO.
func ToHospitalResponse(h *domain.Hospital) HospitalResponse {
	return HospitalResponse{
		HospitalID:    h.HospitalID,
		Name:          h.Name,
		State:         h.State,
		District:      h.District,
		Address:       h.Address,
		Phone:         h.Phone,
		Email:         h.Email,
		BedsTotal:     h.BedsTotal,
		BedsAvailable: h.BedsAvailable,
		LastUpdatedAt: h.LastUpdatedAt,
	}
}

// ToHospitalListResponse converts a slice of hospitals.
func ToHospitalListResponse(hs []domain.Hospital) []HospitalResponse {
	out := make([]HospitalResponse, len(hs))
	for i := range hs {
		out[i] = ToHospitalResponse(&hs[i])
	}
	return out
}
