package response

import (
	"time"

	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	RestaurantID   uuid.UUID  `json:"restaurantId"`
	RestaurantName string     `json:"restaurantName"`
	AreaID         *uuid.UUID `json:"areaId,omitempty"`
	AreaName       *string    `json:"areaName,omitempty"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	PartySize      int        `json:"partySize"`
	Type           string     `json:"type"`
	Status         string     `json:"status"`
	CustomerName   string     `json:"customerName"`
	CustomerEmail  string     `json:"customerEmail"`
	CustomerPhone  *string    `json:"customerPhone,omitempty"`
	Note           *string    `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID  `json:"id"`
	AreaID       *uuid.UUID `json:"areaId,omitempty"`
	AreaName     *string    `json:"areaName,omitempty"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	PartySize    int        `json:"partySize"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customerName"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             view.ID,
		RestaurantID:   view.RestaurantID,
		RestaurantName: view.RestaurantName,
		AreaID:         view.AreaID,
		AreaName:       view.AreaName,
		Date:           view.Date,
		Time:           view.Time,
		PartySize:      view.PartySize,
		Type:           view.Type,
		Status:         view.Status,
		CustomerName:   view.CustomerName,
		CustomerEmail:  view.CustomerEmail,
		CustomerPhone:  view.CustomerPhone,
		Note:           view.Note,
		CreatedAt:      view.CreatedAt,
		UpdatedAt:      view.UpdatedAt,
	}
}

func FromReservationListItem(item *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           item.ID,
		AreaID:       item.AreaID,
		AreaName:     item.AreaName,
		Date:         item.Date,
		Time:         item.Time,
		PartySize:    item.PartySize,
		Type:         item.Type,
		Status:       item.Status,
		CustomerName: item.CustomerName,
		CreatedAt:    item.CreatedAt,
	}
}

func FromStatusCounts(counts []queries.StatusCountView) []StatusCountResponse {
	result := make([]StatusCountResponse, len(counts))
	for i, c := range counts {
		result[i] = StatusCountResponse{Status: c.Status, Count: c.Count}
	}
	return result
}
