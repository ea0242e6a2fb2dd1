package response

import "tablebook/internal/usecase/queries"

type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type PartySizeOptionResponse struct {
	Size     int    `json:"size"`
	Label    string `json:"label"`
	Overflow bool   `json:"overflow"`
}

type PartySizeOptionsResponse struct {
	Options []PartySizeOptionResponse `json:"options"`
}

func FromPartySizeOptions(options []queries.PartySizeOptionView) *PartySizeOptionsResponse {
	result := make([]PartySizeOptionResponse, len(options))
	for i, o := range options {
		result[i] = PartySizeOptionResponse{
			Size:     o.Size,
			Label:    o.Label,
			Overflow: o.Overflow,
		}
	}
	return &PartySizeOptionsResponse{Options: result}
}
