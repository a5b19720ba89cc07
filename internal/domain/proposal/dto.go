package proposal

import "time"

type SubmitProposalRequest struct {
	SlotOne *string `json:"slot_one"`
	SlotTwo *string `json:"slot_two"`
}

type EntertainRequest struct {
	Slot int `json:"slot"`
}

type ProposalResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	Year               int     `json:"year"`
	SlotOne            *string `json:"slot_one"`
	SlotTwo            *string `json:"slot_two"`
	SlotOneEntertained bool    `json:"slot_one_entertained"`
	SlotTwoEntertained bool    `json:"slot_two_entertained"`
	EntertainedBy      *string `json:"entertained_by,omitempty"`
	EntertainedAt      *string `json:"entertained_at,omitempty"`
}

func ToResponse(p ProposedTraining) ProposalResponse {
	resp := ProposalResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		Year:               p.Year,
		SlotOne:            p.SlotOne,
		SlotTwo:            p.SlotTwo,
		SlotOneEntertained: p.SlotOneEntertained,
		SlotTwoEntertained: p.SlotTwoEntertained,
		EntertainedBy:      p.EntertainedBy,
	}
	if p.EntertainedAt != nil {
		s := p.EntertainedAt.Format(time.RFC3339)
		resp.EntertainedAt = &s
	}
	return resp
}
