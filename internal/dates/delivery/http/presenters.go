package http

import (
	"errors"

	"nl-dates/internal/dates"
	"nl-dates/pkg/datemath"
)

var errBlankInput = errors.New("input must not be blank")

// --- Request DTOs ---

type parseReq struct {
	Phrase        string         `json:"phrase"         binding:"required,max=500" example:"next Tuesday"`
	ReferenceDate *datemath.Date `json:"reference_date" swaggertype:"string" example:"2025-11-18"`
}

func (r parseReq) validate() error {
	if isBlank(r.Phrase) {
		return errBlankInput
	}
	return nil
}

func (r parseReq) toInput() dates.CalculateInput {
	return dates.CalculateInput{
		Phrase:        r.Phrase,
		ReferenceDate: r.ReferenceDate,
	}
}

// ---

type extractReq struct {
	Task          string         `json:"task"           binding:"required,max=2000" example:"Submit report tomorrow"`
	ReferenceDate *datemath.Date `json:"reference_date" swaggertype:"string" example:"2025-11-18"`
}

func (r extractReq) validate() error {
	if isBlank(r.Task) {
		return errBlankInput
	}
	return nil
}

func (r extractReq) toInput() dates.ExtractInput {
	return dates.ExtractInput{
		TaskText:      r.Task,
		ReferenceDate: r.ReferenceDate,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Phrase        string        `json:"phrase"`
	ReferenceDate datemath.Date `json:"reference_date" swaggertype:"string" example:"2025-11-18"`
	Date          datemath.Date `json:"date"           swaggertype:"string" example:"2025-11-25"`
}

func (h *handler) newParseResp(req parseReq, d datemath.Date) parseResp {
	return parseResp{
		Phrase:        req.Phrase,
		ReferenceDate: *req.ReferenceDate,
		Date:          d,
	}
}

type extractResp struct {
	Task          string         `json:"task"`
	CleanedText   string         `json:"cleaned_text"`
	Date          *datemath.Date `json:"date"           swaggertype:"string" example:"2025-11-19"`
	ReferenceDate datemath.Date  `json:"reference_date" swaggertype:"string" example:"2025-11-18"`
}

func (h *handler) newExtractResp(req extractReq, out dates.ExtractOutput) extractResp {
	return extractResp{
		Task:          req.Task,
		CleanedText:   out.CleanedText,
		Date:          out.Date,
		ReferenceDate: *req.ReferenceDate,
	}
}
