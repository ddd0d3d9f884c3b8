package dto

import (
	"github.com/dojanghq/dojang/internal/app/models"
)

// PromoteRequest is the payload for a belt promotion
type PromoteRequest struct {
	NewBelt    string `json:"newBelt" binding:"required" example:"naranja"`
	ExamDate   string `json:"examDate" example:"2024-06-15"` // YYYY-MM-DD, defaults to today
	Instructor string `json:"instructor" example:"Maestro Kim"`
	Notes      string `json:"notes" example:"Examen superado con nota alta"`
}

// BeltHistoryResponse is the audit trail of belts a student has held
type BeltHistoryResponse struct {
	Student     string                    `json:"student"`
	CurrentBelt string                    `json:"currentBelt"`
	History     []models.BeltHistoryEntry `json:"history"`
}
