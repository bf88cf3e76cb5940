package dto

import (
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Human-readable labels for document types.
var documentTypeLabels = map[models.DocumentType]string{
	models.DocTranscript:             "Transcript",
	models.DocCertificate:            "Certificate",
	models.DocDiploma:                "Diploma",
	models.DocRecommendationLetter:   "Recommendation Letter",
	models.DocEnrollmentVerification: "Enrollment Verification",
}

// DocumentRequestView is the camelCase workflow ticket the UI layer renders.
type DocumentRequestView struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	UserName    string     `json:"userName,omitempty"`
	Type        string     `json:"type"`
	TypeLabel   string     `json:"typeLabel"`
	Purpose     string     `json:"purpose,omitempty"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	ProcessedBy *int64     `json:"processedBy,omitempty"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	RequestedAt time.Time  `json:"requestedAt"`
	CanCancel   bool       `json:"canCancel"`
	IsFinal     bool       `json:"isFinal"`
}

// ToDocumentRequestView maps a wire request to its view shape. Cancellation
// is only offered while the request is still pending.
func ToDocumentRequestView(req *models.DocumentRequest) DocumentRequestView {
	view := DocumentRequestView{
		ID:          req.ID,
		UserID:      req.UserID,
		Type:        string(req.DocumentType),
		TypeLabel:   documentTypeLabels[req.DocumentType],
		Purpose:     req.Purpose,
		Status:      string(req.Status),
		Notes:       req.Notes,
		ProcessedBy: req.ProcessedBy,
		ProcessedAt: req.ProcessedAt,
		RequestedAt: req.CreatedAt,
		CanCancel:   req.Status == models.DocPending,
		IsFinal: req.Status == models.DocCompleted ||
			req.Status == models.DocRejected ||
			req.Status == models.DocCancelled,
	}

	if view.TypeLabel == "" {
		view.TypeLabel = string(req.DocumentType)
	}

	if req.User != nil {
		view.UserName = req.User.FullName()
	}

	return view
}

// ToDocumentRequestViews maps a list of wire requests, preserving order.
func ToDocumentRequestViews(reqs []models.DocumentRequest) []DocumentRequestView {
	views := make([]DocumentRequestView, 0, len(reqs))
	for i := range reqs {
		views = append(views, ToDocumentRequestView(&reqs[i]))
	}
	return views
}
