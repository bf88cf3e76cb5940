package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
)

// DocumentsService defines the interface for document request operations.
// ListAll and the processing calls are admin-side; the server rejects them
// for regular accounts.
type DocumentsService interface {
	ListMine(ctx context.Context) ([]dto.DocumentRequestView, error)
	Request(ctx context.Context, docType models.DocumentType, purpose string) (*dto.DocumentRequestView, error)
	Cancel(ctx context.Context, id int64) error
	ListAll(ctx context.Context, status *models.DocumentStatus) ([]dto.DocumentRequestView, error)
	Approve(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error)
	Reject(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error)
	MarkProcessing(ctx context.Context, id int64) (*dto.DocumentRequestView, error)
	Complete(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error)
}

// documentsServiceImpl implements DocumentsService
type documentsServiceImpl struct {
	api    *client.Client
	logger zerolog.Logger
}

// NewDocumentsService creates a new DocumentsService
func NewDocumentsService(api *client.Client, logger zerolog.Logger) DocumentsService {
	return &documentsServiceImpl{
		api:    api,
		logger: logger,
	}
}

// ListMine fetches the caller's own document requests, newest first.
func (s *documentsServiceImpl) ListMine(ctx context.Context) ([]dto.DocumentRequestView, error) {
	var reqs []models.DocumentRequest
	err := s.api.Get(ctx, "/documents", nil, &reqs)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to see your document requests",
		})
	}
	return dto.ToDocumentRequestViews(reqs), nil
}

// Request opens a new document request.
func (s *documentsServiceImpl) Request(ctx context.Context, docType models.DocumentType, purpose string) (*dto.DocumentRequestView, error) {
	s.logger.Debug().Str("type", string(docType)).Msg("Requesting document")

	var req models.DocumentRequest
	err := s.api.Post(ctx, "/documents", &models.CreateDocumentRequest{
		DocumentType: docType,
		Purpose:      purpose,
	}, &req)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to request documents",
		})
	}

	s.logger.Info().Int64("requestId", req.ID).Msg("Document requested")

	view := dto.ToDocumentRequestView(&req)
	return &view, nil
}

// Cancel withdraws a request. Only pending requests can be cancelled; the
// server enforces the workflow.
func (s *documentsServiceImpl) Cancel(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/documents/%d/cancel", id), nil, nil)
	return userFacing(err, failureMessages{
		NotFound: "Document request not found",
		Conflict: "Only pending requests can be cancelled",
	})
}

// ListAll fetches every request, optionally narrowed to one status.
func (s *documentsServiceImpl) ListAll(ctx context.Context, status *models.DocumentStatus) ([]dto.DocumentRequestView, error) {
	var query url.Values
	if status != nil {
		query = url.Values{}
		query.Set("status", string(*status))
	}

	var reqs []models.DocumentRequest
	err := s.api.Get(ctx, "/documents/all", query, &reqs)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Forbidden: "Only administrators can see all document requests",
		})
	}
	return dto.ToDocumentRequestViews(reqs), nil
}

// Approve moves a pending request to approved.
func (s *documentsServiceImpl) Approve(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error) {
	return s.process(ctx, id, models.DocApproved, notes)
}

// Reject closes a pending request as rejected.
func (s *documentsServiceImpl) Reject(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error) {
	return s.process(ctx, id, models.DocRejected, notes)
}

// MarkProcessing moves an approved request into processing.
func (s *documentsServiceImpl) MarkProcessing(ctx context.Context, id int64) (*dto.DocumentRequestView, error) {
	return s.process(ctx, id, models.DocProcessing, "")
}

// Complete closes a processing request as completed.
func (s *documentsServiceImpl) Complete(ctx context.Context, id int64, notes string) (*dto.DocumentRequestView, error) {
	return s.process(ctx, id, models.DocCompleted, notes)
}

// process applies one workflow transition. Illegal transitions come back as
// a conflict with the server's explanation.
func (s *documentsServiceImpl) process(ctx context.Context, id int64, status models.DocumentStatus, notes string) (*dto.DocumentRequestView, error) {
	s.logger.Debug().Int64("requestId", id).Str("status", string(status)).Msg("Processing document request")

	var req models.DocumentRequest
	err := s.api.Patch(ctx, fmt.Sprintf("/documents/%d", id), &models.ProcessDocumentRequest{
		Status: status,
		Notes:  notes,
	}, &req)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Forbidden: "Only administrators can process document requests",
			NotFound:  "Document request not found",
		})
	}

	view := dto.ToDocumentRequestView(&req)
	return &view, nil
}
