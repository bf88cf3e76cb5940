package mockapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// documentTransitions is the workflow: pending splits into approved or
// rejected, approved moves to processing, processing closes as completed.
// Cancellation is a separate, requester-only path.
var documentTransitions = map[models.DocumentStatus][]models.DocumentStatus{
	models.DocPending:    {models.DocApproved, models.DocRejected},
	models.DocApproved:   {models.DocProcessing},
	models.DocProcessing: {models.DocCompleted},
}

func transitionAllowed(from, to models.DocumentStatus) bool {
	for _, next := range documentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s *Server) handleListMyDocuments(c *gin.Context) {
	user := currentUser(c)

	s.store.mu.Lock()
	list := s.collectDocuments(func(d *models.DocumentRequest) bool {
		return d.UserID == user.ID
	})
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleListAllDocuments(c *gin.Context) {
	statusFilter := models.DocumentStatus(c.Query("status"))

	s.store.mu.Lock()
	list := s.collectDocuments(func(d *models.DocumentRequest) bool {
		return statusFilter == "" || d.Status == statusFilter
	})
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, list)
}

// collectDocuments filters and sorts requests, newest first. Callers must
// hold mu.
func (s *Server) collectDocuments(keep func(*models.DocumentRequest) bool) []models.DocumentRequest {
	list := make([]models.DocumentRequest, 0)
	for _, d := range s.store.documents {
		if !keep(d) {
			continue
		}
		out := *d
		if u, ok := s.store.users[d.UserID]; ok {
			cp := *u
			out.User = &cp
		}
		list = append(list, out)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func (s *Server) handleCreateDocument(c *gin.Context) {
	user := currentUser(c)

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid document request payload")
		return
	}

	switch req.DocumentType {
	case models.DocTranscript, models.DocCertificate, models.DocDiploma,
		models.DocRecommendationLetter, models.DocEnrollmentVerification:
	default:
		fail(c, http.StatusUnprocessableEntity, "Unknown document type")
		return
	}

	now := time.Now()
	doc := &models.DocumentRequest{
		UserID:       user.ID,
		DocumentType: req.DocumentType,
		Purpose:      req.Purpose,
		Status:       models.DocPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.store.mu.Lock()
	doc.ID = s.store.nextID("document")
	s.store.documents[doc.ID] = doc
	out := *doc
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, out)
}

func (s *Server) handleCancelDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doc, exists := s.store.documents[id]
	if !exists || doc.UserID != user.ID {
		fail(c, http.StatusNotFound, "Document request not found")
		return
	}
	if doc.Status != models.DocPending {
		fail(c, http.StatusConflict, "Only pending requests can be cancelled")
		return
	}
	doc.Status = models.DocCancelled
	doc.UpdatedAt = time.Now()
	c.Status(http.StatusNoContent)
}

// handleProcessDocument applies one admin workflow transition, recording who
// processed the request and when.
func (s *Server) handleProcessDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	admin := currentUser(c)

	var req models.ProcessDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid processing payload")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	doc, exists := s.store.documents[id]
	if !exists {
		fail(c, http.StatusNotFound, "Document request not found")
		return
	}
	if !transitionAllowed(doc.Status, req.Status) {
		fail(c, http.StatusConflict,
			"Cannot move request from "+string(doc.Status)+" to "+string(req.Status))
		return
	}

	now := time.Now()
	doc.Status = req.Status
	if req.Notes != "" {
		doc.Notes = req.Notes
	}
	adminID := admin.ID
	doc.ProcessedBy = &adminID
	doc.ProcessedAt = &now
	doc.UpdatedAt = now

	s.store.notify(doc.UserID, admin.ID, models.NotifAnnouncement,
		"Document request update",
		"Your "+string(doc.DocumentType)+" request is now "+string(doc.Status), doc.ID)

	out := *doc
	if u, ok := s.store.users[doc.UserID]; ok {
		cp := *u
		out.User = &cp
	}
	c.JSON(http.StatusOK, out)
}
