package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// AttachmentHandler handles scanned bill and receipt uploads.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload handles POST /api/v1/documents/:id/attachments
// @Summary Attach a file to a document
// @Description Upload a PDF, JPG or PNG against a document
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param file formData file true "File to upload (PDF, JPG, or PNG)"
// @Success 201 {object} Response{data=domain.Attachment} "Uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /documents/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	docID, ok := pathID(c, "id", "document")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	att, err := h.attachmentService.Upload(c.Request.Context(), service.AttachmentUploadInput{
		CompanyID:  s.CompanyID,
		DocumentID: docID,
		UploadedBy: s.UserID,
		File:       file,
		Header:     header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, att)
}

// ListByDocument handles GET /api/v1/documents/:id/attachments
// @Summary List a document's attachments
// @Tags attachments
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=[]domain.Attachment} "Attachments"
// @Security BearerAuth
// @Router /documents/{id}/attachments [get]
func (h *AttachmentHandler) ListByDocument(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	docID, ok := pathID(c, "id", "document")
	if !ok {
		return
	}

	atts, err := h.attachmentService.ListByDocument(c.Request.Context(), s.CompanyID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, atts)
}

// GetByID handles GET /api/v1/attachments/:id
// @Summary Get an attachment
// @Description Attachment metadata with a presigned download URL
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=AttachmentWithDownloadURL} "Attachment"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /attachments/{id} [get]
func (h *AttachmentHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	att, err := h.attachmentService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	url, err := h.attachmentService.GetDownloadURL(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, AttachmentWithDownloadURL{Attachment: att, DownloadURL: url})
}

// Delete handles DELETE /api/v1/attachments/:id
// @Summary Delete an attachment
// @Tags attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 403 {object} ErrorResponseBody "Admin only"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "attachment")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "attachment deleted"})
}
