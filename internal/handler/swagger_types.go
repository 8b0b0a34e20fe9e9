package handler

import (
	"time"

	"github.com/google/uuid"

	"billbook/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	CompanySlug string `json:"company_slug" binding:"required" example:"sharma-traders"`
	Email       string `json:"email" binding:"required" example:"owner@sharmatraders.in"`
	Password    string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// RegisterRequest represents the company registration request body.
type RegisterRequest struct {
	CompanyName string `json:"company_name" binding:"required" example:"Sharma Traders"`
	CompanySlug string `json:"company_slug" binding:"required" example:"sharma-traders"`
	GSTIN       string `json:"gstin" example:"27AAPFU0939F1ZV"`
	HomeState   string `json:"home_state" example:"Maharashtra"`
	Address     string `json:"address" example:"12 MG Road, Pune"`
	Email       string `json:"email" binding:"required" example:"owner@sharmatraders.in"`
	Password    string `json:"password" binding:"required" example:"securepassword123"`
	FullName    string `json:"full_name" binding:"required" example:"Ravi Sharma"`
}

// DocumentLineRequest documents one line of a document form.
type DocumentLineRequest struct {
	ItemID          *uuid.UUID `json:"item_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name            string     `json:"name" example:"Basmati Rice 5kg"`
	HSN             string     `json:"hsn" example:"1006"`
	Unit            string     `json:"unit" example:"BAG"`
	Quantity        string     `json:"quantity" example:"2"`
	UnitRate        string     `json:"unit_rate" example:"500"`
	DiscountPercent string     `json:"discount_percent" example:"10"`
	TaxRateLabel    string     `json:"tax_rate_label" example:"GST 18%"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// SessionResponse describes the authenticated caller.
type SessionResponse struct {
	CompanyID uuid.UUID       `json:"company_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	UserID    uuid.UUID       `json:"user_id" example:"770e8400-e29b-41d4-a716-446655440002"`
	Email     string          `json:"email" example:"owner@sharmatraders.in"`
	Role      domain.UserRole `json:"role" example:"admin"`
	HomeState string          `json:"home_state" example:"Maharashtra"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// AttachmentWithDownloadURL represents an attachment with its download URL.
type AttachmentWithDownloadURL struct {
	Attachment  *domain.Attachment `json:"attachment"`
	DownloadURL string             `json:"download_url" example:"https://s3.amazonaws.com/billbook-attachments/...?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
