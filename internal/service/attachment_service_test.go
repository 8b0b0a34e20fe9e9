package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/config"
	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/service"
	"billbook/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "ap-south-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 1,
		PresignExpiry: 3600,
	}
}

// multipartFile builds a real multipart file and header around content.
func multipartFile(filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", "application/octet-stream")
	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

func pdfBytes() []byte {
	return []byte("%PDF-1.4 scanned purchase bill from the supplier")
}

type attachmentDeps struct {
	attRepo *mocks.MockAttachmentRepo
	docRepo *mocks.MockDocumentRepo
	storage *mocks.MockObjectStorage
	svc     service.AttachmentService
}

func newAttachmentDeps() *attachmentDeps {
	cfg := testS3Config()
	d := &attachmentDeps{
		attRepo: new(mocks.MockAttachmentRepo),
		docRepo: new(mocks.MockDocumentRepo),
		storage: new(mocks.MockObjectStorage),
	}
	d.svc = service.NewAttachmentService(d.attRepo, d.docRepo, d.storage, &cfg)
	return d
}

func TestAttachmentService_Upload_Success(t *testing.T) {
	d := newAttachmentDeps()
	companyID := uuid.New()
	doc := &domain.Document{ID: uuid.New(), DocumentNumber: "PUR-0003"}
	file, header := multipartFile("bill.pdf", pdfBytes())

	d.docRepo.On("GetByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	d.attRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" &&
			strings.HasPrefix(in.Key, "companies/"+companyID.String()+"/documents/"+doc.ID.String()+"/") &&
			strings.HasSuffix(in.Key, ".pdf") &&
			in.ContentType == "application/pdf" &&
			in.Metadata["document-number"] == "PUR-0003"
	})).Return(&port.UploadOutput{Location: "s3://test-bucket/x"}, nil)
	d.attRepo.On("UpdateStatus", mock.Anything, companyID, mock.Anything, domain.FileStatusUploaded).Return(nil)

	att, err := d.svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID:  companyID,
		DocumentID: doc.ID,
		UploadedBy: uuid.New(),
		File:       file,
		Header:     header,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FileStatusUploaded, att.Status)
	assert.Equal(t, domain.FileTypePDF, att.FileType)
	assert.Equal(t, "bill.pdf", att.OriginalName)
	d.storage.AssertExpectations(t)
}

func TestAttachmentService_Upload_UnsupportedExtension(t *testing.T) {
	d := newAttachmentDeps()
	file, header := multipartFile("bill.docx", pdfBytes())

	_, err := d.svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID: uuid.New(), DocumentID: uuid.New(), File: file, Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestAttachmentService_Upload_ContentMismatch(t *testing.T) {
	d := newAttachmentDeps()
	file, header := multipartFile("bill.pdf", []byte("just some plain text pretending to be a pdf"))

	_, err := d.svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID: uuid.New(), DocumentID: uuid.New(), File: file, Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	d.docRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_TooLarge(t *testing.T) {
	d := newAttachmentDeps()
	file, header := multipartFile("bill.pdf", append(pdfBytes(), bytes.Repeat([]byte{' '}, 2*1024*1024)...))

	_, err := d.svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID: uuid.New(), DocumentID: uuid.New(), File: file, Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestAttachmentService_Upload_StorageFailure(t *testing.T) {
	d := newAttachmentDeps()
	companyID := uuid.New()
	doc := &domain.Document{ID: uuid.New()}
	file, header := multipartFile("bill.pdf", pdfBytes())

	d.docRepo.On("GetByID", mock.Anything, companyID, doc.ID).Return(doc, nil)
	d.attRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	d.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))
	d.attRepo.On("UpdateStatus", mock.Anything, companyID, mock.Anything, domain.FileStatusFailed).Return(nil)

	_, err := d.svc.Upload(context.Background(), service.AttachmentUploadInput{
		CompanyID: companyID, DocumentID: doc.ID, File: file, Header: header,
	})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	d.attRepo.AssertExpectations(t)
}

func TestAttachmentService_GetDownloadURL(t *testing.T) {
	d := newAttachmentDeps()
	companyID := uuid.New()
	att := &domain.Attachment{ID: uuid.New(), S3Bucket: "test-bucket", S3Key: "k"}

	d.attRepo.On("GetByID", mock.Anything, companyID, att.ID).Return(att, nil)
	d.storage.On("GetPresignedURL", mock.Anything, "test-bucket", "k", int64(3600)).Return("https://signed", nil)

	url, err := d.svc.GetDownloadURL(context.Background(), companyID, att.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)
}

func TestAttachmentService_Delete(t *testing.T) {
	d := newAttachmentDeps()
	companyID := uuid.New()
	att := &domain.Attachment{ID: uuid.New(), S3Bucket: "test-bucket", S3Key: "k"}

	d.attRepo.On("GetByID", mock.Anything, companyID, att.ID).Return(att, nil)
	d.storage.On("Delete", mock.Anything, "test-bucket", "k").Return(nil)
	d.attRepo.On("Delete", mock.Anything, companyID, att.ID).Return(nil)

	require.NoError(t, d.svc.Delete(context.Background(), companyID, att.ID))
	d.attRepo.AssertExpectations(t)
}
