package webex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// UploadRequest describes one greeting upload.
type UploadRequest struct {
	// OrgID is the Webex identifier of the org.
	OrgID string
	// LocationID is the Webex identifier of the owning location.
	LocationID string
	// AutoAttendantID is the Webex identifier of the auto-attendant.
	AutoAttendantID string
	// Business selects the business hours greeting; false targets the after
	// hours greeting.
	Business bool
	// Path is the local path of the WAV file to upload.
	Path string
}

// UploadError is returned when the provisioning API rejects a greeting
// upload.
type UploadError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Detail is the response body, truncated.
	Detail string
}

func (e *UploadError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("greeting upload failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("greeting upload failed: status %d: %s", e.StatusCode, e.Detail)
}

// UploadGreeting uploads a WAV greeting via the provisioning API action
// endpoint. The endpoint addresses entities by UUID, so the opaque Webex
// identifiers are decoded first.
func (c *apiClient) UploadGreeting(ctx context.Context, req UploadRequest) error {
	orgUUID, err := DecodeUUID(req.OrgID)
	if err != nil {
		return err
	}
	locationUUID, err := DecodeUUID(req.LocationID)
	if err != nil {
		return err
	}
	aaUUID, err := DecodeUUID(req.AutoAttendantID)
	if err != nil {
		return err
	}

	action := "afterhoursgreetingupload"
	if req.Business {
		action = "businessgreetingupload"
	}
	uploadURL := fmt.Sprintf(
		"%s/api/v1/customers/%s/locations/%s/features/autoattendants/%s/actions/%s/invoke?customGreetingEnabled=true",
		c.cpapiBase, orgUUID, locationUUID, aaUUID, action)

	body, contentType, err := greetingForm(req.Path)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("greeting upload: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UploadError{
			StatusCode: resp.StatusCode,
			Detail:     readDetail(resp.Body),
		}
	}
	return nil
}

// greetingForm builds the multipart body with the single "file" field the
// action endpoint expects, typed audio/wav.
func greetingForm(path string) (io.Reader, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open greeting file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(path)))
	header.Set("Content-Type", "audio/wav")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create form field: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("read greeting file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
