package webex_test

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"aa-greeting/core/webex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orgUUID      = "11111111-2222-3333-4444-555555555555"
	locationUUID = "66666666-7777-8888-9999-aaaaaaaaaaaa"
	aaUUID       = "bbbbbbbb-cccc-dddd-eeee-ffffffffffff"
)

func sparkID(kind, uuid string) string {
	return base64.StdEncoding.EncodeToString([]byte("ciscospark://us/" + kind + "/" + uuid))
}

func writeGreetingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holiday.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVE"), 0o644))
	return path
}

func uploadRequest(path string, business bool) webex.UploadRequest {
	return webex.UploadRequest{
		OrgID:           sparkID("ORGANIZATION", orgUUID),
		LocationID:      sparkID("LOCATION", locationUUID),
		AutoAttendantID: sparkID("AUTO_ATTENDANT", aaUUID),
		Business:        business,
		Path:            path,
	}
}

func TestUploadGreeting(t *testing.T) {
	path := writeGreetingFile(t)

	var gotPath, gotQuery, gotFilename, gotPartType string
	var gotBody []byte

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1, "exactly one form field named \"file\"")
		gotFilename = files[0].Filename
		gotPartType = files[0].Header.Get("Content-Type")

		f, err := files[0].Open()
		require.NoError(t, err)
		defer f.Close()
		gotBody, err = io.ReadAll(f)
		require.NoError(t, err)
	}))

	err := client.UploadGreeting(context.Background(), uploadRequest(path, true))
	require.NoError(t, err)

	assert.Equal(t,
		"/api/v1/customers/"+orgUUID+
			"/locations/"+locationUUID+
			"/features/autoattendants/"+aaUUID+
			"/actions/businessgreetingupload/invoke",
		gotPath)
	assert.Equal(t, "customGreetingEnabled=true", gotQuery)
	assert.Equal(t, "holiday.wav", gotFilename)
	assert.Equal(t, "audio/wav", gotPartType)
	assert.Equal(t, []byte("RIFF....WAVE"), gotBody)
}

func TestUploadGreeting_AfterHoursAction(t *testing.T) {
	path := writeGreetingFile(t)

	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))

	err := client.UploadGreeting(context.Background(), uploadRequest(path, false))
	require.NoError(t, err)
	assert.Contains(t, gotPath, "/actions/afterhoursgreetingupload/invoke")
}

func TestUploadGreeting_RejectedByServer(t *testing.T) {
	path := writeGreetingFile(t)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unsupported sample rate"))
	}))

	err := client.UploadGreeting(context.Background(), uploadRequest(path, true))
	var uploadErr *webex.UploadError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, http.StatusBadRequest, uploadErr.StatusCode)
	assert.Contains(t, uploadErr.Detail, "unsupported sample rate")
}

func TestUploadGreeting_MissingFile(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for a missing local file")
	}))

	req := uploadRequest(filepath.Join(t.TempDir(), "absent.wav"), true)
	err := client.UploadGreeting(context.Background(), req)
	assert.Error(t, err)
}

func TestUploadGreeting_UndecodableID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an undecodable id")
	}))

	req := uploadRequest(writeGreetingFile(t), true)
	req.OrgID = "not base64"
	err := client.UploadGreeting(context.Background(), req)
	assert.Error(t, err)
}
