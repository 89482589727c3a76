package uploader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"athlete-intake/internal/domain/dto"
	consts "athlete-intake/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIntake is an in-memory stand-in for the intake API plus the presigned
// part endpoints, so the whole submission flow can run against one server.
type fakeIntake struct {
	t        *testing.T
	partSize int64
	baseURL  string
	dropETag bool

	mu        sync.Mutex
	requests  int
	parts     map[string][]byte // "key/partNumber" -> body
	completed []dto.CompleteMultipartRequest
	submitted []dto.SubmissionRequest
}

func newFakeIntake(t *testing.T, partSize int64) (*fakeIntake, *httptest.Server) {
	f := &fakeIntake{t: t, partSize: partSize, parts: map[string][]byte{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	f.baseURL = srv.URL
	return f, srv
}

func (f *fakeIntake) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()

	switch {
	case r.URL.Path == "/upload/create-multipart":
		var req dto.CreateMultipartRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))

		key := "intake/1-" + req.Filename
		count := int((req.Size + f.partSize - 1) / f.partSize)
		urls := make([]string, count)
		for i := range urls {
			urls[i] = fmt.Sprintf("%s/part/%s/%d", f.baseURL, key, i+1)
		}
		json.NewEncoder(w).Encode(dto.CreateMultipartResponse{
			UploadID: "u-" + req.Filename,
			Key:      key,
			PartSize: f.partSize,
			URLs:     urls,
		})

	case strings.HasPrefix(r.URL.Path, "/part/"):
		require.Equal(f.t, http.MethodPut, r.Method)
		body, err := io.ReadAll(r.Body)
		require.NoError(f.t, err)

		rest := strings.TrimPrefix(r.URL.Path, "/part/")
		idx := strings.LastIndex(rest, "/")
		key, numStr := rest[:idx], rest[idx+1:]
		n, _ := strconv.Atoi(numStr)

		f.mu.Lock()
		f.parts[fmt.Sprintf("%s/%d", key, n)] = body
		f.mu.Unlock()

		if !f.dropETag {
			w.Header().Set("ETag", fmt.Sprintf(`"etag-%d"`, n))
		}
		w.WriteHeader(http.StatusOK)

	case r.URL.Path == "/upload/complete-multipart":
		var req dto.CompleteMultipartRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.completed = append(f.completed, req)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(dto.CompleteMultipartResponse{
			Ok:      true,
			FileURL: "https://cdn.example.com/" + req.Key,
			Key:     req.Key,
		})

	case r.URL.Path == "/submit":
		var req dto.SubmissionRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.submitted = append(f.submitted, req)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(dto.SubmissionResponse{Ok: true, ID: "email_1"})

	default:
		f.t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSubmitEndToEnd(t *testing.T) {
	intake, srv := newFakeIntake(t, 4)

	// 10 bytes at partSize 4 -> 3 parts
	video := writeTempFile(t, "clip.mp4", "0123456789")
	image := writeTempFile(t, "headshot.jpg", "img")

	client := New(srv.URL)
	var fractions []float64
	client.OnProgress = func(_ string, fraction float64) {
		fractions = append(fractions, fraction)
	}

	outcome, err := client.Submit(context.Background(), &Submission{
		Form:           map[string]string{"playerFirstName": "Jane"},
		ImagePaths:     []string{image},
		VideoPaths:     []string{video},
		RequiredFields: []string{"playerFirstName"},
		RequireImage:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/intake/1-headshot.jpg"}, outcome.ImageURLs)
	assert.Equal(t, []string{"https://cdn.example.com/intake/1-clip.mp4"}, outcome.VideoURLs)
	assert.Equal(t, "email_1", outcome.ID)

	// video was sliced into 3 parts with the right byte ranges
	assert.Equal(t, []byte("0123"), intake.parts["intake/1-clip.mp4/1"])
	assert.Equal(t, []byte("4567"), intake.parts["intake/1-clip.mp4/2"])
	assert.Equal(t, []byte("89"), intake.parts["intake/1-clip.mp4/3"])

	// finalize carried one ETag per part, in order
	require.Len(t, intake.completed, 2)
	videoComplete := intake.completed[1]
	require.Len(t, videoComplete.Parts, 3)
	for i, p := range videoComplete.Parts {
		assert.Equal(t, int32(i+1), p.PartNumber)
		assert.Equal(t, fmt.Sprintf(`"etag-%d"`, i+1), p.ETag)
	}

	// submitted payload carries the form and both URL lists
	require.Len(t, intake.submitted, 1)
	assert.Equal(t, "Jane", intake.submitted[0].Form["playerFirstName"])
	assert.Len(t, intake.submitted[0].ImageURLs, 1)
	assert.Len(t, intake.submitted[0].VideoURLs, 1)

	// image is 1 part, video 3 parts; fractions are per file
	assert.Equal(t, []float64{1, 1.0 / 3, 2.0 / 3, 1}, fractions)
}

func TestSubmitValidatesBeforeAnyNetworkCall(t *testing.T) {
	intake, srv := newFakeIntake(t, 4)
	client := New(srv.URL)

	_, err := client.Submit(context.Background(), &Submission{
		Form:           map[string]string{"playerFirstName": "Jane"},
		RequiredFields: []string{"playerFirstName"},
		RequireImage:   true, // no image selected
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image")
	assert.Zero(t, intake.requests, "validation failure must not reach the network")

	_, err = client.Submit(context.Background(), &Submission{
		Form:           map[string]string{"playerFirstName": "  "},
		RequiredFields: []string{"playerFirstName"},
	})
	require.Error(t, err)
	assert.Zero(t, intake.requests)
}

func TestUploadFileFailsOnMissingETag(t *testing.T) {
	intake, srv := newFakeIntake(t, 4)
	intake.dropETag = true

	video := writeTempFile(t, "clip.mp4", "0123456789")
	client := New(srv.URL)

	_, err := client.UploadFile(context.Background(), video)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ETag")
	assert.Len(t, intake.completed, 0, "nothing may be finalized after a failed part")
}

func TestUploadFileFailsWhenFileShrinksMidUpload(t *testing.T) {
	intake, srv := newFakeIntake(t, 4)
	video := writeTempFile(t, "clip.mp4", "0123456789")

	client := New(srv.URL)
	// First progress callback fires after part 1; shrinking the file here
	// leaves part 2 short, which must fail instead of padding with zeros.
	client.OnProgress = func(string, float64) {
		require.NoError(t, os.Truncate(video, 2))
	}

	_, err := client.UploadFile(context.Background(), video)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read part 2")
	assert.Len(t, intake.completed, 0, "nothing may be finalized after a failed part")
}

func TestUploadFileStates(t *testing.T) {
	_, srv := newFakeIntake(t, 4)
	video := writeTempFile(t, "clip.mp4", "0123456789")

	client := New(srv.URL)
	var id string
	client.OnProgress = func(fileID string, _ float64) { id = fileID }

	assert.Equal(t, consts.StatusPending, client.State("unknown"))

	_, err := client.UploadFile(context.Background(), video)
	require.NoError(t, err)
	assert.Equal(t, consts.StatusCompleted, client.State(id))
}
