// Package uploader is the submitting side of the intake flow: it drives
// initiate -> upload parts -> finalize for each selected file against the
// intake API, then posts the finished form. Parts and files are transferred
// strictly in sequence; the first failure aborts the whole submission.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"athlete-intake/internal/domain/dto"
	consts "athlete-intake/pkg/constants"
	"athlete-intake/pkg/file"
	"athlete-intake/pkg/helper"
)

// ProgressFunc receives fractional progress per file after each part.
type ProgressFunc func(fileID string, fraction float64)

type Client struct {
	BaseURL    string
	HTTP       *http.Client
	OnProgress ProgressFunc

	mu     sync.Mutex
	states map[string]string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Minute},
		states:  make(map[string]string),
	}
}

// Result is what one finished file upload leaves behind.
type Result struct {
	Key     string
	FileURL string
}

// State reports the upload state for a file identity, or "pending" when the
// file has not been touched yet.
func (c *Client) State(fileID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.states[fileID]; ok {
		return s
	}
	return consts.StatusPending
}

func (c *Client) setState(fileID, state string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.states[fileID] = state
}

// fileIdentity keys progress and state per file. Content hashing keeps two
// selections with the same name and size apart; when hashing fails the
// name is used as-is.
func fileIdentity(path string) string {
	if id, err := file.ContentID(path); err == nil {
		return id
	}
	return filepath.Base(path)
}

// UploadFile transfers one file: initiate, PUT each part to its presigned
// URL in order, finalize. Any non-success part response or missing ETag is
// fatal for the file; no retry, no resume, and no automatic abort of the
// opened multipart session.
func (c *Client) UploadFile(ctx context.Context, path string) (*Result, error) {
	fileID := fileIdentity(path)

	fail := func(err error) (*Result, error) {
		c.setState(fileID, consts.StatusFailed)
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return fail(fmt.Errorf("cannot open %s: %w", path, err))
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fail(fmt.Errorf("cannot stat %s: %w", path, err))
	}
	size := stat.Size()
	name := filepath.Base(path)

	c.setState(fileID, consts.StatusInitiating)

	var session dto.CreateMultipartResponse
	err = c.postJSON(ctx, "/upload/create-multipart", dto.CreateMultipartRequest{
		Filename:    name,
		ContentType: helper.MimeTypeFromExtension(name),
		Size:        size,
	}, &session)
	if err != nil {
		return fail(fmt.Errorf("initiate upload for %s: %w", name, err))
	}
	if len(session.URLs) == 0 || session.PartSize <= 0 {
		return fail(fmt.Errorf("initiate upload for %s: empty session", name))
	}

	c.setState(fileID, consts.StatusUploading)

	total := len(session.URLs)
	parts := make([]dto.CompletedPart, 0, total)
	for i, url := range session.URLs {
		start := int64(i) * session.PartSize
		length := session.PartSize
		if start+length > size {
			length = size - start
		}

		// ReadFull so a file shrunk after Stat fails the part instead of
		// silently uploading zero-padded bytes.
		buf := make([]byte, length)
		if _, err := io.ReadFull(io.NewSectionReader(f, start, length), buf); err != nil {
			return fail(fmt.Errorf("read part %d of %s: %w", i+1, name, err))
		}

		etag, err := c.putPart(ctx, url, buf)
		if err != nil {
			return fail(fmt.Errorf("upload part %d of %s: %w", i+1, name, err))
		}

		parts = append(parts, dto.CompletedPart{
			ETag:       etag,
			PartNumber: int32(i + 1),
		})

		if c.OnProgress != nil {
			c.OnProgress(fileID, float64(i+1)/float64(total))
		}
	}

	c.setState(fileID, consts.StatusCompleting)

	var completed dto.CompleteMultipartResponse
	err = c.postJSON(ctx, "/upload/complete-multipart", dto.CompleteMultipartRequest{
		Key:      session.Key,
		UploadID: session.UploadID,
		Parts:    parts,
	}, &completed)
	if err != nil {
		return fail(fmt.Errorf("complete upload for %s: %w", name, err))
	}

	c.setState(fileID, consts.StatusCompleted)
	return &Result{Key: completed.Key, FileURL: completed.FileURL}, nil
}

// Abort asks the server to discard an in-progress multipart upload. The
// submission flow never calls it on its own; it is an explicit operation.
func (c *Client) Abort(ctx context.Context, key, uploadID string) error {
	var resp dto.AbortMultipartResponse
	return c.postJSON(ctx, "/upload/abort-multipart", dto.AbortMultipartRequest{
		Key:      key,
		UploadID: uploadID,
	}, &resp)
}

func (c *Client) putPart(ctx context.Context, url string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("part transfer returned %d", resp.StatusCode)
	}

	etag := resp.Header.Get("ETag")
	if etag == "" {
		return "", fmt.Errorf("part transfer response has no ETag")
	}
	return etag, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp dto.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
