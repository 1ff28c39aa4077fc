package facebook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// upload posts media bytes as a multipart form to the given account
// collection and returns the raw response body.
func (c *Client) upload(ctx context.Context, collection, filename string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("source", filename)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(data); err != nil {
		return nil, err
	}
	if err = mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.accountPath(collection), nil), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// UploadImage uploads image bytes and returns the stored image's content
// hash. The hash is addressed by the filename key first, falling back to
// the first populated entry of the images collection; if neither yields a
// hash the upload fails with domain.ErrImageHashMissing.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	raw, err := c.upload(ctx, "adimages", filename, data)
	if err != nil {
		return "", err
	}
	var out struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
		Error *graphError `json:"error"`
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", &domain.CreationError{Entity: "image", Remote: string(raw)}
	}
	if out.Error != nil {
		return "", &domain.CreationError{Entity: "image", Remote: out.Error.Message}
	}
	if img, ok := out.Images[filename]; ok && img.Hash != "" {
		return img.Hash, nil
	}
	for _, img := range out.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", domain.ErrImageHashMissing
}

// UploadVideo uploads video bytes and returns the asynchronous processing
// job id. The video is not usable until VideoStatus reports it ready.
func (c *Client) UploadVideo(ctx context.Context, filename string, data []byte) (string, error) {
	raw, err := c.upload(ctx, "advideos", filename, data)
	if err != nil {
		return "", err
	}
	var out struct {
		ID    string      `json:"id"`
		Error *graphError `json:"error"`
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", &domain.CreationError{Entity: "video", Remote: string(raw)}
	}
	if out.Error != nil {
		return "", &domain.CreationError{Entity: "video", Remote: out.Error.Message}
	}
	return out.ID, nil
}

// VideoStatus checks the processing state of an uploaded video and carries
// the first rendered thumbnail URI when one exists.
func (c *Client) VideoStatus(ctx context.Context, videoID string) (port.VideoStatus, error) {
	params := url.Values{}
	params.Set("fields", "status,thumbnails")
	var out struct {
		Status struct {
			VideoStatus string `json:"video_status"`
		} `json:"status"`
		Thumbnails struct {
			Data []struct {
				URI string `json:"uri"`
			} `json:"data"`
		} `json:"thumbnails"`
	}
	if err := c.get(ctx, videoID, params, &out); err != nil {
		return port.VideoStatus{}, err
	}
	status := port.VideoStatus{Status: out.Status.VideoStatus}
	if len(out.Thumbnails.Data) > 0 {
		status.ThumbnailURI = out.Thumbnails.Data[0].URI
	}
	return status, nil
}
