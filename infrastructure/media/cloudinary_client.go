package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"videotube/domain/apperror"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

const defaultUploadURL = "https://api.cloudinary.com/v1_1"

// Config represents the media backend credentials.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	UploadURL string
}

// Client talks to a Cloudinary-compatible upload API over signed
// multipart requests.
type Client struct {
	httpClient *http.Client
	config     *Config
	now        func() time.Time
}

// NewClient creates a new media client.
func NewClient(config *Config) repository.IMedia {
	if config.UploadURL == "" {
		config.UploadURL = defaultUploadURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		config:     config,
		now:        time.Now,
	}
}

// signedParams are the request fields included in the signature, sorted
// alphabetically by the encoder before signing.
type signedParams struct {
	PublicID  string `url:"public_id"`
	Timestamp int64  `url:"timestamp"`
}

func (c *Client) sign(p signedParams) (string, error) {
	values, err := query.Values(p)
	if err != nil {
		return "", apperror.Wrap(err, apperror.KindUpstream, "encoding signature params failed")
	}
	sum := sha1.Sum([]byte(values.Encode() + c.config.APISecret))
	return hex.EncodeToString(sum[:]), nil
}

type uploadResponse struct {
	SecureURL string  `json:"secure_url"`
	Duration  float64 `json:"duration"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Store uploads the file and returns its served URL plus the duration the
// backend extracted (zero for images).
func (c *Client) Store(ctx context.Context, file *multipart.FileHeader, resourceType string) (*model.MediaAsset, error) {
	src, err := file.Open()
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindInvalidArgument, "opening uploaded file failed")
	}
	defer src.Close()

	params := signedParams{
		PublicID:  uuid.NewString(),
		Timestamp: c.now().Unix(),
	}
	signature, err := c.sign(params)
	if err != nil {
		return nil, err
	}

	body := &strings.Builder{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"api_key":   c.config.APIKey,
		"public_id": params.PublicID,
		"timestamp": fmt.Sprintf("%d", params.Timestamp),
		"signature": signature,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, apperror.Wrap(err, apperror.KindUpstream, "building upload request failed")
		}
	}
	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "building upload request failed")
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "reading uploaded file failed")
	}
	if err := writer.Close(); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "building upload request failed")
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.config.UploadURL, c.config.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "building upload request failed")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("media: upload request failed")
		return nil, apperror.Wrap(err, apperror.KindUpstream, "media upload failed")
	}
	defer res.Body.Close()

	var uploaded uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&uploaded); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUpstream, "decoding upload response failed")
	}
	if res.StatusCode != http.StatusOK {
		logger.GetLogger().
			WithField("status", res.StatusCode).
			WithField("message", uploaded.Error.Message).
			Error("media: upload rejected")
		return nil, apperror.Newf(apperror.KindUpstream, "media upload rejected: %s", uploaded.Error.Message)
	}

	return &model.MediaAsset{URL: uploaded.SecureURL, Duration: uploaded.Duration}, nil
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Remove deletes the asset behind assetURL. An already-absent asset is not
// an error.
func (c *Client) Remove(ctx context.Context, assetURL string, resourceType string) error {
	publicID := publicIDFromURL(assetURL)
	if publicID == "" {
		return apperror.New(apperror.KindInvalidArgument, "media url has no public id")
	}

	params := signedParams{
		PublicID:  publicID,
		Timestamp: c.now().Unix(),
	}
	signature, err := c.sign(params)
	if err != nil {
		return err
	}

	form := strings.NewReader(fmt.Sprintf(
		"api_key=%s&public_id=%s&timestamp=%d&signature=%s",
		c.config.APIKey, publicID, params.Timestamp, signature,
	))

	endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.config.UploadURL, c.config.CloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, form)
	if err != nil {
		return apperror.Wrap(err, apperror.KindUpstream, "building destroy request failed")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("media: destroy request failed")
		return apperror.Wrap(err, apperror.KindUpstream, "media removal failed")
	}
	defer res.Body.Close()

	var destroyed destroyResponse
	if err := json.NewDecoder(res.Body).Decode(&destroyed); err != nil {
		return apperror.Wrap(err, apperror.KindUpstream, "decoding destroy response failed")
	}
	if destroyed.Result != "ok" && destroyed.Result != "not found" {
		logger.GetLogger().
			WithField("result", destroyed.Result).
			WithField("publicId", publicID).
			Error("media: destroy rejected")
		return apperror.Newf(apperror.KindUpstream, "media removal rejected: %s", destroyed.Result)
	}
	return nil
}

// publicIDFromURL recovers the public id the upload assigned: the last
// path segment minus its extension.
func publicIDFromURL(assetURL string) string {
	base := path.Base(assetURL)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
