package tinify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"xtinypng/internal/domain/entities"
)

// AuthUser имя пользователя для basic auth, пароль - API ключ
const AuthUser = "api"

// CompressionCountHeader заголовок со счетчиком сжатий за месяц
const CompressionCountHeader = "Compression-Count"

// Client HTTP клиент сервиса сжатия
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

// NewClient создает клиент по настройкам API
func NewClient(cfg entities.APIConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		endpoint:   cfg.Endpoint,
		userAgent:  cfg.UserAgent,
	}
}

// WithHTTPClient подменяет http.Client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// shrinkBody тело ответа на загрузку
type shrinkBody struct {
	Input *struct {
		Size int64  `json:"size"`
		Type string `json:"type"`
	} `json:"input"`
	Output *struct {
		Size int64  `json:"size"`
		Type string `json:"type"`
		URL  string `json:"url"`
	} `json:"output"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Shrink загружает изображение и разбирает ответ.
// Ошибка транспорта оборачивает entities.ErrNoResponse,
// неразборчивый ответ - entities.ErrMalformedResponse.
func (c *Client) Shrink(ctx context.Context, credential entities.Credential, body io.Reader, size int64) (*entities.ShrinkResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать запрос: %w", err)
	}
	req.ContentLength = size
	req.SetBasicAuth(AuthUser, string(credential))
	c.setHeaders(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrNoResponse, err)
	}
	defer res.Body.Close()

	resp := &entities.ShrinkResponse{
		StatusCode:       res.StatusCode,
		CompressionCount: parseCompressionCount(res.Header.Get(CompressionCountHeader)),
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return resp, fmt.Errorf("%w: %v", entities.ErrNoResponse, err)
	}

	var parsed shrinkBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return resp, fmt.Errorf("%w: %v", entities.ErrMalformedResponse, err)
	}

	resp.ErrorCode = parsed.Error
	resp.Message = parsed.Message

	if res.StatusCode == http.StatusCreated {
		if parsed.Input == nil || parsed.Output == nil || parsed.Output.URL == "" {
			return resp, fmt.Errorf("%w: нет input/output в ответе", entities.ErrMalformedResponse)
		}
		resp.InputSize = parsed.Input.Size
		resp.OutputSize = parsed.Output.Size
		resp.OutputType = parsed.Output.Type
		resp.Asset = entities.RemoteAsset{
			URL:        parsed.Output.URL,
			Credential: credential,
		}
	}

	return resp, nil
}

// Fetch скачивает результат в dst. С ресайзом запрос авторизуется
// и несет {"resize": ...} в теле, без ресайза - обычный GET.
func (c *Client) Fetch(ctx context.Context, asset entities.RemoteAsset, resize entities.ResizeSpec, dst io.Writer) (int64, error) {
	var body io.Reader
	if resize.Requested() {
		payload, err := json.Marshal(map[string]entities.ResizeSpec{"resize": resize})
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset.URL, body)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать запрос: %w", err)
	}
	if resize.Requested() {
		req.SetBasicAuth(AuthUser, string(asset.Credential))
		req.Header.Set("Content-Type", "application/json")
		c.setHeaders(req)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", entities.ErrNoResponse, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, fmt.Errorf("ошибка загрузки %s, код ответа: %d", asset.URL, res.StatusCode)
	}

	n, err := io.Copy(dst, res.Body)
	if err != nil {
		return n, fmt.Errorf("ошибка чтения результата: %w", err)
	}
	return n, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("DNT", "1")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}

func parseCompressionCount(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
