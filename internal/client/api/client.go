package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/shiftsync/pkg/api"
)

// NodeIDHeader заголовок с идентификатором узла. Сервер использует
// его для rate limiting до разбора тела запроса.
const NodeIDHeader = "X-Sync-Node-ID"

// ServerError ошибка протокола с машиночитаемым кодом сервера.
type ServerError struct {
	Code    string
	Message string
	Status  int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d, %s): %s", e.Status, e.Code, e.Message)
}

// IsResyncRequired сообщает, потребовал ли сервер полный resync.
func IsResyncRequired(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Code == api.ErrCodeResyncRequired
}

// IsBatchTooLarge сообщает, отклонил ли сервер батч по размеру.
func IsBatchTooLarge(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Code == api.ErrCodeBatchTooLarge
}

// IsUnknownNode сообщает, что сервер не знает этот узел и требуется
// повторная инициализация сессии.
func IsUnknownNode(err error) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Code == api.ErrCodeUnknownNode
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	nodeID     string
}

// NewClient создает новый API клиент
func NewClient(baseURL, nodeID string) *Client {
	return &Client{
		baseURL: baseURL,
		nodeID:  nodeID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Initialize регистрирует узел на сервере и возвращает его векторные часы
func (c *Client) Initialize(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error) {
	var resp api.InitializeResponse
	err := c.doRequest(ctx, "POST", "/api/v1/sync/initialize", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("initialize request failed: %w", err)
	}
	return &resp, nil
}

// Synchronize отправляет батч операций и возвращает слитое состояние
func (c *Client) Synchronize(ctx context.Context, req api.SynchronizeRequest) (*api.SynchronizeResponse, error) {
	var resp api.SynchronizeResponse
	err := c.doRequest(ctx, "POST", "/api/v1/sync/synchronize", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("synchronize request failed: %w", err)
	}
	return &resp, nil
}

// GetState запрашивает снимок состояния узла с сервера
func (c *Client) GetState(ctx context.Context, nodeID string) (*api.SyncState, error) {
	var resp api.SyncState
	url := fmt.Sprintf("/api/v1/sync/state/%s", nodeID)
	err := c.doRequest(ctx, "GET", url, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("get state request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.nodeID != "" {
		req.Header.Set(NodeIDHeader, c.nodeID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &ServerError{
				Status:  resp.StatusCode,
				Code:    errResp.Code,
				Message: errResp.Error,
			}
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
