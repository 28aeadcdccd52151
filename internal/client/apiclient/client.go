// Package apiclient talks to the materials API over HTTP/JSON.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	request "bitacora_materiales/internal/adapter/http/dto/request"
	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/apierr"
	"bitacora_materiales/internal/domain/entities"

	"go.uber.org/zap"
)

const DefaultTimeout = 15 * time.Second

type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		log:     zap.L().Named("api.client"),
	}
}

// envelope covers every response shape the API produces.
type envelope struct {
	OK    *bool           `json:"ok"`
	Code  string          `json:"code"`
	Error string          `json:"error"`
	Item  json.RawMessage `json:"item"`
	Items json.RawMessage `json:"items"`
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodGet, "/api/ping", nil, "")
	return err
}

func (c *Client) SearchCatalog(ctx context.Context, origin, term string) ([]entities.CatalogItem, error) {
	q := url.Values{}
	q.Set("origen", origin)
	q.Set("q", term)
	path := "/api/materiales/buscar?" + q.Encode()

	raw, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var rows []response.CatalogItemResponse
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, &apierr.TransportError{Op: "GET " + path, Err: err}
		}
	} else {
		env, err := c.decode(http.MethodGet, path, http.StatusOK, raw)
		if err != nil {
			return nil, err
		}
		if err := unmarshalOptional(env.Items, &rows); err != nil {
			return nil, &apierr.TransportError{Op: "GET " + path, Err: err}
		}
	}

	items := make([]entities.CatalogItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, entities.CatalogItem{
			Codigo:       r.Codigo,
			Descripcion:  r.Descripcion,
			Unidad:       r.Unidad,
			NombreSimple: r.NombreSimple,
			Categoria:    r.Categoria,
			Subcategoria: r.Subcategoria,
			Costo:        r.Costo,
			Activo:       true,
		})
	}
	return items, nil
}

func (c *Client) GetBitacora(ctx context.Context, id string) (response.BitacoraResponse, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/bitacoras/"+url.PathEscape(id), nil, "")
	if err != nil {
		return response.BitacoraResponse{}, err
	}
	var b response.BitacoraResponse
	if err := unmarshalOptional(env.Item, &b); err != nil {
		return response.BitacoraResponse{}, &apierr.TransportError{Op: "GET bitacora", Err: err}
	}
	return b, nil
}

func (c *Client) ListMaterials(ctx context.Context, bitacoraID string) ([]response.MaterialResponse, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/materiales/listar/"+url.PathEscape(bitacoraID), nil, "")
	if err != nil {
		return nil, err
	}
	items := []response.MaterialResponse{}
	if err := unmarshalOptional(env.Items, &items); err != nil {
		return nil, &apierr.TransportError{Op: "GET listar", Err: err}
	}
	return items, nil
}

func (c *Client) SaveMaterial(ctx context.Context, req request.SaveMaterialRequest) (response.MaterialResponse, error) {
	env, err := c.call(ctx, http.MethodPost, "/api/materiales/guardar", req, "")
	if err != nil {
		return response.MaterialResponse{}, err
	}
	var m response.MaterialResponse
	if err := unmarshalOptional(env.Item, &m); err != nil {
		return response.MaterialResponse{}, &apierr.TransportError{Op: "POST guardar", Err: err}
	}
	return m, nil
}

func (c *Client) SaveBatch(ctx context.Context, req request.SaveBatchRequest) ([]response.MaterialResponse, error) {
	env, err := c.call(ctx, http.MethodPost, "/api/materiales/guardar-lote", req, "")
	if err != nil {
		return nil, err
	}
	items := []response.MaterialResponse{}
	if err := unmarshalOptional(env.Items, &items); err != nil {
		return nil, &apierr.TransportError{Op: "POST guardar-lote", Err: err}
	}
	return items, nil
}

func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/api/materiales/borrar/"+url.PathEscape(id), nil, "")
	return err
}

// ImportCatalog uploads an xlsx workbook. A partial import returns the
// report together with a BusinessError.
func (c *Client) ImportCatalog(ctx context.Context, origin, filename string, workbook io.Reader) (response.ImportReportResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return response.ImportReportResponse{}, err
	}
	if _, err := io.Copy(part, workbook); err != nil {
		return response.ImportReportResponse{}, fmt.Errorf("read workbook: %w", err)
	}
	if err := mw.Close(); err != nil {
		return response.ImportReportResponse{}, err
	}

	path := "/api/catalogo/importar?" + url.Values{"origen": {origin}}.Encode()
	raw, err := c.doRaw(ctx, http.MethodPost, path, &body, mw.FormDataContentType())
	if err != nil {
		return response.ImportReportResponse{}, err
	}

	var res response.ImportResponse
	if err := json.Unmarshal(raw.body, &res); err != nil {
		return response.ImportReportResponse{}, &apierr.TransportError{Op: "POST " + path, Err: err}
	}
	if raw.status == http.StatusMultiStatus {
		return res.Report, &apierr.BusinessError{Status: raw.status, Code: "PARTIAL_IMPORT", Message: res.Error}
	}
	if _, err := c.decode(http.MethodPost, path, raw.status, raw.body); err != nil {
		return response.ImportReportResponse{}, err
	}
	return res.Report, nil
}

func (c *Client) call(ctx context.Context, method, path string, payload any, contentType string) (envelope, error) {
	raw, err := c.do(ctx, method, path, payload, contentType)
	if err != nil {
		return envelope{}, err
	}
	return c.decode(method, path, http.StatusOK, raw)
}

// do returns the body of a 2xx response. Non-2xx responses are decoded into
// BusinessError when they carry a message, TransportError otherwise.
func (c *Client) do(ctx context.Context, method, path string, payload any, contentType string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	raw, err := c.doRaw(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	if raw.status < 200 || raw.status > 299 {
		_, derr := c.decode(method, path, raw.status, raw.body)
		return nil, derr
	}
	return raw.body, nil
}

type rawResponse struct {
	status int
	body   []byte
}

func (c *Client) doRaw(ctx context.Context, method, path string, body io.Reader, contentType string) (rawResponse, error) {
	op := method + " " + path
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return rawResponse{}, &apierr.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("op", op), zap.Error(err))
		return rawResponse{}, &apierr.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawResponse{}, &apierr.TransportError{Op: op, Err: err}
	}
	c.log.Debug("request done", zap.String("op", op), zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))
	return rawResponse{status: resp.StatusCode, body: b}, nil
}

// decode reads the {ok, error} envelope. A false ok or a non-2xx status
// with a message is a BusinessError.
func (c *Client) decode(method, path string, status int, raw []byte) (envelope, error) {
	op := method + " " + path
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if status < 200 || status > 299 {
			return envelope{}, &apierr.TransportError{Op: op, Err: fmt.Errorf("status %d", status)}
		}
		return envelope{}, &apierr.TransportError{Op: op, Err: err}
	}

	failed := (env.OK != nil && !*env.OK) || status < 200 || status > 299
	if !failed {
		return env, nil
	}
	if strings.TrimSpace(env.Error) == "" {
		return envelope{}, &apierr.TransportError{Op: op, Err: fmt.Errorf("status %d without message", status)}
	}
	if status >= 200 && status <= 299 {
		status = http.StatusUnprocessableEntity
	}
	c.log.Info("request rejected", zap.String("op", op), zap.Int("status", status), zap.String("code", env.Code), zap.String("error", env.Error))
	return envelope{}, &apierr.BusinessError{Status: status, Code: env.Code, Message: env.Error}
}

func unmarshalOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}
