package fiscal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/infrastructure/config"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	pathEmit             = "/api/emitir-nfe"
	pathQuery            = "/api/consultar-nfe"
	pathCancel           = "/api/cancelar-nfe"
	pathInvalidate       = "/api/inutilizar-numeracao"
	pathCorrection       = "/api/carta-correcao"
	pathListCorrections  = "/api/listar-cce"
	pathCorrectionPDF    = "/api/gerar-pdf-cce"
	pathDANFE            = "/api/gerar-danfe"
	pathPreview          = "/api/espelho-danfe"
	pathEmail            = "/api/enviar-nfe-email"
	pathHealth           = "/api/health"
	pathSefazStatus      = "/api/status-sefaz"
	pathCertificate      = "/api/check-certificado"
	pathArtifactTemplate = "/api/%s"

	maxResponseBytes = 32 << 20
)

var ErrFiscalBaseURLMissing = errors.New("fiscal backend base url is required")

// CallObserver receives one observation per remote call.
type CallObserver interface {
	ObserveFiscalCall(operation, outcome string, took time.Duration)
}

// HTTPGateway talks to the fiscal backend over JSON/HTTP. Calls are rate
// limited and each one carries its own deadline on top of the caller's ctx.
type HTTPGateway struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	limiter     *rate.Limiter
	timeout     time.Duration
	emitTimeout time.Duration
	probe       time.Duration
	loc         *time.Location
	logger      *zap.Logger
	observer    CallObserver
}

var _ interfaces.IFiscalGateway = (*HTTPGateway)(nil)

type Option func(*HTTPGateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *HTTPGateway) { g.client = c }
}

func WithObserver(o CallObserver) Option {
	return func(g *HTTPGateway) { g.observer = o }
}

func WithLogger(l *zap.Logger) Option {
	return func(g *HTTPGateway) { g.logger = l }
}

func NewHTTPGateway(cfg config.FiscalConfig, opts ...Option) (*HTTPGateway, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrFiscalBaseURLMissing
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid fiscal base url: %w", err)
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("BRT", -3*60*60)
	}

	g := &HTTPGateway{
		baseURL:     base,
		apiKey:      cfg.APIKey,
		client:      &http.Client{},
		limiter:     rate.NewLimiter(limit, burst),
		timeout:     cfg.Timeout,
		emitTimeout: cfg.EmitTimeout,
		probe:       cfg.ProbeTimeout,
		loc:         loc,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *HTTPGateway) Emit(ctx context.Context, req interfaces.EmitRequest) (interfaces.EmitResponse, error) {
	var data emitData
	err := g.call(ctx, "emit", g.emitTimeout, http.MethodPost, pathEmit, nil, emitPayload{
		CompanyID:   req.CompanyID,
		DocumentID:  req.DocumentID,
		NumericCode: req.NumericCode,
		Environment: req.Environment,
		Issuer:      req.Company,
		Form:        req.Form,
	}, &data)
	if err != nil {
		return interfaces.EmitResponse{}, err
	}
	return g.emitResponse(data), nil
}

func (g *HTTPGateway) QueryStatus(ctx context.Context, companyID, accessKey string) (interfaces.EmitResponse, error) {
	var data emitData
	q := url.Values{"empresa_id": {companyID}, "chave": {accessKey}}
	if err := g.call(ctx, "query_status", g.timeout, http.MethodGet, pathQuery, q, nil, &data); err != nil {
		return interfaces.EmitResponse{}, err
	}
	return g.emitResponse(data), nil
}

// FetchArtifact downloads an artifact as-is. Non-2xx answers are returned in the
// Artifact, not as an error, so callers can report which check failed.
func (g *HTTPGateway) FetchArtifact(ctx context.Context, req interfaces.ArtifactRequest) (interfaces.Artifact, error) {
	target := g.artifactURL(req)
	ctx, cancel := g.withTimeout(ctx, g.timeout)
	defer cancel()

	status, ctype, body, err := g.raw(ctx, "fetch_"+string(req.Kind), http.MethodGet, target, nil)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	return interfaces.Artifact{StatusCode: status, ContentType: ctype, Body: body}, nil
}

func (g *HTTPGateway) Cancel(ctx context.Context, req interfaces.CancelRequest) (interfaces.EventResponse, error) {
	var data eventData
	err := g.call(ctx, "cancel", g.timeout, http.MethodPost, pathCancel, nil, cancelPayload{
		CompanyID:  req.CompanyID,
		DocumentID: req.DocumentID,
		AccessKey:  req.AccessKey,
		Reason:     req.Reason,
	}, &data)
	if err != nil {
		return interfaces.EventResponse{}, err
	}
	return eventResponse(data), nil
}

func (g *HTTPGateway) Invalidate(ctx context.Context, req interfaces.InvalidateRequest) (interfaces.EventResponse, error) {
	var data eventData
	err := g.call(ctx, "invalidate", g.timeout, http.MethodPost, pathInvalidate, nil, invalidatePayload{
		CompanyID: req.CompanyID,
		CNPJ:      req.CNPJ,
		Model:     string(req.Model),
		Series:    req.Series,
		From:      req.From,
		To:        req.To,
		Reason:    req.Reason,
	}, &data)
	if err != nil {
		return interfaces.EventResponse{}, err
	}
	return eventResponse(data), nil
}

func (g *HTTPGateway) SubmitCorrection(ctx context.Context, req interfaces.CorrectionRequest) (interfaces.EventResponse, error) {
	var data eventData
	err := g.call(ctx, "correction", g.timeout, http.MethodPost, pathCorrection, nil, correctionPayload{
		CompanyID: req.CompanyID,
		AccessKey: req.AccessKey,
		Text:      req.Text,
		Sequence:  req.Sequence,
	}, &data)
	if err != nil {
		return interfaces.EventResponse{}, err
	}
	return eventResponse(data), nil
}

func (g *HTTPGateway) ListCorrections(ctx context.Context, companyID, accessKey string) ([]entities.CorrectionLetter, error) {
	var data []correctionData
	q := url.Values{"empresa_id": {companyID}, "chave": {accessKey}}
	if err := g.call(ctx, "list_corrections", g.timeout, http.MethodGet, pathListCorrections, q, nil, &data); err != nil {
		return nil, err
	}
	out := make([]entities.CorrectionLetter, 0, len(data))
	for _, d := range data {
		l := entities.CorrectionLetter{
			CompanyID: companyID,
			AccessKey: accessKey,
			Sequence:  int(d.Sequence),
			Text:      d.Text,
			Protocol:  d.Protocol,
			SefazCode: d.Status,
			PDFPath:   d.PDFPath,
		}
		if ts := normalizeTimestamp(d.RegisteredAt, g.loc); ts != "" {
			l.RegisteredAt, _ = time.Parse(time.RFC3339, ts)
		}
		out = append(out, l)
	}
	return out, nil
}

func (g *HTTPGateway) GenerateCorrectionPDF(ctx context.Context, companyID, accessKey string, sequence int) (string, error) {
	var data pathData
	err := g.call(ctx, "correction_pdf", g.timeout, http.MethodPost, pathCorrectionPDF, nil,
		keyPayload{CompanyID: companyID, AccessKey: accessKey, Sequence: sequence}, &data)
	return data.PDFPath, err
}

func (g *HTTPGateway) GenerateDANFE(ctx context.Context, companyID, accessKey string) (string, error) {
	var data pathData
	err := g.call(ctx, "danfe", g.timeout, http.MethodPost, pathDANFE, nil,
		keyPayload{CompanyID: companyID, AccessKey: accessKey}, &data)
	return data.PDFPath, err
}

// GeneratePreview renders an unsigned DANFE mirror. The backend answers with PDF bytes.
func (g *HTTPGateway) GeneratePreview(ctx context.Context, companyID string, form entities.Form) ([]byte, error) {
	body, err := json.Marshal(previewPayload{CompanyID: companyID, Form: form})
	if err != nil {
		return nil, err
	}
	ctx, cancel := g.withTimeout(ctx, g.timeout)
	defer cancel()

	status, _, raw, err := g.raw(ctx, "preview", http.MethodPost, g.baseURL+pathPreview, body)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusBadRequest {
		return nil, backendError(status, raw)
	}
	return raw, nil
}

func (g *HTTPGateway) SendEmail(ctx context.Context, req interfaces.EmailRequest) error {
	issuer := req.Company.TradeName
	if issuer == "" {
		issuer = req.Company.Name
	}
	return g.call(ctx, "email", g.timeout, http.MethodPost, pathEmail, nil, emailPayload{
		CompanyID: req.CompanyID,
		AccessKey: req.AccessKey,
		Emails:    req.Emails,
		Number:    req.Number,
		Series:    req.Series,
		Total:     req.Total,
		Issuer:    issuer,
		Recipient: req.Recipient,
	}, nil)
}

func (g *HTTPGateway) Health(ctx context.Context) (interfaces.ProbeResult, error) {
	ctx, cancel := g.withTimeout(ctx, g.probe)
	defer cancel()

	started := time.Now()
	status, _, _, err := g.raw(ctx, "health", http.MethodGet, g.baseURL+pathHealth, nil)
	if err != nil {
		return interfaces.ProbeResult{}, err
	}
	return interfaces.ProbeResult{
		Online:       status == http.StatusOK,
		Code:         fmt.Sprint(status),
		Reason:       http.StatusText(status),
		ResponseTime: time.Since(started).Milliseconds(),
	}, nil
}

func (g *HTTPGateway) SefazStatus(ctx context.Context, companyID string) (interfaces.ProbeResult, error) {
	started := time.Now()
	var data sefazStatusData
	q := url.Values{"empresa_id": {companyID}}
	if err := g.call(ctx, "sefaz_status", g.probe, http.MethodGet, pathSefazStatus, q, nil, &data); err != nil {
		return interfaces.ProbeResult{}, err
	}
	rt := int64(data.ResponseTime)
	if rt == 0 {
		rt = time.Since(started).Milliseconds()
	}
	return interfaces.ProbeResult{
		Online:       entities.SefazStatus(data.Code) == entities.SefazStatusServiceRunning,
		Code:         data.Code,
		Reason:       data.Reason,
		ResponseTime: rt,
	}, nil
}

func (g *HTTPGateway) CertificateStatus(ctx context.Context, companyID string) (interfaces.CertificateInfo, error) {
	var data certificateData
	q := url.Values{"empresa_id": {companyID}}
	if err := g.call(ctx, "certificate_status", g.probe, http.MethodGet, pathCertificate, q, nil, &data); err != nil {
		return interfaces.CertificateInfo{}, err
	}
	return interfaces.CertificateInfo{
		Exists:     data.Exists,
		ValidUntil: data.ValidUntil,
		Status:     entities.CertificateStatus(data.Status),
		Subject:    data.Subject,
	}, nil
}

// call sends payload as JSON, unwraps the envelope and decodes its data into out.
func (g *HTTPGateway) call(ctx context.Context, op string, timeout time.Duration, method, path string, query url.Values, payload, out any) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = b
	}
	target := g.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, cancel := g.withTimeout(ctx, timeout)
	defer cancel()

	status, _, raw, err := g.raw(ctx, op, method, target, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if status >= http.StatusBadRequest {
			return backendError(status, raw)
		}
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	if !env.Success || status >= http.StatusBadRequest {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &BackendError{HTTPStatus: status, Type: env.ErrorType, Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s: decode data: %w", op, err)
	}
	return nil
}

func (g *HTTPGateway) raw(ctx context.Context, op, method, target string, body []byte) (int, string, []byte, error) {
	started := time.Now()
	outcome := "error"
	defer func() {
		if g.observer != nil {
			g.observer.ObserveFiscalCall(op, outcome, time.Since(started))
		}
	}()

	if err := g.limiter.Wait(ctx); err != nil {
		return 0, "", nil, fmt.Errorf("%s: rate limiter: %w", op, err)
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return 0, "", nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("[fiscal][gateway] request failed", zap.String("op", op), zap.Error(err))
		return 0, "", nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, "", nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	if resp.StatusCode < http.StatusBadRequest {
		outcome = "ok"
	}
	g.logger.Debug("[fiscal][gateway] request done",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(started)),
	)
	return resp.StatusCode, resp.Header.Get("Content-Type"), raw, nil
}

func (g *HTTPGateway) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func (g *HTTPGateway) artifactURL(req interfaces.ArtifactRequest) string {
	p := strings.TrimSpace(req.Path)
	switch {
	case strings.HasPrefix(p, "http://"), strings.HasPrefix(p, "https://"):
		return p
	case p != "":
		return g.baseURL + "/" + strings.TrimLeft(p, "/")
	default:
		q := url.Values{"empresa_id": {req.CompanyID}, "chave": {req.AccessKey}}
		return g.baseURL + fmt.Sprintf(pathArtifactTemplate, req.Kind) + "?" + q.Encode()
	}
}

func (g *HTTPGateway) emitResponse(d emitData) interfaces.EmitResponse {
	return interfaces.EmitResponse{
		AccessKey:    d.AccessKey,
		Protocol:     d.Protocol,
		Receipt:      d.Receipt,
		Status:       entities.SefazStatus(d.Status),
		Reason:       d.Reason,
		XML:          decodeXML(d.XML),
		XMLPath:      d.XMLPath,
		PDFPath:      d.PDFPath,
		Number:       int(d.Number),
		Series:       int(d.Series),
		AuthorizedAt: normalizeTimestamp(d.AuthorizedAt, g.loc),
	}
}

func eventResponse(d eventData) interfaces.EventResponse {
	return interfaces.EventResponse{
		Protocol: d.Protocol,
		Status:   entities.SefazStatus(d.Status),
		Reason:   d.Reason,
		XML:      decodeXML(d.XML),
	}
}

// decodeXML accepts the signed XML either base64-encoded or verbatim.
func decodeXML(s string) string {
	if s == "" || strings.HasPrefix(strings.TrimSpace(s), "<") {
		return s
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(b)
}

func backendError(status int, raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && (env.Error != "" || env.Message != "") {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &BackendError{HTTPStatus: status, Type: env.ErrorType, Message: msg}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 300 {
		msg = msg[:300]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &BackendError{HTTPStatus: status, Message: msg}
}
