package fiscal

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockGateway authorizes everything locally. It keeps the documents it
// emitted in memory so artifact downloads and status queries stay consistent.
type MockGateway struct {
	logger *zap.Logger

	mu          sync.Mutex
	emitted     map[string]mockDocument
	corrections map[string][]entities.CorrectionLetter
}

type mockDocument struct {
	companyID string
	number    int
	series    int
	at        time.Time
}

var _ interfaces.IFiscalGateway = (*MockGateway)(nil)

func NewMockGateway(logger *zap.Logger) *MockGateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("[fiscal][gateway] mock mode enabled")
	return &MockGateway{
		logger:      logger,
		emitted:     map[string]mockDocument{},
		corrections: map[string][]entities.CorrectionLetter{},
	}
}

func (g *MockGateway) Emit(ctx context.Context, req interfaces.EmitRequest) (interfaces.EmitResponse, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.EmitResponse{}, err
	}
	id := req.Form.Identification
	now := time.Now().UTC()
	key := MockAccessKey(req.Company, id.Model, id.Series, id.Number, req.NumericCode, now)

	g.mu.Lock()
	g.emitted[key] = mockDocument{companyID: req.CompanyID, number: id.Number, series: id.Series, at: now}
	g.mu.Unlock()

	g.logger.Info("[fiscal][gateway] mock emit", zap.String("access_key", key), zap.Int("number", id.Number))
	return interfaces.EmitResponse{
		AccessKey:    key,
		Protocol:     mockProtocol(now),
		Receipt:      mockProtocol(now),
		Status:       entities.SefazStatusAuthorized,
		Reason:       "Autorizado o uso da NF-e",
		XML:          string(mockXML(key)),
		Number:       id.Number,
		Series:       id.Series,
		AuthorizedAt: now.Format(time.RFC3339),
	}, nil
}

func (g *MockGateway) FetchArtifact(ctx context.Context, req interfaces.ArtifactRequest) (interfaces.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Artifact{}, err
	}
	if !g.known(req.AccessKey) {
		return interfaces.Artifact{StatusCode: http.StatusNotFound, ContentType: "application/json", Body: []byte(`{"success":false}`)}, nil
	}
	if req.Kind == interfaces.ArtifactXML {
		return interfaces.Artifact{StatusCode: http.StatusOK, ContentType: "application/xml", Body: mockXML(req.AccessKey)}, nil
	}
	return interfaces.Artifact{StatusCode: http.StatusOK, ContentType: "application/pdf", Body: mockPDF(req.AccessKey)}, nil
}

func (g *MockGateway) Cancel(ctx context.Context, req interfaces.CancelRequest) (interfaces.EventResponse, error) {
	return g.event(ctx, "cancel", req.AccessKey)
}

func (g *MockGateway) Invalidate(ctx context.Context, req interfaces.InvalidateRequest) (interfaces.EventResponse, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.EventResponse{}, err
	}
	g.logger.Info("[fiscal][gateway] mock invalidate", zap.Int("from", req.From), zap.Int("to", req.To))
	return interfaces.EventResponse{
		Protocol: mockProtocol(time.Now().UTC()),
		Status:   entities.SefazStatusRangeInvalidated,
		Reason:   "Inutilizacao de numero homologado",
	}, nil
}

func (g *MockGateway) SubmitCorrection(ctx context.Context, req interfaces.CorrectionRequest) (interfaces.EventResponse, error) {
	resp, err := g.event(ctx, "correction", req.AccessKey)
	if err != nil {
		return resp, err
	}
	g.mu.Lock()
	g.corrections[req.AccessKey] = append(g.corrections[req.AccessKey], entities.CorrectionLetter{
		CompanyID:    req.CompanyID,
		AccessKey:    req.AccessKey,
		Sequence:     req.Sequence,
		Text:         req.Text,
		Protocol:     resp.Protocol,
		SefazCode:    string(resp.Status),
		RegisteredAt: time.Now().UTC(),
	})
	g.mu.Unlock()
	return resp, nil
}

func (g *MockGateway) ListCorrections(ctx context.Context, _, accessKey string) ([]entities.CorrectionLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]entities.CorrectionLetter(nil), g.corrections[accessKey]...), nil
}

func (g *MockGateway) GenerateCorrectionPDF(ctx context.Context, _, accessKey string, sequence int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("/storage/cce/%s-%02d.pdf", accessKey, sequence), nil
}

func (g *MockGateway) GenerateDANFE(ctx context.Context, _, accessKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "/storage/danfe/" + accessKey + ".pdf", nil
}

func (g *MockGateway) GeneratePreview(ctx context.Context, _ string, form entities.Form) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return mockPDF(fmt.Sprintf("preview-%d", form.Identification.Number)), nil
}

func (g *MockGateway) SendEmail(ctx context.Context, req interfaces.EmailRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.logger.Info("[fiscal][gateway] mock email", zap.Strings("to", req.Emails), zap.String("access_key", req.AccessKey))
	return nil
}

func (g *MockGateway) QueryStatus(ctx context.Context, companyID, accessKey string) (interfaces.EmitResponse, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.EmitResponse{}, err
	}
	g.mu.Lock()
	d, ok := g.emitted[accessKey]
	g.mu.Unlock()
	if !ok || d.companyID != companyID {
		return interfaces.EmitResponse{}, &BackendError{HTTPStatus: http.StatusNotFound, Type: "not_found", Message: "documento nao encontrado"}
	}
	return interfaces.EmitResponse{
		AccessKey:    accessKey,
		Protocol:     mockProtocol(d.at),
		Status:       entities.SefazStatusAuthorized,
		Reason:       "Autorizado o uso da NF-e",
		Number:       d.number,
		Series:       d.series,
		AuthorizedAt: d.at.Format(time.RFC3339),
	}, nil
}

func (g *MockGateway) Health(ctx context.Context) (interfaces.ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.ProbeResult{}, err
	}
	return interfaces.ProbeResult{Online: true, Code: "200", Reason: "OK"}, nil
}

func (g *MockGateway) SefazStatus(ctx context.Context, _ string) (interfaces.ProbeResult, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.ProbeResult{}, err
	}
	return interfaces.ProbeResult{
		Online: true,
		Code:   string(entities.SefazStatusServiceRunning),
		Reason: "Servico em Operacao",
	}, nil
}

func (g *MockGateway) CertificateStatus(ctx context.Context, _ string) (interfaces.CertificateInfo, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.CertificateInfo{}, err
	}
	return interfaces.CertificateInfo{
		Exists:     true,
		ValidUntil: time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		Status:     entities.CertificateStatusAtivo,
		Subject:    "MOCK CERTIFICATE",
	}, nil
}

func (g *MockGateway) event(ctx context.Context, op, accessKey string) (interfaces.EventResponse, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.EventResponse{}, err
	}
	if !g.known(accessKey) {
		return interfaces.EventResponse{}, &BackendError{HTTPStatus: http.StatusNotFound, Type: "not_found", Message: "documento nao encontrado"}
	}
	g.logger.Info("[fiscal][gateway] mock event", zap.String("op", op), zap.String("access_key", accessKey))
	return interfaces.EventResponse{
		Protocol: mockProtocol(time.Now().UTC()),
		Status:   entities.SefazStatusEventRegistered,
		Reason:   "Evento registrado e vinculado a NF-e",
	}, nil
}

func (g *MockGateway) known(accessKey string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.emitted[accessKey]
	return ok
}

var stateCodes = map[string]string{
	"RO": "11", "AC": "12", "AM": "13", "RR": "14", "PA": "15", "AP": "16", "TO": "17",
	"MA": "21", "PI": "22", "CE": "23", "RN": "24", "PB": "25", "PE": "26", "AL": "27",
	"SE": "28", "BA": "29", "MG": "31", "ES": "32", "RJ": "33", "SP": "35", "PR": "41",
	"SC": "42", "RS": "43", "MS": "50", "MT": "51", "GO": "52", "DF": "53",
}

// MockAccessKey builds a structurally valid 44-digit key with its mod-11 check digit.
func MockAccessKey(c entities.Company, model entities.DocumentModel, series, number int, numericCode string, at time.Time) string {
	uf, ok := stateCodes[strings.ToUpper(c.State)]
	if !ok {
		uf = "35"
	}
	cnpj := digitsOnly(c.CNPJ)
	if len(cnpj) > 14 {
		cnpj = cnpj[:14]
	}
	code := digitsOnly(numericCode)
	if len(code) > 8 {
		code = code[:8]
	}
	if model == "" {
		model = entities.DocumentModelNFe
	}
	base := fmt.Sprintf("%s%s%014s%s%03d%09d1%08s", uf, at.Format("0601"), cnpj, model, series%1000, number%1000000000, code)
	base = strings.ReplaceAll(base, " ", "0")
	return base + fmt.Sprint(checkDigit(base))
}

func checkDigit(base string) int {
	sum, weight := 0, 2
	for i := len(base) - 1; i >= 0; i-- {
		sum += int(base[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	dv := 11 - sum%11
	if dv >= 10 {
		return 0
	}
	return dv
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mockProtocol(at time.Time) string {
	return fmt.Sprintf("1%014d", at.UnixNano()%1e14)
}

func mockXML(key string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?><nfeProc versao="4.00"><NFe><infNFe Id="NFe` + key +
		`" versao="4.00"></infNFe></NFe><protNFe><infProt><chNFe>` + key + `</chNFe><cStat>100</cStat></infProt></protNFe></nfeProc>`)
}

// mockPDF returns a minimal PDF padded past the usual size checks.
func mockPDF(label string) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n% mock " + label + " " + uuid.NewString() + "\n")
	for b.Len() < 4096 {
		b.WriteString("% padding\n")
	}
	b.WriteString("%%EOF\n")
	return b.Bytes()
}
