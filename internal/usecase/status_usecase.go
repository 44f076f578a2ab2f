package usecase

import (
	"context"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultProbeTimeout = 5 * time.Second

type ProbeStatus struct {
	Online       bool   `json:"online"`
	Code         string `json:"codigo,omitempty"`
	Message      string `json:"mensagem,omitempty"`
	ResponseTime int64  `json:"tempo_resposta_ms"`
}

type CertificateReport struct {
	Status     entities.CertificateStatus `json:"status"`
	Subject    string                     `json:"titular,omitempty"`
	ValidUntil string                     `json:"valido_ate,omitempty"`
	Source     string                     `json:"origem"`
}

type StatusOverview struct {
	Backend     ProbeStatus       `json:"api"`
	Sefaz       ProbeStatus       `json:"sefaz"`
	Certificate CertificateReport `json:"certificado"`
}

// IStatusUseCase answers the availability probes shown on the dashboard.
type IStatusUseCase interface {
	BackendHealth(ctx context.Context) ProbeStatus
	SefazStatus(ctx context.Context, companyID string) ProbeStatus
	CertificateStatus(ctx context.Context, companyID string) (CertificateReport, error)
	Overview(ctx context.Context, companyID string) (StatusOverview, error)
}

type StatusUseCase struct {
	gateway   interfaces.IFiscalGateway
	companies interfaces.ICompanyRepository
	timeout   time.Duration
	logger    *zap.Logger
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(gateway interfaces.IFiscalGateway, companies interfaces.ICompanyRepository, timeout time.Duration, logger *zap.Logger) *StatusUseCase {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &StatusUseCase{gateway: gateway, companies: companies, timeout: timeout, logger: loggerOrNop(logger)}
}

func (u *StatusUseCase) BackendHealth(ctx context.Context) ProbeStatus {
	if u.gateway == nil {
		return ProbeStatus{Message: ErrFiscalGatewayNotSet.Error()}
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	started := time.Now()
	res, err := u.gateway.Health(ctx)
	if err != nil {
		u.logger.Warn("[status][usecase] fiscal backend probe failed", zap.Error(err))
		return ProbeStatus{Message: err.Error(), ResponseTime: time.Since(started).Milliseconds()}
	}
	return probeFrom(res, res.Online, started)
}

// SefazStatus reports SEFAZ as online only when it answers 107.
func (u *StatusUseCase) SefazStatus(ctx context.Context, companyID string) ProbeStatus {
	if u.gateway == nil {
		return ProbeStatus{Message: ErrFiscalGatewayNotSet.Error()}
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	started := time.Now()
	res, err := u.gateway.SefazStatus(ctx, companyID)
	if err != nil {
		u.logger.Warn("[status][usecase] sefaz probe failed", zap.String("company_id", companyID), zap.Error(err))
		return ProbeStatus{Message: err.Error(), ResponseTime: time.Since(started).Milliseconds()}
	}
	online := entities.SefazStatus(res.Code) == entities.SefazStatusServiceRunning
	return probeFrom(res, online, started)
}

func probeFrom(res interfaces.ProbeResult, online bool, started time.Time) ProbeStatus {
	rt := res.ResponseTime
	if rt <= 0 {
		rt = time.Since(started).Milliseconds()
	}
	return ProbeStatus{Online: online, Code: res.Code, Message: res.Reason, ResponseTime: rt}
}

// CertificateStatus asks the fiscal backend and falls back to the company profile.
func (u *StatusUseCase) CertificateStatus(ctx context.Context, companyID string) (CertificateReport, error) {
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return CertificateReport{}, err
	}

	if u.gateway != nil {
		pctx, cancel := context.WithTimeout(ctx, u.timeout)
		info, err := u.gateway.CertificateStatus(pctx, company.ID)
		cancel()
		if err == nil {
			status := info.Status
			if !info.Exists {
				status = entities.CertificateStatusAusente
			}
			return CertificateReport{Status: status, Subject: info.Subject, ValidUntil: info.ValidUntil, Source: "fiscal"}, nil
		}
		u.logger.Warn("[status][usecase] certificate probe failed", zap.String("company_id", company.ID), zap.Error(err))
	}

	cert := company.Certificate
	report := CertificateReport{Status: cert.Status(utcNow()), Subject: cert.Subject, Source: "profile"}
	if !cert.ValidUntil.IsZero() {
		report.ValidUntil = cert.ValidUntil.Format(time.DateOnly)
	}
	return report, nil
}

// Overview runs every probe concurrently; each keeps its own timeout.
func (u *StatusUseCase) Overview(ctx context.Context, companyID string) (StatusOverview, error) {
	var out StatusOverview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Backend = u.BackendHealth(gctx)
		return nil
	})
	g.Go(func() error {
		out.Sefaz = u.SefazStatus(gctx, companyID)
		return nil
	})
	g.Go(func() error {
		cert, err := u.CertificateStatus(gctx, companyID)
		out.Certificate = cert
		return err
	})
	if err := g.Wait(); err != nil {
		return StatusOverview{}, err
	}
	return out, nil
}
