package entities

import "time"

// CertificateStatus summarizes the A1 certificate configured for a company.
type CertificateStatus string

const (
	CertificateStatusAtivo    CertificateStatus = "ativo"
	CertificateStatusVencendo CertificateStatus = "vencendo"
	CertificateStatusVencido  CertificateStatus = "vencido"
	CertificateStatusAusente  CertificateStatus = "ausente"
)

// CertificateExpiryWarning is how early a certificate is reported as "vencendo".
const CertificateExpiryWarning = 30 * 24 * time.Hour

type Certificate struct {
	Configured bool      `json:"configurado"`
	Subject    string    `json:"titular,omitempty"`
	ValidFrom  time.Time `json:"valido_desde,omitempty"`
	ValidUntil time.Time `json:"valido_ate,omitempty"`
}

func (c Certificate) Status(now time.Time) CertificateStatus {
	switch {
	case !c.Configured:
		return CertificateStatusAusente
	case !c.ValidUntil.IsZero() && now.After(c.ValidUntil):
		return CertificateStatusVencido
	case !c.ValidUntil.IsZero() && c.ValidUntil.Sub(now) <= CertificateExpiryWarning:
		return CertificateStatusVencendo
	default:
		return CertificateStatusAtivo
	}
}

func (c Certificate) Expired(now time.Time) bool {
	return c.Status(now) == CertificateStatusVencido
}

// Company is the issuing tenant. Every document, option and user belongs to one.
type Company struct {
	ID                string      `json:"id"`
	Name              string      `json:"razao_social"`
	TradeName         string      `json:"nome_fantasia"`
	CNPJ              string      `json:"cnpj"`
	StateRegistration string      `json:"inscricao_estadual"`
	TaxRegime         string      `json:"regime_tributario"`
	Street            string      `json:"endereco"`
	Number            string      `json:"numero"`
	District          string      `json:"bairro"`
	City              string      `json:"cidade"`
	CityCode          string      `json:"codigo_municipio"`
	State             string      `json:"uf"`
	ZipCode           string      `json:"cep"`
	Phone             string      `json:"telefone"`
	Email             string      `json:"email"`
	Environment       Environment `json:"ambiente"`
	Certificate       Certificate `json:"certificado"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
