package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrCarrierNotAllowed = errors.New("carrier is not allowed when freight modality is 9 (no transport)")
	ErrUnknownSection    = errors.New("unknown form section")
	ErrLineItemIndex     = errors.New("line item index out of range")
)

var sectionValidate = validator.New(validator.WithRequiredStructEnabled())

// SectionKind names one section of the NFe form.
type SectionKind string

const (
	SectionIdentification SectionKind = "identificacao"
	SectionRecipient      SectionKind = "destinatario"
	SectionLineItems      SectionKind = "produtos"
	SectionTotals         SectionKind = "totais"
	SectionPayments       SectionKind = "pagamentos"
	SectionReferenceKeys  SectionKind = "chaves_ref"
	SectionTransport      SectionKind = "transportadora"
	SectionIntermediary   SectionKind = "intermediador"
)

// Section is implemented by every typed form section. Each one validates itself.
type Section interface {
	Kind() SectionKind
	Validate() error
}

// SectionError lists the invalid fields of one section.
type SectionError struct {
	Section SectionKind
	Fields  []string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Section, strings.Join(e.Fields, ", "))
}

func validateSection(kind SectionKind, v any) error {
	err := sectionValidate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return &SectionError{Section: kind, Fields: fields}
}

// Purpose is the NFe "finalidade" code.
type Purpose string

const (
	PurposeNormal        Purpose = "1"
	PurposeComplementary Purpose = "2"
	PurposeAdjustment    Purpose = "3"
	PurposeReturn        Purpose = "4"
)

// RequiresReferenceKeys reports whether the purpose points at previously issued documents.
func (p Purpose) RequiresReferenceKeys() bool {
	return p == PurposeComplementary || p == PurposeAdjustment || p == PurposeReturn
}

const (
	PaymentMethodNone    = "90"
	FreightNoTransport   = "9"
	DefaultIEIndicator   = "9"
	DefaultPresence      = "9"
	DefaultOperationType = "1"
)

type Identification struct {
	Model           DocumentModel `json:"modelo" validate:"oneof=55 65"`
	Series          int           `json:"serie" validate:"gte=0,lte=999"`
	Number          int           `json:"numero" validate:"gte=0,lte=999999999"`
	IssueDate       time.Time     `json:"data_emissao"`
	OperationType   string        `json:"tipo_documento" validate:"oneof=0 1"`
	Purpose         Purpose       `json:"finalidade" validate:"oneof=1 2 3 4"`
	Presence        string        `json:"presenca" validate:"omitempty,oneof=0 1 2 3 4 5 9"`
	OperationNature string        `json:"natureza_operacao" validate:"max=60"`
}

func (Identification) Kind() SectionKind { return SectionIdentification }
func (s Identification) Validate() error { return validateSection(s.Kind(), s) }

type Recipient struct {
	Document          string   `json:"documento" validate:"omitempty,numeric,min=11,max=14"`
	Name              string   `json:"nome" validate:"max=60"`
	Street            string   `json:"endereco" validate:"max=60"`
	Number            string   `json:"numero" validate:"max=60"`
	Complement        string   `json:"complemento" validate:"max=60"`
	District          string   `json:"bairro" validate:"max=60"`
	City              string   `json:"cidade" validate:"max=60"`
	CityCode          string   `json:"codigo_municipio" validate:"omitempty,numeric,len=7"`
	State             string   `json:"uf" validate:"omitempty,len=2"`
	ZipCode           string   `json:"cep" validate:"omitempty,numeric,len=8"`
	Phone             string   `json:"telefone"`
	Emails            []string `json:"emails" validate:"dive,email"`
	IEIndicator       string   `json:"ie_destinatario" validate:"omitempty,oneof=1 2 9"`
	StateRegistration string   `json:"inscricao_estadual"`
	FinalConsumer     bool     `json:"consumidor_final"`
}

func (Recipient) Kind() SectionKind { return SectionRecipient }
func (s Recipient) Validate() error { return validateSection(s.Kind(), s) }

// TaxClassification carries the per-item tax codes sent to the fiscal backend.
type TaxClassification struct {
	ICMSSituation   string          `json:"cst_icms"`
	CSOSN           string          `json:"csosn"`
	ICMSRate        decimal.Decimal `json:"aliquota_icms"`
	PISSituation    string          `json:"cst_pis"`
	PISRate         decimal.Decimal `json:"aliquota_pis"`
	COFINSSituation string          `json:"cst_cofins"`
	COFINSRate      decimal.Decimal `json:"aliquota_cofins"`
	IPISituation    string          `json:"cst_ipi"`
	IPIRate         decimal.Decimal `json:"aliquota_ipi"`
	STBase          decimal.Decimal `json:"bc_st"`
	STRate          decimal.Decimal `json:"aliquota_st"`
	STValue         decimal.Decimal `json:"valor_st"`
	CEST            string          `json:"cest"`
}

type LineItem struct {
	ProductID   string            `json:"produto_id"`
	Code        string            `json:"codigo" validate:"required"`
	Description string            `json:"descricao" validate:"required,max=120"`
	NCM         string            `json:"ncm" validate:"required,numeric,len=8"`
	CFOP        string            `json:"cfop" validate:"required,numeric,len=4"`
	Origin      string            `json:"origem" validate:"omitempty,oneof=0 1 2 3 4 5 6 7 8"`
	Unit        string            `json:"unidade" validate:"required"`
	Quantity    decimal.Decimal   `json:"quantidade"`
	UnitPrice   decimal.Decimal   `json:"valor_unitario"`
	Discount    decimal.Decimal   `json:"desconto"`
	Total       decimal.Decimal   `json:"valor_total"`
	Override    *decimal.Decimal  `json:"valor_total_manual,omitempty"`
	Tax         TaxClassification `json:"impostos"`
}

// ComputeTotal applies the line rule: quantity x unit price, or the manual override.
func (i *LineItem) ComputeTotal() {
	if i.Override != nil {
		i.Total = *i.Override
		return
	}
	i.Total = i.Quantity.Mul(i.UnitPrice).Round(2)
}

type LineItems []LineItem

func (LineItems) Kind() SectionKind { return SectionLineItems }

func (s LineItems) Validate() error {
	var fields []string
	for idx, it := range s {
		if err := validateSection(SectionLineItems, it); err != nil {
			var se *SectionError
			if errors.As(err, &se) {
				for _, f := range se.Fields {
					fields = append(fields, fmt.Sprintf("[%d].%s", idx, f))
				}
				continue
			}
			return err
		}
		if !it.Quantity.IsPositive() {
			fields = append(fields, fmt.Sprintf("[%d].quantidade (gt)", idx))
		}
		if it.UnitPrice.IsNegative() {
			fields = append(fields, fmt.Sprintf("[%d].valor_unitario (gte)", idx))
		}
	}
	if len(fields) > 0 {
		return &SectionError{Section: SectionLineItems, Fields: fields}
	}
	return nil
}

type Totals struct {
	Products      decimal.Decimal `json:"valor_produtos"`
	Discount      decimal.Decimal `json:"desconto"`
	Freight       decimal.Decimal `json:"frete"`
	Insurance     decimal.Decimal `json:"seguro"`
	Other         decimal.Decimal `json:"outros"`
	Total         decimal.Decimal `json:"total"`
	ICMSBase      decimal.Decimal `json:"icms_bc"`
	ICMS          decimal.Decimal `json:"icms"`
	PIS           decimal.Decimal `json:"pis"`
	COFINS        decimal.Decimal `json:"cofins"`
	IPI           decimal.Decimal `json:"ipi"`
	ST            decimal.Decimal `json:"st"`
	FCP           decimal.Decimal `json:"fcp"`
	SimplesCredit decimal.Decimal `json:"credito_sn"`
}

func (Totals) Kind() SectionKind { return SectionTotals }

func (s Totals) Validate() error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"valor_produtos", s.Products},
		{"desconto", s.Discount},
		{"frete", s.Freight},
		{"seguro", s.Insurance},
		{"outros", s.Other},
		{"total", s.Total},
	}
	var fields []string
	for _, c := range checks {
		if c.value.IsNegative() {
			fields = append(fields, c.name+" (gte)")
		}
	}
	if len(fields) > 0 {
		return &SectionError{Section: SectionTotals, Fields: fields}
	}
	return nil
}

type Payment struct {
	Method string          `json:"forma" validate:"required,numeric,len=2"`
	Value  decimal.Decimal `json:"valor"`
}

type Payments []Payment

func (Payments) Kind() SectionKind { return SectionPayments }

func (s Payments) Validate() error {
	var fields []string
	for idx, p := range s {
		if err := validateSection(SectionPayments, p); err != nil {
			fields = append(fields, fmt.Sprintf("[%d].forma", idx))
		}
		if p.Value.IsNegative() {
			fields = append(fields, fmt.Sprintf("[%d].valor (gte)", idx))
		}
	}
	if len(fields) > 0 {
		return &SectionError{Section: SectionPayments, Fields: fields}
	}
	return nil
}

func (s Payments) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s {
		sum = sum.Add(p.Value)
	}
	return sum
}

type ReferenceKeys []string

func (ReferenceKeys) Kind() SectionKind { return SectionReferenceKeys }

func (s ReferenceKeys) Validate() error {
	var fields []string
	for idx, k := range s {
		if !IsAccessKey(k) {
			fields = append(fields, fmt.Sprintf("[%d] (len=44,numeric)", idx))
		}
	}
	if len(fields) > 0 {
		return &SectionError{Section: SectionReferenceKeys, Fields: fields}
	}
	return nil
}

type Carrier struct {
	Document          string          `json:"documento" validate:"omitempty,numeric,min=11,max=14"`
	Name              string          `json:"nome" validate:"max=60"`
	StateRegistration string          `json:"inscricao_estadual"`
	Address           string          `json:"endereco" validate:"max=60"`
	City              string          `json:"cidade" validate:"max=60"`
	State             string          `json:"uf" validate:"omitempty,len=2"`
	VehiclePlate      string          `json:"placa"`
	VehicleState      string          `json:"uf_veiculo" validate:"omitempty,len=2"`
	Volumes           int             `json:"volumes" validate:"gte=0"`
	GrossWeight       decimal.Decimal `json:"peso_bruto"`
	NetWeight         decimal.Decimal `json:"peso_liquido"`
}

// Transport holds the freight modality and the optional carrier.
type Transport struct {
	FreightModality string   `json:"modalidade_frete" validate:"omitempty,oneof=0 1 2 3 4 9"`
	Carrier         *Carrier `json:"transportadora,omitempty"`
}

func (Transport) Kind() SectionKind { return SectionTransport }

func (s Transport) Validate() error {
	if s.FreightModality == FreightNoTransport && s.Carrier != nil {
		return ErrCarrierNotAllowed
	}
	return validateSection(s.Kind(), s)
}

type Intermediary struct {
	Indicator  string `json:"indicador" validate:"oneof=0 1"`
	CNPJ       string `json:"cnpj" validate:"omitempty,numeric,len=14"`
	Identifier string `json:"identificador" validate:"max=60"`
}

func (Intermediary) Kind() SectionKind { return SectionIntermediary }

// Validate requires the marketplace identification when the sale went through one.
func (s Intermediary) Validate() error {
	if err := validateSection(s.Kind(), s); err != nil {
		return err
	}
	if s.Indicator == "1" && (s.CNPJ == "" || s.Identifier == "") {
		return &SectionError{Section: SectionIntermediary, Fields: []string{"cnpj (required)", "identificador (required)"}}
	}
	return nil
}

// Form is the typed NFe form. Mutations go through its methods so the
// section invariants hold after every edit.
type Form struct {
	Identification Identification `json:"identificacao"`
	Recipient      Recipient      `json:"destinatario"`
	Items          LineItems      `json:"produtos"`
	Totals         Totals         `json:"totais"`
	Payments       Payments       `json:"pagamentos"`
	ReferenceKeys  ReferenceKeys  `json:"chaves_ref"`
	Transport      Transport      `json:"transportadora"`
	Intermediary   *Intermediary  `json:"intermediador,omitempty"`
}

// NewForm returns a form with the usual defaults for an outgoing sale.
func NewForm(model DocumentModel, series int) Form {
	return Form{
		Identification: Identification{
			Model:         model,
			Series:        series,
			OperationType: DefaultOperationType,
			Purpose:       PurposeNormal,
			Presence:      DefaultPresence,
		},
		Recipient: Recipient{IEIndicator: DefaultIEIndicator},
		Transport: Transport{FreightModality: FreightNoTransport},
	}
}

func (f Form) Sections() []Section {
	out := []Section{f.Identification, f.Recipient, f.Items, f.Totals, f.Payments, f.ReferenceKeys, f.Transport}
	if f.Intermediary != nil {
		out = append(out, *f.Intermediary)
	}
	return out
}

// Validate runs every section validator and joins the failures.
func (f Form) Validate() error {
	var errs []error
	for _, s := range f.Sections() {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Form) IsReturn() bool {
	return f.Identification.Purpose == PurposeReturn
}

// Apply replaces one section. The section is validated before it is applied.
func (f *Form) Apply(s Section) error {
	if err := s.Validate(); err != nil {
		return err
	}
	switch v := s.(type) {
	case Identification:
		f.Identification = v
	case Recipient:
		f.Recipient = v
	case LineItems:
		f.SetLineItems(v)
		return nil
	case Totals:
		f.Totals = v
	case Payments:
		f.SetPayments(v)
		return nil
	case ReferenceKeys:
		f.ReferenceKeys = append(ReferenceKeys(nil), v...)
	case Transport:
		return f.SetTransport(v)
	case Intermediary:
		f.Intermediary = &v
	default:
		return ErrUnknownSection
	}
	f.normalize()
	return nil
}

func (f *Form) SetPurpose(p Purpose) {
	f.Identification.Purpose = p
	f.normalize()
}

// SetPayments replaces the payment list. Return documents keep their single "no payment" entry.
func (f *Form) SetPayments(p Payments) {
	f.Payments = append(Payments(nil), p...)
	f.normalize()
}

func (f *Form) SetLineItems(items LineItems) {
	f.Items = make(LineItems, len(items))
	copy(f.Items, items)
	for i := range f.Items {
		f.Items[i].ComputeTotal()
	}
	f.RecalculateTotals()
	f.normalize()
}

func (f *Form) AddLineItem(item LineItem) {
	item.ComputeTotal()
	f.Items = append(f.Items, item)
	f.RecalculateTotals()
	f.normalize()
}

func (f *Form) UpdateLineItem(idx int, item LineItem) error {
	if idx < 0 || idx >= len(f.Items) {
		return ErrLineItemIndex
	}
	item.ComputeTotal()
	f.Items[idx] = item
	f.RecalculateTotals()
	f.normalize()
	return nil
}

func (f *Form) RemoveLineItem(idx int) error {
	if idx < 0 || idx >= len(f.Items) {
		return ErrLineItemIndex
	}
	f.Items = append(f.Items[:idx], f.Items[idx+1:]...)
	f.RecalculateTotals()
	f.normalize()
	return nil
}

// SetTransport rejects a carrier when there is no transport occurrence.
func (f *Form) SetTransport(t Transport) error {
	if t.FreightModality == FreightNoTransport && t.Carrier != nil {
		return ErrCarrierNotAllowed
	}
	f.Transport = t
	f.normalize()
	return nil
}

// RecalculateTotals derives the product sum and the document total from the items.
func (f *Form) RecalculateTotals() {
	products := decimal.Zero
	itemDiscount := decimal.Zero
	for _, it := range f.Items {
		products = products.Add(it.Total)
		itemDiscount = itemDiscount.Add(it.Discount)
	}
	f.Totals.Products = products
	if itemDiscount.IsPositive() {
		f.Totals.Discount = itemDiscount
	}
	f.Totals.Total = products.
		Sub(f.Totals.Discount).
		Add(f.Totals.Freight).
		Add(f.Totals.Insurance).
		Add(f.Totals.Other).
		Add(f.Totals.ST).
		Add(f.Totals.IPI)
}

// normalize enforces cross-section rules after any edit.
func (f *Form) normalize() {
	if f.IsReturn() {
		f.Payments = Payments{{Method: PaymentMethodNone, Value: decimal.Zero}}
	}
	if f.Transport.FreightModality == FreightNoTransport {
		f.Transport.Carrier = nil
	}
}

// Clone returns a deep copy.
func (f Form) Clone() Form {
	out := f
	if f.Items != nil {
		out.Items = make(LineItems, len(f.Items))
		copy(out.Items, f.Items)
		for i, it := range f.Items {
			if it.Override != nil {
				v := *it.Override
				out.Items[i].Override = &v
			}
		}
	}
	if f.Payments != nil {
		out.Payments = append(Payments(nil), f.Payments...)
	}
	if f.ReferenceKeys != nil {
		out.ReferenceKeys = append(ReferenceKeys(nil), f.ReferenceKeys...)
	}
	if f.Recipient.Emails != nil {
		out.Recipient.Emails = append([]string(nil), f.Recipient.Emails...)
	}
	if f.Transport.Carrier != nil {
		c := *f.Transport.Carrier
		out.Transport.Carrier = &c
	}
	if f.Intermediary != nil {
		i := *f.Intermediary
		out.Intermediary = &i
	}
	return out
}

// IsAccessKey reports whether s is a 44-digit access key.
func IsAccessKey(s string) bool {
	if len(s) != 44 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
