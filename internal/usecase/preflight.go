package usecase

import (
	"fmt"
	"strings"

	"nfe_backoffice/internal/domain/entities"
)

const (
	ViolationCompanyNotLoaded  = "company profile is not loaded"
	ViolationRecipientIdentity = "recipient document and name are required"
	ViolationNoLineItems       = "at least one product is required"
	ViolationNoPayments        = "at least one payment is required"
	ViolationNoOperationNature = "operation nature is required"
	ViolationNoReferenceKey    = "return documents require at least one reference key"
	ViolationDuplicateNumber   = "duplicate numbering: a document with this series and number already exists"
)

// Preflight inspects a form before any network call and returns every violation
// at once, in a fixed order. It has no side effects.
func Preflight(company entities.Company, form entities.Form) []string {
	var v []string

	if company.ID == "" {
		v = append(v, ViolationCompanyNotLoaded)
	}

	r := form.Recipient
	if strings.TrimSpace(r.Document) == "" || strings.TrimSpace(r.Name) == "" {
		v = append(v, ViolationRecipientIdentity)
	}

	var missing []string
	for _, f := range []struct{ label, value string }{
		{"street", r.Street},
		{"district", r.District},
		{"city", r.City},
		{"state", r.State},
		{"zip code", r.ZipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		v = append(v, "recipient address is incomplete: missing "+strings.Join(missing, ", "))
	}

	if len(form.Items) == 0 {
		v = append(v, ViolationNoLineItems)
	}
	if len(form.Payments) == 0 {
		v = append(v, ViolationNoPayments)
	}
	if strings.TrimSpace(form.Identification.OperationNature) == "" {
		v = append(v, ViolationNoOperationNature)
	}
	if form.IsReturn() && len(form.ReferenceKeys) == 0 {
		v = append(v, ViolationNoReferenceKey)
	}

	v = append(v, checkFormText(form)...)

	for i, k := range form.ReferenceKeys {
		if !entities.IsAccessKey(k) {
			v = append(v, fmt.Sprintf("reference key %d must have 44 digits", i+1))
		}
	}
	return v
}

func checkFormText(form entities.Form) []string {
	var v []string
	r := form.Recipient
	v = append(v, CheckFiscalText("operation nature", form.Identification.OperationNature, MaxOperationNatureLen)...)
	v = append(v, CheckFiscalText("recipient name", r.Name, MaxAddressFieldLength)...)
	v = append(v, CheckFiscalText("street", r.Street, MaxAddressFieldLength)...)
	v = append(v, CheckFiscalText("number", r.Number, MaxAddressFieldLength)...)
	v = append(v, CheckFiscalText("complement", r.Complement, MaxAddressFieldLength)...)
	v = append(v, CheckFiscalText("district", r.District, MaxAddressFieldLength)...)
	v = append(v, CheckFiscalText("city", r.City, MaxAddressFieldLength)...)
	for i, it := range form.Items {
		v = append(v, CheckFiscalText(fmt.Sprintf("product %d description", i+1), it.Description, MaxProductDescriptionLen)...)
	}
	return v
}
