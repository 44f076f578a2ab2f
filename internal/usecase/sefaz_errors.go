package usecase

import (
	"regexp"
	"strings"

	"nfe_backoffice/internal/domain/entities"
)

// Categories used to group SEFAZ rejections for operators.
const (
	SefazCategoryDuplicate   = "duplicidade"
	SefazCategoryDocument    = "documento"
	SefazCategoryDate        = "data"
	SefazCategoryKey         = "chave"
	SefazCategoryEnvironment = "ambiente"
	SefazCategoryLocation    = "localizacao"
	SefazCategoryCertificate = "certificado"
	SefazCategoryProduct     = "produto"
	SefazCategoryProcessing  = "processamento"
	SefazCategoryOther       = "outros"
)

var sefazErrorTable = map[string]entities.SefazErrorInfo{
	"206": {Title: "NFe já inutilizada", Description: "O número informado pertence a uma faixa inutilizada.", Remedy: "Use o próximo número disponível da série.", Category: SefazCategoryDuplicate},
	"539": {Title: "Duplicidade de NFe", Description: "Já existe NFe autorizada com este número e série, com chave diferente.", Remedy: "Confira a numeração e emita com o próximo número livre.", Category: SefazCategoryDuplicate},
	"204": {Title: "Duplicidade de NFe", Description: "A mesma NFe já foi enviada e autorizada.", Remedy: "Consulte a nota pela chave antes de reenviar.", Category: SefazCategoryDuplicate},
	"207": {Title: "CNPJ do emitente inválido", Description: "O CNPJ da empresa emissora não passou na validação.", Remedy: "Revise o CNPJ no cadastro da empresa.", Category: SefazCategoryDocument},
	"209": {Title: "IE do emitente inválida", Description: "A inscrição estadual da empresa não confere com a UF.", Remedy: "Revise a inscrição estadual no cadastro da empresa.", Category: SefazCategoryDocument},
	"215": {Title: "Falha no schema XML", Description: "O XML gerado não respeita o leiaute oficial.", Remedy: "Verifique campos com caracteres especiais ou tamanhos acima do permitido.", Category: SefazCategoryDocument},
	"401": {Title: "CPF do destinatário inválido", Description: "O CPF informado para o destinatário é inválido.", Remedy: "Corrija o documento do destinatário.", Category: SefazCategoryDocument},
	"228": {Title: "Data de emissão atrasada", Description: "A data de emissão está muito distante da data de recebimento.", Remedy: "Emita novamente com a data atual.", Category: SefazCategoryDate},
	"703": {Title: "Data de emissão futura", Description: "A data de emissão é posterior ao horário da SEFAZ.", Remedy: "Ajuste o relógio e o fuso horário do servidor.", Category: SefazCategoryDate},
	"315": {Title: "Data anterior ao credenciamento", Description: "A data de emissão é anterior ao início de uso da NFe pela empresa.", Remedy: "Confira a data de emissão.", Category: SefazCategoryDate},
	"502": {Title: "Chave de acesso inválida", Description: "A chave de acesso não corresponde aos dados da nota.", Remedy: "Gere a nota novamente para recalcular a chave.", Category: SefazCategoryKey},
	"253": {Title: "Dígito verificador inválido", Description: "O dígito verificador da chave de acesso não confere.", Remedy: "Gere a nota novamente para recalcular a chave.", Category: SefazCategoryKey},
	"252": {Title: "Ambiente divergente", Description: "O ambiente da nota difere do ambiente do web service.", Remedy: "Confira se a empresa está em homologação ou produção.", Category: SefazCategoryEnvironment},
	"226": {Title: "UF do emitente divergente", Description: "A UF da chave não corresponde à UF do emitente.", Remedy: "Revise a UF no cadastro da empresa.", Category: SefazCategoryLocation},
	"247": {Title: "UF divergente", Description: "A UF do emitente difere da UF autorizadora.", Remedy: "Revise a UF no cadastro da empresa.", Category: SefazCategoryLocation},
	"270": {Title: "Município do emitente inexistente", Description: "O código IBGE do município do emitente não existe.", Remedy: "Corrija o código de município da empresa.", Category: SefazCategoryLocation},
	"272": {Title: "Município do destinatário inexistente", Description: "O código IBGE do município do destinatário não existe.", Remedy: "Corrija o código de município do destinatário.", Category: SefazCategoryLocation},
	"273": {Title: "Município divergente da UF", Description: "O município informado não pertence à UF.", Remedy: "Revise cidade e UF do endereço.", Category: SefazCategoryLocation},
	"280": {Title: "Certificado inválido", Description: "O certificado digital do emissor é inválido.", Remedy: "Reenvie o certificado A1 da empresa.", Category: SefazCategoryCertificate},
	"897": {Title: "Código numérico inválido", Description: "O código numérico (cNF) da chave não é aceito.", Remedy: "Gere a nota novamente com um novo código numérico.", Category: SefazCategoryProduct},
	"611": {Title: "GTIN inválido", Description: "O código de barras (GTIN/EAN) de um produto é inválido.", Remedy: "Corrija ou remova o GTIN do produto.", Category: SefazCategoryProduct},
	"103": {Title: "Lote recebido", Description: "O lote foi recebido e ainda está sendo processado.", Remedy: "Aguarde e consulte a situação da nota.", Category: SefazCategoryProcessing},
	"104": {Title: "Lote processado", Description: "O lote foi processado; consulte o resultado de cada nota.", Remedy: "Consulte a situação da nota pela chave.", Category: SefazCategoryProcessing},
	"105": {Title: "Lote em processamento", Description: "O lote ainda está em processamento na SEFAZ.", Remedy: "Aguarde e consulte a situação da nota.", Category: SefazCategoryProcessing},
}

var sefazCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)status\s+sefaz:\s*(\d{3})`),
	regexp.MustCompile(`(?i)cstat\D{0,3}(\d{3})`),
	regexp.MustCompile(`(?i)c[oó]digo\s*:?\s*(\d{3})`),
	regexp.MustCompile(`(?i)rejei[cç][aã]o\s*:?\s*(\d{3})`),
	regexp.MustCompile(`(?i)status\s*:?\s*(\d{3})`),
	regexp.MustCompile(`(?i)erro\s*:?\s*(\d{3})`),
}

// ExtractSefazCode pulls a three-digit cStat out of a free-text backend message.
func ExtractSefazCode(message string) string {
	for _, re := range sefazCodePatterns {
		if m := re.FindStringSubmatch(message); len(m) == 2 {
			return m[1]
		}
	}
	return ""
}

// TranslateSefazError maps a rejection code to an operator-facing explanation.
// Unknown codes fall back to a generic entry carrying the backend's reason.
func TranslateSefazError(code, reason string) entities.SefazErrorInfo {
	code = strings.TrimSpace(code)
	if code == "" {
		code = ExtractSefazCode(reason)
	}
	if info, ok := sefazErrorTable[code]; ok {
		info.Code = code
		if reason != "" {
			info.Description = info.Description + " (" + reason + ")"
		}
		return info
	}
	desc := reason
	if desc == "" {
		desc = "A SEFAZ rejeitou a nota sem detalhar o motivo."
	}
	return entities.SefazErrorInfo{
		Code:        code,
		Title:       "Rejeição na validação da NFe",
		Description: desc,
		Remedy:      "Revise os dados da nota e o log de emissão.",
		Category:    SefazCategoryOther,
	}
}
