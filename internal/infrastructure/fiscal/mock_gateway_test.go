package fiscal

import (
	"context"
	"testing"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockAccessKey_IsWellFormed(t *testing.T) {
	c := entities.Company{CNPJ: "12.345.678/0001-95", State: "sp"}
	at := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	key := MockAccessKey(c, entities.DocumentModelNFCe, 1, 42, "00000042", at)
	require.True(t, entities.IsAccessKey(key), key)
	assert.Equal(t, "35", key[:2])
	assert.Equal(t, "2401", key[2:6])
	assert.Equal(t, "12345678000195", key[6:20])
	assert.Equal(t, "65", key[20:22])
	assert.Equal(t, "001", key[22:25])
	assert.Equal(t, "000000042", key[25:34])
	assert.Equal(t, checkDigit(key[:43]), int(key[43]-'0'))
}

func TestMockGateway_EmitThenArtifactsPassVerification(t *testing.T) {
	g := NewMockGateway(nil)
	ctx := context.Background()

	form := entities.NewForm(entities.DocumentModelNFe, 1)
	form.Identification.Number = 7
	resp, err := g.Emit(ctx, interfaces.EmitRequest{
		CompanyID:   "c-1",
		NumericCode: "12345678",
		Company:     entities.Company{CNPJ: "12345678000195", State: "PR"},
		Form:        form,
	})
	require.NoError(t, err)
	assert.True(t, resp.Status.IsAuthorized())

	xml, err := g.FetchArtifact(ctx, interfaces.ArtifactRequest{Kind: interfaces.ArtifactXML, CompanyID: "c-1", AccessKey: resp.AccessKey})
	require.NoError(t, err)
	assert.NoError(t, usecase.VerifyXMLArtifact(xml, resp.AccessKey))

	pdf, err := g.FetchArtifact(ctx, interfaces.ArtifactRequest{Kind: interfaces.ArtifactPDF, CompanyID: "c-1", AccessKey: resp.AccessKey})
	require.NoError(t, err)
	assert.NoError(t, usecase.VerifyPDFArtifact(pdf, usecase.DefaultMinPDFSize))

	st, err := g.QueryStatus(ctx, "c-1", resp.AccessKey)
	require.NoError(t, err)
	assert.Equal(t, 7, st.Number)

	_, err = g.QueryStatus(ctx, "other", resp.AccessKey)
	assert.Error(t, err)
}

func TestMockGateway_EventsRequireKnownDocument(t *testing.T) {
	g := NewMockGateway(nil)
	ctx := context.Background()

	_, err := g.Cancel(ctx, interfaces.CancelRequest{AccessKey: testKey})
	assert.Error(t, err)

	resp, err := g.Emit(ctx, interfaces.EmitRequest{CompanyID: "c-1", Form: entities.NewForm(entities.DocumentModelNFe, 1)})
	require.NoError(t, err)

	ev, err := g.SubmitCorrection(ctx, interfaces.CorrectionRequest{CompanyID: "c-1", AccessKey: resp.AccessKey, Text: "corrige endereco", Sequence: 1})
	require.NoError(t, err)
	assert.True(t, ev.Status.EventAccepted())

	letters, err := g.ListCorrections(ctx, "c-1", resp.AccessKey)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, 1, letters[0].Sequence)
}
