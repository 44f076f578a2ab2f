package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultArchiveTimeout = 2 * time.Minute

// ArtifactArchiver copies authorized XML/PDF artifacts into the archive as
// soon as they exist, so later downloads do not depend on the fiscal backend.
type ArtifactArchiver struct {
	gateway interfaces.IFiscalGateway
	store   interfaces.IArtifactStore
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewArtifactArchiver(gateway interfaces.IFiscalGateway, store interfaces.IArtifactStore, logger *zap.Logger) *ArtifactArchiver {
	return &ArtifactArchiver{
		gateway: gateway,
		store:   store,
		logger:  loggerOrNop(logger),
		timeout: defaultArchiveTimeout,
	}
}

// OnDocumentEmitted archives in the background and never fails the publisher.
func (a *ArtifactArchiver) OnDocumentEmitted(ctx context.Context, e entities.DocumentEmitted) error {
	a.background(ctx, func(ctx context.Context) error { return a.ArchiveDocument(ctx, e) })
	return nil
}

func (a *ArtifactArchiver) OnCorrectionLetterRegistered(ctx context.Context, e entities.CorrectionLetterRegistered) error {
	a.background(ctx, func(ctx context.Context) error { return a.ArchiveCorrectionLetter(ctx, e) })
	return nil
}

// Wait blocks until in-flight archive jobs finish.
func (a *ArtifactArchiver) Wait() {
	a.wg.Wait()
}

// ArchiveDocument stores both artifacts of an authorized document.
// Provisional documents are skipped; their files do not exist yet.
func (a *ArtifactArchiver) ArchiveDocument(ctx context.Context, e entities.DocumentEmitted) error {
	if e.Status != entities.DocumentStatusAutorizada || e.AccessKey == "" {
		return nil
	}
	for _, kind := range []interfaces.ArtifactKind{interfaces.ArtifactXML, interfaces.ArtifactPDF} {
		path := e.XMLPath
		if kind == interfaces.ArtifactPDF {
			path = e.PDFPath
		}
		req := interfaces.ArtifactRequest{Kind: kind, CompanyID: e.CompanyID, AccessKey: e.AccessKey, Path: path}
		if err := a.copy(ctx, req, ArtifactKey(e.CompanyID, e.AccessKey, kind)); err != nil {
			return err
		}
	}
	a.logger.Info("[nfe][archive] document archived", zap.String("access_key", e.AccessKey))
	return nil
}

func (a *ArtifactArchiver) ArchiveCorrectionLetter(ctx context.Context, e entities.CorrectionLetterRegistered) error {
	if e.PDFPath == "" || e.AccessKey == "" {
		return nil
	}
	req := interfaces.ArtifactRequest{Kind: interfaces.ArtifactPDF, CompanyID: e.CompanyID, AccessKey: e.AccessKey, Path: e.PDFPath}
	return a.copy(ctx, req, CorrectionArtifactKey(e.CompanyID, e.AccessKey, e.Sequence))
}

func (a *ArtifactArchiver) copy(ctx context.Context, req interfaces.ArtifactRequest, key string) error {
	art, err := a.gateway.FetchArtifact(ctx, req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", key, err)
	}
	if art.StatusCode < 200 || art.StatusCode > 299 || len(art.Body) == 0 {
		return fmt.Errorf("%w: %s returned status %d", ErrArtifactUnavailable, key, art.StatusCode)
	}
	if err := a.store.Put(ctx, key, art.ContentType, art.Body); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (a *ArtifactArchiver) background(ctx context.Context, job func(context.Context) error) {
	if a.gateway == nil || a.store == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
		defer cancel()
		if err := job(ctx); err != nil {
			a.logger.Warn("[nfe][archive] archive failed", zap.Error(err))
		}
	}()
}
