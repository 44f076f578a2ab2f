package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCannotCancel         = errors.New("only authorized documents can be cancelled")
	ErrCannotCorrect        = errors.New("correction letters are only accepted for authorized documents")
	ErrCannotInvalidate     = errors.New("document cannot be invalidated in its current status")
	ErrCorrectionLimit      = errors.New("correction letter limit reached")
	ErrInvalidJustification = errors.New("invalid justification")
	ErrInvalidNumberRange   = errors.New("invalid number range")
	ErrInvalidCNPJ          = errors.New("company CNPJ must have 14 digits")
	ErrInvalidEmail         = errors.New("invalid e-mail address")
	ErrNoEmailRecipients    = errors.New("no e-mail recipients")
	ErrDocumentNotEmitted   = errors.New("document has no access key yet")
	ErrArtifactUnavailable  = errors.New("artifact not available")
	ErrInvalidArtifactKind  = errors.New("artifact kind must be xml or pdf")
	ErrInvalidCorrectionSeq = errors.New("invalid correction letter sequence")
	ErrLocalUpdateDeferred  = errors.New("event registered at SEFAZ but the local update failed")
)

var emailValidate = validator.New()

type InvalidateCommand struct {
	DocumentID string
	Model      entities.DocumentModel
	Series     int
	From       int
	To         int
	Reason     string
}

type InvalidationResult struct {
	Protocol  string                   `json:"protocolo"`
	SefazCode entities.SefazStatus     `json:"codigo_sefaz"`
	Reason    string                   `json:"motivo_sefaz"`
	Document  *entities.FiscalDocument `json:"document,omitempty"`
}

// IPostEmissionUseCase groups the actions available after emission.
//
//   - "Cancelar NFe" => Cancel()
//   - "Inutilizar numeração" => Invalidate()
//   - "Carta de Correção" => IssueCorrectionLetter()
type IPostEmissionUseCase interface {
	Cancel(ctx context.Context, companyID, documentID, reason string) (entities.FiscalDocument, error)
	Invalidate(ctx context.Context, companyID string, cmd InvalidateCommand) (InvalidationResult, error)
	IssueCorrectionLetter(ctx context.Context, companyID, documentID, text string) (entities.CorrectionLetter, error)
	ListCorrectionLetters(ctx context.Context, companyID, documentID string) ([]entities.CorrectionLetter, error)
	CorrectionLetterPDF(ctx context.Context, companyID, documentID string, sequence int) (string, error)
	GenerateDANFE(ctx context.Context, companyID, documentID string) (string, error)
	DownloadArtifact(ctx context.Context, companyID, documentID string, kind interfaces.ArtifactKind) (interfaces.Artifact, error)
	SendEmail(ctx context.Context, companyID, documentID string, emails []string) error
}

type PostEmissionUseCase struct {
	docs      interfaces.IFiscalDocumentRepository
	letters   interfaces.ICorrectionLetterRepository
	companies interfaces.ICompanyRepository
	gateway   interfaces.IFiscalGateway
	store     interfaces.IArtifactStore
	queue     interfaces.IReconciliationQueue
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
}

var _ IPostEmissionUseCase = (*PostEmissionUseCase)(nil)

func NewPostEmissionUseCase(
	docs interfaces.IFiscalDocumentRepository,
	letters interfaces.ICorrectionLetterRepository,
	companies interfaces.ICompanyRepository,
	gateway interfaces.IFiscalGateway,
	store interfaces.IArtifactStore,
	queue interfaces.IReconciliationQueue,
	publisher interfaces.IEventPublisher,
	logger *zap.Logger,
) *PostEmissionUseCase {
	return &PostEmissionUseCase{
		docs:      docs,
		letters:   letters,
		companies: companies,
		gateway:   gateway,
		store:     store,
		queue:     queue,
		publisher: publisherOrNoop(publisher),
		logger:    loggerOrNop(logger),
	}
}

func checkJustification(label, s string, max int) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidJustification, label)
	}
	if msgs := CheckJustification(label, s, entities.MinJustificationLength, max); len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidJustification, strings.Join(msgs, "; "))
	}
	return nil
}

func eventError(resp interfaces.EventResponse) error {
	if resp.Status.EventAccepted() {
		return nil
	}
	return &SefazRejectionError{Code: resp.Status, Reason: resp.Reason}
}

// Cancel registers the cancellation event at SEFAZ and marks the document cancelled.
// Every local check runs before the remote call.
func (u *PostEmissionUseCase) Cancel(ctx context.Context, companyID, documentID, reason string) (entities.FiscalDocument, error) {
	doc, err := loadDocument(ctx, u.docs, companyID, documentID)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if !doc.CanBeCancelled() {
		return entities.FiscalDocument{}, ErrCannotCancel
	}
	if err := checkJustification("cancellation reason", reason, entities.MaxCancelReasonLength); err != nil {
		return entities.FiscalDocument{}, err
	}
	if u.gateway == nil {
		return entities.FiscalDocument{}, ErrFiscalGatewayNotSet
	}

	resp, err := u.gateway.Cancel(ctx, interfaces.CancelRequest{
		CompanyID:  companyID,
		DocumentID: doc.ID,
		AccessKey:  doc.AccessKey,
		Reason:     reason,
	})
	if err != nil {
		return entities.FiscalDocument{}, fmt.Errorf("cancel request: %w", err)
	}
	if err := eventError(resp); err != nil {
		return entities.FiscalDocument{}, err
	}

	now := utcNow()
	doc.Status = entities.DocumentStatusCancelada
	doc.CancelReason = reason
	doc.CancelledAt = now
	doc.UpdatedAt = now

	saved, err := u.saveAfterEvent(ctx, doc)
	if err != nil {
		return doc, err
	}
	u.publisher.Publish(ctx, entities.DocumentCancelled{
		DocumentID: doc.ID,
		CompanyID:  companyID,
		AccessKey:  doc.AccessKey,
		OccurredAt: now,
	})
	u.logger.Info("[nfe][post-emission] document cancelled",
		zap.String("document_id", doc.ID),
		zap.String("access_key", doc.AccessKey),
		zap.String("protocol", resp.Protocol),
	)
	return saved, nil
}

// saveAfterEvent writes a document whose SEFAZ event is already registered.
// On failure the write is queued for reconciliation.
func (u *PostEmissionUseCase) saveAfterEvent(ctx context.Context, doc entities.FiscalDocument) (entities.FiscalDocument, error) {
	bg := context.WithoutCancel(ctx)
	saved, err := u.docs.Update(bg, doc)
	if err == nil && saved.ID != "" {
		return saved, nil
	}
	if err == nil {
		err = ErrDocumentNotFound
	}
	u.logger.Error("[nfe][post-emission] local update failed after SEFAZ event",
		zap.String("document_id", doc.ID), zap.Error(err))

	if u.queue != nil {
		qerr := u.queue.Enqueue(bg, interfaces.ReconciliationTask{
			ID:         uuid.NewString(),
			Kind:       interfaces.ReconcilePersist,
			Document:   doc,
			LastError:  err.Error(),
			EnqueuedAt: utcNow(),
		})
		if qerr == nil {
			u.publisher.Publish(bg, entities.DocumentPersistDeferred{
				DocumentID: doc.ID,
				CompanyID:  doc.CompanyID,
				AccessKey:  doc.AccessKey,
				Reason:     err.Error(),
				OccurredAt: utcNow(),
			})
			return doc, nil
		}
		u.logger.Error("[nfe][post-emission] reconciliation enqueue failed", zap.Error(qerr))
	}
	return doc, fmt.Errorf("%w: %v", ErrLocalUpdateDeferred, err)
}

// Invalidate voids a range of unused numbers. When DocumentID is set the range
// must cover that document, which is then marked inutilizada.
func (u *PostEmissionUseCase) Invalidate(ctx context.Context, companyID string, cmd InvalidateCommand) (InvalidationResult, error) {
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return InvalidationResult{}, err
	}

	var doc entities.FiscalDocument
	if strings.TrimSpace(cmd.DocumentID) != "" {
		doc, err = loadDocument(ctx, u.docs, company.ID, cmd.DocumentID)
		if err != nil {
			return InvalidationResult{}, err
		}
		if !doc.CanBeInvalidated() {
			return InvalidationResult{}, ErrCannotInvalidate
		}
		if cmd.Model == "" {
			cmd.Model = doc.Model
		}
		if cmd.Series == 0 {
			cmd.Series = doc.Series
		}
		if cmd.From == 0 && cmd.To == 0 {
			cmd.From, cmd.To = doc.Number, doc.Number
		}
		if doc.Number > 0 && (doc.Number < cmd.From || doc.Number > cmd.To) {
			return InvalidationResult{}, fmt.Errorf("%w: document number %d is outside %d-%d", ErrInvalidNumberRange, doc.Number, cmd.From, cmd.To)
		}
	}
	if cmd.Model == "" {
		cmd.Model = entities.DocumentModelNFe
	}
	if !cmd.Model.Valid() {
		return InvalidationResult{}, ErrInvalidModel
	}
	if cmd.Series < 0 || cmd.Series > 999 {
		return InvalidationResult{}, ErrInvalidSeries
	}
	if cmd.From <= 0 || cmd.From > cmd.To {
		return InvalidationResult{}, fmt.Errorf("%w: %d-%d", ErrInvalidNumberRange, cmd.From, cmd.To)
	}
	if len(company.CNPJ) != 14 || strings.Trim(company.CNPJ, "0123456789") != "" {
		return InvalidationResult{}, ErrInvalidCNPJ
	}
	if err := checkJustification("invalidation reason", cmd.Reason, entities.MaxCancelReasonLength); err != nil {
		return InvalidationResult{}, err
	}
	if u.gateway == nil {
		return InvalidationResult{}, ErrFiscalGatewayNotSet
	}

	resp, err := u.gateway.Invalidate(ctx, interfaces.InvalidateRequest{
		CompanyID: company.ID,
		CNPJ:      company.CNPJ,
		Model:     cmd.Model,
		Series:    cmd.Series,
		From:      cmd.From,
		To:        cmd.To,
		Reason:    cmd.Reason,
	})
	if err != nil {
		return InvalidationResult{}, fmt.Errorf("invalidate request: %w", err)
	}
	if err := eventError(resp); err != nil {
		return InvalidationResult{}, err
	}

	result := InvalidationResult{Protocol: resp.Protocol, SefazCode: resp.Status, Reason: resp.Reason}
	now := utcNow()
	if doc.ID != "" {
		doc.Status = entities.DocumentStatusInutilizada
		doc.InvalidationReason = cmd.Reason
		doc.InvalidatedAt = now
		doc.UpdatedAt = now
		saved, err := u.saveAfterEvent(ctx, doc)
		if err != nil {
			return result, err
		}
		result.Document = &saved
	}

	u.publisher.Publish(ctx, entities.NumberRangeInvalidated{
		CompanyID:  company.ID,
		Model:      cmd.Model,
		Series:     cmd.Series,
		From:       cmd.From,
		To:         cmd.To,
		OccurredAt: now,
	})
	u.logger.Info("[nfe][post-emission] number range invalidated",
		zap.String("company_id", company.ID),
		zap.Int("series", cmd.Series),
		zap.Int("from", cmd.From),
		zap.Int("to", cmd.To),
	)
	return result, nil
}

// IssueCorrectionLetter registers the next CCe of an authorized document and
// asks the backend for its PDF. A PDF failure does not undo the registration.
func (u *PostEmissionUseCase) IssueCorrectionLetter(ctx context.Context, companyID, documentID, text string) (entities.CorrectionLetter, error) {
	doc, err := loadDocument(ctx, u.docs, companyID, documentID)
	if err != nil {
		return entities.CorrectionLetter{}, err
	}
	if !doc.CanReceiveCorrection() {
		return entities.CorrectionLetter{}, ErrCannotCorrect
	}
	if err := checkJustification("correction text", text, entities.MaxCorrectionLength); err != nil {
		return entities.CorrectionLetter{}, err
	}
	if u.gateway == nil {
		return entities.CorrectionLetter{}, ErrFiscalGatewayNotSet
	}

	existing, err := u.letters.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return entities.CorrectionLetter{}, err
	}
	seq := entities.NextCorrectionSequence(existing)
	if seq > entities.MaxCorrectionSequence {
		return entities.CorrectionLetter{}, fmt.Errorf("%w (%d)", ErrCorrectionLimit, entities.MaxCorrectionSequence)
	}

	resp, err := u.gateway.SubmitCorrection(ctx, interfaces.CorrectionRequest{
		CompanyID: companyID,
		AccessKey: doc.AccessKey,
		Text:      text,
		Sequence:  seq,
	})
	if err != nil {
		return entities.CorrectionLetter{}, fmt.Errorf("correction request: %w", err)
	}
	if err := eventError(resp); err != nil {
		return entities.CorrectionLetter{}, err
	}

	letter := entities.CorrectionLetter{
		ID:           uuid.NewString(),
		DocumentID:   doc.ID,
		CompanyID:    companyID,
		AccessKey:    doc.AccessKey,
		Sequence:     seq,
		Text:         text,
		Protocol:     resp.Protocol,
		SefazCode:    string(resp.Status),
		RegisteredAt: utcNow(),
	}

	path, err := u.gateway.GenerateCorrectionPDF(ctx, companyID, doc.AccessKey, seq)
	if err != nil {
		u.logger.Warn("[nfe][post-emission] correction PDF generation failed",
			zap.String("access_key", doc.AccessKey), zap.Int("sequence", seq), zap.Error(err))
	} else {
		letter.PDFPath = path
	}

	created, err := u.letters.Create(context.WithoutCancel(ctx), letter)
	if err != nil {
		return letter, err
	}
	u.publisher.Publish(ctx, entities.CorrectionLetterRegistered{
		DocumentID: doc.ID,
		CompanyID:  companyID,
		AccessKey:  doc.AccessKey,
		Sequence:   seq,
		PDFPath:    letter.PDFPath,
		OccurredAt: letter.RegisteredAt,
	})
	u.logger.Info("[nfe][post-emission] correction letter registered",
		zap.String("access_key", doc.AccessKey), zap.Int("sequence", seq))
	return created, nil
}

// ListCorrectionLetters returns the local history, falling back to the fiscal
// backend when nothing was recorded locally.
func (u *PostEmissionUseCase) ListCorrectionLetters(ctx context.Context, companyID, documentID string) ([]entities.CorrectionLetter, error) {
	doc, err := loadDocument(ctx, u.docs, companyID, documentID)
	if err != nil {
		return nil, err
	}
	letters, err := u.letters.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	if len(letters) > 0 || doc.AccessKey == "" || u.gateway == nil {
		return letters, nil
	}
	remote, err := u.gateway.ListCorrections(ctx, companyID, doc.AccessKey)
	if err != nil {
		u.logger.Warn("[nfe][post-emission] remote correction list failed", zap.String("access_key", doc.AccessKey), zap.Error(err))
		return letters, nil
	}
	return remote, nil
}

func (u *PostEmissionUseCase) CorrectionLetterPDF(ctx context.Context, companyID, documentID string, sequence int) (string, error) {
	if sequence < 1 || sequence > entities.MaxCorrectionSequence {
		return "", ErrInvalidCorrectionSeq
	}
	doc, err := u.emittedDocument(ctx, companyID, documentID)
	if err != nil {
		return "", err
	}
	letters, err := u.letters.ListByDocumentID(ctx, doc.ID)
	if err != nil {
		return "", err
	}
	for _, l := range letters {
		if l.Sequence == sequence && l.PDFPath != "" {
			return l.PDFPath, nil
		}
	}
	return u.gateway.GenerateCorrectionPDF(ctx, companyID, doc.AccessKey, sequence)
}

// GenerateDANFE renders the DANFE again and remembers its path.
func (u *PostEmissionUseCase) GenerateDANFE(ctx context.Context, companyID, documentID string) (string, error) {
	doc, err := u.emittedDocument(ctx, companyID, documentID)
	if err != nil {
		return "", err
	}
	path, err := u.gateway.GenerateDANFE(ctx, companyID, doc.AccessKey)
	if err != nil {
		return "", fmt.Errorf("danfe request: %w", err)
	}
	if path != "" && path != doc.PDFPath {
		doc.PDFPath = path
		doc.UpdatedAt = utcNow()
		if _, err := u.docs.Update(ctx, doc); err != nil {
			u.logger.Warn("[nfe][post-emission] danfe path not saved", zap.String("document_id", doc.ID), zap.Error(err))
		}
	}
	return path, nil
}

// DownloadArtifact serves the archived copy when there is one and otherwise
// fetches it from the fiscal backend, archiving it on the way.
func (u *PostEmissionUseCase) DownloadArtifact(ctx context.Context, companyID, documentID string, kind interfaces.ArtifactKind) (interfaces.Artifact, error) {
	if kind != interfaces.ArtifactXML && kind != interfaces.ArtifactPDF {
		return interfaces.Artifact{}, ErrInvalidArtifactKind
	}
	doc, err := u.emittedDocument(ctx, companyID, documentID)
	if err != nil {
		return interfaces.Artifact{}, err
	}

	key := ArtifactKey(companyID, doc.AccessKey, kind)
	if u.store != nil {
		body, contentType, found, err := u.store.Get(ctx, key)
		if err != nil {
			u.logger.Warn("[nfe][post-emission] archive read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return interfaces.Artifact{StatusCode: 200, ContentType: contentType, Body: body}, nil
		}
	}

	path := doc.XMLPath
	if kind == interfaces.ArtifactPDF {
		path = doc.PDFPath
	}
	art, err := u.gateway.FetchArtifact(ctx, interfaces.ArtifactRequest{
		Kind:      kind,
		CompanyID: companyID,
		AccessKey: doc.AccessKey,
		Path:      path,
	})
	if err != nil {
		return interfaces.Artifact{}, fmt.Errorf("artifact download: %w", err)
	}
	if art.StatusCode < 200 || art.StatusCode > 299 || len(art.Body) == 0 {
		return interfaces.Artifact{}, fmt.Errorf("%w: %s returned status %d", ErrArtifactUnavailable, kind, art.StatusCode)
	}

	if u.store != nil {
		if err := u.store.Put(ctx, key, art.ContentType, art.Body); err != nil {
			u.logger.Warn("[nfe][post-emission] archive write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return art, nil
}

// SendEmail resends the document. An empty list falls back to the recipient's
// registered addresses.
func (u *PostEmissionUseCase) SendEmail(ctx context.Context, companyID, documentID string, emails []string) error {
	company, err := loadCompany(ctx, u.companies, companyID)
	if err != nil {
		return err
	}
	doc, err := u.emittedDocument(ctx, company.ID, documentID)
	if err != nil {
		return err
	}

	var list []string
	for _, e := range emails {
		if e = strings.TrimSpace(e); e != "" {
			list = append(list, e)
		}
	}
	if len(list) == 0 {
		list = doc.Form.Recipient.Emails
	}
	if len(list) == 0 {
		return ErrNoEmailRecipients
	}
	for _, e := range list {
		if err := emailValidate.Var(e, "required,email"); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidEmail, e)
		}
	}

	err = u.gateway.SendEmail(ctx, interfaces.EmailRequest{
		CompanyID: company.ID,
		AccessKey: doc.AccessKey,
		Emails:    list,
		Number:    doc.Number,
		Series:    doc.Series,
		Total:     doc.Total.StringFixed(2),
		Company:   company,
		Recipient: doc.RecipientName,
	})
	if err != nil {
		return fmt.Errorf("email request: %w", err)
	}
	u.logger.Info("[nfe][post-emission] e-mail sent",
		zap.String("access_key", doc.AccessKey), zap.Strings("to", list))
	return nil
}

func (u *PostEmissionUseCase) emittedDocument(ctx context.Context, companyID, documentID string) (entities.FiscalDocument, error) {
	doc, err := loadDocument(ctx, u.docs, companyID, documentID)
	if err != nil {
		return entities.FiscalDocument{}, err
	}
	if doc.AccessKey == "" {
		return entities.FiscalDocument{}, ErrDocumentNotEmitted
	}
	if u.gateway == nil {
		return entities.FiscalDocument{}, ErrFiscalGatewayNotSet
	}
	return doc, nil
}

// ArtifactKey is the archive object key of a document artifact.
func ArtifactKey(companyID, accessKey string, kind interfaces.ArtifactKind) string {
	return fmt.Sprintf("nfe/%s/%s.%s", companyID, accessKey, kind)
}

// CorrectionArtifactKey is the archive object key of a CCe PDF.
func CorrectionArtifactKey(companyID, accessKey string, sequence int) string {
	return fmt.Sprintf("nfe/%s/%s-cce-%02d.pdf", companyID, accessKey, sequence)
}
