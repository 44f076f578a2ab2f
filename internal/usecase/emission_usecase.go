package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"nfe_backoffice/internal/domain/entities"
	"nfe_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmissionJobNotFound = errors.New("emission job not found")
	ErrCertificateMissing  = errors.New("digital certificate is not configured")
	ErrCertificateExpired  = errors.New("digital certificate is expired")
	ErrIncompleteEmission  = errors.New("incomplete data returned by the fiscal backend")
	ErrDocumentNotEditable = errors.New("document was already emitted")
	ErrPaymentsExceedTotal = errors.New("payments exceed the document total")
)

const (
	DefaultMinPDFSize        = 1024
	DefaultJobRetention      = 30 * time.Minute
	postAuthorizationTimeout = 30 * time.Second
)

var paymentTolerance = decimal.NewFromFloat(0.01)

// SefazRejectionError is returned when SEFAZ answers with a non-authorizing cStat.
type SefazRejectionError struct {
	Code   entities.SefazStatus
	Reason string
}

func (e *SefazRejectionError) Error() string {
	return fmt.Sprintf("SEFAZ rejected the document: %s - %s", e.Code, e.Reason)
}

// ArtifactCheckError names the integrity check an emitted artifact failed.
type ArtifactCheckError struct {
	Artifact interfaces.ArtifactKind
	Check    string
	Detail   string
}

func (e *ArtifactCheckError) Error() string {
	return fmt.Sprintf("%s artifact failed %s check: %s", e.Artifact, e.Check, e.Detail)
}

type EmissionCommand struct {
	CompanyID  string
	DocumentID string
	Form       entities.Form
}

// IEmissionUseCase drives the NFe emission pipeline.
//
// Start runs the pipeline in the background and returns the job; GetJob exposes
// the tracker and log; CancelJob aborts every outstanding remote call.
type IEmissionUseCase interface {
	Start(ctx context.Context, cmd EmissionCommand) (entities.EmissionJob, error)
	Run(ctx context.Context, cmd EmissionCommand, tracker *EmissionTracker) entities.EmissionJob
	GetJob(ctx context.Context, companyID, jobID string) (entities.EmissionJob, error)
	CancelJob(ctx context.Context, companyID, jobID string) (entities.EmissionJob, error)
}

type EmissionUseCase struct {
	docs       interfaces.IFiscalDocumentRepository
	companies  interfaces.ICompanyRepository
	gateway    interfaces.IFiscalGateway
	queue      interfaces.IReconciliationQueue
	publisher  interfaces.IEventPublisher
	logger     *zap.Logger
	jobs       *emissionJobs
	minPDFSize int
}

var _ IEmissionUseCase = (*EmissionUseCase)(nil)

type EmissionOption func(*EmissionUseCase)

func WithMinPDFSize(n int) EmissionOption {
	return func(u *EmissionUseCase) { u.minPDFSize = n }
}

func WithJobRetention(d time.Duration) EmissionOption {
	return func(u *EmissionUseCase) { u.jobs.retention = d }
}

func NewEmissionUseCase(
	docs interfaces.IFiscalDocumentRepository,
	companies interfaces.ICompanyRepository,
	gateway interfaces.IFiscalGateway,
	queue interfaces.IReconciliationQueue,
	publisher interfaces.IEventPublisher,
	logger *zap.Logger,
	opts ...EmissionOption,
) *EmissionUseCase {
	u := &EmissionUseCase{
		docs:       docs,
		companies:  companies,
		gateway:    gateway,
		queue:      queue,
		publisher:  publisherOrNoop(publisher),
		logger:     loggerOrNop(logger),
		jobs:       newEmissionJobs(DefaultJobRetention),
		minPDFSize: DefaultMinPDFSize,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Start gates the form through Preflight and, when clean, launches the pipeline.
// The job outlives the request; only CancelJob stops it.
func (u *EmissionUseCase) Start(ctx context.Context, cmd EmissionCommand) (entities.EmissionJob, error) {
	if u.gateway == nil {
		return entities.EmissionJob{}, ErrFiscalGatewayNotSet
	}
	company, err := loadCompany(ctx, u.companies, cmd.CompanyID)
	if err != nil {
		return entities.EmissionJob{}, err
	}
	cmd.Form = normalizedForm(cmd.Form)
	if v := Preflight(company, cmd.Form); len(v) > 0 {
		return entities.EmissionJob{}, &PreflightError{Violations: v}
	}

	tracker := NewEmissionTracker(uuid.NewString(), company.ID, len(cmd.Form.Recipient.Emails) > 0)
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	u.jobs.add(tracker, cancel)

	go func() {
		defer cancel()
		u.Run(runCtx, cmd, tracker)
	}()

	u.logger.Info("[nfe][emission] job started",
		zap.String("job_id", tracker.Snapshot().ID),
		zap.String("company_id", company.ID),
	)
	return tracker.Snapshot(), nil
}

func (u *EmissionUseCase) GetJob(_ context.Context, companyID, jobID string) (entities.EmissionJob, error) {
	entry, ok := u.jobs.get(companyID, jobID)
	if !ok {
		return entities.EmissionJob{}, ErrEmissionJobNotFound
	}
	return entry.tracker.Snapshot(), nil
}

// CancelJob aborts the in-flight remote call of a running job.
func (u *EmissionUseCase) CancelJob(_ context.Context, companyID, jobID string) (entities.EmissionJob, error) {
	entry, ok := u.jobs.get(companyID, jobID)
	if !ok {
		return entities.EmissionJob{}, ErrEmissionJobNotFound
	}
	entry.cancel()
	u.logger.Info("[nfe][emission] job cancel requested", zap.String("job_id", jobID))
	return entry.tracker.Snapshot(), nil
}

// Run executes the pipeline synchronously. Steps run strictly in order and the
// first error halts it; no step is retried.
func (u *EmissionUseCase) Run(ctx context.Context, cmd EmissionCommand, tr *EmissionTracker) (job entities.EmissionJob) {
	bgCtx := context.WithoutCancel(ctx)
	tr.OnSettle(func(step entities.EmissionStepID, status entities.StepStatus, took time.Duration) {
		u.publisher.Publish(bgCtx, entities.EmissionStepFinished{Step: step, Status: status, Duration: took})
	})

	r := &emissionRun{u: u, cmd: cmd, tr: tr}

	defer func() {
		if rec := recover(); rec != nil {
			u.logger.Error("[nfe][emission] panic recovered", zap.Any("panic", rec), zap.Stack("stacktrace"))
			job = u.fail(ctx, r, fmt.Errorf("unexpected error: %v", rec))
		}
	}()

	tr.Logf("Emission started for company %s", cmd.CompanyID)

	if err := r.validate(ctx); err != nil {
		return u.fail(ctx, r, err)
	}
	if err := r.submit(ctx); err != nil {
		return u.fail(ctx, r, err)
	}
	if err := r.checkXML(ctx); err != nil {
		r.deferPersist(ctx, err)
		return u.fail(ctx, r, err)
	}
	if err := r.checkPDF(ctx); err != nil {
		r.deferPersist(ctx, err)
		return u.fail(ctx, r, err)
	}
	r.persist(ctx)
	r.finalize(ctx)
	r.sendEmail(ctx)

	outcome := entities.EmissionEmitted
	if len(r.result.Warnings) > 0 {
		outcome = entities.EmissionEmittedWithWarnings
	}
	tr.Logf("Emission finished: %s", outcome)
	tr.Finish(outcome, &r.result, "")
	u.logger.Info("[nfe][emission] finished",
		zap.String("company_id", cmd.CompanyID),
		zap.String("document_id", r.result.DocumentID),
		zap.String("access_key", r.result.AccessKey),
		zap.String("outcome", string(outcome)),
	)
	return tr.Snapshot()
}

func (u *EmissionUseCase) fail(ctx context.Context, r *emissionRun, err error) entities.EmissionJob {
	outcome := entities.EmissionFailed
	msg := err.Error()
	if ctx.Err() != nil {
		outcome = entities.EmissionCancelled
		msg = "emission cancelled by the operator: " + msg
	}

	var pe *PreflightError
	if errors.As(err, &pe) {
		r.tr.SetViolations(pe.Violations)
	}
	if info, ok := errorInfoFor(err); ok {
		r.tr.SetErrorInfo(info)
		r.tr.Logf("SEFAZ %s - %s: %s", info.Code, info.Title, info.Remedy)
	}

	r.tr.Fail(r.current, msg)
	r.tr.Logf("ERROR at %s: %s", r.current, msg)
	r.tr.Finish(outcome, nil, msg)

	u.publisher.Publish(context.WithoutCancel(ctx), entities.EmissionAborted{
		CompanyID:  r.cmd.CompanyID,
		Step:       r.current,
		Reason:     msg,
		SefazCode:  string(r.resp.Status),
		OccurredAt: utcNow(),
	})
	u.logger.Warn("[nfe][emission] halted",
		zap.String("company_id", r.cmd.CompanyID),
		zap.String("step", string(r.current)),
		zap.String("outcome", string(outcome)),
		zap.Error(err),
	)
	return r.tr.Snapshot()
}

func errorInfoFor(err error) (entities.SefazErrorInfo, bool) {
	var rej *SefazRejectionError
	if errors.As(err, &rej) {
		return TranslateSefazError(string(rej.Code), rej.Reason), true
	}
	if code := ExtractSefazCode(err.Error()); code != "" {
		return TranslateSefazError(code, err.Error()), true
	}
	return entities.SefazErrorInfo{}, false
}

// emissionRun is the state carried between pipeline steps.
type emissionRun struct {
	u        *EmissionUseCase
	cmd      EmissionCommand
	tr       *EmissionTracker
	current  entities.EmissionStepID
	company  entities.Company
	existing entities.FiscalDocument
	form     entities.Form
	docID    string
	code     string
	resp     interfaces.EmitResponse
	accepted bool
	result   entities.EmissionResult
}

func (r *emissionRun) begin(step entities.EmissionStepID) {
	r.current = step
	r.tr.Begin(step)
}

func (r *emissionRun) warn(step entities.EmissionStepID, msg string) {
	r.tr.Warn(step, msg)
	r.tr.Logf("WARNING at %s: %s", step, msg)
	r.result.Warnings = append(r.result.Warnings, msg)
}

func (r *emissionRun) validate(ctx context.Context) error {
	r.begin(entities.StepValidation)
	r.tr.Logf("Validating document data")

	company, err := loadCompany(ctx, r.u.companies, r.cmd.CompanyID)
	if err != nil {
		return err
	}
	r.company = company

	form := normalizedForm(r.cmd.Form)

	violations := Preflight(company, form)
	violations = append(violations, sectionViolations(form.Validate())...)
	now := utcNow()
	switch {
	case !company.Certificate.Configured:
		violations = append(violations, ErrCertificateMissing.Error())
	case company.Environment == entities.EnvironmentProducao && company.Certificate.Expired(now):
		violations = append(violations, ErrCertificateExpired.Error())
	}
	if form.Identification.Purpose.RequiresReferenceKeys() && !form.IsReturn() && len(form.ReferenceKeys) == 0 {
		violations = append(violations, "complementary and adjustment documents require at least one reference key")
	}

	if strings.TrimSpace(r.cmd.DocumentID) != "" {
		existing, err := loadDocument(ctx, r.u.docs, company.ID, r.cmd.DocumentID)
		if err != nil {
			return err
		}
		if !existing.IsDraft() {
			violations = append(violations, ErrDocumentNotEditable.Error())
		}
		r.existing = existing
	}

	id := &form.Identification
	if id.Number == 0 {
		max, err := r.u.docs.MaxNumber(ctx, company.ID, id.Model, id.Series)
		if err != nil {
			return fmt.Errorf("next number lookup: %w", err)
		}
		id.Number = max + 1
		r.tr.Logf("Assigned number %d (series %d)", id.Number, id.Series)
	} else {
		dups, err := r.u.docs.FindByNumber(ctx, company.ID, id.Model, id.Series, id.Number)
		if err != nil {
			return fmt.Errorf("duplicate number lookup: %w", err)
		}
		for _, d := range dups {
			if d.ID != r.existing.ID && !d.IsDraft() {
				violations = append(violations, ViolationDuplicateNumber)
				break
			}
		}
	}

	if len(violations) > 0 {
		return &PreflightError{Violations: violations}
	}

	if !form.IsReturn() {
		if err := r.adjustPayments(&form); err != nil {
			return err
		}
	}
	if id.IssueDate.IsZero() {
		id.IssueDate = now
	}

	r.form = form
	r.docID = r.existing.ID
	if r.docID == "" {
		r.docID = uuid.NewString()
	}
	r.code = r.existing.NumericCode
	if r.code == "" {
		r.code = newNumericCode()
	}
	r.tr.SetDocumentID(r.docID)
	r.tr.Succeed(entities.StepValidation, "")
	r.tr.Logf("Validation passed")
	return nil
}

// normalizedForm returns a copy with the model defaulted and the derived
// fields (line totals, totals, forced return payment) recomputed.
func normalizedForm(f entities.Form) entities.Form {
	form := f.Clone()
	if form.Identification.Model == "" {
		form.Identification.Model = entities.DocumentModelNFe
	}
	form.SetLineItems(form.Items)
	return form
}

// sectionViolations flattens the joined section errors into violation lines.
func sectionViolations(err error) []string {
	if err == nil {
		return nil
	}
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}
	var out []string
	for _, e := range errs {
		var se *entities.SectionError
		if !errors.As(e, &se) {
			out = append(out, e.Error())
			continue
		}
		for _, field := range se.Fields {
			out = append(out, fmt.Sprintf("%s: %s", se.Section, field))
		}
	}
	return out
}

// adjustPayments makes the payment sum match the total when it is off by more
// than one cent. The largest entry absorbs the difference.
func (r *emissionRun) adjustPayments(form *entities.Form) error {
	total := form.Totals.Total
	sum := form.Payments.Sum()
	diff := total.Sub(sum)
	if diff.Abs().LessThanOrEqual(paymentTolerance) {
		return nil
	}

	payments := append(entities.Payments(nil), form.Payments...)
	target := 0
	for i, p := range payments {
		if p.Value.GreaterThan(payments[target].Value) {
			target = i
		}
	}
	adjusted := payments[target].Value.Add(diff)
	if adjusted.IsNegative() {
		return fmt.Errorf("%w: total %s, payments %s", ErrPaymentsExceedTotal, total.StringFixed(2), sum.StringFixed(2))
	}
	r.tr.Logf("Payment %d (%s) adjusted from %s to %s to match total %s",
		target+1, payments[target].Method, payments[target].Value.StringFixed(2), adjusted.StringFixed(2), total.StringFixed(2))
	payments[target].Value = adjusted
	form.SetPayments(payments)
	return nil
}

func (r *emissionRun) submit(ctx context.Context) error {
	r.begin(entities.StepXMLGeneration)
	r.tr.Logf("Requesting XML generation, signature and SEFAZ submission")

	resp, err := r.u.gateway.Emit(ctx, interfaces.EmitRequest{
		CompanyID:   r.company.ID,
		DocumentID:  r.docID,
		NumericCode: r.code,
		Environment: r.company.Environment,
		Company:     r.company,
		Form:        r.form,
	})
	if err != nil {
		return fmt.Errorf("fiscal backend: %w", err)
	}
	r.resp = resp
	r.tr.Logf("SEFAZ answered %s - %s", resp.Status, resp.Reason)

	if !resp.Status.IsAuthorized() && !resp.Status.IsProcessing() {
		if strings.TrimSpace(resp.XML) != "" {
			r.tr.Succeed(entities.StepXMLGeneration, "XML generated and signed")
		} else {
			r.tr.Warn(entities.StepXMLGeneration, "no XML returned")
		}
		r.begin(entities.StepSefazSubmission)
		return &SefazRejectionError{Code: resp.Status, Reason: resp.Reason}
	}

	if strings.TrimSpace(resp.XML) == "" {
		return fmt.Errorf("%w: missing XML", ErrIncompleteEmission)
	}
	r.tr.Succeed(entities.StepXMLGeneration, "XML generated and signed")

	r.begin(entities.StepSefazSubmission)
	if !entities.IsAccessKey(resp.AccessKey) {
		return fmt.Errorf("%w: access key %q is not 44 digits", ErrIncompleteEmission, resp.AccessKey)
	}
	r.accepted = true
	r.result = entities.EmissionResult{
		DocumentID:  r.docID,
		AccessKey:   resp.AccessKey,
		Protocol:    resp.Protocol,
		SefazCode:   resp.Status,
		SefazReason: resp.Reason,
		Status:      resp.Status.DocumentStatus(),
		Number:      firstPositive(resp.Number, r.form.Identification.Number),
		Series:      firstPositive(resp.Series, r.form.Identification.Series),
		XMLPath:     resp.XMLPath,
		PDFPath:     resp.PDFPath,
	}

	if resp.Status.IsProcessing() {
		r.warn(entities.StepSefazSubmission, fmt.Sprintf("provisional status %s (%s): document pending SEFAZ confirmation", resp.Status, resp.Reason))
		return nil
	}
	if strings.TrimSpace(resp.Protocol) == "" {
		return fmt.Errorf("%w: missing authorization protocol", ErrIncompleteEmission)
	}
	r.tr.Succeed(entities.StepSefazSubmission, "Authorized, protocol "+resp.Protocol)
	r.tr.Logf("Access key %s, protocol %s", resp.AccessKey, resp.Protocol)
	return nil
}

func (r *emissionRun) checkXML(ctx context.Context) error {
	r.begin(entities.StepXMLArtifactCheck)
	art, err := r.u.gateway.FetchArtifact(ctx, interfaces.ArtifactRequest{
		Kind:      interfaces.ArtifactXML,
		CompanyID: r.company.ID,
		AccessKey: r.resp.AccessKey,
		Path:      r.resp.XMLPath,
	})
	if err != nil {
		return fmt.Errorf("xml artifact download: %w", err)
	}
	if err := VerifyXMLArtifact(art, r.resp.AccessKey); err != nil {
		return err
	}
	r.tr.Succeed(entities.StepXMLArtifactCheck, fmt.Sprintf("XML verified (%d bytes)", len(art.Body)))
	r.tr.Logf("XML artifact verified")
	return nil
}

func (r *emissionRun) checkPDF(ctx context.Context) error {
	r.begin(entities.StepPDFArtifactCheck)
	if strings.TrimSpace(r.resp.PDFPath) == "" {
		r.warn(entities.StepPDFArtifactCheck, fmt.Sprintf("DANFE not generated yet for status %s", r.resp.Status))
		return nil
	}
	art, err := r.u.gateway.FetchArtifact(ctx, interfaces.ArtifactRequest{
		Kind:      interfaces.ArtifactPDF,
		CompanyID: r.company.ID,
		AccessKey: r.resp.AccessKey,
		Path:      r.resp.PDFPath,
	})
	if err != nil {
		return fmt.Errorf("pdf artifact download: %w", err)
	}
	if err := VerifyPDFArtifact(art, r.u.minPDFSize); err != nil {
		return err
	}
	r.tr.Succeed(entities.StepPDFArtifactCheck, fmt.Sprintf("DANFE verified (%d bytes)", len(art.Body)))
	r.tr.Logf("PDF artifact verified")
	return nil
}

func (r *emissionRun) buildDocument() entities.FiscalDocument {
	now := utcNow()
	doc := r.existing
	if doc.ID == "" {
		doc = entities.FiscalDocument{ID: r.docID, CompanyID: r.company.ID, CreatedAt: now}
	}
	form := r.form.Clone()
	form.Identification.Number = r.result.Number
	form.Identification.Series = r.result.Series
	applyFormHeader(&doc, form)

	doc.Status = r.resp.Status.DocumentStatus()
	doc.Environment = r.company.Environment
	doc.NumericCode = r.code
	doc.AccessKey = r.resp.AccessKey
	doc.Protocol = r.resp.Protocol
	doc.Receipt = r.resp.Receipt
	doc.SefazCode = string(r.resp.Status)
	doc.SefazReason = r.resp.Reason
	doc.XML = r.resp.XML
	doc.XMLPath = r.resp.XMLPath
	doc.PDFPath = r.resp.PDFPath
	doc.IssuedAt = form.Identification.IssueDate
	if r.resp.Status.IsAuthorized() {
		doc.AuthorizedAt = now
		if t, err := time.Parse(time.RFC3339, r.resp.AuthorizedAt); err == nil {
			doc.AuthorizedAt = t.UTC()
		}
	}
	doc.UpdatedAt = now
	return doc
}

// persist writes the authorized record. A failure here never turns the emission
// into a failure: the document is legally valid, so the write is queued for
// reconciliation and surfaced as a warning.
func (r *emissionRun) persist(ctx context.Context) {
	r.begin(entities.StepDatabasePersist)
	doc := r.buildDocument()

	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), postAuthorizationTimeout)
	defer cancel()

	var saved entities.FiscalDocument
	var err error
	if r.existing.ID != "" {
		saved, err = r.u.docs.Update(pctx, doc)
	} else {
		saved, err = r.u.docs.Create(pctx, doc)
	}
	if err == nil && saved.ID == "" {
		err = ErrDocumentNotFound
	}
	if err != nil {
		r.warn(entities.StepDatabasePersist, "document authorized by SEFAZ but not saved locally; it may not appear in listings until reconciliation completes")
		r.tr.Logf("Persist error: %v", err)
		r.enqueue(ctx, interfaces.ReconcilePersist, doc, err)
		return
	}

	r.result.Persisted = true
	r.tr.Succeed(entities.StepDatabasePersist, "")
	r.tr.Logf("Document %s saved with status %s", saved.ID, saved.Status)

	if r.resp.Status.IsProcessing() {
		r.enqueue(ctx, interfaces.ReconcileStatusCheck, saved, nil)
	}
}

// deferPersist records a document SEFAZ accepted when a later check halted the pipeline.
func (r *emissionRun) deferPersist(ctx context.Context, cause error) {
	if !r.accepted {
		return
	}
	r.enqueue(ctx, interfaces.ReconcilePersist, r.buildDocument(), cause)
}

func (r *emissionRun) enqueue(ctx context.Context, kind interfaces.ReconciliationKind, doc entities.FiscalDocument, cause error) {
	bg := context.WithoutCancel(ctx)
	task := interfaces.ReconciliationTask{
		ID:         uuid.NewString(),
		Kind:       kind,
		Document:   doc,
		IsNew:      r.existing.ID == "",
		EnqueuedAt: utcNow(),
	}
	if cause != nil {
		task.LastError = cause.Error()
	}

	if r.u.queue == nil {
		r.u.logger.Error("[nfe][emission] reconciliation queue not configured",
			zap.String("document_id", doc.ID), zap.String("access_key", doc.AccessKey))
		return
	}
	if err := r.u.queue.Enqueue(bg, task); err != nil {
		r.tr.Logf("Reconciliation enqueue failed: %v", err)
		r.u.logger.Error("[nfe][emission] reconciliation enqueue failed",
			zap.String("document_id", doc.ID), zap.String("access_key", doc.AccessKey), zap.Error(err))
		return
	}
	r.tr.Logf("Queued %s reconciliation for %s", kind, doc.AccessKey)

	if kind == interfaces.ReconcilePersist {
		reason := ""
		if cause != nil {
			reason = cause.Error()
		}
		r.u.publisher.Publish(bg, entities.DocumentPersistDeferred{
			DocumentID: doc.ID,
			CompanyID:  doc.CompanyID,
			AccessKey:  doc.AccessKey,
			Reason:     reason,
			OccurredAt: utcNow(),
		})
	}
}

func (r *emissionRun) finalize(ctx context.Context) {
	r.begin(entities.StepFinalization)
	r.result.ActionsUnlocked = r.result.Status == entities.DocumentStatusAutorizada
	r.tr.Succeed(entities.StepFinalization, fmt.Sprintf("Document %d/%d %s", r.result.Series, r.result.Number, r.result.Status))

	r.u.publisher.Publish(context.WithoutCancel(ctx), entities.DocumentEmitted{
		DocumentID: r.docID,
		CompanyID:  r.company.ID,
		AccessKey:  r.resp.AccessKey,
		Status:     r.result.Status,
		Model:      r.form.Identification.Model,
		XMLPath:    r.resp.XMLPath,
		PDFPath:    r.resp.PDFPath,
		OccurredAt: utcNow(),
	})
}

// sendEmail notifies the recipient. Its failure is reported apart from the emission.
func (r *emissionRun) sendEmail(ctx context.Context) {
	emails := r.form.Recipient.Emails
	if len(emails) == 0 {
		return
	}
	r.begin(entities.StepEmail)
	err := r.u.gateway.SendEmail(ctx, interfaces.EmailRequest{
		CompanyID: r.company.ID,
		AccessKey: r.resp.AccessKey,
		Emails:    emails,
		Number:    r.result.Number,
		Series:    r.result.Series,
		Total:     r.form.Totals.Total.StringFixed(2),
		Company:   r.company,
		Recipient: r.form.Recipient.Name,
	})
	if err != nil {
		r.warn(entities.StepEmail, fmt.Sprintf("document emitted, but the e-mail notification failed: %v", err))
		return
	}
	r.result.EmailSent = true
	r.tr.Succeed(entities.StepEmail, "Sent to "+strings.Join(emails, ", "))
	r.tr.Logf("E-mail sent to %s", strings.Join(emails, ", "))
}

// VerifyXMLArtifact checks that a downloaded XML is the authorized document.
func VerifyXMLArtifact(a interfaces.Artifact, accessKey string) error {
	fail := func(check, detail string) error {
		return &ArtifactCheckError{Artifact: interfaces.ArtifactXML, Check: check, Detail: detail}
	}
	switch {
	case a.StatusCode < 200 || a.StatusCode > 299:
		return fail("http status", fmt.Sprintf("got %d", a.StatusCode))
	case !strings.Contains(strings.ToLower(a.ContentType), "xml"):
		return fail("content type", fmt.Sprintf("got %q", a.ContentType))
	case len(bytes.TrimSpace(a.Body)) == 0:
		return fail("body", "empty response")
	case !bytes.Contains(a.Body, []byte("<?xml")):
		return fail("declaration", "missing <?xml declaration")
	case !bytes.Contains(a.Body, []byte("<nfeProc")) && !bytes.Contains(a.Body, []byte("<NFe")):
		return fail("envelope", "missing nfeProc/NFe root element")
	case !bytes.Contains(a.Body, []byte("<infNFe")):
		return fail("info block", "missing infNFe element")
	case !bytes.Contains(a.Body, []byte(accessKey)):
		return fail("access key", "access key not found in XML")
	}
	return nil
}

var pdfMagic = []byte("%PDF")

// VerifyPDFArtifact checks that a downloaded DANFE is a real PDF.
func VerifyPDFArtifact(a interfaces.Artifact, minSize int) error {
	fail := func(check, detail string) error {
		return &ArtifactCheckError{Artifact: interfaces.ArtifactPDF, Check: check, Detail: detail}
	}
	switch {
	case a.StatusCode < 200 || a.StatusCode > 299:
		return fail("http status", fmt.Sprintf("got %d", a.StatusCode))
	case !strings.Contains(strings.ToLower(a.ContentType), "pdf"):
		return fail("content type", fmt.Sprintf("got %q", a.ContentType))
	case len(a.Body) < minSize:
		return fail("size", fmt.Sprintf("%d bytes, expected at least %d", len(a.Body), minSize))
	case !bytes.HasPrefix(a.Body, pdfMagic):
		return fail("signature", "missing %PDF header")
	}
	return nil
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

type emissionJob struct {
	tracker *EmissionTracker
	cancel  context.CancelFunc
}

// emissionJobs keeps running and recently finished jobs in memory.
type emissionJobs struct {
	mu        sync.Mutex
	entries   map[string]emissionJob
	retention time.Duration
}

func newEmissionJobs(retention time.Duration) *emissionJobs {
	return &emissionJobs{entries: map[string]emissionJob{}, retention: retention}
}

func (j *emissionJobs) add(tr *EmissionTracker, cancel context.CancelFunc) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.evictLocked()
	j.entries[tr.Snapshot().ID] = emissionJob{tracker: tr, cancel: cancel}
}

func (j *emissionJobs) get(companyID, id string) (emissionJob, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	e, ok := j.entries[id]
	if !ok || e.tracker.Snapshot().CompanyID != companyID {
		return emissionJob{}, false
	}
	return e, true
}

func (j *emissionJobs) evictLocked() {
	cutoff := utcNow().Add(-j.retention)
	for id, e := range j.entries {
		snap := e.tracker.Snapshot()
		if snap.Finished() && snap.FinishedAt.Before(cutoff) {
			delete(j.entries, id)
		}
	}
}
