package reconcile

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/links"
)

var (
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrUnknownForm        = errors.New("unknown form")
	ErrUnknownAppointment = errors.New("unknown appointment")
)

const (
	manualPickLimit         = 5
	preselectScoreThreshold = 60
)

// RankedCandidate is one manual-picker entry. Preselected marks the picker's
// default choice; the user still has to submit explicitly.
type RankedCandidate struct {
	Form        *forms.Form
	Score       int
	Signals     []string
	Preselected bool
}

// Workflow is the human-in-the-loop side of the engine: accepting or
// refusing suggestions and picking links manually. All link writes go
// through here and invalidate the result cache.
type Workflow struct {
	links      links.Service
	forms      forms.Service
	reconciler *Reconciler
	cache      *ResultCache
	logger     *zap.SugaredLogger
}

func NewWorkflow(
	linksService links.Service,
	formsService forms.Service,
	reconciler *Reconciler,
	cache *ResultCache,
	logger *zap.SugaredLogger,
) (*Workflow, error) {
	return &Workflow{
		links:      linksService,
		forms:      formsService,
		reconciler: reconciler,
		cache:      cache,
		logger:     logger,
	}, nil
}

// ConfirmSuggestion persists an accepted suggestion as a link.
func (w *Workflow) ConfirmSuggestion(ctx context.Context, appointmentId, formId string) error {
	if err := w.writeLink(ctx, appointmentId, formId); err != nil {
		return err
	}
	w.logger.Infow("suggestion confirmed", "appointmentId", appointmentId, "formId", formId)
	return nil
}

// ManualLink persists a link picked by hand, bypassing any suggestion.
func (w *Workflow) ManualLink(ctx context.Context, appointmentId, formId string) error {
	if err := w.writeLink(ctx, appointmentId, formId); err != nil {
		return err
	}
	w.logger.Infow("manual link created", "appointmentId", appointmentId, "formId", formId)
	return nil
}

func (w *Workflow) writeLink(ctx context.Context, appointmentId, formId string) error {
	// Validation happens before any store mutation.
	if appointmentId == "" || formId == "" {
		return ErrInvalidIdentifier
	}
	if _, err := w.forms.Get(ctx, formId); err != nil {
		if errors.Is(err, forms.ErrNotFound) {
			return ErrUnknownForm
		}
		return err
	}

	if err := w.links.Set(ctx, appointmentId, formId); err != nil {
		return err
	}

	w.cache.Clear()
	return nil
}

// Skip acknowledges a refused suggestion. Nothing is persisted and the item
// keeps its pre-confirmation state; the refusal only shows up in the logs.
func (w *Workflow) Skip(ctx context.Context, appointmentId string) error {
	if appointmentId == "" {
		return ErrInvalidIdentifier
	}

	w.logger.Debugw("suggestion skipped", "appointmentId", appointmentId)
	return nil
}

// Candidates returns the ranked manual-picker pool for one appointment of
// the window: the unlinked forms scored against it, best five with a
// positive score.
func (w *Workflow) Candidates(ctx context.Context, dateRange DateRange, appointmentId string) ([]RankedCandidate, error) {
	if appointmentId == "" {
		return nil, ErrInvalidIdentifier
	}

	appointment, err := w.reconciler.FindAppointment(ctx, dateRange, appointmentId)
	if err != nil {
		return nil, err
	}

	result, err := w.reconciler.Reconcile(ctx, dateRange, false)
	if err != nil {
		return nil, err
	}

	return RankCandidates(AppointmentIdentity(*appointment), result.UnlinkedForms), nil
}

// RankCandidates scores the pool against one identity and keeps the top
// entries with a positive score. The preselection never links by itself: if
// a single candidate scores, or the best one clears the threshold, it is
// only marked as the picker's default.
func RankCandidates(identity Identity, pool []*forms.Form) []RankedCandidate {
	ranked := make([]RankedCandidate, 0, len(pool))
	for _, form := range pool {
		score, signals := Score(identity, FormIdentity(form))
		if score <= 0 {
			continue
		}
		ranked = append(ranked, RankedCandidate{
			Form:    form,
			Score:   score,
			Signals: signals,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > manualPickLimit {
		ranked = ranked[:manualPickLimit]
	}

	if len(ranked) == 1 || (len(ranked) > 0 && ranked[0].Score >= preselectScoreThreshold) {
		ranked[0].Preselected = true
	}

	return ranked
}
