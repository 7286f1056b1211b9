package reconcile

import (
	"context"

	"go.uber.org/zap"

	"github.com/frontdesk-org/frontdesk/calendar"
	"github.com/frontdesk-org/frontdesk/forms"
	"github.com/frontdesk-org/frontdesk/links"
	"github.com/frontdesk-org/frontdesk/store"
)

type DateRange struct {
	From string
	To   string
}

func (r DateRange) Key() string {
	return r.From + ".." + r.To
}

// Result is one computed reconciliation: the display list plus the pool of
// forms still up for manual linking. Stale is set only when an expired cache
// entry is served because the recompute failed.
type Result struct {
	Items          []MergedItem
	UnlinkedForms  []*forms.Form
	CalendarStatus calendar.Status
	Stale          bool
}

// Reconciler runs the stateless per-refresh computation: fetch both sides,
// match, merge, classify. The only state it keeps is the result cache.
type Reconciler struct {
	calendar calendar.Provider
	forms    forms.Service
	links    links.Service
	cache    *ResultCache
	config   *Config
	logger   *zap.SugaredLogger
}

func NewReconciler(
	provider calendar.Provider,
	formsService forms.Service,
	linksService links.Service,
	cache *ResultCache,
	config *Config,
	logger *zap.SugaredLogger,
) (*Reconciler, error) {
	return &Reconciler{
		calendar: provider,
		forms:    formsService,
		links:    linksService,
		cache:    cache,
		config:   config,
		logger:   logger,
	}, nil
}

// Reconcile returns the merged list for the range, serving a cached result
// while it is fresh. forceRefresh bypasses the cache entirely. When the
// recompute of an expired entry fails, the expired result is served instead,
// flagged stale, so the front office keeps a (dated) list during an outage.
func (r *Reconciler) Reconcile(ctx context.Context, dateRange DateRange, forceRefresh bool) (*Result, error) {
	key := dateRange.Key()
	cached, stale, found := r.cache.Get(key)
	if !forceRefresh && found && !stale {
		return cached, nil
	}

	result, err := r.compute(ctx, dateRange)
	if err != nil {
		if !forceRefresh && found {
			r.logger.Warnw("serving stale reconciliation result",
				"from", dateRange.From,
				"to", dateRange.To,
				"error", err,
			)
			staleResult := *cached
			staleResult.Stale = true
			return &staleResult, nil
		}
		return nil, err
	}

	r.cache.Put(key, result)
	return result, nil
}

func (r *Reconciler) compute(ctx context.Context, dateRange DateRange) (*Result, error) {
	appointments, status := r.calendar.Appointments(ctx, dateRange.From, dateRange.To)

	pool, err := r.forms.List(ctx, &forms.Filter{}, store.Pagination{Limit: r.config.MaxPoolSize})
	if err != nil {
		return nil, err
	}

	linkedForms, err := r.links.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	match := MatchAppointments(appointments, pool, linkedForms)

	// An erroring feed is still a configured feed: dated orphan forms stay
	// hidden. Only an unconfigured calendar suppresses the filter.
	calendarConfigured := status != calendar.StatusNotConfigured
	items := MergeItems(appointments, match, pool, calendarConfigured)

	r.logger.Debugw("reconciliation pass complete",
		"from", dateRange.From,
		"to", dateRange.To,
		"calendarStatus", status,
		"appointments", len(appointments),
		"forms", len(pool),
		"items", len(items),
		"unlinkedForms", len(match.UnlinkedForms),
	)

	return &Result{
		Items:          items,
		UnlinkedForms:  match.UnlinkedForms,
		CalendarStatus: status,
	}, nil
}

// FindAppointment locates one appointment in the current window, for the
// manual picker.
func (r *Reconciler) FindAppointment(ctx context.Context, dateRange DateRange, appointmentId string) (*calendar.Appointment, error) {
	result, err := r.Reconcile(ctx, dateRange, false)
	if err != nil {
		return nil, err
	}

	for _, item := range result.Items {
		if item.Kind == KindCalendar && item.Appointment.ExternalId == appointmentId {
			return item.Appointment, nil
		}
	}
	return nil, ErrUnknownAppointment
}
