// Package filter applies backlist decisions to comments arriving from the platform.
package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/common/utils"
	"github.com/haukened/backlist/internal/backlist/domain"
	"github.com/haukened/backlist/internal/backlist/repos/listcache"
	"github.com/haukened/backlist/internal/backlist/services/decider"
)

// ErrRejected is returned by Preprocess for blacklisted submissions. The caller
// must end the request distinctly (the platform answers 404) rather than fall
// through to default moderation.
var ErrRejected = errors.New("backlink rejected by blacklist")

// Options configures a Service.
type Options struct {
	Settings   SettingsReader
	Cache      *listcache.Cache // nil compiles lists on every call
	Logger     log.Logger
	Registerer prometheus.Registerer
}

// Service evaluates submissions against the lists held in the settings store.
type Service struct {
	settings SettingsReader
	cache    *listcache.Cache
	engine   *decider.Engine
	logger   log.Logger
	metrics  *metrics
}

// New builds a Service.
func New(opts Options) (*Service, error) {
	if opts.Settings == nil {
		return nil, errors.New("filter: settings store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	cache := opts.Cache
	if cache == nil {
		var err error
		if cache, err = listcache.New(0, listcache.DefaultFPRate); err != nil {
			return nil, err
		}
	}
	m, err := newMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("filter: register metrics: %w", err)
	}
	logger = logger.With(map[string]any{"component": "filter"})
	return &Service{
		settings: opts.Settings,
		cache:    cache,
		engine:   decider.NewEngine(logger),
		logger:   logger,
		metrics:  m,
	}, nil
}

// snapshot is one consistent read of the settings a decision needs.
type snapshot struct {
	selfHost  string
	whitelist *listcache.Set
	blacklist *listcache.Set
}

func (s *Service) load(ctx context.Context) (snapshot, error) {
	keys := []string{domain.SettingSelfApprove, domain.SettingBlogURL, domain.SettingWhitelist, domain.SettingBlacklist}
	vals := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := s.settings.Get(ctx, k)
		if err != nil {
			return snapshot{}, fmt.Errorf("read setting %s: %w", k, err)
		}
		vals[k] = v
	}

	var snap snapshot
	if Enabled(vals[domain.SettingSelfApprove]) {
		if h, ok := utils.ExtractHost(vals[domain.SettingBlogURL]); ok {
			snap.selfHost = h
		} else {
			s.logger.Warn(map[string]any{"blog_url": vals[domain.SettingBlogURL]}, "self_approve_without_blog_host")
		}
	}
	snap.whitelist = s.cache.Get(vals[domain.SettingWhitelist])
	snap.blacklist = s.cache.Get(vals[domain.SettingBlacklist])
	s.metrics.observeList(domain.Whitelist, snap.whitelist.Len())
	s.metrics.observeList(domain.Blacklist, snap.blacklist.Len())
	return snap, nil
}

// Evaluate decides sub against the current settings. Plain comments are
// answered without touching the settings store.
func (s *Service) Evaluate(ctx context.Context, sub domain.Submission) (decider.Decision, error) {
	if !sub.Type.IsBacklink() {
		return decider.Evaluate(sub, "", nil, nil), nil
	}
	snap, err := s.load(ctx)
	if err != nil {
		return decider.Decision{}, err
	}
	d := s.engine.Decide(sub, snap.selfHost, snap.whitelist, snap.blacklist)
	s.metrics.observeDecision(d.Disposition, string(d.Rule))
	return d, nil
}

// Preprocess evaluates c and applies the result to its approval status.
// Approve and AutoApprove mark it approved, NoOpinion leaves it alone, and
// Reject returns an error wrapping ErrRejected with c unchanged.
func (s *Service) Preprocess(ctx context.Context, c *domain.Comment) (decider.Decision, error) {
	if c == nil {
		return decider.Decision{}, errors.New("filter: nil comment")
	}
	d, err := s.Evaluate(ctx, c.Submission)
	if err != nil {
		return d, err
	}
	switch {
	case d.Disposition.Approves():
		c.Status = domain.StatusApproved
	case d.Disposition == domain.Reject:
		s.logger.Info(map[string]any{"comment_id": c.ID, "host": d.Host, "ip": c.AuthorIP}, "backlink_rejected")
		return d, fmt.Errorf("%w: host=%q ip=%q", ErrRejected, d.Host, c.AuthorIP)
	}
	return d, nil
}

// Enabled reads a checkbox-style option. Empty, "0", "false", "off" and "no" are off.
func Enabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}
