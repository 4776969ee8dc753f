// Package admin implements the list-editing actions offered next to each
// pingback and trackback in the platform's comment screen.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/common/utils"
	"github.com/haukened/backlist/internal/backlist/domain"
	"github.com/haukened/backlist/internal/backlist/services/matcher"
)

var (
	ErrEmptyHost   = errors.New("admin: host must not be empty")
	ErrInvalidHost = errors.New("admin: host must be a single line")
	ErrUnknownList = errors.New("admin: unknown list")
	ErrNoModerator = errors.New("admin: no comment moderator configured")
)

// Action is a "put this host on a list" link for one comment.
type Action struct {
	List      domain.ListName
	CommentID uint64
	Host      string
}

// Options configures a Service. Moderator may be nil when only AddHost and
// List are used.
type Options struct {
	Settings  Settings
	Moderator Moderator
	Logger    log.Logger
}

type Service struct {
	settings  Settings
	moderator Moderator
	logger    log.Logger
}

func New(opts Options) (*Service, error) {
	if opts.Settings == nil {
		return nil, errors.New("admin: settings store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Service{
		settings:  opts.Settings,
		moderator: opts.Moderator,
		logger:    logger.With(map[string]any{"component": "admin"}),
	}, nil
}

// List returns the parsed entries of a list.
func (s *Service) List(ctx context.Context, name domain.ListName) (domain.ParsedList, error) {
	key := name.SettingKey()
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	raw, err := s.settings.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return utils.ParseList(raw), nil
}

// RowActions returns whitelist/blacklist actions for a backlink whose host is
// on neither list. Author URLs stored without a scheme are read as http://.
// Plain comments, unparseable URLs and already listed hosts get no actions.
func (s *Service) RowActions(ctx context.Context, c domain.Comment) ([]Action, error) {
	if !c.Type.IsBacklink() {
		return nil, nil
	}
	host, ok := utils.ExtractHost(utils.EnsureScheme(c.AuthorURL))
	if !ok {
		return nil, nil
	}
	white, err := s.List(ctx, domain.Whitelist)
	if err != nil {
		return nil, err
	}
	black, err := s.List(ctx, domain.Blacklist)
	if err != nil {
		return nil, err
	}
	if matcher.InList(host, white) || matcher.InList(host, black) {
		return nil, nil
	}
	return []Action{
		{List: domain.Whitelist, CommentID: c.ID, Host: host},
		{List: domain.Blacklist, CommentID: c.ID, Host: host},
	}, nil
}

// AddHost appends host to a list as its own line. A host already present as
// an exact entry is left alone. Lint warnings for the host are returned and
// logged but do not block the write.
func (s *Service) AddHost(ctx context.Context, name domain.ListName, host string) ([]Warning, error) {
	key := name.SettingKey()
	if key == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrEmptyHost
	}
	if strings.ContainsAny(host, "\r\n") {
		return nil, ErrInvalidHost
	}

	added := false
	err := s.settings.Update(ctx, key, func(raw string) (string, error) {
		if utils.ParseList(raw).Contains(host) {
			return raw, nil
		}
		added = true
		return utils.AppendEntry(raw, host), nil
	})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", name, err)
	}

	warnings := Lint(domain.ParsedList{host})
	for _, w := range warnings {
		s.logger.Warn(map[string]any{"list": string(name), "entry": w.Entry, "reason": w.Reason}, "list_entry_lint")
	}
	s.logger.Info(map[string]any{"list": string(name), "host": host, "added": added}, "list_host_added")
	return warnings, nil
}

// WhitelistHost adds host to the whitelist and approves the comment.
func (s *Service) WhitelistHost(ctx context.Context, commentID uint64, host string) ([]Warning, error) {
	if s.moderator == nil {
		return nil, ErrNoModerator
	}
	warnings, err := s.AddHost(ctx, domain.Whitelist, host)
	if err != nil {
		return nil, err
	}
	if err := s.moderator.Approve(ctx, commentID); err != nil {
		return warnings, fmt.Errorf("approve comment %d: %w", commentID, err)
	}
	return warnings, nil
}

// BlacklistHost adds host to the blacklist and deletes the comment.
func (s *Service) BlacklistHost(ctx context.Context, commentID uint64, host string) ([]Warning, error) {
	if s.moderator == nil {
		return nil, ErrNoModerator
	}
	warnings, err := s.AddHost(ctx, domain.Blacklist, host)
	if err != nil {
		return nil, err
	}
	if err := s.moderator.Delete(ctx, commentID); err != nil {
		return warnings, fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return warnings, nil
}
