// Package decider turns a submission and the current lists into a Disposition.
package decider

import (
	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/common/utils"
	"github.com/haukened/backlist/internal/backlist/domain"
	"github.com/haukened/backlist/internal/backlist/services/matcher"
)

// Rule names the step of the evaluation that produced a disposition.
type Rule string

const (
	RuleNotBacklink Rule = "not_backlink"
	RuleSelf        Rule = "self"
	RuleWhitelist   Rule = "whitelist"
	RuleBlacklist   Rule = "blacklist"
	RuleDefault     Rule = "default"
)

// Decision is a disposition plus the inputs that led to it.
type Decision struct {
	Disposition domain.Disposition
	Rule        Rule
	Host        string // extracted author host, "" when absent
	MatchedIP   bool   // the list matched on the author IP rather than the host
}

// Decide evaluates a pingback or trackback against the lists.
//
// selfHost is the blog's own host; an empty selfHost disables the self rule.
// Rules are applied in order and the first match wins:
//  1. host equals selfHost: AutoApprove
//  2. host or IP in whitelist: Approve
//  3. host or IP in blacklist: Reject
//  4. otherwise: NoOpinion
//
// Any other submission type is NoOpinion without looking at the lists.
func Decide(sub domain.Submission, selfHost string, whitelist, blacklist matcher.Set) domain.Disposition {
	return Evaluate(sub, selfHost, whitelist, blacklist).Disposition
}

// Evaluate is Decide with the rule that fired.
func Evaluate(sub domain.Submission, selfHost string, whitelist, blacklist matcher.Set) Decision {
	if !sub.Type.IsBacklink() {
		return Decision{Disposition: domain.NoOpinion, Rule: RuleNotBacklink}
	}

	host, hasHost := utils.ExtractHost(sub.AuthorURL)

	if selfHost != "" && hasHost && host == selfHost {
		return Decision{Disposition: domain.AutoApprove, Rule: RuleSelf, Host: host}
	}
	if hit, byIP := inEither(host, hasHost, sub.AuthorIP, whitelist); hit {
		return Decision{Disposition: domain.Approve, Rule: RuleWhitelist, Host: host, MatchedIP: byIP}
	}
	if hit, byIP := inEither(host, hasHost, sub.AuthorIP, blacklist); hit {
		return Decision{Disposition: domain.Reject, Rule: RuleBlacklist, Host: host, MatchedIP: byIP}
	}
	return Decision{Disposition: domain.NoOpinion, Rule: RuleDefault, Host: host}
}

// inEither checks the host first, then the IP. An absent host or IP is skipped
// so it never matches.
func inEither(host string, hasHost bool, ip string, set matcher.Set) (hit, byIP bool) {
	if hasHost && matcher.InSet(host, set) {
		return true, false
	}
	if ip != "" && matcher.InSet(ip, set) {
		return true, true
	}
	return false, false
}

// Engine is Decide with logging, for callers that want every verdict recorded.
type Engine struct {
	logger log.Logger
}

// NewEngine returns an Engine. A nil logger discards output.
func NewEngine(logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Engine{logger: logger}
}

// Decide evaluates sub and logs the rule that fired.
func (e *Engine) Decide(sub domain.Submission, selfHost string, whitelist, blacklist matcher.Set) Decision {
	d := Evaluate(sub, selfHost, whitelist, blacklist)
	if d.Rule == RuleNotBacklink {
		return d
	}
	fields := map[string]any{
		"type":        sub.Type.String(),
		"host":        d.Host,
		"ip":          sub.AuthorIP,
		"rule":        string(d.Rule),
		"disposition": d.Disposition.String(),
	}
	if d.Host == "" {
		fields["author_url"] = sub.AuthorURL
	}
	if d.MatchedIP {
		fields["matched_ip"] = true
	}
	e.logger.Debug(fields, "backlink_decided")
	return d
}
