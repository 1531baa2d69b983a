package grammarian

import (
	"fmt"

	"github.com/golang/groupcache/lru"
	"github.com/hashicorp/go-hclog"

	"github.com/l-donovan/grammarian/common"
)

// Option configures a single Parse call.
type Option func(*parseConfig)

type parseConfig struct {
	logger    hclog.Logger
	trace     bool
	memo      bool
	memoLimit int
}

// WithLogger sends parser diagnostics to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *parseConfig) {
		c.logger = logger
	}
}

// WithTrace logs every atom the parser tries, and what came of it, at Trace
// level.
func WithTrace(trace bool) Option {
	return func(c *parseConfig) {
		c.trace = trace
	}
}

// WithMemoLimit caps the number of memoized sub-parses; the least recently
// used are evicted first. Zero means no limit.
func WithMemoLimit(n int) Option {
	return func(c *parseConfig) {
		c.memoLimit = n
	}
}

// WithoutMemo turns memoization off. Output is unchanged; grammars with a lot
// of shared prefixes get much slower.
func WithoutMemo() Option {
	return func(c *parseConfig) {
		c.memo = false
	}
}

// Stats counts memo lookups during one Parse call.
type Stats struct {
	Hits   int
	Misses int
}

// Result is the outcome of Parse. On success Tree is the parse tree and
// Remainder is the input that was not consumed ("" when all of it was). On
// failure OK reports false and both Tree and Remainder are unset.
type Result struct {
	Tree      common.Node
	Remainder string
	Stats     Stats

	ok       bool
	furthest int
}

func (r Result) OK() bool {
	return r.ok
}

// String renders the result as a (tree, remainder) pair, or (None, None) on
// failure.
func (r Result) String() string {
	if !r.ok {
		return "(None, None)"
	}

	return fmt.Sprintf("(%s, %s)", common.Format(r.Tree), common.Format(r.Remainder))
}

// Parse parses text as start, which is usually a non-terminal of g. Parsing
// is deterministic PEG: alternatives are tried in order and the first one
// whose atoms all match wins. The grammar must not be left recursive.
func Parse(start, text string, g *Grammar, opts ...Option) Result {
	return g.Parse(start, text, opts...)
}

// Parse parses text as start. See the package-level Parse.
func (g *Grammar) Parse(start, text string, opts ...Option) Result {
	cfg := parseConfig{logger: hclog.NewNullLogger(), memo: true}

	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{g: g, text: text, cfg: cfg}

	// The memo belongs to this call alone: its keys carry no grammar or input
	// identity.
	if cfg.memo {
		p.memo = lru.New(cfg.memoLimit)
	}

	atom, found := g.atoms[start]

	if !found {
		var err error

		if atom, err = g.terminal(start); err != nil {
			cfg.logger.Warn("start symbol is neither a rule nor a valid terminal", "start", start, "error", err)
			return Result{}
		}

		atom.id = len(g.atoms)
	}

	out := p.parseAtom(atom, 0)

	if !out.ok {
		cfg.logger.Debug("parse failed", "start", start, "furthest", p.furthest, "hits", p.stats.Hits, "misses", p.stats.Misses)
		return Result{Stats: p.stats, furthest: p.furthest}
	}

	cfg.logger.Debug("parse succeeded", "start", start, "consumed", out.pos, "hits", p.stats.Hits, "misses", p.stats.Misses)

	return Result{
		Tree:      out.node,
		Remainder: text[out.pos:],
		Stats:     p.stats,
		ok:        true,
		furthest:  max(p.furthest, out.pos),
	}
}

// ParseAll parses text as start and requires that everything is consumed,
// apart from trailing text that the grammar's whitespace matches. Otherwise it returns a ParseError located at the
// furthest point parsing reached.
func (g *Grammar) ParseAll(start, text string, opts ...Option) (common.Node, error) {
	result := g.Parse(start, text, opts...)
	stuck := result.furthest

	if result.OK() {
		skipped := g.skipWhitespace(result.Remainder)

		if skipped == len(result.Remainder) {
			return result.Tree, nil
		}

		stuck = max(stuck, len(text)-len(result.Remainder)+skipped)
	}

	loc := common.NewMetaString(text).FromStartPos(stuck).Loc
	return nil, ParseError{Contents: text, Symbol: start, Loc: loc}
}

// skipWhitespace returns how many leading bytes of text are the grammar's
// whitespace.
func (g *Grammar) skipWhitespace(text string) int {
	if loc := g.whitespaceRe.FindStringIndex(text); loc != nil {
		return loc[1]
	}

	return 0
}

type memoKey struct {
	atom int
	pos  int
}

type outcome struct {
	node common.Node
	pos  int
	ok   bool
}

type parser struct {
	g        *Grammar
	text     string
	cfg      parseConfig
	memo     *lru.Cache
	stats    Stats
	depth    int
	furthest int
}

func (p *parser) tracing() bool {
	return p.cfg.trace && p.cfg.logger.IsTrace()
}

func (p *parser) parseAtom(atom *Atom, pos int) outcome {
	key := memoKey{atom.id, pos}

	if p.memo != nil {
		if cached, found := p.memo.Get(key); found {
			p.stats.Hits++
			return cached.(outcome)
		}

		p.stats.Misses++
	}

	if p.tracing() {
		p.cfg.logger.Trace("-->", "atom", atom.Text, "pos", pos, "depth", p.depth)
	}

	p.depth++
	var out outcome

	switch atom.Kind {
	case NonTerminal:
		out = p.parseRule(p.g.rules[atom.Text], pos)
	case Terminal:
		out = p.parseTerminal(atom, pos)
	}

	p.depth--

	if p.tracing() {
		p.cfg.logger.Trace("<--", "atom", atom.Text, "pos", pos, "depth", p.depth, "matched", out.ok, "next", out.pos)
	}

	if p.memo != nil {
		p.memo.Add(key, out)
	}

	return out
}

// parseRule returns the tree for the first alternative that matches at pos.
func (p *parser) parseRule(rule *Rule, pos int) outcome {
	for _, alt := range rule.Alternatives {
		if children, next, ok := p.parseSequence(alt, pos); ok {
			return outcome{node: common.NewTree(rule.Symbol, children...), pos: next, ok: true}
		}
	}

	return outcome{}
}

// parseSequence matches every atom of alt in turn, starting at pos.
func (p *parser) parseSequence(alt Alternative, pos int) ([]common.Node, int, bool) {
	children := make([]common.Node, 0, len(alt))

	for _, atom := range alt {
		out := p.parseAtom(atom, pos)

		if !out.ok {
			return nil, 0, false
		}

		children = append(children, out.node)
		pos = out.pos
	}

	return children, pos, true
}

// parseTerminal is the only place where the input advances.
func (p *parser) parseTerminal(atom *Atom, pos int) outcome {
	rest := p.text[pos:]
	idx := atom.pattern.FindStringSubmatchIndex(rest)

	if idx == nil || idx[2*atom.group] < 0 {
		p.furthest = max(p.furthest, pos+p.g.skipWhitespace(rest))
		return outcome{}
	}

	token := rest[idx[2*atom.group]:idx[2*atom.group+1]]
	return outcome{node: token, pos: pos + idx[1], ok: true}
}
