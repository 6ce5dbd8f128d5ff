package genbank

import "strings"

const (
	labelIndent     = "     "                 // feature key column
	qualifierIndent = "                     " // qualifier column (21 spaces)

	geneLabel        = "/gene="
	translationLabel = "/translation="
)

type state uint8

const (
	stateOutside state = iota // between features
	stateFeature              // inside a feature block
	stateQuote                // inside an unterminated quoted /translation value
	numStates
)

type lineClass uint8

const (
	lineBlank     lineClass = iota
	lineOpen                // opens a feature of the configured key
	lineLabel               // any other non-blank line outside the qualifier column
	lineQualifier           // qualifier column
	numClasses
)

// step handles one line in one state. It returns the next state and whether
// the same line must be handled again in that state.
type step func(p *Parser, line string) (next state, again bool)

var transitions = [numStates][numClasses]step{
	stateOutside: {
		lineBlank:     stay,
		lineOpen:      openFeature,
		lineLabel:     stay,
		lineQualifier: stay,
	},
	stateFeature: {
		lineBlank:     stay,
		lineOpen:      closeFeature,
		lineLabel:     closeFeature,
		lineQualifier: qualifier,
	},
	stateQuote: {
		lineBlank:     stay,
		lineOpen:      closeFeature,
		lineLabel:     closeFeature,
		lineQualifier: continuation,
	},
}

type feature struct {
	gene            string
	translation     strings.Builder
	seenTranslation bool
	seenQualifier   bool
	location        string
	line            int
}

// Parser turns annotation lines into Records. The zero value is not usable;
// use NewParser. A Parser is a cursor over one input and must not be shared.
type Parser struct {
	key   string
	state state
	line  int
	order int
	cur   feature

	out     Record
	emitted bool
}

// NewParser returns a parser positioned before the first line.
func NewParser(opts ...Option) *Parser {
	c := newConfig(opts)
	return &Parser{key: c.key}
}

// Feed consumes one physical line (without or with its trailing newline).
// It returns a record when the line ends a complete feature.
func (p *Parser) Feed(line string) (Record, bool) {
	line = strings.TrimRight(line, "\r\n")
	p.line++
	p.emitted = false

	cls := p.classify(line)
	for {
		next, again := transitions[p.state][cls](p, line)
		p.state = next
		if !again {
			break
		}
	}
	return p.result()
}

// Close flushes the feature still open at end of input.
func (p *Parser) Close() (Record, bool) {
	p.emitted = false
	if p.state != stateOutside {
		p.state, _ = closeFeature(p, "")
	}
	return p.result()
}

func (p *Parser) result() (Record, bool) {
	if !p.emitted {
		return Record{}, false
	}
	return p.out, true
}

func (p *Parser) classify(line string) lineClass {
	switch {
	case strings.TrimSpace(line) == "":
		return lineBlank
	case strings.HasPrefix(line, qualifierIndent):
		return lineQualifier
	case p.opens(line):
		return lineOpen
	}
	return lineLabel
}

func (p *Parser) opens(line string) bool {
	rest, ok := strings.CutPrefix(line, labelIndent+p.key)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

func stay(p *Parser, _ string) (state, bool) { return p.state, false }

func openFeature(p *Parser, line string) (state, bool) {
	p.cur = feature{
		location: strings.TrimSpace(line[len(labelIndent)+len(p.key):]),
		line:     p.line,
	}
	return stateFeature, false
}

// closeFeature emits the current feature when complete, then asks for the
// line to be re-read from the outside state: it may open the next feature.
func closeFeature(p *Parser, _ string) (state, bool) {
	if p.cur.gene != "" && p.cur.translation.Len() > 0 {
		p.order++
		p.out = Record{
			Order:       p.order,
			Gene:        p.cur.gene,
			Translation: p.cur.translation.String(),
			Location:    p.cur.location,
			Line:        p.cur.line,
		}
		p.emitted = true
	}
	p.cur = feature{}
	return stateOutside, true
}

func qualifier(p *Parser, line string) (state, bool) {
	txt := strings.TrimSpace(line)
	if !strings.HasPrefix(txt, "/") {
		// wrapped location, or the tail of an ignored qualifier value
		if !p.cur.seenQualifier {
			p.cur.location += txt
		}
		return stateFeature, false
	}
	p.cur.seenQualifier = true

	switch {
	case strings.HasPrefix(txt, geneLabel):
		if p.cur.gene == "" {
			p.cur.gene = geneValue(txt[len(geneLabel):])
		}
	case strings.HasPrefix(txt, translationLabel):
		if p.cur.seenTranslation {
			return stateFeature, false
		}
		p.cur.seenTranslation = true
		return p.startTranslation(strings.TrimSpace(txt[len(translationLabel):]))
	}
	return stateFeature, false
}

func (p *Parser) startTranslation(v string) (state, bool) {
	quoted := strings.HasPrefix(v, `"`)
	if !quoted {
		p.cur.translation.WriteString(v)
		return stateFeature, false
	}
	v = v[1:]
	if i := strings.IndexByte(v, '"'); i >= 0 {
		p.cur.translation.WriteString(v[:i])
		return stateFeature, false
	}
	p.cur.translation.WriteString(v)
	return stateQuote, false
}

func continuation(p *Parser, line string) (state, bool) {
	txt := strings.TrimSpace(line)
	if strings.HasPrefix(txt, "/") {
		// unterminated value interrupted by the next qualifier
		return stateFeature, true
	}
	if i := strings.IndexByte(txt, '"'); i >= 0 {
		p.cur.translation.WriteString(txt[:i])
		return stateFeature, false
	}
	p.cur.translation.WriteString(txt)
	return stateQuote, false
}

func geneValue(v string) string {
	if rest, ok := strings.CutPrefix(v, `"`); ok {
		if i := strings.IndexByte(rest, '"'); i >= 0 {
			return rest[:i]
		}
		return strings.TrimSpace(rest)
	}
	if f := strings.Fields(v); len(f) > 0 {
		return f[0]
	}
	return ""
}
