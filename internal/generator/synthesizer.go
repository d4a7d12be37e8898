package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/domain"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/stability"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/validator"
)

const (
	// Text selectors are only produced for text strictly between these lengths.
	minTextLength = 3
	maxTextLength = 50
	// maxCombinedClasses is the largest stable class set combined in full.
	maxCombinedClasses = 3
)

// candidates accumulates selectors in first-seen order.
type candidates struct {
	list    []domain.SelectorCandidate
	seen    map[string]bool
	dropped int
}

func (c *candidates) add(selector string, tier domain.Tier) {
	if selector == "" || c.seen[selector] {
		return
	}
	if !validator.IsParseable(selector) {
		c.dropped++
		return
	}
	c.seen[selector] = true
	c.list = append(c.list, domain.SelectorCandidate{
		Selector: selector,
		Tier:     tier,
		Source:   domain.SourceSynthesized,
	})
}

// Synthesize returns selectors for el, ordered by strategy priority,
// deduplicated and capped. Position-based selectors are never produced.
func (s *Synthesizer) Synthesize(el document.Element) []domain.SelectorCandidate {
	if el.IsZero() || !isIdent(el.Tag) {
		return nil
	}

	c := &candidates{seen: make(map[string]bool)}
	tag := el.Tag
	ownClasses := stability.RankStable(identClasses(el.Classes))

	s.byTestID(c, el)
	s.byRole(c, el)
	s.byAriaLabel(c, el)
	s.byID(c, el)
	s.byStableClasses(c, tag, ownClasses)
	s.byText(c, el)
	s.byParent(c, tag, el.ParentClasses, ownClasses)
	s.byGrandparent(c, tag, el.GrandparentClasses)
	s.byTag(c, el)

	result := c.list
	if len(result) > s.maxCandidates {
		result = result[:s.maxCandidates]
	}

	s.log.Debug("Synthesized selector candidates",
		"tag", tag,
		"candidates", len(result),
		"dropped", c.dropped,
	)
	return result
}

func (s *Synthesizer) byTestID(c *candidates, el document.Element) {
	if el.TestID != "" {
		c.add(`[data-testid=`+quote(el.TestID)+`]`, domain.TierDataAttribute)
	}
}

func (s *Synthesizer) byRole(c *candidates, el document.Element) {
	if el.Role != "" {
		c.add(el.Tag+`[role=`+quote(el.Role)+`]`, domain.TierAriaRole)
	}
}

func (s *Synthesizer) byAriaLabel(c *candidates, el document.Element) {
	if el.AriaLabel != "" {
		c.add(el.Tag+`[aria-label=`+quote(el.AriaLabel)+`]`, domain.TierAriaRole)
	}
}

func (s *Synthesizer) byID(c *candidates, el document.Element) {
	if el.ID != "" && isIdent(el.ID) && !stability.IsGeneratedIdentifier(el.ID) {
		c.add("#"+el.ID, domain.TierCleanID)
	}
}

// byStableClasses emits the best class, the best two, and all of them when there
// are at most three.
func (s *Synthesizer) byStableClasses(c *candidates, tag string, ranked []string) {
	if len(ranked) == 0 {
		return
	}
	c.add(tag+"."+ranked[0], domain.TierSemanticClass)
	if len(ranked) >= 2 {
		c.add(tag+"."+strings.Join(ranked[:2], "."), domain.TierSemanticClass)
	}
	if len(ranked) <= maxCombinedClasses {
		c.add(tag+"."+strings.Join(ranked, "."), domain.TierSemanticClass)
	}
}

func (s *Synthesizer) byText(c *candidates, el document.Element) {
	n := utf8.RuneCountInString(el.Text)
	if n > minTextLength && n < maxTextLength {
		c.add(el.Tag+":contains("+quote(el.Text)+")", domain.TierTextContent)
	}
}

func (s *Synthesizer) byParent(c *candidates, tag string, parentClasses, ownClasses []string) {
	ranked := stability.RankStable(identClasses(parentClasses))
	if len(ranked) == 0 {
		return
	}
	parent := "." + ranked[0]
	c.add(parent+" "+tag, domain.TierParentRelation)
	c.add(parent+" > "+tag, domain.TierParentRelation)
	if len(ownClasses) > 0 {
		c.add(parent+" "+tag+"."+ownClasses[0], domain.TierParentRelation)
	}
}

func (s *Synthesizer) byGrandparent(c *candidates, tag string, grandparentClasses []string) {
	ranked := stability.RankStable(identClasses(grandparentClasses))
	if len(ranked) == 0 {
		return
	}
	c.add("."+ranked[0]+" "+tag, domain.TierParentRelation)
}

// byTag emits the bare tag only when no sibling shares it.
func (s *Synthesizer) byTag(c *candidates, el document.Element) {
	if el.SameTagSiblings == 0 {
		c.add(el.Tag, domain.TierTagFallback)
	}
}

func identClasses(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if isIdent(class) {
			out = append(out, class)
		}
	}
	return out
}
