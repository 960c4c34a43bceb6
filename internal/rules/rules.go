package rules

import "regexp"

// Version identifies the built-in catalog revision. It participates in cache
// keys so that catalog changes invalidate stale reports.
const Version = "2"

// Category classifies a rule. Detector findings and cleaner passes share this
// enumeration so results stay aligned.
type Category string

const (
	CategoryHighRisk         Category = "high_risk"
	CategoryBuzzwords        Category = "buzzwords"
	CategoryMetaCommentary   Category = "meta_commentary"
	CategoryWordyPhrases     Category = "wordy_phrases"
	CategoryTransitionWords  Category = "transition_words"
	CategoryGenericVariables Category = "generic_variables"
	CategoryGenericFunctions Category = "generic_functions"
	CategoryObviousComments  Category = "obvious_comments"
	CategorySingleStepChains Category = "single_step_chains"
)

// Categories returns all categories in scan order.
func Categories() []Category {
	return []Category{
		CategoryHighRisk,
		CategoryBuzzwords,
		CategoryMetaCommentary,
		CategoryWordyPhrases,
		CategoryTransitionWords,
		CategoryGenericVariables,
		CategoryGenericFunctions,
		CategoryObviousComments,
		CategorySingleStepChains,
	}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	for _, cat := range Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

// Structural reports whether the category applies only to source-code inputs.
func (c Category) Structural() bool {
	switch c {
	case CategoryGenericVariables, CategoryGenericFunctions,
		CategoryObviousComments, CategorySingleStepChains:
		return true
	}
	return false
}

// Rule is a single immutable catalog entry. Replacement is a template passed
// to Regexp.ReplaceAllString; an empty Replacement deletes the matched span.
type Rule struct {
	Name        string
	Category    Category
	Pattern     *regexp.Regexp
	Severity    int
	Replacement string
	Aggressive  bool
}

// Catalog is an ordered, read-only collection of rules grouped by category.
// It is safe for concurrent use.
type Catalog struct {
	rules   map[Category][]Rule
	weights map[Category]int
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Rules returns the rules for a category in declaration order.
func (c *Catalog) Rules(cat Category) []Rule {
	return c.rules[cat]
}

// All returns every rule, grouped by category in scan order.
func (c *Catalog) All() []Rule {
	var out []Rule
	for _, cat := range Categories() {
		out = append(out, c.rules[cat]...)
	}
	return out
}

// Weight returns the score multiplier for a category.
func (c *Catalog) Weight(cat Category) int {
	return c.weights[cat]
}

// categoryWeights scale per-rule severity into score points. High-risk
// phrases dominate; structural matches contribute small fixed amounts.
var categoryWeights = map[Category]int{
	CategoryHighRisk:         15,
	CategoryBuzzwords:        5,
	CategoryMetaCommentary:   8,
	CategoryWordyPhrases:     3,
	CategoryTransitionWords:  1,
	CategoryGenericVariables: 3,
	CategoryGenericFunctions: 4,
	CategoryObviousComments:  2,
	CategorySingleStepChains: 2,
}

var defaultCatalog = &Catalog{
	weights: categoryWeights,
	rules: map[Category][]Rule{
		CategoryHighRisk:         highRiskRules,
		CategoryBuzzwords:        buzzwordRules,
		CategoryMetaCommentary:   metaCommentaryRules,
		CategoryWordyPhrases:     wordyPhraseRules,
		CategoryTransitionWords:  transitionWordRules,
		CategoryGenericVariables: genericVariableRules,
		CategoryGenericFunctions: genericFunctionRules,
		CategoryObviousComments:  obviousCommentRules,
		CategorySingleStepChains: singleStepChainRules,
	},
}

// High-risk phrases are deleted outright. Deletion patterns consume trailing
// whitespace; the grammar left behind is an accepted v1 artifact.
var highRiskRules = []Rule{
	{Name: "delve-into", Category: CategoryHighRisk, Severity: 2,
		Pattern: regexp.MustCompile(`(?i)\bdelves? into\s*`)},
	{Name: "fast-paced-world", Category: CategoryHighRisk, Severity: 2,
		Pattern: regexp.MustCompile(`(?i)\b(?:in today's )?fast-paced world,?\s*`)},
	{Name: "important-to-note", Category: CategoryHighRisk, Severity: 2,
		Pattern: regexp.MustCompile(`(?i)\bit(?:'s| is) important to note that\s*`)},
	{Name: "navigate-complexities", Category: CategoryHighRisk, Severity: 2,
		Pattern: regexp.MustCompile(`(?i)\bnavigat(?:e|ing) the complexities(?: of)?\s*`)},
	{Name: "ever-evolving-landscape", Category: CategoryHighRisk, Severity: 2,
		Pattern: regexp.MustCompile(`(?i)\b(?:in the )?ever-evolving landscape(?: of)?\s*`)},
	{Name: "in-the-realm-of", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bin the realm of\s*`)},
	{Name: "testament-to", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\b(?:is |stands as )?a testament to\s*`)},
	{Name: "game-changer", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\ba (?:true |real )?game-changer\s*`)},
	{Name: "unlock-potential", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bunlock(?:s|ing)? the (?:full |true )?potential(?: of)?\s*`)},
	{Name: "rich-tapestry", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\b(?:a )?rich tapestry(?: of)?\s*`)},
	{Name: "at-the-end-of-the-day", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bat the end of the day,?\s*`)},
	{Name: "dive-deep", Category: CategoryHighRisk, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\b(?:take a )?deep dive into\s*`)},
}

// Buzzwords are replaced with plain lowercase equivalents. Replacements never
// re-match any rule, keeping cleaning idempotent.
var buzzwordRules = []Rule{
	{Name: "leveraging", Category: CategoryBuzzwords, Severity: 1, Replacement: "using",
		Pattern: regexp.MustCompile(`(?i)\bleveraging\b`)},
	{Name: "leverages", Category: CategoryBuzzwords, Severity: 1, Replacement: "uses",
		Pattern: regexp.MustCompile(`(?i)\bleverages\b`)},
	{Name: "leverage", Category: CategoryBuzzwords, Severity: 1, Replacement: "use",
		Pattern: regexp.MustCompile(`(?i)\bleverage\b`)},
	{Name: "holistic-approach", Category: CategoryBuzzwords, Severity: 1, Replacement: "approach",
		Pattern: regexp.MustCompile(`(?i)\bholistic approach\b`)},
	{Name: "synergistic", Category: CategoryBuzzwords, Severity: 1, Replacement: "combined",
		Pattern: regexp.MustCompile(`(?i)\bsynergistic\b`)},
	{Name: "synergy", Category: CategoryBuzzwords, Severity: 1, Replacement: "cooperation",
		Pattern: regexp.MustCompile(`(?i)\bsynerg(?:y|ies)\b`)},
	{Name: "utilizing", Category: CategoryBuzzwords, Severity: 1, Replacement: "using",
		Pattern: regexp.MustCompile(`(?i)\butili[sz]ing\b`)},
	{Name: "utilize", Category: CategoryBuzzwords, Severity: 1, Replacement: "use",
		Pattern: regexp.MustCompile(`(?i)\butili[sz]es?\b`)},
	{Name: "paradigm-shift", Category: CategoryBuzzwords, Severity: 1, Replacement: "shift",
		Pattern: regexp.MustCompile(`(?i)\bparadigm shift\b`)},
	{Name: "empowering", Category: CategoryBuzzwords, Severity: 1, Replacement: "enabling",
		Pattern: regexp.MustCompile(`(?i)\bempowering\b`)},
	{Name: "empower", Category: CategoryBuzzwords, Severity: 1, Replacement: "enable",
		Pattern: regexp.MustCompile(`(?i)\bempowers?\b`)},
	{Name: "cutting-edge", Category: CategoryBuzzwords, Severity: 1, Replacement: "modern",
		Pattern: regexp.MustCompile(`(?i)\bcutting-edge\b`)},
	{Name: "state-of-the-art", Category: CategoryBuzzwords, Severity: 1, Replacement: "modern",
		Pattern: regexp.MustCompile(`(?i)\bstate-of-the-art\b`)},
	{Name: "seamlessly", Category: CategoryBuzzwords, Severity: 1, Replacement: "smoothly",
		Pattern: regexp.MustCompile(`(?i)\bseamlessly\b`)},
	{Name: "seamless", Category: CategoryBuzzwords, Severity: 1, Replacement: "smooth",
		Pattern: regexp.MustCompile(`(?i)\bseamless\b`)},
	{Name: "innovative-solution", Category: CategoryBuzzwords, Severity: 1, Replacement: "solution",
		Pattern: regexp.MustCompile(`(?i)\binnovative solutions?\b`)},
	{Name: "harness", Category: CategoryBuzzwords, Severity: 1, Replacement: "use",
		Pattern: regexp.MustCompile(`(?i)\bharness(?:es|ing)? the power of\b`)},
}

// Meta-commentary rules delete whole sentences that talk about the text
// instead of the subject, including the trailing space.
var metaCommentaryRules = []Rule{
	{Name: "in-this-document", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bin this (?:article|document|section|post|guide|chapter|tutorial), (?:we|you|I)(?:'ll| will)[^.!?\n]*[.!?]\s*`)},
	{Name: "lets-take-a-look", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\blet's (?:take a (?:closer )?look|dive in(?:to)?|explore|break (?:it|this|that) down|get started)[^.!?\n]*[.!?]?\s*`)},
	{Name: "as-you-can-see", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bas (?:we|you) can see,?\s*`)},
	{Name: "worth-noting", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bit(?:'s| is) worth (?:noting|mentioning) that\s*`)},
	{Name: "without-further-ado", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bwithout further ado,?\s*`)},
	{Name: "now-that-we-covered", Category: CategoryMetaCommentary, Severity: 1,
		Pattern: regexp.MustCompile(`(?i)\bnow that we(?:'ve| have) (?:covered|discussed|seen)[^.!?\n]*[.!?]\s*`)},
}

// Wordy constructions are simplified to short lowercase forms. The cleaner
// does not re-capitalize sentence starts produced by a substitution.
var wordyPhraseRules = []Rule{
	{Name: "in-order-to", Category: CategoryWordyPhrases, Severity: 1, Replacement: "to",
		Pattern: regexp.MustCompile(`(?i)\bin order to\b`)},
	{Name: "due-to-the-fact", Category: CategoryWordyPhrases, Severity: 1, Replacement: "because",
		Pattern: regexp.MustCompile(`(?i)\bdue to the fact that\b`)},
	{Name: "at-this-point-in-time", Category: CategoryWordyPhrases, Severity: 1, Replacement: "now",
		Pattern: regexp.MustCompile(`(?i)\bat this point in time\b`)},
	{Name: "in-the-event-that", Category: CategoryWordyPhrases, Severity: 1, Replacement: "if",
		Pattern: regexp.MustCompile(`(?i)\bin the event that\b`)},
	{Name: "for-the-purpose-of", Category: CategoryWordyPhrases, Severity: 1, Replacement: "for",
		Pattern: regexp.MustCompile(`(?i)\bfor the purpose of\b`)},
	{Name: "with-regard-to", Category: CategoryWordyPhrases, Severity: 1, Replacement: "about",
		Pattern: regexp.MustCompile(`(?i)\bwith regard(?:s)? to\b`)},
	{Name: "vast-majority", Category: CategoryWordyPhrases, Severity: 1, Replacement: "most",
		Pattern: regexp.MustCompile(`(?i)\bthe vast majority of\b`)},
	{Name: "has-the-ability-to", Category: CategoryWordyPhrases, Severity: 1, Replacement: "can",
		Pattern: regexp.MustCompile(`(?i)\bha(?:s|ve) the ability to\b`)},
	{Name: "a-large-number-of", Category: CategoryWordyPhrases, Severity: 1, Replacement: "many",
		Pattern: regexp.MustCompile(`(?i)\ba large number of\b`)},
	{Name: "in-spite-of-the-fact", Category: CategoryWordyPhrases, Severity: 1, Replacement: "although",
		Pattern: regexp.MustCompile(`(?i)\bin spite of the fact that\b`)},
}

// Transition words are stripped only in aggressive mode. The pattern covers
// both the start-of-line and after-punctuation positions, keeping the
// preceding terminator via $1, so structurally similar occurrences are
// treated consistently. It consumes a whole run of stacked transitions in
// one match; otherwise deleting the first would leave the next one
// sentence-initial and cleaning would not be idempotent.
var transitionWordRules = []Rule{
	{Name: "transition-opener", Category: CategoryTransitionWords, Severity: 1,
		Aggressive: true, Replacement: "$1",
		Pattern: regexp.MustCompile(`(?im)(^[ \t]*|[.!?;:]\s+)(?:(?:however|furthermore|moreover|additionally|consequently|nevertheless|nonetheless|in addition|in conclusion|in summary|ultimately|essentially|basically|that being said|with that said),\s+)+`)},
}

// Structural rules are detection-only and run against source-code inputs.
// The first capture group, when present, names the offending identifier.
var genericVariableRules = []Rule{
	{Name: "generic-variable", Category: CategoryGenericVariables, Severity: 1,
		Pattern: regexp.MustCompile(`(?m)^[ \t]*(df|data|temp|tmp|res|result|results|obj|val|value|item|thing|stuff|foo|info|output)[ \t]*(?:<-|:?=)\s`)},
}

var genericFunctionRules = []Rule{
	{Name: "generic-function-def", Category: CategoryGenericFunctions, Severity: 1,
		Pattern: regexp.MustCompile(`(?m)\b(?:def|func)\s+((?:process|do|handle|my|get|make)_[a-z0-9_]+)\s*\(`)},
	{Name: "generic-function-assign", Category: CategoryGenericFunctions, Severity: 1,
		Pattern: regexp.MustCompile(`(?m)^[ \t]*((?:process|do|handle|my|get|make)_[a-z0-9_]+)\s*(?:<-|=)\s*function\b`)},
}

var obviousCommentRules = []Rule{
	{Name: "obvious-comment", Category: CategoryObviousComments, Severity: 1,
		Pattern: regexp.MustCompile(`(?m)^[ \t]*(?:#|//)[ \t]*(?i:load|read|import|filter|create|open|close|set|get|loop over|calculate|compute|print|write|save|define|increment|update|check|initialize|call|return)(?:s|ing|ed)?[ \t]+(?:the|a|an)[ \t]+\w+[ \t]*$`)},
}

var singleStepChainRules = []Rule{
	{Name: "single-pipe", Category: CategorySingleStepChains, Severity: 1,
		Pattern: regexp.MustCompile(`(?m)^[ \t]*\w+\s*(?:<-|:?=)\s*[\w$.\[\]]+\s*(?:%>%|\|>)\s*\w+\([^()\n]*\)[ \t]*(?:#[^\n]*)?$`)},
}
