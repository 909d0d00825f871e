package config

// defaultJargonTerms is the built-in lexicon of domain jargon, bureaucratic
// vocabulary, and acronyms that plain-language guidance asks writers to
// avoid or define. Matching is case-insensitive, word-boundary aware, and
// tolerates a plural suffix, so the lexicon lists singular base forms plus
// the inflected forms that the plural rule cannot derive (e.g. "utilizing").
//
// Design decision: We keep the lexicon in the config package rather than in
// the scoring engine because it is configuration, not algorithm: the
// .prompt508 file can extend or replace it, and the engine receives the
// final term list by injection.
var defaultJargonTerms = []string{
	// Bureaucratic verbs that have plain one-word equivalents
	"utilize",
	"utilizing",
	"utilization",
	"leverage",
	"leveraging",
	"facilitate",
	"facilitating",
	"operationalize",
	"incentivize",
	"synergize",
	"streamline",
	"actualize",
	"interface", // as a verb: "interface with the team"

	// Abstract nouns that obscure meaning
	"paradigm",
	"synergy",
	"heuristic",
	"methodology",
	"functionality",
	"modality",
	"stakeholder",
	"bandwidth", // metaphorical: "no bandwidth for this"
	"ecosystem",
	"deliverable",
	"learnings",

	// Buzzword adjectives
	"holistic",
	"scalable",
	"robust",
	"seamless",
	"mission-critical",
	"best-of-breed",
	"cutting-edge",
	"state-of-the-art",

	// Technical terms general audiences should see defined, not assumed
	"algorithm",
	"algorithmic",
	"neural network",
	"hyperparameter",
	"gradient descent",
	"backpropagation",
	"stochastic",
	"asymptotic",
	"idempotent",

	// Acronyms commonly left unexpanded
	"API",
	"SDK",
	"SLA",
	"KPI",
	"ROI",
	"ETL",
	"LLM",
	"NLP",
	"CRUD",
	"SaaS",
}

// DefaultJargonTerms returns a copy of the built-in jargon lexicon.
// Callers get their own slice so the package-level default stays read-only.
func DefaultJargonTerms() []string {
	terms := make([]string, len(defaultJargonTerms))
	copy(terms, defaultJargonTerms)
	return terms
}
