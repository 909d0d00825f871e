package config

// File represents the structure of the .prompt508 configuration file.
// Every field is optional; absent fields keep their defaults.
//
// Numeric overrides use pointers so that an explicit zero (e.g. a jargon
// allowance of 0) can be distinguished from "not set".
type File struct {
	// Threshold overrides the compliance threshold (0-100).
	Threshold *float64 `yaml:"threshold,omitempty"`

	// TargetGrade overrides the plain-language grade target.
	TargetGrade *float64 `yaml:"targetGrade,omitempty"`

	// HardCeiling overrides the disqualifying grade ceiling.
	HardCeiling *float64 `yaml:"hardCeiling,omitempty"`

	// JargonAllowance overrides the tolerated jargon occurrence count.
	JargonAllowance *int `yaml:"jargonAllowance,omitempty"`

	// PassiveAllowance overrides the tolerated passive-sentence count.
	PassiveAllowance *int `yaml:"passiveAllowance,omitempty"`

	// Jargon configures the lexicon.
	Jargon JargonFile `yaml:"jargon,omitempty"`

	// Model configures the generation model and its cost rates.
	Model ModelFile `yaml:"model,omitempty"`
}

// JargonFile configures the jargon lexicon in the configuration file.
type JargonFile struct {
	// ExtraTerms are added to the built-in lexicon.
	ExtraTerms []string `yaml:"extraTerms,omitempty"`

	// ReplaceDefaults drops the built-in lexicon and uses ExtraTerms alone.
	// This is for organizations that maintain their own term list.
	ReplaceDefaults bool `yaml:"replaceDefaults,omitempty"`
}

// ModelFile configures the generation model in the configuration file.
type ModelFile struct {
	// Name is the model identifier passed to the provider.
	Name string `yaml:"name,omitempty"`

	// InputCostPerMTok is the USD price per million prompt tokens.
	// Rates are quoted per million because that is how providers publish
	// them; the loader converts to per-token.
	InputCostPerMTok *float64 `yaml:"inputCostPerMTok,omitempty"`

	// OutputCostPerMTok is the USD price per million completion tokens.
	OutputCostPerMTok *float64 `yaml:"outputCostPerMTok,omitempty"`
}

// Apply merges the file's overrides into the given config.
// Unset fields leave the config untouched.
func (f *File) Apply(cfg *Config) {
	if f.Threshold != nil {
		cfg.ComplianceThreshold = *f.Threshold
	}
	if f.TargetGrade != nil {
		cfg.TargetGradeLevel = *f.TargetGrade
	}
	if f.HardCeiling != nil {
		cfg.HardGradeCeiling = *f.HardCeiling
	}
	if f.JargonAllowance != nil {
		cfg.JargonAllowance = *f.JargonAllowance
	}
	if f.PassiveAllowance != nil {
		cfg.PassiveAllowance = *f.PassiveAllowance
	}

	if f.Jargon.ReplaceDefaults {
		cfg.JargonTerms = append([]string{}, f.Jargon.ExtraTerms...)
	} else if len(f.Jargon.ExtraTerms) > 0 {
		cfg.JargonTerms = append(cfg.JargonTerms, f.Jargon.ExtraTerms...)
	}

	if f.Model.Name != "" {
		cfg.Model = f.Model.Name
	}
	if f.Model.InputCostPerMTok != nil {
		cfg.InputCostPerToken = *f.Model.InputCostPerMTok / 1_000_000
	}
	if f.Model.OutputCostPerMTok != nil {
		cfg.OutputCostPerToken = *f.Model.OutputCostPerMTok / 1_000_000
	}
}
