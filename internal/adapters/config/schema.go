package config

// Depresfile represents the structure of the depres.yaml configuration file.
type Depresfile struct {
	Version        string              `yaml:"version"`
	Repositories   []RepositoryDTO     `yaml:"repositories"`
	Strategy       StrategyDTO         `yaml:"strategy"`
	Configurations map[string][]string `yaml:"configurations"`
}

// RepositoryDTO declares one repository file.
type RepositoryDTO struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
}

// StrategyDTO represents the resolution strategy settings.
type StrategyDTO struct {
	FailOnVersionConflict   bool              `yaml:"failOnVersionConflict"`
	Force                   []string          `yaml:"force"`
	CacheDynamicVersionsFor *DurationDTO      `yaml:"cacheDynamicVersionsFor"`
	CacheChangingModulesFor *DurationDTO      `yaml:"cacheChangingModulesFor"`
	Substitutions           []SubstitutionDTO `yaml:"substitutions"`
	Reject                  []RejectDTO       `yaml:"reject"`
	Overrides               []OverrideDTO     `yaml:"overrides"`
}

// DurationDTO is a value with a time unit such as "minutes" or "h".
type DurationDTO struct {
	Value int    `yaml:"value"`
	Unit  string `yaml:"unit"`
}

// SubstitutionDTO redirects every request for Module to UseVersion.
type SubstitutionDTO struct {
	Module     string `yaml:"module"`
	UseVersion string `yaml:"useVersion"`
}

// RejectDTO rejects candidate versions of Module matching Versions.
type RejectDTO struct {
	Module   string `yaml:"module"`
	Versions string `yaml:"versions"`
}

// OverrideDTO sets module-specific cache durations.
type OverrideDTO struct {
	Module                  string       `yaml:"module"`
	CacheDynamicVersionsFor *DurationDTO `yaml:"cacheDynamicVersionsFor"`
	CacheChangingModulesFor *DurationDTO `yaml:"cacheChangingModulesFor"`
}
