// Package skills models skill folders and validates their structure and
// metadata. A skill is a directory containing a SKILL.md file whose YAML
// frontmatter describes the skill's name and purpose.
package skills

// ManifestName is the required metadata file at the top level of every
// skill folder
const ManifestName = "SKILL.md"

// Skill represents a loaded skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	Directory   string // Full path to the skill directory
	Content     string // Body of SKILL.md with the frontmatter stripped
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}
