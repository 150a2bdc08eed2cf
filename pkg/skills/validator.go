package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// MaxNameLength is the maximum length of a skill name
	MaxNameLength = 64
	// MaxDescriptionLength is the maximum length of a skill description
	MaxDescriptionLength = 1024
)

// Skill names are lowercase words separated by single hyphens
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate loads the skill at dir and checks it against all metadata
// rules. Rule violations are aggregated so the caller sees every problem
// at once rather than fixing them one at a time.
func Validate(dir string) (*Skill, error) {
	skill, err := Load(dir)
	if err != nil {
		return nil, err
	}

	var result *multierror.Error
	dirName := filepath.Base(dir)

	if skill.Name == "" {
		result = multierror.Append(result, errors.New("missing required field: name"))
	} else {
		if len(skill.Name) > MaxNameLength {
			result = multierror.Append(result, errors.Errorf("name exceeds %d characters", MaxNameLength))
		}
		if !namePattern.MatchString(skill.Name) {
			result = multierror.Append(result, errors.Errorf("name %q must be lowercase letters, digits, and hyphens", skill.Name))
		}
		if skill.Name != dirName {
			result = multierror.Append(result, errors.Errorf("name %q does not match directory name %q", skill.Name, dirName))
		}
	}

	if skill.Description == "" {
		result = multierror.Append(result, errors.New("missing required field: description"))
	} else if len(skill.Description) > MaxDescriptionLength {
		result = multierror.Append(result, errors.Errorf("description exceeds %d characters", MaxDescriptionLength))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return skill, nil
}

// Validator produces pass/fail verdicts for skill directories. It
// implements the single-method validation capability the install engine
// consumes, so tests can substitute their own verdicts.
type Validator struct{}

// NewValidator creates a Validator with the default rule set
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSkill checks the skill directory and returns a verdict plus a
// human-readable message for both outcomes. It never mutates the
// filesystem.
func (v *Validator) ValidateSkill(dir string) (bool, string) {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err != nil {
		return false, fmt.Sprintf("%s not found in %s", ManifestName, dir)
	}

	skill, err := Validate(dir)
	if err != nil {
		return false, err.Error()
	}

	return true, fmt.Sprintf("Skill '%s' is valid: %s", skill.Name, skill.Description)
}
