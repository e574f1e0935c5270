package topicmgr

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// module.entity.action, e.g. qa.question.submitted
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9]*(\.[a-z][a-z0-9]*)+$`)
	modulePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// validate checks that a topic is well formed and lives under its module's prefix.
func validate(module string, topic Topic) error {
	if !modulePattern.MatchString(module) {
		return fmt.Errorf("module name %q must be lowercase alphanumeric with underscores", module)
	}

	name := topic.Name()
	if len(name) > 100 {
		return fmt.Errorf("name too long (max 100 characters)")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name %q must follow module.entity.action (lowercase, dot separated)", name)
	}
	if !strings.HasPrefix(name, module+".") {
		return fmt.Errorf("name %q must start with its module %q", name, module)
	}
	if strings.TrimSpace(topic.Description()) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	return nil
}
