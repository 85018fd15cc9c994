package remedy

import "fmt"

// ConfigMissingError reports a remediation action invoked without its required
// desired value. A deployment defect, not a runtime condition; the workflow
// never catches it.
type ConfigMissingError struct {
	Option string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("required configuration missing: %s", e.Option)
}
