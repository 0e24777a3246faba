package enums

import "fmt"

// SubmissionChannel names a delivery channel of the order submission sequence.
type SubmissionChannel string

const (
	ChannelBackup  SubmissionChannel = "backup"
	ChannelEmail   SubmissionChannel = "email"
	ChannelWebhook SubmissionChannel = "webhook"
)

// String implements fmt.Stringer.
func (c SubmissionChannel) String() string {
	return string(c)
}

// SubmissionOutcome is the successful result of a submission sequence.
type SubmissionOutcome string

const (
	OutcomePrimary    SubmissionOutcome = "primary"
	OutcomeFallback   SubmissionOutcome = "fallback"
	OutcomeBackupOnly SubmissionOutcome = "backup_only"
	// OutcomeFailed is only used for metrics; callers receive an error instead.
	OutcomeFailed SubmissionOutcome = "failed"
)

var validSubmissionOutcomes = []SubmissionOutcome{
	OutcomePrimary,
	OutcomeFallback,
	OutcomeBackupOnly,
	OutcomeFailed,
}

// String implements fmt.Stringer.
func (o SubmissionOutcome) String() string {
	return string(o)
}

// IsValid reports whether the value is a known SubmissionOutcome.
func (o SubmissionOutcome) IsValid() bool {
	for _, candidate := range validSubmissionOutcomes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseSubmissionOutcome converts raw input into a SubmissionOutcome.
func ParseSubmissionOutcome(value string) (SubmissionOutcome, error) {
	for _, candidate := range validSubmissionOutcomes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid submission outcome %q", value)
}
