package account

// StepOutcome records one cleanup step of an account deletion.
type StepOutcome struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// CleanupReport is returned whether or not the deletion finished, so a
// failed run shows exactly which data is already gone.
type CleanupReport struct {
	UserID  string        `json:"user_id"`
	Steps   []StepOutcome `json:"steps"`
	Deleted bool          `json:"deleted"`
}
