package advisor

// FilterMode selects how the connector narrows its mining queries.
type FilterMode string

const (
	// FilterModeNone mines all changes and filters client-side.
	FilterModeNone FilterMode = "none"
	// FilterModeRegex pushes a table-name regex into the mining query.
	FilterModeRegex FilterMode = "regex"
)

// String returns the string representation of the FilterMode.
func (f FilterMode) String() string {
	return string(f)
}

// Recommendations is the immutable output of the engine. Field semantics map
// to externally-meaningful connector configuration keys and must be preserved
// verbatim for compatibility with the renderer and downstream tooling.
type Recommendations struct {
	// RedoLogSizeGb and RedoLogGroups are DBA-facing infrastructure sizing
	// advice, not connector settings.
	RedoLogSizeGb float64 `json:"redoLogSizeGb" yaml:"redoLogSizeGb"`
	RedoLogGroups int     `json:"redoLogGroups" yaml:"redoLogGroups"`

	// ArchiveRetentionHours is DBA-facing retention advice; always >= 2.
	// ArchiveRetentionDiskGb estimates the disk needed to hold it.
	ArchiveRetentionHours  int     `json:"archiveRetentionHours" yaml:"archiveRetentionHours"`
	ArchiveRetentionDiskGb float64 `json:"archiveRetentionDiskGb" yaml:"archiveRetentionDiskGb"`

	// LobEnabled is the LOB-capture feature flag; always false from this
	// engine. LobRationale explains why, naming detected LOB columns when
	// present.
	LobEnabled   bool   `json:"lobEnabled" yaml:"lobEnabled"`
	LobRationale string `json:"lobRationale" yaml:"lobRationale"`

	// TransactionRetentionMs is the minimum transaction-tracking window in
	// milliseconds; always >= 300000.
	TransactionRetentionMs int64 `json:"transactionRetentionMs" yaml:"transactionRetentionMs"`

	// HeartbeatIntervalMs is the forced offset-advancement interval.
	HeartbeatIntervalMs int64 `json:"heartbeatIntervalMs" yaml:"heartbeatIntervalMs"`

	// BatchSizeDefault and BatchSizeMax size the mining session window.
	BatchSizeDefault int `json:"batchSizeDefault" yaml:"batchSizeDefault"`
	BatchSizeMax     int `json:"batchSizeMax" yaml:"batchSizeMax"`

	// MaxRetries is the transient-failure retry budget.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`

	// QueryFilterMode is "none" or "regex".
	QueryFilterMode FilterMode `json:"queryFilterMode" yaml:"queryFilterMode"`

	// ArchiveLogOnlyMode is reserved for future use; always false.
	ArchiveLogOnlyMode bool `json:"archiveLogOnlyMode" yaml:"archiveLogOnlyMode"`

	// Warnings is the ordered list of operator-facing risk strings; order is
	// the evaluation order of the warning collector and is deterministic.
	Warnings []string `json:"warnings" yaml:"warnings"`
}
