package domain

// IOUReport is an aggregate debt record between the current user and one
// counterpart, keyed by its own report ID. Reports reference it through
// Report.IOUReportID; they never own it.
type IOUReport struct {
	// ReportID identifies the IOU aggregate.
	ReportID int64

	// OwnerLogin is the login of the user who is owed the money.
	OwnerLogin string

	// Total is the outstanding amount in the currency's minor unit (cents).
	Total int64

	// Currency is the ISO 4217 currency code.
	Currency string
}
