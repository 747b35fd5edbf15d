package resource

// One Definition per resource family. Updatable lists mirror each model's
// column set minus id/created_at/updated_at; natural keys stay writable, as
// in the dashboards these APIs serve.

var Contracts = New(Definition{
	Singular: "contract",
	Path:     "contracts",
	Required: []string{"contract_id", "title"},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "contract_type", Column: "contract_type"},
		{Param: "department", Column: "department"},
		{Param: "owner", Column: "owner"},
		{Param: "title", Column: "title", Substring: true},
		{Param: "parties", Column: "parties", Substring: true},
	},
	Updatable: []string{
		"contract_id", "title", "contract_type", "parties", "department",
		"owner", "effective_date", "expiry_date", "value", "currency",
		"status", "priority", "description", "terms", "renewal_terms",
		"governing_law", "notes",
	},
})

var Amendments = New(Definition{
	Singular: "amendment",
	Path:     "contract-amendments",
	Required: []string{"amendment_id", "contract_id"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "amendment_type", Column: "amendment_type"},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"amendment_id", "contract_id", "contract_title", "amendment_type",
		"description", "reason", "effective_date", "requested_by",
		"approved_by", "status",
	},
})

var Approvals = New(Definition{
	Singular: "approval",
	Path:     "contract-approvals",
	Required: []string{"approval_id", "contract_id", "approver_name"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "approval_level", Column: "approval_level"},
		{Param: "approver_name", Column: "approver_name", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"approval_id", "contract_id", "contract_title", "approver_name",
		"approver_role", "approval_level", "comments", "due_date",
		"decision_date", "status",
	},
})

var Audits = New(Definition{
	Singular: "audit",
	Path:     "contract-audits",
	Required: []string{"audit_id", "contract_id"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "audit_type", Column: "audit_type"},
		{Param: "auditor", Column: "auditor", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"audit_id", "contract_id", "contract_title", "audit_type", "auditor",
		"audit_date", "scope", "findings", "recommendations", "status",
	},
})

var ComplianceChecks = New(Definition{
	Singular: "compliance check",
	Path:     "compliance-checks",
	Required: []string{"check_id", "contract_id", "regulation"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "result", Column: "result"},
		{Param: "risk_level", Column: "risk_level"},
		{Param: "regulation", Column: "regulation", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"check_id", "contract_id", "contract_title", "regulation",
		"requirement", "check_date", "reviewer", "result", "risk_level",
		"remediation", "status",
	},
})

var Executions = New(Definition{
	Singular: "execution",
	Path:     "contract-executions",
	Required: []string{"execution_id", "contract_id", "contract_title"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "contract_type", Column: "contract_type"},
		{Param: "signing_method", Column: "signing_method"},
		{Param: "contract_title", Column: "contract_title", Substring: true},
		{Param: "contract_parties", Column: "contract_parties", Substring: true},
	},
	Updatable: []string{
		"execution_id", "contract_id", "contract_title", "contract_type",
		"contract_parties", "effective_date", "expiry_date", "contract_value",
		"signed_by", "signing_method", "execution_date", "witness_name",
		"repository", "notes", "status",
	},
})

var Negotiations = New(Definition{
	Singular: "negotiation",
	Path:     "contract-negotiations",
	Required: []string{"negotiation_id", "contract_id"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "counterparty", Column: "counterparty", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"negotiation_id", "contract_id", "contract_title", "counterparty",
		"round", "topic", "position", "counter_position", "outcome",
		"next_meeting", "lead", "status",
	},
})

var Obligations = New(Definition{
	Singular: "obligation",
	Path:     "contract-obligations",
	Required: []string{"obligation_id", "contract_id", "description"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "obligation_type", Column: "obligation_type"},
		{Param: "responsible_party", Column: "responsible_party", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"obligation_id", "contract_id", "contract_title", "obligation_type",
		"description", "responsible_party", "due_date", "frequency",
		"completion_date", "status",
	},
})

var Renewals = New(Definition{
	Singular: "renewal",
	Path:     "contract-renewals",
	Required: []string{"renewal_id", "contract_id"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "decision", Column: "decision"},
		{Param: "negotiator", Column: "negotiator", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"renewal_id", "contract_id", "contract_title", "current_expiry",
		"proposed_term", "renewal_value", "notice_deadline", "negotiator",
		"decision", "status",
	},
})

var Terminations = New(Definition{
	Singular: "termination",
	Path:     "contract-terminations",
	Required: []string{"termination_id", "contract_id", "reason"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "termination_type", Column: "termination_type"},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"termination_id", "contract_id", "contract_title", "termination_type",
		"reason", "notice_date", "effective_date", "notice_period",
		"penalties", "settlement_amount", "status",
	},
})

var StorageRecords = New(Definition{
	Singular: "storage record",
	Path:     "contract-storage",
	Required: []string{"storage_id", "contract_id", "location"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "storage_type", Column: "storage_type"},
		{Param: "custodian", Column: "custodian", Substring: true},
		{Param: "location", Column: "location", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"storage_id", "contract_id", "contract_title", "location",
		"storage_type", "box_number", "retention_period", "disposal_date",
		"custodian", "status",
	},
})

var Drafts = New(Definition{
	Singular: "draft",
	Path:     "contract-drafts",
	Required: []string{"draft_id", "title"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "review_status", Column: "review_status"},
		{Param: "author", Column: "author", Substring: true},
		{Param: "title", Column: "title", Substring: true},
	},
	Updatable: []string{
		"draft_id", "contract_id", "title", "template_name", "version",
		"author", "content", "review_status", "status",
	},
})

var MonitoringEntries = New(Definition{
	Singular: "monitoring entry",
	Path:     "contract-monitoring",
	Required: []string{"monitor_id", "contract_id", "metric"},
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "status", Column: "status"},
		{Param: "alert_level", Column: "alert_level"},
		{Param: "assigned_to", Column: "assigned_to", Substring: true},
		{Param: "metric", Column: "metric", Substring: true},
		{Param: "contract_title", Column: "contract_title", Substring: true},
	},
	Updatable: []string{
		"monitor_id", "contract_id", "contract_title", "metric", "threshold",
		"current_value", "alert_level", "last_checked", "assigned_to",
		"status",
	},
})

var Documents = New(Definition{
	Singular: "document",
	Path:     "documents",
	// Creation goes through the multipart upload handler, not the generic
	// create path, so Required stays empty here.
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "document_type", Column: "document_type"},
		{Param: "file_name", Column: "file_name", Substring: true},
	},
	Updatable: []string{"document_type", "file_name", "uploaded_by"},
})

var AuditLogs = New(Definition{
	Singular: "audit log",
	Path:     "audit-logs",
	Filters: []Filter{
		{Param: "contract_id", Column: "contract_id"},
		{Param: "user_id", Column: "user_id"},
		{Param: "action", Column: "action"},
	},
})
