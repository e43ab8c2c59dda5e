// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "actor", Type: field.TypeString},
		{Name: "event_kind", Type: field.TypeString},
		{Name: "target_kind", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "before", Type: field.TypeJSON, Nullable: true},
		{Name: "after", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_target_kind_target_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_event_kind",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
		},
	}
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "node", Type: field.TypeString},
		{Name: "state", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_thread_id_step",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[2]},
			},
			{
				Name:    "checkpoint_thread_id",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1]},
			},
		},
	}
	// CriteriaBatchesColumns holds the columns for the "criteria_batches" table.
	CriteriaBatchesColumns = []*schema.Column{
		{Name: "batch_id", Type: field.TypeString, Unique: true},
		{Name: "is_archived", Type: field.TypeBool, Default: false},
		{Name: "reviewed_count", Type: field.TypeInt, Default: 0},
		{Name: "total_count", Type: field.TypeInt, Default: 0},
		{Name: "extraction_model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "protocol_id", Type: field.TypeString},
	}
	// CriteriaBatchesTable holds the schema information for the "criteria_batches" table.
	CriteriaBatchesTable = &schema.Table{
		Name:       "criteria_batches",
		Columns:    CriteriaBatchesColumns,
		PrimaryKey: []*schema.Column{CriteriaBatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "criteria_batches_protocols_batches",
				Columns:    []*schema.Column{CriteriaBatchesColumns[7]},
				RefColumns: []*schema.Column{ProtocolsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "criteriabatch_protocol_id_is_archived",
				Unique:  false,
				Columns: []*schema.Column{CriteriaBatchesColumns[7], CriteriaBatchesColumns[1]},
			},
		},
	}
	// CriteriaColumns holds the columns for the "criteria" table.
	CriteriaColumns = []*schema.Column{
		{Name: "criterion_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "kind", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "page", Type: field.TypeInt, Default: 0},
		{Name: "thresholds", Type: field.TypeJSON, Nullable: true},
		{Name: "temporal", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "assertion_status", Type: field.TypeString, Nullable: true},
		{Name: "review_decision", Type: field.TypeString, Nullable: true},
		{Name: "modification", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString},
	}
	// CriteriaTable holds the schema information for the "criteria" table.
	CriteriaTable = &schema.Table{
		Name:       "criteria",
		Columns:    CriteriaColumns,
		PrimaryKey: []*schema.Column{CriteriaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "criteria_criteria_batches_criteria",
				Columns:    []*schema.Column{CriteriaColumns[14]},
				RefColumns: []*schema.Column{CriteriaBatchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "criterion_batch_id",
				Unique:  false,
				Columns: []*schema.Column{CriteriaColumns[14]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "grounding_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "grounding_method", Type: field.TypeString, Nullable: true},
		{Name: "grounding_error", Type: field.TypeString, Nullable: true},
		{Name: "grounding_system", Type: field.TypeString, Nullable: true},
		{Name: "rxnorm_code", Type: field.TypeString, Nullable: true},
		{Name: "icd10_code", Type: field.TypeString, Nullable: true},
		{Name: "snomed_code", Type: field.TypeString, Nullable: true},
		{Name: "loinc_code", Type: field.TypeString, Nullable: true},
		{Name: "hpo_code", Type: field.TypeString, Nullable: true},
		{Name: "umls_cui", Type: field.TypeString, Nullable: true},
		{Name: "preferred_term", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "criterion_id", Type: field.TypeString},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_criteria_entities",
				Columns:    []*schema.Column{EntitiesColumns[17]},
				RefColumns: []*schema.Column{CriteriaColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_criterion_id",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[17]},
			},
			{
				Name:    "entity_entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[2]},
			},
		},
	}
	// OutboxEventsColumns holds the columns for the "outbox_events" table.
	OutboxEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "aggregate_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_flight", "failed", "dead_letter", "done"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OutboxEventsTable holds the schema information for the "outbox_events" table.
	OutboxEventsTable = &schema.Table{
		Name:       "outbox_events",
		Columns:    OutboxEventsColumns,
		PrimaryKey: []*schema.Column{OutboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outboxevent_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[4], OutboxEventsColumns[6]},
			},
			{
				Name:    "outboxevent_aggregate_id",
				Unique:  false,
				Columns: []*schema.Column{OutboxEventsColumns[1]},
			},
		},
	}
	// ProtocolsColumns holds the columns for the "protocols" table.
	ProtocolsColumns = []*schema.Column{
		{Name: "protocol_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "file_pointer", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"uploaded", "extracting", "extraction_failed", "grounding", "grounding_failed", "pending_review", "complete", "dead_letter", "archived"}, Default: "uploaded"},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "error_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProtocolsTable holds the schema information for the "protocols" table.
	ProtocolsTable = &schema.Table{
		Name:       "protocols",
		Columns:    ProtocolsColumns,
		PrimaryKey: []*schema.Column{ProtocolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "protocol_status",
				Unique:  false,
				Columns: []*schema.Column{ProtocolsColumns[3]},
			},
			{
				Name:    "protocol_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProtocolsColumns[3], ProtocolsColumns[6]},
			},
			{
				Name:    "protocol_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProtocolsColumns[3], ProtocolsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CheckpointsTable,
		CriteriaBatchesTable,
		CriteriaTable,
		EntitiesTable,
		OutboxEventsTable,
		ProtocolsTable,
	}
)

func init() {
	CriteriaBatchesTable.ForeignKeys[0].RefTable = ProtocolsTable
	CriteriaTable.ForeignKeys[0].RefTable = CriteriaBatchesTable
	CriteriaTable.Annotation = &entsql.Annotation{
		Table: "criteria",
	}
	EntitiesTable.ForeignKeys[0].RefTable = CriteriaTable
}
