// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/eligius-health/eligius/ent/auditlog"
	"github.com/eligius-health/eligius/ent/checkpoint"
	"github.com/eligius-health/eligius/ent/criteriabatch"
	"github.com/eligius-health/eligius/ent/criterion"
	"github.com/eligius-health/eligius/ent/entity"
	"github.com/eligius-health/eligius/ent/outboxevent"
	"github.com/eligius-health/eligius/ent/protocol"
	"github.com/eligius-health/eligius/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[6].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	criteriabatchFields := schema.CriteriaBatch{}.Fields()
	_ = criteriabatchFields
	// criteriabatchDescIsArchived is the schema descriptor for is_archived field.
	criteriabatchDescIsArchived := criteriabatchFields[2].Descriptor()
	// criteriabatch.DefaultIsArchived holds the default value on creation for the is_archived field.
	criteriabatch.DefaultIsArchived = criteriabatchDescIsArchived.Default.(bool)
	// criteriabatchDescReviewedCount is the schema descriptor for reviewed_count field.
	criteriabatchDescReviewedCount := criteriabatchFields[3].Descriptor()
	// criteriabatch.DefaultReviewedCount holds the default value on creation for the reviewed_count field.
	criteriabatch.DefaultReviewedCount = criteriabatchDescReviewedCount.Default.(int)
	// criteriabatchDescTotalCount is the schema descriptor for total_count field.
	criteriabatchDescTotalCount := criteriabatchFields[4].Descriptor()
	// criteriabatch.DefaultTotalCount holds the default value on creation for the total_count field.
	criteriabatch.DefaultTotalCount = criteriabatchDescTotalCount.Default.(int)
	// criteriabatchDescCreatedAt is the schema descriptor for created_at field.
	criteriabatchDescCreatedAt := criteriabatchFields[6].Descriptor()
	// criteriabatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	criteriabatch.DefaultCreatedAt = criteriabatchDescCreatedAt.Default.(func() time.Time)
	// criteriabatchDescUpdatedAt is the schema descriptor for updated_at field.
	criteriabatchDescUpdatedAt := criteriabatchFields[7].Descriptor()
	// criteriabatch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	criteriabatch.DefaultUpdatedAt = criteriabatchDescUpdatedAt.Default.(func() time.Time)
	// criteriabatch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	criteriabatch.UpdateDefaultUpdatedAt = criteriabatchDescUpdatedAt.UpdateDefault.(func() time.Time)
	criterionFields := schema.Criterion{}.Fields()
	_ = criterionFields
	// criterionDescConfidence is the schema descriptor for confidence field.
	criterionDescConfidence := criterionFields[5].Descriptor()
	// criterion.DefaultConfidence holds the default value on creation for the confidence field.
	criterion.DefaultConfidence = criterionDescConfidence.Default.(float64)
	// criterionDescPage is the schema descriptor for page field.
	criterionDescPage := criterionFields[6].Descriptor()
	// criterion.DefaultPage holds the default value on creation for the page field.
	criterion.DefaultPage = criterionDescPage.Default.(int)
	// criterionDescCreatedAt is the schema descriptor for created_at field.
	criterionDescCreatedAt := criterionFields[13].Descriptor()
	// criterion.DefaultCreatedAt holds the default value on creation for the created_at field.
	criterion.DefaultCreatedAt = criterionDescCreatedAt.Default.(func() time.Time)
	// criterionDescUpdatedAt is the schema descriptor for updated_at field.
	criterionDescUpdatedAt := criterionFields[14].Descriptor()
	// criterion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	criterion.DefaultUpdatedAt = criterionDescUpdatedAt.Default.(func() time.Time)
	// criterion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	criterion.UpdateDefaultUpdatedAt = criterionDescUpdatedAt.UpdateDefault.(func() time.Time)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescGroundingConfidence is the schema descriptor for grounding_confidence field.
	entityDescGroundingConfidence := entityFields[5].Descriptor()
	// entity.DefaultGroundingConfidence holds the default value on creation for the grounding_confidence field.
	entity.DefaultGroundingConfidence = entityDescGroundingConfidence.Default.(float64)
	// entityDescNeedsReview is the schema descriptor for needs_review field.
	entityDescNeedsReview := entityFields[16].Descriptor()
	// entity.DefaultNeedsReview holds the default value on creation for the needs_review field.
	entity.DefaultNeedsReview = entityDescNeedsReview.Default.(bool)
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[17].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	outboxeventFields := schema.OutboxEvent{}.Fields()
	_ = outboxeventFields
	// outboxeventDescRetryCount is the schema descriptor for retry_count field.
	outboxeventDescRetryCount := outboxeventFields[5].Descriptor()
	// outboxevent.DefaultRetryCount holds the default value on creation for the retry_count field.
	outboxevent.DefaultRetryCount = outboxeventDescRetryCount.Default.(int)
	// outboxeventDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	outboxeventDescNextAttemptAt := outboxeventFields[6].Descriptor()
	// outboxevent.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	outboxevent.DefaultNextAttemptAt = outboxeventDescNextAttemptAt.Default.(func() time.Time)
	// outboxeventDescCreatedAt is the schema descriptor for created_at field.
	outboxeventDescCreatedAt := outboxeventFields[8].Descriptor()
	// outboxevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxevent.DefaultCreatedAt = outboxeventDescCreatedAt.Default.(func() time.Time)
	// outboxeventDescUpdatedAt is the schema descriptor for updated_at field.
	outboxeventDescUpdatedAt := outboxeventFields[9].Descriptor()
	// outboxevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	outboxevent.DefaultUpdatedAt = outboxeventDescUpdatedAt.Default.(func() time.Time)
	// outboxevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	outboxevent.UpdateDefaultUpdatedAt = outboxeventDescUpdatedAt.UpdateDefault.(func() time.Time)
	protocolFields := schema.Protocol{}.Fields()
	_ = protocolFields
	// protocolDescCreatedAt is the schema descriptor for created_at field.
	protocolDescCreatedAt := protocolFields[6].Descriptor()
	// protocol.DefaultCreatedAt holds the default value on creation for the created_at field.
	protocol.DefaultCreatedAt = protocolDescCreatedAt.Default.(func() time.Time)
	// protocolDescUpdatedAt is the schema descriptor for updated_at field.
	protocolDescUpdatedAt := protocolFields[7].Descriptor()
	// protocol.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	protocol.DefaultUpdatedAt = protocolDescUpdatedAt.Default.(func() time.Time)
	// protocol.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	protocol.UpdateDefaultUpdatedAt = protocolDescUpdatedAt.UpdateDefault.(func() time.Time)
}
