package store

import (
	"context"
	"fmt"

	"github.com/careerstu/careerstu/ent"
	"github.com/careerstu/careerstu/ent/modeevent"
)

func (r *eventRepo) AppendModeTransition(ctx context.Context, data ModeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ModeEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetFromMode(data.FromMode).
		SetToMode(data.ToMode).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mode event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentModeTransitions(ctx context.Context, learnerID string, limit int) ([]ModeTransitionRecord, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	q := r.client.ModeEvent.Query()
	if learnerID != "" {
		q = q.Where(modeevent.LearnerID(learnerID))
	}

	rows, err := q.
		Order(ent.Desc(modeevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mode events: %w", err)
	}

	out := make([]ModeTransitionRecord, len(rows))
	for i, row := range rows {
		out[i] = ModeTransitionRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			LearnerID: row.LearnerID,
			FromMode:  row.FromMode,
			ToMode:    row.ToMode,
			Reason:    row.Reason,
		}
	}
	return out, nil
}
