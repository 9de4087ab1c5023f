package domain

import (
	"time"

	"alcyxob/runtrack/internal/runlog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunRecord is a stored run. Date is midnight UTC of the day the run happened.
type RunRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Distance  float64            `bson:"distance" json:"distance"` // miles
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ToRun converts the record into the value used by the aggregation engine.
func (r RunRecord) ToRun() runlog.Run {
	return runlog.NewRun(r.Distance, r.Date)
}

// GoalRecord is a stored daily goal. There is at most one per user and date.
type GoalRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Distance  float64            `bson:"distance" json:"distance"` // 0 means no goal
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ToGoal converts the record into the value used by the aggregation engine.
func (g GoalRecord) ToGoal() runlog.Goal {
	return runlog.NewGoal(g.Distance, g.Date)
}

// RunsFromRecords converts stored runs for aggregation.
func RunsFromRecords(records []RunRecord) []runlog.Run {
	runs := make([]runlog.Run, len(records))
	for i, r := range records {
		runs[i] = r.ToRun()
	}
	return runs
}

// GoalsFromRecords converts stored goals for aggregation.
func GoalsFromRecords(records []GoalRecord) []runlog.Goal {
	goals := make([]runlog.Goal, len(records))
	for i, g := range records {
		goals[i] = g.ToGoal()
	}
	return goals
}
