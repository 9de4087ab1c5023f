package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Export stores metadata about a weekly-history CSV written to object storage.
// The file itself lives in S3 under ObjectKey.
type Export struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ObjectKey string             `bson:"objectKey" json:"-"` // internal use
	FileName  string             `bson:"fileName" json:"fileName"`
	Weeks     int                `bson:"weeks" json:"weeks"` // number of weeks in the file
	Size      int64              `bson:"size" json:"size"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
