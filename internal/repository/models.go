package repository

import "time"

// Worker is a credential subject. The secret is the opaque encrypted token
// embedded in the worker's QR pass; it is unique across workers and is
// regenerated whenever identity-affecting fields change.
type Worker struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"column:name;size:255;not null"`
	FaceEmbedding  []byte    `gorm:"column:face_embedding;not null"`
	ExpirationDate time.Time `gorm:"column:expiration_date;not null"`
	Secret         string    `gorm:"column:secret;uniqueIndex;size:512;not null"`
}

func (Worker) TableName() string {
	return "workers"
}

// Entry is one immutable audit record of a verification decision. WorkerID
// is a weak reference: deleting a worker must not break historical entries,
// so no foreign key constraint is declared.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"column:date;not null"`
	WorkerID  *uint     `gorm:"column:worker_id"`
	Code      int       `gorm:"column:code;not null"`
	Message   string    `gorm:"column:message;not null"`
	FaceImage []byte    `gorm:"column:face_image"`
}

func (Entry) TableName() string {
	return "entries"
}
