package models

import "time"

// Patient carries only what the case write path needs: existence and a
// display name. Patient CRUD itself is owned by another service.
type Patient struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
