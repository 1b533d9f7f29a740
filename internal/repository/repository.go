package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the application database.
const (
	ColUsers      = "users"
	ColInterviews = "interviews"
)

type Repository struct {
	User      UserRepository
	Interview InterviewRepository
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		User:      UserRepository{col: db.Collection(ColUsers)},
		Interview: InterviewRepository{col: db.Collection(ColInterviews)},
	}
}
