package repository

import (
	"context"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoArchiveRepository implements the ArchiveRepository interface
type MongoArchiveRepository struct {
	collection *mongo.Collection
}

// NewMongoArchiveRepository creates a new MongoDB archive repository
func NewMongoArchiveRepository(db *mongo.Database) repository.ArchiveRepository {
	collection := db.Collection("reportArchive")

	ctx := context.Background()

	reportIDIndex := mongo.IndexModel{
		Keys:    bson.M{"reportId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on submittedAt for recent-first listing
	submittedAtIndex := mongo.IndexModel{
		Keys: bson.M{"submittedAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		reportIDIndex,
		submittedAtIndex,
	})

	return &MongoArchiveRepository{
		collection: collection,
	}
}

// Save stores a submitted-report audit document
func (r *MongoArchiveRepository) Save(ctx context.Context, archive *entity.ReportArchive) error {
	if archive.ID == "" {
		archive.ID = primitive.NewObjectID().Hex()
	}
	if archive.Status == "" {
		archive.Status = entity.ArchiveStatusStored
	}

	_, err := r.collection.InsertOne(ctx, archive)
	return err
}

// FindByReportID finds the archive document for a report
func (r *MongoArchiveRepository) FindByReportID(ctx context.Context, reportID string) (*entity.ReportArchive, error) {
	var archive entity.ReportArchive
	err := r.collection.FindOne(ctx, bson.M{"reportId": reportID}).Decode(&archive)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &archive, nil
}

// FindRecent returns the most recently submitted archives
func (r *MongoArchiveRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ReportArchive, error) {
	limit64 := int64(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Limit: &limit64,
		Sort:  bson.D{{Key: "submittedAt", Value: -1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var archives []*entity.ReportArchive
	if err := cursor.All(ctx, &archives); err != nil {
		return nil, err
	}
	return archives, nil
}
