package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cityhub/internal/domain/entity"
	"cityhub/internal/domain/repository"
	"cityhub/internal/infra/persistence/model"
)

// fileRepository implements repository.FileRepository on MongoDB.
type fileRepository struct {
	coll *mongo.Collection
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *mongo.Database) repository.FileRepository {
	return &fileRepository{
		coll: db.Collection(model.CollectionStorage),
	}
}

// List retrieves all stored file entries.
func (repo *fileRepository) List(ctx context.Context) ([]*entity.StoredFile, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stored files")
	}
	defer cursor.Close(ctx)

	var docs []*model.StoredFileModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode stored files")
	}

	files := make([]*entity.StoredFile, 0, len(docs))
	for _, doc := range docs {
		files = append(files, model.ToStoredFileDomain(doc))
	}

	return files, nil
}

// FindByID retrieves a single entry by its store id.
func (repo *fileRepository) FindByID(ctx context.Context, id string) (*entity.StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrFileNotFound
	}

	var doc model.StoredFileModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find stored file")
	}

	return model.ToStoredFileDomain(&doc), nil
}

// Create persists a new entry and fills in its generated id.
func (repo *fileRepository) Create(ctx context.Context, file *entity.StoredFile) error {
	doc := model.FromStoredFileDomain(file)
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "failed to create stored file")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		file.ID = oid.Hex()
	}
	file.CreatedAt = doc.CreatedAt
	file.UpdatedAt = doc.UpdatedAt

	return nil
}

// Delete removes the entry physically and returns the removed document.
func (repo *fileRepository) Delete(ctx context.Context, id string) (*entity.StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrFileNotFound
	}

	var doc model.StoredFileModel
	if err := repo.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to delete stored file")
	}

	return model.ToStoredFileDomain(&doc), nil
}
