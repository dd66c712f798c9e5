package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"cityhub/internal/domain/entity"
)

// StoredFileModel mirrors a document of the 'storage' collection.
type StoredFileModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Filename  string             `bson:"filename"`
	URL       string             `bson:"url"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CollectionStorage is the collection name backing StoredFileModel.
const CollectionStorage = "storage"

// ToStoredFileDomain converts a persistence model to a domain entity.
func ToStoredFileDomain(data *StoredFileModel) *entity.StoredFile {
	if data == nil {
		return nil
	}

	return &entity.StoredFile{
		ID:        data.ID.Hex(),
		Filename:  data.Filename,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromStoredFileDomain converts a domain entity to a persistence model.
func FromStoredFileDomain(data *entity.StoredFile) *StoredFileModel {
	if data == nil {
		return nil
	}

	id, _ := primitive.ObjectIDFromHex(data.ID)

	return &StoredFileModel{
		ID:        id,
		Filename:  data.Filename,
		URL:       data.URL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
